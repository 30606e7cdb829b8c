package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yukikurage/todo-project-api/internal/apperrors"
	"github.com/yukikurage/todo-project-api/internal/auth"
	"github.com/yukikurage/todo-project-api/internal/constants"
)

// RequireAuth verifies the session token carried in the Authorization
// header or the token cookie and stores the authenticated user ID in the
// request context.
func RequireAuth(tokens *auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := ExtractToken(c)
		if token == "" {
			apperrors.Abort(c, apperrors.ErrTokenInvalid)
			return
		}

		claims, err := tokens.Verify(token)
		if err != nil {
			apperrors.Abort(c, err)
			return
		}

		c.Set(constants.ContextKeyUserID, claims.UserID)
		c.Set(constants.ContextKeyAuthenticated, true)
		c.Next()
	}
}

// AllowIfAuthenticated gates routes that branch explicitly on
// authentication state. Must run after RequireAuth.
func AllowIfAuthenticated() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !c.GetBool(constants.ContextKeyAuthenticated) {
			apperrors.Abort(c, apperrors.ErrForbidden)
			return
		}
		c.Next()
	}
}

// ExtractToken pulls the session token from the Authorization header
// (raw or Bearer-prefixed) or, failing that, the token cookie.
func ExtractToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header != "" {
		return strings.TrimPrefix(header, "Bearer ")
	}

	cookie, err := c.Cookie(constants.TokenCookieName)
	if err != nil {
		return ""
	}
	return cookie
}

// GetUserID retrieves the current user ID from context.
func GetUserID(c *gin.Context) (uint64, bool) {
	value, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		return 0, false
	}

	userID, ok := value.(uint64)
	return userID, ok
}
