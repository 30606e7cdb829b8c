package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yukikurage/todo-project-api/internal/apperrors"
	"github.com/yukikurage/todo-project-api/internal/constants"
	"github.com/yukikurage/todo-project-api/internal/dto"
	"github.com/yukikurage/todo-project-api/internal/middleware"
	"github.com/yukikurage/todo-project-api/internal/services"
)

// AuthHandler coordinates authentication-related HTTP handlers.
type AuthHandler struct {
	authService *services.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Register creates a new user account.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.RespondValidation(c, err)
		return
	}

	user, err := h.authService.Register(services.RegisterInput{
		Login:     req.Login,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserDTO(*user))
}

// Login validates credentials, issues a session token and sets it as an
// HTTP-only cookie alongside the response body.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.RespondValidation(c, err)
		return
	}

	resp, err := h.authService.Login(services.LoginInput{
		Login:    req.Login,
		Password: req.Password,
	})
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	setTokenCookie(c, resp.Token)
	c.JSON(http.StatusOK, resp)
}

// Reconnect renews the token carried on the request and refreshes the
// cookie.
func (h *AuthHandler) Reconnect(c *gin.Context) {
	token := middleware.ExtractToken(c)
	if token == "" {
		apperrors.Respond(c, apperrors.ErrTokenInvalid)
		return
	}

	resp, err := h.authService.Reconnect(token)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	setTokenCookie(c, resp.Token)
	c.JSON(http.StatusOK, resp)
}

func setTokenCookie(c *gin.Context, token string) {
	c.SetCookie(constants.TokenCookieName, token, 0, "/", "", false, true)
}
