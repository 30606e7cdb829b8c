package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/yukikurage/todo-project-api/internal/apperrors"
	"github.com/yukikurage/todo-project-api/internal/dto"
)

// Claims is the signed token payload. Besides the user ID it carries a
// denormalized snapshot of the user so reconnect can answer without a
// database round trip.
type Claims struct {
	UserID uint64       `json:"user_id"`
	Login  string       `json:"login"`
	User   *dto.UserDTO `json:"user,omitempty"`
	jwt.RegisteredClaims
}

// TokenManager issues and verifies HS256-signed session tokens.
type TokenManager struct {
	secret []byte
	expiry time.Duration
}

// NewTokenManager creates a TokenManager signing with secret and issuing
// tokens valid for expMinutes minutes.
func NewTokenManager(secret string, expMinutes int) *TokenManager {
	return &TokenManager{
		secret: []byte(secret),
		expiry: time.Duration(expMinutes) * time.Minute,
	}
}

// Issue signs claims with an expiry of now + the configured duration.
func (m *TokenManager) Issue(claims *Claims) (string, error) {
	now := time.Now()
	claims.RegisteredClaims = jwt.RegisteredClaims{
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(m.expiry)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// Verify validates signature and expiry and returns the decoded claims.
// Expired tokens fail with apperrors.ErrTokenExpired, everything else with
// apperrors.ErrTokenInvalid.
func (m *TokenManager) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return m.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, apperrors.ErrTokenExpired
		}
		return nil, apperrors.ErrTokenInvalid
	}
	if !token.Valid {
		return nil, apperrors.ErrTokenInvalid
	}

	return claims, nil
}
