package constants

// Context keys shared between middleware and handlers
const (
	ContextKeyUserID        = "user_id"
	ContextKeyAuthenticated = "authenticated"
	ContextKeyProject       = "project"
	ContextKeyTask          = "task"
)

// TokenCookieName is the cookie carrying the signed session token.
const TokenCookieName = "tok"

// Version string served by GET /version
const Version = "Todo App - V0.0.1"
