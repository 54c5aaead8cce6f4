package middleware

import (
	"sentimenta/config"
	domainerrors "sentimenta/internal/domain/errors"
	"sentimenta/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// ContextKeyAccountID is the echo context key holding the authenticated
// account's id as an int64.
const ContextKeyAccountID = "accountID"

// AuthMiddleware validates the session cookie and exposes the acting
// account's id to handlers.
type AuthMiddleware struct {
	tokenSvc   service.TokenService
	cookieName string
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, cfg *config.Config) *AuthMiddleware {
	cookieName := "access_token"
	if cfg != nil && cfg.Auth != nil && cfg.Auth.CookieName != "" {
		cookieName = cfg.Auth.CookieName
	}

	return &AuthMiddleware{tokenSvc: tokenSvc, cookieName: cookieName}
}

// Authenticate is the core middleware function that validates the session token.
// The token travels in an HTTP-only cookie, never in a header the frontend
// would have to manage.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		cookie, err := c.Cookie(m.cookieName)
		if err != nil || cookie.Value == "" {
			return domainerrors.ErrUnauthorized.WithDetails("session cookie is missing")
		}

		accountID, err := m.tokenSvc.Validate(cookie.Value)
		if err != nil {
			return domainerrors.ErrUnauthorized.WithDetails("session token is invalid or expired")
		}

		c.Set(ContextKeyAccountID, accountID)

		return next(c)
	}
}

// AccountID extracts the authenticated account id set by Authenticate.
func AccountID(c echo.Context) (int64, bool) {
	id, ok := c.Get(ContextKeyAccountID).(int64)

	return id, ok
}
