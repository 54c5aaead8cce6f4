package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sentimenta/config"
	domainerrors "sentimenta/internal/domain/errors"
)

type stubTokenService struct {
	accountID int64
	err       error
}

func (s *stubTokenService) Generate(accountID int64) (string, error) {
	return "stub-token", nil
}

func (s *stubTokenService) Validate(tokenString string) (int64, error) {
	return s.accountID, s.err
}

func (s *stubTokenService) TokenTTL() time.Duration {
	return time.Hour
}

func newAuthTestContext(cookie *http.Cookie) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/user/get", nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec)
}

func newTestAuthMiddleware(tokenSvc *stubTokenService) *AuthMiddleware {
	cfg := &config.Config{}
	cfg.Auth = &config.AuthConfig{CookieName: "access_token"}

	return NewAuthMiddleware(tokenSvc, cfg)
}

func TestAuthMiddleware_ValidCookie(t *testing.T) {
	m := newTestAuthMiddleware(&stubTokenService{accountID: 42})
	c := newAuthTestContext(&http.Cookie{Name: "access_token", Value: "valid"})

	var seenID int64
	next := func(c echo.Context) error {
		id, ok := AccountID(c)
		require.True(t, ok)
		seenID = id

		return nil
	}

	err := m.Authenticate(next)(c)
	require.NoError(t, err)
	assert.Equal(t, int64(42), seenID)
}

func TestAuthMiddleware_MissingCookie(t *testing.T) {
	m := newTestAuthMiddleware(&stubTokenService{accountID: 42})
	c := newAuthTestContext(nil)

	err := m.Authenticate(func(c echo.Context) error { return nil })(c)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	m := newTestAuthMiddleware(&stubTokenService{err: errors.New("expired")})
	c := newAuthTestContext(&http.Cookie{Name: "access_token", Value: "stale"})

	nextCalled := false
	err := m.Authenticate(func(c echo.Context) error {
		nextCalled = true

		return nil
	})(c)

	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
	assert.False(t, nextCalled)
}

func TestAuthMiddleware_WrongCookieName(t *testing.T) {
	m := newTestAuthMiddleware(&stubTokenService{accountID: 42})
	c := newAuthTestContext(&http.Cookie{Name: "other_cookie", Value: "valid"})

	err := m.Authenticate(func(c echo.Context) error { return nil })(c)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}
