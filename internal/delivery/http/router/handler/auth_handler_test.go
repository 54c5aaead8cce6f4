package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"sentimenta/config"
	"sentimenta/internal/delivery/http/validator"
	domainerrors "sentimenta/internal/domain/errors"
	"sentimenta/internal/usecase"
)

func testAuthConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Auth = &config.AuthConfig{
		CookieName:     "access_token",
		TokenTTL:       time.Hour,
		CookieHTTPOnly: true,
	}

	return cfg
}

func newJSONContext(method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = validator.New()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder, name string) *http.Cookie {
	t.Helper()

	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == name {
			return cookie
		}
	}

	return nil
}

func TestAuthHandler_Register_SetsCookieAndHidesSecrets(t *testing.T) {
	uc := new(mockAccountUsecase)
	h := NewAuthHandler(uc, testAuthConfig())

	uc.On("Register", mock.Anything, mock.MatchedBy(func(input *usecase.RegisterInput) bool {
		return input.Email == "alice@example.com" && input.Username == "alice"
	})).Return(&usecase.AuthOutput{
		Account: &usecase.AccountOutput{Uid: 1, Username: "alice", Email: "alice@example.com"},
		Token:   "issued-token",
	}, nil)

	body := `{"username":"alice","email":"alice@example.com","password":"long-enough-pw","timezone":"UTC"}`
	c, rec := newJSONContext(http.MethodPost, "/api/auth/register", body)

	require.NoError(t, h.Register(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	cookie := sessionCookie(t, rec, "access_token")
	require.NotNil(t, cookie)
	assert.Equal(t, "issued-token", cookie.Value)
	assert.True(t, cookie.HttpOnly)

	// The token and password material stay out of the JSON body.
	assert.Contains(t, rec.Body.String(), `"username":"alice"`)
	assert.NotContains(t, rec.Body.String(), "issued-token")
	assert.NotContains(t, rec.Body.String(), "password")
	assert.NotContains(t, rec.Body.String(), "hash")
}

func TestAuthHandler_Register_MissingFields(t *testing.T) {
	uc := new(mockAccountUsecase)
	h := NewAuthHandler(uc, testAuthConfig())

	c, _ := newJSONContext(http.MethodPost, "/api/auth/register", `{"username":"alice"}`)

	err := h.Register(c)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	uc.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
}

func TestAuthHandler_Register_ConflictPropagates(t *testing.T) {
	uc := new(mockAccountUsecase)
	h := NewAuthHandler(uc, testAuthConfig())

	uc.On("Register", mock.Anything, mock.Anything).Return(nil, domainerrors.ErrEmailTaken)

	body := `{"username":"alice","email":"alice@example.com","password":"long-enough-pw"}`
	c, rec := newJSONContext(http.MethodPost, "/api/auth/register", body)

	err := h.Register(c)
	assert.ErrorIs(t, err, domainerrors.ErrEmailTaken)
	assert.Nil(t, sessionCookie(t, rec, "access_token"))
}

func TestAuthHandler_Login_Success(t *testing.T) {
	uc := new(mockAccountUsecase)
	h := NewAuthHandler(uc, testAuthConfig())

	uc.On("Login", mock.Anything, mock.MatchedBy(func(input *usecase.LoginInput) bool {
		return input.Email == "alice@example.com"
	})).Return(&usecase.AuthOutput{
		Account: &usecase.AccountOutput{Uid: 1, Username: "alice", Email: "alice@example.com"},
		Token:   "login-token",
	}, nil)

	body := `{"email":"alice@example.com","password":"long-enough-pw"}`
	c, rec := newJSONContext(http.MethodPost, "/api/auth/login", body)

	require.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	cookie := sessionCookie(t, rec, "access_token")
	require.NotNil(t, cookie)
	assert.Equal(t, "login-token", cookie.Value)
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	uc := new(mockAccountUsecase)
	h := NewAuthHandler(uc, testAuthConfig())

	uc.On("Login", mock.Anything, mock.Anything).Return(nil, domainerrors.ErrInvalidCredentials)

	body := `{"email":"alice@example.com","password":"wrong-password"}`
	c, rec := newJSONContext(http.MethodPost, "/api/auth/login", body)

	err := h.Login(c)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	assert.Nil(t, sessionCookie(t, rec, "access_token"))
}
