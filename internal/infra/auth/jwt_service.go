package auth

import (
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"

	"sentimenta/config"
	"sentimenta/internal/domain/service"
)

// jwtService is a concrete implementation of the TokenService interface using
// HS256-signed JWTs. A single process-wide secret signs every session token.
type jwtService struct {
	secret []byte
	ttl    time.Duration
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.Auth == nil || cfg.Auth.Secret == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	return &jwtService{
		secret: []byte(cfg.Auth.Secret),
		ttl:    cfg.Auth.TokenTTL,
	}, nil
}

// Generate creates a signed session token for the given account id.
// The id travels as the registered subject claim, as a decimal string.
func (s *jwtService) Generate(accountID int64) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatInt(accountID, 10),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign session token")
	}

	return signed, nil
}

// Validate checks the token's signature and expiry and returns the subject
// account id. Expiry is enforced by the parser via the exp claim.
func (s *jwtService) Validate(tokenString string) (int64, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	})
	if err != nil {
		return 0, errors.Wrap(err, "failed to parse session token")
	}
	if !token.Valid {
		return 0, errors.New("session token is not valid")
	}

	subject, err := token.Claims.GetSubject()
	if err != nil {
		return 0, errors.Wrap(err, "subject claim missing from token")
	}

	accountID, err := strconv.ParseInt(subject, 10, 64)
	if err != nil {
		return 0, errors.Wrap(err, "subject claim is not an account id")
	}

	return accountID, nil
}

// TokenTTL returns the configured lifetime of issued tokens.
func (s *jwtService) TokenTTL() time.Duration {
	return s.ttl
}
