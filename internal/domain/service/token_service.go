package service

import (
	"time"
)

// TokenService defines the interface for issuing and validating the signed
// session tokens carried in the auth cookie. Tokens are stateless: they are
// never stored server-side.
type TokenService interface {
	// Generate creates a signed token whose subject claim is the account id.
	Generate(accountID int64) (string, error)

	// Validate checks signature and expiry and returns the embedded account id.
	Validate(tokenString string) (int64, error)

	// TokenTTL returns the configured lifetime of issued tokens, used to set
	// the cookie expiry alongside the token's own exp claim.
	TokenTTL() time.Duration
}
