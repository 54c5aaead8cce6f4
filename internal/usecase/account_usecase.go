// Package usecase defines the application's business operations and their
// input/output contracts. Implementations live in the impl subpackage.
package usecase

import (
	"context"
	"time"

	"sentimenta/internal/domain/entity"
)

// RegisterInput carries the data required to create a new account.
type RegisterInput struct {
	Username string
	Email    string
	Password string
	Timezone string
}

// LoginInput carries the credentials for an email/password login.
type LoginInput struct {
	Email    string
	Password string
}

// UpdateProfileInput carries a partial profile update. Nil fields are left
// untouched.
type UpdateProfileInput struct {
	Username *string
	Email    *string
	Timezone *string
}

// ChangePasswordInput carries a password change request. The old password is
// re-verified before the new one is stored.
type ChangePasswordInput struct {
	OldPassword string
	NewPassword string
}

// AccountOutput is the external representation of an account. The password
// hash never leaves the application layer.
type AccountOutput struct {
	Uid       int64     `json:"uid"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Timezone  string    `json:"timezone,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// AuthOutput bundles the account with a freshly issued session token.
type AuthOutput struct {
	Account *AccountOutput
	Token   string
}

// ToAccountOutput strips an account entity down to its external representation.
func ToAccountOutput(account *entity.Account) *AccountOutput {
	if account == nil {
		return nil
	}

	return &AccountOutput{
		Uid:       account.Uid,
		Username:  account.Username,
		Email:     account.Email,
		Timezone:  account.Timezone,
		CreatedAt: account.CreatedAt,
		UpdatedAt: account.UpdatedAt,
	}
}

// AccountUsecase defines the operations for account management and
// authentication. Every operation on an existing account takes the acting
// account's id explicitly.
type AccountUsecase interface {
	// Register creates a new account and issues a session token for it.
	Register(ctx context.Context, input *RegisterInput) (*AuthOutput, error)

	// Login verifies credentials and issues a session token. Unknown email
	// and wrong password fail identically.
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)

	// GetAccount returns the account's external representation.
	GetAccount(ctx context.Context, accountID int64) (*AccountOutput, error)

	// UpdateProfile applies a partial update to the account's profile fields.
	UpdateProfile(ctx context.Context, accountID int64, input *UpdateProfileInput) (*AccountOutput, error)

	// ChangePassword replaces the account's password after verifying the
	// current one.
	ChangePassword(ctx context.Context, accountID int64, input *ChangePasswordInput) error

	// DeleteAccount removes the account and, via the store, its mood entries.
	DeleteAccount(ctx context.Context, accountID int64) error
}
