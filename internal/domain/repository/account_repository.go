// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"sentimenta/internal/domain/entity"
)

// ErrAccountNotFound is a domain-specific error returned when an account is not found.
var ErrAccountNotFound = errors.New("account not found")

// AccountRepository defines the standard operations for account persistence.
// The application layer will depend on this interface, not the concrete implementation.
type AccountRepository interface {
	// FindByID retrieves a single account by its numeric identifier.
	FindByID(ctx context.Context, id int64) (*entity.Account, error)

	// FindByEmail retrieves a single account by its email address.
	FindByEmail(ctx context.Context, email string) (*entity.Account, error)

	// FindByUsername retrieves a single account by its username.
	FindByUsername(ctx context.Context, username string) (*entity.Account, error)

	// Create persists a new account and fills in the assigned identifier
	// and timestamps. The store's unique indexes on email and username are
	// the authoritative guard against duplicate registration.
	Create(ctx context.Context, account *entity.Account) error

	// Update modifies an existing account in the storage.
	Update(ctx context.Context, account *entity.Account) error

	// Delete removes the account; owned mood entries cascade at the store level.
	Delete(ctx context.Context, id int64) error
}
