package repository

import (
	"context"
	"errors"

	"sentimenta/internal/domain/entity"
)

// ErrMoodNotFound is returned when no entry matches the (owner, id) predicate.
// An entry owned by another account is indistinguishable from an absent one.
var ErrMoodNotFound = errors.New("mood entry not found")

// MoodRepository defines the operations for mood entry persistence.
// Every lookup that mutates or returns a single entry is scoped by the owning
// account id; ownership is part of the predicate, never an afterthought.
type MoodRepository interface {
	// Create persists a new mood entry and fills in the assigned identifier
	// and timestamps.
	Create(ctx context.Context, mood *entity.MoodEntry) error

	// ListByOwner returns all entries owned by ownerID, newest event date
	// first. An account with no entries yields an empty slice, not an error.
	ListByOwner(ctx context.Context, ownerID int64) ([]*entity.MoodEntry, error)

	// FindByOwnerAndID retrieves a single entry by id, restricted to ownerID.
	FindByOwnerAndID(ctx context.Context, ownerID, id int64) (*entity.MoodEntry, error)

	// Update modifies an existing entry. The entry's UserID must already be
	// the acting owner; the update predicate includes it.
	Update(ctx context.Context, mood *entity.MoodEntry) error

	// Delete removes the entry with the given id if it is owned by ownerID.
	Delete(ctx context.Context, ownerID, id int64) error
}
