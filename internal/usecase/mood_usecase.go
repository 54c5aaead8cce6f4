package usecase

import (
	"context"
	"time"

	"sentimenta/internal/domain/entity"
)

// AddMoodInput carries the data for a new mood entry.
type AddMoodInput struct {
	Score       int16
	Emotions    string
	Description string
	Date        time.Time
}

// UpdateMoodInput carries a partial update of an existing entry. Nil fields
// are left untouched.
type UpdateMoodInput struct {
	Uid         int64
	Score       *int16
	Emotions    *string
	Description *string
	Date        *time.Time
}

// MoodOutput is the external representation of a mood entry.
type MoodOutput struct {
	Uid         int64     `json:"uid"`
	UserID      int64     `json:"userId"`
	Score       int16     `json:"score"`
	Emotions    string    `json:"emotions,omitempty"`
	Description string    `json:"description,omitempty"`
	Date        time.Time `json:"date"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ToMoodOutput converts a mood entity to its external representation.
func ToMoodOutput(mood *entity.MoodEntry) *MoodOutput {
	if mood == nil {
		return nil
	}

	return &MoodOutput{
		Uid:         mood.Uid,
		UserID:      mood.UserID,
		Score:       mood.Score,
		Emotions:    mood.Emotions,
		Description: mood.Description,
		Date:        mood.Date,
		CreatedAt:   mood.CreatedAt,
		UpdatedAt:   mood.UpdatedAt,
	}
}

// MoodUsecase defines the operations for mood entry management. Every
// operation takes the acting account's id; an entry owned by someone else
// behaves exactly like a missing one.
type MoodUsecase interface {
	// AddMood records a new mood entry for the owner.
	AddMood(ctx context.Context, ownerID int64, input *AddMoodInput) (*MoodOutput, error)

	// ListMoods returns all of the owner's entries, newest event date first.
	ListMoods(ctx context.Context, ownerID int64) ([]*MoodOutput, error)

	// UpdateMood applies a partial update to one of the owner's entries.
	UpdateMood(ctx context.Context, ownerID int64, input *UpdateMoodInput) (*MoodOutput, error)

	// DeleteMood removes one of the owner's entries.
	DeleteMood(ctx context.Context, ownerID, moodID int64) error
}
