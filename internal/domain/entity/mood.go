package entity

import (
	"time"
)

// Mood score bounds. Scores outside this range are rejected on create and update.
const (
	MoodScoreMin = 1
	MoodScoreMax = 5
)

// MoodEntry is a single scored, dated mood record owned by exactly one Account.
type MoodEntry struct {
	Uid         int64     // Numeric identifier assigned by the store on creation.
	UserID      int64     // The owning account. Every entry belongs to exactly one.
	Score       int16     // Mood level within [MoodScoreMin, MoodScoreMax].
	Emotions    string    // Comma-joined emotion tags, may be empty.
	Description string    // Free-text comment, may be empty.
	Date        time.Time // The user-asserted event date, distinct from CreatedAt.
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
