package model

import (
	"time"
)

// MoodModel maps to the moods table. Rows are cascade-deleted with their
// owning account.
type MoodModel struct {
	Uid         int64     `gorm:"column:uid;primaryKey;autoIncrement"`
	UserID      int64     `gorm:"column:user_id;not null;index:idx_moods_user_id"`
	Score       int16     `gorm:"column:score;type:smallint;not null"`
	Emotions    string    `gorm:"column:emotions;size:255"`
	Description string    `gorm:"column:description;type:text"`
	Date        time.Time `gorm:"column:date;type:date;not null"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName specifies the database table name for GORM.
func (MoodModel) TableName() string {
	return "moods"
}
