// Package model contains GORM persistence models. These stay separate from
// the domain entities so database tags never leak into business code.
package model

import (
	"time"
)

// AccountModel maps to the accounts table.
type AccountModel struct {
	Uid          int64        `gorm:"column:uid;primaryKey;autoIncrement"`
	Username     string       `gorm:"column:username;size:255;not null;uniqueIndex:idx_accounts_username"`
	Email        string       `gorm:"column:email;size:255;not null;uniqueIndex:idx_accounts_email"`
	PasswordHash string       `gorm:"column:password_hash;size:255;not null"`
	Timezone     string       `gorm:"column:timezone;size:64"`
	Moods        []*MoodModel `gorm:"foreignKey:UserID;references:Uid;constraint:OnDelete:CASCADE"`
	CreatedAt    time.Time    `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time    `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName specifies the database table name for GORM.
func (AccountModel) TableName() string {
	return "accounts"
}
