package models

import (
	"time"
)

type RefreshToken struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	UserID    string    `gorm:"type:uuid;not null;index" json:"user_id"`
	Token     string    `gorm:"uniqueIndex;not null" json:"token"`
	ExpiresAt time.Time `gorm:"not null" json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
	Revoked   bool      `gorm:"default:false" json:"revoked"`
}

func (RefreshToken) TableName() string {
	return "refresh_tokens"
}

// All returns every model managed by AutoMigrate, parents before children.
func All() []any {
	return []any{
		&User{},
		&UserProfile{},
		&ReviewerCapability{},
		&CreatorCapability{},
		&RefreshToken{},
		&Content{},
		&ContentOTT{},
		&Rating{},
		&Review{},
		&WatchlistEntry{},
	}
}
