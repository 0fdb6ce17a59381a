package models

import "time"

type WatchlistEntry struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    string    `gorm:"type:uuid;not null;uniqueIndex:idx_watchlist_user_content" json:"user_id"`
	ContentID int64     `gorm:"not null;uniqueIndex:idx_watchlist_user_content" json:"content_id"`
	AddedAt   time.Time `gorm:"autoCreateTime;index" json:"added_at"`

	// Associations
	User    *User    `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;" json:"user,omitempty"`
	Content *Content `gorm:"foreignKey:ContentID;constraint:OnDelete:CASCADE;" json:"content,omitempty"`
}

func (WatchlistEntry) TableName() string {
	return "watchlist"
}
