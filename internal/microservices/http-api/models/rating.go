package models

import "time"

// Rating is unique per (user, content); re-rating overwrites RatingValue.
type Rating struct {
	ID          int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID      string    `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_rating_user_content"`
	ContentID   int64     `json:"content_id" gorm:"not null;uniqueIndex:idx_rating_user_content;index"`
	RatingValue int       `json:"rating_value" gorm:"not null;check:rating_value >= 1 AND rating_value <= 5"`
	RatingDate  time.Time `json:"rating_date" gorm:"autoCreateTime;index"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	// Associations
	User    *User    `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;"`
	Content *Content `json:"content,omitempty" gorm:"foreignKey:ContentID;constraint:OnDelete:CASCADE;"`
}

func (Rating) TableName() string {
	return "ratings"
}
