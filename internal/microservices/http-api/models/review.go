package models

import "time"

// Review is not unique per (user, content): a user may post several.
type Review struct {
	ID         int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID     string    `json:"user_id" gorm:"type:uuid;not null;index"`
	ContentID  int64     `json:"content_id" gorm:"not null;index"`
	Comment    string    `json:"comment" gorm:"not null;type:text"`
	ReviewDate time.Time `json:"review_date" gorm:"autoCreateTime;index"`
	UpdatedAt  time.Time `json:"updated_at" gorm:"autoUpdateTime"`
	IsApproved bool      `json:"is_approved" gorm:"not null;default:false;index"`
	IsVerified bool      `json:"is_verified" gorm:"not null;default:false"` // author held reviewer capability at creation

	// Associations
	User    *User    `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;"`
	Content *Content `json:"content,omitempty" gorm:"foreignKey:ContentID;constraint:OnDelete:CASCADE;"`
}

func (Review) TableName() string {
	return "reviews"
}
