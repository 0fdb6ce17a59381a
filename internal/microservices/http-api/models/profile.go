package models

import "time"

// UserProfile is the one-to-one extension of User. Elevated roles hang off it
// as optional capability records.
type UserProfile struct {
	ID                 int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID             string    `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	Bio                *string   `gorm:"type:text" json:"bio,omitempty"`
	IsPremium          bool      `gorm:"default:false" json:"is_premium"`
	FavoriteGenres     *string   `gorm:"size:500" json:"favorite_genres,omitempty"`
	PreferredLanguages *string   `gorm:"size:500" json:"preferred_languages,omitempty"`
	CreatedAt          time.Time `gorm:"autoCreateTime" json:"created_at"`

	Reviewer *ReviewerCapability `gorm:"foreignKey:UserProfileID;constraint:OnDelete:CASCADE;" json:"reviewer,omitempty"`
	Creator  *CreatorCapability  `gorm:"foreignKey:UserProfileID;constraint:OnDelete:CASCADE;" json:"creator,omitempty"`
}

func (UserProfile) TableName() string {
	return "user_profiles"
}

// ReviewerCapability marks a user whose reviews are auto-approved.
type ReviewerCapability struct {
	ID            int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserProfileID int64     `gorm:"uniqueIndex;not null" json:"user_profile_id"`
	IsActive      bool      `gorm:"not null;default:true" json:"is_active"`
	ExpertiseArea *string   `gorm:"size:200" json:"expertise_area,omitempty"`
	VerifiedAt    time.Time `gorm:"autoCreateTime" json:"verified_at"`
}

func (ReviewerCapability) TableName() string {
	return "reviewer_capabilities"
}

// CreatorCapability marks a user allowed to add, edit and delete content.
type CreatorCapability struct {
	ID                 int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserProfileID      int64     `gorm:"uniqueIndex;not null" json:"user_profile_id"`
	IsActive           bool      `gorm:"not null;default:true" json:"is_active"`
	Expertise          *string   `gorm:"size:200" json:"expertise,omitempty"`
	TotalContentsAdded int       `gorm:"not null;default:0" json:"total_contents_added"`
	VerifiedAt         time.Time `gorm:"autoCreateTime" json:"verified_at"`
}

func (CreatorCapability) TableName() string {
	return "creator_capabilities"
}

// CapabilityState is the resolved state of one optional capability record.
// A missing record is CapabilityNone, which is not an error.
type CapabilityState int

const (
	CapabilityNone CapabilityState = iota
	CapabilityInactive
	CapabilityActive
)

func (s CapabilityState) String() string {
	switch s {
	case CapabilityActive:
		return "active"
	case CapabilityInactive:
		return "inactive"
	default:
		return "none"
	}
}

// Active reports whether the capability grants its permission.
func (s CapabilityState) Active() bool {
	return s == CapabilityActive
}

// Exists reports whether a record is present, active or not.
func (s CapabilityState) Exists() bool {
	return s != CapabilityNone
}

// StateOf maps an is_active flag to a state; callers pass present=false for a missing record.
func StateOf(present, isActive bool) CapabilityState {
	switch {
	case !present:
		return CapabilityNone
	case isActive:
		return CapabilityActive
	default:
		return CapabilityInactive
	}
}

// Capabilities is the resolved capability set of a single user.
type Capabilities struct {
	Reviewer CapabilityState
	Creator  CapabilityState
}
