package dto

import (
	"time"

	"cinehub/internal/microservices/http-api/models"
)

// GrantRoleRequest: optional expertise recorded with a granted capability
type GrantRoleRequest struct {
	Expertise *string `json:"expertise,omitempty" binding:"omitempty,max=200"`
}

// UserRow is a user as shown in the staff listing. It is a projection: the
// role flags come from the resolved capabilities, never stored on the user.
type UserRow struct {
	ID         string     `json:"id"`
	Username   string     `json:"username"`
	Email      string     `json:"email"`
	IsStaff    bool       `json:"is_staff"`
	IsActive   bool       `json:"is_active"`
	IsReviewer bool       `json:"is_reviewer"`
	IsCreator  bool       `json:"is_creator"`
	CreatedAt  time.Time  `json:"created_at"`
	LastLogin  *time.Time `json:"last_login,omitempty"`
}

// NewUserRow builds a row from the user and its resolved capability set.
func NewUserRow(u models.User, caps models.Capabilities) UserRow {
	return UserRow{
		ID:         u.ID,
		Username:   u.Username,
		Email:      u.Email,
		IsStaff:    u.IsStaff,
		IsActive:   u.IsActive,
		IsReviewer: caps.Reviewer.Active(),
		IsCreator:  caps.Creator.Active(),
		CreatedAt:  u.CreatedAt,
		LastLogin:  u.LastLogin,
	}
}

// UserListResponse for returning a page of users
type UserListResponse struct {
	Data     []UserRow `json:"data"`
	Page     int       `json:"page"`
	PageSize int       `json:"page_size"`
	Total    int64     `json:"total"`
}

// AdminStats is the staff dashboard summary.
type AdminStats struct {
	TotalUsers      int64            `json:"total_users"`
	TotalContent    int64            `json:"total_content"`
	TotalReviews    int64            `json:"total_reviews"`
	PendingReviews  int64            `json:"pending_reviews"`
	ApprovedReviews int64            `json:"approved_reviews"`
	ReviewerCount   int64            `json:"reviewer_count"`
	CreatorCount    int64            `json:"creator_count"`
	RecentContent   []ContentSummary `json:"recent_content"`
	RecentReviews   []ReviewResponse `json:"recent_reviews"`
}
