package dto

import (
	"time"

	"cinehub/internal/microservices/http-api/models"
)

// CreateReviewRequest for posting a review on a content item
type CreateReviewRequest struct {
	Comment string `json:"comment" binding:"max=5000"`
}

// UpdateReviewRequest for editing an existing review
type UpdateReviewRequest struct {
	Comment string `json:"comment" binding:"max=5000"`
}

// ModerationRequest carries a moderator decision: approve, reject or delete.
type ModerationRequest struct {
	Action string `json:"action" binding:"required"`
}

type ReviewResponse struct {
	ID         int64           `json:"id"`
	ContentID  int64           `json:"content_id"`
	UserID     string          `json:"user_id"`
	Username   string          `json:"username,omitempty"`
	Comment    string          `json:"comment"`
	IsApproved bool            `json:"is_approved"`
	IsVerified bool            `json:"is_verified"`
	ReviewDate time.Time       `json:"review_date"`
	UpdatedAt  time.Time       `json:"updated_at"`
	Content    *ContentSummary `json:"content,omitempty"`
}

func FromReview(r *models.Review) ReviewResponse {
	resp := ReviewResponse{
		ID:         r.ID,
		ContentID:  r.ContentID,
		UserID:     r.UserID,
		Comment:    r.Comment,
		IsApproved: r.IsApproved,
		IsVerified: r.IsVerified,
		ReviewDate: r.ReviewDate,
		UpdatedAt:  r.UpdatedAt,
	}
	if r.User != nil {
		resp.Username = r.User.Username
	}
	if r.Content != nil {
		s := FromContent(*r.Content)
		resp.Content = &s
	}
	return resp
}

func FromReviews(list []models.Review) []ReviewResponse {
	out := make([]ReviewResponse, 0, len(list))
	for i := range list {
		out = append(out, FromReview(&list[i]))
	}
	return out
}

// ModerationQueue is the staff review queue with its counters.
type ModerationQueue struct {
	Filter   string           `json:"filter"`
	Reviews  []ReviewResponse `json:"reviews"`
	Total    int64            `json:"total"`
	Pending  int64            `json:"pending"`
	Approved int64            `json:"approved"`
}
