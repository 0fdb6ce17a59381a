package dto

import (
	"time"

	"cinehub/internal/microservices/http-api/models"
)

// RateRequest for creating or updating a rating
type RateRequest struct {
	RatingValue int `json:"rating_value" binding:"required"`
}

// RatingResponse for returning the caller's own rating
type RatingResponse struct {
	ContentID   int64     `json:"content_id"`
	RatingValue int       `json:"rating_value"`
	RatingDate  time.Time `json:"rating_date"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func FromRating(r *models.Rating) RatingResponse {
	return RatingResponse{
		ContentID:   r.ContentID,
		RatingValue: r.RatingValue,
		RatingDate:  r.RatingDate,
		UpdatedAt:   r.UpdatedAt,
	}
}

// RatedContent pairs a rating with the content it applies to, for dashboards.
type RatedContent struct {
	RatingResponse
	Content *ContentSummary `json:"content,omitempty"`
}

func FromRatings(list []models.Rating) []RatedContent {
	out := make([]RatedContent, 0, len(list))
	for i := range list {
		item := RatedContent{RatingResponse: FromRating(&list[i])}
		if list[i].Content != nil {
			s := FromContent(*list[i].Content)
			item.Content = &s
		}
		out = append(out, item)
	}
	return out
}
