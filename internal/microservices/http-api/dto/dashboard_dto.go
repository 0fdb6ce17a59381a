package dto

import (
	"cinehub/internal/microservices/http-api/models"
)

// UserDashboard is the signed-in user's overview page.
type UserDashboard struct {
	Watchlist       []WatchlistItem  `json:"watchlist"`
	RecentRatings   []RatedContent   `json:"recent_ratings"`
	RecentReviews   []ReviewResponse `json:"recent_reviews"`
	Recommendations []ContentSummary `json:"recommendations"`
	IsReviewer      bool             `json:"is_reviewer"`
	IsCreator       bool             `json:"is_creator"`
}

// CreatorDashboard is shown to users holding an active creator capability.
type CreatorDashboard struct {
	Creator       *models.CreatorCapability `json:"creator"`
	RecentContent []ContentSummary          `json:"recent_content"`
	TotalContent  int64                     `json:"total_content"`
	AddedLastWeek int64                     `json:"added_last_week"`
}
