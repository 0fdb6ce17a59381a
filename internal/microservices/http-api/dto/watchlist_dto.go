package dto

import (
	"time"

	"cinehub/internal/microservices/http-api/models"
)

// AddToWatchlistRequest: payload for adding content to the watchlist
type AddToWatchlistRequest struct {
	ContentID int64 `json:"content_id" binding:"required"`
}

// WatchlistItem represents one watchlist entry in responses
type WatchlistItem struct {
	ContentID int64           `json:"content_id"`
	AddedAt   time.Time       `json:"added_at"`
	Content   *ContentSummary `json:"content,omitempty"`
}

// WatchlistResponse wraps the list of watchlist items
type WatchlistResponse struct {
	Items []WatchlistItem `json:"items"`
	Total int             `json:"total"`
}

func FromWatchlist(entries []models.WatchlistEntry) []WatchlistItem {
	out := make([]WatchlistItem, 0, len(entries))
	for _, e := range entries {
		item := WatchlistItem{ContentID: e.ContentID, AddedAt: e.AddedAt}
		if e.Content != nil {
			s := FromContent(*e.Content)
			item.Content = &s
		}
		out = append(out, item)
	}
	return out
}
