package dto

import (
	"strings"
	"time"

	"cinehub/internal/microservices/http-api/models"
)

// DateLayout is the wire format of release dates.
const DateLayout = "2006-01-02"

// OTTRequest is the optional streaming entry attached to a content item.
type OTTRequest struct {
	PlatformName string  `json:"platform_name" binding:"required"`
	WatchURL     *string `json:"watch_url,omitempty"`
	IsFree       bool    `json:"is_free"`
}

// ContentRequest is used for both create and full update.
type ContentRequest struct {
	Title       string      `json:"title" binding:"required,max=200"`
	Description string      `json:"description" binding:"required"`
	Genre       string      `json:"genre" binding:"required"`
	Language    string      `json:"language" binding:"required"`
	ContentType string      `json:"content_type"`
	ReleaseDate string      `json:"release_date" binding:"required"` // YYYY-MM-DD
	Duration    *string     `json:"duration,omitempty"`
	Director    *string     `json:"director,omitempty"`
	Cast        *string     `json:"cast,omitempty"`
	PosterURL   *string     `json:"poster_url,omitempty"`
	TrailerURL  *string     `json:"trailer_url,omitempty"`
	OTT         *OTTRequest `json:"ott,omitempty"`
}

// Normalize trims free-text fields and defaults the content type to Movie.
func (r *ContentRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.Description = strings.TrimSpace(r.Description)
	if r.ContentType == "" {
		r.ContentType = string(models.ContentTypeMovie)
	}
	if r.Duration != nil {
		d := strings.TrimSpace(*r.Duration)
		r.Duration = &d
	}
}

// ApplyTo copies the request onto m. Enum and date values must be validated first.
func (r ContentRequest) ApplyTo(m *models.Content, releaseDate time.Time) {
	m.Title = r.Title
	m.Description = r.Description
	m.Genre = models.Genre(r.Genre)
	m.Language = models.Language(r.Language)
	m.ContentType = models.ContentType(r.ContentType)
	m.ReleaseDate = releaseDate
	m.Duration = r.Duration
	m.Director = r.Director
	m.Cast = r.Cast
	m.PosterURL = r.PosterURL
	m.TrailerURL = r.TrailerURL
}

// ToModel builds the OTT row; nil when no entry was sent.
func (o *OTTRequest) ToModel() *models.ContentOTT {
	if o == nil {
		return nil
	}
	return &models.ContentOTT{
		PlatformName: models.OTTPlatform(o.PlatformName),
		WatchURL:     o.WatchURL,
		IsFree:       o.IsFree,
	}
}

// ContentSummary is the card-sized view used in lists and recommendations.
type ContentSummary struct {
	ID            int64              `json:"id"`
	Title         string             `json:"title"`
	Genre         models.Genre       `json:"genre"`
	Language      models.Language    `json:"language"`
	ContentType   models.ContentType `json:"content_type"`
	ReleaseDate   string             `json:"release_date"`
	PosterURL     *string            `json:"poster_url,omitempty"`
	AverageRating *float64           `json:"avg_rating,omitempty"`
}

func FromContent(m models.Content) ContentSummary {
	return ContentSummary{
		ID:          m.ID,
		Title:       m.Title,
		Genre:       m.Genre,
		Language:    m.Language,
		ContentType: m.ContentType,
		ReleaseDate: m.ReleaseDate.Format(DateLayout),
		PosterURL:   m.PosterURL,
	}
}

func FromRankedContent(m models.RankedContent) ContentSummary {
	s := FromContent(m.Content)
	avg := m.AverageRating
	s.AverageRating = &avg
	return s
}

func FromContents(list []models.Content) []ContentSummary {
	out := make([]ContentSummary, 0, len(list))
	for _, m := range list {
		out = append(out, FromContent(m))
	}
	return out
}

func FromRankedContents(list []models.RankedContent) []ContentSummary {
	out := make([]ContentSummary, 0, len(list))
	for _, m := range list {
		out = append(out, FromRankedContent(m))
	}
	return out
}

// ContentDetail is the full view of a single content item.
type ContentDetail struct {
	models.Content
	ReleaseDate   string           `json:"release_date"`
	AverageRating float64          `json:"avg_rating"`
	RatingCount   int64            `json:"rating_count"`
	UserRating    *int             `json:"user_rating,omitempty"`
	InWatchlist   bool             `json:"in_watchlist"`
	Similar       []ContentSummary `json:"similar"`
	Reviews       []ReviewResponse `json:"reviews"`
}

// PaginatedContentResponse for returning paginated content
type PaginatedContentResponse struct {
	Data       []ContentSummary `json:"data"`
	Page       int              `json:"page"`
	PageSize   int              `json:"page_size"`
	Total      int              `json:"total"`
	TotalPages int              `json:"total_pages"`
}

// NewPaginatedContentResponse creates a paginated content response
func NewPaginatedContentResponse(data []ContentSummary, total, page, pageSize int) *PaginatedContentResponse {
	totalPages := 0
	if pageSize > 0 {
		totalPages = total / pageSize
		if total%pageSize != 0 {
			totalPages++
		}
	}

	return &PaginatedContentResponse{
		Data:       data,
		Page:       page,
		PageSize:   pageSize,
		Total:      total,
		TotalPages: totalPages,
	}
}

// HomeFeed is the landing page payload.
type HomeFeed struct {
	Trending     []ContentSummary    `json:"trending"`
	Recent       []ContentSummary    `json:"recent"`
	TopGenres    []models.GenreCount `json:"top_genres"`
	TotalContent int64               `json:"total_content"`
}

// StreamingResponse lists content available on OTT platforms.
type StreamingResponse struct {
	Platforms []models.OTTPlatform `json:"platforms"`
	Items     []models.Content     `json:"items"`
	Total     int                  `json:"total"`
}
