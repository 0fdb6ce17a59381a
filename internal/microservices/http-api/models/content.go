package models

import "time"

type Content struct {
	ID          int64       `json:"id" gorm:"primaryKey;autoIncrement"`
	Title       string      `json:"title" gorm:"size:200;not null"`
	Description string      `json:"description" gorm:"type:text;not null"`
	Genre       Genre       `json:"genre" gorm:"size:50;not null;index"`
	Language    Language    `json:"language" gorm:"size:50;not null"`
	ContentType ContentType `json:"content_type" gorm:"size:20;not null;default:'Movie'"`
	ReleaseDate time.Time   `json:"release_date" gorm:"type:date;not null"`
	Duration    *string     `json:"duration,omitempty" gorm:"size:20"` // "2h 30m" or "Season 1"
	Director    *string     `json:"director,omitempty" gorm:"size:100"`
	Cast        *string     `json:"cast,omitempty" gorm:"type:text"`
	PosterURL   *string     `json:"poster_url,omitempty" gorm:"size:10000"`
	TrailerURL  *string     `json:"trailer_url,omitempty" gorm:"size:10000"`
	CreatedAt   time.Time   `json:"created_at" gorm:"autoCreateTime;index"`
	UpdatedAt   time.Time   `json:"updated_at" gorm:"autoUpdateTime"`

	// association
	OTTPlatforms []ContentOTT `json:"ott_platforms,omitempty" gorm:"foreignKey:ContentID;constraint:OnDelete:CASCADE;"`
}

func (Content) TableName() string {
	return "content"
}

// RankedContent is a content row annotated with aggregate rating data.
// TopRating is the highest single rating joined to the row, 0 when unrated.
type RankedContent struct {
	Content
	TopRating     int     `json:"-" gorm:"column:top_rating;->"`
	AverageRating float64 `json:"-" gorm:"column:average_rating;->"`
}

// GenreCount is one row of a group-by-genre aggregate.
type GenreCount struct {
	Genre Genre `json:"genre"`
	Count int64 `json:"count"`
}
