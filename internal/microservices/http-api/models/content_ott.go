package models

type OTTPlatform string

const (
	OTTNetflix     OTTPlatform = "Netflix"
	OTTAmazonPrime OTTPlatform = "Amazon Prime"
	OTTDisneyPlus  OTTPlatform = "Disney+"
	OTTSonyLIV     OTTPlatform = "SonyLIV"
	OTTZee5        OTTPlatform = "Zee5"
	OTTJioCinema   OTTPlatform = "JioCinema"
	OTTOther       OTTPlatform = "Other"
)

var AllOTTPlatforms = []OTTPlatform{
	OTTNetflix, OTTAmazonPrime, OTTDisneyPlus, OTTSonyLIV, OTTZee5, OTTJioCinema, OTTOther,
}

func (p OTTPlatform) Valid() bool {
	for _, v := range AllOTTPlatforms {
		if v == p {
			return true
		}
	}
	return false
}

// ContentOTT records where a content item can be streamed. One row per platform.
type ContentOTT struct {
	ID           int64       `json:"id" gorm:"primaryKey;autoIncrement"`
	ContentID    int64       `json:"content_id" gorm:"not null;uniqueIndex:idx_content_platform"`
	PlatformName OTTPlatform `json:"platform_name" gorm:"size:50;not null;uniqueIndex:idx_content_platform"`
	WatchURL     *string     `json:"watch_url,omitempty" gorm:"size:1000"`
	IsFree       bool        `json:"is_free" gorm:"default:false"`
}

func (ContentOTT) TableName() string {
	return "content_ott"
}
