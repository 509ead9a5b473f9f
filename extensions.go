package sitemap

import (
	"net/url"
	"time"
)

// Image is an image attached to an entry (image sitemap extension).
type Image struct {
	Location    *url.URL
	Caption     string
	Title       string
	GeoLocation string
	License     *url.URL // optional
}

// Video is a video attached to an entry (video sitemap extension).
//
// ThumbnailLocation, Title and Description are required, as well as
// at least one of ContentLocation and PlayerLocation.
type Video struct {
	ThumbnailLocation *url.URL
	Title             string
	Description       string

	ContentLocation *url.URL
	PlayerLocation  *url.URL
	Duration        *time.Duration
	PublicationDate *time.Time
	FamilyFriendly  *bool
	Category        string
	Uploader        string
	UploaderInfo    *url.URL
	ViewCount       *int64

	// Blank tags are skipped when writing.
	Tags []string
}

// News is a news article attached to an entry (news sitemap extension).
//
// Genres, Keywords and StockTickers are free text, comma-separated by the caller.
type News struct {
	PublicationName     string
	PublicationLanguage string
	PublicationDate     time.Time
	Title               string

	Genres       string
	Keywords     string
	StockTickers string
}

// Alternate is a link to an alternate language or regional version of an entry.
type Alternate struct {
	HrefLang string
	Href     *url.URL
}
