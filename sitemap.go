package sitemap

import (
	"net/url"
	"time"
)

// XML namespaces used in sitemap documents.
const (
	SitemapNamespace = "http://www.sitemaps.org/schemas/sitemap/0.9"
	ImageNamespace   = "http://www.google.com/schemas/sitemap-image/1.1"
	VideoNamespace   = "http://www.google.com/schemas/sitemap-video/1.1"
	NewsNamespace    = "http://www.google.com/schemas/sitemap-news/0.9"
	XhtmlNamespace   = "http://www.w3.org/1999/xhtml"
)

// MaxEntries is the maximum number of entries allowed in a sitemap or a sitemap index.
const MaxEntries = 50000

// ChangeFrequency is an optional attribute for sitemap entries.
// The zero value means the attribute is absent.
type ChangeFrequency string

const (
	Always  ChangeFrequency = "always"
	Hourly  ChangeFrequency = "hourly"
	Daily   ChangeFrequency = "daily"
	Weekly  ChangeFrequency = "weekly"
	Monthly ChangeFrequency = "monthly"
	Yearly  ChangeFrequency = "yearly"
	Never   ChangeFrequency = "never"
)

// IsDefined reports whether f is one of the protocol's change frequencies.
func (f ChangeFrequency) IsDefined() bool {
	switch f {
	case Always, Hourly, Daily, Weekly, Monthly, Yearly, Never:
		return true
	}
	return false
}

// FileReference is a reference to a file (given by absolute URL) and the last modification.
type FileReference struct {
	Location         *url.URL
	LastModification *time.Time // optional
}

// Entry is a sitemap entry (a url block in the XML document).
type Entry struct {
	FileReference
	ChangeFrequency ChangeFrequency // optional
	Priority        *float64        // optional, within [0.0, 1.0]

	Images     []*Image
	Videos     []*Video
	News       []*News
	Alternates []*Alternate
}

// NewEntry creates an entry for loc with empty extension lists.
func NewEntry(loc *url.URL) *Entry {
	return &Entry{
		FileReference: FileReference{Location: loc},
		Images:        []*Image{},
		Videos:        []*Video{},
		News:          []*News{},
		Alternates:    []*Alternate{},
	}
}

// Sitemap is an ordered list of entries. The order of Entries is the order of the output.
type Sitemap struct {
	Entries []*Entry
}

// NewSitemap creates a sitemap holding entries.
func NewSitemap(entries ...*Entry) *Sitemap {
	if entries == nil {
		entries = []*Entry{}
	}
	return &Sitemap{Entries: entries}
}

// IsEmpty returns true if the sitemap is empty or nil.
func (s *Sitemap) IsEmpty() bool {
	return s == nil || len(s.Entries) == 0
}

// IsFull returns true if the sitemap has reached the maximum number of entries allowed.
func (s *Sitemap) IsFull() bool {
	if s == nil {
		return false
	}
	return len(s.Entries) >= MaxEntries
}
