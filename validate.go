package sitemap

import (
	"fmt"
	"math"
	"net/url"
	"strings"
)

// Each Validate function returns nil or the first violation found, as a
// *ValidationError. The IsValid form applies the same rule.

func isAbsolute(u *url.URL) bool {
	return u != nil && u.IsAbs()
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func checkCapacity(kind string, n int) error {
	if n > MaxEntries {
		return fmt.Errorf("%w: a %s cannot contain more than %d entries, got %d", ErrTooManyEntries, kind, MaxEntries, n)
	}
	return nil
}

// ValidateImage checks that the image location, and the license if set, are absolute URLs.
func ValidateImage(img *Image) error {
	if img == nil {
		return invalid("", "image is nil")
	}
	if !isAbsolute(img.Location) {
		return invalid("loc", "image location must be an absolute URL")
	}
	if img.License != nil && !img.License.IsAbs() {
		return invalid("license", "image license must be an absolute URL")
	}
	return nil
}

// IsValidImage reports whether ValidateImage accepts img.
func IsValidImage(img *Image) bool {
	return ValidateImage(img) == nil
}

// ValidateVideo checks the required video fields, and that every URL set is absolute.
func ValidateVideo(v *Video) error {
	if v == nil {
		return invalid("", "video is nil")
	}
	if !isAbsolute(v.ThumbnailLocation) {
		return invalid("thumbnail_loc", "video thumbnail location must be an absolute URL")
	}
	if isBlank(v.Title) {
		return invalid("title", "video title is required")
	}
	if isBlank(v.Description) {
		return invalid("description", "video description is required")
	}
	if v.ContentLocation == nil && v.PlayerLocation == nil {
		return invalid("", "video requires a content location or a player location")
	}
	if v.ContentLocation != nil && !v.ContentLocation.IsAbs() {
		return invalid("content_loc", "video content location must be an absolute URL")
	}
	if v.PlayerLocation != nil && !v.PlayerLocation.IsAbs() {
		return invalid("player_loc", "video player location must be an absolute URL")
	}
	if v.UploaderInfo != nil && !v.UploaderInfo.IsAbs() {
		return invalid("uploader.info", "video uploader info must be an absolute URL")
	}
	return nil
}

// IsValidVideo reports whether ValidateVideo accepts v.
func IsValidVideo(v *Video) bool {
	return ValidateVideo(v) == nil
}

// ValidateNews checks that the publication, the title and the publication date are set.
func ValidateNews(n *News) error {
	if n == nil {
		return invalid("", "news is nil")
	}
	if isBlank(n.PublicationName) {
		return invalid("publication.name", "news publication name is required")
	}
	if isBlank(n.PublicationLanguage) {
		return invalid("publication.language", "news publication language is required")
	}
	if isBlank(n.Title) {
		return invalid("title", "news title is required")
	}
	if n.PublicationDate.IsZero() {
		return invalid("publication_date", "news publication date is required")
	}
	return nil
}

// IsValidNews reports whether ValidateNews accepts n.
func IsValidNews(n *News) bool {
	return ValidateNews(n) == nil
}

// ValidateAlternate checks that the link has a language and an absolute href.
func ValidateAlternate(a *Alternate) error {
	if a == nil {
		return invalid("", "alternate link is nil")
	}
	if isBlank(a.HrefLang) {
		return invalid("hreflang", "alternate link hreflang is required")
	}
	if !isAbsolute(a.Href) {
		return invalid("href", "alternate link href must be an absolute URL")
	}
	return nil
}

// IsValidAlternate reports whether ValidateAlternate accepts a.
func IsValidAlternate(a *Alternate) bool {
	return ValidateAlternate(a) == nil
}

func isValidPriority(p float64) bool {
	return !math.IsNaN(p) && p >= 0 && p <= 1
}

// ValidateEntry checks a sitemap entry and all of its extensions.
func ValidateEntry(e *Entry) error {
	if e == nil {
		return invalid("", "entry is nil")
	}
	if !isAbsolute(e.Location) {
		return invalid("loc", "location must be an absolute URL")
	}
	if e.ChangeFrequency != "" && !e.ChangeFrequency.IsDefined() {
		return invalid("changefreq", fmt.Sprintf("undefined change frequency %q", string(e.ChangeFrequency)))
	}
	if e.Priority != nil && !isValidPriority(*e.Priority) {
		return invalid("priority", fmt.Sprintf("priority must be between 0.0 and 1.0, got %v", *e.Priority))
	}
	for i, img := range e.Images {
		if err := ValidateImage(img); err != nil {
			return within(fmt.Sprintf("image[%d]", i), err)
		}
	}
	for i, v := range e.Videos {
		if err := ValidateVideo(v); err != nil {
			return within(fmt.Sprintf("video[%d]", i), err)
		}
	}
	for i, n := range e.News {
		if err := ValidateNews(n); err != nil {
			return within(fmt.Sprintf("news[%d]", i), err)
		}
	}
	for i, a := range e.Alternates {
		if err := ValidateAlternate(a); err != nil {
			return within(fmt.Sprintf("link[%d]", i), err)
		}
	}
	return nil
}

// IsValidEntry reports whether ValidateEntry accepts e.
func IsValidEntry(e *Entry) bool {
	return ValidateEntry(e) == nil
}

// ValidateIndexEntry checks that a sitemap reference has an absolute location.
func ValidateIndexEntry(ref *FileReference) error {
	if ref == nil {
		return invalid("", "sitemap reference is nil")
	}
	if !isAbsolute(ref.Location) {
		return invalid("loc", "sitemap location must be an absolute URL")
	}
	return nil
}

// IsValidIndexEntry reports whether ValidateIndexEntry accepts ref.
func IsValidIndexEntry(ref *FileReference) bool {
	return ValidateIndexEntry(ref) == nil
}

// ValidateSitemap checks the number of entries, then every entry in order.
func ValidateSitemap(s *Sitemap) error {
	if s == nil {
		return fmt.Errorf("%w: sitemap is nil", ErrInvalidArgument)
	}
	if err := checkCapacity("sitemap", len(s.Entries)); err != nil {
		return err
	}
	for i, e := range s.Entries {
		if err := ValidateEntry(e); err != nil {
			return within(fmt.Sprintf("url[%d]", i), err)
		}
	}
	return nil
}

// IsValidSitemap reports whether ValidateSitemap accepts s.
func IsValidSitemap(s *Sitemap) bool {
	return ValidateSitemap(s) == nil
}

// ValidateSitemapIndex checks the number of references, then every reference in order.
func ValidateSitemapIndex(idx *SitemapIndex) error {
	if idx == nil {
		return fmt.Errorf("%w: sitemap index is nil", ErrInvalidArgument)
	}
	if err := checkCapacity("sitemap index", len(idx.SitemapRefs)); err != nil {
		return err
	}
	for i, ref := range idx.SitemapRefs {
		if err := ValidateIndexEntry(ref); err != nil {
			return within(fmt.Sprintf("sitemap[%d]", i), err)
		}
	}
	return nil
}

// IsValidSitemapIndex reports whether ValidateSitemapIndex accepts idx.
func IsValidSitemapIndex(idx *SitemapIndex) bool {
	return ValidateSitemapIndex(idx) == nil
}
