package sitemap

import (
	"net/url"
)

// SitemapIndex is an ordered list of references to sitemaps.
type SitemapIndex struct {
	SitemapRefs []*FileReference
}

// NewSitemapIndex creates a sitemap index referencing all sitemap urls given.
func NewSitemapIndex(sitemapURLs ...*url.URL) *SitemapIndex {
	refs := make([]*FileReference, len(sitemapURLs))
	for i, loc := range sitemapURLs {
		refs[i] = &FileReference{Location: loc}
	}
	return &SitemapIndex{SitemapRefs: refs}
}

// IsEmpty returns true if the index is empty or nil.
func (s *SitemapIndex) IsEmpty() bool {
	return s == nil || len(s.SitemapRefs) == 0
}
