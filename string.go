package sitemap

import (
	"bytes"
	"context"
)

// ToXMLString returns the XML document NewWriter(opts).WriteSitemap would write for s.
func (s *Sitemap) ToXMLString(ctx context.Context, opts *Options) (string, error) {
	var buf bytes.Buffer
	if err := NewWriter(opts).WriteSitemap(ctx, s, &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// ToXMLString returns the XML document NewWriter(opts).WriteSitemapIndex would write for idx.
func (idx *SitemapIndex) ToXMLString(ctx context.Context, opts *Options) (string, error) {
	var buf bytes.Buffer
	if err := NewWriter(opts).WriteSitemapIndex(ctx, idx, &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
