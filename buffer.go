package sitemap

import (
	"fmt"
	"net/url"
)

// DefaultSitemapPattern names the sitemaps of a Buffer, numbered from 1.
const DefaultSitemapPattern = "sitemap_%d.xml"

// Buffer splits a stream of entries into as many sitemaps as needed,
// none of them holding more than MaxEntries entries.
type Buffer struct {
	current  *Sitemap
	Sitemaps []*Sitemap
}

func NewBuffer() *Buffer {
	return &Buffer{}
}

// Flush seals the current sitemap and appends it to Sitemaps.
// This occurs only if the current sitemap is non-empty. Calling Flush on an empty buffer is a no-op.
func (b *Buffer) Flush() {
	if !b.current.IsEmpty() {
		b.Sitemaps = append(b.Sitemaps, b.current)
	}
	b.current = nil
}

// AddEntry adds an entry to the buffer.
// If the current sitemap is full, it calls Flush() before inserting the entry to a new Sitemap.
func (b *Buffer) AddEntry(e *Entry) {
	if b.current.IsFull() {
		b.Flush()
	}
	if b.current == nil {
		b.current = NewSitemap()
	}
	b.current.Entries = append(b.current.Entries, e)
}

// Len returns the number of entries added so far.
func (b *Buffer) Len() int {
	n := 0
	for _, s := range b.Sitemaps {
		n += len(s.Entries)
	}
	if b.current != nil {
		n += len(b.current.Entries)
	}
	return n
}

// Locations resolves the name of every flushed sitemap against base.
// pattern must hold a single %d verb; an empty pattern stands for DefaultSitemapPattern.
func (b *Buffer) Locations(base *url.URL, pattern string) ([]*url.URL, error) {
	if base == nil || !base.IsAbs() {
		return nil, fmt.Errorf("%w: base location must be an absolute URL", ErrInvalidArgument)
	}
	if pattern == "" {
		pattern = DefaultSitemapPattern
	}
	locations := make([]*url.URL, len(b.Sitemaps))
	for i := range b.Sitemaps {
		ref, err := url.Parse(fmt.Sprintf(pattern, i+1))
		if err != nil {
			return nil, err
		}
		locations[i] = base.ResolveReference(ref)
	}
	return locations, nil
}

// Index returns a sitemap index referencing every flushed sitemap (see Locations).
func (b *Buffer) Index(base *url.URL, pattern string) (*SitemapIndex, error) {
	locations, err := b.Locations(base, pattern)
	if err != nil {
		return nil, err
	}
	return NewSitemapIndex(locations...), nil
}
