package sitemap

import (
	"github.com/samber/lo"
)

// prepareEntries resolves the entries to write: validated in place when strict,
// filtered into a new slice otherwise. The result is checked against MaxEntries
// in both modes.
func prepareEntries(s *Sitemap, strict bool) ([]*Entry, error) {
	entries := s.Entries
	if strict {
		if err := ValidateSitemap(s); err != nil {
			return nil, err
		}
	} else {
		entries = filterEntries(s.Entries)
	}
	if err := checkCapacity("sitemap", len(entries)); err != nil {
		return nil, err
	}
	return entries, nil
}

func prepareRefs(idx *SitemapIndex, strict bool) ([]*FileReference, error) {
	refs := idx.SitemapRefs
	if strict {
		if err := ValidateSitemapIndex(idx); err != nil {
			return nil, err
		}
	} else {
		refs = lo.Filter(idx.SitemapRefs, keep(IsValidIndexEntry))
	}
	if err := checkCapacity("sitemap index", len(refs)); err != nil {
		return nil, err
	}
	return refs, nil
}

// filterEntries keeps the entries with an absolute location. Kept entries are
// copied with their invalid optional fields cleared and invalid extensions removed.
func filterEntries(entries []*Entry) []*Entry {
	filtered := make([]*Entry, 0, len(entries))
	for _, e := range entries {
		if e == nil || !isAbsolute(e.Location) {
			continue
		}
		clean := &Entry{
			FileReference: e.FileReference,
			Images:        lo.Filter(e.Images, keep(IsValidImage)),
			Videos:        lo.Filter(e.Videos, keep(IsValidVideo)),
			News:          lo.Filter(e.News, keep(IsValidNews)),
			Alternates:    lo.Filter(e.Alternates, keep(IsValidAlternate)),
		}
		if e.ChangeFrequency.IsDefined() {
			clean.ChangeFrequency = e.ChangeFrequency
		}
		if e.Priority != nil && isValidPriority(*e.Priority) {
			clean.Priority = e.Priority
		}
		filtered = append(filtered, clean)
	}
	return filtered
}

func keep[T any](valid func(T) bool) func(T, int) bool {
	return func(item T, _ int) bool {
		return valid(item)
	}
}

// namespaces records which extension namespaces are used by at least one entry.
type namespaces struct {
	image, video, news, xhtml bool
}

func (ns namespaces) all() bool {
	return ns.image && ns.video && ns.news && ns.xhtml
}

func usedNamespaces(entries []*Entry) namespaces {
	var ns namespaces
	for _, e := range entries {
		ns.image = ns.image || len(e.Images) > 0
		ns.video = ns.video || len(e.Videos) > 0
		ns.news = ns.news || len(e.News) > 0
		ns.xhtml = ns.xhtml || len(e.Alternates) > 0
		if ns.all() {
			break
		}
	}
	return ns
}
