package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"
	"time"

	"github.com/samber/lo"
	"gopkg.in/yaml.v3"

	"github.com/polyglottis/sitemap/v2"
)

// Manifest lists either the urls of a sitemap or the sitemaps of an index.
type Manifest struct {
	URLs     []ManifestURL `yaml:"urls"`
	Sitemaps []ManifestRef `yaml:"sitemaps"`
}

type ManifestRef struct {
	Loc     string `yaml:"loc"`
	LastMod string `yaml:"lastmod"`
}

type ManifestURL struct {
	Loc        string              `yaml:"loc"`
	LastMod    string              `yaml:"lastmod"`
	ChangeFreq string              `yaml:"changefreq"`
	Priority   *float64            `yaml:"priority"`
	Images     []ManifestImage     `yaml:"images"`
	Videos     []ManifestVideo     `yaml:"videos"`
	News       []ManifestNews      `yaml:"news"`
	Alternates []ManifestAlternate `yaml:"alternates"`
}

type ManifestImage struct {
	Loc         string `yaml:"loc"`
	Caption     string `yaml:"caption"`
	Title       string `yaml:"title"`
	GeoLocation string `yaml:"geo_location"`
	License     string `yaml:"license"`
}

type ManifestVideo struct {
	ThumbnailLoc    string   `yaml:"thumbnail_loc"`
	Title           string   `yaml:"title"`
	Description     string   `yaml:"description"`
	ContentLoc      string   `yaml:"content_loc"`
	PlayerLoc       string   `yaml:"player_loc"`
	Duration        string   `yaml:"duration"` // e.g. "1m31s"
	PublicationDate string   `yaml:"publication_date"`
	FamilyFriendly  *bool    `yaml:"family_friendly"`
	Category        string   `yaml:"category"`
	Uploader        string   `yaml:"uploader"`
	UploaderInfo    string   `yaml:"uploader_info"`
	ViewCount       *int64   `yaml:"view_count"`
	Tags            []string `yaml:"tags"`
}

type ManifestNews struct {
	PublicationName     string `yaml:"publication_name"`
	PublicationLanguage string `yaml:"publication_language"`
	PublicationDate     string `yaml:"publication_date"`
	Title               string `yaml:"title"`
	Genres              string `yaml:"genres"`
	Keywords            string `yaml:"keywords"`
	StockTickers        string `yaml:"stock_tickers"`
}

type ManifestAlternate struct {
	HrefLang string `yaml:"hreflang"`
	Href     string `yaml:"href"`
}

// ReadManifest decodes a YAML manifest. Unknown fields are rejected.
func ReadManifest(r io.Reader) (*Manifest, error) {
	m := new(Manifest)
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(m); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}
	if len(m.URLs) > 0 && len(m.Sitemaps) > 0 {
		return nil, errors.New("manifest lists both urls and sitemaps")
	}
	return m, nil
}

// IsIndex reports whether the manifest describes a sitemap index.
func (m *Manifest) IsIndex() bool {
	return len(m.Sitemaps) > 0
}

// Write writes the sitemap index or the sitemap described by m.
func (m *Manifest) Write(ctx context.Context, w *sitemap.Writer, out io.Writer) error {
	if m.IsIndex() {
		idx, err := m.SitemapIndex()
		if err != nil {
			return err
		}
		return w.WriteSitemapIndex(ctx, idx, out)
	}
	s, err := m.Sitemap()
	if err != nil {
		return err
	}
	return w.WriteSitemap(ctx, s, out)
}

// SitemapIndex converts the sitemaps of the manifest.
func (m *Manifest) SitemapIndex() (*sitemap.SitemapIndex, error) {
	idx := sitemap.NewSitemapIndex()
	for i, ref := range m.Sitemaps {
		p := &parser{path: fmt.Sprintf("sitemaps[%d]", i)}
		idx.SitemapRefs = append(idx.SitemapRefs, &sitemap.FileReference{
			Location:         p.location("loc", ref.Loc),
			LastModification: p.timestamp("lastmod", ref.LastMod),
		})
		if p.err != nil {
			return nil, p.err
		}
	}
	return idx, nil
}

// Sitemap converts the urls of the manifest.
func (m *Manifest) Sitemap() (*sitemap.Sitemap, error) {
	s := sitemap.NewSitemap()
	for i, u := range m.URLs {
		p := &parser{path: fmt.Sprintf("urls[%d]", i)}
		e := p.entry(u)
		if p.err != nil {
			return nil, p.err
		}
		s.Entries = append(s.Entries, e)
	}
	return s, nil
}

// parser converts manifest values and keeps the first error.
// Values are parsed only; validation is left to the writer.
type parser struct {
	path string
	err  error
}

func (p *parser) fail(field string, err error) {
	if p.err == nil {
		p.err = fmt.Errorf("%s.%s: %w", p.path, field, err)
	}
}

func (p *parser) location(field, raw string) *url.URL {
	if raw == "" {
		return nil
	}
	u, err := url.Parse(raw)
	if err != nil {
		p.fail(field, err)
	}
	return u
}

func (p *parser) timestamp(field, raw string) *time.Time {
	if raw == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		p.fail(field, err)
		return nil
	}
	return &t
}

func (p *parser) duration(field, raw string) *time.Duration {
	if raw == "" {
		return nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		p.fail(field, err)
		return nil
	}
	return &d
}

func (p *parser) entry(u ManifestURL) *sitemap.Entry {
	e := sitemap.NewEntry(p.location("loc", u.Loc))
	e.LastModification = p.timestamp("lastmod", u.LastMod)
	e.ChangeFrequency = sitemap.ChangeFrequency(strings.ToLower(u.ChangeFreq))
	e.Priority = u.Priority

	for i, img := range u.Images {
		field := fmt.Sprintf("images[%d]", i)
		e.Images = append(e.Images, &sitemap.Image{
			Location:    p.location(field+".loc", img.Loc),
			Caption:     img.Caption,
			Title:       img.Title,
			GeoLocation: img.GeoLocation,
			License:     p.location(field+".license", img.License),
		})
	}
	for i, v := range u.Videos {
		field := fmt.Sprintf("videos[%d]", i)
		e.Videos = append(e.Videos, &sitemap.Video{
			ThumbnailLocation: p.location(field+".thumbnail_loc", v.ThumbnailLoc),
			Title:             v.Title,
			Description:       v.Description,
			ContentLocation:   p.location(field+".content_loc", v.ContentLoc),
			PlayerLocation:    p.location(field+".player_loc", v.PlayerLoc),
			Duration:          p.duration(field+".duration", v.Duration),
			PublicationDate:   p.timestamp(field+".publication_date", v.PublicationDate),
			FamilyFriendly:    v.FamilyFriendly,
			Category:          v.Category,
			Uploader:          v.Uploader,
			UploaderInfo:      p.location(field+".uploader_info", v.UploaderInfo),
			ViewCount:         v.ViewCount,
			Tags:              lo.Map(v.Tags, func(tag string, _ int) string { return strings.TrimSpace(tag) }),
		})
	}
	for i, n := range u.News {
		field := fmt.Sprintf("news[%d]", i)
		news := &sitemap.News{
			PublicationName:     n.PublicationName,
			PublicationLanguage: n.PublicationLanguage,
			Title:               n.Title,
			Genres:              n.Genres,
			Keywords:            n.Keywords,
			StockTickers:        n.StockTickers,
		}
		if t := p.timestamp(field+".publication_date", n.PublicationDate); t != nil {
			news.PublicationDate = *t
		}
		e.News = append(e.News, news)
	}
	for i, a := range u.Alternates {
		e.Alternates = append(e.Alternates, &sitemap.Alternate{
			HrefLang: a.HrefLang,
			Href:     p.location(fmt.Sprintf("alternates[%d].href", i), a.Href),
		})
	}
	return e
}
