package sitemap

import (
	"context"
	"fmt"
	"io"
	"math"
	"net/url"
	"strconv"
	"time"

	xw "github.com/shabbyrobe/xmlwriter"
)

// Writer writes sitemaps and sitemap indexes as XML documents.
//
// A Writer keeps no state between calls and can be used concurrently.
type Writer struct {
	options *Options
}

// NewWriter creates a Writer configured with a copy of opts.
// A nil opts stands for DefaultOptions.
func NewWriter(opts *Options) *Writer {
	return &Writer{options: copyOptions(opts)}
}

// Options returns a copy of the writer's options.
func (w *Writer) Options() Options {
	return *w.options
}

// WriteSitemap writes s to out as a urlset document.
//
// With strict validation the first invalid entry fails the call before anything is written.
// Otherwise invalid entries and extensions are dropped. A sitemap holding more than MaxEntries
// entries is an error in both modes.
//
// ctx is checked before each entry. When it is done, the document is left unfinished and an
// error wrapping ctx.Err() is returned. out is flushed but never closed.
func (w *Writer) WriteSitemap(ctx context.Context, s *Sitemap, out io.Writer) error {
	if s == nil {
		return fmt.Errorf("%w: sitemap is nil", ErrInvalidArgument)
	}
	if out == nil {
		return fmt.Errorf("%w: output is nil", ErrInvalidArgument)
	}

	entries, err := prepareEntries(s, w.options.StrictValidation)
	if err != nil {
		return err
	}
	ns := usedNamespaces(entries)

	e := w.newEmitter(out)
	e.start("", "urlset", namespaceAttrs(ns)...)
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("sitemap: write interrupted: %w", err)
		}
		e.url(entry, ns)
		if e.err != nil {
			return e.err
		}
	}
	return e.finish()
}

// WriteSitemapIndex writes idx to out as a sitemapindex document.
// It follows the same rules as WriteSitemap.
func (w *Writer) WriteSitemapIndex(ctx context.Context, idx *SitemapIndex, out io.Writer) error {
	if idx == nil {
		return fmt.Errorf("%w: sitemap index is nil", ErrInvalidArgument)
	}
	if out == nil {
		return fmt.Errorf("%w: output is nil", ErrInvalidArgument)
	}

	refs, err := prepareRefs(idx, w.options.StrictValidation)
	if err != nil {
		return err
	}

	e := w.newEmitter(out)
	e.start("", "sitemapindex", xw.Attr{Name: "xmlns", Value: SitemapNamespace})
	for _, ref := range refs {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("sitemap: write interrupted: %w", err)
		}
		e.start("", "sitemap")
		e.text("", "loc", ref.Location.String())
		e.timestamp("", "lastmod", ref.LastModification)
		e.end()
		if e.err != nil {
			return e.err
		}
	}
	return e.finish()
}

func namespaceAttrs(ns namespaces) []xw.Attr {
	attrs := []xw.Attr{{Name: "xmlns", Value: SitemapNamespace}}
	if ns.image {
		attrs = append(attrs, xw.Attr{Prefix: "xmlns", Name: "image", Value: ImageNamespace})
	}
	if ns.video {
		attrs = append(attrs, xw.Attr{Prefix: "xmlns", Name: "video", Value: VideoNamespace})
	}
	if ns.news {
		attrs = append(attrs, xw.Attr{Prefix: "xmlns", Name: "news", Value: NewsNamespace})
	}
	if ns.xhtml {
		attrs = append(attrs, xw.Attr{Prefix: "xmlns", Name: "xhtml", Value: XhtmlNamespace})
	}
	return attrs
}

// emitter wraps an xmlwriter.Writer and keeps the first error.
// Every method is a no-op once an error occurred.
type emitter struct {
	xw     *xw.Writer
	layout string
	err    error
}

func (w *Writer) newEmitter(out io.Writer) *emitter {
	var opts []xw.Option
	if w.options.UseIndentation {
		opts = append(opts, xw.WithIndentString("  "))
	}
	e := &emitter{
		xw:     xw.Open(out, opts...),
		layout: w.options.DateTimeFormat,
	}
	e.do(e.xw.StartDoc(xw.Doc{}))
	return e
}

func (e *emitter) do(err error) {
	if e.err == nil {
		e.err = err
	}
}

func (e *emitter) start(prefix, name string, attrs ...xw.Attr) {
	if e.err != nil {
		return
	}
	e.do(e.xw.StartElem(xw.Elem{Prefix: prefix, Name: name, Attrs: attrs}))
}

func (e *emitter) end() {
	if e.err != nil {
		return
	}
	e.do(e.xw.EndElem())
}

func (e *emitter) text(prefix, name, value string) {
	if e.err != nil {
		return
	}
	e.do(e.xw.Block(xw.Elem{Prefix: prefix, Name: name}, xw.Text(value)))
}

// optional writes the element only if value is not blank.
func (e *emitter) optional(prefix, name, value string) {
	if !isBlank(value) {
		e.text(prefix, name, value)
	}
}

func (e *emitter) location(prefix, name string, u *url.URL) {
	if u != nil {
		e.text(prefix, name, u.String())
	}
}

func (e *emitter) timestamp(prefix, name string, t *time.Time) {
	if t != nil {
		e.text(prefix, name, t.UTC().Format(e.layout))
	}
}

func (e *emitter) finish() error {
	e.do(e.xw.EndAllFlush())
	return e.err
}

func (e *emitter) url(entry *Entry, ns namespaces) {
	e.start("", "url")
	e.text("", "loc", entry.Location.String())
	e.timestamp("", "lastmod", entry.LastModification)
	if entry.ChangeFrequency != "" {
		e.text("", "changefreq", string(entry.ChangeFrequency))
	}
	if entry.Priority != nil {
		e.text("", "priority", formatPriority(*entry.Priority))
	}
	if ns.image {
		for _, img := range entry.Images {
			e.image(img)
		}
	}
	if ns.video {
		for _, v := range entry.Videos {
			e.video(v)
		}
	}
	if ns.news {
		for _, n := range entry.News {
			e.news(n)
		}
	}
	if ns.xhtml {
		for _, a := range entry.Alternates {
			e.alternate(a)
		}
	}
	e.end()
}

func (e *emitter) image(img *Image) {
	e.start("image", "image")
	e.text("image", "loc", img.Location.String())
	e.optional("image", "caption", img.Caption)
	e.optional("image", "title", img.Title)
	e.optional("image", "geo_location", img.GeoLocation)
	e.location("image", "license", img.License)
	e.end()
}

func (e *emitter) video(v *Video) {
	e.start("video", "video")
	e.text("video", "thumbnail_loc", v.ThumbnailLocation.String())
	e.text("video", "title", v.Title)
	e.text("video", "description", v.Description)
	e.location("video", "content_loc", v.ContentLocation)
	e.location("video", "player_loc", v.PlayerLocation)
	if v.Duration != nil {
		e.text("video", "duration", strconv.FormatInt(durationSeconds(*v.Duration), 10))
	}
	e.timestamp("video", "publication_date", v.PublicationDate)
	if v.FamilyFriendly != nil {
		e.text("video", "family_friendly", yesNo(*v.FamilyFriendly))
	}
	e.optional("video", "category", v.Category)
	if !isBlank(v.Uploader) && e.err == nil {
		uploader := xw.Elem{Prefix: "video", Name: "uploader"}
		if v.UploaderInfo != nil {
			uploader.Attrs = []xw.Attr{{Name: "info", Value: v.UploaderInfo.String()}}
		}
		e.do(e.xw.Block(uploader, xw.Text(v.Uploader)))
	}
	if v.ViewCount != nil {
		e.text("video", "view_count", strconv.FormatInt(*v.ViewCount, 10))
	}
	for _, tag := range v.Tags {
		e.optional("video", "tag", tag)
	}
	e.end()
}

func (e *emitter) news(n *News) {
	e.start("news", "news")
	e.start("news", "publication")
	e.text("news", "name", n.PublicationName)
	e.text("news", "language", n.PublicationLanguage)
	e.end()
	e.timestamp("news", "publication_date", &n.PublicationDate)
	e.text("news", "title", n.Title)
	e.optional("news", "genres", n.Genres)
	e.optional("news", "keywords", n.Keywords)
	e.optional("news", "stock_tickers", n.StockTickers)
	e.end()
}

func (e *emitter) alternate(a *Alternate) {
	if e.err != nil {
		return
	}
	e.do(e.xw.WriteElem(xw.Elem{
		Prefix: "xhtml",
		Name:   "link",
		Attrs: []xw.Attr{
			{Name: "rel", Value: "alternate"},
			{Name: "hreflang", Value: a.HrefLang},
			{Name: "href", Value: a.Href.String()},
		},
	}))
}

// formatPriority formats p with one fractional digit, rounding half away from zero.
func formatPriority(p float64) string {
	return strconv.FormatFloat(math.Round(p*10)/10, 'f', 1, 64)
}

// durationSeconds rounds d to whole seconds, half away from zero.
func durationSeconds(d time.Duration) int64 {
	return int64(math.Round(d.Seconds()))
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
