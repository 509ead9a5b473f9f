package sitemap

import (
	"encoding/xml"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// Structures decoding the written documents, with fully qualified names.

type xmlURLSet struct {
	XMLName xml.Name `xml:"http://www.sitemaps.org/schemas/sitemap/0.9 urlset"`
	URLs    []xmlURL `xml:"http://www.sitemaps.org/schemas/sitemap/0.9 url"`
}

type xmlURL struct {
	Loc        string     `xml:"http://www.sitemaps.org/schemas/sitemap/0.9 loc"`
	LastMod    string     `xml:"http://www.sitemaps.org/schemas/sitemap/0.9 lastmod"`
	ChangeFreq string     `xml:"http://www.sitemaps.org/schemas/sitemap/0.9 changefreq"`
	Priority   string     `xml:"http://www.sitemaps.org/schemas/sitemap/0.9 priority"`
	Images     []xmlImage `xml:"http://www.google.com/schemas/sitemap-image/1.1 image"`
	Videos     []xmlVideo `xml:"http://www.google.com/schemas/sitemap-video/1.1 video"`
	News       []xmlNews  `xml:"http://www.google.com/schemas/sitemap-news/0.9 news"`
	Links      []xmlLink  `xml:"http://www.w3.org/1999/xhtml link"`
}

type xmlImage struct {
	Loc         string `xml:"http://www.google.com/schemas/sitemap-image/1.1 loc"`
	Caption     string `xml:"http://www.google.com/schemas/sitemap-image/1.1 caption"`
	Title       string `xml:"http://www.google.com/schemas/sitemap-image/1.1 title"`
	GeoLocation string `xml:"http://www.google.com/schemas/sitemap-image/1.1 geo_location"`
	License     string `xml:"http://www.google.com/schemas/sitemap-image/1.1 license"`
}

type xmlUploader struct {
	Info string `xml:"info,attr"`
	Name string `xml:",chardata"`
}

type xmlVideo struct {
	ThumbnailLoc    string       `xml:"http://www.google.com/schemas/sitemap-video/1.1 thumbnail_loc"`
	Title           string       `xml:"http://www.google.com/schemas/sitemap-video/1.1 title"`
	Description     string       `xml:"http://www.google.com/schemas/sitemap-video/1.1 description"`
	ContentLoc      string       `xml:"http://www.google.com/schemas/sitemap-video/1.1 content_loc"`
	PlayerLoc       string       `xml:"http://www.google.com/schemas/sitemap-video/1.1 player_loc"`
	Duration        string       `xml:"http://www.google.com/schemas/sitemap-video/1.1 duration"`
	PublicationDate string       `xml:"http://www.google.com/schemas/sitemap-video/1.1 publication_date"`
	FamilyFriendly  string       `xml:"http://www.google.com/schemas/sitemap-video/1.1 family_friendly"`
	Category        string       `xml:"http://www.google.com/schemas/sitemap-video/1.1 category"`
	Uploader        *xmlUploader `xml:"http://www.google.com/schemas/sitemap-video/1.1 uploader"`
	ViewCount       string       `xml:"http://www.google.com/schemas/sitemap-video/1.1 view_count"`
	Tags            []string     `xml:"http://www.google.com/schemas/sitemap-video/1.1 tag"`
}

type xmlPublication struct {
	Name     string `xml:"http://www.google.com/schemas/sitemap-news/0.9 name"`
	Language string `xml:"http://www.google.com/schemas/sitemap-news/0.9 language"`
}

type xmlNews struct {
	Publication     xmlPublication `xml:"http://www.google.com/schemas/sitemap-news/0.9 publication"`
	PublicationDate string         `xml:"http://www.google.com/schemas/sitemap-news/0.9 publication_date"`
	Title           string         `xml:"http://www.google.com/schemas/sitemap-news/0.9 title"`
	Genres          string         `xml:"http://www.google.com/schemas/sitemap-news/0.9 genres"`
	Keywords        string         `xml:"http://www.google.com/schemas/sitemap-news/0.9 keywords"`
	StockTickers    string         `xml:"http://www.google.com/schemas/sitemap-news/0.9 stock_tickers"`
}

type xmlLink struct {
	Rel      string `xml:"rel,attr"`
	HrefLang string `xml:"hreflang,attr"`
	Href     string `xml:"href,attr"`
}

type xmlIndex struct {
	XMLName  xml.Name        `xml:"http://www.sitemaps.org/schemas/sitemap/0.9 sitemapindex"`
	Sitemaps []xmlSitemapRef `xml:"http://www.sitemaps.org/schemas/sitemap/0.9 sitemap"`
}

type xmlSitemapRef struct {
	Loc     string `xml:"http://www.sitemaps.org/schemas/sitemap/0.9 loc"`
	LastMod string `xml:"http://www.sitemaps.org/schemas/sitemap/0.9 lastmod"`
}

func mustURL(t testing.TB, raw string) *url.URL {
	t.Helper()
	u, err := url.Parse(raw)
	require.NoError(t, err)
	return u
}

func mustDecodeURLSet(t testing.TB, doc string) *xmlURLSet {
	t.Helper()
	set := new(xmlURLSet)
	require.NoError(t, xml.Unmarshal([]byte(doc), set))
	return set
}

func mustDecodeIndex(t testing.TB, doc string) *xmlIndex {
	t.Helper()
	index := new(xmlIndex)
	require.NoError(t, xml.Unmarshal([]byte(doc), index))
	return index
}

// rootNamespaces returns the namespace declarations of the root element, by prefix.
// The default namespace has the empty prefix.
func rootNamespaces(t testing.TB, doc string) map[string]string {
	t.Helper()
	dec := xml.NewDecoder(strings.NewReader(doc))
	for {
		tok, err := dec.RawToken()
		require.NoError(t, err)
		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		ns := make(map[string]string)
		for _, attr := range start.Attr {
			switch {
			case attr.Name.Space == "" && attr.Name.Local == "xmlns":
				ns[""] = attr.Value
			case attr.Name.Space == "xmlns":
				ns[attr.Name.Local] = attr.Value
			}
		}
		return ns
	}
}

func ptr[T any](v T) *T {
	return &v
}

func date(t testing.TB, value string) time.Time {
	t.Helper()
	tm, err := time.Parse(time.RFC3339, value)
	require.NoError(t, err)
	return tm
}
