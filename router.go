/*
Package sitemap writes XML sitemaps and sitemap indexes, as defined by
https://www.sitemaps.org/protocol.html, including the image, video, news and
xhtml alternate-link extensions.

This package allows to:

	1. Build a Sitemap or a SitemapIndex in memory and write it to any io.Writer (Writer),
	2. Validate entries strictly, or silently drop the invalid ones (Options.StrictValidation),
	3. Split more than 50,000 entries into several sitemaps and an index (Buffer),
	4. Register routes when binding handlers (embedding a github.com/gorilla/mux.Router)
	   and serve the corresponding sitemaps on request (Router).

Example of writing a sitemap:

	loc, _ := url.Parse("https://example.com/")
	entry := sitemap.NewEntry(loc)
	entry.ChangeFrequency = sitemap.Weekly
	err := sitemap.NewWriter(nil).WriteSitemap(ctx, sitemap.NewSitemap(entry), os.Stdout)

Example of a router:

1. Create the router:

	r := sitemap.NewRouter(mux.NewRouter(), "http://example.com")

2. Static route handler:

	r.Register("/my/static/route").Handler(handler)

... or a secret route (i.e. not appearing in the sitemap):

	r.HandleFunc("/my/secret/route", f)

3. Parameterized route:

	r.RegisterParam("/documents/{category}/{id:[A-Z]+}", func(cb func(...string) error) error {
	  for _, doc := range documents {
	    err := cb("category", doc.Category, "id", doc.Id)
	    if err != nil {
	      return err
	    }
	  }
	  return nil
	}).Handler(h)

4. Handle sitemap requests:

	r.HandleSitemaps()
	http.Handle("/", r)

So that an http GET on (r.Options.ServerPath + "sitemapindex.xml") returns:

	<?xml version="1.0" encoding="UTF-8"?>
	<sitemapindex xmlns="http://www.sitemaps.org/schemas/sitemap/0.9"><sitemap><loc>http://example.com/sitemap_1.xml</loc></sitemap></sitemapindex>

and (r.Options.ServerPath + "sitemap_1.xml") lists every registered route.
*/
package sitemap

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/gorilla/mux"
)

// IndexFile is the name under which Router serves the sitemap index.
const IndexFile = "sitemapindex.xml"

// Router has an embedded github.com/gorilla/mux.Router.
// It retains all functionalities of the router (unchanged)
// and has a few extra methods to register the routes which should belong to the sitemap.
//
// See Register(), RegisterParam() and HandleSitemaps().
type Router struct {
	*mux.Router
	sitemapMutex  sync.RWMutex
	staticEntries []*path
	paramEntries  []*paramPath
	generated     *generated
	Options       *RouterOptions
}

// RouterOptions is used by Router.
type RouterOptions struct {
	ServerPath             string          // server path for sitemaps
	DefaultPriority        float64         // default priority for sitemap entries
	DefaultChangeFrequency ChangeFrequency // default change frequency for sitemap entries, optional
	Domain                 string          // domain for entries in the sitemap (multiple domains are not supported)
	Writer                 *Options        // options used to write the sitemaps, nil for DefaultOptions
	Logger                 Logger
}

// DefaultRouterOptions is the default options used when calling NewRouter().
var DefaultRouterOptions = &RouterOptions{
	ServerPath:      "/",
	DefaultPriority: 0.5,
}

// path represents a static route.
type path struct {
	Priority float64
	Location string
}

// paramPath represents a parameterized route.
type paramPath struct {
	Priority   float64
	Route      *mux.Route
	Enumerator VariableEnumerator
}

// generated holds the sitemaps built by GenerateSitemaps.
type generated struct {
	sitemaps []*Sitemap
	index    *SitemapIndex
}

// VariableEnumerator calls the callback as many times as there are routes allowed.
//
// The arguments passed to the callback should be as needed by github.com/gorilla/mux.Route.URL().
//
// See the package's main documentation for an example.
type VariableEnumerator func(callback func(pairs ...string) error) error

// NewRouter wraps router into a new Router, ready to register sitemap urls for the given domain.
//
// Change the routers options if you want more control on the sitemap creation:
//
//	r := NewRouter(router, "https://example.com")
//	r.Options.DefaultPriority = 1
//	r.Options.ServerPath = "/sitemaps/" // don't forget the trailing slash!
func NewRouter(router *mux.Router, domain string) *Router {
	options := new(RouterOptions)
	*options = *DefaultRouterOptions
	options.Domain = domain
	options.Logger = &StdLogger{}
	return &Router{
		Router:  router,
		Options: options,
	}
}

// Register creates a static route (no variables in the path) and adds it to the sitemap.
func (r *Router) Register(pattern string) *mux.Route {
	r.staticEntries = append(r.staticEntries, &path{
		Location: pattern,
		Priority: r.Options.DefaultPriority,
	})
	return r.Path(pattern)
}

// RegisterParam creates a route with parameters (=variables) in the path.
// Each time the sitemap is (re-)created, enum is called to get the list of allowed variable values.
//
// See the package's main documentation for an example.
func (r *Router) RegisterParam(pattern string, enum VariableEnumerator) *mux.Route {
	route := r.Path(pattern)
	r.paramEntries = append(r.paramEntries, &paramPath{
		Route:      route,
		Priority:   r.Options.DefaultPriority,
		Enumerator: enum,
	})
	return route
}

func (r *Router) logger() Logger {
	if r.Options.Logger == nil {
		return &StdLogger{}
	}
	return r.Options.Logger
}

func (r *Router) serverPath() string {
	p := r.Options.ServerPath
	if !strings.HasSuffix(p, "/") {
		p += "/"
	}
	return p
}

func (r *Router) fullLocation(absPath string) (*url.URL, error) {
	return url.Parse(r.Options.Domain + absPath)
}

func (r *Router) newEntry(absPath string, priority float64) (*Entry, error) {
	loc, err := r.fullLocation(absPath)
	if err != nil {
		return nil, err
	}
	e := NewEntry(loc)
	e.Priority = &priority
	e.ChangeFrequency = r.Options.DefaultChangeFrequency
	return e, nil
}

// GenerateSitemaps creates the sitemap index and as many sitemaps as needed.
// Since there are size restrictions on a sitemap, there may be more than one.
// In this case they are named sitemap_1.xml, sitemap_2.xml, and so on.
//
// All file names served are returned (relative to r.Options.ServerPath).
//
// It is safe to call GenerateSitemaps() even when they are served due to a call to HandleSitemaps().
// A read-write lock takes care of queueing requests until the sitemaps are generated.
func (r *Router) GenerateSitemaps(ctx context.Context) ([]string, error) {
	r.sitemapMutex.Lock()
	defer r.sitemapMutex.Unlock()

	gen, err := r.generate(ctx)
	if err != nil {
		return nil, err
	}
	r.generated = gen
	return gen.files(), nil
}

// Invalidate drops the generated sitemaps. They are generated again on the next request.
func (r *Router) Invalidate() {
	r.sitemapMutex.Lock()
	defer r.sitemapMutex.Unlock()
	r.generated = nil
}

// current returns the generated sitemaps, generating them if needed.
func (r *Router) current(ctx context.Context) (*generated, error) {
	r.sitemapMutex.RLock()
	gen := r.generated
	r.sitemapMutex.RUnlock()
	if gen != nil {
		return gen, nil
	}

	r.sitemapMutex.Lock()
	defer r.sitemapMutex.Unlock()
	if r.generated == nil {
		gen, err := r.generate(ctx)
		if err != nil {
			return nil, err
		}
		r.generated = gen
	}
	return r.generated, nil
}

func (r *Router) generate(ctx context.Context) (*generated, error) {
	buffer := NewBuffer()
	for _, entry := range r.staticEntries {
		e, err := r.newEntry(entry.Location, entry.Priority)
		if err != nil {
			return nil, err
		}
		buffer.AddEntry(e)
	}
	for _, entry := range r.paramEntries {
		err := entry.Enumerator(func(pairs ...string) error {
			if err := ctx.Err(); err != nil {
				return err
			}
			route, err := entry.Route.URL(pairs...)
			if err != nil {
				return err
			}
			e, err := r.newEntry(route.String(), entry.Priority)
			if err != nil {
				return err
			}
			buffer.AddEntry(e)
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	buffer.Flush()

	base, err := url.Parse(r.Options.Domain + r.serverPath())
	if err != nil {
		return nil, err
	}
	index, err := buffer.Index(base, DefaultSitemapPattern)
	if err != nil {
		return nil, err
	}

	// validate now, so that serving only fails on write errors
	if copyOptions(r.Options.Writer).StrictValidation {
		for _, s := range buffer.Sitemaps {
			if err := ValidateSitemap(s); err != nil {
				return nil, err
			}
		}
		if err := ValidateSitemapIndex(index); err != nil {
			return nil, err
		}
	}

	r.logger().Info("generated %d sitemaps with %d entries", len(buffer.Sitemaps), buffer.Len())
	return &generated{sitemaps: buffer.Sitemaps, index: index}, nil
}

func (g *generated) files() []string {
	files := make([]string, 0, len(g.sitemaps)+1)
	for i := range g.sitemaps {
		files = append(files, sitemapFile(i+1))
	}
	return append(files, IndexFile)
}

// HandleSitemaps register routes to serve the sitemaps on the router. The http handler is returned.
//
// All routes registered are:
//
//	r.Options.ServerPath + "sitemapindex.xml"
//	r.Options.ServerPath + "sitemap_%d.xml" // where %d is a replaced by a positive integer.
func (r *Router) HandleSitemaps() http.Handler {
	sitemapHandler := &sitemapHandler{
		router: r,
		writer: NewWriter(r.Options.Writer),
	}
	r.Handle(r.serverPath()+"{file:sitemap(?:index|_\\d+)\\.xml}", sitemapHandler)
	return sitemapHandler
}
