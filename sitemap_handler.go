package sitemap

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
)

// sitemapHandler handles the requests to sitemaps.
// It uses the router's read-write lock to ensure only complete sitemaps are served.
// The sitemaps are created automatically on the first request.
type sitemapHandler struct {
	router *Router
	writer *Writer
}

func sitemapFile(n int) string {
	return fmt.Sprintf(DefaultSitemapPattern, n)
}

// requestedFile returns the file name matched by the route, or the last
// segment of the request path when the handler is called directly.
func requestedFile(req *http.Request) string {
	if file, ok := mux.Vars(req)["file"]; ok {
		return file
	}
	p := req.URL.Path
	return p[strings.LastIndex(p, "/")+1:]
}

// sitemapNumber parses the n of "sitemap_n.xml".
func sitemapNumber(file string) (int, bool) {
	if !strings.HasPrefix(file, "sitemap_") || !strings.HasSuffix(file, ".xml") {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimSuffix(strings.TrimPrefix(file, "sitemap_"), ".xml"))
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}

// ServeHTTP writes the sitemap index or one of the sitemaps.
// It generates them if they don't exist.
func (sh *sitemapHandler) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	logger := sh.router.logger()
	gen, err := sh.router.current(req.Context())
	if err != nil {
		logger.Error("generating sitemaps: %v", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	file := requestedFile(req)
	if file == IndexFile {
		w.Header().Set("Content-Type", "application/xml; charset=utf-8")
		if err := sh.writer.WriteSitemapIndex(req.Context(), gen.index, w); err != nil {
			logger.Error("writing %s: %v", file, err)
		}
		return
	}

	n, ok := sitemapNumber(file)
	if !ok || n > len(gen.sitemaps) {
		logger.Debug("no sitemap %q", file)
		http.NotFound(w, req)
		return
	}
	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	if err := sh.writer.WriteSitemap(req.Context(), gen.sitemaps[n-1], w); err != nil {
		logger.Error("writing %s: %v", file, err)
	}
}
