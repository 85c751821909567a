package server

import (
	"fmt"
	"log"
	"net/http"
	"sort"

	"github.com/robostride/website/pkg/news"
	"github.com/robostride/website/pkg/rss"
)

// newsHandler serves the public news feed, top-pinned items first then by
// descending publish date. With an id query parameter it returns that single
// item with full details.
func (s *Server) newsHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	noCache(w)

	if id := r.URL.Query().Get("id"); id != "" {
		items := news.ToPublic(s.feed.FetchAll(ctx), true)
		for i := range items {
			if items[i].ID == id {
				renderJSON(w, r, http.StatusOK, items[i])
				return
			}
		}
		renderError(w, r, fmt.Errorf("news item not found"), http.StatusNotFound)
		return
	}

	items := news.ToPublic(s.feed.FetchAll(ctx), false)
	sortPublicItems(items)
	renderJSON(w, r, http.StatusOK, items)
}

// testDataHandler serves the full feed with details for every item, source
// order preserved. Diagnostic surface for content authors.
func (s *Server) testDataHandler(w http.ResponseWriter, r *http.Request) {
	noCache(w)
	items := news.ToPublic(s.feed.FetchAll(r.Context()), true)
	renderJSON(w, r, http.StatusOK, items)
}

// rssHandler serves the sorted news feed as RSS 2.0
func (s *Server) rssHandler(w http.ResponseWriter, r *http.Request) {
	items := news.ToPublic(s.feed.FetchAll(r.Context()), false)
	sortPublicItems(items)

	gen := rss.NewGenerator(s.config.BaseURL, s.config.SiteName)
	out, err := gen.Generate(items)
	if err != nil {
		log.Printf("[ERROR] failed to generate RSS feed: %v", err)
		http.Error(w, "Failed to generate RSS feed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/rss+xml; charset=utf-8")
	if _, err := w.Write([]byte(out)); err != nil {
		log.Printf("[ERROR] failed to write RSS response: %v", err)
	}
}

// sortPublicItems orders top-pinned first, then by descending publish date
func sortPublicItems(items []news.PublicItem) {
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].IsTop != items[j].IsTop {
			return items[i].IsTop
		}
		return items[i].PublishDate > items[j].PublishDate
	})
}

func noCache(w http.ResponseWriter) {
	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
	w.Header().Set("Pragma", "no-cache")
	w.Header().Set("Expires", "0")
}
