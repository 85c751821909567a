package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/rest/logger"
	"github.com/go-pkgz/routegroup"

	"github.com/robostride/website/pkg/bitable"
	"github.com/robostride/website/pkg/news"
	"github.com/robostride/website/pkg/notify"
)

//go:generate moq -out mocks/news_feed.go -pkg mocks -skip-ensure -fmt goimports . NewsFeed
//go:generate moq -out mocks/media_downloader.go -pkg mocks -skip-ensure -fmt goimports . MediaDownloader
//go:generate moq -out mocks/contact_notifier.go -pkg mocks -skip-ensure -fmt goimports . ContactNotifier

// Config holds the server settings
type Config struct {
	Listen   string
	Timeout  time.Duration
	BaseURL  string
	SiteDir  string
	SiteName string
}

// NewsFeed provides normalized news items, fail-soft (empty on trouble)
type NewsFeed interface {
	FetchAll(ctx context.Context) []news.Item
}

// MediaDownloader resolves a storage token into upstream bytes or a redirect
type MediaDownloader interface {
	DownloadMedia(ctx context.Context, fileToken string) (*bitable.MediaDownload, error)
}

// ContactNotifier relays a contact-form lead
type ContactNotifier interface {
	Notify(ctx context.Context, lead notify.Lead) error
}

// Server represents HTTP server instance
type Server struct {
	config   Config
	feed     NewsFeed
	media    MediaDownloader
	notifier ContactNotifier
	version  string
	debug    bool

	lock       sync.Mutex
	httpServer *http.Server
	router     *routegroup.Bundle
}

// New initializes a new server instance
func New(cfg Config, feed NewsFeed, media MediaDownloader, notifier ContactNotifier, version string, debug bool) *Server {
	s := &Server{
		config:   cfg,
		feed:     feed,
		media:    media,
		notifier: notifier,
		version:  version,
		debug:    debug,
		router:   routegroup.New(http.NewServeMux()),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// Run starts the HTTP server and handles graceful shutdown
func (s *Server) Run(ctx context.Context) error {
	log.Printf("[INFO] starting server on %s", s.config.Listen)

	s.lock.Lock()
	s.httpServer = &http.Server{
		Addr:         s.config.Listen,
		Handler:      s.router,
		ReadTimeout:  s.config.Timeout,
		WriteTimeout: s.config.Timeout,
	}
	s.lock.Unlock()

	go func() {
		<-ctx.Done()
		log.Printf("[INFO] shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			log.Printf("[WARN] server shutdown error: %v", err)
		}
	}()

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}

	return nil
}

// setupMiddleware configures standard middleware for the server
func (s *Server) setupMiddleware() {
	s.router.Use(rest.AppInfo("robostride-website", "robostride", s.version))
	s.router.Use(rest.Ping)

	if s.debug {
		s.router.Use(logger.New(logger.Log(lgr.Default()), logger.Prefix("[DEBUG]")).Handler)
	}

	s.router.Use(rest.Recoverer(lgr.Default()))
	s.router.Use(rest.Throttle(100))
	s.router.Use(rest.SizeLimit(1024 * 1024)) // 1MB
}

// setupRoutes configures application routes
func (s *Server) setupRoutes() {
	s.router.Mount("/api").Route(func(r *routegroup.Bundle) {
		r.HandleFunc("GET /news", s.newsHandler)
		r.HandleFunc("GET /test-data", s.testDataHandler)
		r.HandleFunc("POST /contact", s.contactHandler)
		r.HandleFunc("GET /status", s.statusHandler)
	})

	s.router.HandleFunc("GET /media/{token}", s.mediaHandler)
	s.router.HandleFunc("GET /rss", s.rssHandler)

	// built frontend assets, when configured
	if s.config.SiteDir != "" {
		s.router.HandleFunc("GET /", http.FileServer(http.Dir(s.config.SiteDir)).ServeHTTP)
	}
}

// statusHandler returns server status
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	status := map[string]interface{}{
		"status":  "ok",
		"version": s.version,
		"time":    time.Now().UTC(),
	}
	renderJSON(w, r, http.StatusOK, status)
}

// renderJSON sends JSON response
func renderJSON(w http.ResponseWriter, _ *http.Request, code int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Printf("[ERROR] can't encode response to JSON: %v", err)
		}
	}
}

// renderError sends error response as JSON
func renderError(w http.ResponseWriter, r *http.Request, err error, code int) {
	errMsg := "unknown error"
	if err != nil {
		errMsg = err.Error()
	}
	renderJSON(w, r, code, map[string]string{"error": errMsg})
}
