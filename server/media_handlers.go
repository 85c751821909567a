package server

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/robostride/website/pkg/bitable"
	"github.com/robostride/website/pkg/news"
)

// mediaHandler proxies one media asset from the authenticated upstream. The
// token may carry the video marker produced by the URL rewriter, it is
// stripped before the upstream lookup but kept as a type hint. Upstream
// redirects pass through untouched so CDN caching stays effective. Failures
// collapse into an opaque 404, the usual cause is expired permissions and the
// detail is not the client's business.
func (s *Server) mediaHandler(w http.ResponseWriter, r *http.Request) {
	token, videoHint := news.StripVideoMarker(r.PathValue("token"))
	if token == "" {
		renderError(w, r, fmt.Errorf("missing media token"), http.StatusBadRequest)
		return
	}

	res, err := s.media.DownloadMedia(r.Context(), token)
	if err != nil {
		if errors.Is(err, bitable.ErrAuth) || errors.Is(err, bitable.ErrConfig) {
			log.Printf("[ERROR] media %s: upstream auth failed: %v", token, err)
			renderError(w, r, fmt.Errorf("upstream auth failed"), http.StatusInternalServerError)
			return
		}
		log.Printf("[WARN] media %s: download failed: %v", token, err)
		renderError(w, r, fmt.Errorf("media unavailable"), http.StatusNotFound)
		return
	}

	// redirect pass-through, bytes stay at the upstream CDN
	if res.StatusCode >= http.StatusMultipleChoices && res.StatusCode < http.StatusBadRequest && res.Location != "" {
		http.Redirect(w, r, res.Location, res.StatusCode)
		return
	}

	if res.StatusCode != http.StatusOK || len(res.Body) == 0 {
		log.Printf("[WARN] media %s: upstream status %d, %d bytes", token, res.StatusCode, len(res.Body))
		renderError(w, r, fmt.Errorf("media unavailable"), http.StatusNotFound)
		return
	}

	contentType := detectContentType(res.Body, res.ContentType)
	isVideo := videoHint || strings.HasPrefix(contentType, "video/")

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(res.Body)))
	w.Header().Set("Accept-Ranges", "bytes")
	w.Header().Set("Cache-Control", "public, max-age=31536000, immutable")
	if isVideo {
		// enables in-browser streaming and seeking instead of a download prompt
		w.Header().Set("Content-Disposition", "inline")
		w.Header().Set("X-Content-Type-Options", "nosniff")
	}

	if _, err := w.Write(res.Body); err != nil {
		log.Printf("[WARN] media %s: write failed: %v", token, err)
	}
}
