package news

import (
	"regexp"
	"strings"
)

// patterns recognizing an authenticated-download reference or an existing
// proxy path, the token segment is the capture
var (
	downloadRefRe = regexp.MustCompile(`medias/([^/?#]+)/download`)
	proxyPathRe   = regexp.MustCompile(`^/media/([^/?#]+)$`)
)

// ProxyPath builds the opaque same-origin proxy path for a storage token
func ProxyPath(token string) string {
	return "/media/" + token
}

// ProxyURL rewrites an authenticated-download reference into the same-origin
// proxy path. A video classification appends the video marker to the token
// segment. The rewrite is idempotent, already-proxied URLs come out
// unchanged, and URLs matching neither pattern pass through as-is.
func ProxyURL(rawURL string, kind MediaKind) string {
	if rawURL == "" {
		return ""
	}

	var token string
	if m := downloadRefRe.FindStringSubmatch(rawURL); m != nil {
		token = m[1]
	} else if m := proxyPathRe.FindStringSubmatch(rawURL); m != nil {
		token = m[1]
	}
	if token == "" {
		return rawURL
	}

	token = strings.TrimSuffix(token, VideoMarker)
	if kind == KindVideo {
		token += VideoMarker
	}
	return ProxyPath(token)
}

// StripVideoMarker removes the video marker from a proxy token and reports
// whether it was present
func StripVideoMarker(token string) (string, bool) {
	if strings.HasSuffix(token, VideoMarker) {
		return strings.TrimSuffix(token, VideoMarker), true
	}
	return token, false
}

// ToPublic converts canonical items into the public frontend contract.
// Details are built only when includeDetails is set, list views skip them to
// keep payloads small. Groups flatten in ascending index order, media entries
// first, then the group's text. A media entry duplicating the cover is
// dropped, the cover is never repeated in the body.
func ToPublic(items []Item, includeDetails bool) []PublicItem {
	out := make([]PublicItem, 0, len(items))
	for _, item := range items {
		coverKind := item.Cover.Kind
		if coverKind == "" {
			coverKind = KindImage
		}
		coverURL := ProxyURL(item.Cover.URL, coverKind)

		pub := PublicItem{
			ID:          item.ID,
			Title:       item.Title,
			Summary:     item.Summary,
			Tags:        item.Tags,
			CoverImage:  coverURL,
			CoverType:   string(coverKind),
			IsTop:       item.IsTop,
			PublishDate: item.PublishDate,
			Details:     []Detail{},
		}
		if pub.Tags == nil {
			pub.Tags = []string{}
		}

		if includeDetails {
			pub.Details = flattenGroups(item.Groups, coverURL)
		}
		out = append(out, pub)
	}
	return out
}

// flattenGroups builds the ordered details sequence from the numbered groups
func flattenGroups(groups []Group, coverURL string) []Detail {
	coverKey := strippedURL(coverURL)

	details := []Detail{}
	for _, g := range groups {
		for _, m := range g.Media {
			u := ProxyURL(m.URL, m.Kind)
			if u == "" {
				continue
			}
			if coverKey != "" && strippedURL(u) == coverKey {
				continue // cover dedup
			}
			details = append(details, Detail{Image: u, Type: string(m.Kind)})
		}
		if g.Content != "" {
			details = append(details, Detail{Text: g.Content, Type: "content"})
		}
	}
	return details
}

// strippedURL is the marker-insensitive comparison key for dedup
func strippedURL(u string) string {
	return strings.TrimSuffix(u, VideoMarker)
}
