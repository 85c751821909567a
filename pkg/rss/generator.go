// Package rss renders the public news feed as RSS 2.0.
package rss

import (
	"encoding/xml"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/robostride/website/pkg/news"
)

// RSS represents the root RSS 2.0 element
type RSS struct {
	XMLName xml.Name `xml:"rss"`
	Version string   `xml:"version,attr"`
	Atom    string   `xml:"xmlns:atom,attr"`
	Channel *Channel `xml:"channel"`
}

// Channel represents an RSS channel
type Channel struct {
	XMLName       xml.Name  `xml:"channel"`
	Title         string    `xml:"title"`
	Link          string    `xml:"link"`
	Description   string    `xml:"description"`
	AtomLink      *AtomLink `xml:"http://www.w3.org/2005/Atom link"`
	LastBuildDate string    `xml:"lastBuildDate"`
	Items         []*Item   `xml:"item"`
}

// AtomLink represents an Atom link element within RSS
type AtomLink struct {
	Href string `xml:"href,attr"`
	Rel  string `xml:"rel,attr"`
	Type string `xml:"type,attr"`
}

// Item represents one news item in the RSS feed
type Item struct {
	Title       string     `xml:"title"`
	Link        string     `xml:"link"`
	GUID        string     `xml:"guid"`
	Description string     `xml:"description"`
	PubDate     string     `xml:"pubDate,omitempty"`
	Categories  []string   `xml:"category"`
	Enclosure   *Enclosure `xml:"enclosure,omitempty"`
}

// Enclosure points to the item's cover media
type Enclosure struct {
	URL  string `xml:"url,attr"`
	Type string `xml:"type,attr"`
}

// Generator creates RSS feeds from public news items
type Generator struct {
	baseURL  string
	siteName string
}

// NewGenerator creates a feed generator emitting absolute links under baseURL
func NewGenerator(baseURL, siteName string) *Generator {
	return &Generator{baseURL: strings.TrimRight(baseURL, "/"), siteName: siteName}
}

// Generate renders the given items as an RSS 2.0 document
func (g *Generator) Generate(items []news.PublicItem) (string, error) {
	rssItems := make([]*Item, 0, len(items))
	for i := range items {
		rssItems = append(rssItems, g.convertItem(&items[i]))
	}

	feed := &RSS{
		Version: "2.0",
		Atom:    "http://www.w3.org/2005/Atom",
		Channel: &Channel{
			Title:         g.siteName + " - News",
			Link:          g.baseURL + "/",
			Description:   "Company news and announcements",
			AtomLink:      &AtomLink{Href: g.baseURL + "/rss", Rel: "self", Type: "application/rss+xml"},
			LastBuildDate: time.Now().Format(time.RFC1123Z),
			Items:         rssItems,
		},
	}

	output, err := xml.MarshalIndent(feed, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal RSS: %w", err)
	}
	return xml.Header + string(output), nil
}

func (g *Generator) convertItem(item *news.PublicItem) *Item {
	link := fmt.Sprintf("%s/news?id=%s", g.baseURL, url.QueryEscape(item.ID))

	out := &Item{
		Title:       item.Title,
		Link:        link,
		GUID:        link,
		Description: item.Summary,
		Categories:  item.Tags,
	}

	if t, err := time.Parse("2006-01-02", item.PublishDate); err == nil {
		out.PubDate = t.Format(time.RFC1123Z)
	}

	if item.CoverImage != "" {
		mime := "image/jpeg"
		if item.CoverType == string(news.KindVideo) {
			mime = "video/mp4"
		}
		coverURL := item.CoverImage
		if strings.HasPrefix(coverURL, "/") {
			coverURL = g.baseURL + coverURL
		}
		out.Enclosure = &Enclosure{URL: coverURL, Type: mime}
	}
	return out
}
