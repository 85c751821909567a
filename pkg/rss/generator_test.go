package rss

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robostride/website/pkg/news"
)

func TestGenerator_Generate(t *testing.T) {
	gen := NewGenerator("https://robostride.example.com/", "Robostride")

	items := []news.PublicItem{
		{
			ID:          "rec1",
			Title:       "New gripper line",
			Summary:     "Announcing the G2 gripper",
			Tags:        []string{"product", "robotics"},
			CoverImage:  "/media/TOK1",
			CoverType:   "image",
			PublishDate: "2024-03-01",
		},
		{
			ID:         "rec2",
			Title:      "Factory tour video",
			CoverImage: "/media/TOK2" + news.VideoMarker,
			CoverType:  "video",
		},
	}

	out, err := gen.Generate(items)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "<?xml"))
	assert.Contains(t, out, `<rss version="2.0"`)
	assert.Contains(t, out, "<title>Robostride - News</title>")
	assert.Contains(t, out, "<title>New gripper line</title>")
	assert.Contains(t, out, "<link>https://robostride.example.com/news?id=rec1</link>")
	assert.Contains(t, out, "<description>Announcing the G2 gripper</description>")
	assert.Contains(t, out, "<category>product</category>")
	assert.Contains(t, out, "Fri, 01 Mar 2024")

	// cover media becomes an enclosure with an absolute URL
	assert.Contains(t, out, `url="https://robostride.example.com/media/TOK1"`)
	assert.Contains(t, out, `type="image/jpeg"`)
	assert.Contains(t, out, `type="video/mp4"`)

	// one item element per news item
	assert.Equal(t, 2, strings.Count(out, "<item>"))
}

func TestGenerator_Generate_Empty(t *testing.T) {
	out, err := NewGenerator("http://localhost:8080", "Robostride").Generate(nil)
	require.NoError(t, err)
	assert.Contains(t, out, "<channel>")
	assert.NotContains(t, out, "<item>")
}

func TestGenerator_Generate_NoDateOmitted(t *testing.T) {
	out, err := NewGenerator("http://localhost:8080", "Robostride").
		Generate([]news.PublicItem{{ID: "rec1", Title: "undated"}})
	require.NoError(t, err)
	assert.NotContains(t, out, "<pubDate>")
}
