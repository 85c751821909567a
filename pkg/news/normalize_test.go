package news

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robostride/website/pkg/bitable"
)

func rawFields(pairs map[string]string) map[string]json.RawMessage {
	fields := make(map[string]json.RawMessage, len(pairs))
	for k, v := range pairs {
		fields[k] = json.RawMessage(v)
	}
	return fields
}

func TestNormalizer_Normalize(t *testing.T) {
	norm := NewNormalizer()

	rec := bitable.Record{
		ID: "rec1",
		Fields: rawFields(map[string]string{
			"title":    `"Launch day"`,
			"summary":  `"We shipped the arm"`,
			"tags":     `["robotics","product"]`,
			"image":    `[{"file_token":"COVER","file_name":"cover.mp4","file_type":"video/mp4"}]`,
			"date":     `1700000000`,
			"isTop":    `true`,
			"content1": `"hello"`,
			"photo1":   `[{"file_token":"P1","file_name":"y.jpg"}]`,
		}),
	}

	item := norm.Normalize(rec)

	assert.Equal(t, "rec1", item.ID)
	assert.Equal(t, "Launch day", item.Title)
	assert.Equal(t, "We shipped the arm", item.Summary)
	assert.Equal(t, []string{"robotics", "product"}, item.Tags)
	assert.Equal(t, MediaRef{URL: "/media/COVER", Kind: KindVideo}, item.Cover)
	assert.Equal(t, "2023-11-14", item.PublishDate)
	assert.True(t, item.IsTop)

	require.Len(t, item.Groups, 1)
	assert.Equal(t, 1, item.Groups[0].Index)
	assert.Equal(t, "hello", item.Groups[0].Content)
	assert.Equal(t, []MediaRef{{URL: "/media/P1", Kind: KindImage}}, item.Groups[0].Media)
}

func TestNormalizer_Normalize_EmptyRecord(t *testing.T) {
	item := NewNormalizer().Normalize(bitable.Record{ID: "rec0"})

	assert.Equal(t, "rec0", item.ID)
	assert.Empty(t, item.Title)
	assert.Empty(t, item.Tags)
	assert.Equal(t, MediaRef{Kind: KindImage}, item.Cover, "missing cover degrades to empty image ref")
	assert.Empty(t, item.PublishDate)
	assert.False(t, item.IsTop)
	assert.Empty(t, item.Groups)
}

func TestNormalizer_GroupScanStopsAtGap(t *testing.T) {
	rec := bitable.Record{
		ID: "rec1",
		Fields: rawFields(map[string]string{
			"title":    `"A"`,
			"content1": `"first"`,
			"photo2":   `[{"file_token":"P2","file_name":"b.png"}]`,
			// index 3 missing entirely, index 4 must never be reached
			"content4": `"orphan"`,
		}),
	}

	item := NewNormalizer().Normalize(rec)
	require.Len(t, item.Groups, 2)
	assert.Equal(t, 1, item.Groups[0].Index)
	assert.Equal(t, "first", item.Groups[0].Content)
	assert.Equal(t, 2, item.Groups[1].Index)
	assert.Len(t, item.Groups[1].Media, 1)
}

func TestNormalizer_GroupFieldKinds(t *testing.T) {
	rec := bitable.Record{
		ID: "rec1",
		Fields: rawFields(map[string]string{
			"title":  `"A"`,
			"photo1": `[{"file_token":"PH","file_name":"a.jpg"},{"file_token":"PH2","file_name":"b.jpg"}]`,
			"phone1": `[{"file_token":"MOB","file_name":"shot.png"}]`,
		}),
	}

	item := NewNormalizer().Normalize(rec)
	require.Len(t, item.Groups, 1)
	// photo media come first, then phone media, cells may hold several
	assert.Equal(t, []MediaRef{
		{URL: "/media/PH", Kind: KindImage},
		{URL: "/media/PH2", Kind: KindImage},
		{URL: "/media/MOB", Kind: KindImage},
	}, item.Groups[0].Media)
}

func TestNormalizer_AttachmentTypeOverride(t *testing.T) {
	t.Run("declared video forces kind and truncates to one", func(t *testing.T) {
		rec := bitable.Record{
			ID: "rec1",
			Fields: rawFields(map[string]string{
				"title":            `"A"`,
				"attachment1":      `[{"file_token":"V1","file_name":"a.jpg"},{"file_token":"V2","file_name":"b.jpg"}]`,
				"attachment1_type": `"video"`,
			}),
		}

		item := NewNormalizer().Normalize(rec)
		require.Len(t, item.Groups, 1)
		assert.Equal(t, []MediaRef{{URL: "/media/V1", Kind: KindVideo}}, item.Groups[0].Media)
	})

	t.Run("without declaration all attachments kept", func(t *testing.T) {
		rec := bitable.Record{
			ID: "rec1",
			Fields: rawFields(map[string]string{
				"title":       `"A"`,
				"attachment1": `[{"file_token":"V1","file_name":"a.jpg"},{"file_token":"V2","file_name":"b.jpg"}]`,
			}),
		}

		item := NewNormalizer().Normalize(rec)
		require.Len(t, item.Groups, 1)
		assert.Len(t, item.Groups[0].Media, 2)
		assert.Equal(t, KindImage, item.Groups[0].Media[0].Kind)
	})
}

func TestNormalizer_ContentSanitized(t *testing.T) {
	rec := bitable.Record{
		ID: "rec1",
		Fields: rawFields(map[string]string{
			"title":    `"A"`,
			"content1": `"<p>fine</p><script>alert(1)</script>"`,
		}),
	}

	item := NewNormalizer().Normalize(rec)
	require.Len(t, item.Groups, 1)
	assert.Contains(t, item.Groups[0].Content, "<p>fine</p>")
	assert.NotContains(t, item.Groups[0].Content, "script")
}

func TestTextValue_SegmentArray(t *testing.T) {
	cell := json.RawMessage(`[{"type":"text","text":"hello "},{"type":"text","text":"world"}]`)
	assert.Equal(t, "hello world", textValue(cell))
}

func TestFormatTimestamp(t *testing.T) {
	tests := []struct {
		name string
		cell string
		want string
	}{
		{"epoch millis", `1700000000000`, "2023-11-14"},
		{"epoch seconds scaled", `1700000000`, "2023-11-14"},
		{"10-digit numeric string", `"1700000000"`, "2023-11-14"},
		{"13-digit numeric string", `"1700000000000"`, "2023-11-14"},
		{"garbage string", `"not a date"`, ""},
		{"boolean", `true`, ""},
		{"missing", ``, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatTimestamp(json.RawMessage(tt.cell)))
		})
	}
}

func TestBoolValue(t *testing.T) {
	assert.True(t, boolValue(json.RawMessage(`true`)))
	assert.True(t, boolValue(json.RawMessage(fmt.Sprintf("%q", affirmative))))
	assert.False(t, boolValue(json.RawMessage(`false`)))
	assert.False(t, boolValue(json.RawMessage(`"no"`)))
	assert.False(t, boolValue(nil))
}

func TestStringList(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, stringList(json.RawMessage(`["a","b"]`)))
	assert.Equal(t, []string{"solo"}, stringList(json.RawMessage(`"solo"`)))
	assert.Empty(t, stringList(nil))
	assert.Empty(t, stringList(json.RawMessage(`null`)))
}
