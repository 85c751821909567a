package news

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"github.com/tidwall/gjson"

	"github.com/robostride/website/pkg/bitable"
)

// source literal meaning "yes" in the pinned-flag column
const affirmative = "是"

// Normalizer maps raw bitable records into the canonical intermediate
// representation. Bad or missing cells degrade to zero values, a record never
// fails as a whole.
type Normalizer struct {
	sanitizer *bluemonday.Policy
}

// NewNormalizer creates a normalizer with a UGC sanitization policy for body
// text, content cells can carry pasted HTML
func NewNormalizer() *Normalizer {
	return &Normalizer{sanitizer: bluemonday.UGCPolicy()}
}

// Normalize converts one raw record into an Item
func (n *Normalizer) Normalize(rec bitable.Record) Item {
	item := Item{
		ID:          rec.ID,
		Title:       textValue(rec.Fields["title"]),
		Summary:     textValue(rec.Fields["summary"]),
		Tags:        stringList(rec.Fields["tags"]),
		PublishDate: formatTimestamp(rec.Fields["date"]),
		IsTop:       boolValue(rec.Fields["isTop"]),
		Cover:       MediaRef{Kind: KindImage},
	}

	if refs := classifyMedia(rec.Fields["image"]); len(refs) > 0 {
		item.Cover = refs[0]
	}

	item.Groups = n.collectGroups(rec.Fields)
	return item
}

// collectGroups walks the numbered field groups sequentially from index 1.
// The scan stops at the first index where none of the group fields is
// present, a gap terminates it (the source's authoring convention is
// contiguous numbering).
func (n *Normalizer) collectGroups(fields map[string]json.RawMessage) []Group {
	var groups []Group
	for i := 1; ; i++ {
		content, hasContent := fields[fmt.Sprintf("content%d", i)]
		photo, hasPhoto := fields[fmt.Sprintf("photo%d", i)]
		phone, hasPhone := fields[fmt.Sprintf("phone%d", i)]
		attachment, hasAttachment := fields[fmt.Sprintf("attachment%d", i)]

		if !hasContent && !hasPhoto && !hasPhone && !hasAttachment {
			break
		}

		g := Group{Index: i}
		if hasContent {
			g.Content = n.sanitizer.Sanitize(textValue(content))
		}
		if hasPhoto {
			g.Media = append(g.Media, classifyMedia(photo)...)
		}
		if hasPhone {
			g.Media = append(g.Media, classifyMedia(phone)...)
		}
		if hasAttachment {
			refs := classifyMedia(attachment)
			// an explicit sibling type declaration overrides the classifier,
			// and videos are single-valued
			if declared := textValue(fields[fmt.Sprintf("attachment%d_type", i)]); strings.Contains(strings.ToLower(declared), "video") && len(refs) > 0 {
				refs = refs[:1]
				refs[0].Kind = KindVideo
			}
			g.Media = append(g.Media, refs...)
		}
		groups = append(groups, g)
	}
	return groups
}

// textValue coerces a cell into plain text. Text cells arrive either as a
// bare string or as an array of typed segments with a text key.
func textValue(cell json.RawMessage) string {
	if len(cell) == 0 {
		return ""
	}
	v := gjson.ParseBytes(cell)
	switch {
	case v.Type == gjson.String:
		return v.String()
	case v.IsArray():
		var sb strings.Builder
		for _, seg := range v.Array() {
			if seg.Type == gjson.String {
				sb.WriteString(seg.String())
				continue
			}
			sb.WriteString(seg.Get("text").String())
		}
		return sb.String()
	case v.Type == gjson.Number:
		return v.String()
	case v.Get("text").Exists():
		return v.Get("text").String()
	}
	return ""
}

// stringList coerces a scalar-or-array cell into a list of strings
func stringList(cell json.RawMessage) []string {
	if len(cell) == 0 {
		return nil
	}
	v := gjson.ParseBytes(cell)
	if v.IsArray() {
		var out []string
		for _, elem := range v.Array() {
			if s := elemText(elem); s != "" {
				out = append(out, s)
			}
		}
		return out
	}
	if s := elemText(v); s != "" {
		return []string{s}
	}
	return nil
}

func elemText(v gjson.Result) string {
	if v.Type == gjson.String || v.Type == gjson.Number {
		return v.String()
	}
	return v.Get("text").String()
}

// formatTimestamp turns an epoch cell into YYYY-MM-DD. Ten-digit values are
// seconds, everything else is taken as milliseconds. Unparsable cells yield
// an empty string.
func formatTimestamp(cell json.RawMessage) string {
	if len(cell) == 0 {
		return ""
	}
	v := gjson.ParseBytes(cell)

	var raw string
	switch v.Type {
	case gjson.Number:
		raw = strconv.FormatInt(v.Int(), 10)
	case gjson.String:
		raw = strings.TrimSpace(v.String())
	default:
		return ""
	}

	ts, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return ""
	}
	if len(raw) == 10 {
		ts *= 1000
	}
	return time.UnixMilli(ts).UTC().Format("2006-01-02")
}

// boolValue accepts boolean true or the source's affirmative literal
func boolValue(cell json.RawMessage) bool {
	if len(cell) == 0 {
		return false
	}
	v := gjson.ParseBytes(cell)
	if v.Type == gjson.True {
		return true
	}
	return v.String() == affirmative
}
