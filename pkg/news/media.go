package news

import (
	"encoding/json"
	"path"
	"strings"

	"github.com/tidwall/gjson"
)

// VideoMarker is appended to a proxy-path token segment when the reference is
// classified as video, so the media proxy can recover the intended content
// type without re-deriving it. It is stripped before the token is used as a
// lookup key.
const VideoMarker = "__video__"

// entity types marking embedded media in rich-text cells
const (
	entityImage = 2
	entityVideo = 3
)

var videoExtensions = map[string]bool{
	".mp4": true, ".avi": true, ".mov": true, ".wmv": true, ".flv": true,
	".mkv": true, ".webm": true, ".mpg": true, ".mpeg": true, ".3gp": true, ".m4v": true,
}

var imageExtensions = map[string]bool{
	".jpg": true, ".jpeg": true, ".png": true, ".gif": true,
	".bmp": true, ".webp": true, ".svg": true,
}

// URL substrings that usually indicate a video resource even without a
// recognizable extension
var videoKeywords = []string{"video", "stream", "embed", "v="}

// classifyMedia extracts media references from one raw cell value. Cells come
// in several shapes: standard attachment arrays, rich-text blobs with an
// entities list, or bare URLs. The shape is decided here once, unrecognized
// shapes yield nothing and never an error.
func classifyMedia(cell json.RawMessage) []MediaRef {
	if len(cell) == 0 {
		return nil
	}
	v := gjson.ParseBytes(cell)

	switch {
	case v.IsArray():
		return classifyAttachments(v.Array())
	case v.Get("entities").IsArray():
		return classifyEntities(v.Get("entities").Array())
	case v.Type == gjson.String:
		return classifyBareURL(v.String())
	}
	return nil
}

// classifyAttachments handles the standard attachment-array shape. The
// declared file type is checked first, then the file name extension, the
// source's own metadata alone is not trusted. The reference URL is the opaque
// proxy path keyed by the storage token, bytes are resolved lazily by the
// proxy endpoint.
func classifyAttachments(elems []gjson.Result) []MediaRef {
	var refs []MediaRef
	for _, elem := range elems {
		token := elem.Get("file_token").String()
		if token == "" {
			continue
		}
		kind := kindFromHints(elem.Get("file_type").String(), elem.Get("file_name").String())
		refs = append(refs, MediaRef{URL: ProxyPath(token), Kind: kind})
	}
	return refs
}

// kindFromHints derives the media kind by precedence: declared type string,
// then file name extension, image as the default
func kindFromHints(fileType, fileName string) MediaKind {
	ftype := strings.ToLower(fileType)
	switch {
	case strings.Contains(ftype, "video") || videoExtensions["."+strings.TrimPrefix(ftype, ".")]:
		return KindVideo
	case strings.Contains(ftype, "image") || imageExtensions["."+strings.TrimPrefix(ftype, ".")]:
		return KindImage
	case hasExtension(fileName, videoExtensions):
		return KindVideo
	case hasExtension(fileName, imageExtensions):
		return KindImage
	}
	return KindImage
}

// classifyEntities handles the rich-text shape, an object holding an entities
// sequence. Video content is preferred when an entity carries both media keys.
func classifyEntities(entities []gjson.Result) []MediaRef {
	var refs []MediaRef
	for _, ent := range entities {
		switch ent.Get("entity_type").Int() {
		case entityVideo:
			u := ent.Get("entity_content.video.video_ori.url").String()
			if u == "" {
				u = ent.Get("entity_content.video.video_preview.url").String()
			}
			if u != "" {
				refs = append(refs, MediaRef{URL: u, Kind: KindVideo})
			}
		case entityImage:
			u := ent.Get("entity_content.image.image_ori.url").String()
			if u == "" {
				continue
			}
			kind := KindImage
			if looksLikeVideoURL(u) {
				kind = KindVideo
			}
			refs = append(refs, MediaRef{URL: u, Kind: kind})
		}
	}
	return refs
}

// classifyBareURL handles cells holding a plain http(s) URL string
func classifyBareURL(s string) []MediaRef {
	if !strings.HasPrefix(s, "http://") && !strings.HasPrefix(s, "https://") {
		return nil
	}
	switch {
	case looksLikeVideoURL(s):
		return []MediaRef{{URL: s, Kind: KindVideo}}
	case hasExtension(s, imageExtensions):
		return []MediaRef{{URL: s, Kind: KindImage}}
	}
	return nil
}

func looksLikeVideoURL(u string) bool {
	if hasExtension(u, videoExtensions) {
		return true
	}
	lower := strings.ToLower(u)
	for _, kw := range videoKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

func hasExtension(name string, exts map[string]bool) bool {
	return exts[strings.ToLower(path.Ext(name))]
}
