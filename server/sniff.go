package server

import "bytes"

// sizeThreshold splits the last-resort guess, bodies over 1MB are assumed to
// be video
const sizeThreshold = 1 << 20

// sniffStrategy is one step of the content-type resolution chain. An empty
// result moves on to the next strategy.
type sniffStrategy struct {
	name   string
	detect func(body []byte, declared string) string
}

// sniffStrategies is the ordered resolution chain: magic numbers beat the
// upstream-declared header, which beats the size heuristic. Upstream
// content-type metadata has proven unreliable, signatures win.
var sniffStrategies = []sniffStrategy{
	{name: "magic-number", detect: detectByMagicNumber},
	{name: "declared-header", detect: detectByDeclaredHeader},
	{name: "size-heuristic", detect: detectBySize},
}

// detectContentType resolves the content type of a media body through the
// strategy chain, it always produces a value
func detectContentType(body []byte, declared string) string {
	for _, s := range sniffStrategies {
		if ct := s.detect(body, declared); ct != "" {
			return ct
		}
	}
	return "application/octet-stream" // not reached, the size heuristic always resolves
}

func detectByMagicNumber(body []byte, _ string) string {
	switch {
	case len(body) >= 2 && body[0] == 0xFF && body[1] == 0xD8:
		return "image/jpeg"
	case bytes.HasPrefix(body, []byte{0x89, 0x50, 0x4E, 0x47}):
		return "image/png"
	case bytes.HasPrefix(body, []byte("GIF")):
		return "image/gif"
	case len(body) >= 12 && bytes.HasPrefix(body, []byte("RIFF")) && bytes.Equal(body[8:12], []byte("WEBP")):
		return "image/webp"
	case len(body) >= 8 && bytes.Equal(body[4:8], []byte("ftyp")):
		return "video/mp4"
	}
	return ""
}

func detectByDeclaredHeader(_ []byte, declared string) string {
	return declared
}

func detectBySize(body []byte, _ string) string {
	if len(body) > sizeThreshold {
		return "video/mp4"
	}
	return "image/jpeg"
}
