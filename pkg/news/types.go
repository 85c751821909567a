package news

// MediaKind classifies a media reference as image or video
type MediaKind string

// recognized media kinds
const (
	KindImage MediaKind = "image"
	KindVideo MediaKind = "video"
)

// MediaRef is a classified pointer to one media asset. URL is either an
// external authenticated-download reference or an opaque proxy path.
type MediaRef struct {
	URL  string
	Kind MediaKind
}

// Group is one numbered body block of a news record, at most one text blob
// plus zero or more media
type Group struct {
	Index   int
	Content string
	Media   []MediaRef
}

// Item is the canonical intermediate representation of one news record,
// produced once per raw record and immutable afterwards
type Item struct {
	ID          string
	Title       string
	Summary     string
	Tags        []string
	Cover       MediaRef
	PublishDate string // YYYY-MM-DD or empty
	IsTop       bool
	Groups      []Group // ordered by ascending index
}

// Detail is one entry of the ordered details sequence of a public news item
type Detail struct {
	Image string `json:"image"`
	Text  string `json:"text"`
	Type  string `json:"type"` // image, video or content
}

// PublicItem is the stable contract consumed by the frontend, the only
// representation crossing the API boundary
type PublicItem struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Summary     string   `json:"summary"`
	Tags        []string `json:"tags"`
	CoverImage  string   `json:"cover_image"`
	CoverType   string   `json:"cover_type"`
	IsTop       bool     `json:"is_top"`
	PublishDate string   `json:"publish_date"`
	Details     []Detail `json:"details"`
}
