package catalog

// ReleaseDateUnknown marks a video whose release date was never recorded.
// The core carries release dates as opaque strings and never interprets
// them.
const ReleaseDateUnknown = "-"

// Category is one entry in the catalog's category list. Categories are
// immutable once created; identity is the id.
type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Resolution describes a single stored rendition of a video: the
// resolution label ("1080p") and its size in bytes.
type Resolution struct {
	Res  string `json:"res"`
	Size int64  `json:"size"`
}

// AuthorVideo is the storage-side video record. CatIDs reference the
// category list by id; duplicates and dangling references are possible
// and resolved (or rejected) at aggregation time. Video ids are unique
// across the entire catalog, not per author.
type AuthorVideo struct {
	ID          int64                 `json:"id"`
	CatIDs      []int64               `json:"catIds"`
	Name        string                `json:"name"`
	Formats     map[string]Resolution `json:"formats"`
	ReleaseDate string                `json:"releaseDate"`
}

// Author owns an ordered collection of videos. At steady state every
// video in the catalog appears in exactly one author's list.
type Author struct {
	ID     int64         `json:"id"`
	Name   string        `json:"name"`
	Videos []AuthorVideo `json:"videos"`
}

// FlatVideo is the display-ready projection of one video: owner name
// instead of owner id, category names instead of ids, and the winning
// quality label. It is derived fresh on every aggregation and never
// written back.
type FlatVideo struct {
	ID                   int64    `json:"id"`
	Name                 string   `json:"name"`
	Author               string   `json:"author"`
	Categories           []string `json:"categories"`
	HighestQualityFormat string   `json:"highestQualityFormat"`
	ReleaseDate          string   `json:"releaseDate"`
}
