package catalog

import "context"

// Store is the catalog persistence contract. Reads return full snapshots
// with no filtering or pagination; the only write replaces one author's
// entire video list. The store offers no operation spanning two authors,
// which is what forces reassignment to be a two-step procedure.
type Store interface {
	ReadAllAuthors(ctx context.Context) ([]Author, error)
	ReadAllCategories(ctx context.Context) ([]Category, error)
	ReplaceAuthorVideos(ctx context.Context, authorID int64, videos []AuthorVideo) error
}
