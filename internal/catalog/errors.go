package catalog

import "fmt"

// UnresolvedCategoryError reports a video referencing a category id that
// is absent from the category list. Aggregation raises it instead of
// skipping the entry or substituting a placeholder.
type UnresolvedCategoryError struct {
	CatID int64
}

func (e *UnresolvedCategoryError) Error() string {
	return fmt.Sprintf("category %d not found in category list", e.CatID)
}

// OwnerNotFoundError reports an author lookup that found nothing. Name is
// set when the lookup was by display name (the delete path), ID when it
// was by id.
type OwnerNotFoundError struct {
	Name string
	ID   int64
}

func (e *OwnerNotFoundError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("author %q not found", e.Name)
	}
	return fmt.Sprintf("author %d not found", e.ID)
}

// VideoNotFoundError reports an update or delete whose target video id is
// missing from the expected author's list.
type VideoNotFoundError struct {
	VideoID int64
}

func (e *VideoNotFoundError) Error() string {
	return fmt.Sprintf("video %d not found", e.VideoID)
}

// StoreReadError wraps a failed or malformed read at the store boundary.
// Stores validate every snapshot structurally so malformed data never
// reaches the resolvers.
type StoreReadError struct {
	Resource string
	Err      error
}

func (e *StoreReadError) Error() string {
	return fmt.Sprintf("read %s: %v", e.Resource, e.Err)
}

func (e *StoreReadError) Unwrap() error { return e.Err }

// StoreWriteError reports a failed replacement write, carrying the
// operation and the author whose list was being replaced.
type StoreWriteError struct {
	Op       string
	AuthorID int64
	Err      error
}

func (e *StoreWriteError) Error() string {
	return fmt.Sprintf("%s: write author %d: %v", e.Op, e.AuthorID, e.Err)
}

func (e *StoreWriteError) Unwrap() error { return e.Err }

// PartialReassignmentError reports a reassignment whose append to the new
// author committed but whose removal from the old author kept failing
// after retries. The video is present under both authors until the
// catalog is repaired by hand; this is the only error that implies the
// single-owner invariant is currently violated.
type PartialReassignmentError struct {
	VideoID      int64
	FromAuthorID int64
	ToAuthorID   int64
	Err          error
}

func (e *PartialReassignmentError) Error() string {
	return fmt.Sprintf("video %d copied to author %d but not removed from author %d: %v",
		e.VideoID, e.ToAuthorID, e.FromAuthorID, e.Err)
}

func (e *PartialReassignmentError) Unwrap() error { return e.Err }
