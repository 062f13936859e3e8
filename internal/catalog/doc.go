// Package catalog holds the video catalog's data model and the logic that
// reads and mutates it.
//
// The catalog is a list of authors, each owning an ordered list of videos,
// plus a flat list of categories that videos reference by id. Flatten
// projects the whole catalog into display rows with resolved category
// names and a computed best-quality label. Mutator applies creates,
// edits, deletes, and author reassignments through the Store contract,
// which only offers full-snapshot reads and whole-list replacement writes
// per author.
//
// Because the store has no transaction spanning two authors, moving a
// video between authors is a two-step procedure with a documented failure
// mode; see Mutator.Update and PartialReassignmentError.
package catalog
