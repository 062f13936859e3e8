// Package store implements the catalog.Store contract against two
// backends: a REST catalog service (json-server style collections) and a
// local SQLite file.
//
// Both backends expose the same deliberately weak write surface: one
// author's whole video list is replaced at a time, and nothing spans two
// authors. Every read is structurally validated at this boundary so
// malformed data becomes a catalog.StoreReadError instead of reaching the
// resolvers.
package store
