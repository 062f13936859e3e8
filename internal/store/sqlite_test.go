package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"reelcat/internal/catalog"
)

func openTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := OpenSQLite(filepath.Join(t.TempDir(), "catalog.db"))
	if err != nil {
		t.Fatalf("OpenSQLite returned error: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func seedTestStore(t *testing.T, store *SQLiteStore) {
	t.Helper()
	authors := []catalog.Author{
		{ID: 1, Name: "Ada", Videos: []catalog.AuthorVideo{
			{ID: 5, CatIDs: []int64{1}, Name: "First", Formats: map[string]catalog.Resolution{"one": {Res: "1080p", Size: 1000}}, ReleaseDate: "2020-01-01"},
		}},
		{ID: 2, Name: "Bela"},
	}
	categories := []catalog.Category{{ID: 1, Name: "Drama"}, {ID: 2, Name: "Comedy"}}
	if err := store.Seed(context.Background(), authors, categories); err != nil {
		t.Fatalf("Seed returned error: %v", err)
	}
}

func TestSQLiteStoreSeedAndReadRoundTrip(t *testing.T) {
	store := openTestStore(t)
	seedTestStore(t, store)

	authors, err := store.ReadAllAuthors(context.Background())
	if err != nil {
		t.Fatalf("ReadAllAuthors returned error: %v", err)
	}
	if len(authors) != 2 {
		t.Fatalf("expected 2 authors, got %d", len(authors))
	}
	if authors[0].ID != 1 || authors[1].ID != 2 {
		t.Fatalf("seed order not preserved: %+v", authors)
	}
	video := authors[0].Videos[0]
	if video.Name != "First" || video.Formats["one"].Size != 1000 {
		t.Fatalf("unexpected video after round trip: %+v", video)
	}

	categories, err := store.ReadAllCategories(context.Background())
	if err != nil {
		t.Fatalf("ReadAllCategories returned error: %v", err)
	}
	if len(categories) != 2 || categories[0].Name != "Drama" {
		t.Fatalf("unexpected categories: %+v", categories)
	}
}

func TestSQLiteStoreReplaceAuthorVideos(t *testing.T) {
	store := openTestStore(t)
	seedTestStore(t, store)

	newList := []catalog.AuthorVideo{
		{ID: 6, Name: "Replacement", Formats: map[string]catalog.Resolution{}, ReleaseDate: catalog.ReleaseDateUnknown},
	}
	if err := store.ReplaceAuthorVideos(context.Background(), 1, newList); err != nil {
		t.Fatalf("ReplaceAuthorVideos returned error: %v", err)
	}

	authors, err := store.ReadAllAuthors(context.Background())
	if err != nil {
		t.Fatalf("ReadAllAuthors returned error: %v", err)
	}
	if len(authors[0].Videos) != 1 || authors[0].Videos[0].ID != 6 {
		t.Fatalf("list was not replaced wholesale: %+v", authors[0].Videos)
	}
	if len(authors[1].Videos) != 0 {
		t.Fatalf("other author disturbed: %+v", authors[1].Videos)
	}
}

func TestSQLiteStoreReplaceUnknownAuthorFails(t *testing.T) {
	store := openTestStore(t)
	seedTestStore(t, store)

	err := store.ReplaceAuthorVideos(context.Background(), 99, nil)
	if err == nil {
		t.Fatal("expected error for unknown author")
	}
}

func TestSQLiteStoreEmptyCatalogReads(t *testing.T) {
	store := openTestStore(t)

	authors, err := store.ReadAllAuthors(context.Background())
	if err != nil {
		t.Fatalf("ReadAllAuthors returned error: %v", err)
	}
	if len(authors) != 0 {
		t.Fatalf("expected empty catalog, got %+v", authors)
	}
}

func TestSQLiteStoreMalformedVideosColumnBecomesStoreReadError(t *testing.T) {
	store := openTestStore(t)
	if _, err := store.db.Exec(
		`INSERT INTO authors (id, name, position, videos) VALUES (1, 'Ada', 0, 'not json')`); err != nil {
		t.Fatalf("insert malformed row: %v", err)
	}

	_, err := store.ReadAllAuthors(context.Background())
	var readErr *catalog.StoreReadError
	if !errors.As(err, &readErr) {
		t.Fatalf("expected StoreReadError, got %v", err)
	}
}

func TestSQLiteStoreSecondOpenIsRefusedWhileLocked(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.db")
	first, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("OpenSQLite returned error: %v", err)
	}
	defer first.Close()

	if _, err := OpenSQLite(path); err == nil {
		t.Fatal("expected second open to fail while lock is held")
	}
}
