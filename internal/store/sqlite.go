package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
	_ "modernc.org/sqlite"

	"reelcat/internal/catalog"
	"reelcat/internal/config"
)

const schema = `
CREATE TABLE IF NOT EXISTS categories (
    id   INTEGER PRIMARY KEY,
    name TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS authors (
    id       INTEGER PRIMARY KEY,
    name     TEXT NOT NULL,
    position INTEGER NOT NULL,
    videos   TEXT NOT NULL DEFAULT '[]'
);
`

// SQLiteStore keeps the catalog in a local SQLite file. Each author's
// video list is one JSON document, so the write surface is the same
// whole-list replacement the HTTP backend offers: still no operation
// spanning two authors.
type SQLiteStore struct {
	db   *sql.DB
	lock *flock.Flock
	path string
}

// OpenSQLite connects to (or creates) the catalog database. A lock file
// next to the database enforces the single-writer assumption across
// processes.
func OpenSQLite(path string) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create catalog directory: %w", err)
	}

	lock := flock.New(path + ".lock")
	locked, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire catalog lock: %w", err)
	}
	if !locked {
		return nil, fmt.Errorf("catalog %s is in use by another process", path)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		_ = lock.Unlock()
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			_ = lock.Unlock()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		_ = lock.Unlock()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	return &SQLiteStore{db: db, lock: lock, path: path}, nil
}

// OpenSQLiteFromConfig opens the catalog at the configured path.
func OpenSQLiteFromConfig(cfg *config.Config) (*SQLiteStore, error) {
	return OpenSQLite(cfg.Store.DBPath)
}

// Close releases the database and the lock file.
func (s *SQLiteStore) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	err := s.db.Close()
	if s.lock != nil {
		if unlockErr := s.lock.Unlock(); err == nil {
			err = unlockErr
		}
	}
	return err
}

func (s *SQLiteStore) ReadAllAuthors(ctx context.Context) ([]catalog.Author, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, name, videos FROM authors ORDER BY position, id`)
	if err != nil {
		return nil, &catalog.StoreReadError{Resource: "authors", Err: err}
	}
	defer rows.Close()

	var authors []catalog.Author
	for rows.Next() {
		var author catalog.Author
		var videos string
		if err := rows.Scan(&author.ID, &author.Name, &videos); err != nil {
			return nil, &catalog.StoreReadError{Resource: "authors", Err: err}
		}
		if err := json.Unmarshal([]byte(videos), &author.Videos); err != nil {
			return nil, &catalog.StoreReadError{
				Resource: "authors",
				Err:      fmt.Errorf("author %d video list: %w", author.ID, err),
			}
		}
		authors = append(authors, author)
	}
	if err := rows.Err(); err != nil {
		return nil, &catalog.StoreReadError{Resource: "authors", Err: err}
	}
	if err := validateAuthors(authors); err != nil {
		return nil, &catalog.StoreReadError{Resource: "authors", Err: err}
	}
	return authors, nil
}

func (s *SQLiteStore) ReadAllCategories(ctx context.Context) ([]catalog.Category, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, name FROM categories ORDER BY id`)
	if err != nil {
		return nil, &catalog.StoreReadError{Resource: "categories", Err: err}
	}
	defer rows.Close()

	var categories []catalog.Category
	for rows.Next() {
		var category catalog.Category
		if err := rows.Scan(&category.ID, &category.Name); err != nil {
			return nil, &catalog.StoreReadError{Resource: "categories", Err: err}
		}
		categories = append(categories, category)
	}
	if err := rows.Err(); err != nil {
		return nil, &catalog.StoreReadError{Resource: "categories", Err: err}
	}
	if err := validateCategories(categories); err != nil {
		return nil, &catalog.StoreReadError{Resource: "categories", Err: err}
	}
	return categories, nil
}

// ReplaceAuthorVideos overwrites one author's video list in a single
// statement.
func (s *SQLiteStore) ReplaceAuthorVideos(ctx context.Context, authorID int64, videos []catalog.AuthorVideo) error {
	if videos == nil {
		videos = []catalog.AuthorVideo{}
	}
	encoded, err := json.Marshal(videos)
	if err != nil {
		return fmt.Errorf("encode video list: %w", err)
	}

	result, err := s.db.ExecContext(ctx, `UPDATE authors SET videos = ? WHERE id = ?`, string(encoded), authorID)
	if err != nil {
		return fmt.Errorf("replace videos for author %d: %w", authorID, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("replace videos for author %d: %w", authorID, err)
	}
	if affected == 0 {
		return fmt.Errorf("replace videos: author %d not found", authorID)
	}
	return nil
}

// Seed replaces the entire catalog contents. Used by the import command
// and tests.
func (s *SQLiteStore) Seed(ctx context.Context, authors []catalog.Author, categories []catalog.Category) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM authors`); err != nil {
		return fmt.Errorf("clear authors: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM categories`); err != nil {
		return fmt.Errorf("clear categories: %w", err)
	}
	for i, author := range authors {
		videos := author.Videos
		if videos == nil {
			videos = []catalog.AuthorVideo{}
		}
		encoded, err := json.Marshal(videos)
		if err != nil {
			return fmt.Errorf("encode videos for author %d: %w", author.ID, err)
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO authors (id, name, position, videos) VALUES (?, ?, ?, ?)`,
			author.ID, author.Name, i, string(encoded)); err != nil {
			return fmt.Errorf("insert author %d: %w", author.ID, err)
		}
	}
	for _, category := range categories {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO categories (id, name) VALUES (?, ?)`,
			category.ID, category.Name); err != nil {
			return fmt.Errorf("insert category %d: %w", category.ID, err)
		}
	}
	return tx.Commit()
}
