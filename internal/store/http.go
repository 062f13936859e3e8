package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"reelcat/internal/catalog"
	"reelcat/internal/config"
)

const defaultHTTPTimeout = 10 * time.Second

// HTTPDoer describes the HTTP client used by the catalog store.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// HTTPStore talks to a REST catalog service exposing /authors and
// /categories collections, with whole-list PATCH updates per author.
type HTTPStore struct {
	baseURL string
	client  HTTPDoer
}

// HTTPOption customizes the store.
type HTTPOption func(*HTTPStore)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client HTTPDoer) HTTPOption {
	return func(s *HTTPStore) {
		if client != nil {
			s.client = client
		}
	}
}

// NewHTTPStore constructs a store against the given base URL.
func NewHTTPStore(baseURL string, opts ...HTTPOption) *HTTPStore {
	s := &HTTPStore{
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		client:  &http.Client{Timeout: defaultHTTPTimeout},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewHTTPStoreFromConfig constructs a store using the configured base URL
// and request timeout.
func NewHTTPStoreFromConfig(cfg *config.Config) *HTTPStore {
	if cfg == nil {
		return NewHTTPStore("")
	}
	timeout := defaultHTTPTimeout
	if cfg.Store.RequestTimeout > 0 {
		timeout = time.Duration(cfg.Store.RequestTimeout) * time.Second
	}
	return NewHTTPStore(cfg.Store.BaseURL, WithHTTPClient(&http.Client{Timeout: timeout}))
}

func (s *HTTPStore) ReadAllAuthors(ctx context.Context) ([]catalog.Author, error) {
	var authors []catalog.Author
	if err := s.getJSON(ctx, "/authors", &authors); err != nil {
		return nil, &catalog.StoreReadError{Resource: "authors", Err: err}
	}
	if err := validateAuthors(authors); err != nil {
		return nil, &catalog.StoreReadError{Resource: "authors", Err: err}
	}
	return authors, nil
}

func (s *HTTPStore) ReadAllCategories(ctx context.Context) ([]catalog.Category, error) {
	var categories []catalog.Category
	if err := s.getJSON(ctx, "/categories", &categories); err != nil {
		return nil, &catalog.StoreReadError{Resource: "categories", Err: err}
	}
	if err := validateCategories(categories); err != nil {
		return nil, &catalog.StoreReadError{Resource: "categories", Err: err}
	}
	return categories, nil
}

// ReplaceAuthorVideos patches the author resource with the complete new
// video list. The service replaces the list wholesale; there is no diff
// or merge.
func (s *HTTPStore) ReplaceAuthorVideos(ctx context.Context, authorID int64, videos []catalog.AuthorVideo) error {
	if videos == nil {
		videos = []catalog.AuthorVideo{}
	}
	payload, err := json.Marshal(map[string][]catalog.AuthorVideo{"videos": videos})
	if err != nil {
		return fmt.Errorf("encode video list: %w", err)
	}

	url := fmt.Sprintf("%s/authors/%d", s.baseURL, authorID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPatch, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build replace request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("replace videos for author %d: %w", authorID, err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("replace videos for author %d: status %d", authorID, resp.StatusCode)
	}
	return nil
}

func (s *HTTPStore) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("status %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
