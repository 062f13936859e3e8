package store

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"reelcat/internal/catalog"
)

const authorsPayload = `[
  {"id": 1, "name": "Ada", "videos": [
    {"id": 5, "catIds": [1, 2], "name": "First", "formats": {"one": {"res": "1080p", "size": 1000}}, "releaseDate": "2020-01-01"}
  ]},
  {"id": 2, "name": "Bela", "videos": []}
]`

func TestHTTPStoreReadAllAuthors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/authors":
			w.Header().Set("Content-Type", "application/json")
			io.WriteString(w, authorsPayload)
		default:
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
	}))
	defer server.Close()

	store := NewHTTPStore(server.URL)
	authors, err := store.ReadAllAuthors(context.Background())
	if err != nil {
		t.Fatalf("ReadAllAuthors returned error: %v", err)
	}
	if len(authors) != 2 {
		t.Fatalf("expected 2 authors, got %d", len(authors))
	}
	if authors[0].Name != "Ada" || len(authors[0].Videos) != 1 {
		t.Fatalf("unexpected first author: %+v", authors[0])
	}
	video := authors[0].Videos[0]
	if video.ID != 5 || video.Formats["one"].Res != "1080p" {
		t.Fatalf("unexpected video: %+v", video)
	}
}

func TestHTTPStoreReadAllCategories(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/categories" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `[{"id": 1, "name": "Drama"}, {"id": 2, "name": "Comedy"}]`)
	}))
	defer server.Close()

	store := NewHTTPStore(server.URL)
	categories, err := store.ReadAllCategories(context.Background())
	if err != nil {
		t.Fatalf("ReadAllCategories returned error: %v", err)
	}
	if len(categories) != 2 || categories[0].Name != "Drama" {
		t.Fatalf("unexpected categories: %+v", categories)
	}
}

func TestHTTPStoreReplaceAuthorVideosPatchesWholeList(t *testing.T) {
	var gotMethod, gotPath, gotContentType string
	var gotBody []byte

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotContentType = r.Header.Get("Content-Type")
		body, err := io.ReadAll(r.Body)
		if err != nil {
			t.Fatalf("read body: %v", err)
		}
		gotBody = body
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	store := NewHTTPStore(server.URL)
	videos := []catalog.AuthorVideo{{ID: 5, Name: "First", CatIDs: []int64{1}, Formats: map[string]catalog.Resolution{}, ReleaseDate: "-"}}
	if err := store.ReplaceAuthorVideos(context.Background(), 7, videos); err != nil {
		t.Fatalf("ReplaceAuthorVideos returned error: %v", err)
	}

	if gotMethod != http.MethodPatch {
		t.Fatalf("expected PATCH, got %s", gotMethod)
	}
	if gotPath != "/authors/7" {
		t.Fatalf("unexpected path: %s", gotPath)
	}
	if gotContentType != "application/json" {
		t.Fatalf("unexpected content type: %s", gotContentType)
	}

	var payload struct {
		Videos []catalog.AuthorVideo `json:"videos"`
	}
	if err := json.Unmarshal(gotBody, &payload); err != nil {
		t.Fatalf("decode payload: %v", err)
	}
	if len(payload.Videos) != 1 || payload.Videos[0].ID != 5 {
		t.Fatalf("unexpected payload: %+v", payload)
	}
}

func TestHTTPStoreReplaceNilListSendsEmptyArray(t *testing.T) {
	var gotBody []byte
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		gotBody = body
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	store := NewHTTPStore(server.URL)
	if err := store.ReplaceAuthorVideos(context.Background(), 1, nil); err != nil {
		t.Fatalf("ReplaceAuthorVideos returned error: %v", err)
	}
	if string(gotBody) != `{"videos":[]}` {
		t.Fatalf("expected empty array payload, got %s", gotBody)
	}
}

func TestHTTPStoreWriteFailureStatusSurfaces(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	store := NewHTTPStore(server.URL)
	err := store.ReplaceAuthorVideos(context.Background(), 3, nil)
	if err == nil {
		t.Fatal("expected error on 500 response")
	}
}

func TestHTTPStoreMalformedAuthorsBecomeStoreReadError(t *testing.T) {
	cases := map[string]string{
		"not json":       `{"oops"`,
		"wrong shape":    `{"authors": []}`,
		"zero author id": `[{"id": 0, "name": "Ada", "videos": []}]`,
		"empty name":     `[{"id": 1, "name": "", "videos": []}]`,
		"zero video id":  `[{"id": 1, "name": "Ada", "videos": [{"id": 0, "name": "x"}]}]`,
	}
	for name, payload := range cases {
		t.Run(name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				io.WriteString(w, payload)
			}))
			defer server.Close()

			store := NewHTTPStore(server.URL)
			_, err := store.ReadAllAuthors(context.Background())
			var readErr *catalog.StoreReadError
			if !errors.As(err, &readErr) {
				t.Fatalf("expected StoreReadError, got %v", err)
			}
			if readErr.Resource != "authors" {
				t.Fatalf("expected authors resource, got %q", readErr.Resource)
			}
		})
	}
}

func TestHTTPStoreReadErrorOnBadStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	store := NewHTTPStore(server.URL)
	_, err := store.ReadAllCategories(context.Background())
	var readErr *catalog.StoreReadError
	if !errors.As(err, &readErr) {
		t.Fatalf("expected StoreReadError, got %v", err)
	}
}
