package catalog

import (
	"errors"
	"testing"
)

func testCatalog() ([]Author, []Category) {
	authors := []Author{
		{
			ID:   1,
			Name: "Ada",
			Videos: []AuthorVideo{
				{
					ID:          10,
					CatIDs:      []int64{2, 1},
					Name:        "First Steps",
					Formats:     map[string]Resolution{"one": {Res: "1080p", Size: 1000}},
					ReleaseDate: "2020-01-01",
				},
				{
					ID:          11,
					CatIDs:      []int64{1},
					Name:        "Second Steps",
					Formats:     map[string]Resolution{},
					ReleaseDate: ReleaseDateUnknown,
				},
			},
		},
		{
			ID:   2,
			Name: "Bela",
			Videos: []AuthorVideo{
				{
					ID:     20,
					CatIDs: []int64{2},
					Name:   "Third",
					Formats: map[string]Resolution{
						"two":   {Res: "720p", Size: 2000},
						"three": {Res: "720p", Size: 900},
					},
					ReleaseDate: "2021-05-05",
				},
			},
		},
	}
	categories := []Category{{ID: 1, Name: "Drama"}, {ID: 2, Name: "Comedy"}}
	return authors, categories
}

func TestFlattenOrdersByAuthorThenVideo(t *testing.T) {
	authors, categories := testCatalog()

	videos, err := Flatten(authors, categories)
	if err != nil {
		t.Fatalf("Flatten returned error: %v", err)
	}
	if len(videos) != 3 {
		t.Fatalf("expected 3 videos, got %d", len(videos))
	}
	wantIDs := []int64{10, 11, 20}
	for i, want := range wantIDs {
		if videos[i].ID != want {
			t.Fatalf("position %d: expected video %d, got %d", i, want, videos[i].ID)
		}
	}
	if videos[0].Author != "Ada" || videos[2].Author != "Bela" {
		t.Fatalf("unexpected author names: %q, %q", videos[0].Author, videos[2].Author)
	}
}

func TestFlattenResolvesCategoriesAndQuality(t *testing.T) {
	authors, categories := testCatalog()

	videos, err := Flatten(authors, categories)
	if err != nil {
		t.Fatalf("Flatten returned error: %v", err)
	}

	first := videos[0]
	if len(first.Categories) != 2 || first.Categories[0] != "Comedy" || first.Categories[1] != "Drama" {
		t.Fatalf("unexpected categories: %v", first.Categories)
	}
	if first.HighestQualityFormat != "one 1080p" {
		t.Fatalf("unexpected quality label: %q", first.HighestQualityFormat)
	}
	if videos[1].HighestQualityFormat != "" {
		t.Fatalf("expected empty label for format-less video, got %q", videos[1].HighestQualityFormat)
	}
	if videos[2].HighestQualityFormat != "two 720p" {
		t.Fatalf("unexpected quality label: %q", videos[2].HighestQualityFormat)
	}
}

func TestFlattenCountMatchesTotalVideos(t *testing.T) {
	authors, categories := testCatalog()

	videos, err := Flatten(authors, categories)
	if err != nil {
		t.Fatalf("Flatten returned error: %v", err)
	}

	total := 0
	seen := make(map[int64]bool)
	for _, author := range authors {
		total += len(author.Videos)
	}
	if len(videos) != total {
		t.Fatalf("expected %d videos, got %d", total, len(videos))
	}
	for _, video := range videos {
		if seen[video.ID] {
			t.Fatalf("video %d appears twice in flattened output", video.ID)
		}
		seen[video.ID] = true
	}
}

func TestFlattenPropagatesUnresolvedCategory(t *testing.T) {
	authors, _ := testCatalog()

	_, err := Flatten(authors, []Category{{ID: 1, Name: "Drama"}})
	var unresolved *UnresolvedCategoryError
	if !errors.As(err, &unresolved) {
		t.Fatalf("expected UnresolvedCategoryError, got %v", err)
	}
	if unresolved.CatID != 2 {
		t.Fatalf("expected offending id 2, got %d", unresolved.CatID)
	}
}

func TestFlattenEmptyCatalogYieldsEmptyList(t *testing.T) {
	videos, err := Flatten(nil, nil)
	if err != nil {
		t.Fatalf("Flatten returned error: %v", err)
	}
	if len(videos) != 0 {
		t.Fatalf("expected empty list, got %v", videos)
	}
}
