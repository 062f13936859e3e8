package main

import (
	"errors"
	"testing"

	"reelcat/internal/catalog"
)

func TestParseCategoryIDs(t *testing.T) {
	ids, err := parseCategoryIDs("1, 2,3")
	if err != nil {
		t.Fatalf("parseCategoryIDs returned error: %v", err)
	}
	if len(ids) != 3 || ids[0] != 1 || ids[1] != 2 || ids[2] != 3 {
		t.Fatalf("unexpected ids: %v", ids)
	}
}

func TestParseCategoryIDsEmptyMeansNone(t *testing.T) {
	ids, err := parseCategoryIDs("  ")
	if err != nil {
		t.Fatalf("parseCategoryIDs returned error: %v", err)
	}
	if ids != nil {
		t.Fatalf("expected nil, got %v", ids)
	}
}

func TestParseCategoryIDsRejectsGarbage(t *testing.T) {
	if _, err := parseCategoryIDs("1,x"); err == nil {
		t.Fatal("expected error for non-numeric id")
	}
}

func TestFindVideoLocatesOwner(t *testing.T) {
	authors := []catalog.Author{
		{ID: 1, Name: "Ada", Videos: []catalog.AuthorVideo{{ID: 5, Name: "First"}}},
		{ID: 2, Name: "Bela", Videos: []catalog.AuthorVideo{{ID: 6, Name: "Second"}}},
	}

	video, owner, err := findVideo(authors, 6)
	if err != nil {
		t.Fatalf("findVideo returned error: %v", err)
	}
	if video.Name != "Second" || owner.Name != "Bela" {
		t.Fatalf("unexpected result: video=%+v owner=%+v", video, owner)
	}
}

func TestFindVideoMissingIDFails(t *testing.T) {
	_, _, err := findVideo(nil, 9)
	var notFound *catalog.VideoNotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected VideoNotFoundError, got %v", err)
	}
}

func TestFilterVideosMatchesCaseInsensitively(t *testing.T) {
	videos := []catalog.FlatVideo{
		{ID: 1, Name: "Winter Wonders"},
		{ID: 2, Name: "Summer Days"},
	}
	matched := filterVideos(videos, "WINTER")
	if len(matched) != 1 || matched[0].ID != 1 {
		t.Fatalf("unexpected match: %v", matched)
	}
}

func TestParseVideoIDRejectsNonPositive(t *testing.T) {
	if _, err := parseVideoID("0"); err == nil {
		t.Fatal("expected error for zero id")
	}
	if _, err := parseVideoID("abc"); err == nil {
		t.Fatal("expected error for non-numeric id")
	}
	id, err := parseVideoID(" 12 ")
	if err != nil || id != 12 {
		t.Fatalf("expected 12, got %d (%v)", id, err)
	}
}
