package main

import (
	"fmt"
	"strconv"
	"strings"

	"reelcat/internal/catalog"
)

// parseCategoryIDs splits a comma-separated flag value into category ids.
// An empty value means no categories.
func parseCategoryIDs(value string) ([]int64, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil, nil
	}
	parts := strings.Split(trimmed, ",")
	ids := make([]int64, 0, len(parts))
	for _, part := range parts {
		id, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid category id %q", strings.TrimSpace(part))
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// findVideo locates a video and its owning author by video id within a
// catalog snapshot.
func findVideo(authors []catalog.Author, videoID int64) (catalog.AuthorVideo, catalog.Author, error) {
	for _, author := range authors {
		for _, video := range author.Videos {
			if video.ID == videoID {
				return video, author, nil
			}
		}
	}
	return catalog.AuthorVideo{}, catalog.Author{}, &catalog.VideoNotFoundError{VideoID: videoID}
}

// filterVideos keeps the videos whose name contains term,
// case-insensitively.
func filterVideos(videos []catalog.FlatVideo, term string) []catalog.FlatVideo {
	needle := strings.ToLower(term)
	matched := make([]catalog.FlatVideo, 0, len(videos))
	for _, video := range videos {
		if strings.Contains(strings.ToLower(video.Name), needle) {
			matched = append(matched, video)
		}
	}
	return matched
}

func parseVideoID(arg string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(arg), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid video id %q", arg)
	}
	return id, nil
}
