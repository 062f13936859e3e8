package store

import (
	"fmt"

	"reelcat/internal/catalog"
)

// validateAuthors structurally checks a freshly decoded author snapshot
// before it reaches the core.
func validateAuthors(authors []catalog.Author) error {
	for _, author := range authors {
		if author.ID <= 0 {
			return fmt.Errorf("author id %d out of range", author.ID)
		}
		if author.Name == "" {
			return fmt.Errorf("author %d has an empty name", author.ID)
		}
		for _, video := range author.Videos {
			if video.ID <= 0 {
				return fmt.Errorf("author %d: video id %d out of range", author.ID, video.ID)
			}
			if video.Name == "" {
				return fmt.Errorf("author %d: video %d has an empty name", author.ID, video.ID)
			}
			for label, format := range video.Formats {
				if label == "" {
					return fmt.Errorf("video %d has a format with an empty label", video.ID)
				}
				if format.Size < 0 {
					return fmt.Errorf("video %d format %q has a negative size", video.ID, label)
				}
			}
		}
	}
	return nil
}

func validateCategories(categories []catalog.Category) error {
	for _, category := range categories {
		if category.ID <= 0 {
			return fmt.Errorf("category id %d out of range", category.ID)
		}
		if category.Name == "" {
			return fmt.Errorf("category %d has an empty name", category.ID)
		}
	}
	return nil
}
