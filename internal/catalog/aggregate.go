package catalog

// Flatten projects every video in the catalog into its display form.
// Output order is the authors' order, then each author's own video order,
// so a fixed snapshot always renders the same list. A dangling category
// reference anywhere in the catalog fails the whole aggregation; no
// partial list is returned.
func Flatten(authors []Author, categories []Category) ([]FlatVideo, error) {
	videos := make([]FlatVideo, 0)
	for _, author := range authors {
		for _, video := range author.Videos {
			names, err := ResolveNames(video.CatIDs, categories)
			if err != nil {
				return nil, err
			}
			videos = append(videos, FlatVideo{
				ID:                   video.ID,
				Name:                 video.Name,
				Author:               author.Name,
				Categories:           names,
				HighestQualityFormat: BestLabel(video.Formats),
				ReleaseDate:          video.ReleaseDate,
			})
		}
	}
	return videos, nil
}
