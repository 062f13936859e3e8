package catalog

// ResolveNames maps category ids to category names, preserving input
// order and duplicates. A reference to an id missing from categories
// fails with UnresolvedCategoryError; entries are never silently dropped.
func ResolveNames(catIDs []int64, categories []Category) ([]string, error) {
	names := make([]string, 0, len(catIDs))
	for _, catID := range catIDs {
		found := false
		for _, category := range categories {
			if category.ID == catID {
				names = append(names, category.Name)
				found = true
				break
			}
		}
		if !found {
			return nil, &UnresolvedCategoryError{CatID: catID}
		}
	}
	return names, nil
}
