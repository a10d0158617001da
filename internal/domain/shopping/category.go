package shopping

import "errors"

// ErrCategoryInUse is returned when deleting a category that still tags
// items.
var ErrCategoryInUse = errors.New("category still has items")

// Category is a named tag grouping items across lists.
type Category struct {
	ID   int
	Name string
}

// CategoryWithCount is a Category with the number of items tagged with its
// name. The count is computed client-side.
type CategoryWithCount struct {
	ID        int
	Name      string
	ItemCount int
}

// CanDelete reports whether the category is unused and may be deleted.
func (c CategoryWithCount) CanDelete() bool {
	return c.ItemCount == 0
}

// CountByCategory pairs each category with the number of items whose
// category name matches it exactly. Output order follows categories.
func CountByCategory(categories []Category, items []Item) []CategoryWithCount {
	counts := make(map[string]int)
	for i := range items {
		if items[i].Category != nil {
			counts[*items[i].Category]++
		}
	}

	out := make([]CategoryWithCount, len(categories))
	for i, c := range categories {
		out[i] = CategoryWithCount{ID: c.ID, Name: c.Name, ItemCount: counts[c.Name]}
	}
	return out
}
