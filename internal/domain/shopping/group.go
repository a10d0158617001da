package shopping

// GroupKind distinguishes real category groups from the two synthetic
// buckets.
type GroupKind int

const (
	GroupCategory GroupKind = iota
	GroupNoCategory
	GroupInCart
)

// Display labels of the synthetic buckets.
const (
	NoCategoryLabel = "No category"
	InCartLabel     = "In cart"
)

// ItemGroup is one section of the list detail view.
type ItemGroup struct {
	Kind  GroupKind
	Name  string
	Items []Item
}

// Key identifies the group for transient collapse state. Synthetic buckets
// get keys that cannot collide with a category name.
func (g ItemGroup) Key() string {
	switch g.Kind {
	case GroupNoCategory:
		return "\x00no-category"
	case GroupInCart:
		return "\x00in-cart"
	default:
		return g.Name
	}
}

// Renamable reports whether the group header stands for a real category.
func (g ItemGroup) Renamable() bool {
	return g.Kind == GroupCategory
}

// GroupItems partitions items into per-category groups of items not yet in
// the cart, in order of first appearance, followed by a single in-cart group
// when any item is in the cart. Items without a category land in the
// no-category bucket.
func GroupItems(items []Item) []ItemGroup {
	var groups []ItemGroup
	index := make(map[string]int)
	var inCart []Item

	for _, it := range items {
		if it.InCart {
			inCart = append(inCart, it)
			continue
		}

		g := ItemGroup{Kind: GroupCategory, Name: it.CategoryName()}
		if it.Category == nil {
			g = ItemGroup{Kind: GroupNoCategory, Name: NoCategoryLabel}
		}

		if i, ok := index[g.Key()]; ok {
			groups[i].Items = append(groups[i].Items, it)
			continue
		}
		g.Items = []Item{it}
		index[g.Key()] = len(groups)
		groups = append(groups, g)
	}

	if len(inCart) > 0 {
		groups = append(groups, ItemGroup{Kind: GroupInCart, Name: InCartLabel, Items: inCart})
	}
	return groups
}

// InCartIDs returns the ids of all items currently in the cart, in input
// order.
func InCartIDs(items []Item) []int {
	var ids []int
	for _, it := range items {
		if it.InCart {
			ids = append(ids, it.ID)
		}
	}
	return ids
}

// ReplaceItem returns items with the entry sharing updated's id swapped for
// updated.
func ReplaceItem(items []Item, updated Item) []Item {
	out := make([]Item, len(items))
	for i, it := range items {
		if it.ID == updated.ID {
			it = updated
		}
		out[i] = it
	}
	return out
}

// RemoveItem returns items without the entry with the given id.
func RemoveItem(items []Item, id int) []Item {
	out := make([]Item, 0, len(items))
	for _, it := range items {
		if it.ID != id {
			out = append(out, it)
		}
	}
	return out
}
