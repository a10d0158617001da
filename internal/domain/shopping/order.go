package shopping

import (
	"cmp"
	"math"
	"slices"
)

// SortLists orders lists by their rank in order, ascending. Lists without a
// rank sort after all ranked lists; ties break on id. The input is not
// modified.
func SortLists(lists []ListWithCount, order map[int]int) []ListWithCount {
	rank := func(id int) int {
		if r, ok := order[id]; ok {
			return r
		}
		return math.MaxInt
	}

	out := slices.Clone(lists)
	slices.SortStableFunc(out, func(a, b ListWithCount) int {
		if c := cmp.Compare(rank(a.ID), rank(b.ID)); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	return out
}

// VisibleLists drops hidden lists from the default view. In reorder mode
// every list is shown so hidden ones can be rearranged and unhidden.
func VisibleLists(lists []ListWithCount, hidden map[int]struct{}, reorderMode bool) []ListWithCount {
	if reorderMode {
		return slices.Clone(lists)
	}
	out := make([]ListWithCount, 0, len(lists))
	for _, l := range lists {
		if _, ok := hidden[l.ID]; !ok {
			out = append(out, l)
		}
	}
	return out
}

// OrderFromArrangement converts a user arrangement into the persisted rank
// map: each list's rank is its position.
func OrderFromArrangement(lists []ListWithCount) map[int]int {
	order := make(map[int]int, len(lists))
	for i, l := range lists {
		order[l.ID] = i
	}
	return order
}
