package settings

import (
	"slices"
	"strconv"
	"strings"
)

// EncodeListOrder serializes order as "id:rank,id:rank" sorted by id.
func EncodeListOrder(order map[int]int) string {
	ids := sortedKeys(order)
	parts := make([]string, 0, len(ids))
	for _, id := range ids {
		parts = append(parts, strconv.Itoa(id)+":"+strconv.Itoa(order[id]))
	}
	return strings.Join(parts, ",")
}

// ParseListOrder decodes the EncodeListOrder format. Fragments that are not
// two integers separated by ":" are skipped.
func ParseListOrder(raw string) map[int]int {
	order := make(map[int]int)
	for frag := range strings.SplitSeq(raw, ",") {
		idStr, rankStr, ok := strings.Cut(strings.TrimSpace(frag), ":")
		if !ok {
			continue
		}
		id, err := strconv.Atoi(idStr)
		if err != nil {
			continue
		}
		rank, err := strconv.Atoi(rankStr)
		if err != nil {
			continue
		}
		order[id] = rank
	}
	return order
}

// EncodeHiddenLists serializes ids as a comma-joined ascending list.
func EncodeHiddenLists(hidden map[int]struct{}) string {
	ids := sortedKeys(hidden)
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}
	return strings.Join(parts, ",")
}

// ParseHiddenLists decodes the EncodeHiddenLists format, skipping
// non-integer fragments.
func ParseHiddenLists(raw string) map[int]struct{} {
	hidden := make(map[int]struct{})
	for frag := range strings.SplitSeq(raw, ",") {
		id, err := strconv.Atoi(strings.TrimSpace(frag))
		if err != nil {
			continue
		}
		hidden[id] = struct{}{}
	}
	return hidden
}

func sortedKeys[V any](m map[int]V) []int {
	ids := make([]int, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}
