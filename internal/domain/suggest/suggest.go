// Package suggest ranks and filters autocomplete candidates for item and
// category names.
package suggest

import (
	"slices"
	"strings"

	"github.com/jsamuelsen11/lister-client/internal/domain/shopping"
)

// Policy decides how a suggestion count of zero is interpreted.
type Policy int

const (
	// ZeroUnlimited treats a count of 0 as "no limit".
	ZeroUnlimited Policy = iota
	// ZeroMeansZero truncates to exactly count entries, so 0 yields none.
	ZeroMeansZero
)

// PolicyFor maps the suggestions.zero_means_unlimited config flag to a
// Policy.
func PolicyFor(zeroMeansUnlimited bool) Policy {
	if zeroMeansUnlimited {
		return ZeroUnlimited
	}
	return ZeroMeansZero
}

// RankCategories orders names by how many items carry each name as their
// category, most frequent first. Names with equal counts keep their input
// order.
func RankCategories(items []shopping.Item, names []string) []string {
	freq := make(map[string]int)
	for _, it := range items {
		if it.Category != nil {
			freq[*it.Category]++
		}
	}

	ranked := slices.Clone(names)
	slices.SortStableFunc(ranked, func(a, b string) int {
		return freq[b] - freq[a]
	})
	return ranked
}

// Filter narrows a suggestion pool to the entries matching user input.
type Filter struct {
	Count  int
	Policy Policy
}

// Items returns pool entries containing input, ignoring case. Blank input
// yields no suggestions.
func (f Filter) Items(input string, pool []string) []string {
	if strings.TrimSpace(input) == "" {
		return nil
	}
	return f.limit(matching(input, pool))
}

// Categories returns pool entries containing input, ignoring case. Blank
// input yields the whole pool.
func (f Filter) Categories(input string, pool []string) []string {
	if strings.TrimSpace(input) == "" {
		return f.limit(slices.Clone(pool))
	}
	return f.limit(matching(input, pool))
}

func (f Filter) limit(s []string) []string {
	if f.Count == 0 && f.Policy == ZeroUnlimited {
		return s
	}
	n := max(f.Count, 0)
	if len(s) > n {
		return s[:n]
	}
	return s
}

func matching(input string, pool []string) []string {
	needle := strings.ToLower(input)
	var out []string
	for _, s := range pool {
		if strings.Contains(strings.ToLower(s), needle) {
			out = append(out, s)
		}
	}
	return out
}

// CategoryFor returns the category the server associates with itemName.
// ok is false when there is no mapping or the mapping is null.
func CategoryFor(mappings map[string]*string, itemName string) (string, bool) {
	c, found := mappings[itemName]
	if !found || c == nil {
		return "", false
	}
	return *c, true
}
