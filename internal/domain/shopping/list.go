// Package shopping holds the client-side representations of the remote
// shopping-list resources (lists, items, categories) and the pure functions
// that arrange them for display: list ordering, hidden-list filtering,
// item grouping and per-category counts.
package shopping

import (
	"strings"

	"github.com/jsamuelsen11/lister-client/internal/domain"
)

// List is a named shopping list as returned by the server.
type List struct {
	ID   int
	Name string
}

// ListWithCount is a List plus its item count. A nil Count means the server
// did not compute it.
type ListWithCount struct {
	ID    int
	Name  string
	Count *int
}

// ValidateName checks that a list or category name is usable before it is
// sent to the server.
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return &domain.ValidationError{Fields: map[string]string{"name": domain.MsgRequired}}
	}
	return nil
}
