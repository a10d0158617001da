package shopping

import (
	"fmt"
	"strings"

	"github.com/jsamuelsen11/lister-client/internal/domain"
)

// Item is a purchasable entry belonging to exactly one list. Category is a
// denormalized category name, not a reference to a Category id.
type Item struct {
	ID         int
	Name       string
	Amount     *float64
	AmountUnit *string
	InCart     bool
	ListID     int
	Category   *string
}

// CategoryName returns the item's category or "" when uncategorized.
func (it Item) CategoryName() string {
	if it.Category == nil {
		return ""
	}
	return *it.Category
}

// ItemDraft carries the user-editable fields of an item for create and
// update calls. Nil pointers are sent as explicit JSON nulls.
type ItemDraft struct {
	Name       string
	Amount     *float64
	AmountUnit *string
	Category   *string
}

// Validate checks business rules for the draft.
func (d *ItemDraft) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(d.Name) == "" {
		fields["name"] = domain.MsgRequired
	}
	if d.Amount != nil && *d.Amount < 0 {
		fields["amount"] = fmt.Sprintf("must not be negative, got %g", *d.Amount)
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// Normalize trims the draft and turns blank optional strings into nil.
func (d ItemDraft) Normalize() ItemDraft {
	d.Name = strings.TrimSpace(d.Name)
	d.AmountUnit = blankToNil(d.AmountUnit)
	d.Category = blankToNil(d.Category)
	return d
}

func blankToNil(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
