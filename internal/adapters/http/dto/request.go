package dto

import (
	"fmt"
	"strings"

	"github.com/jsamuelsen11/lister-client/internal/domain"
	"github.com/jsamuelsen11/lister-client/internal/domain/shopping"
)

const msgRequired = "is required"

// NameRequest is the JSON body for creating or renaming a list or a
// category.
type NameRequest struct {
	Name string `json:"name"`
}

// Validate checks that the name is present.
// Returns a *domain.ValidationError if any checks fail.
func (r *NameRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return &domain.ValidationError{Fields: map[string]string{"name": msgRequired}}
	}
	return nil
}

// ItemRequest is the JSON body for creating an item or replacing all of its
// editable fields. Omitted and null optional fields both clear the value.
type ItemRequest struct {
	Name       string   `json:"name"`
	Amount     *float64 `json:"amount"`
	AmountUnit *string  `json:"amountUnit"`
	Category   *string  `json:"category"`
}

// Validate checks that required fields are present and optional fields have
// valid values. Returns a *domain.ValidationError if any checks fail.
func (r *ItemRequest) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(r.Name) == "" {
		fields["name"] = msgRequired
	}
	if r.Amount != nil && *r.Amount < 0 {
		fields["amount"] = fmt.Sprintf("must not be negative, got %g", *r.Amount)
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// Draft converts the request into a normalized item draft.
func (r *ItemRequest) Draft() shopping.ItemDraft {
	return shopping.ItemDraft{
		Name:       r.Name,
		Amount:     r.Amount,
		AmountUnit: r.AmountUnit,
		Category:   r.Category,
	}.Normalize()
}
