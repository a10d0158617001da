package item

import "github.com/jsamuelsen11/lister-client/internal/domain/shopping"

// ToDomainItem converts an ItemDTO to a domain Item.
func ToDomainItem(dto ItemDTO) shopping.Item {
	return shopping.Item{
		ID:         dto.ID,
		Name:       dto.Name,
		Amount:     dto.Amount,
		AmountUnit: dto.AmountUnit,
		InCart:     dto.InCart,
		ListID:     dto.List,
		Category:   dto.Category,
	}
}

// ToDomainItems converts a slice of ItemDTOs. A nil payload maps to an
// empty, non-nil slice.
func ToDomainItems(dtos []ItemDTO) []shopping.Item {
	out := make([]shopping.Item, len(dtos))
	for i := range dtos {
		out[i] = ToDomainItem(dtos[i])
	}
	return out
}

// ToRequest converts a draft to the create/update body.
func ToRequest(d shopping.ItemDraft) RequestDTO {
	return RequestDTO{
		Name:       d.Name,
		Amount:     d.Amount,
		AmountUnit: d.AmountUnit,
		Category:   d.Category,
	}
}
