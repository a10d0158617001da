package category

import "github.com/jsamuelsen11/lister-client/internal/domain/shopping"

// ToDomainCategory converts a CategoryDTO to a domain Category.
func ToDomainCategory(dto CategoryDTO) shopping.Category {
	return shopping.Category{ID: dto.ID, Name: dto.Name}
}

// ToDomainCategories converts a slice of CategoryDTOs. A nil payload maps
// to an empty, non-nil slice.
func ToDomainCategories(dtos []CategoryDTO) []shopping.Category {
	out := make([]shopping.Category, len(dtos))
	for i, d := range dtos {
		out[i] = ToDomainCategory(d)
	}
	return out
}

// ToMappings copies the mapping payload so callers never share the decoded
// map. A nil payload maps to an empty map.
func ToMappings(dto MappingsDTO) map[string]*string {
	out := make(map[string]*string, len(dto))
	for k, v := range dto {
		out[k] = v
	}
	return out
}

// ToNameRequest builds the create/rename body.
func ToNameRequest(name string) NameRequestDTO {
	return NameRequestDTO{Name: name}
}
