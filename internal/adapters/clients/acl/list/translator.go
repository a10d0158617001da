package list

import "github.com/jsamuelsen11/lister-client/internal/domain/shopping"

// ToDomainList converts a ListDTO to a domain List.
func ToDomainList(dto ListDTO) shopping.List {
	return shopping.List{ID: dto.ID, Name: dto.Name}
}

// ToDomainListsWithCount converts the GET lists payload. A nil payload maps
// to an empty, non-nil slice.
func ToDomainListsWithCount(dtos []ListWithCountDTO) []shopping.ListWithCount {
	out := make([]shopping.ListWithCount, len(dtos))
	for i, d := range dtos {
		out[i] = shopping.ListWithCount{ID: d.ID, Name: d.Name, Count: d.Count}
	}
	return out
}

// ToNameRequest builds the create/rename body.
func ToNameRequest(name string) NameRequestDTO {
	return NameRequestDTO{Name: name}
}
