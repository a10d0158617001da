// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the fake Lister server.
//
// Field names follow the Lister REST API: camelCase, with optional item
// fields always present and null when unset.
package dto

import "github.com/jsamuelsen11/lister-client/internal/domain/shopping"

// ListResponse represents a single list in HTTP responses.
type ListResponse struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// ListWithCountResponse is a list plus the number of items it holds.
type ListWithCountResponse struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Count *int   `json:"count"`
}

// ItemResponse represents a single item in HTTP responses.
type ItemResponse struct {
	ID         int      `json:"id"`
	Name       string   `json:"name"`
	Amount     *float64 `json:"amount"`
	AmountUnit *string  `json:"amountUnit"`
	InCart     bool     `json:"inCart"`
	List       int      `json:"list"`
	Category   *string  `json:"category"`
}

// CategoryResponse represents a single category in HTTP responses.
type CategoryResponse struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// ToListResponse converts a domain List to an HTTP response DTO.
func ToListResponse(l shopping.List) ListResponse {
	return ListResponse{ID: l.ID, Name: l.Name}
}

// ToListsWithCountResponse converts the list overview to its HTTP form.
// An empty input yields an empty JSON array, never null.
func ToListsWithCountResponse(lists []shopping.ListWithCount) []ListWithCountResponse {
	out := make([]ListWithCountResponse, len(lists))
	for i, l := range lists {
		out[i] = ListWithCountResponse{ID: l.ID, Name: l.Name, Count: l.Count}
	}
	return out
}

// ToItemResponse converts a domain Item to an HTTP response DTO.
func ToItemResponse(it shopping.Item) ItemResponse {
	return ItemResponse{
		ID:         it.ID,
		Name:       it.Name,
		Amount:     it.Amount,
		AmountUnit: it.AmountUnit,
		InCart:     it.InCart,
		List:       it.ListID,
		Category:   it.Category,
	}
}

// ToItemsResponse converts domain Items to HTTP response DTOs.
func ToItemsResponse(items []shopping.Item) []ItemResponse {
	out := make([]ItemResponse, len(items))
	for i, it := range items {
		out[i] = ToItemResponse(it)
	}
	return out
}

// ToCategoryResponse converts a domain Category to an HTTP response DTO.
func ToCategoryResponse(c shopping.Category) CategoryResponse {
	return CategoryResponse{ID: c.ID, Name: c.Name}
}

// ToCategoriesResponse converts domain Categories to HTTP response DTOs.
func ToCategoriesResponse(categories []shopping.Category) []CategoryResponse {
	out := make([]CategoryResponse, len(categories))
	for i, c := range categories {
		out[i] = ToCategoryResponse(c)
	}
	return out
}
