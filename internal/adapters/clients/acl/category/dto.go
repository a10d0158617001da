// Package category implements the Anti-Corruption Layer translators for the
// Lister API's category resources and the search endpoints.
package category

// CategoryDTO matches the server's Category schema.
type CategoryDTO struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// NameRequestDTO is the body of both create and rename requests.
type NameRequestDTO struct {
	Name string `json:"name"`
}

// MappingsDTO is the search/category-mappings payload: item name to
// category name, null when unknown.
type MappingsDTO map[string]*string
