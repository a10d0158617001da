// Package list implements the Anti-Corruption Layer translators for the
// Lister API's shopping-list resources.
package list

// ListDTO matches the server's ShoppingList schema.
type ListDTO struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// ListWithCountDTO matches the element schema of GET lists. Count is null
// when the server did not compute it.
type ListWithCountDTO struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Count *int   `json:"count"`
}

// NameRequestDTO is the body of both create and rename requests.
type NameRequestDTO struct {
	Name string `json:"name"`
}
