// Package item implements the Anti-Corruption Layer translators for the
// Lister API's item resources.
package item

// ItemDTO matches the server's Item schema. List is the owning list id.
type ItemDTO struct {
	ID         int      `json:"id"`
	Name       string   `json:"name"`
	Amount     *float64 `json:"amount"`
	AmountUnit *string  `json:"amountUnit"`
	InCart     bool     `json:"inCart"`
	List       int      `json:"list"`
	Category   *string  `json:"category"`
}

// RequestDTO is the body of create and update item requests. Optional
// fields are serialized as explicit nulls, never omitted.
type RequestDTO struct {
	Name       string   `json:"name"`
	Amount     *float64 `json:"amount"`
	AmountUnit *string  `json:"amountUnit"`
	Category   *string  `json:"category"`
}
