package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/lister-client/internal/adapters/http/dto"
	"github.com/jsamuelsen11/lister-client/internal/ports"
)

// ItemHandler handles HTTP requests for list items.
type ItemHandler struct {
	api ports.ListerAPI
}

// NewItemHandler creates a new ItemHandler backed by api.
func NewItemHandler(api ports.ListerAPI) *ItemHandler {
	return &ItemHandler{api: api}
}

// GetItems handles GET /lists/{id}/items.
func (h *ItemHandler) GetItems(w http.ResponseWriter, r *http.Request) {
	listID, ok := pathID(w, r)
	if !ok {
		return
	}

	items, err := h.api.GetItems(r.Context(), listID)
	respond(w, r, http.StatusOK, dto.ToItemsResponse(items), err)
}

// CreateItem handles POST /lists/{id}/items.
func (h *ItemHandler) CreateItem(w http.ResponseWriter, r *http.Request) {
	listID, ok := pathID(w, r)
	if !ok {
		return
	}
	var req dto.ItemRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	it, err := h.api.CreateItem(r.Context(), listID, req.Draft())
	respond(w, r, http.StatusCreated, dto.ToItemResponse(it), err)
}

// GetItem handles GET /items/{id}.
func (h *ItemHandler) GetItem(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	it, err := h.api.GetItem(r.Context(), id)
	respond(w, r, http.StatusOK, dto.ToItemResponse(it), err)
}

// UpdateItem handles PUT /items/{id}.
func (h *ItemHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req dto.ItemRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	it, err := h.api.UpdateItem(r.Context(), id, req.Draft())
	respond(w, r, http.StatusOK, dto.ToItemResponse(it), err)
}

// DeleteItem handles DELETE /items/{id}.
func (h *ItemHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.api.DeleteItem(r.Context(), id); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ToggleItemCart handles PATCH /items/{id}/toggle.
func (h *ItemHandler) ToggleItemCart(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	it, err := h.api.ToggleItemCart(r.Context(), id)
	respond(w, r, http.StatusOK, dto.ToItemResponse(it), err)
}
