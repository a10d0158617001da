package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/lister-client/internal/adapters/http/dto"
	"github.com/jsamuelsen11/lister-client/internal/ports"
)

// CategoryHandler handles HTTP requests for categories and the search
// endpoints that feed suggestions.
type CategoryHandler struct {
	api ports.ListerAPI
}

// NewCategoryHandler creates a new CategoryHandler backed by api.
func NewCategoryHandler(api ports.ListerAPI) *CategoryHandler {
	return &CategoryHandler{api: api}
}

// GetCategories handles GET /categories.
func (h *CategoryHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	cats, err := h.api.GetCategories(r.Context())
	respond(w, r, http.StatusOK, dto.ToCategoriesResponse(cats), err)
}

// GetCategory handles GET /categories/{id}.
func (h *CategoryHandler) GetCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	c, err := h.api.GetCategory(r.Context(), id)
	respond(w, r, http.StatusOK, dto.ToCategoryResponse(c), err)
}

// CreateCategory handles POST /categories.
func (h *CategoryHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req dto.NameRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	c, err := h.api.CreateCategory(r.Context(), req.Name)
	respond(w, r, http.StatusCreated, dto.ToCategoryResponse(c), err)
}

// UpdateCategory handles PUT /categories/{id}. Items tagged with the old
// name are renamed too.
func (h *CategoryHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req dto.NameRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	c, err := h.api.UpdateCategory(r.Context(), id, req.Name)
	respond(w, r, http.StatusOK, dto.ToCategoryResponse(c), err)
}

// DeleteCategory handles DELETE /categories/{id}.
func (h *CategoryHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.api.DeleteCategory(r.Context(), id); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// SearchItems handles GET /search.
func (h *CategoryHandler) SearchItems(w http.ResponseWriter, r *http.Request) {
	names, err := h.api.SearchItems(r.Context())
	if names == nil {
		names = []string{}
	}
	respond(w, r, http.StatusOK, names, err)
}

// GetCategoryMappings handles GET /search/category-mappings.
func (h *CategoryHandler) GetCategoryMappings(w http.ResponseWriter, r *http.Request) {
	mappings, err := h.api.GetCategoryMappings(r.Context())
	if mappings == nil {
		mappings = map[string]*string{}
	}
	respond(w, r, http.StatusOK, mappings, err)
}
