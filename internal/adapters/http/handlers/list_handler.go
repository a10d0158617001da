// Package handlers provides the HTTP request handlers of the fake Lister
// server. Every handler delegates to a ports.ListerAPI, normally the
// in-memory store.
package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/lister-client/internal/adapters/http/dto"
	"github.com/jsamuelsen11/lister-client/internal/ports"
)

// ListHandler handles HTTP requests for shopping lists.
type ListHandler struct {
	api ports.ListerAPI
}

// NewListHandler creates a new ListHandler backed by api.
func NewListHandler(api ports.ListerAPI) *ListHandler {
	return &ListHandler{api: api}
}

// GetLists handles GET /lists.
func (h *ListHandler) GetLists(w http.ResponseWriter, r *http.Request) {
	lists, err := h.api.GetLists(r.Context())
	respond(w, r, http.StatusOK, dto.ToListsWithCountResponse(lists), err)
}

// GetList handles GET /lists/{id}.
func (h *ListHandler) GetList(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	l, err := h.api.GetList(r.Context(), id)
	respond(w, r, http.StatusOK, dto.ToListResponse(l), err)
}

// CreateList handles POST /lists.
func (h *ListHandler) CreateList(w http.ResponseWriter, r *http.Request) {
	var req dto.NameRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	l, err := h.api.CreateList(r.Context(), req.Name)
	respond(w, r, http.StatusCreated, dto.ToListResponse(l), err)
}

// UpdateList handles PUT /lists/{id}.
func (h *ListHandler) UpdateList(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req dto.NameRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	l, err := h.api.UpdateList(r.Context(), id, req.Name)
	respond(w, r, http.StatusOK, dto.ToListResponse(l), err)
}

// DeleteList handles DELETE /lists/{id}. The list's items go with it.
func (h *ListHandler) DeleteList(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.api.DeleteList(r.Context(), id); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
