package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/lister-client/internal/adapters/http/dto"
	"github.com/jsamuelsen11/lister-client/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/lister-client/internal/domain"
	"github.com/jsamuelsen11/lister-client/internal/domain/shopping"
	"github.com/jsamuelsen11/lister-client/mocks"
)

func newCategoryHandler(t *testing.T) (*handlers.CategoryHandler, *mocks.MockListerAPI) {
	t.Helper()
	api := mocks.NewMockListerAPI(t)
	return handlers.NewCategoryHandler(api), api
}

func TestGetCategories_Success(t *testing.T) {
	t.Parallel()
	h, api := newCategoryHandler(t)

	api.EXPECT().GetCategories(mock.Anything).Return([]shopping.Category{{ID: 1, Name: "Dairy"}}, nil)

	rec := httptest.NewRecorder()
	h.GetCategories(rec, httptest.NewRequest(http.MethodGet, "/categories", nil))

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[[]dto.CategoryResponse](t, rec)
	if len(resp) != 1 || resp[0].Name != "Dairy" {
		t.Errorf("response = %+v", resp)
	}
}

func TestCreateCategory_Conflict(t *testing.T) {
	t.Parallel()
	h, api := newCategoryHandler(t)

	api.EXPECT().CreateCategory(mock.Anything, "Dairy").Return(shopping.Category{}, domain.ErrConflict)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/categories", jsonBody(t, dto.NameRequest{Name: "Dairy"}))
	h.CreateCategory(rec, req)

	requireStatus(t, rec, http.StatusConflict)
}

func TestUpdateCategory_Success(t *testing.T) {
	t.Parallel()
	h, api := newCategoryHandler(t)

	api.EXPECT().UpdateCategory(mock.Anything, 1, "Milk products").Return(shopping.Category{ID: 1, Name: "Milk products"}, nil)

	rec := httptest.NewRecorder()
	req := withID(httptest.NewRequest(http.MethodPut, "/categories/1", strings.NewReader(`{"name":"Milk products"}`)), "1")
	h.UpdateCategory(rec, req)

	requireStatus(t, rec, http.StatusOK)
}

func TestGetCategory_BadID(t *testing.T) {
	t.Parallel()
	h, _ := newCategoryHandler(t)

	rec := httptest.NewRecorder()
	req := withID(httptest.NewRequest(http.MethodGet, "/categories/x", nil), "x")
	h.GetCategory(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
}

func TestDeleteCategory_InUse(t *testing.T) {
	t.Parallel()
	h, api := newCategoryHandler(t)

	api.EXPECT().DeleteCategory(mock.Anything, 1).Return(domain.ErrConflict)

	rec := httptest.NewRecorder()
	req := withID(httptest.NewRequest(http.MethodDelete, "/categories/1", nil), "1")
	h.DeleteCategory(rec, req)

	requireStatus(t, rec, http.StatusConflict)
}

func TestSearchItems_EmptyIsArray(t *testing.T) {
	t.Parallel()
	h, api := newCategoryHandler(t)

	api.EXPECT().SearchItems(mock.Anything).Return(nil, nil)

	rec := httptest.NewRecorder()
	h.SearchItems(rec, httptest.NewRequest(http.MethodGet, "/search", nil))

	requireStatus(t, rec, http.StatusOK)
	if got := strings.TrimSpace(rec.Body.String()); got != "[]" {
		t.Errorf("body = %s, want []", got)
	}
}

func TestGetCategoryMappings_KeepsNulls(t *testing.T) {
	t.Parallel()
	h, api := newCategoryHandler(t)

	api.EXPECT().GetCategoryMappings(mock.Anything).
		Return(map[string]*string{"Milk": strPtr("Dairy"), "Salt": nil}, nil)

	rec := httptest.NewRecorder()
	h.GetCategoryMappings(rec, httptest.NewRequest(http.MethodGet, "/search/category-mappings", nil))

	requireStatus(t, rec, http.StatusOK)
	if got := strings.TrimSpace(rec.Body.String()); got != `{"Milk":"Dairy","Salt":null}` {
		t.Errorf("body = %s", got)
	}
}
