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

func newItemHandler(t *testing.T) (*handlers.ItemHandler, *mocks.MockListerAPI) {
	t.Helper()
	api := mocks.NewMockListerAPI(t)
	return handlers.NewItemHandler(api), api
}

func TestGetItems_Success(t *testing.T) {
	t.Parallel()
	h, api := newItemHandler(t)

	api.EXPECT().GetItems(mock.Anything, 1).Return([]shopping.Item{validItem()}, nil)

	rec := httptest.NewRecorder()
	req := withID(httptest.NewRequest(http.MethodGet, "/lists/1/items", nil), "1")
	h.GetItems(rec, req)

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[[]dto.ItemResponse](t, rec)
	if len(resp) != 1 || resp[0].List != 1 || *resp[0].Category != "Dairy" {
		t.Errorf("response = %+v", resp)
	}
}

func TestCreateItem_SendsNormalizedDraft(t *testing.T) {
	t.Parallel()
	h, api := newItemHandler(t)

	api.EXPECT().
		CreateItem(mock.Anything, 1, mock.MatchedBy(func(d shopping.ItemDraft) bool {
			return d.Name == "Milk" && d.AmountUnit == nil && d.Category != nil && *d.Category == "Dairy"
		})).
		Return(validItem(), nil)

	body := strings.NewReader(`{"name":" Milk ","amount":null,"amountUnit":" ","category":"Dairy"}`)
	rec := httptest.NewRecorder()
	req := withID(httptest.NewRequest(http.MethodPost, "/lists/1/items", body), "1")
	h.CreateItem(rec, req)

	requireStatus(t, rec, http.StatusCreated)
}

func TestCreateItem_ValidationFailure(t *testing.T) {
	t.Parallel()
	h, _ := newItemHandler(t)

	rec := httptest.NewRecorder()
	req := withID(httptest.NewRequest(http.MethodPost, "/lists/1/items", strings.NewReader(`{"amount":-1}`)), "1")
	h.CreateItem(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
	resp := decodeJSON[dto.ErrorResponse](t, rec)
	if len(resp.Errors) != 2 {
		t.Errorf("errors = %+v, want amount and name", resp.Errors)
	}
}

func TestUpdateItem_NotFound(t *testing.T) {
	t.Parallel()
	h, api := newItemHandler(t)

	api.EXPECT().UpdateItem(mock.Anything, 42, mock.Anything).Return(shopping.Item{}, domain.ErrNotFound)

	rec := httptest.NewRecorder()
	req := withID(httptest.NewRequest(http.MethodPut, "/items/42", jsonBody(t, dto.ItemRequest{Name: "Milk"})), "42")
	h.UpdateItem(rec, req)

	requireStatus(t, rec, http.StatusNotFound)
}

func TestGetItem_Success(t *testing.T) {
	t.Parallel()
	h, api := newItemHandler(t)

	api.EXPECT().GetItem(mock.Anything, 5).Return(validItem(), nil)

	rec := httptest.NewRecorder()
	req := withID(httptest.NewRequest(http.MethodGet, "/items/5", nil), "5")
	h.GetItem(rec, req)

	requireStatus(t, rec, http.StatusOK)
	if resp := decodeJSON[dto.ItemResponse](t, rec); resp.Name != "Milk" {
		t.Errorf("Name = %q, want Milk", resp.Name)
	}
}

func TestToggleItemCart_Success(t *testing.T) {
	t.Parallel()
	h, api := newItemHandler(t)

	toggled := validItem()
	toggled.InCart = true
	api.EXPECT().ToggleItemCart(mock.Anything, 5).Return(toggled, nil)

	rec := httptest.NewRecorder()
	req := withID(httptest.NewRequest(http.MethodPatch, "/items/5/toggle", nil), "5")
	h.ToggleItemCart(rec, req)

	requireStatus(t, rec, http.StatusOK)
	if resp := decodeJSON[dto.ItemResponse](t, rec); !resp.InCart {
		t.Error("InCart = false, want true")
	}
}

func TestDeleteItem_Success(t *testing.T) {
	t.Parallel()
	h, api := newItemHandler(t)

	api.EXPECT().DeleteItem(mock.Anything, 5).Return(nil)

	rec := httptest.NewRecorder()
	req := withID(httptest.NewRequest(http.MethodDelete, "/items/5", nil), "5")
	h.DeleteItem(rec, req)

	requireStatus(t, rec, http.StatusNoContent)
	if rec.Body.Len() != 0 {
		t.Errorf("body = %q, want empty", rec.Body.String())
	}
}
