package handlers_test

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/lister-client/internal/adapters/http/dto"
	"github.com/jsamuelsen11/lister-client/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/lister-client/internal/domain"
	"github.com/jsamuelsen11/lister-client/internal/domain/shopping"
	"github.com/jsamuelsen11/lister-client/mocks"
)

func newListHandler(t *testing.T) (*handlers.ListHandler, *mocks.MockListerAPI) {
	t.Helper()
	api := mocks.NewMockListerAPI(t)
	return handlers.NewListHandler(api), api
}

// --- GetLists ---

func TestGetLists_Success(t *testing.T) {
	t.Parallel()
	h, api := newListHandler(t)

	n := 3
	api.EXPECT().GetLists(mock.Anything).Return([]shopping.ListWithCount{{ID: 1, Name: "Groceries", Count: &n}}, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/lists", nil)
	h.GetLists(rec, req)

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[[]dto.ListWithCountResponse](t, rec)
	if len(resp) != 1 || resp[0].Count == nil || *resp[0].Count != 3 {
		t.Errorf("response = %+v, want one list with count 3", resp)
	}
}

func TestGetLists_StoreError(t *testing.T) {
	t.Parallel()
	h, api := newListHandler(t)

	api.EXPECT().GetLists(mock.Anything).Return(nil, domain.ErrUnavailable)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/lists", nil)
	h.GetLists(rec, req)

	requireStatus(t, rec, http.StatusServiceUnavailable)
}

// --- GetList ---

func TestGetList(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		id         string
		setup      func(api *mocks.MockListerAPI)
		wantStatus int
	}{
		{
			name: "found",
			id:   "1",
			setup: func(api *mocks.MockListerAPI) {
				api.EXPECT().GetList(mock.Anything, 1).Return(shopping.List{ID: 1, Name: "Groceries"}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "not found",
			id:   "9",
			setup: func(api *mocks.MockListerAPI) {
				api.EXPECT().GetList(mock.Anything, 9).Return(shopping.List{}, domain.ErrNotFound)
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "non-numeric id",
			id:         "abc",
			setup:      func(*mocks.MockListerAPI) {},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h, api := newListHandler(t)
			tt.setup(api)

			rec := httptest.NewRecorder()
			req := withID(httptest.NewRequest(http.MethodGet, "/lists/"+tt.id, nil), tt.id)
			h.GetList(rec, req)

			requireStatus(t, rec, tt.wantStatus)
		})
	}
}

// --- CreateList ---

func TestCreateList_Success(t *testing.T) {
	t.Parallel()
	h, api := newListHandler(t)

	api.EXPECT().CreateList(mock.Anything, "Groceries").Return(shopping.List{ID: 4, Name: "Groceries"}, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/lists", jsonBody(t, dto.NameRequest{Name: "Groceries"}))
	h.CreateList(rec, req)

	requireStatus(t, rec, http.StatusCreated)
	resp := decodeJSON[dto.ListResponse](t, rec)
	if resp.ID != 4 || resp.Name != "Groceries" {
		t.Errorf("response = %+v", resp)
	}
}

func TestCreateList_InvalidBody(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body *bytes.Buffer
	}{
		{name: "malformed JSON", body: bytes.NewBufferString("{")},
		{name: "blank name", body: bytes.NewBufferString(`{"name":"  "}`)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h, _ := newListHandler(t)

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/lists", tt.body)
			h.CreateList(rec, req)

			requireStatus(t, rec, http.StatusBadRequest)
			if ct := rec.Header().Get("Content-Type"); ct != "application/problem+json" {
				t.Errorf("Content-Type = %q, want problem+json", ct)
			}
		})
	}
}

// --- UpdateList / DeleteList ---

func TestUpdateList_Success(t *testing.T) {
	t.Parallel()
	h, api := newListHandler(t)

	api.EXPECT().UpdateList(mock.Anything, 2, "Food").Return(shopping.List{ID: 2, Name: "Food"}, nil)

	rec := httptest.NewRecorder()
	req := withID(httptest.NewRequest(http.MethodPut, "/lists/2", jsonBody(t, dto.NameRequest{Name: "Food"})), "2")
	h.UpdateList(rec, req)

	requireStatus(t, rec, http.StatusOK)
}

func TestDeleteList(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "deleted", wantStatus: http.StatusNoContent},
		{name: "missing", err: domain.ErrNotFound, wantStatus: http.StatusNotFound},
		{name: "store failure", err: errors.New("boom"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h, api := newListHandler(t)
			api.EXPECT().DeleteList(mock.Anything, 3).Return(tt.err)

			rec := httptest.NewRecorder()
			req := withID(httptest.NewRequest(http.MethodDelete, "/lists/3", nil), "3")
			h.DeleteList(rec, req)

			requireStatus(t, rec, tt.wantStatus)
		})
	}
}
