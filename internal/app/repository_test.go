package app

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/lister-client/internal/adapters/clients/acl"
	"github.com/jsamuelsen11/lister-client/internal/adapters/prefs"
	"github.com/jsamuelsen11/lister-client/internal/domain"
	"github.com/jsamuelsen11/lister-client/internal/domain/shopping"
	"github.com/jsamuelsen11/lister-client/internal/platform/config"
	"github.com/jsamuelsen11/lister-client/internal/platform/httpclient"
	"github.com/jsamuelsen11/lister-client/mocks"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func strPtr(s string) *string { return &s }

// newPrefs returns a memory-backed preference store with the endpoint set.
func newPrefs(t *testing.T, baseURL string, token *string) *prefs.Store {
	t.Helper()

	ctx := context.Background()
	s, err := prefs.New(ctx, prefs.NewMemory(), discardLogger(), nil)
	if err != nil {
		t.Fatalf("prefs.New() error = %v", err)
	}
	if err := s.SetBaseURL(ctx, baseURL); err != nil {
		t.Fatalf("SetBaseURL() error = %v", err)
	}
	if err := s.SetBearerToken(ctx, token); err != nil {
		t.Fatalf("SetBearerToken() error = %v", err)
	}
	return s
}

// newMockedRepository wires a Repository to a mock API behind a mock
// connector that expects the given endpoint on every call.
func newMockedRepository(t *testing.T) (*Repository, *mocks.MockListerAPI) {
	t.Helper()

	api := mocks.NewMockListerAPI(t)
	conn := mocks.NewMockListerConnector(t)
	conn.EXPECT().Client("http://lister.test/", mock.Anything).Return(api).Maybe()

	return NewRepository(newPrefs(t, "http://lister.test", nil), conn, discardLogger()), api
}

// --- NewRepository ---

func TestNewRepository_NilLogger(t *testing.T) {
	t.Parallel()

	repo := NewRepository(newPrefs(t, "", nil), mocks.NewMockListerConnector(t), nil)
	if repo.logger == nil {
		t.Fatal("NewRepository(nil logger) should create a no-op logger, got nil")
	}
}

// --- Endpoint resolution ---

func TestRepository_NotConfigured(t *testing.T) {
	t.Parallel()

	for _, base := range []string{"", "   "} {
		t.Run("base "+strings.TrimSpace(base), func(t *testing.T) {
			t.Parallel()

			// No expectations: any connector call fails the test.
			conn := mocks.NewMockListerConnector(t)
			repo := NewRepository(newPrefs(t, base, nil), conn, discardLogger())

			_, err := repo.GetLists(context.Background())
			if !errors.Is(err, domain.ErrNotConfigured) {
				t.Errorf("GetLists() error = %v, want ErrNotConfigured", err)
			}
			if err := repo.DeleteList(context.Background(), 1); !errors.Is(err, domain.ErrNotConfigured) {
				t.Errorf("DeleteList() error = %v, want ErrNotConfigured", err)
			}
		})
	}
}

func TestRepository_PassesEndpointToConnector(t *testing.T) {
	t.Parallel()

	api := mocks.NewMockListerAPI(t)
	conn := mocks.NewMockListerConnector(t)
	conn.EXPECT().
		Client("https://shop.example/", mock.MatchedBy(func(tok *string) bool { return tok != nil && *tok == "s3cret" })).
		Return(api).
		Once()
	api.EXPECT().SearchItems(mock.Anything).Return([]string{"Milk"}, nil).Once()

	repo := NewRepository(newPrefs(t, "https://shop.example", strPtr("s3cret")), conn, discardLogger())

	got, err := repo.SearchItems(context.Background())
	if err != nil {
		t.Fatalf("SearchItems() error = %v", err)
	}
	if len(got) != 1 || got[0] != "Milk" {
		t.Errorf("SearchItems() = %v, want [Milk]", got)
	}
}

// --- Result mapping ---

func TestRepository_PropagatesClientError(t *testing.T) {
	t.Parallel()

	repo, api := newMockedRepository(t)
	apiErr := &acl.StatusError{Code: 404, Status: "Not Found", Err: domain.ErrNotFound}
	api.EXPECT().GetList(mock.Anything, 9).Return(shopping.List{}, apiErr)

	_, err := repo.GetList(context.Background(), 9)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("GetList() error = %v, want ErrNotFound", err)
	}
	if err.Error() != "API Error: 404 - Not Found" {
		t.Errorf("message = %q, want %q", err.Error(), "API Error: 404 - Not Found")
	}
}

func TestRepository_RecoversPanic(t *testing.T) {
	t.Parallel()

	repo, api := newMockedRepository(t)
	api.EXPECT().GetLists(mock.Anything).RunAndReturn(func(context.Context) ([]shopping.ListWithCount, error) {
		panic("boom")
	})

	got, err := repo.GetLists(context.Background())
	if err == nil {
		t.Fatal("GetLists() error = nil, want recovered panic")
	}
	if !strings.Contains(err.Error(), "boom") {
		t.Errorf("error = %q, want panic value in message", err.Error())
	}
	if got != nil {
		t.Errorf("GetLists() = %v, want nil on failure", got)
	}
}

// --- Client-side validation ---

func TestRepository_RejectsBlankNames(t *testing.T) {
	t.Parallel()

	repo, _ := newMockedRepository(t)
	ctx := context.Background()

	calls := map[string]func() error{
		"CreateList": func() error { _, err := repo.CreateList(ctx, " "); return err },
		"UpdateList": func() error { _, err := repo.UpdateList(ctx, 1, ""); return err },
		"CreateCategory": func() error {
			_, err := repo.CreateCategory(ctx, "\t")
			return err
		},
		"UpdateCategory": func() error { _, err := repo.UpdateCategory(ctx, 1, ""); return err },
		"CreateItem": func() error {
			_, err := repo.CreateItem(ctx, 1, shopping.ItemDraft{Name: "  "})
			return err
		},
	}

	for name, fn := range calls {
		if err := fn(); !errors.Is(err, domain.ErrValidation) {
			t.Errorf("%s() error = %v, want ErrValidation", name, err)
		}
	}
}

func TestRepository_CreateItemNormalizesDraft(t *testing.T) {
	t.Parallel()

	repo, api := newMockedRepository(t)
	api.EXPECT().
		CreateItem(mock.Anything, 3, mock.MatchedBy(func(d shopping.ItemDraft) bool {
			return d.Name == "Milk" && d.Category == nil && d.AmountUnit != nil && *d.AmountUnit == "l"
		})).
		Return(shopping.Item{ID: 1, Name: "Milk", ListID: 3}, nil)

	got, err := repo.CreateItem(context.Background(), 3, shopping.ItemDraft{
		Name:       "  Milk ",
		AmountUnit: strPtr(" l "),
		Category:   strPtr("   "),
	})
	if err != nil {
		t.Fatalf("CreateItem() error = %v", err)
	}
	if got.ID != 1 {
		t.Errorf("CreateItem().ID = %d, want 1", got.ID)
	}
}

// --- Bulk deletes ---

func TestRepository_DeleteItems(t *testing.T) {
	t.Parallel()

	t.Run("stops at first failure and keeps completed deletions", func(t *testing.T) {
		t.Parallel()

		repo, api := newMockedRepository(t)
		api.EXPECT().DeleteItem(mock.Anything, 1).Return(nil).Once()
		api.EXPECT().DeleteItem(mock.Anything, 2).Return(domain.ErrUnavailable).Once()

		n, err := repo.DeleteItems(context.Background(), []int{1, 2, 3})
		if !errors.Is(err, domain.ErrUnavailable) {
			t.Errorf("DeleteItems() error = %v, want ErrUnavailable", err)
		}
		if n != 1 {
			t.Errorf("DeleteItems() completed = %d, want 1", n)
		}
		api.AssertNotCalled(t, "DeleteItem", mock.Anything, 3)
	})

	t.Run("empty input", func(t *testing.T) {
		t.Parallel()

		repo, _ := newMockedRepository(t)
		n, err := repo.DeleteItems(context.Background(), nil)
		if err != nil || n != 0 {
			t.Errorf("DeleteItems(nil) = %d, %v, want 0, nil", n, err)
		}
	})
}

func TestRepository_DeleteCategories(t *testing.T) {
	t.Parallel()

	repo, api := newMockedRepository(t)
	for _, id := range []int{4, 5, 6} {
		api.EXPECT().DeleteCategory(mock.Anything, id).Return(nil).Once()
	}

	n, err := repo.DeleteCategories(context.Background(), []int{4, 5, 6})
	if err != nil {
		t.Fatalf("DeleteCategories() error = %v", err)
	}
	if n != 3 {
		t.Errorf("DeleteCategories() completed = %d, want 3", n)
	}
}

// --- End to end through the REST adapter ---

func newWiredRepository(t *testing.T, baseURL string) (*Repository, *prefs.Store, *httpclient.Cache) {
	t.Helper()

	cfg := &config.ClientConfig{
		Timeout: 2 * time.Second,
		Retry:   config.RetryConfig{MaxAttempts: 1, InitialInterval: time.Millisecond, MaxInterval: time.Millisecond, Multiplier: 1},
		CircuitBreaker: config.CircuitBreakerConfig{
			MaxFailures:   0,
			Timeout:       time.Second,
			HalfOpenLimit: 1,
		},
	}
	cache := httpclient.NewCache(cfg, "lister-api", nil, discardLogger())
	store := newPrefs(t, baseURL, nil)
	return NewRepository(store, acl.NewConnector(cache, discardLogger()), discardLogger()), store, cache
}

func TestRepository_ResponseScenarios(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/lists/1":
			if r.Method == http.MethodDelete {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			w.Header().Set("Content-Type", "application/json")
			_, _ = io.WriteString(w, "null")
		default:
			http.NotFound(w, r)
		}
	}))
	defer ts.Close()

	repo, _, _ := newWiredRepository(t, ts.URL)
	ctx := context.Background()

	if err := repo.DeleteList(ctx, 1); err != nil {
		t.Errorf("DeleteList() with 204 error = %v, want nil", err)
	}

	_, err := repo.GetList(ctx, 1)
	if !errors.Is(err, domain.ErrEmptyBody) {
		t.Fatalf("GetList() with 200 null error = %v, want ErrEmptyBody", err)
	}
	if err.Error() != "API Error: Response body is null for 200" {
		t.Errorf("message = %q", err.Error())
	}
}

func TestRepository_EveryCallReachesFailingServer(t *testing.T) {
	t.Parallel()

	var hits atomic.Int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer ts.Close()

	repo, _, _ := newWiredRepository(t, ts.URL)
	ctx := context.Background()

	const calls = 8
	for i := range calls {
		_, err := repo.GetLists(ctx)
		if !errors.Is(err, domain.ErrUnavailable) {
			t.Fatalf("call %d: GetLists() error = %v, want ErrUnavailable", i+1, err)
		}
		if got := int(hits.Load()); got != i+1 {
			t.Fatalf("after call %d: server hits = %d, want %d", i+1, got, i+1)
		}
	}
}

func TestRepository_TransportFailure(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := ts.URL
	ts.Close()

	repo, _, _ := newWiredRepository(t, url)

	_, err := repo.GetCategories(context.Background())
	if !errors.Is(err, domain.ErrTransport) {
		t.Fatalf("GetCategories() error = %v, want ErrTransport", err)
	}
	if err.Error() == "" {
		t.Error("transport error has empty message")
	}
}

func TestRepository_EndpointChangeRebuildsClient(t *testing.T) {
	t.Parallel()

	var auth []string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = append(auth, r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, "{}")
	}))
	defer ts.Close()

	repo, store, cache := newWiredRepository(t, ts.URL)
	ctx := context.Background()

	for range 2 {
		if _, err := repo.GetCategoryMappings(ctx); err != nil {
			t.Fatalf("GetCategoryMappings() error = %v", err)
		}
	}
	if cache.Builds() != 1 {
		t.Errorf("Builds() = %d after identical calls, want 1", cache.Builds())
	}

	if err := store.SetBearerToken(ctx, strPtr("fresh")); err != nil {
		t.Fatalf("SetBearerToken() error = %v", err)
	}
	if _, err := repo.GetCategoryMappings(ctx); err != nil {
		t.Fatalf("GetCategoryMappings() error = %v", err)
	}

	if cache.Builds() != 2 {
		t.Errorf("Builds() = %d after token change, want 2", cache.Builds())
	}
	if got := auth[len(auth)-1]; got != "Bearer fresh" {
		t.Errorf("Authorization = %q, want %q", got, "Bearer fresh")
	}
	if auth[0] != "" {
		t.Errorf("first Authorization = %q, want none", auth[0])
	}
}
