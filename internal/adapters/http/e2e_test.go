package http_test

import (
	"context"
	"errors"
	"net/http/httptest"
	"slices"
	"testing"
	"time"

	"github.com/jsamuelsen11/lister-client/internal/adapters/clients/acl"
	adapthttp "github.com/jsamuelsen11/lister-client/internal/adapters/http"
	"github.com/jsamuelsen11/lister-client/internal/adapters/memstore"
	"github.com/jsamuelsen11/lister-client/internal/adapters/prefs"
	"github.com/jsamuelsen11/lister-client/internal/app"
	"github.com/jsamuelsen11/lister-client/internal/domain"
	"github.com/jsamuelsen11/lister-client/internal/domain/shopping"
	"github.com/jsamuelsen11/lister-client/internal/platform/config"
	"github.com/jsamuelsen11/lister-client/internal/platform/health"
	"github.com/jsamuelsen11/lister-client/internal/platform/httpclient"
)

const serverToken = "e2e-token"

func strPtr(s string) *string { return &s }

// newEndToEnd starts the fake server over a fresh store and returns a
// repository talking to it through the real REST client, plus the
// preference store holding its endpoint.
func newEndToEnd(t *testing.T) (*app.Repository, *prefs.Store) {
	t.Helper()
	ctx := context.Background()

	store := memstore.New()
	registry := health.New()
	registry.Register(store)
	ts := httptest.NewServer(adapthttp.NewHandler(store, registry, serverToken, discardLogger(), nil))
	t.Cleanup(ts.Close)

	p, err := prefs.New(ctx, prefs.NewMemory(), discardLogger(), nil)
	if err != nil {
		t.Fatalf("prefs.New() error = %v", err)
	}
	if err := p.SetBaseURL(ctx, ts.URL); err != nil {
		t.Fatalf("SetBaseURL() error = %v", err)
	}
	if err := p.SetBearerToken(ctx, strPtr(serverToken)); err != nil {
		t.Fatalf("SetBearerToken() error = %v", err)
	}

	cfg := &config.ClientConfig{
		Timeout: 5 * time.Second,
		Retry: config.RetryConfig{
			MaxAttempts:     1,
			InitialInterval: 10 * time.Millisecond,
			MaxInterval:     10 * time.Millisecond,
			Multiplier:      1,
		},
		CircuitBreaker: config.CircuitBreakerConfig{
			MaxFailures:   50,
			Timeout:       time.Second,
			HalfOpenLimit: 1,
		},
	}
	cache := httpclient.NewCache(cfg, "lister-api", nil, discardLogger())
	return app.NewRepository(p, acl.NewConnector(cache, discardLogger()), discardLogger()), p
}

func TestEndToEnd_ShoppingRound(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo, _ := newEndToEnd(t)

	list, err := repo.CreateList(ctx, "Groceries")
	if err != nil {
		t.Fatalf("CreateList() error = %v", err)
	}

	amount := 2.0
	milk, err := repo.CreateItem(ctx, list.ID, shopping.ItemDraft{Name: "Milk", Amount: &amount, AmountUnit: strPtr("l"), Category: strPtr("Dairy")})
	if err != nil {
		t.Fatalf("CreateItem(Milk) error = %v", err)
	}
	salt, err := repo.CreateItem(ctx, list.ID, shopping.ItemDraft{Name: "Salt"})
	if err != nil {
		t.Fatalf("CreateItem(Salt) error = %v", err)
	}
	if salt.Category != nil || salt.Amount != nil {
		t.Errorf("Salt = %+v, want null optionals", salt)
	}

	lists, err := repo.GetLists(ctx)
	if err != nil {
		t.Fatalf("GetLists() error = %v", err)
	}
	if len(lists) != 1 || lists[0].Count == nil || *lists[0].Count != 2 {
		t.Fatalf("GetLists() = %+v, want one list with count 2", lists)
	}

	if _, err := repo.ToggleItemCart(ctx, milk.ID); err != nil {
		t.Fatalf("ToggleItemCart() error = %v", err)
	}
	items, _ := repo.GetItems(ctx, list.ID)
	if n, err := repo.DeleteItems(ctx, shopping.InCartIDs(items)); n != 1 || err != nil {
		t.Fatalf("DeleteItems() = %d, %v, want 1, nil", n, err)
	}

	items, _ = repo.GetItems(ctx, list.ID)
	if len(items) != 1 || items[0].Name != "Salt" {
		t.Errorf("items after clearing cart = %+v, want only Salt", items)
	}

	names, err := repo.SearchItems(ctx)
	if err != nil || !slices.Equal(names, []string{"Milk", "Salt"}) {
		t.Errorf("SearchItems() = %v, %v", names, err)
	}
	mappings, err := repo.GetCategoryMappings(ctx)
	if err != nil {
		t.Fatalf("GetCategoryMappings() error = %v", err)
	}
	if c := mappings["Milk"]; c == nil || *c != "Dairy" {
		t.Errorf("mapping[Milk] = %v, want Dairy", c)
	}
	if c, ok := mappings["Salt"]; !ok || c != nil {
		t.Errorf("mapping[Salt] = %v, %v, want known without category", c, ok)
	}
}

func TestEndToEnd_CategoryRules(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo, _ := newEndToEnd(t)

	list, _ := repo.CreateList(ctx, "Party")
	chips, err := repo.CreateItem(ctx, list.ID, shopping.ItemDraft{Name: "Chips", Category: strPtr("Snacks")})
	if err != nil {
		t.Fatalf("CreateItem() error = %v", err)
	}

	cats, err := repo.GetCategories(ctx)
	if err != nil || len(cats) != 1 {
		t.Fatalf("GetCategories() = %v, %v, want the auto-created category", cats, err)
	}
	snacks := cats[0]

	if err := repo.DeleteCategory(ctx, snacks.ID); !errors.Is(err, domain.ErrConflict) {
		t.Errorf("DeleteCategory(in use) error = %v, want ErrConflict", err)
	}

	if _, err := repo.UpdateCategory(ctx, snacks.ID, "Treats"); err != nil {
		t.Fatalf("UpdateCategory() error = %v", err)
	}
	got, _ := repo.GetItem(ctx, chips.ID)
	if got.CategoryName() != "Treats" {
		t.Errorf("item category = %q, want renamed", got.CategoryName())
	}

	extra, _ := repo.CreateCategory(ctx, "Drinks")
	n, err := repo.DeleteCategories(ctx, []int{extra.ID, snacks.ID})
	if n != 1 || !errors.Is(err, domain.ErrConflict) {
		t.Errorf("DeleteCategories() = %d, %v, want 1 deleted then ErrConflict", n, err)
	}
}

func TestEndToEnd_ErrorsAndCredentials(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo, p := newEndToEnd(t)

	_, err := repo.GetList(ctx, 404)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("GetList(missing) error = %v, want ErrNotFound", err)
	}
	var serr *acl.StatusError
	if !errors.As(err, &serr) || err.Error() != "API Error: 404 - Not Found" {
		t.Errorf("error = %q, want status message", err)
	}

	if err := p.SetBearerToken(ctx, strPtr("wrong")); err != nil {
		t.Fatalf("SetBearerToken() error = %v", err)
	}
	if _, err := repo.GetLists(ctx); !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("GetLists(wrong token) error = %v, want ErrForbidden", err)
	}

	if err := p.SetBearerToken(ctx, strPtr(serverToken)); err != nil {
		t.Fatalf("SetBearerToken() error = %v", err)
	}
	if _, err := repo.GetLists(ctx); err != nil {
		t.Errorf("GetLists(restored token) error = %v", err)
	}
}
