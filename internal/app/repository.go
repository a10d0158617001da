// Package app provides the application layer: the Repository that mediates
// between screen state and the remote Lister service, plus the screen state
// holders in app/screen.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jsamuelsen11/lister-client/internal/domain"
	"github.com/jsamuelsen11/lister-client/internal/domain/shopping"
	"github.com/jsamuelsen11/lister-client/internal/ports"
)

// Compile-time check that Repository implements ports.Repository.
var _ ports.Repository = (*Repository)(nil)

// EndpointSource supplies the server endpoint for each call. ports.Preferences
// satisfies it.
type EndpointSource interface {
	BaseURL(ctx context.Context) (string, error)
	BearerToken(ctx context.Context) (*string, error)
}

// Repository implements ports.Repository. Each call reads the endpoint
// afresh, obtains a client from the connector and performs one remote call.
// Every failure, including a panic in the call path, comes back as an error.
type Repository struct {
	endpoints EndpointSource
	connector ports.ListerConnector
	logger    *slog.Logger
}

// NewRepository creates a Repository. A nil logger discards output.
func NewRepository(endpoints EndpointSource, connector ports.ListerConnector, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Repository{
		endpoints: endpoints,
		connector: connector,
		logger:    logger,
	}
}

// api resolves the client for the current endpoint.
func (r *Repository) api(ctx context.Context) (ports.ListerAPI, error) {
	baseURL, err := r.endpoints.BaseURL(ctx)
	if err != nil {
		return nil, fmt.Errorf("reading base URL: %w", err)
	}
	if strings.TrimSpace(baseURL) == "" {
		return nil, domain.ErrNotConfigured
	}
	token, err := r.endpoints.BearerToken(ctx)
	if err != nil {
		return nil, fmt.Errorf("reading bearer token: %w", err)
	}
	return r.connector.Client(baseURL, token), nil
}

// call runs fn against the current client and converts a panic into an
// error so that nothing escapes to the caller.
func call[T any](ctx context.Context, r *Repository, op string, fn func(ports.ListerAPI) (T, error)) (result T, err error) {
	r.logger.DebugContext(ctx, "==> "+op)

	defer func() {
		if p := recover(); p != nil {
			var zero T
			result = zero
			err = fmt.Errorf("%s: unexpected failure: %v", op, p)
		}
		if err != nil {
			r.logger.ErrorContext(ctx, "repository call failed",
				slog.String("operation", op),
				slog.Any("error", err),
			)
		}
	}()

	api, err := r.api(ctx)
	if err != nil {
		return result, err
	}
	return fn(api)
}

func callUnit(ctx context.Context, r *Repository, op string, fn func(ports.ListerAPI) error) error {
	_, err := call(ctx, r, op, func(api ports.ListerAPI) (struct{}, error) {
		return struct{}{}, fn(api)
	})
	return err
}

// --- Lists ---

func (r *Repository) GetLists(ctx context.Context) ([]shopping.ListWithCount, error) {
	return call(ctx, r, "GetLists", func(api ports.ListerAPI) ([]shopping.ListWithCount, error) {
		return api.GetLists(ctx)
	})
}

func (r *Repository) GetList(ctx context.Context, id int) (shopping.List, error) {
	return call(ctx, r, fmt.Sprintf("GetList(id=%d)", id), func(api ports.ListerAPI) (shopping.List, error) {
		return api.GetList(ctx, id)
	})
}

// CreateList rejects a blank name before any remote call.
func (r *Repository) CreateList(ctx context.Context, name string) (shopping.List, error) {
	name = strings.TrimSpace(name)
	if err := shopping.ValidateName(name); err != nil {
		return shopping.List{}, err
	}
	return call(ctx, r, fmt.Sprintf("CreateList(name=%s)", name), func(api ports.ListerAPI) (shopping.List, error) {
		return api.CreateList(ctx, name)
	})
}

// UpdateList renames a list. A blank name is rejected before any remote call.
func (r *Repository) UpdateList(ctx context.Context, id int, name string) (shopping.List, error) {
	name = strings.TrimSpace(name)
	if err := shopping.ValidateName(name); err != nil {
		return shopping.List{}, err
	}
	return call(ctx, r, fmt.Sprintf("UpdateList(id=%d, name=%s)", id, name), func(api ports.ListerAPI) (shopping.List, error) {
		return api.UpdateList(ctx, id, name)
	})
}

func (r *Repository) DeleteList(ctx context.Context, id int) error {
	return callUnit(ctx, r, fmt.Sprintf("DeleteList(id=%d)", id), func(api ports.ListerAPI) error {
		return api.DeleteList(ctx, id)
	})
}

// --- Items ---

func (r *Repository) GetItems(ctx context.Context, listID int) ([]shopping.Item, error) {
	return call(ctx, r, fmt.Sprintf("GetItems(listId=%d)", listID), func(api ports.ListerAPI) ([]shopping.Item, error) {
		return api.GetItems(ctx, listID)
	})
}

func (r *Repository) GetItem(ctx context.Context, id int) (shopping.Item, error) {
	return call(ctx, r, fmt.Sprintf("GetItem(id=%d)", id), func(api ports.ListerAPI) (shopping.Item, error) {
		return api.GetItem(ctx, id)
	})
}

// CreateItem normalizes and validates draft before sending it.
func (r *Repository) CreateItem(ctx context.Context, listID int, draft shopping.ItemDraft) (shopping.Item, error) {
	draft = draft.Normalize()
	if err := draft.Validate(); err != nil {
		return shopping.Item{}, err
	}
	return call(ctx, r, fmt.Sprintf("CreateItem(listId=%d, name=%s)", listID, draft.Name), func(api ports.ListerAPI) (shopping.Item, error) {
		return api.CreateItem(ctx, listID, draft)
	})
}

// UpdateItem normalizes and validates draft before sending it.
func (r *Repository) UpdateItem(ctx context.Context, id int, draft shopping.ItemDraft) (shopping.Item, error) {
	draft = draft.Normalize()
	if err := draft.Validate(); err != nil {
		return shopping.Item{}, err
	}
	return call(ctx, r, fmt.Sprintf("UpdateItem(id=%d, name=%s)", id, draft.Name), func(api ports.ListerAPI) (shopping.Item, error) {
		return api.UpdateItem(ctx, id, draft)
	})
}

func (r *Repository) DeleteItem(ctx context.Context, id int) error {
	return callUnit(ctx, r, fmt.Sprintf("DeleteItem(id=%d)", id), func(api ports.ListerAPI) error {
		return api.DeleteItem(ctx, id)
	})
}

func (r *Repository) ToggleItemCart(ctx context.Context, id int) (shopping.Item, error) {
	return call(ctx, r, fmt.Sprintf("ToggleItemCart(id=%d)", id), func(api ports.ListerAPI) (shopping.Item, error) {
		return api.ToggleItemCart(ctx, id)
	})
}

// DeleteItems deletes ids in order and stops at the first failure.
func (r *Repository) DeleteItems(ctx context.Context, ids []int) (int, error) {
	return deleteEach(ids, func(id int) error { return r.DeleteItem(ctx, id) })
}

// --- Categories ---

func (r *Repository) GetCategories(ctx context.Context) ([]shopping.Category, error) {
	return call(ctx, r, "GetCategories", func(api ports.ListerAPI) ([]shopping.Category, error) {
		return api.GetCategories(ctx)
	})
}

func (r *Repository) GetCategory(ctx context.Context, id int) (shopping.Category, error) {
	return call(ctx, r, fmt.Sprintf("GetCategory(id=%d)", id), func(api ports.ListerAPI) (shopping.Category, error) {
		return api.GetCategory(ctx, id)
	})
}

func (r *Repository) CreateCategory(ctx context.Context, name string) (shopping.Category, error) {
	name = strings.TrimSpace(name)
	if err := shopping.ValidateName(name); err != nil {
		return shopping.Category{}, err
	}
	return call(ctx, r, fmt.Sprintf("CreateCategory(name=%s)", name), func(api ports.ListerAPI) (shopping.Category, error) {
		return api.CreateCategory(ctx, name)
	})
}

func (r *Repository) UpdateCategory(ctx context.Context, id int, name string) (shopping.Category, error) {
	name = strings.TrimSpace(name)
	if err := shopping.ValidateName(name); err != nil {
		return shopping.Category{}, err
	}
	return call(ctx, r, fmt.Sprintf("UpdateCategory(id=%d, name=%s)", id, name), func(api ports.ListerAPI) (shopping.Category, error) {
		return api.UpdateCategory(ctx, id, name)
	})
}

func (r *Repository) DeleteCategory(ctx context.Context, id int) error {
	return callUnit(ctx, r, fmt.Sprintf("DeleteCategory(id=%d)", id), func(api ports.ListerAPI) error {
		return api.DeleteCategory(ctx, id)
	})
}

// DeleteCategories deletes ids in order and stops at the first failure.
func (r *Repository) DeleteCategories(ctx context.Context, ids []int) (int, error) {
	return deleteEach(ids, func(id int) error { return r.DeleteCategory(ctx, id) })
}

// --- Search ---

func (r *Repository) SearchItems(ctx context.Context) ([]string, error) {
	return call(ctx, r, "SearchItems", func(api ports.ListerAPI) ([]string, error) {
		return api.SearchItems(ctx)
	})
}

func (r *Repository) GetCategoryMappings(ctx context.Context) (map[string]*string, error) {
	return call(ctx, r, "GetCategoryMappings", func(api ports.ListerAPI) (map[string]*string, error) {
		return api.GetCategoryMappings(ctx)
	})
}

// deleteEach applies del to ids sequentially. Completed deletions are kept
// when a later one fails.
func deleteEach(ids []int, del func(int) error) (int, error) {
	for i, id := range ids {
		if err := del(id); err != nil {
			return i, err
		}
	}
	return len(ids), nil
}
