package acl

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/lister-client/internal/adapters/clients/acl/category"
	"github.com/jsamuelsen11/lister-client/internal/adapters/clients/acl/item"
	"github.com/jsamuelsen11/lister-client/internal/adapters/clients/acl/list"
	"github.com/jsamuelsen11/lister-client/internal/domain/shopping"
	"github.com/jsamuelsen11/lister-client/internal/platform/httpclient"
	"github.com/jsamuelsen11/lister-client/internal/ports"
)

// Compile-time interface check.
var _ ports.ListerAPI = (*ListerClient)(nil)

// ListerClient is the outbound adapter for the Lister REST API. It
// implements [ports.ListerAPI]; every method issues exactly one request.
//
// Payloads are translated by the subpackages [list], [item] and
// [category]. Failures are classified by [Requester]: *TransportError,
// *StatusError, *EmptyBodyError or *DecodeError.
type ListerClient struct {
	req *Requester
}

// NewListerClient creates a ListerClient that sends requests through the
// given [httpclient.Client], whose endpoint supplies the base URL and the
// bearer credential.
func NewListerClient(client *httpclient.Client, logger *slog.Logger) *ListerClient {
	return &ListerClient{req: NewRequester(client, logger)}
}

// --- Lists ---

// GetLists fetches every list with its item count from GET lists.
func (c *ListerClient) GetLists(ctx context.Context) ([]shopping.ListWithCount, error) {
	var dtos []list.ListWithCountDTO
	if err := c.req.Do(ctx, http.MethodGet, "lists", nil, &dtos); err != nil {
		return nil, err
	}
	return list.ToDomainListsWithCount(dtos), nil
}

// GetList fetches a single list from GET lists/{id}.
func (c *ListerClient) GetList(ctx context.Context, id int) (shopping.List, error) {
	var dto list.ListDTO
	if err := c.req.Do(ctx, http.MethodGet, fmt.Sprintf("lists/%d", id), nil, &dto); err != nil {
		return shopping.List{}, err
	}
	return list.ToDomainList(dto), nil
}

// CreateList sends POST lists and returns the created list.
func (c *ListerClient) CreateList(ctx context.Context, name string) (shopping.List, error) {
	var dto list.ListDTO
	if err := c.req.Do(ctx, http.MethodPost, "lists", list.ToNameRequest(name), &dto); err != nil {
		return shopping.List{}, err
	}
	return list.ToDomainList(dto), nil
}

// UpdateList renames a list with PUT lists/{id}.
func (c *ListerClient) UpdateList(ctx context.Context, id int, name string) (shopping.List, error) {
	var dto list.ListDTO
	if err := c.req.Do(ctx, http.MethodPut, fmt.Sprintf("lists/%d", id), list.ToNameRequest(name), &dto); err != nil {
		return shopping.List{}, err
	}
	return list.ToDomainList(dto), nil
}

// DeleteList sends DELETE lists/{id}. Any 2xx is success.
func (c *ListerClient) DeleteList(ctx context.Context, id int) error {
	return c.req.Do(ctx, http.MethodDelete, fmt.Sprintf("lists/%d", id), nil, nil)
}

// --- Items ---

// GetItems fetches the items of one list from GET lists/{id}/items.
func (c *ListerClient) GetItems(ctx context.Context, listID int) ([]shopping.Item, error) {
	var dtos []item.ItemDTO
	if err := c.req.Do(ctx, http.MethodGet, fmt.Sprintf("lists/%d/items", listID), nil, &dtos); err != nil {
		return nil, err
	}
	return item.ToDomainItems(dtos), nil
}

// GetItem fetches a single item from GET items/{id}.
func (c *ListerClient) GetItem(ctx context.Context, id int) (shopping.Item, error) {
	return c.itemCall(ctx, http.MethodGet, fmt.Sprintf("items/%d", id), nil)
}

// CreateItem sends POST lists/{id}/items.
func (c *ListerClient) CreateItem(ctx context.Context, listID int, draft shopping.ItemDraft) (shopping.Item, error) {
	return c.itemCall(ctx, http.MethodPost, fmt.Sprintf("lists/%d/items", listID), item.ToRequest(draft))
}

// UpdateItem sends PUT items/{id}. The full draft replaces the item.
func (c *ListerClient) UpdateItem(ctx context.Context, id int, draft shopping.ItemDraft) (shopping.Item, error) {
	return c.itemCall(ctx, http.MethodPut, fmt.Sprintf("items/%d", id), item.ToRequest(draft))
}

// DeleteItem sends DELETE items/{id}.
func (c *ListerClient) DeleteItem(ctx context.Context, id int) error {
	return c.req.Do(ctx, http.MethodDelete, fmt.Sprintf("items/%d", id), nil, nil)
}

// ToggleItemCart flips the in-cart flag with PATCH items/{id}/toggle.
func (c *ListerClient) ToggleItemCart(ctx context.Context, id int) (shopping.Item, error) {
	return c.itemCall(ctx, http.MethodPatch, fmt.Sprintf("items/%d/toggle", id), nil)
}

func (c *ListerClient) itemCall(ctx context.Context, method, path string, body any) (shopping.Item, error) {
	var dto item.ItemDTO
	if err := c.req.Do(ctx, method, path, body, &dto); err != nil {
		return shopping.Item{}, err
	}
	return item.ToDomainItem(dto), nil
}

// --- Categories ---

// GetCategories fetches every category from GET categories.
func (c *ListerClient) GetCategories(ctx context.Context) ([]shopping.Category, error) {
	var dtos []category.CategoryDTO
	if err := c.req.Do(ctx, http.MethodGet, "categories", nil, &dtos); err != nil {
		return nil, err
	}
	return category.ToDomainCategories(dtos), nil
}

// GetCategory fetches a single category from GET categories/{id}.
func (c *ListerClient) GetCategory(ctx context.Context, id int) (shopping.Category, error) {
	return c.categoryCall(ctx, http.MethodGet, fmt.Sprintf("categories/%d", id), nil)
}

// CreateCategory sends POST categories.
func (c *ListerClient) CreateCategory(ctx context.Context, name string) (shopping.Category, error) {
	return c.categoryCall(ctx, http.MethodPost, "categories", category.ToNameRequest(name))
}

// UpdateCategory renames a category with PUT categories/{id}.
func (c *ListerClient) UpdateCategory(ctx context.Context, id int, name string) (shopping.Category, error) {
	return c.categoryCall(ctx, http.MethodPut, fmt.Sprintf("categories/%d", id), category.ToNameRequest(name))
}

// DeleteCategory sends DELETE categories/{id}.
func (c *ListerClient) DeleteCategory(ctx context.Context, id int) error {
	return c.req.Do(ctx, http.MethodDelete, fmt.Sprintf("categories/%d", id), nil, nil)
}

func (c *ListerClient) categoryCall(ctx context.Context, method, path string, body any) (shopping.Category, error) {
	var dto category.CategoryDTO
	if err := c.req.Do(ctx, method, path, body, &dto); err != nil {
		return shopping.Category{}, err
	}
	return category.ToDomainCategory(dto), nil
}

// --- Search ---

// SearchItems fetches previously used item names from GET search.
func (c *ListerClient) SearchItems(ctx context.Context) ([]string, error) {
	var names []string
	if err := c.req.Do(ctx, http.MethodGet, "search", nil, &names); err != nil {
		return nil, err
	}
	if names == nil {
		names = []string{}
	}
	return names, nil
}

// GetCategoryMappings fetches item-name to category hints from
// GET search/category-mappings.
func (c *ListerClient) GetCategoryMappings(ctx context.Context) (map[string]*string, error) {
	var dto category.MappingsDTO
	if err := c.req.Do(ctx, http.MethodGet, "search/category-mappings", nil, &dto); err != nil {
		return nil, err
	}
	return category.ToMappings(dto), nil
}
