package ports

import (
	"context"

	"github.com/jsamuelsen11/lister-client/internal/domain/shopping"
)

// ListerAPI is the client port for the remote Lister REST service. Each
// method issues exactly one HTTP request. Implemented by the ACL adapter.
//
// Errors are classified with the domain sentinels: domain.ErrTransport when
// no response arrived, domain.ErrEmptyBody for a payload-less 2xx,
// domain.ErrDecode for an unreadable payload, and a status error wrapping
// domain.ErrNotFound and friends for non-2xx responses.
type ListerAPI interface {
	GetLists(ctx context.Context) ([]shopping.ListWithCount, error)
	GetList(ctx context.Context, id int) (shopping.List, error)
	CreateList(ctx context.Context, name string) (shopping.List, error)
	UpdateList(ctx context.Context, id int, name string) (shopping.List, error)
	DeleteList(ctx context.Context, id int) error

	GetItems(ctx context.Context, listID int) ([]shopping.Item, error)
	GetItem(ctx context.Context, id int) (shopping.Item, error)
	CreateItem(ctx context.Context, listID int, draft shopping.ItemDraft) (shopping.Item, error)
	UpdateItem(ctx context.Context, id int, draft shopping.ItemDraft) (shopping.Item, error)
	DeleteItem(ctx context.Context, id int) error
	ToggleItemCart(ctx context.Context, id int) (shopping.Item, error)

	GetCategories(ctx context.Context) ([]shopping.Category, error)
	GetCategory(ctx context.Context, id int) (shopping.Category, error)
	CreateCategory(ctx context.Context, name string) (shopping.Category, error)
	UpdateCategory(ctx context.Context, id int, name string) (shopping.Category, error)
	DeleteCategory(ctx context.Context, id int) error

	// SearchItems returns previously used item names.
	SearchItems(ctx context.Context) ([]string, error)
	// GetCategoryMappings returns item name -> category name hints. A nil
	// value means the server knows the item but not its category.
	GetCategoryMappings(ctx context.Context) (map[string]*string, error)
}

// ListerConnector hands out a ListerAPI bound to a server endpoint and
// credential. Implementations may reuse clients between calls as long as a
// changed baseURL or bearerToken takes effect on the very next call.
type ListerConnector interface {
	Client(baseURL string, bearerToken *string) ListerAPI
}
