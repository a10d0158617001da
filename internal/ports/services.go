package ports

import (
	"context"

	"github.com/jsamuelsen11/lister-client/internal/domain/settings"
	"github.com/jsamuelsen11/lister-client/internal/domain/shopping"
)

// Repository mediates between screen state and the remote service. Every
// method reads the current endpoint from Preferences, performs one remote
// call and reports any failure as a returned error. It never panics.
type Repository interface {
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

	// DeleteItems deletes ids one at a time in order, stopping at the first
	// failure. It returns how many deletions completed; those are not
	// rolled back.
	DeleteItems(ctx context.Context, ids []int) (int, error)

	GetCategories(ctx context.Context) ([]shopping.Category, error)
	GetCategory(ctx context.Context, id int) (shopping.Category, error)
	CreateCategory(ctx context.Context, name string) (shopping.Category, error)
	UpdateCategory(ctx context.Context, id int, name string) (shopping.Category, error)
	DeleteCategory(ctx context.Context, id int) error

	// DeleteCategories has the same partial-failure semantics as DeleteItems.
	DeleteCategories(ctx context.Context, ids []int) (int, error)

	SearchItems(ctx context.Context) ([]string, error)
	GetCategoryMappings(ctx context.Context) (map[string]*string, error)
}

// Preferences is the subset of the preference store consumed outside the
// adapter: endpoint reads for the repository, the observable values the
// screens follow, and per-key writes. Each setter touches only its own key.
//
// Reads never fail on corrupt stored data; they fall back to defaults. An
// error means the backing store itself is unavailable.
type Preferences interface {
	BaseURL(ctx context.Context) (string, error)
	BearerToken(ctx context.Context) (*string, error)

	WatchSuggestionCount(ctx context.Context) <-chan int
	WatchListOrder(ctx context.Context) <-chan map[int]int
	WatchHiddenLists(ctx context.Context) <-chan map[int]struct{}

	SetBaseURL(ctx context.Context, raw string) error
	SetBearerToken(ctx context.Context, token *string) error
	SetSuggestionCount(ctx context.Context, n int) error
	SetPrimaryColor(ctx context.Context, c settings.PrimaryColor) error
	SetUseMaterialYou(ctx context.Context, on bool) error
	SetFontSize(ctx context.Context, f settings.FontSize) error
	SetPaddingMode(ctx context.Context, p settings.PaddingMode) error
	SetListOrder(ctx context.Context, order map[int]int) error
	SetHiddenLists(ctx context.Context, hidden map[int]struct{}) error

	Snapshot(ctx context.Context) (settings.Settings, error)
}
