package screen

import (
	"context"
	"errors"
	"log/slog"
	"maps"

	"github.com/jsamuelsen11/lister-client/internal/domain/settings"
	"github.com/jsamuelsen11/lister-client/internal/domain/shopping"
	"github.com/jsamuelsen11/lister-client/internal/domain/suggest"
	"github.com/jsamuelsen11/lister-client/internal/platform/observe"
	"github.com/jsamuelsen11/lister-client/internal/ports"
)

// ErrUnknownCategory is returned when a category is renamed by a name the
// screen has not loaded.
var ErrUnknownCategory = errors.New("category not found")

// msgCategoryNotFound is shown for ErrUnknownCategory.
const msgCategoryNotFound = "Category not found"

// ListDetailState is the detail screen of one list. ItemSuggestions is the
// full pool of known item names and CategorySuggestions the category names
// ranked by use in this list; the holder's ItemSuggestions and
// CategorySuggestions methods filter them for user input.
type ListDetailState struct {
	ListID              int
	ListName            string
	Items               []shopping.Item
	ItemSuggestions     []string
	Categories          []shopping.Category
	CategorySuggestions []string
	CategoryMappings    map[string]*string
	SuggestionCount     int
	IsLoading           bool
	Error               string

	// Cleared is how many items the last cart clear deleted.
	Cleared int

	// Collapsed holds the keys of groups the user folded away.
	Collapsed map[string]bool
}

// ListDetail drives the detail screen of a single list.
type ListDetail struct {
	repo     ports.Repository
	policy   suggest.Policy
	logger   *slog.Logger
	launcher *Launcher
	state    *observe.Value[ListDetailState]
}

// NewListDetail creates the holder and starts following the suggestion count
// preference. policy decides what a count of zero means.
func NewListDetail(ctx context.Context, repo ports.Repository, prefs ports.Preferences, policy suggest.Policy, logger *slog.Logger) *ListDetail {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	d := &ListDetail{
		repo:     repo,
		policy:   policy,
		logger:   logger,
		launcher: NewLauncher(ctx, logger),
		state: observe.NewValue(ListDetailState{
			ListID:           -1,
			CategoryMappings: map[string]*string{},
			SuggestionCount:  settings.DefaultSuggestionCount,
			Collapsed:        map[string]bool{},
		}),
	}

	follow(d.launcher, "suggestion-count", prefs.WatchSuggestionCount, func(n int) {
		d.state.Update(func(s *ListDetailState) { s.SuggestionCount = n })
	})

	return d
}

// State returns the current snapshot.
func (d *ListDetail) State() ListDetailState { return d.state.Get() }

// Watch streams snapshots until ctx is done.
func (d *ListDetail) Watch(ctx context.Context) <-chan ListDetailState {
	return d.state.Subscribe(ctx)
}

// Wait blocks until the launched operations finish and returns their errors.
func (d *ListDetail) Wait() error { return d.launcher.Wait() }

// Close stops following preferences and waits like Wait.
func (d *ListDetail) Close() error { return d.launcher.Close() }

// Initialize points the screen at a list and loads everything it shows.
func (d *ListDetail) Initialize(ctx context.Context, listID int, listName string) error {
	d.logger.DebugContext(ctx, "list detail initialize",
		slog.Int("list_id", listID),
		slog.String("list_name", listName),
	)
	d.state.Update(func(s *ListDetailState) {
		s.ListID = listID
		s.ListName = listName
	})
	return d.Refresh(ctx)
}

// Refresh reloads items, suggestions, categories and mappings. Only an item
// failure is reported; the others are logged and leave their data as is.
func (d *ListDetail) Refresh(ctx context.Context) error {
	err := d.loadItems(ctx)
	d.loadSuggestions(ctx)
	d.loadCategories(ctx)
	d.loadCategoryMappings(ctx)
	return err
}

func (d *ListDetail) loadItems(ctx context.Context) error {
	var listID int
	d.state.Update(func(s *ListDetailState) {
		listID = s.ListID
		s.IsLoading = true
		s.Error = ""
	})

	items, err := d.repo.GetItems(ctx, listID)
	d.state.Update(func(s *ListDetailState) {
		s.IsLoading = false
		if err != nil {
			s.Error = err.Error()
			return
		}
		s.Items = items
	})
	if err == nil {
		d.logger.DebugContext(ctx, "items loaded", slog.Int("count", len(items)))
	}
	return err
}

func (d *ListDetail) loadSuggestions(ctx context.Context) {
	names, err := d.repo.SearchItems(ctx)
	if err != nil {
		d.logger.WarnContext(ctx, "loading item suggestions failed", slog.String("error", err.Error()))
		return
	}
	d.state.Update(func(s *ListDetailState) { s.ItemSuggestions = names })
}

// loadCategories ranks category names by how often the loaded items use them.
func (d *ListDetail) loadCategories(ctx context.Context) {
	categories, err := d.repo.GetCategories(ctx)
	if err != nil {
		d.logger.WarnContext(ctx, "loading categories failed", slog.String("error", err.Error()))
		return
	}

	names := make([]string, len(categories))
	for i, c := range categories {
		names[i] = c.Name
	}
	d.state.Update(func(s *ListDetailState) {
		s.Categories = categories
		s.CategorySuggestions = suggest.RankCategories(s.Items, names)
	})
}

func (d *ListDetail) loadCategoryMappings(ctx context.Context) {
	mappings, err := d.repo.GetCategoryMappings(ctx)
	if err != nil {
		d.logger.WarnContext(ctx, "loading category mappings failed", slog.String("error", err.Error()))
		return
	}
	d.state.Update(func(s *ListDetailState) { s.CategoryMappings = mappings })
}

// CreateItem adds an item to the current list and reloads the screen.
func (d *ListDetail) CreateItem(ctx context.Context, draft shopping.ItemDraft) error {
	if _, err := d.repo.CreateItem(ctx, d.state.Get().ListID, draft); err != nil {
		d.setError(ctx, err)
		return err
	}
	_ = d.Refresh(ctx)
	return nil
}

// UpdateItem edits an item in place and reloads the category mappings.
func (d *ListDetail) UpdateItem(ctx context.Context, id int, draft shopping.ItemDraft) error {
	updated, err := d.repo.UpdateItem(ctx, id, draft)
	if err != nil {
		d.setError(ctx, err)
		return err
	}
	d.state.Update(func(s *ListDetailState) { s.Items = shopping.ReplaceItem(s.Items, updated) })
	d.loadCategoryMappings(ctx)
	return nil
}

// DeleteItem removes an item without reloading the list.
func (d *ListDetail) DeleteItem(ctx context.Context, id int) error {
	if err := d.repo.DeleteItem(ctx, id); err != nil {
		d.setError(ctx, err)
		return err
	}
	d.state.Update(func(s *ListDetailState) { s.Items = shopping.RemoveItem(s.Items, id) })
	return nil
}

// ToggleItemCart flips an item's cart flag and shows the server's copy.
func (d *ListDetail) ToggleItemCart(ctx context.Context, id int) error {
	updated, err := d.repo.ToggleItemCart(ctx, id)
	if err != nil {
		d.setError(ctx, err)
		return err
	}
	d.logger.DebugContext(ctx, "cart toggled", slog.Int("item_id", id), slog.Bool("in_cart", updated.InCart))
	d.state.Update(func(s *ListDetailState) { s.Items = shopping.ReplaceItem(s.Items, updated) })
	return nil
}

// DeleteAllInCartItems deletes every item in the cart, stopping at the first
// failure, and then reloads the items. It returns how many were deleted; a
// deletion error takes precedence over a reload error.
func (d *ListDetail) DeleteAllInCartItems(ctx context.Context) (int, error) {
	ids := shopping.InCartIDs(d.state.Get().Items)
	d.logger.DebugContext(ctx, "clearing cart", slog.Int("count", len(ids)))

	n, err := d.repo.DeleteItems(ctx, ids)
	d.state.Update(func(s *ListDetailState) { s.Cleared = n })
	loadErr := d.loadItems(ctx)
	if err != nil {
		// Set after the reload, which clears the error.
		d.setError(ctx, err)
		return n, err
	}
	return n, loadErr
}

// RenameCategory renames the category called name. Items carry category
// names, so the whole screen reloads on success.
func (d *ListDetail) RenameCategory(ctx context.Context, name, newName string) error {
	var category *shopping.Category
	for _, c := range d.state.Get().Categories {
		if c.Name == name {
			category = &c
			break
		}
	}
	if category == nil {
		d.logger.WarnContext(ctx, "rename of unknown category", slog.String("category", name))
		d.state.Update(func(s *ListDetailState) { s.Error = msgCategoryNotFound })
		return ErrUnknownCategory
	}

	if _, err := d.repo.UpdateCategory(ctx, category.ID, newName); err != nil {
		d.setError(ctx, err)
		return err
	}
	_ = d.loadItems(ctx)
	d.loadCategories(ctx)
	d.loadCategoryMappings(ctx)
	return nil
}

// LaunchInitialize starts Initialize and returns at once.
func (d *ListDetail) LaunchInitialize(listID int, listName string) {
	d.launcher.Launch("initialize", func(ctx context.Context) error {
		return d.Initialize(ctx, listID, listName)
	})
}

// LaunchRefresh starts Refresh and returns at once.
func (d *ListDetail) LaunchRefresh() {
	d.launcher.Launch("refresh", d.Refresh)
}

// LaunchCreateItem starts CreateItem and returns at once.
func (d *ListDetail) LaunchCreateItem(draft shopping.ItemDraft) {
	d.launcher.Launch("create-item", func(ctx context.Context) error {
		return d.CreateItem(ctx, draft)
	})
}

// LaunchUpdateItem starts UpdateItem and returns at once.
func (d *ListDetail) LaunchUpdateItem(id int, draft shopping.ItemDraft) {
	d.launcher.Launch("update-item", func(ctx context.Context) error {
		return d.UpdateItem(ctx, id, draft)
	})
}

// LaunchDeleteItem starts DeleteItem and returns at once.
func (d *ListDetail) LaunchDeleteItem(id int) {
	d.launcher.Launch("delete-item", func(ctx context.Context) error {
		return d.DeleteItem(ctx, id)
	})
}

// LaunchToggleItemCart starts ToggleItemCart and returns at once.
func (d *ListDetail) LaunchToggleItemCart(id int) {
	d.launcher.Launch("toggle-cart", func(ctx context.Context) error {
		return d.ToggleItemCart(ctx, id)
	})
}

// LaunchDeleteAllInCartItems starts DeleteAllInCartItems and returns at
// once. The count lands in Cleared.
func (d *ListDetail) LaunchDeleteAllInCartItems() {
	d.launcher.Launch("clear-cart", func(ctx context.Context) error {
		_, err := d.DeleteAllInCartItems(ctx)
		return err
	})
}

// LaunchRenameCategory starts RenameCategory and returns at once.
func (d *ListDetail) LaunchRenameCategory(name, newName string) {
	d.launcher.Launch("rename-category", func(ctx context.Context) error {
		return d.RenameCategory(ctx, name, newName)
	})
}

// ClearError dismisses the current error.
func (d *ListDetail) ClearError() {
	d.state.Update(func(s *ListDetailState) { s.Error = "" })
}

// ToggleGroup folds or unfolds the group with the given key.
func (d *ListDetail) ToggleGroup(key string) {
	d.state.Update(func(s *ListDetailState) {
		collapsed := maps.Clone(s.Collapsed)
		if collapsed == nil {
			collapsed = map[string]bool{}
		}
		if collapsed[key] {
			delete(collapsed, key)
		} else {
			collapsed[key] = true
		}
		s.Collapsed = collapsed
	})
}

// Groups arranges the loaded items for display.
func (d *ListDetail) Groups() []shopping.ItemGroup {
	return shopping.GroupItems(d.state.Get().Items)
}

// ItemSuggestions returns known item names matching input, limited by the
// suggestion count.
func (d *ListDetail) ItemSuggestions(input string) []string {
	s := d.state.Get()
	return d.filter(s).Items(input, s.ItemSuggestions)
}

// CategorySuggestions returns ranked category names matching input, limited
// by the suggestion count.
func (d *ListDetail) CategorySuggestions(input string) []string {
	s := d.state.Get()
	return d.filter(s).Categories(input, s.CategorySuggestions)
}

// SuggestedCategory returns the category the server associates with an item
// name.
func (d *ListDetail) SuggestedCategory(itemName string) (string, bool) {
	return suggest.CategoryFor(d.state.Get().CategoryMappings, itemName)
}

func (d *ListDetail) filter(s ListDetailState) suggest.Filter {
	return suggest.Filter{Count: s.SuggestionCount, Policy: d.policy}
}

func (d *ListDetail) setError(ctx context.Context, err error) {
	d.logger.DebugContext(ctx, "list detail operation failed", slog.String("error", err.Error()))
	d.state.Update(func(s *ListDetailState) { s.Error = err.Error() })
}
