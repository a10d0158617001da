package screen

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"slices"

	"github.com/jsamuelsen11/lister-client/internal/app/fanout"
	"github.com/jsamuelsen11/lister-client/internal/domain/shopping"
	"github.com/jsamuelsen11/lister-client/internal/platform/observe"
	"github.com/jsamuelsen11/lister-client/internal/ports"
)

// CategoryManagementState is the category management screen. Selected holds
// the ids picked in multi-select mode.
type CategoryManagementState struct {
	Categories        []shopping.CategoryWithCount
	IsLoading         bool
	Error             string
	IsMultiSelectMode bool
	Selected          map[int]struct{}

	// Deleted is how many categories the last multi-select delete removed.
	Deleted int
}

// CategoryManagement drives the category management screen.
type CategoryManagement struct {
	repo     ports.Repository
	workers  int
	logger   *slog.Logger
	launcher *Launcher
	state    *observe.Value[CategoryManagementState]
}

// NewCategoryManagement creates the holder. workers bounds the concurrent
// item requests made while counting; below 1 means fanout.DefaultWorkers.
// Launched operations keep ctx's values.
func NewCategoryManagement(ctx context.Context, repo ports.Repository, workers int, logger *slog.Logger) *CategoryManagement {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if workers < 1 {
		workers = fanout.DefaultWorkers
	}
	return &CategoryManagement{
		repo:     repo,
		workers:  workers,
		logger:   logger,
		launcher: NewLauncher(ctx, logger),
		state:    observe.NewValue(CategoryManagementState{Selected: map[int]struct{}{}}),
	}
}

// State returns the current snapshot.
func (m *CategoryManagement) State() CategoryManagementState { return m.state.Get() }

// Watch streams snapshots until ctx is done.
func (m *CategoryManagement) Watch(ctx context.Context) <-chan CategoryManagementState {
	return m.state.Subscribe(ctx)
}

// Wait blocks until the launched operations finish and returns their errors.
func (m *CategoryManagement) Wait() error { return m.launcher.Wait() }

// Close waits like Wait.
func (m *CategoryManagement) Close() error { return m.launcher.Close() }

// LoadCategories fetches the categories and counts their items across every
// list. Only a category failure is reported; lists or items that cannot be
// fetched simply contribute nothing to the counts.
func (m *CategoryManagement) LoadCategories(ctx context.Context) error {
	m.state.Update(func(s *CategoryManagementState) {
		s.IsLoading = true
		s.Error = ""
	})

	categories, err := m.repo.GetCategories(ctx)
	if err != nil {
		m.fail(ctx, err)
		return err
	}

	items := m.allItems(ctx)
	counted := shopping.CountByCategory(categories, items)

	m.state.Update(func(s *CategoryManagementState) {
		s.Categories = counted
		s.IsLoading = false
	})
	return nil
}

// allItems gathers the items of every list, skipping failures.
func (m *CategoryManagement) allItems(ctx context.Context) []shopping.Item {
	lists, err := m.repo.GetLists(ctx)
	if err != nil {
		m.logger.WarnContext(ctx, "loading lists for category counts failed", slog.String("error", err.Error()))
		return nil
	}

	results := fanout.Run(ctx, m.workers, lists, func(ctx context.Context, l shopping.ListWithCount) ([]shopping.Item, error) {
		return m.repo.GetItems(ctx, l.ID)
	})
	perList, errs := fanout.Partition(results)
	if len(errs) > 0 {
		m.logger.WarnContext(ctx, "some lists could not be counted",
			slog.Int("failed", len(errs)),
			slog.Int("lists", len(lists)),
		)
	}
	return slices.Concat(perList...)
}

// RenameCategory renames a category and reloads on success.
func (m *CategoryManagement) RenameCategory(ctx context.Context, id int, newName string) error {
	m.state.Update(func(s *CategoryManagementState) { s.IsLoading = true })

	if _, err := m.repo.UpdateCategory(ctx, id, newName); err != nil {
		m.fail(ctx, err)
		return err
	}
	_ = m.LoadCategories(ctx)
	return nil
}

// DeleteCategory deletes an unused category and reloads on success. A
// category that still tags items is refused without contacting the server.
func (m *CategoryManagement) DeleteCategory(ctx context.Context, id int) error {
	if c, ok := m.find(id); ok && !c.CanDelete() {
		err := fmt.Errorf("%q: %w", c.Name, shopping.ErrCategoryInUse)
		m.state.Update(func(s *CategoryManagementState) { s.Error = err.Error() })
		return err
	}

	m.state.Update(func(s *CategoryManagementState) { s.IsLoading = true })
	if err := m.repo.DeleteCategory(ctx, id); err != nil {
		m.fail(ctx, err)
		return err
	}
	_ = m.LoadCategories(ctx)
	return nil
}

// LaunchLoadCategories starts LoadCategories and returns at once.
func (m *CategoryManagement) LaunchLoadCategories() {
	m.launcher.Launch("load-categories", m.LoadCategories)
}

// LaunchRenameCategory starts RenameCategory and returns at once.
func (m *CategoryManagement) LaunchRenameCategory(id int, newName string) {
	m.launcher.Launch("rename-category", func(ctx context.Context) error {
		return m.RenameCategory(ctx, id, newName)
	})
}

// LaunchDeleteCategory starts DeleteCategory and returns at once.
func (m *CategoryManagement) LaunchDeleteCategory(id int) {
	m.launcher.Launch("delete-category", func(ctx context.Context) error {
		return m.DeleteCategory(ctx, id)
	})
}

// LaunchDeleteSelectedCategories starts DeleteSelectedCategories and returns
// at once. The count lands in Deleted.
func (m *CategoryManagement) LaunchDeleteSelectedCategories() {
	m.launcher.Launch("delete-selected", func(ctx context.Context) error {
		_, err := m.DeleteSelectedCategories(ctx)
		return err
	})
}

// ClearError dismisses the current error.
func (m *CategoryManagement) ClearError() {
	m.state.Update(func(s *CategoryManagementState) { s.Error = "" })
}

// ToggleMultiSelectMode enters or leaves multi-select mode. The selection is
// cleared either way.
func (m *CategoryManagement) ToggleMultiSelectMode() {
	m.state.Update(func(s *CategoryManagementState) {
		s.IsMultiSelectMode = !s.IsMultiSelectMode
		s.Selected = map[int]struct{}{}
	})
}

// ToggleCategorySelection adds id to the selection or removes it.
func (m *CategoryManagement) ToggleCategorySelection(id int) {
	m.state.Update(func(s *CategoryManagementState) {
		selected := maps.Clone(s.Selected)
		if selected == nil {
			selected = map[int]struct{}{}
		}
		if _, ok := selected[id]; ok {
			delete(selected, id)
		} else {
			selected[id] = struct{}{}
		}
		s.Selected = selected
	})
}

// DeleteSelectedCategories deletes the selection in ascending id order and
// stops at the first failure, keeping multi-select mode and the selection so
// the user can retry. On success it leaves multi-select mode and reloads.
// It returns how many categories were deleted.
func (m *CategoryManagement) DeleteSelectedCategories(ctx context.Context) (int, error) {
	var ids []int
	m.state.Update(func(s *CategoryManagementState) {
		s.IsLoading = true
		ids = slices.Sorted(maps.Keys(s.Selected))
	})

	n, err := m.repo.DeleteCategories(ctx, ids)
	m.state.Update(func(s *CategoryManagementState) { s.Deleted = n })
	if err != nil {
		m.fail(ctx, err)
		return n, err
	}

	m.state.Update(func(s *CategoryManagementState) {
		s.IsMultiSelectMode = false
		s.Selected = map[int]struct{}{}
	})
	_ = m.LoadCategories(ctx)
	return n, nil
}

func (m *CategoryManagement) find(id int) (shopping.CategoryWithCount, bool) {
	for _, c := range m.state.Get().Categories {
		if c.ID == id {
			return c, true
		}
	}
	return shopping.CategoryWithCount{}, false
}

func (m *CategoryManagement) fail(ctx context.Context, err error) {
	m.logger.DebugContext(ctx, "category operation failed", slog.String("error", err.Error()))
	m.state.Update(func(s *CategoryManagementState) {
		s.Error = err.Error()
		s.IsLoading = false
	})
}
