package screen

import (
	"context"
	"log/slog"
	"maps"
	"slices"

	"github.com/jsamuelsen11/lister-client/internal/domain/shopping"
	"github.com/jsamuelsen11/lister-client/internal/platform/observe"
	"github.com/jsamuelsen11/lister-client/internal/ports"
)

// ListOverviewState is the list overview screen at one point in time. Lists
// are sorted by the persisted order and include hidden ones; DisplayLists
// applies the hidden filter.
type ListOverviewState struct {
	Lists         []shopping.ListWithCount
	HiddenLists   map[int]struct{}
	IsLoading     bool
	Error         string
	IsReorderMode bool

	order map[int]int
}

// ListOverview drives the list overview screen.
type ListOverview struct {
	repo     ports.Repository
	prefs    ports.Preferences
	logger   *slog.Logger
	launcher *Launcher
	state    *observe.Value[ListOverviewState]
}

// NewListOverview creates the holder and starts following the persisted list
// order and hidden set. The current preference values are applied before it
// returns. Lists are not fetched until LoadLists.
func NewListOverview(ctx context.Context, repo ports.Repository, prefs ports.Preferences, logger *slog.Logger) *ListOverview {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	o := &ListOverview{
		repo:     repo,
		prefs:    prefs,
		logger:   logger,
		launcher: NewLauncher(ctx, logger),
		state:    observe.NewValue(ListOverviewState{HiddenLists: map[int]struct{}{}, order: map[int]int{}}),
	}

	follow(o.launcher, "list-order", prefs.WatchListOrder, func(order map[int]int) {
		o.state.Update(func(s *ListOverviewState) {
			s.order = order
			if len(s.Lists) > 0 {
				s.Lists = shopping.SortLists(s.Lists, order)
			}
		})
	})
	follow(o.launcher, "hidden-lists", prefs.WatchHiddenLists, func(hidden map[int]struct{}) {
		o.state.Update(func(s *ListOverviewState) { s.HiddenLists = hidden })
	})

	return o
}

// State returns the current snapshot.
func (o *ListOverview) State() ListOverviewState { return o.state.Get() }

// Watch streams snapshots until ctx is done.
func (o *ListOverview) Watch(ctx context.Context) <-chan ListOverviewState {
	return o.state.Subscribe(ctx)
}

// Wait blocks until the launched operations finish and returns their errors.
func (o *ListOverview) Wait() error { return o.launcher.Wait() }

// Close stops following preferences and waits like Wait.
func (o *ListOverview) Close() error { return o.launcher.Close() }

// LoadLists fetches every list and sorts it by the persisted order.
func (o *ListOverview) LoadLists(ctx context.Context) error {
	o.state.Update(func(s *ListOverviewState) {
		s.IsLoading = true
		s.Error = ""
	})

	lists, err := o.repo.GetLists(ctx)
	o.state.Update(func(s *ListOverviewState) {
		s.IsLoading = false
		if err != nil {
			s.Error = err.Error()
			return
		}
		s.Lists = shopping.SortLists(lists, s.order)
	})
	return err
}

// CreateList creates a list and reloads on success.
func (o *ListOverview) CreateList(ctx context.Context, name string) error {
	_, err := o.repo.CreateList(ctx, name)
	return o.afterMutation(ctx, err)
}

// UpdateList renames a list and reloads on success.
func (o *ListOverview) UpdateList(ctx context.Context, id int, name string) error {
	_, err := o.repo.UpdateList(ctx, id, name)
	return o.afterMutation(ctx, err)
}

// DeleteList deletes a list and reloads on success.
func (o *ListOverview) DeleteList(ctx context.Context, id int) error {
	return o.afterMutation(ctx, o.repo.DeleteList(ctx, id))
}

// afterMutation records a failed mutation, or reloads after a successful one.
// A failed reload lands in the state but does not fail the mutation.
func (o *ListOverview) afterMutation(ctx context.Context, err error) error {
	if err != nil {
		o.setError(err)
		return err
	}
	_ = o.LoadLists(ctx)
	return nil
}

// LaunchLoadLists starts LoadLists and returns at once.
func (o *ListOverview) LaunchLoadLists() {
	o.launcher.Launch("load-lists", o.LoadLists)
}

// LaunchCreateList starts CreateList and returns at once.
func (o *ListOverview) LaunchCreateList(name string) {
	o.launcher.Launch("create-list", func(ctx context.Context) error {
		return o.CreateList(ctx, name)
	})
}

// LaunchUpdateList starts UpdateList and returns at once.
func (o *ListOverview) LaunchUpdateList(id int, name string) {
	o.launcher.Launch("update-list", func(ctx context.Context) error {
		return o.UpdateList(ctx, id, name)
	})
}

// LaunchDeleteList starts DeleteList and returns at once.
func (o *ListOverview) LaunchDeleteList(id int) {
	o.launcher.Launch("delete-list", func(ctx context.Context) error {
		return o.DeleteList(ctx, id)
	})
}

// LaunchReorderLists starts ReorderLists and returns at once.
func (o *ListOverview) LaunchReorderLists(arrangement []shopping.ListWithCount) {
	arrangement = slices.Clone(arrangement)
	o.launcher.Launch("reorder-lists", func(ctx context.Context) error {
		return o.ReorderLists(ctx, arrangement)
	})
}

// LaunchToggleListVisibility starts ToggleListVisibility and returns at
// once.
func (o *ListOverview) LaunchToggleListVisibility(id int) {
	o.launcher.Launch("toggle-visibility", func(ctx context.Context) error {
		return o.ToggleListVisibility(ctx, id)
	})
}

// ClearError dismisses the current error.
func (o *ListOverview) ClearError() {
	o.state.Update(func(s *ListOverviewState) { s.Error = "" })
}

// ToggleReorderMode switches between browsing and rearranging.
func (o *ListOverview) ToggleReorderMode() {
	o.state.Update(func(s *ListOverviewState) { s.IsReorderMode = !s.IsReorderMode })
}

// ReorderLists persists arrangement as the new list order and shows it.
func (o *ListOverview) ReorderLists(ctx context.Context, arrangement []shopping.ListWithCount) error {
	order := shopping.OrderFromArrangement(arrangement)
	if err := o.prefs.SetListOrder(ctx, order); err != nil {
		o.setError(err)
		return err
	}
	o.state.Update(func(s *ListOverviewState) {
		s.order = order
		s.Lists = slices.Clone(arrangement)
	})
	return nil
}

// ToggleListVisibility hides a visible list or shows a hidden one.
func (o *ListOverview) ToggleListVisibility(ctx context.Context, id int) error {
	hidden := maps.Clone(o.state.Get().HiddenLists)
	if hidden == nil {
		hidden = map[int]struct{}{}
	}
	if _, ok := hidden[id]; ok {
		delete(hidden, id)
	} else {
		hidden[id] = struct{}{}
	}

	if err := o.prefs.SetHiddenLists(ctx, hidden); err != nil {
		o.setError(err)
		return err
	}
	o.state.Update(func(s *ListOverviewState) { s.HiddenLists = hidden })
	return nil
}

// DisplayLists returns the lists the screen shows: hidden lists are left out
// unless reorder mode is on.
func (o *ListOverview) DisplayLists() []shopping.ListWithCount {
	s := o.state.Get()
	return shopping.VisibleLists(s.Lists, s.HiddenLists, s.IsReorderMode)
}

func (o *ListOverview) setError(err error) {
	o.logger.Debug("list overview operation failed", slog.String("error", errText(err)))
	o.state.Update(func(s *ListOverviewState) { s.Error = errText(err) })
}
