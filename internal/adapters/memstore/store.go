// Package memstore is an in-memory Lister service. It backs the development
// fake server and implements the same operations the REST client exposes,
// so handlers can be tested against either.
package memstore

import (
	"cmp"
	"context"
	"fmt"
	"maps"
	"slices"
	"strings"
	"sync"

	"github.com/jsamuelsen11/lister-client/internal/domain"
	"github.com/jsamuelsen11/lister-client/internal/domain/shopping"
	"github.com/jsamuelsen11/lister-client/internal/ports"
)

// Compile-time check that Store implements ports.ListerAPI.
var _ ports.ListerAPI = (*Store)(nil)

// Store holds lists, items and categories in memory. Items reference their
// category by name; naming an unknown category on an item creates it.
// Deleting a list deletes its items. Renaming a category renames it on every
// item. Deleting a category that still tags items is a conflict.
type Store struct {
	mu         sync.RWMutex
	nextID     int
	lists      map[int]shopping.List
	items      map[int]shopping.Item
	categories map[int]shopping.Category

	// mappings remembers the last category given to each item name.
	mappings map[string]*string
}

// New creates an empty Store.
func New() *Store {
	return &Store{
		nextID:     1,
		lists:      make(map[int]shopping.List),
		items:      make(map[int]shopping.Item),
		categories: make(map[int]shopping.Category),
		mappings:   make(map[string]*string),
	}
}

// NewSeeded creates a Store holding a small grocery data set.
func NewSeeded() *Store {
	s := New()
	ctx := context.Background()

	groceries, _ := s.CreateList(ctx, "Groceries")
	hardware, _ := s.CreateList(ctx, "Hardware store")
	_, _ = s.CreateList(ctx, "Party")

	seed := []struct {
		list     int
		name     string
		amount   float64
		unit     string
		category string
	}{
		{groceries.ID, "Milk", 2, "l", "Dairy"},
		{groceries.ID, "Cheese", 200, "g", "Dairy"},
		{groceries.ID, "Apples", 6, "", "Fruit"},
		{groceries.ID, "Bread", 1, "", "Bakery"},
		{hardware.ID, "Screws", 50, "", "Tools"},
	}
	for _, it := range seed {
		draft := shopping.ItemDraft{Name: it.name, Amount: &it.amount, Category: &it.category}
		if it.unit != "" {
			draft.AmountUnit = &it.unit
		}
		_, _ = s.CreateItem(ctx, it.list, draft)
	}
	return s
}

func (s *Store) allocID() int {
	id := s.nextID
	s.nextID++
	return id
}

func notFound(kind string, id int) error {
	return fmt.Errorf("%s %d: %w", kind, id, domain.ErrNotFound)
}

func sortedValues[V any](m map[int]V, id func(V) int) []V {
	out := slices.Collect(maps.Values(m))
	slices.SortFunc(out, func(a, b V) int { return cmp.Compare(id(a), id(b)) })
	return out
}

// --- Lists ---

func (s *Store) GetLists(context.Context) ([]shopping.ListWithCount, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	counts := make(map[int]int, len(s.lists))
	for _, it := range s.items {
		counts[it.ListID]++
	}

	lists := sortedValues(s.lists, func(l shopping.List) int { return l.ID })
	out := make([]shopping.ListWithCount, len(lists))
	for i, l := range lists {
		n := counts[l.ID]
		out[i] = shopping.ListWithCount{ID: l.ID, Name: l.Name, Count: &n}
	}
	return out, nil
}

func (s *Store) GetList(_ context.Context, id int) (shopping.List, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	l, ok := s.lists[id]
	if !ok {
		return shopping.List{}, notFound("list", id)
	}
	return l, nil
}

func (s *Store) CreateList(_ context.Context, name string) (shopping.List, error) {
	name = strings.TrimSpace(name)
	if err := shopping.ValidateName(name); err != nil {
		return shopping.List{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	l := shopping.List{ID: s.allocID(), Name: name}
	s.lists[l.ID] = l
	return l, nil
}

func (s *Store) UpdateList(_ context.Context, id int, name string) (shopping.List, error) {
	name = strings.TrimSpace(name)
	if err := shopping.ValidateName(name); err != nil {
		return shopping.List{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	l, ok := s.lists[id]
	if !ok {
		return shopping.List{}, notFound("list", id)
	}
	l.Name = name
	s.lists[id] = l
	return l, nil
}

// DeleteList removes a list together with its items.
func (s *Store) DeleteList(_ context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.lists[id]; !ok {
		return notFound("list", id)
	}
	delete(s.lists, id)
	maps.DeleteFunc(s.items, func(_ int, it shopping.Item) bool { return it.ListID == id })
	return nil
}

// --- Items ---

func (s *Store) GetItems(_ context.Context, listID int) ([]shopping.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.lists[listID]; !ok {
		return nil, notFound("list", listID)
	}
	out := []shopping.Item{}
	for _, it := range sortedValues(s.items, func(it shopping.Item) int { return it.ID }) {
		if it.ListID == listID {
			out = append(out, it)
		}
	}
	return out, nil
}

func (s *Store) GetItem(_ context.Context, id int) (shopping.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	it, ok := s.items[id]
	if !ok {
		return shopping.Item{}, notFound("item", id)
	}
	return it, nil
}

func (s *Store) CreateItem(_ context.Context, listID int, draft shopping.ItemDraft) (shopping.Item, error) {
	draft = draft.Normalize()
	if err := draft.Validate(); err != nil {
		return shopping.Item{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.lists[listID]; !ok {
		return shopping.Item{}, notFound("list", listID)
	}
	it := shopping.Item{ID: s.allocID(), ListID: listID}
	s.applyDraftLocked(&it, draft)
	s.items[it.ID] = it
	return it, nil
}

func (s *Store) UpdateItem(_ context.Context, id int, draft shopping.ItemDraft) (shopping.Item, error) {
	draft = draft.Normalize()
	if err := draft.Validate(); err != nil {
		return shopping.Item{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	it, ok := s.items[id]
	if !ok {
		return shopping.Item{}, notFound("item", id)
	}
	s.applyDraftLocked(&it, draft)
	s.items[id] = it
	return it, nil
}

// applyDraftLocked copies draft onto it, registering the category and the
// item name's mapping.
func (s *Store) applyDraftLocked(it *shopping.Item, draft shopping.ItemDraft) {
	it.Name = draft.Name
	it.Amount = draft.Amount
	it.AmountUnit = draft.AmountUnit
	it.Category = draft.Category

	if draft.Category != nil && !s.hasCategoryLocked(*draft.Category) {
		c := shopping.Category{ID: s.allocID(), Name: *draft.Category}
		s.categories[c.ID] = c
	}
	s.mappings[draft.Name] = draft.Category
}

func (s *Store) DeleteItem(_ context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[id]; !ok {
		return notFound("item", id)
	}
	delete(s.items, id)
	return nil
}

func (s *Store) ToggleItemCart(_ context.Context, id int) (shopping.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	it, ok := s.items[id]
	if !ok {
		return shopping.Item{}, notFound("item", id)
	}
	it.InCart = !it.InCart
	s.items[id] = it
	return it, nil
}

// --- Categories ---

func (s *Store) GetCategories(context.Context) ([]shopping.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return sortedValues(s.categories, func(c shopping.Category) int { return c.ID }), nil
}

func (s *Store) GetCategory(_ context.Context, id int) (shopping.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.categories[id]
	if !ok {
		return shopping.Category{}, notFound("category", id)
	}
	return c, nil
}

func (s *Store) CreateCategory(_ context.Context, name string) (shopping.Category, error) {
	name = strings.TrimSpace(name)
	if err := shopping.ValidateName(name); err != nil {
		return shopping.Category{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.hasCategoryLocked(name) {
		return shopping.Category{}, fmt.Errorf("category %q exists: %w", name, domain.ErrConflict)
	}
	c := shopping.Category{ID: s.allocID(), Name: name}
	s.categories[c.ID] = c
	return c, nil
}

// UpdateCategory renames a category and every item and mapping using it.
func (s *Store) UpdateCategory(_ context.Context, id int, name string) (shopping.Category, error) {
	name = strings.TrimSpace(name)
	if err := shopping.ValidateName(name); err != nil {
		return shopping.Category{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.categories[id]
	if !ok {
		return shopping.Category{}, notFound("category", id)
	}
	if c.Name != name && s.hasCategoryLocked(name) {
		return shopping.Category{}, fmt.Errorf("category %q exists: %w", name, domain.ErrConflict)
	}

	old := c.Name
	c.Name = name
	s.categories[id] = c

	for itemID, it := range s.items {
		if it.Category != nil && *it.Category == old {
			it.Category = &name
			s.items[itemID] = it
		}
	}
	for item, cat := range s.mappings {
		if cat != nil && *cat == old {
			s.mappings[item] = &name
		}
	}
	return c, nil
}

// DeleteCategory removes an unused category.
func (s *Store) DeleteCategory(_ context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.categories[id]
	if !ok {
		return notFound("category", id)
	}
	for _, it := range s.items {
		if it.Category != nil && *it.Category == c.Name {
			return fmt.Errorf("category %q: %w", c.Name, domain.ErrConflict)
		}
	}
	delete(s.categories, id)
	for item, cat := range s.mappings {
		if cat != nil && *cat == c.Name {
			s.mappings[item] = nil
		}
	}
	return nil
}

func (s *Store) hasCategoryLocked(name string) bool {
	for _, c := range s.categories {
		if c.Name == name {
			return true
		}
	}
	return false
}

// --- Search ---

// SearchItems returns every item name ever stored, sorted.
func (s *Store) SearchItems(context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Sorted(maps.Keys(s.mappings)), nil
}

func (s *Store) GetCategoryMappings(context.Context) (map[string]*string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return maps.Clone(s.mappings), nil
}

// Name identifies the store in health reports.
func (s *Store) Name() string { return "lister-store" }

// HealthCheck always succeeds unless ctx is done.
func (s *Store) HealthCheck(ctx context.Context) error {
	return ctx.Err()
}
