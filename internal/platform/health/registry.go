// Package health provides a thread-safe health check registry. The `lister
// health` command uses it to report whether the preference store, the API
// client and the configured server are usable.
package health

import (
	"cmp"
	"context"
	"slices"
	"sync"

	"github.com/jsamuelsen11/lister-client/internal/ports"
)

// Compile-time interface check.
var _ ports.HealthRegistry = (*Registry)(nil)

// Registry is a thread-safe implementation of [ports.HealthRegistry].
type Registry struct {
	mu       sync.RWMutex
	checkers []ports.HealthChecker
}

// Status is the outcome of one named check.
type Status struct {
	Name string
	Err  error
}

// New creates an empty health check registry.
func New() *Registry {
	return &Registry{}
}

// Register adds a health checker to the registry. Safe for concurrent use.
func (r *Registry) Register(checker ports.HealthChecker) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.checkers = append(r.checkers, checker)
}

// CheckAll executes all registered health checks and returns results keyed by
// checker name. Nil values indicate healthy components. The slice is copied
// under a read lock so checks run without holding the lock.
func (r *Registry) CheckAll(ctx context.Context) map[string]error {
	r.mu.RLock()
	checkers := slices.Clone(r.checkers)
	r.mu.RUnlock()

	results := make(map[string]error, len(checkers))
	for _, c := range checkers {
		results[c.Name()] = c.HealthCheck(ctx)
	}
	return results
}

// Report runs every check and returns the results sorted by name, plus
// whether all of them passed.
func Report(ctx context.Context, reg ports.HealthRegistry) ([]Status, bool) {
	results := reg.CheckAll(ctx)

	statuses := make([]Status, 0, len(results))
	healthy := true
	for name, err := range results {
		statuses = append(statuses, Status{Name: name, Err: err})
		if err != nil {
			healthy = false
		}
	}
	slices.SortFunc(statuses, func(a, b Status) int { return cmp.Compare(a.Name, b.Name) })
	return statuses, healthy
}
