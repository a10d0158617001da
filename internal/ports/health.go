package ports

import "context"

// HealthChecker is a dependency that `lister health` and the fake server's
// readiness probe can ask about, such as the preference store or the cached
// Lister API client.
type HealthChecker interface {
	// Name labels the check in reports, e.g. "preferences" or "lister-api".
	Name() string

	// HealthCheck returns nil when the dependency is usable. It must return
	// promptly once ctx is done.
	HealthCheck(ctx context.Context) error
}

// HealthRegistry runs a set of HealthCheckers together.
type HealthRegistry interface {
	Register(checker HealthChecker)

	// CheckAll runs every registered check and returns each result by Name;
	// a nil value means healthy.
	CheckAll(ctx context.Context) map[string]error
}
