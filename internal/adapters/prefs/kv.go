// Package prefs is the preference store: typed, observable settings persisted
// in a small key-value backend.
//
// Every key is held in an observe.Value loaded once at Open. Writes go to the
// backend first and are published to subscribers only after they are
// durable, so a Watch channel never reports a value that was not stored.
package prefs

import "context"

// Backend names accepted by config preferences.backend.
const (
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// KV is the string key-value backend under the Store.
type KV interface {
	// Get returns the stored value and whether the key exists.
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Ping(ctx context.Context) error
	Close() error
}
