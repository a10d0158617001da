package prefs

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

var _ KV = (*SQLite)(nil)

// SQLite is a KV persisted in a single-table SQLite database.
type SQLite struct {
	db   *sql.DB
	path string
}

// DefaultPath is the database location used when preferences.path is empty:
// lister/preferences.db under the user's config directory.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolving user config dir: %w", err)
	}
	return filepath.Join(dir, "lister", "preferences.db"), nil
}

// OpenSQLite opens (creating if needed) the database at path.
func OpenSQLite(ctx context.Context, path string) (*SQLite, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("creating preferences dir: %w", err)
	}

	// modernc.org/sqlite driver name is "sqlite".
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening preferences db: %w", err)
	}

	// WAL lets a running fake server and a CLI invocation share the file.
	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA busy_timeout=5000;",
	}
	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("applying %q: %w", p, err)
		}
	}

	const schema = `CREATE TABLE IF NOT EXISTS preferences (
		k TEXT PRIMARY KEY,
		v TEXT NOT NULL
	);`
	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating preferences table: %w", err)
	}

	return &SQLite{db: db, path: path}, nil
}

// Path returns the database file location.
func (k *SQLite) Path() string {
	return k.path
}

func (k *SQLite) Get(ctx context.Context, key string) (string, bool, error) {
	var v string
	err := k.db.QueryRowContext(ctx, `SELECT v FROM preferences WHERE k = ?`, key).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("reading preference %q: %w", key, err)
	}
	return v, true, nil
}

func (k *SQLite) Set(ctx context.Context, key, value string) error {
	if _, err := k.db.ExecContext(ctx, `INSERT OR REPLACE INTO preferences(k, v) VALUES(?, ?)`, key, value); err != nil {
		return fmt.Errorf("writing preference %q: %w", key, err)
	}
	return nil
}

func (k *SQLite) Delete(ctx context.Context, key string) error {
	if _, err := k.db.ExecContext(ctx, `DELETE FROM preferences WHERE k = ?`, key); err != nil {
		return fmt.Errorf("deleting preference %q: %w", key, err)
	}
	return nil
}

func (k *SQLite) Ping(ctx context.Context) error {
	return k.db.PingContext(ctx)
}

func (k *SQLite) Close() error {
	return k.db.Close()
}
