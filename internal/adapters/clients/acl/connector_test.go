package acl

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/jsamuelsen11/lister-client/internal/platform/httpclient"
)

func TestConnector_CredentialChangeTakesEffectNextCall(t *testing.T) {
	t.Parallel()

	var (
		mu   sync.Mutex
		seen []string
	)
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		seen = append(seen, r.Header.Get("Authorization"))
		mu.Unlock()
		writeJSON(t, w, []string{})
	}))
	defer ts.Close()

	logger := slog.New(slog.DiscardHandler)
	cache := httpclient.NewCache(testClientConfig(), "lister-api", nil, logger)
	conn := NewConnector(cache, logger)
	base := ts.URL + "/"

	calls := []*string{nil, nil, strPtr("one"), strPtr("one"), strPtr("two"), nil}
	for i, token := range calls {
		if _, err := conn.Client(base, token).SearchItems(context.Background()); err != nil {
			t.Fatalf("call %d: SearchItems() error = %v", i, err)
		}
	}

	want := []string{"", "", "Bearer one", "Bearer one", "Bearer two", ""}
	mu.Lock()
	defer mu.Unlock()
	for i := range want {
		if seen[i] != want[i] {
			t.Errorf("call %d Authorization = %q, want %q", i, seen[i], want[i])
		}
	}

	if got := cache.Builds(); got != 4 {
		t.Errorf("Builds() = %d, want 4", got)
	}
}

func TestConnector_Health(t *testing.T) {
	t.Parallel()

	logger := slog.New(slog.DiscardHandler)
	conn := NewConnector(httpclient.NewCache(testClientConfig(), "lister-api", nil, logger), logger)

	if conn.Name() != "lister-api" {
		t.Errorf("Name() = %q, want %q", conn.Name(), "lister-api")
	}
	if err := conn.HealthCheck(context.Background()); err != nil {
		t.Errorf("HealthCheck() = %v, want nil", err)
	}
}
