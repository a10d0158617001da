package prefs

import (
	"context"
	"log/slog"
	"maps"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/jsamuelsen11/lister-client/internal/domain/settings"
	"github.com/jsamuelsen11/lister-client/internal/platform/config"
)

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func newMemoryStore(t *testing.T, seed map[string]string) (*Store, *Memory) {
	t.Helper()

	kv := NewMemory()
	for k, v := range seed {
		if err := kv.Set(context.Background(), k, v); err != nil {
			t.Fatalf("seeding %s: %v", k, err)
		}
	}
	s, err := New(context.Background(), kv, testLogger(), nil)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return s, kv
}

func strPtr(s string) *string { return &s }

func TestStore_Defaults(t *testing.T) {
	t.Parallel()

	s, _ := newMemoryStore(t, nil)

	got, err := s.Snapshot(context.Background())
	if err != nil {
		t.Fatalf("Snapshot() error = %v", err)
	}

	if got.BaseURL != "" {
		t.Errorf("BaseURL = %q, want empty", got.BaseURL)
	}
	if got.BearerToken != nil {
		t.Errorf("BearerToken = %q, want nil", *got.BearerToken)
	}
	if got.SuggestionCount != 3 {
		t.Errorf("SuggestionCount = %d, want 3", got.SuggestionCount)
	}
	if got.PrimaryColor != settings.Purple {
		t.Errorf("PrimaryColor = %q, want %q", got.PrimaryColor, settings.Purple)
	}
	if got.FontSize != settings.FontMedium {
		t.Errorf("FontSize = %q, want %q", got.FontSize, settings.FontMedium)
	}
	if got.PaddingMode != settings.PaddingNormal {
		t.Errorf("PaddingMode = %q, want %q", got.PaddingMode, settings.PaddingNormal)
	}
	if got.UseMaterialYou {
		t.Error("UseMaterialYou = true, want false")
	}
	if len(got.ListOrder) != 0 || len(got.HiddenLists) != 0 {
		t.Errorf("ListOrder = %v, HiddenLists = %v, want both empty", got.ListOrder, got.HiddenLists)
	}
}

func TestStore_SetBaseURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "appends slash", in: "http://lister.local:8080", want: "http://lister.local:8080/"},
		{name: "keeps existing slash", in: "http://lister.local/api/", want: "http://lister.local/api/"},
		{name: "blank stays blank", in: "", want: ""},
		{name: "whitespace stays as is", in: "   ", want: "   "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s, kv := newMemoryStore(t, nil)
			ctx := context.Background()

			if err := s.SetBaseURL(ctx, tt.in); err != nil {
				t.Fatalf("SetBaseURL() error = %v", err)
			}

			got, _ := s.BaseURL(ctx)
			if got != tt.want {
				t.Errorf("BaseURL() = %q, want %q", got, tt.want)
			}
			stored, _, _ := kv.Get(ctx, KeyBaseURL)
			if stored != tt.want {
				t.Errorf("stored = %q, want %q", stored, tt.want)
			}
		})
	}
}

func TestStore_SetSuggestionCount_Clamps(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   int
		want int
	}{
		{in: -5, want: 0},
		{in: 0, want: 0},
		{in: 42, want: 42},
		{in: 100, want: 100},
		{in: 250, want: 100},
	}

	for _, tt := range tests {
		t.Run(strconv.Itoa(tt.in), func(t *testing.T) {
			t.Parallel()

			s, _ := newMemoryStore(t, nil)
			if err := s.SetSuggestionCount(context.Background(), tt.in); err != nil {
				t.Fatalf("SetSuggestionCount() error = %v", err)
			}
			if got, _ := s.SuggestionCount(context.Background()); got != tt.want {
				t.Errorf("SuggestionCount() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestStore_SetBearerToken(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		token     *string
		wantKey   bool
		wantToken *string
	}{
		{name: "stores token", token: strPtr("abc123"), wantKey: true, wantToken: strPtr("abc123")},
		{name: "nil deletes key", token: nil, wantKey: false},
		{name: "empty deletes key", token: strPtr(""), wantKey: false},
		{name: "blank deletes key", token: strPtr("  \t"), wantKey: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s, kv := newMemoryStore(t, map[string]string{KeyBearerToken: "previous"})
			ctx := context.Background()

			if err := s.SetBearerToken(ctx, tt.token); err != nil {
				t.Fatalf("SetBearerToken() error = %v", err)
			}

			_, ok, _ := kv.Get(ctx, KeyBearerToken)
			if ok != tt.wantKey {
				t.Errorf("key present = %v, want %v", ok, tt.wantKey)
			}

			got, _ := s.BearerToken(ctx)
			switch {
			case tt.wantToken == nil && got != nil:
				t.Errorf("BearerToken() = %q, want nil", *got)
			case tt.wantToken != nil && (got == nil || *got != *tt.wantToken):
				t.Errorf("BearerToken() = %v, want %q", got, *tt.wantToken)
			}
		})
	}
}

func TestStore_CorruptValuesFallBack(t *testing.T) {
	t.Parallel()

	s, _ := newMemoryStore(t, map[string]string{
		KeySuggestionCount: "lots",
		KeyPrimaryColor:    "PINK",
		KeyListOrder:       "1:x,2:3,garbage",
		KeyHiddenLists:     "1,a,,3",
		KeyUseMaterialYou:  "maybe",
		KeyFontSize:        "HUGE",
		KeyPaddingMode:     "",
	})

	got, err := s.Snapshot(context.Background())
	if err != nil {
		t.Fatalf("Snapshot() error = %v", err)
	}

	if got.SuggestionCount != settings.DefaultSuggestionCount {
		t.Errorf("SuggestionCount = %d, want default", got.SuggestionCount)
	}
	if got.PrimaryColor != settings.Purple {
		t.Errorf("PrimaryColor = %q, want %q", got.PrimaryColor, settings.Purple)
	}
	if !maps.Equal(got.ListOrder, map[int]int{2: 3}) {
		t.Errorf("ListOrder = %v, want map[2:3]", got.ListOrder)
	}
	if !maps.Equal(got.HiddenLists, map[int]struct{}{1: {}, 3: {}}) {
		t.Errorf("HiddenLists = %v, want {1,3}", got.HiddenLists)
	}
	if got.UseMaterialYou {
		t.Error("UseMaterialYou = true, want false")
	}
	if got.FontSize != settings.FontMedium {
		t.Errorf("FontSize = %q, want %q", got.FontSize, settings.FontMedium)
	}
	if got.PaddingMode != settings.PaddingNormal {
		t.Errorf("PaddingMode = %q, want %q", got.PaddingMode, settings.PaddingNormal)
	}
}

func TestStore_ListOrderRoundTrip(t *testing.T) {
	t.Parallel()

	s, kv := newMemoryStore(t, nil)
	ctx := context.Background()

	if err := s.SetListOrder(ctx, map[int]int{1: 0, 2: 1}); err != nil {
		t.Fatalf("SetListOrder() error = %v", err)
	}

	got, _ := s.ListOrder(ctx)
	if !maps.Equal(got, map[int]int{1: 0, 2: 1}) {
		t.Errorf("ListOrder() = %v, want map[1:0 2:1]", got)
	}
	if raw, _, _ := kv.Get(ctx, KeyListOrder); raw != "1:0,2:1" {
		t.Errorf("stored = %q, want %q", raw, "1:0,2:1")
	}
}

func TestStore_WatchEmitsCurrentThenChanges(t *testing.T) {
	t.Parallel()

	s, _ := newMemoryStore(t, map[string]string{KeySuggestionCount: "7"})

	ctx, cancel := context.WithCancel(context.Background())
	ch := s.WatchSuggestionCount(ctx)

	if got := <-ch; got != 7 {
		t.Fatalf("first value = %d, want 7", got)
	}

	if err := s.SetSuggestionCount(context.Background(), 12); err != nil {
		t.Fatalf("SetSuggestionCount() error = %v", err)
	}

	select {
	case got := <-ch:
		if got != 12 {
			t.Errorf("second value = %d, want 12", got)
		}
	case <-time.After(time.Second):
		t.Fatal("no value after write")
	}

	cancel()

	select {
	case _, ok := <-ch:
		if ok {
			// A value published before cancel may still be buffered.
			if _, ok = <-ch; ok {
				t.Error("channel still open after cancel")
			}
		}
	case <-time.After(time.Second):
		t.Fatal("channel not closed after cancel")
	}
}

func TestStore_WatchersAreIndependent(t *testing.T) {
	t.Parallel()

	s, _ := newMemoryStore(t, nil)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	a := s.WatchHiddenLists(ctx)
	b := s.WatchHiddenLists(ctx)
	<-a
	<-b

	if err := s.SetHiddenLists(context.Background(), map[int]struct{}{4: {}}); err != nil {
		t.Fatalf("SetHiddenLists() error = %v", err)
	}

	for name, ch := range map[string]<-chan map[int]struct{}{"a": a, "b": b} {
		select {
		case got := <-ch:
			if _, ok := got[4]; !ok || len(got) != 1 {
				t.Errorf("watcher %s got %v, want {4}", name, got)
			}
		case <-time.After(time.Second):
			t.Fatalf("watcher %s got nothing", name)
		}
	}
}

func TestStore_Snapshot(t *testing.T) {
	t.Parallel()

	s, _ := newMemoryStore(t, nil)
	ctx := context.Background()

	listOrder := map[int]int{3: 0, 1: 1}
	steps := []func() error{
		func() error { return s.SetBaseURL(ctx, "https://lister.example.com") },
		func() error { return s.SetBearerToken(ctx, strPtr("tok")) },
		func() error { return s.SetSuggestionCount(ctx, 500) },
		func() error { return s.SetPrimaryColor(ctx, settings.Teal) },
		func() error { return s.SetListOrder(ctx, listOrder) },
		func() error { return s.SetHiddenLists(ctx, map[int]struct{}{2: {}}) },
		func() error { return s.SetUseMaterialYou(ctx, true) },
		func() error { return s.SetFontSize(ctx, settings.FontLarge) },
		func() error { return s.SetPaddingMode(ctx, settings.PaddingCompact) },
	}
	for i, step := range steps {
		if err := step(); err != nil {
			t.Fatalf("step %d error = %v", i, err)
		}
	}

	got, err := s.Snapshot(ctx)
	if err != nil {
		t.Fatalf("Snapshot() error = %v", err)
	}

	if got.BaseURL != "https://lister.example.com/" {
		t.Errorf("BaseURL = %q", got.BaseURL)
	}
	if got.BearerToken == nil || *got.BearerToken != "tok" {
		t.Errorf("BearerToken = %v, want tok", got.BearerToken)
	}
	if got.SuggestionCount != 100 {
		t.Errorf("SuggestionCount = %d, want 100", got.SuggestionCount)
	}
	if got.PrimaryColor != settings.Teal || got.FontSize != settings.FontLarge || got.PaddingMode != settings.PaddingCompact {
		t.Errorf("enums = %q %q %q", got.PrimaryColor, got.FontSize, got.PaddingMode)
	}
	if !got.UseMaterialYou {
		t.Error("UseMaterialYou = false, want true")
	}
	if !maps.Equal(got.ListOrder, listOrder) {
		t.Errorf("ListOrder = %v, want %v", got.ListOrder, listOrder)
	}
	if _, ok := got.HiddenLists[2]; !ok || len(got.HiddenLists) != 1 {
		t.Errorf("HiddenLists = %v, want {2}", got.HiddenLists)
	}

	got.ListOrder[99] = 99
	again, _ := s.Snapshot(ctx)
	if _, leaked := again.ListOrder[99]; leaked {
		t.Error("Snapshot map shares state with the store")
	}
}

func TestStore_SQLitePersists(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "preferences.db")
	cfg := config.PreferencesConfig{Backend: BackendSQLite, Path: path}

	s, err := Open(ctx, cfg, testLogger(), nil)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if err := s.SetBaseURL(ctx, "http://10.0.0.2:5000"); err != nil {
		t.Fatalf("SetBaseURL() error = %v", err)
	}
	if err := s.SetBearerToken(ctx, strPtr("persisted")); err != nil {
		t.Fatalf("SetBearerToken() error = %v", err)
	}
	if err := s.SetHiddenLists(ctx, map[int]struct{}{5: {}, 9: {}}); err != nil {
		t.Fatalf("SetHiddenLists() error = %v", err)
	}
	if err := s.HealthCheck(ctx); err != nil {
		t.Errorf("HealthCheck() = %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	reopened, err := Open(ctx, cfg, testLogger(), nil)
	if err != nil {
		t.Fatalf("reopen error = %v", err)
	}
	t.Cleanup(func() { _ = reopened.Close() })

	got, _ := reopened.Snapshot(ctx)
	if got.BaseURL != "http://10.0.0.2:5000/" {
		t.Errorf("BaseURL = %q", got.BaseURL)
	}
	if got.BearerToken == nil || *got.BearerToken != "persisted" {
		t.Errorf("BearerToken = %v, want persisted", got.BearerToken)
	}
	if !maps.Equal(got.HiddenLists, map[int]struct{}{5: {}, 9: {}}) {
		t.Errorf("HiddenLists = %v, want {5,9}", got.HiddenLists)
	}
}

func TestSQLite_DeleteMissingKey(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	kv, err := OpenSQLite(ctx, filepath.Join(t.TempDir(), "p.db"))
	if err != nil {
		t.Fatalf("OpenSQLite() error = %v", err)
	}
	t.Cleanup(func() { _ = kv.Close() })

	if err := kv.Delete(ctx, "absent"); err != nil {
		t.Errorf("Delete() error = %v", err)
	}
	if _, ok, err := kv.Get(ctx, "absent"); ok || err != nil {
		t.Errorf("Get() = ok %v err %v, want missing", ok, err)
	}
}

func TestOpen_UnsupportedBackend(t *testing.T) {
	t.Parallel()

	_, err := Open(context.Background(), config.PreferencesConfig{Backend: "etcd"}, testLogger(), nil)
	if err == nil {
		t.Fatal("Open() = nil error, want unsupported backend")
	}
}

func TestStore_Name(t *testing.T) {
	t.Parallel()

	s, _ := newMemoryStore(t, nil)
	if s.Name() != "preferences" {
		t.Errorf("Name() = %q, want preferences", s.Name())
	}
	if err := s.HealthCheck(context.Background()); err != nil {
		t.Errorf("HealthCheck() = %v, want nil", err)
	}
}
