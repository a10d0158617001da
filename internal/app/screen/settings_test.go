package screen

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/lister-client/internal/adapters/prefs"
	"github.com/jsamuelsen11/lister-client/internal/domain/settings"
	"github.com/jsamuelsen11/lister-client/mocks"
)

func TestSettings_LoadShowsStoredValues(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := newStore(t)
	if err := store.SetBaseURL(ctx, "https://lister.example"); err != nil {
		t.Fatalf("SetBaseURL() error = %v", err)
	}
	if err := store.SetPaddingMode(ctx, settings.PaddingCompact); err != nil {
		t.Fatalf("SetPaddingMode() error = %v", err)
	}

	s := NewSettings(ctx, store, discardLogger())
	if got := s.State().SuggestionCount; got != settings.DefaultSuggestionCount {
		t.Errorf("SuggestionCount before Load = %d, want default", got)
	}

	if err := s.Load(ctx); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	st := s.State()
	if st.BaseURL != "https://lister.example/" {
		t.Errorf("BaseURL = %q, want trailing slash", st.BaseURL)
	}
	if st.BearerToken != "" {
		t.Errorf("BearerToken = %q, want empty for no token", st.BearerToken)
	}
	if !st.UseCompactMode {
		t.Error("UseCompactMode = false for compact padding")
	}
}

func TestSettings_SaveWritesFormAndKeepsListPreferences(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := newStore(t)
	if err := store.SetListOrder(ctx, map[int]int{4: 0}); err != nil {
		t.Fatalf("SetListOrder() error = %v", err)
	}
	if err := store.SetHiddenLists(ctx, map[int]struct{}{2: {}}); err != nil {
		t.Fatalf("SetHiddenLists() error = %v", err)
	}
	if err := store.SetBearerToken(ctx, strPtr("old")); err != nil {
		t.Fatalf("SetBearerToken() error = %v", err)
	}

	s := NewSettings(ctx, store, discardLogger())
	form := SettingsForm{
		BaseURL:         "http://10.0.0.2:8000",
		BearerToken:     "   ",
		SuggestionCount: 250,
		PrimaryColor:    settings.Teal,
		UseMaterialYou:  true,
		FontSize:        settings.FontLarge,
		UseCompactMode:  true,
	}
	if err := s.Save(ctx, form); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	got, _ := store.Snapshot(ctx)
	if got.BaseURL != "http://10.0.0.2:8000/" {
		t.Errorf("BaseURL = %q", got.BaseURL)
	}
	if got.BearerToken != nil {
		t.Errorf("BearerToken = %q, want nil for blank input", *got.BearerToken)
	}
	if got.SuggestionCount != settings.MaxSuggestionCount {
		t.Errorf("SuggestionCount = %d, want clamped to %d", got.SuggestionCount, settings.MaxSuggestionCount)
	}
	if got.PrimaryColor != settings.Teal || !got.UseMaterialYou || got.FontSize != settings.FontLarge {
		t.Errorf("appearance = %v %v %v", got.PrimaryColor, got.UseMaterialYou, got.FontSize)
	}
	if got.PaddingMode != settings.PaddingCompact {
		t.Errorf("PaddingMode = %v, want COMPACT", got.PaddingMode)
	}
	if got.ListOrder[4] != 0 || len(got.ListOrder) != 1 {
		t.Errorf("ListOrder = %v, want untouched", got.ListOrder)
	}
	if _, ok := got.HiddenLists[2]; !ok {
		t.Errorf("HiddenLists = %v, want untouched", got.HiddenLists)
	}

	st := s.State()
	if st.IsSaving {
		t.Error("IsSaving = true after Save")
	}
	if st.SuggestionCount != settings.MaxSuggestionCount {
		t.Errorf("form SuggestionCount = %d, want stored value", st.SuggestionCount)
	}
}

func TestSettings_SaveFailure(t *testing.T) {
	t.Parallel()

	boom := errors.New("disk full")
	mockPrefs := mocks.NewMockPreferences(t)
	mockPrefs.EXPECT().SetBaseURL(mock.Anything, "http://x").Return(nil).Once()
	mockPrefs.EXPECT().SetBearerToken(mock.Anything, (*string)(nil)).Return(boom).Once()

	s := NewSettings(context.Background(), mockPrefs, discardLogger())
	if err := s.Save(context.Background(), SettingsForm{BaseURL: "http://x"}); !errors.Is(err, boom) {
		t.Fatalf("Save() error = %v, want %v", err, boom)
	}
	st := s.State()
	if st.Error != "disk full" || st.IsSaving {
		t.Errorf("state = {Error: %q, IsSaving: %v}", st.Error, st.IsSaving)
	}
}

func TestSettings_SaveKeepsListChangesMadeAfterLoad(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	kv := prefs.NewMemory()
	open := func() *prefs.Store {
		st, err := prefs.New(ctx, kv, discardLogger(), nil)
		if err != nil {
			t.Fatalf("prefs.New() error = %v", err)
		}
		return st
	}

	mine := open()
	s := NewSettings(ctx, mine, discardLogger())
	if err := s.Load(ctx); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	// Another process hides a list and reorders while the form is open.
	other := open()
	if err := other.SetHiddenLists(ctx, map[int]struct{}{3: {}}); err != nil {
		t.Fatalf("SetHiddenLists() error = %v", err)
	}
	if err := other.SetListOrder(ctx, map[int]int{2: 0, 1: 1}); err != nil {
		t.Fatalf("SetListOrder() error = %v", err)
	}

	form := s.State().SettingsForm
	form.SuggestionCount = 9
	if err := s.Save(ctx, form); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	got, _ := open().Snapshot(ctx)
	if _, ok := got.HiddenLists[3]; !ok || len(got.HiddenLists) != 1 {
		t.Errorf("HiddenLists = %v, want {3}", got.HiddenLists)
	}
	if got.ListOrder[2] != 0 || got.ListOrder[1] != 1 {
		t.Errorf("ListOrder = %v, want {2:0 1:1}", got.ListOrder)
	}
	if got.SuggestionCount != 9 {
		t.Errorf("SuggestionCount = %d, want 9", got.SuggestionCount)
	}
}

func TestSettings_LaunchSaveOutlivesCaller(t *testing.T) {
	t.Parallel()

	caller, cancel := context.WithCancel(context.Background())
	store := newStore(t)
	s := NewSettings(caller, store, discardLogger())

	s.LaunchLoad()
	if err := s.Wait(); err != nil {
		t.Fatalf("Wait() after load error = %v", err)
	}
	cancel()

	form := s.State().SettingsForm
	form.BaseURL = "http://10.0.0.2:8000"
	s.LaunchSave(form)
	if err := s.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	if got, _ := store.BaseURL(context.Background()); got != "http://10.0.0.2:8000/" {
		t.Errorf("stored BaseURL = %q", got)
	}
	if st := s.State(); st.BaseURL != "http://10.0.0.2:8000/" || st.IsSaving {
		t.Errorf("state = {BaseURL: %q, IsSaving: %v}", st.BaseURL, st.IsSaving)
	}
}
