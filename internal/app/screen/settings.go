package screen

import (
	"context"
	"log/slog"
	"strings"

	"github.com/jsamuelsen11/lister-client/internal/domain/settings"
	"github.com/jsamuelsen11/lister-client/internal/platform/observe"
	"github.com/jsamuelsen11/lister-client/internal/ports"
)

// SettingsForm holds the user-editable preferences. An empty BearerToken
// means "no token".
type SettingsForm struct {
	BaseURL         string
	BearerToken     string
	SuggestionCount int
	PrimaryColor    settings.PrimaryColor
	UseMaterialYou  bool
	FontSize        settings.FontSize
	UseCompactMode  bool
}

// SettingsState is the settings screen.
type SettingsState struct {
	SettingsForm
	IsSaving bool
	Error    string
}

// Settings drives the settings screen.
type Settings struct {
	prefs    ports.Preferences
	logger   *slog.Logger
	launcher *Launcher
	state    *observe.Value[SettingsState]
}

// NewSettings creates the holder with the form showing defaults until Load.
// Launched operations keep ctx's values.
func NewSettings(ctx context.Context, prefs ports.Preferences, logger *slog.Logger) *Settings {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Settings{
		prefs:    prefs,
		logger:   logger,
		launcher: NewLauncher(ctx, logger),
		state:    observe.NewValue(SettingsState{SettingsForm: formFrom(settings.Default())}),
	}
}

// State returns the current snapshot.
func (s *Settings) State() SettingsState { return s.state.Get() }

// Watch streams snapshots until ctx is done.
func (s *Settings) Watch(ctx context.Context) <-chan SettingsState {
	return s.state.Subscribe(ctx)
}

// Wait blocks until the launched operations finish and returns their errors.
func (s *Settings) Wait() error { return s.launcher.Wait() }

// Close waits like Wait.
func (s *Settings) Close() error { return s.launcher.Close() }

// Load fills the form from the stored preferences.
func (s *Settings) Load(ctx context.Context) error {
	current, err := s.prefs.Snapshot(ctx)
	if err != nil {
		s.setError(ctx, err)
		return err
	}
	s.state.Update(func(st *SettingsState) {
		st.SettingsForm = formFrom(current)
		st.Error = ""
	})
	return nil
}

// Save writes the form fields one key at a time and reloads the form with
// the values as stored. It stops at the first failure. The list order and
// hidden lists are not form fields and are never written here.
func (s *Settings) Save(ctx context.Context, form SettingsForm) error {
	s.state.Update(func(st *SettingsState) {
		st.IsSaving = true
		st.Error = ""
	})
	defer s.state.Update(func(st *SettingsState) { st.IsSaving = false })

	if err := s.write(ctx, form); err != nil {
		s.setError(ctx, err)
		return err
	}
	return s.Load(ctx)
}

// LaunchLoad starts Load and returns at once.
func (s *Settings) LaunchLoad() {
	s.launcher.Launch("load-settings", s.Load)
}

// LaunchSave starts Save and returns at once.
func (s *Settings) LaunchSave(form SettingsForm) {
	s.launcher.Launch("save-settings", func(ctx context.Context) error {
		return s.Save(ctx, form)
	})
}

func (s *Settings) write(ctx context.Context, form SettingsForm) error {
	var token *string
	if strings.TrimSpace(form.BearerToken) != "" {
		token = &form.BearerToken
	}
	padding := settings.PaddingNormal
	if form.UseCompactMode {
		padding = settings.PaddingCompact
	}

	steps := []func() error{
		func() error { return s.prefs.SetBaseURL(ctx, form.BaseURL) },
		func() error { return s.prefs.SetBearerToken(ctx, token) },
		func() error { return s.prefs.SetSuggestionCount(ctx, form.SuggestionCount) },
		func() error { return s.prefs.SetPrimaryColor(ctx, form.PrimaryColor) },
		func() error { return s.prefs.SetUseMaterialYou(ctx, form.UseMaterialYou) },
		func() error { return s.prefs.SetFontSize(ctx, form.FontSize) },
		func() error { return s.prefs.SetPaddingMode(ctx, padding) },
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}
	return nil
}

func (s *Settings) setError(ctx context.Context, err error) {
	s.logger.ErrorContext(ctx, "settings operation failed", slog.String("error", err.Error()))
	s.state.Update(func(st *SettingsState) { st.Error = err.Error() })
}

func formFrom(st settings.Settings) SettingsForm {
	form := SettingsForm{
		BaseURL:         st.BaseURL,
		SuggestionCount: st.SuggestionCount,
		PrimaryColor:    st.PrimaryColor,
		UseMaterialYou:  st.UseMaterialYou,
		FontSize:        st.FontSize,
		UseCompactMode:  st.PaddingMode == settings.PaddingCompact,
	}
	if st.BearerToken != nil {
		form.BearerToken = *st.BearerToken
	}
	return form
}
