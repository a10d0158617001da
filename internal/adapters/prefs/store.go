package prefs

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"strconv"
	"sync"

	"go.opentelemetry.io/otel/metric"

	"github.com/jsamuelsen11/lister-client/internal/domain/settings"
	"github.com/jsamuelsen11/lister-client/internal/platform/config"
	"github.com/jsamuelsen11/lister-client/internal/platform/observe"
	"github.com/jsamuelsen11/lister-client/internal/platform/telemetry"
	"github.com/jsamuelsen11/lister-client/internal/ports"
)

// Stored key names.
const (
	KeyBaseURL         = "base_url"
	KeyBearerToken     = "bearer_token"
	KeySuggestionCount = "suggestion_count"
	KeyPrimaryColor    = "primary_color"
	KeyListOrder       = "list_order"
	KeyHiddenLists     = "hidden_lists"
	KeyUseMaterialYou  = "use_material_you"
	KeyFontSize        = "font_size"
	KeyPaddingMode     = "padding_mode"
)

// Compile-time interface checks.
var (
	_ ports.Preferences   = (*Store)(nil)
	_ ports.HealthChecker = (*Store)(nil)
)

// cell binds one stored key to its observable value. encode applies the
// write transform; keep=false deletes the key instead of storing raw.
// decode never fails: unusable input yields the default.
type cell[T any] struct {
	key    string
	def    T
	value  *observe.Value[T]
	encode func(T) (raw string, keep bool)
	decode func(string) T
}

func newCell[T any](key string, def T, encode func(T) (string, bool), decode func(string) T) *cell[T] {
	return &cell[T]{key: key, def: def, value: observe.NewValue(def), encode: encode, decode: decode}
}

func (c *cell[T]) load(ctx context.Context, kv KV) error {
	raw, ok, err := kv.Get(ctx, c.key)
	if err != nil {
		return err
	}
	if ok {
		c.value.Set(c.decode(raw))
	}
	return nil
}

// Store is the typed preference store. Reads are served from memory; every
// Set returns once the backend has stored the value and subscribers have
// been notified.
//
// Maps delivered by Watch channels and getters are shared between readers
// and must not be modified.
type Store struct {
	kv      KV
	logger  *slog.Logger
	metrics *telemetry.Metrics

	writeMu sync.Mutex

	baseURL         *cell[string]
	bearerToken     *cell[*string]
	suggestionCount *cell[int]
	primaryColor    *cell[settings.PrimaryColor]
	listOrder       *cell[map[int]int]
	hiddenLists     *cell[map[int]struct{}]
	useMaterialYou  *cell[bool]
	fontSize        *cell[settings.FontSize]
	paddingMode     *cell[settings.PaddingMode]
}

// Open builds the backend selected by cfg and loads the store from it.
func Open(ctx context.Context, cfg config.PreferencesConfig, logger *slog.Logger, metrics *telemetry.Metrics) (*Store, error) {
	var kv KV
	switch cfg.Backend {
	case BackendMemory:
		kv = NewMemory()
	case BackendSQLite:
		path := cfg.Path
		if path == "" {
			p, err := DefaultPath()
			if err != nil {
				return nil, err
			}
			path = p
		}
		db, err := OpenSQLite(ctx, path)
		if err != nil {
			return nil, err
		}
		logger.DebugContext(ctx, "preferences opened", slog.String("path", path))
		kv = db
	default:
		return nil, fmt.Errorf("unsupported preferences backend %q", cfg.Backend)
	}

	s, err := New(ctx, kv, logger, metrics)
	if err != nil {
		_ = kv.Close()
		return nil, err
	}
	return s, nil
}

// New loads every key from kv. Missing or corrupt values take their
// defaults. If metrics is nil, metric recording is skipped.
func New(ctx context.Context, kv KV, logger *slog.Logger, metrics *telemetry.Metrics) (*Store, error) {
	def := settings.Default()

	s := &Store{
		kv:      kv,
		logger:  logger,
		metrics: metrics,

		baseURL: newCell(KeyBaseURL, def.BaseURL,
			func(v string) (string, bool) { return settings.NormalizeBaseURL(v), true },
			func(raw string) string { return raw },
		),
		bearerToken: newCell(KeyBearerToken, def.BearerToken,
			func(v *string) (string, bool) {
				if v = settings.NormalizeBearerToken(v); v == nil {
					return "", false
				}
				return *v, true
			},
			func(raw string) *string { return settings.NormalizeBearerToken(&raw) },
		),
		suggestionCount: newCell(KeySuggestionCount, def.SuggestionCount,
			func(v int) (string, bool) { return strconv.Itoa(settings.ClampSuggestionCount(v)), true },
			func(raw string) int {
				n, err := strconv.Atoi(raw)
				if err != nil {
					return settings.DefaultSuggestionCount
				}
				return settings.ClampSuggestionCount(n)
			},
		),
		primaryColor: newCell(KeyPrimaryColor, def.PrimaryColor,
			func(v settings.PrimaryColor) (string, bool) { return v.String(), true },
			settings.ParsePrimaryColor,
		),
		listOrder: newCell(KeyListOrder, def.ListOrder,
			func(v map[int]int) (string, bool) { return settings.EncodeListOrder(v), true },
			settings.ParseListOrder,
		),
		hiddenLists: newCell(KeyHiddenLists, def.HiddenLists,
			func(v map[int]struct{}) (string, bool) { return settings.EncodeHiddenLists(v), true },
			settings.ParseHiddenLists,
		),
		useMaterialYou: newCell(KeyUseMaterialYou, def.UseMaterialYou,
			func(v bool) (string, bool) { return strconv.FormatBool(v), true },
			func(raw string) bool {
				b, err := strconv.ParseBool(raw)
				return err == nil && b
			},
		),
		fontSize: newCell(KeyFontSize, def.FontSize,
			func(v settings.FontSize) (string, bool) { return v.String(), true },
			settings.ParseFontSize,
		),
		paddingMode: newCell(KeyPaddingMode, def.PaddingMode,
			func(v settings.PaddingMode) (string, bool) { return v.String(), true },
			settings.ParsePaddingMode,
		),
	}

	loads := []func(context.Context, KV) error{
		s.baseURL.load, s.bearerToken.load, s.suggestionCount.load,
		s.primaryColor.load, s.listOrder.load, s.hiddenLists.load,
		s.useMaterialYou.load, s.fontSize.load, s.paddingMode.load,
	}
	for _, load := range loads {
		if err := load(ctx, kv); err != nil {
			return nil, fmt.Errorf("loading preferences: %w", err)
		}
	}

	return s, nil
}

// write persists v for c and then publishes the value as it will read back.
func write[T any](ctx context.Context, s *Store, c *cell[T], v T) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	raw, keep := c.encode(v)

	var err error
	if keep {
		err = s.kv.Set(ctx, c.key, raw)
	} else {
		err = s.kv.Delete(ctx, c.key)
	}
	if err != nil {
		s.logger.ErrorContext(ctx, "preference write failed",
			slog.String("key", c.key),
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("saving %s: %w", c.key, err)
	}

	if keep {
		c.value.Set(c.decode(raw))
	} else {
		c.value.Set(c.def)
	}

	s.logger.DebugContext(ctx, "preference written", slog.String("key", c.key))
	if s.metrics != nil {
		s.metrics.PreferenceWrites.Add(ctx, 1, metric.WithAttributes(telemetry.AttrPrefKey.String(c.key)))
	}
	return nil
}

// --- base_url ---

// WatchBaseURL streams the server base URL, starting with the current one.
func (s *Store) WatchBaseURL(ctx context.Context) <-chan string {
	return s.baseURL.value.Subscribe(ctx)
}

// BaseURL returns the stored server base URL, "" when unset.
func (s *Store) BaseURL(context.Context) (string, error) {
	return s.baseURL.value.Get(), nil
}

// SetBaseURL stores raw with a trailing "/" appended when it is non-blank
// and lacks one.
func (s *Store) SetBaseURL(ctx context.Context, raw string) error {
	return write(ctx, s, s.baseURL, raw)
}

// --- bearer_token ---

// WatchBearerToken streams the bearer token; nil means none.
func (s *Store) WatchBearerToken(ctx context.Context) <-chan *string {
	return s.bearerToken.value.Subscribe(ctx)
}

// BearerToken returns the stored token or nil.
func (s *Store) BearerToken(context.Context) (*string, error) {
	return s.bearerToken.value.Get(), nil
}

// SetBearerToken stores token. Nil or blank removes the key.
func (s *Store) SetBearerToken(ctx context.Context, token *string) error {
	return write(ctx, s, s.bearerToken, token)
}

// --- suggestion_count ---

// WatchSuggestionCount streams the suggestion count.
func (s *Store) WatchSuggestionCount(ctx context.Context) <-chan int {
	return s.suggestionCount.value.Subscribe(ctx)
}

// SuggestionCount returns how many suggestions to show.
func (s *Store) SuggestionCount(context.Context) (int, error) {
	return s.suggestionCount.value.Get(), nil
}

// SetSuggestionCount stores n clamped to [0, 100].
func (s *Store) SetSuggestionCount(ctx context.Context, n int) error {
	return write(ctx, s, s.suggestionCount, n)
}

// --- primary_color ---

// WatchPrimaryColor streams the accent color.
func (s *Store) WatchPrimaryColor(ctx context.Context) <-chan settings.PrimaryColor {
	return s.primaryColor.value.Subscribe(ctx)
}

// PrimaryColor returns the accent color.
func (s *Store) PrimaryColor(context.Context) (settings.PrimaryColor, error) {
	return s.primaryColor.value.Get(), nil
}

// SetPrimaryColor stores the accent color.
func (s *Store) SetPrimaryColor(ctx context.Context, c settings.PrimaryColor) error {
	return write(ctx, s, s.primaryColor, c)
}

// --- list_order ---

// WatchListOrder streams the list id to position map.
func (s *Store) WatchListOrder(ctx context.Context) <-chan map[int]int {
	return s.listOrder.value.Subscribe(ctx)
}

// ListOrder returns the list id to position map.
func (s *Store) ListOrder(context.Context) (map[int]int, error) {
	return s.listOrder.value.Get(), nil
}

// SetListOrder replaces the persisted list order.
func (s *Store) SetListOrder(ctx context.Context, order map[int]int) error {
	return write(ctx, s, s.listOrder, order)
}

// --- hidden_lists ---

// WatchHiddenLists streams the set of hidden list ids.
func (s *Store) WatchHiddenLists(ctx context.Context) <-chan map[int]struct{} {
	return s.hiddenLists.value.Subscribe(ctx)
}

// HiddenLists returns the set of hidden list ids.
func (s *Store) HiddenLists(context.Context) (map[int]struct{}, error) {
	return s.hiddenLists.value.Get(), nil
}

// SetHiddenLists replaces the hidden set.
func (s *Store) SetHiddenLists(ctx context.Context, hidden map[int]struct{}) error {
	return write(ctx, s, s.hiddenLists, hidden)
}

// --- use_material_you ---

// WatchUseMaterialYou streams the dynamic color switch.
func (s *Store) WatchUseMaterialYou(ctx context.Context) <-chan bool {
	return s.useMaterialYou.value.Subscribe(ctx)
}

// UseMaterialYou reports whether dynamic color is on.
func (s *Store) UseMaterialYou(context.Context) (bool, error) {
	return s.useMaterialYou.value.Get(), nil
}

// SetUseMaterialYou turns dynamic color on or off.
func (s *Store) SetUseMaterialYou(ctx context.Context, on bool) error {
	return write(ctx, s, s.useMaterialYou, on)
}

// --- font_size ---

// WatchFontSize streams the font size.
func (s *Store) WatchFontSize(ctx context.Context) <-chan settings.FontSize {
	return s.fontSize.value.Subscribe(ctx)
}

// FontSize returns the font size.
func (s *Store) FontSize(context.Context) (settings.FontSize, error) {
	return s.fontSize.value.Get(), nil
}

// SetFontSize stores the font size.
func (s *Store) SetFontSize(ctx context.Context, f settings.FontSize) error {
	return write(ctx, s, s.fontSize, f)
}

// --- padding_mode ---

// WatchPaddingMode streams the padding mode.
func (s *Store) WatchPaddingMode(ctx context.Context) <-chan settings.PaddingMode {
	return s.paddingMode.value.Subscribe(ctx)
}

// PaddingMode returns the padding mode.
func (s *Store) PaddingMode(context.Context) (settings.PaddingMode, error) {
	return s.paddingMode.value.Get(), nil
}

// SetPaddingMode stores the padding mode.
func (s *Store) SetPaddingMode(ctx context.Context, p settings.PaddingMode) error {
	return write(ctx, s, s.paddingMode, p)
}

// --- snapshot ---

// Snapshot returns every preference. The maps are copies.
func (s *Store) Snapshot(context.Context) (settings.Settings, error) {
	return settings.Settings{
		BaseURL:         s.baseURL.value.Get(),
		BearerToken:     s.bearerToken.value.Get(),
		SuggestionCount: s.suggestionCount.value.Get(),
		PrimaryColor:    s.primaryColor.value.Get(),
		ListOrder:       maps.Clone(s.listOrder.value.Get()),
		HiddenLists:     maps.Clone(s.hiddenLists.value.Get()),
		UseMaterialYou:  s.useMaterialYou.value.Get(),
		FontSize:        s.fontSize.value.Get(),
		PaddingMode:     s.paddingMode.value.Get(),
	}, nil
}

// Name returns the identifier used when this component is registered with a
// [ports.HealthRegistry].
func (s *Store) Name() string {
	return "preferences"
}

// HealthCheck pings the backend.
func (s *Store) HealthCheck(ctx context.Context) error {
	if err := s.kv.Ping(ctx); err != nil {
		return fmt.Errorf("preferences: %w", err)
	}
	return nil
}

// Close releases the backend.
func (s *Store) Close() error {
	return s.kv.Close()
}
