package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jsamuelsen11/lister-client/internal/platform/config"
)

func TestLoad_LocalProfile(t *testing.T) {
	t.Chdir("../../..")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load(\"local\") error: %v", err)
	}

	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want \"debug\"", cfg.Log.Level)
	}
	if cfg.Log.Format != "text" {
		t.Errorf("Log.Format = %q, want \"text\"", cfg.Log.Format)
	}
	if cfg.Preferences.Path != ".lister/preferences.db" {
		t.Errorf("Preferences.Path = %q, want \".lister/preferences.db\"", cfg.Preferences.Path)
	}
	if cfg.Telemetry.Enabled {
		t.Error("Telemetry.Enabled = true, want false for local")
	}
}

func TestLoad_ProdProfile(t *testing.T) {
	t.Chdir("../../..")

	cfg, err := config.Load("prod")
	if err != nil {
		t.Fatalf("Load(\"prod\") error: %v", err)
	}

	if cfg.Log.Format != "json" {
		t.Errorf("Log.Format = %q, want \"json\"", cfg.Log.Format)
	}
	if !cfg.Telemetry.Enabled {
		t.Error("Telemetry.Enabled = false, want true for prod")
	}
	if cfg.Telemetry.Exporter != "otlp" {
		t.Errorf("Telemetry.Exporter = %q, want \"otlp\"", cfg.Telemetry.Exporter)
	}
	if cfg.Client.RateLimit.RequestsPerSecond != 20 {
		t.Errorf("Client.RateLimit.RequestsPerSecond = %v, want 20", cfg.Client.RateLimit.RequestsPerSecond)
	}
}

func TestLoad_BaseConfigInheritance(t *testing.T) {
	t.Chdir("../../..")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load(\"local\") error: %v", err)
	}

	// These come from base.yaml, not overridden by local.yaml.
	if cfg.FakeServer.Port != 8081 {
		t.Errorf("FakeServer.Port = %d, want 8081 (from base)", cfg.FakeServer.Port)
	}
	if cfg.Client.Retry.MaxAttempts != 1 {
		t.Errorf("Client.Retry.MaxAttempts = %d, want 1 (from base)", cfg.Client.Retry.MaxAttempts)
	}
	if cfg.Client.CircuitBreaker.MaxFailures != 0 {
		t.Errorf("Client.CircuitBreaker.MaxFailures = %d, want 0 (breaker off)", cfg.Client.CircuitBreaker.MaxFailures)
	}
	if !cfg.Suggestions.ZeroMeansUnlimited {
		t.Error("Suggestions.ZeroMeansUnlimited = false, want true (from base)")
	}
}

func TestLoad_DefaultsWithoutFiles(t *testing.T) {
	dir := t.TempDir()

	cfg, err := config.Load("local", config.WithConfigDir(dir))
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Preferences.Backend != "sqlite" {
		t.Errorf("Preferences.Backend = %q, want \"sqlite\"", cfg.Preferences.Backend)
	}
	if cfg.Client.Timeout != 30*time.Second {
		t.Errorf("Client.Timeout = %v, want 30s", cfg.Client.Timeout)
	}
	if cfg.Client.Retry.MaxAttempts != 1 {
		t.Errorf("Client.Retry.MaxAttempts = %d, want 1 (no retries)", cfg.Client.Retry.MaxAttempts)
	}
	if cfg.Client.CircuitBreaker.MaxFailures != 0 {
		t.Errorf("Client.CircuitBreaker.MaxFailures = %d, want 0 (breaker off)", cfg.Client.CircuitBreaker.MaxFailures)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("Log.Level = %q, want \"warn\"", cfg.Log.Level)
	}
}

func TestLoad_ProfileOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	yaml := "suggestions:\n  zero_means_unlimited: false\npreferences:\n  backend: memory\n"
	if err := os.WriteFile(filepath.Join(dir, "test.yaml"), []byte(yaml), 0o600); err != nil {
		t.Fatalf("writing profile: %v", err)
	}

	cfg, err := config.Load("test", config.WithConfigDir(dir))
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Suggestions.ZeroMeansUnlimited {
		t.Error("Suggestions.ZeroMeansUnlimited = true, want false (profile override)")
	}
	if cfg.Preferences.Backend != "memory" {
		t.Errorf("Preferences.Backend = %q, want \"memory\"", cfg.Preferences.Backend)
	}
}

func TestLoad_MalformedYAML(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "base.yaml"), []byte("log: [unclosed"), 0o600); err != nil {
		t.Fatalf("writing base: %v", err)
	}

	if _, err := config.Load("local", config.WithConfigDir(dir)); err == nil {
		t.Fatal("Load() returned nil error for malformed base.yaml")
	}
}

func TestLoad_EnvOverrideSimpleKey(t *testing.T) {
	t.Chdir("../../..")
	t.Setenv("APP_LOG_LEVEL", "error")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Log.Level != "error" {
		t.Errorf("Log.Level = %q, want \"error\" (env override)", cfg.Log.Level)
	}
}

func TestLoad_EnvOverrideSnakeCaseKey(t *testing.T) {
	t.Chdir("../../..")
	t.Setenv("APP_FAKE_SERVER_READ_TIMEOUT", "15s")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	want := 15 * time.Second
	if cfg.FakeServer.ReadTimeout != want {
		t.Errorf("FakeServer.ReadTimeout = %v, want %v (env override)", cfg.FakeServer.ReadTimeout, want)
	}
}

func TestLoad_EnvOverrideDeeplyNestedKey(t *testing.T) {
	t.Chdir("../../..")
	t.Setenv("APP_CLIENT_RETRY_MAX_ATTEMPTS", "7")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Client.Retry.MaxAttempts != 7 {
		t.Errorf("Client.Retry.MaxAttempts = %d, want 7 (env override)", cfg.Client.Retry.MaxAttempts)
	}
}

func TestLoad_InvalidProfileName(t *testing.T) {
	t.Parallel()

	for _, profile := range []string{"", "  ", "../etc", "a/b"} {
		if _, err := config.Load(profile); err == nil {
			t.Errorf("Load(%q) returned nil error, want error", profile)
		}
	}
}

func TestValidate_InvalidLogLevel(t *testing.T) {
	t.Parallel()

	cfg := validBaseConfig()
	cfg.Log.Level = "verbose"

	if err := cfg.Validate(); err == nil {
		t.Fatal("Validate() returned nil, want error for invalid log level")
	}
}

func TestValidate_InvalidBackend(t *testing.T) {
	t.Parallel()

	cfg := validBaseConfig()
	cfg.Preferences.Backend = "redis"

	if err := cfg.Validate(); err == nil {
		t.Fatal("Validate() returned nil, want error for unknown backend")
	}
}

func TestValidate_ZeroRetryAttempts(t *testing.T) {
	t.Parallel()

	cfg := validBaseConfig()
	cfg.Client.Retry.MaxAttempts = 0

	if err := cfg.Validate(); err == nil {
		t.Fatal("Validate() returned nil, want error for max_attempts=0")
	}
}

func TestValidate_CircuitBreakerMaxFailures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		maxFailures int
		wantErr     bool
	}{
		{name: "zero disables the breaker", maxFailures: 0},
		{name: "positive threshold", maxFailures: 3},
		{name: "negative threshold", maxFailures: -1, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := validBaseConfig()
			cfg.Client.CircuitBreaker.MaxFailures = tt.maxFailures

			err := cfg.Validate()
			if tt.wantErr && err == nil {
				t.Fatal("Validate() returned nil, want error")
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("Validate() error: %v", err)
			}
		})
	}
}

func TestValidate_RateLimitWithoutBurst(t *testing.T) {
	t.Parallel()

	cfg := validBaseConfig()
	cfg.Client.RateLimit.RequestsPerSecond = 5

	if err := cfg.Validate(); err == nil {
		t.Fatal("Validate() returned nil, want error for rate limit without burst")
	}
}

func TestValidate_OtlpWithoutEndpoint(t *testing.T) {
	t.Parallel()

	cfg := validBaseConfig()
	cfg.Telemetry.Enabled = true
	cfg.Telemetry.Exporter = "otlp"
	cfg.Telemetry.Endpoint = ""

	if err := cfg.Validate(); err == nil {
		t.Fatal("Validate() returned nil, want error for otlp without endpoint")
	}
}

func TestValidate_ValidConfig(t *testing.T) {
	t.Parallel()

	cfg := validBaseConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() returned error for valid config: %v", err)
	}
}

// validBaseConfig returns a Config with all fields set to valid values.
func validBaseConfig() *config.Config {
	return &config.Config{
		Log: config.LogConfig{
			Level:  "info",
			Format: "json",
		},
		Client: config.ClientConfig{
			Timeout: 30 * time.Second,
			Retry: config.RetryConfig{
				MaxAttempts:     1,
				InitialInterval: 100 * time.Millisecond,
				MaxInterval:     10 * time.Second,
				Multiplier:      2.0,
			},
			CircuitBreaker: config.CircuitBreakerConfig{
				MaxFailures:   5,
				Timeout:       30 * time.Second,
				HalfOpenLimit: 1,
			},
		},
		Preferences: config.PreferencesConfig{Backend: "memory"},
		FakeServer: config.FakeServerConfig{
			Host:         "127.0.0.1",
			Port:         8081,
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 10 * time.Second,
		},
		Telemetry: config.TelemetryConfig{
			Enabled:  false,
			Exporter: "stdout",
		},
	}
}
