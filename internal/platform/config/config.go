// Package config provides configuration loading and validation for the client.
// Configuration is loaded from built-in defaults, optional YAML files and
// environment variable overrides using a layered system:
// defaults -> base.yaml -> {profile}.yaml -> env vars.
package config

import "time"

// Config holds all configuration for the client.
type Config struct {
	Log         LogConfig         `koanf:"log"`
	Client      ClientConfig      `koanf:"client"`
	Preferences PreferencesConfig `koanf:"preferences"`
	Suggestions SuggestionsConfig `koanf:"suggestions"`
	FakeServer  FakeServerConfig  `koanf:"fake_server"`
	Telemetry   TelemetryConfig   `koanf:"telemetry"`
}

// LogConfig holds structured logging settings.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// ClientConfig holds outbound HTTP client settings. The base URL and bearer
// token are user preferences, not configuration.
type ClientConfig struct {
	Timeout        time.Duration        `koanf:"timeout"`
	Retry          RetryConfig          `koanf:"retry"`
	CircuitBreaker CircuitBreakerConfig `koanf:"circuit_breaker"`
	RateLimit      RateLimitConfig      `koanf:"rate_limit"`
}

// RetryConfig holds retry policy settings with exponential backoff.
// MaxAttempts of 1 disables retries.
type RetryConfig struct {
	MaxAttempts     int           `koanf:"max_attempts"`
	InitialInterval time.Duration `koanf:"initial_interval"`
	MaxInterval     time.Duration `koanf:"max_interval"`
	Multiplier      float64       `koanf:"multiplier"`
}

// CircuitBreakerConfig holds circuit breaker settings.
type CircuitBreakerConfig struct {
	MaxFailures   int           `koanf:"max_failures"`
	Timeout       time.Duration `koanf:"timeout"`
	HalfOpenLimit int           `koanf:"half_open_limit"`
}

// RateLimitConfig bounds outbound request rate. Zero disables limiting.
type RateLimitConfig struct {
	RequestsPerSecond float64 `koanf:"requests_per_second"`
	BurstSize         int     `koanf:"burst_size"`
}

// PreferencesConfig selects the preference store backend.
type PreferencesConfig struct {
	Backend string `koanf:"backend"`
	Path    string `koanf:"path"`
}

// SuggestionsConfig holds autocomplete behavior.
type SuggestionsConfig struct {
	ZeroMeansUnlimited bool `koanf:"zero_means_unlimited"`
}

// FakeServerConfig holds settings for the in-process development server.
type FakeServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	IdleTimeout     time.Duration `koanf:"idle_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
	BearerToken     string        `koanf:"bearer_token"`
	Seed            bool          `koanf:"seed"`
}

// TelemetryConfig holds OpenTelemetry settings.
type TelemetryConfig struct {
	Enabled     bool   `koanf:"enabled"`
	Exporter    string `koanf:"exporter"`
	Endpoint    string `koanf:"endpoint"`
	ServiceName string `koanf:"service_name"`
}
