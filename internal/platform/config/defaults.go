package config

const (
	defaultFakeServerPort = 8081

	defaultRetryMaxAttempts = 1
	defaultRetryMultiplier  = 2.0

	defaultCircuitBreakerMaxFailures = 0 // breaker off
	defaultCircuitBreakerHalfOpen    = 1
)

// defaults returns the default configuration values.
// These are loaded first and can be overridden by base.yaml, profile YAML, and env vars.
func defaults() map[string]any {
	return map[string]any{
		"log.level":  "warn",
		"log.format": "text",

		"client.timeout":                         "30s",
		"client.retry.max_attempts":              defaultRetryMaxAttempts,
		"client.retry.initial_interval":          "100ms",
		"client.retry.max_interval":              "10s",
		"client.retry.multiplier":                defaultRetryMultiplier,
		"client.circuit_breaker.max_failures":    defaultCircuitBreakerMaxFailures,
		"client.circuit_breaker.timeout":         "30s",
		"client.circuit_breaker.half_open_limit": defaultCircuitBreakerHalfOpen,
		"client.rate_limit.requests_per_second":  0,
		"client.rate_limit.burst_size":           0,

		"preferences.backend": "sqlite",
		"preferences.path":    "",

		"suggestions.zero_means_unlimited": true,

		"fake_server.host":             "127.0.0.1",
		"fake_server.port":             defaultFakeServerPort,
		"fake_server.read_timeout":     "5s",
		"fake_server.write_timeout":    "10s",
		"fake_server.idle_timeout":     "120s",
		"fake_server.shutdown_timeout": "10s",
		"fake_server.bearer_token":     "",
		"fake_server.seed":             true,

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": "lister",
	}
}
