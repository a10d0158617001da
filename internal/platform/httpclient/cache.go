package httpclient

import (
	"context"
	"log/slog"
	"sync"

	"github.com/jsamuelsen11/lister-client/internal/platform/config"
	"github.com/jsamuelsen11/lister-client/internal/platform/telemetry"
)

// Cache holds at most one live Client together with the Endpoint it was
// built for. Get returns the held client while the endpoint is unchanged and
// builds a replacement as soon as either the base URL or the token differs.
//
// The cache only saves rebuilding transport state; a cache-less caller that
// builds a fresh Client per request observes the same behavior.
type Cache struct {
	cfg         *config.ClientConfig
	serviceName string
	metrics     *telemetry.Metrics
	logger      *slog.Logger

	mu     sync.Mutex
	client *Client
	builds int
}

// NewCache creates an empty cache. Clients it builds share cfg, metrics and
// logger.
func NewCache(cfg *config.ClientConfig, serviceName string, metrics *telemetry.Metrics, logger *slog.Logger) *Cache {
	return &Cache{
		cfg:         cfg,
		serviceName: serviceName,
		metrics:     metrics,
		logger:      logger,
	}
}

// Get returns the client for ep, building one if none exists or the held
// client belongs to a different endpoint.
func (c *Cache) Get(ep Endpoint) *Client {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.client != nil && c.client.Endpoint() == ep {
		return c.client
	}

	c.client = New(c.cfg, ep, c.serviceName, c.metrics, c.logger)
	c.builds++

	c.logger.Debug("api client initialized", slog.Any("endpoint", ep), slog.Int("builds", c.builds))
	if c.metrics != nil {
		c.metrics.ClientBuilds.Add(context.Background(), 1)
	}

	return c.client
}

// Builds reports how many clients the cache has constructed.
func (c *Cache) Builds() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.builds
}

// Name identifies the cached client in health reports.
func (c *Cache) Name() string {
	return c.serviceName
}

// HealthCheck reports the circuit breaker state of the current client. An
// empty cache is healthy.
func (c *Cache) HealthCheck(ctx context.Context) error {
	c.mu.Lock()
	client := c.client
	c.mu.Unlock()

	if client == nil {
		return nil
	}
	return client.HealthCheck(ctx)
}
