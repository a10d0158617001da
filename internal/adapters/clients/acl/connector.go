package acl

import (
	"context"
	"log/slog"

	"github.com/jsamuelsen11/lister-client/internal/platform/httpclient"
	"github.com/jsamuelsen11/lister-client/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.ListerConnector = (*Connector)(nil)
	_ ports.HealthChecker   = (*Connector)(nil)
)

// Connector hands out ListerClients backed by the shared client cache, so a
// changed base URL or token takes effect on the next call while unchanged
// settings reuse the same underlying HTTP client.
type Connector struct {
	cache  *httpclient.Cache
	logger *slog.Logger
}

// NewConnector creates a Connector over cache.
func NewConnector(cache *httpclient.Cache, logger *slog.Logger) *Connector {
	return &Connector{cache: cache, logger: logger}
}

// Client returns a ListerAPI for the endpoint. A nil token means no
// Authorization header.
func (c *Connector) Client(baseURL string, bearerToken *string) ports.ListerAPI {
	ep := httpclient.Endpoint{BaseURL: baseURL}
	if bearerToken != nil {
		ep.BearerToken = *bearerToken
	}
	return NewListerClient(c.cache.Get(ep), c.logger)
}

// Name returns the identifier used when this component is registered with a
// [ports.HealthRegistry].
func (c *Connector) Name() string {
	return c.cache.Name()
}

// HealthCheck reports the circuit breaker state of the current client. No
// network call is made.
func (c *Connector) HealthCheck(ctx context.Context) error {
	return c.cache.HealthCheck(ctx)
}
