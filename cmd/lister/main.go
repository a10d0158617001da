// Package main is the entry point for the lister CLI. It wires the client
// dependencies using samber/do v2 and hands them to the cobra command tree.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/samber/do/v2"

	"github.com/jsamuelsen11/lister-client/internal/adapters/clients/acl"
	"github.com/jsamuelsen11/lister-client/internal/adapters/prefs"
	"github.com/jsamuelsen11/lister-client/internal/app"
	"github.com/jsamuelsen11/lister-client/internal/cli"
	"github.com/jsamuelsen11/lister-client/internal/platform/config"
	"github.com/jsamuelsen11/lister-client/internal/platform/health"
	"github.com/jsamuelsen11/lister-client/internal/platform/httpclient"
	"github.com/jsamuelsen11/lister-client/internal/platform/logging"
	"github.com/jsamuelsen11/lister-client/internal/platform/telemetry"
	"github.com/jsamuelsen11/lister-client/internal/ports"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

const otelShutdownTimeout = 5 * time.Second

func main() {
	os.Exit(cli.Execute(context.Background(), bootstrap, os.Args[1:]))
}

// bootstrap loads configuration and resolves the client graph.
func bootstrap(ctx context.Context, opts cli.Options) (*cli.Env, func(), error) {
	cfg, err := config.Load(opts.Profile, config.WithConfigDir(opts.ConfigDir))
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}
	if opts.LogLevel != "" {
		if !logging.ValidLevel(opts.LogLevel) {
			return nil, nil, fmt.Errorf("--log-level must be one of: %s; got %q", strings.Join(logging.Levels, ", "), opts.LogLevel)
		}
		cfg.Log.Level = opts.LogLevel
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)

	otel, err := initTelemetry(ctx, cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("initializing telemetry: %w", err)
	}

	// DI container.
	injector := do.New()

	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, otel.metrics)

	registerDependencies(ctx, injector, cfg, logger)

	// Resolving the repository opens the preference store.
	repo, err := do.Invoke[ports.Repository](injector)
	if err != nil {
		shutdownTelemetry(otel, logger)
		return nil, nil, fmt.Errorf("resolving repository: %w", err)
	}
	store := do.MustInvoke[*prefs.Store](injector)

	// Register health checkers after the graph is wired.
	registry := do.MustInvoke[ports.HealthRegistry](injector)
	registry.Register(store)
	registry.Register(do.MustInvoke[*acl.Connector](injector))

	cleanup := func() {
		if err := store.Close(); err != nil {
			logger.Error("closing preferences", slog.Any("error", err))
		}
		shutdownTelemetry(otel, logger)
	}

	return &cli.Env{
		Config:  cfg,
		Logger:  logger,
		Prefs:   store,
		Repo:    repo,
		Health:  registry,
		Metrics: otel.metrics,
	}, cleanup, nil
}

func shutdownTelemetry(otel *otelProviders, logger *slog.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
	defer cancel()

	if err := otel.Shutdown(ctx); err != nil {
		logger.Error("telemetry shutdown error", slog.Any("error", err))
	}
}

// otelProviders bundles OpenTelemetry provider lifecycle. All fields are nil
// when telemetry is disabled.
type otelProviders struct {
	tracer  *sdktrace.TracerProvider
	meter   *sdkmetric.MeterProvider
	metrics *telemetry.Metrics
}

// Shutdown flushes both providers. Nil-safe.
func (o *otelProviders) Shutdown(ctx context.Context) error {
	var errs []error
	if o.tracer != nil {
		if err := o.tracer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("tracer shutdown: %w", err))
		}
	}
	if o.meter != nil {
		if err := o.meter.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("meter shutdown: %w", err))
		}
	}
	return errors.Join(errs...)
}

func initTelemetry(ctx context.Context, cfg *config.Config) (*otelProviders, error) {
	if !cfg.Telemetry.Enabled {
		return &otelProviders{}, nil
	}

	tp, err := telemetry.InitTracer(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		return nil, fmt.Errorf("init tracer: %w", err)
	}

	mp, err := telemetry.InitMeter(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		_ = tp.Shutdown(ctx)
		return nil, fmt.Errorf("init meter: %w", err)
	}

	metrics, err := telemetry.NewMetrics(mp, cfg.Telemetry.ServiceName)
	if err != nil {
		_ = tp.Shutdown(ctx)
		_ = mp.Shutdown(ctx)
		return nil, fmt.Errorf("creating metrics: %w", err)
	}

	return &otelProviders{
		tracer:  tp,
		meter:   mp,
		metrics: metrics,
	}, nil
}

func registerDependencies(ctx context.Context, injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(i do.Injector) (*prefs.Store, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return prefs.Open(ctx, cfg.Preferences, logger, metrics)
	})

	do.Provide(injector, func(i do.Injector) (*httpclient.Cache, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return httpclient.NewCache(&cfg.Client, "lister-api", metrics, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (*acl.Connector, error) {
		cache := do.MustInvoke[*httpclient.Cache](i)
		return acl.NewConnector(cache, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.Repository, error) {
		store, err := do.Invoke[*prefs.Store](i)
		if err != nil {
			return nil, err
		}
		connector := do.MustInvoke[*acl.Connector](i)
		return app.NewRepository(store, connector, logger), nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.HealthRegistry, error) {
		return health.New(), nil
	})
}
