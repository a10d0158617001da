package cli

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	adapthttp "github.com/jsamuelsen11/lister-client/internal/adapters/http"
	"github.com/jsamuelsen11/lister-client/internal/adapters/memstore"
	"github.com/jsamuelsen11/lister-client/internal/platform/health"
)

func newFakeServerCmd(a *app) *cobra.Command {
	var (
		host  string
		port  int
		token string
		seed  bool
	)

	cmd := &cobra.Command{
		Use:   "fake-server",
		Short: "Serve an in-memory Lister API for local development",
		Long: "Serve the Lister REST API from memory until interrupted.\n" +
			"Flags override the fake_server configuration section.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			env, err := a.load(cmd)
			if err != nil {
				return err
			}

			cfg := env.Config.FakeServer
			flags := cmd.Flags()
			if flags.Changed("host") {
				cfg.Host = host
			}
			if flags.Changed("port") {
				cfg.Port = port
			}
			if flags.Changed("token") {
				cfg.BearerToken = token
			}
			if flags.Changed("seed") {
				cfg.Seed = seed
			}

			store := memstore.New()
			if cfg.Seed {
				store = memstore.NewSeeded()
			}
			registry := health.New()
			registry.Register(store)

			handler := adapthttp.NewHandler(store, registry, cfg.BearerToken, env.Logger, env.Metrics)
			server := adapthttp.NewServer(cfg, handler, env.Logger)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return serveUntilDone(ctx, cmd, env, server)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&host, "host", "", "Listen host")
	flags.IntVar(&port, "port", 0, "Listen port; 0 picks a free one")
	flags.StringVar(&token, "token", "", "Bearer token clients must send; empty leaves the API open")
	flags.BoolVar(&seed, "seed", true, "Start with sample lists")
	return cmd
}

// serveUntilDone serves until ctx is canceled or the server fails, then
// shuts it down gracefully.
func serveUntilDone(ctx context.Context, cmd *cobra.Command, env *Env, server *adapthttp.Server) error {
	ln, err := net.Listen("tcp", server.Addr())
	if err != nil {
		return fmt.Errorf("listening on %s: %w", server.Addr(), err)
	}

	t := themeFor(cmd, env)
	t.ok("fake Lister server on http://" + ln.Addr().String() + "/")

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.Serve(ln)
	}()

	select {
	case <-ctx.Done():
		env.Logger.Info("stopping fake server", slog.Any("cause", context.Cause(ctx)))
	case err := <-serverErr:
		return fmt.Errorf("fake server failed: %w", err)
	}

	if err := server.Shutdown(context.WithoutCancel(ctx)); err != nil {
		env.Logger.Error("fake server shutdown error", slog.Any("error", err))
	}
	return <-serverErr
}
