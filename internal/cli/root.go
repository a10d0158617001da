// Package cli is the lister command line front end. Each command drives one
// of the screen state holders in app/screen and renders its state with
// lipgloss, colored with the persisted primary color.
package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/lister-client/internal/domain/settings"
	"github.com/jsamuelsen11/lister-client/internal/domain/suggest"
	"github.com/jsamuelsen11/lister-client/internal/platform/config"
	"github.com/jsamuelsen11/lister-client/internal/platform/httpclient"
	"github.com/jsamuelsen11/lister-client/internal/platform/logging"
	"github.com/jsamuelsen11/lister-client/internal/platform/telemetry"
	"github.com/jsamuelsen11/lister-client/internal/ports"
)

// Options are the persistent flags needed before any dependency exists.
type Options struct {
	Profile   string
	ConfigDir string

	// LogLevel overrides log.level when set.
	LogLevel string
}

// Env is the wired dependency graph a command runs against.
type Env struct {
	Config  *config.Config
	Logger  *slog.Logger
	Prefs   ports.Preferences
	Repo    ports.Repository
	Health  ports.HealthRegistry
	Metrics *telemetry.Metrics
}

// Policy returns the configured interpretation of a zero suggestion count.
func (e *Env) Policy() suggest.Policy {
	return suggest.PolicyFor(e.Config.Suggestions.ZeroMeansUnlimited)
}

// Bootstrap builds an Env. The returned cleanup releases it and is never nil
// when err is nil.
type Bootstrap func(ctx context.Context, opts Options) (env *Env, cleanup func(), err error)

type app struct {
	opts    Options
	boot    Bootstrap
	env     *Env
	cleanup func()
}

// load bootstraps the environment on first use and stores its logger in the
// command context, where the HTTP client's retry loop picks it up.
func (a *app) load(cmd *cobra.Command) (*Env, error) {
	if a.env == nil {
		env, cleanup, err := a.boot(cmd.Context(), a.opts)
		if err != nil {
			return nil, err
		}
		a.env, a.cleanup = env, cleanup
	}
	cmd.SetContext(logging.WithLogger(cmd.Context(), a.env.Logger))
	return a.env, nil
}

func (a *app) close() {
	if a.cleanup != nil {
		a.cleanup()
		a.cleanup = nil
	}
}

// NewRootCmd creates the lister command tree. The returned func releases
// whatever the commands bootstrapped and must be called once execution ends.
func NewRootCmd(boot Bootstrap) (*cobra.Command, func()) {
	a := &app{boot: boot}

	cmd := &cobra.Command{
		Use:          "lister",
		Short:        "Shopping lists on a Lister server",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Point the client at a server
  lister settings set --base-url http://127.0.0.1:8081 --token secret

  # Run a local fake server with sample data
  lister fake-server

  # Show lists, then the items of list 1
  lister lists
  lister items 1
`),
	}

	cmd.PersistentFlags().StringVar(&a.opts.Profile, "profile", envOr("APP_PROFILE", "local"), "Configuration profile")
	cmd.PersistentFlags().StringVar(&a.opts.ConfigDir, "config-dir", envOr("LISTER_CONFIG_DIR", "configs"), "Directory holding base.yaml and profile files")
	cmd.PersistentFlags().StringVar(&a.opts.LogLevel, "log-level", "", "Override log.level ("+strings.Join(logging.Levels, ", ")+")")

	cmd.AddCommand(newListsCmd(a))
	cmd.AddCommand(newItemsCmd(a))
	cmd.AddCommand(newCategoriesCmd(a))
	cmd.AddCommand(newSuggestCmd(a))
	cmd.AddCommand(newSettingsCmd(a))
	cmd.AddCommand(newHealthCmd(a))
	cmd.AddCommand(newFakeServerCmd(a))

	return cmd, a.close
}

// Execute runs the command tree with args and returns the process exit code.
// Every API request of one invocation carries the same X-Request-ID.
func Execute(ctx context.Context, boot Bootstrap, args []string) int {
	cmd, closeFn := NewRootCmd(boot)
	defer closeFn()

	cmd.SetArgs(args)
	if err := cmd.ExecuteContext(httpclient.WithRequestID(ctx, uuid.NewString())); err != nil {
		return 1
	}
	return 0
}

func envOr(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

// parseID parses a positional id argument.
func parseID(kind, raw string) (int, error) {
	id, err := strconv.Atoi(raw)
	if err != nil || id < 0 {
		return 0, fmt.Errorf("invalid %s id %q", kind, raw)
	}
	return id, nil
}

func parseIDs(kind string, raw []string) ([]int, error) {
	ids := make([]int, len(raw))
	for i, r := range raw {
		id, err := parseID(kind, r)
		if err != nil {
			return nil, err
		}
		ids[i] = id
	}
	return ids, nil
}

// errScreen reports a failure already recorded in a screen's Error field.
var errScreen = errors.New("command failed")

// themeFor styles output for cmd with the stored appearance settings,
// falling back to defaults when they cannot be read.
func themeFor(cmd *cobra.Command, env *Env) *theme {
	s, err := env.Prefs.Snapshot(cmd.Context())
	if err != nil {
		env.Logger.WarnContext(cmd.Context(), "reading appearance settings", slog.Any("error", err))
		s = settings.Default()
	}
	return newTheme(cmd.OutOrStdout(), s)
}

// report prints a screen error to stderr and returns errScreen, or nil when
// msg is empty.
func report(cmd *cobra.Command, env *Env, msg string) error {
	if msg == "" {
		return nil
	}
	s, _ := env.Prefs.Snapshot(cmd.Context())
	newTheme(cmd.ErrOrStderr(), s).fail(msg)
	return errScreen
}
