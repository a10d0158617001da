package cli

import (
	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/lister-client/internal/platform/health"
)

func newHealthCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check the preference store and the connection to the server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			env, err := a.load(cmd)
			if err != nil {
				return err
			}
			statuses, healthy := health.Report(cmd.Context(), env.Health)

			t := themeFor(cmd, env)
			t.heading("Health")
			for _, s := range statuses {
				if s.Err != nil {
					t.fail(s.Name + ": " + s.Err.Error())
					continue
				}
				t.ok(s.Name)
			}
			if !healthy {
				return errScreen
			}
			return nil
		},
	}
}
