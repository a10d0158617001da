package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/lister-client/internal/app/screen"
	"github.com/jsamuelsen11/lister-client/internal/domain/settings"
)

func newSettingsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change connection and appearance settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return showSettings(cmd, a)
		},
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the stored settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return showSettings(cmd, a)
		},
	})
	cmd.AddCommand(newSettingsSetCmd(a))
	return cmd
}

func showSettings(cmd *cobra.Command, a *app) error {
	env, err := a.load(cmd)
	if err != nil {
		return err
	}
	s := screen.NewSettings(cmd.Context(), env.Prefs, env.Logger)
	s.LaunchLoad()
	if err := s.Close(); err != nil {
		return report(cmd, env, s.State().Error)
	}
	renderSettings(themeFor(cmd, env), s.State().SettingsForm)
	return nil
}

const labelWidth = 14

// renderSettings prints the form. The token itself is never shown.
func renderSettings(t *theme, f screen.SettingsForm) {
	token := "not set"
	if f.BearerToken != "" {
		token = "set"
	}
	rows := [][2]string{
		{"Base URL", f.BaseURL},
		{"Bearer token", token},
		{"Suggestions", fmt.Sprint(f.SuggestionCount)},
		{"Primary color", f.PrimaryColor.String()},
		{"Material You", fmt.Sprint(f.UseMaterialYou)},
		{"Font size", f.FontSize.String()},
		{"Compact mode", fmt.Sprint(f.UseCompactMode)},
	}

	t.heading("Settings")
	for _, r := range rows {
		pad := strings.Repeat(" ", max(labelWidth-len(r[0]), 0))
		t.line(fmt.Sprintf("  %s%s %s", t.accent.Render(r[0]), pad, r[1]))
	}
}

type settingsFlags struct {
	baseURL     string
	token       string
	suggestions int
	color       string
	materialYou bool
	fontSize    string
	compact     bool
}

// apply copies the changed flags onto form, rejecting unknown enum names.
func (f *settingsFlags) apply(cmd *cobra.Command, form *screen.SettingsForm) error {
	flags := cmd.Flags()
	if flags.Changed("base-url") {
		form.BaseURL = f.baseURL
	}
	if flags.Changed("token") {
		form.BearerToken = f.token
	}
	if flags.Changed("suggestions") {
		form.SuggestionCount = f.suggestions
	}
	if flags.Changed("color") {
		c := settings.PrimaryColor(strings.ToUpper(f.color))
		if !c.IsValid() {
			return fmt.Errorf("unknown color %q, want one of %s", f.color, joinNames(settings.PrimaryColors()))
		}
		form.PrimaryColor = c
	}
	if flags.Changed("material-you") {
		form.UseMaterialYou = f.materialYou
	}
	if flags.Changed("font-size") {
		size := settings.FontSize(strings.ToUpper(f.fontSize))
		if !size.IsValid() {
			return fmt.Errorf("unknown font size %q, want one of %s", f.fontSize,
				joinNames([]settings.FontSize{settings.FontSmall, settings.FontMedium, settings.FontLarge}))
		}
		form.FontSize = size
	}
	if flags.Changed("compact") {
		form.UseCompactMode = f.compact
	}
	return nil
}

func joinNames[T fmt.Stringer](values []T) string {
	names := make([]string, len(values))
	for i, v := range values {
		names[i] = v.String()
	}
	return strings.Join(names, ", ")
}

func newSettingsSetCmd(a *app) *cobra.Command {
	var f settingsFlags

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Change the settings given as flags and keep the rest",
		Example: strings.TrimSpace(`
  lister settings set --base-url http://127.0.0.1:8081 --token secret
  lister settings set --token ""          # remove the token
  lister settings set --suggestions 0     # no suggestion limit
  lister settings set --color teal --compact`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			env, err := a.load(cmd)
			if err != nil {
				return err
			}
			s := screen.NewSettings(cmd.Context(), env.Prefs, env.Logger)
			defer func() { _ = s.Close() }()

			s.LaunchLoad()
			if err := s.Wait(); err != nil {
				return report(cmd, env, s.State().Error)
			}

			form := s.State().SettingsForm
			if err := f.apply(cmd, &form); err != nil {
				return err
			}
			s.LaunchSave(form)
			if err := s.Wait(); err != nil {
				return report(cmd, env, s.State().Error)
			}

			t := themeFor(cmd, env)
			t.ok("settings saved")
			t.gap()
			renderSettings(t, s.State().SettingsForm)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&f.baseURL, "base-url", "", "Server base URL")
	flags.StringVar(&f.token, "token", "", "Bearer token; empty removes it")
	flags.IntVar(&f.suggestions, "suggestions", 0, fmt.Sprintf("Suggestions shown, 0 to %d", settings.MaxSuggestionCount))
	flags.StringVar(&f.color, "color", "", "Primary color")
	flags.BoolVar(&f.materialYou, "material-you", false, "Use dynamic colors where supported")
	flags.StringVar(&f.fontSize, "font-size", "", "small, medium or large")
	flags.BoolVar(&f.compact, "compact", false, "Compact padding")
	return cmd
}
