package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/lister-client/internal/app/screen"
)

func newSuggestCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "suggest",
		Short: "Autocomplete item and category names the way the item form does",
	}
	cmd.AddCommand(newSuggestItemsCmd(a))
	cmd.AddCommand(newSuggestCategoriesCmd(a))
	return cmd
}

func newSuggestItemsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "items <list-id> <input>",
		Short: "Known item names matching input, with the category last used for it",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			listID, err := parseID("list", args[0])
			if err != nil {
				return err
			}
			return withDetail(cmd, a, listID, func(env *Env, d *screen.ListDetail) error {
				t := themeFor(cmd, env)
				t.suggestions(args[1], d.ItemSuggestions(args[1]))
				if c, ok := d.SuggestedCategory(args[1]); ok {
					t.line(t.muted.Render(fmt.Sprintf("  category: %s", c)))
				}
				return nil
			})
		},
	}
}

func newSuggestCategoriesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "categories <list-id> <input>",
		Short: "Category names matching input, most used in the list first",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			listID, err := parseID("list", args[0])
			if err != nil {
				return err
			}
			return withDetail(cmd, a, listID, func(env *Env, d *screen.ListDetail) error {
				themeFor(cmd, env).suggestions(args[1], d.CategorySuggestions(args[1]))
				return nil
			})
		},
	}
}
