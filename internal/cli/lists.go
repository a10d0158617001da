package cli

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/lister-client/internal/app/screen"
	"github.com/jsamuelsen11/lister-client/internal/domain/shopping"
)

// withOverview runs fn against a list overview holder. Operations fn
// launches finish before it returns, even if the command is interrupted.
func withOverview(cmd *cobra.Command, a *app, fn func(env *Env, o *screen.ListOverview) error) error {
	env, err := a.load(cmd)
	if err != nil {
		return err
	}
	o := screen.NewListOverview(cmd.Context(), env.Repo, env.Prefs, env.Logger)
	defer func() { _ = o.Close() }()
	return fn(env, o)
}

// showLists renders the overview; all includes hidden lists.
func showLists(cmd *cobra.Command, env *Env, o *screen.ListOverview, all bool) error {
	if all && !o.State().IsReorderMode {
		o.ToggleReorderMode()
	}
	st := o.State()
	if st.Error != "" {
		return report(cmd, env, st.Error)
	}
	themeFor(cmd, env).lists(o.DisplayLists(), st.HiddenLists)
	return nil
}

func newListsCmd(a *app) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "lists",
		Short: "Show shopping lists in their saved order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withOverview(cmd, a, func(env *Env, o *screen.ListOverview) error {
				o.LaunchLoadLists()
				_ = o.Wait()
				return showLists(cmd, env, o, all)
			})
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "Include hidden lists")

	cmd.AddCommand(newListsCreateCmd(a))
	cmd.AddCommand(newListsRenameCmd(a))
	cmd.AddCommand(newListsDeleteCmd(a))
	cmd.AddCommand(newListsOrderCmd(a))
	cmd.AddCommand(newListsVisibilityCmd(a, "hide", true))
	cmd.AddCommand(newListsVisibilityCmd(a, "show", false))
	return cmd
}

func newListsCreateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "create <name>",
		Short: "Create a list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withOverview(cmd, a, func(env *Env, o *screen.ListOverview) error {
				o.LaunchCreateList(args[0])
				if err := o.Wait(); err != nil {
					return report(cmd, env, o.State().Error)
				}
				return showLists(cmd, env, o, false)
			})
		},
	}
}

func newListsRenameCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "rename <list-id> <name>",
		Short: "Rename a list",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("list", args[0])
			if err != nil {
				return err
			}
			return withOverview(cmd, a, func(env *Env, o *screen.ListOverview) error {
				o.LaunchUpdateList(id, args[1])
				if err := o.Wait(); err != nil {
					return report(cmd, env, o.State().Error)
				}
				return showLists(cmd, env, o, false)
			})
		},
	}
}

func newListsDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "delete <list-id>",
		Aliases: []string{"rm"},
		Short:   "Delete a list and its items",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("list", args[0])
			if err != nil {
				return err
			}
			return withOverview(cmd, a, func(env *Env, o *screen.ListOverview) error {
				o.LaunchDeleteList(id)
				if err := o.Wait(); err != nil {
					return report(cmd, env, o.State().Error)
				}
				return showLists(cmd, env, o, false)
			})
		},
	}
}

func newListsOrderCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "order <list-id>...",
		Short: "Move the given lists to the top, in the given order",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids, err := parseIDs("list", args)
			if err != nil {
				return err
			}
			return withOverview(cmd, a, func(env *Env, o *screen.ListOverview) error {
				o.LaunchLoadLists()
				if err := o.Wait(); err != nil {
					return report(cmd, env, o.State().Error)
				}
				arrangement, err := arrange(o.State().Lists, ids)
				if err != nil {
					return err
				}
				o.LaunchReorderLists(arrangement)
				if err := o.Wait(); err != nil {
					return report(cmd, env, o.State().Error)
				}
				return showLists(cmd, env, o, true)
			})
		},
	}
}

// arrange moves the lists named by ids to the front in that order and keeps
// the rest in their current order.
func arrange(lists []shopping.ListWithCount, ids []int) ([]shopping.ListWithCount, error) {
	out := make([]shopping.ListWithCount, 0, len(lists))
	for _, id := range ids {
		i := slices.IndexFunc(lists, func(l shopping.ListWithCount) bool { return l.ID == id })
		if i < 0 {
			return nil, fmt.Errorf("list %d not found", id)
		}
		if !slices.ContainsFunc(out, func(l shopping.ListWithCount) bool { return l.ID == id }) {
			out = append(out, lists[i])
		}
	}
	for _, l := range lists {
		if !slices.Contains(ids, l.ID) {
			out = append(out, l)
		}
	}
	return out, nil
}

func newListsVisibilityCmd(a *app, use string, hide bool) *cobra.Command {
	short := "Show a hidden list again"
	if hide {
		short = "Hide a list from the overview"
	}
	return &cobra.Command{
		Use:   use + " <list-id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("list", args[0])
			if err != nil {
				return err
			}
			return withOverview(cmd, a, func(env *Env, o *screen.ListOverview) error {
				_, hidden := o.State().HiddenLists[id]
				if hidden != hide {
					o.LaunchToggleListVisibility(id)
					if err := o.Wait(); err != nil {
						return report(cmd, env, o.State().Error)
					}
				}
				o.LaunchLoadLists()
				_ = o.Wait()
				return showLists(cmd, env, o, true)
			})
		},
	}
}
