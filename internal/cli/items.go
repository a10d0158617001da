package cli

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/lister-client/internal/app/screen"
	"github.com/jsamuelsen11/lister-client/internal/domain/shopping"
)

// withDetail opens the detail holder on listID and runs fn against it.
// Operations fn launches finish before it returns.
func withDetail(cmd *cobra.Command, a *app, listID int, fn func(env *Env, d *screen.ListDetail) error) error {
	env, err := a.load(cmd)
	if err != nil {
		return err
	}
	ctx := cmd.Context()

	list, err := env.Repo.GetList(ctx, listID)
	if err != nil {
		return report(cmd, env, err.Error())
	}

	d := screen.NewListDetail(ctx, env.Repo, env.Prefs, env.Policy(), env.Logger)
	defer func() { _ = d.Close() }()

	d.LaunchInitialize(list.ID, list.Name)
	if err := d.Wait(); err != nil {
		return report(cmd, env, d.State().Error)
	}
	return fn(env, d)
}

// showItems renders the list with the groups whose headers are named in
// collapse folded away.
func showItems(cmd *cobra.Command, env *Env, d *screen.ListDetail, collapse []string) error {
	groups := d.Groups()
	for _, g := range groups {
		if slices.Contains(collapse, g.Name) {
			d.ToggleGroup(g.Key())
		}
	}
	st := d.State()
	if st.Error != "" {
		return report(cmd, env, st.Error)
	}
	themeFor(cmd, env).groups(st.ListName, groups, st.Collapsed)
	return nil
}

func newItemsCmd(a *app) *cobra.Command {
	var collapse []string

	cmd := &cobra.Command{
		Use:   "items <list-id>",
		Short: "Show the items of a list grouped by category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			listID, err := parseID("list", args[0])
			if err != nil {
				return err
			}
			return withDetail(cmd, a, listID, func(env *Env, d *screen.ListDetail) error {
				return showItems(cmd, env, d, collapse)
			})
		},
	}
	cmd.Flags().StringSliceVar(&collapse, "collapse", nil, `Group headers to fold away, e.g. "Dairy" or "In cart"`)

	cmd.AddCommand(newItemsAddCmd(a))
	cmd.AddCommand(newItemsEditCmd(a))
	cmd.AddCommand(newItemsRemoveCmd(a))
	cmd.AddCommand(newItemsToggleCmd(a))
	cmd.AddCommand(newItemsClearCartCmd(a))
	cmd.AddCommand(newItemsRenameCategoryCmd(a))
	return cmd
}

// itemFlags are the editable item fields; only flags set on the command line
// change the draft.
type itemFlags struct {
	name     string
	amount   float64
	unit     string
	category string
}

func (f *itemFlags) register(cmd *cobra.Command, withName bool) {
	if withName {
		cmd.Flags().StringVar(&f.name, "name", "", "Item name")
	}
	cmd.Flags().Float64Var(&f.amount, "amount", 0, "Amount to buy")
	cmd.Flags().StringVar(&f.unit, "unit", "", "Unit of the amount; empty clears it")
	cmd.Flags().StringVar(&f.category, "category", "", "Category name; empty clears it")
}

func (f *itemFlags) apply(cmd *cobra.Command, draft *shopping.ItemDraft) {
	flags := cmd.Flags()
	if flags.Changed("name") {
		draft.Name = f.name
	}
	if flags.Changed("amount") {
		v := f.amount
		draft.Amount = &v
	}
	if flags.Changed("unit") {
		v := f.unit
		draft.AmountUnit = &v
	}
	if flags.Changed("category") {
		v := f.category
		draft.Category = &v
	}
}

func newItemsAddCmd(a *app) *cobra.Command {
	var f itemFlags

	cmd := &cobra.Command{
		Use:   "add <list-id> <name>",
		Short: "Add an item; the category defaults to the one last used for the name",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			listID, err := parseID("list", args[0])
			if err != nil {
				return err
			}
			return withDetail(cmd, a, listID, func(env *Env, d *screen.ListDetail) error {
				draft := shopping.ItemDraft{Name: args[1]}
				f.apply(cmd, &draft)
				if !cmd.Flags().Changed("category") {
					if c, ok := d.SuggestedCategory(draft.Name); ok {
						draft.Category = &c
					}
				}
				draft = draft.Normalize()
				if err := draft.Validate(); err != nil {
					return err
				}
				d.LaunchCreateItem(draft)
				if err := d.Wait(); err != nil {
					return report(cmd, env, d.State().Error)
				}
				return showItems(cmd, env, d, nil)
			})
		},
	}
	f.register(cmd, false)
	return cmd
}

func newItemsEditCmd(a *app) *cobra.Command {
	var f itemFlags

	cmd := &cobra.Command{
		Use:   "edit <item-id>",
		Short: "Change the fields of an item given as flags",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("item", args[0])
			if err != nil {
				return err
			}
			env, err := a.load(cmd)
			if err != nil {
				return err
			}
			it, err := env.Repo.GetItem(cmd.Context(), id)
			if err != nil {
				return report(cmd, env, err.Error())
			}
			return withDetail(cmd, a, it.ListID, func(env *Env, d *screen.ListDetail) error {
				draft := shopping.ItemDraft{
					Name:       it.Name,
					Amount:     it.Amount,
					AmountUnit: it.AmountUnit,
					Category:   it.Category,
				}
				f.apply(cmd, &draft)
				draft = draft.Normalize()
				if err := draft.Validate(); err != nil {
					return err
				}
				d.LaunchUpdateItem(id, draft)
				if err := d.Wait(); err != nil {
					return report(cmd, env, d.State().Error)
				}
				return showItems(cmd, env, d, nil)
			})
		},
	}
	f.register(cmd, true)
	return cmd
}

// itemAction launches fn on the detail screen of the list holding item id
// and waits for it.
func itemAction(cmd *cobra.Command, a *app, raw string, fn func(d *screen.ListDetail, id int)) error {
	id, err := parseID("item", raw)
	if err != nil {
		return err
	}
	env, err := a.load(cmd)
	if err != nil {
		return err
	}
	it, err := env.Repo.GetItem(cmd.Context(), id)
	if err != nil {
		return report(cmd, env, err.Error())
	}
	return withDetail(cmd, a, it.ListID, func(env *Env, d *screen.ListDetail) error {
		fn(d, id)
		if err := d.Wait(); err != nil {
			return report(cmd, env, d.State().Error)
		}
		return showItems(cmd, env, d, nil)
	})
}

func newItemsRemoveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <item-id>",
		Aliases: []string{"delete"},
		Short:   "Delete an item",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return itemAction(cmd, a, args[0], (*screen.ListDetail).LaunchDeleteItem)
		},
	}
}

func newItemsToggleCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <item-id>",
		Short: "Move an item into or out of the cart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return itemAction(cmd, a, args[0], (*screen.ListDetail).LaunchToggleItemCart)
		},
	}
}

func newItemsClearCartCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "clear-cart <list-id>",
		Short: "Delete every item in the cart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			listID, err := parseID("list", args[0])
			if err != nil {
				return err
			}
			return withDetail(cmd, a, listID, func(env *Env, d *screen.ListDetail) error {
				d.LaunchDeleteAllInCartItems()
				err := d.Wait()
				n := d.State().Cleared
				t := themeFor(cmd, env)
				if err != nil {
					if n > 0 {
						t.line(t.muted.Render(pluralize(n, "item") + " deleted before the failure"))
					}
					return report(cmd, env, d.State().Error)
				}
				t.ok(pluralize(n, "item") + " removed from the cart")
				t.gap()
				return showItems(cmd, env, d, nil)
			})
		},
	}
}

func newItemsRenameCategoryCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "rename-category <list-id> <category> <new-name>",
		Short: "Rename a category from a list's grouped view",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			listID, err := parseID("list", args[0])
			if err != nil {
				return err
			}
			return withDetail(cmd, a, listID, func(env *Env, d *screen.ListDetail) error {
				d.LaunchRenameCategory(args[1], args[2])
				if err := d.Wait(); err != nil {
					return report(cmd, env, d.State().Error)
				}
				return showItems(cmd, env, d, nil)
			})
		},
	}
}

// pluralize renders "1 item", "3 items" or "2 categories".
func pluralize(n int, noun string) string {
	switch {
	case n == 1:
	case strings.HasSuffix(noun, "y"):
		noun = strings.TrimSuffix(noun, "y") + "ies"
	default:
		noun += "s"
	}
	return fmt.Sprintf("%d %s", n, noun)
}
