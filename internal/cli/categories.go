package cli

import (
	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/lister-client/internal/app/screen"
)

// categoryWorkers bounds the concurrent item fetches behind the usage counts.
const categoryWorkers = 4

// withCategories runs fn against a category management holder. Operations
// fn launches finish before it returns.
func withCategories(cmd *cobra.Command, a *app, fn func(env *Env, m *screen.CategoryManagement) error) error {
	env, err := a.load(cmd)
	if err != nil {
		return err
	}
	m := screen.NewCategoryManagement(cmd.Context(), env.Repo, categoryWorkers, env.Logger)
	defer func() { _ = m.Close() }()
	return fn(env, m)
}

func showCategories(cmd *cobra.Command, env *Env, m *screen.CategoryManagement) error {
	st := m.State()
	if st.Error != "" {
		return report(cmd, env, st.Error)
	}
	themeFor(cmd, env).categories(st.Categories)
	return nil
}

func newCategoriesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "categories",
		Aliases: []string{"cats"},
		Short:   "Show categories with the number of items using each",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withCategories(cmd, a, func(env *Env, m *screen.CategoryManagement) error {
				m.LaunchLoadCategories()
				_ = m.Wait()
				return showCategories(cmd, env, m)
			})
		},
	}

	cmd.AddCommand(newCategoriesAddCmd(a))
	cmd.AddCommand(newCategoriesRenameCmd(a))
	cmd.AddCommand(newCategoriesRemoveCmd(a))
	return cmd
}

func newCategoriesAddCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "add <name>",
		Short: "Create a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withCategories(cmd, a, func(env *Env, m *screen.CategoryManagement) error {
				if _, err := env.Repo.CreateCategory(cmd.Context(), args[0]); err != nil {
					return report(cmd, env, err.Error())
				}
				m.LaunchLoadCategories()
				_ = m.Wait()
				return showCategories(cmd, env, m)
			})
		},
	}
}

func newCategoriesRenameCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "rename <category-id> <name>",
		Short: "Rename a category on every item using it",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("category", args[0])
			if err != nil {
				return err
			}
			return withCategories(cmd, a, func(env *Env, m *screen.CategoryManagement) error {
				m.LaunchRenameCategory(id, args[1])
				if err := m.Wait(); err != nil {
					return report(cmd, env, m.State().Error)
				}
				return showCategories(cmd, env, m)
			})
		},
	}
}

func newCategoriesRemoveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <category-id>...",
		Aliases: []string{"delete"},
		Short:   "Delete unused categories",
		Long: "Delete one category, refusing when items still use it, or several at once.\n" +
			"Several ids are deleted in ascending order, stopping at the first failure.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids, err := parseIDs("category", args)
			if err != nil {
				return err
			}
			return withCategories(cmd, a, func(env *Env, m *screen.CategoryManagement) error {
				m.LaunchLoadCategories()
				if err := m.Wait(); err != nil {
					return report(cmd, env, m.State().Error)
				}

				if len(ids) == 1 {
					m.LaunchDeleteCategory(ids[0])
					if err := m.Wait(); err != nil {
						return report(cmd, env, m.State().Error)
					}
					return showCategories(cmd, env, m)
				}

				m.ToggleMultiSelectMode()
				for _, id := range ids {
					if _, ok := m.State().Selected[id]; !ok {
						m.ToggleCategorySelection(id)
					}
				}
				m.LaunchDeleteSelectedCategories()
				err := m.Wait()
				n := m.State().Deleted
				t := themeFor(cmd, env)
				if err != nil {
					t.line(t.muted.Render(pluralize(n, "category") + " deleted before the failure"))
					return report(cmd, env, m.State().Error)
				}
				t.ok(pluralize(n, "category") + " deleted")
				t.gap()
				return showCategories(cmd, env, m)
			})
		},
	}
}
