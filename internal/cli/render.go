package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jsamuelsen11/lister-client/internal/domain/settings"
	"github.com/jsamuelsen11/lister-client/internal/domain/shopping"
)

// theme renders output in the user's primary color. The renderer follows
// the writer, so output to a pipe or buffer carries no escape codes.
type theme struct {
	w       io.Writer
	compact bool

	title   lipgloss.Style
	accent  lipgloss.Style
	muted   lipgloss.Style
	done    lipgloss.Style
	errText lipgloss.Style
	okText  lipgloss.Style
}

func newTheme(w io.Writer, s settings.Settings) *theme {
	r := lipgloss.NewRenderer(w)
	primary := lipgloss.Color(s.PrimaryColor.Hex())

	t := &theme{
		w:       w,
		compact: s.PaddingMode == settings.PaddingCompact,
		title:   r.NewStyle().Bold(true).Foreground(primary),
		accent:  r.NewStyle().Foreground(primary),
		muted:   r.NewStyle().Faint(true),
		done:    r.NewStyle().Faint(true).Strikethrough(true),
		errText: r.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		okText:  r.NewStyle().Foreground(lipgloss.Color("42")),
	}
	if s.FontSize == settings.FontLarge {
		t.title = t.title.Underline(true)
	}
	return t
}

func (t *theme) line(s string) {
	fmt.Fprintln(t.w, s)
}

// gap separates sections unless compact padding is on.
func (t *theme) gap() {
	if !t.compact {
		fmt.Fprintln(t.w)
	}
}

func (t *theme) heading(s string) {
	t.line(t.title.Render(s))
}

func (t *theme) ok(msg string) {
	t.line(t.okText.Render("✔ " + msg))
}

func (t *theme) fail(msg string) {
	t.line(t.errText.Render("✖ " + msg))
}

func (t *theme) lists(lists []shopping.ListWithCount, hidden map[int]struct{}) {
	t.heading("Lists")
	if len(lists) == 0 {
		t.line(t.muted.Render("  no lists"))
		return
	}
	for _, l := range lists {
		row := fmt.Sprintf("  %s %s", t.accent.Render(fmt.Sprintf("#%d", l.ID)), l.Name)
		if l.Count != nil {
			row += t.muted.Render(fmt.Sprintf(" (%d)", *l.Count))
		}
		if _, ok := hidden[l.ID]; ok {
			row += t.muted.Render(" [hidden]")
		}
		t.line(row)
	}
}

func (t *theme) groups(listName string, groups []shopping.ItemGroup, collapsed map[string]bool) {
	t.heading(listName)
	if len(groups) == 0 {
		t.line(t.muted.Render("  no items"))
		return
	}
	for i, g := range groups {
		if i > 0 {
			t.gap()
		}
		header := fmt.Sprintf("%s (%d)", g.Name, len(g.Items))
		if g.Kind != shopping.GroupCategory {
			header = t.muted.Render(header)
		} else {
			header = t.accent.Render(header)
		}
		t.line(header)
		if collapsed[g.Key()] {
			continue
		}
		for _, it := range g.Items {
			t.line("  " + t.item(it))
		}
	}
}

func (t *theme) item(it shopping.Item) string {
	box := "☐"
	name := it.Name
	if it.InCart {
		box = "☑"
		name = t.done.Render(name)
	}
	row := fmt.Sprintf("%s %s", box, name)
	if amount := formatAmount(it); amount != "" {
		row += " " + t.muted.Render(amount)
	}
	return fmt.Sprintf("%s %s", t.muted.Render(fmt.Sprintf("#%d", it.ID)), row)
}

// formatAmount renders "2 l", "1.5" or "" for an item without an amount.
func formatAmount(it shopping.Item) string {
	if it.Amount == nil {
		return ""
	}
	s := strconv.FormatFloat(*it.Amount, 'f', -1, 64)
	if it.AmountUnit != nil {
		s += " " + *it.AmountUnit
	}
	return s
}

func (t *theme) categories(cats []shopping.CategoryWithCount) {
	t.heading("Categories")
	if len(cats) == 0 {
		t.line(t.muted.Render("  no categories"))
		return
	}
	for _, c := range cats {
		row := fmt.Sprintf("  %s %s %s", t.accent.Render(fmt.Sprintf("#%d", c.ID)), c.Name, t.muted.Render(fmt.Sprintf("(%d items)", c.ItemCount)))
		t.line(row)
	}
}

func (t *theme) suggestions(input string, names []string) {
	t.heading(fmt.Sprintf("Suggestions for %q", input))
	if len(names) == 0 {
		t.line(t.muted.Render("  none"))
		return
	}
	t.line("  " + strings.Join(names, ", "))
}
