package ui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/Makepad-fr/itemdeck/internal/model"
)

func OK(w io.Writer, msg string) {
	fmt.Fprintln(w, Current().Success.Render("✔ "+msg))
}

func Fail(w io.Writer, msg string) {
	fmt.Fprintln(w, Current().Error.Render("✖ "+msg))
}

// Panel frames lines with the current theme's border.
func Panel(lines []string) string {
	t := Current()
	border := lipgloss.NewStyle().
		Border(t.Border).
		BorderForeground(t.BorderColor).
		Padding(0, 1)
	return border.Render(strings.Join(lines, "\n"))
}

// FormatCreated renders a creation time in local time using layout.
func FormatCreated(ts time.Time, layout string) string {
	return ts.Local().Format(layout)
}

// OneLine folds newlines and runs of spaces so multi-line text fits a row.
func OneLine(s string, max int) string {
	s = strings.Join(strings.Fields(s), " ")
	r := []rune(s)
	if max > 3 && len(r) > max {
		return string(r[:max-3]) + "..."
	}
	return s
}

// CardLines renders one item the way the list shows it.
func CardLines(it model.Item, layout string) []string {
	t := Current()
	return []string{
		t.Heading.Render(OneLine(it.Title, 80)),
		t.Body.Render(OneLine(it.Description, 80)),
		t.Muted.Render("Created: " + FormatCreated(it.CreatedAt, layout)),
	}
}

// ItemsPanel is the non-interactive list view: a header and one card per item.
func ItemsPanel(items []model.Item, layout string) string {
	t := Current()
	lines := []string{
		fmt.Sprintf("%s  %s %d", t.Title.Render("Items"), t.Accent.Render("Total"), len(items)),
		"",
	}
	if len(items) == 0 {
		lines = append(lines, t.Muted.Render("no items"))
	}
	for i, it := range items {
		if i > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, CardLines(it, layout)...)
	}
	return Panel(lines)
}
