package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme bundles the styles and border every renderer pulls from.
type Theme struct {
	Name                                   string
	Title, Muted, Accent, Success, Error   lipgloss.Style
	Selected, Heading, Body, Label, Status lipgloss.Style
	Border                                 lipgloss.Border
	BorderColor                            lipgloss.TerminalColor
	Cursor                                 string
}

var asciiBorder = lipgloss.Border{
	Top: "-", Bottom: "-", Left: "|", Right: "|",
	TopLeft: "+", TopRight: "+", BottomLeft: "+", BottomRight: "+",
}

var current = newTheme("classic")

// SetTheme switches the process theme. Unknown names fall back to classic.
func SetTheme(name string) { current = newTheme(name) }

func Current() Theme { return current }

func newTheme(name string) Theme {
	plain := lipgloss.NewStyle()
	switch strings.ToLower(name) {
	case "neon":
		return Theme{
			Name:        "neon",
			Title:       plain.Bold(true).Foreground(lipgloss.Color("13")),
			Muted:       plain.Faint(true),
			Accent:      plain.Foreground(lipgloss.Color("14")),
			Success:     plain.Foreground(lipgloss.Color("10")),
			Error:       plain.Foreground(lipgloss.Color("9")).Bold(true),
			Selected:    plain.Bold(true).Foreground(lipgloss.Color("13")),
			Heading:     plain.Bold(true).Foreground(lipgloss.Color("14")),
			Body:        plain.Foreground(lipgloss.Color("7")),
			Label:       plain.Foreground(lipgloss.Color("11")),
			Status:      plain.Foreground(lipgloss.Color("10")),
			Border:      lipgloss.RoundedBorder(),
			BorderColor: lipgloss.Color("13"),
			Cursor:      "▸ ",
		}
	case "mono":
		return Theme{
			Name:  "mono",
			Title: plain, Muted: plain, Accent: plain, Success: plain, Error: plain,
			Selected: plain, Heading: plain, Body: plain, Label: plain, Status: plain,
			Border:      asciiBorder,
			BorderColor: lipgloss.NoColor{},
			Cursor:      "> ",
		}
	default:
		return Theme{
			Name:        "classic",
			Title:       plain.Bold(true),
			Muted:       plain.Faint(true),
			Accent:      plain.Foreground(lipgloss.Color("12")),
			Success:     plain.Foreground(lipgloss.Color("42")),
			Error:       plain.Foreground(lipgloss.Color("9")).Bold(true),
			Selected:    plain.Bold(true).Reverse(true),
			Heading:     plain.Bold(true),
			Body:        plain,
			Label:       plain.Bold(true),
			Status:      plain.Foreground(lipgloss.Color("42")),
			Border:      lipgloss.RoundedBorder(),
			BorderColor: lipgloss.Color("8"),
			Cursor:      "> ",
		}
	}
}
