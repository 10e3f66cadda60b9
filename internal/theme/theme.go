// Package theme defines the lipgloss styles for both display modes.
// The active palette follows the persisted dark-mode flag rather than
// the terminal background, so toggling the flag restyles the whole UI
// immediately.
package theme

import "github.com/charmbracelet/lipgloss"

// palette holds the raw colors for one display mode.
type palette struct {
	blue    lipgloss.Color
	green   lipgloss.Color
	yellow  lipgloss.Color
	red     lipgloss.Color
	magenta lipgloss.Color
	gray    lipgloss.Color
	text    lipgloss.Color
	subtle  lipgloss.Color
	border  lipgloss.Color
}

var darkPalette = palette{
	blue:    lipgloss.Color("#5B9BD5"),
	green:   lipgloss.Color("#6BCB77"),
	yellow:  lipgloss.Color("#FFD93D"),
	red:     lipgloss.Color("#FF6B6B"),
	magenta: lipgloss.Color("#CC5DE8"),
	gray:    lipgloss.Color("#868E96"),
	text:    lipgloss.Color("#F8F9FA"),
	subtle:  lipgloss.Color("#495057"),
	border:  lipgloss.Color("#495057"),
}

var lightPalette = palette{
	blue:    lipgloss.Color("#2B6CB0"),
	green:   lipgloss.Color("#2F855A"),
	yellow:  lipgloss.Color("#B7791F"),
	red:     lipgloss.Color("#C53030"),
	magenta: lipgloss.Color("#805AD5"),
	gray:    lipgloss.Color("#718096"),
	text:    lipgloss.Color("#1A202C"),
	subtle:  lipgloss.Color("#CBD5E0"),
	border:  lipgloss.Color("#E2E8F0"),
}

// Theme is the set of styles for one display mode.
type Theme struct {
	p palette

	Header       lipgloss.Style
	StatusBar    lipgloss.Style
	Panel        lipgloss.Style
	Title        lipgloss.Style
	ListItem     lipgloss.Style
	SelectedItem lipgloss.Style
	Help         lipgloss.Style
	Subtle       lipgloss.Style
	StatCard     lipgloss.Style
}

// New builds the theme for the given display mode.
func New(dark bool) Theme {
	p := lightPalette
	if dark {
		p = darkPalette
	}

	return Theme{
		p: p,

		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.text).
			Background(p.blue).
			Padding(0, 1),

		StatusBar: lipgloss.NewStyle().
			Foreground(p.text).
			Background(p.subtle).
			Padding(0, 1),

		Panel: lipgloss.NewStyle().
			Padding(1, 2).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.border),

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.text).
			MarginBottom(1),

		ListItem: lipgloss.NewStyle().
			PaddingLeft(2),

		SelectedItem: lipgloss.NewStyle().
			PaddingLeft(1).
			Bold(true).
			Foreground(p.blue).
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(p.blue),

		Help: lipgloss.NewStyle().
			Foreground(p.gray).
			Italic(true),

		Subtle: lipgloss.NewStyle().
			Foreground(p.gray),

		StatCard: lipgloss.NewStyle().
			Padding(0, 2).
			Margin(0, 1).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.border),
	}
}

// Status returns a color-coded style for the given issue status.
func (t Theme) Status(status string) lipgloss.Style {
	base := lipgloss.NewStyle().Bold(true)

	switch status {
	case "pending":
		return base.Foreground(t.p.yellow)
	case "in progress":
		return base.Foreground(t.p.blue)
	case "solved":
		return base.Foreground(t.p.green)
	case "archived":
		return base.Foreground(t.p.gray)
	default:
		return base.Foreground(t.p.gray)
	}
}

// Priority returns a color-coded style for the given issue priority.
func (t Theme) Priority(priority string) lipgloss.Style {
	base := lipgloss.NewStyle().Bold(true)

	switch priority {
	case "high":
		return base.Foreground(t.p.red)
	case "medium":
		return base.Foreground(t.p.yellow)
	case "low":
		return base.Foreground(t.p.green)
	default:
		return base.Foreground(t.p.gray)
	}
}
