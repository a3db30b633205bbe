package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/thenoetrevino/todos/internal/config"
)

// Styles holds the lipgloss styles derived from the configured color scheme
type Styles struct {
	Panel     lipgloss.Style
	Title     lipgloss.Style
	Selected  lipgloss.Style
	Normal    lipgloss.Style
	Muted     lipgloss.Style
	Done      lipgloss.Style
	Pending   lipgloss.Style
	InputBox  lipgloss.Style
	Info      lipgloss.Style
	ErrorLine lipgloss.Style
}

// NewStyles builds TUI styles from a color scheme
func NewStyles(colors config.ColorScheme) Styles {
	return Styles{
		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(colors.Accent)).
			Padding(0, 1),
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(colors.Title)),
		Selected: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(colors.Accent)),
		Normal: lipgloss.NewStyle().
			Foreground(lipgloss.Color(colors.Normal)),
		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color(colors.Subtle)),
		Done: lipgloss.NewStyle().
			Foreground(lipgloss.Color(colors.Done)).
			Strikethrough(true),
		Pending: lipgloss.NewStyle().
			Foreground(lipgloss.Color(colors.Pending)),
		InputBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(colors.Subtle)).
			Padding(0, 1),
		Info: lipgloss.NewStyle().
			Foreground(lipgloss.Color(colors.InfoFg)).
			Background(lipgloss.Color(colors.InfoBg)).
			Padding(0, 1),
		ErrorLine: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(colors.ErrorFg)).
			Background(lipgloss.Color(colors.ErrorBg)).
			Padding(0, 1),
	}
}
