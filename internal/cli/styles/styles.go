package styles

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/thenoetrevino/todos/internal/config"
	"github.com/thenoetrevino/todos/internal/models"
)

var (
	// Card styles
	CardStyle lipgloss.Style
	CardWidth = 72

	// Text styles
	TitleStyle    lipgloss.Style
	SubtitleStyle lipgloss.Style
	LabelStyle    lipgloss.Style // For field labels like "Status:"
	ValueStyle    lipgloss.Style
	SectionStyle  lipgloss.Style // For section headers like "Description"

	// Status styles
	DoneStyle    lipgloss.Style
	PendingStyle lipgloss.Style
	SuccessStyle lipgloss.Style
	ErrorStyle   lipgloss.Style
)

func init() {
	Init(config.DefaultColorScheme())
}

// Init initializes all CLI styles with the given color scheme
func Init(colors config.ColorScheme) {
	CardStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(colors.Accent)).
		Padding(1, 2).
		Width(CardWidth)

	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Title))

	SubtitleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Subtle))

	LabelStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Accent))

	ValueStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Normal))

	SectionStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Accent)).
		Bold(true).
		MarginTop(1)

	DoneStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Done))

	PendingStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Pending))

	SuccessStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.InfoFg)).
		Background(lipgloss.Color(colors.InfoBg)).
		Padding(0, 1)

	ErrorStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.ErrorFg)).
		Background(lipgloss.Color(colors.ErrorBg)).
		Padding(0, 1)
}

// ═══════════════════════════════════════════════════════════════════
// HELPER FUNCTIONS
// ═══════════════════════════════════════════════════════════════════

// StatusMark returns the colored checkbox for a todo
func StatusMark(completed bool) string {
	if completed {
		return DoneStyle.Render("[x]")
	}
	return PendingStyle.Render("[ ]")
}

// StatusText returns "done" or "pending", colored
func StatusText(completed bool) string {
	if completed {
		return DoneStyle.Render("done")
	}
	return PendingStyle.Render("pending")
}

// RenderTodoLine renders a todo as a single list row
// Format: "[x] #12  Title"
func RenderTodoLine(todo *models.Todo) string {
	id := SubtitleStyle.Render(fmt.Sprintf("#%d", todo.ID))
	return fmt.Sprintf("%s %s  %s", StatusMark(todo.Completed), id, ValueStyle.Render(todo.Title))
}

// RenderTodoCard renders the full detail view used by `todo show`
func RenderTodoCard(todo *models.Todo) string {
	content := TitleStyle.Render(todo.Title) + "\n" +
		SubtitleStyle.Render(fmt.Sprintf("#%d", todo.ID)) + "\n\n" +
		LabelStyle.Render("Status: ") + StatusText(todo.Completed) + "\n" +
		SectionStyle.Render("Description") + "\n" +
		RenderDescription(todo.Description, CardWidth-6)

	return RenderCard(content)
}

// RenderCard wraps content in a styled card border
func RenderCard(content string) string {
	return CardStyle.Render(content)
}
