package tui

import (
	"fmt"
	"strings"
)

// View implements tea.Model
func (m Model) View() string {
	var b strings.Builder

	done, pending := m.counts()
	header := fmt.Sprintf("%s   %s %d  %s %d",
		m.styles.Title.Render("Todos"),
		m.styles.Done.UnsetStrikethrough().Render("✔"), done,
		m.styles.Pending.Render("•"), pending,
	)
	b.WriteString(header + "\n\n")

	b.WriteString(m.renderList())

	if m.adding {
		b.WriteString("\n" + m.styles.InputBox.Render("Add todo\n"+m.input.View()))
	}

	b.WriteString("\n")
	switch {
	case m.errText != "":
		b.WriteString(m.styles.ErrorLine.Render(m.errText) + "\n")
	case m.status != "":
		b.WriteString(m.styles.Info.Render(m.status) + "\n")
	}

	b.WriteString(m.help.View(m.keys))

	return m.styles.Panel.Render(b.String())
}

func (m Model) renderList() string {
	if m.loading && len(m.todos) == 0 {
		return m.styles.Muted.Render("Loading...") + "\n"
	}
	if len(m.todos) == 0 {
		return m.styles.Muted.Render("Nothing to do. Press "+helpKey(m.keys.Add.Keys()[0])+" to add a todo.") + "\n"
	}

	start, end := m.visibleRange()

	var b strings.Builder
	for i := start; i < end; i++ {
		todo := m.todos[i]

		prefix := "  "
		if i == m.cursor {
			prefix = m.styles.Selected.Render("> ")
		}

		box := m.styles.Muted.Render("[ ]")
		title := m.styles.Normal.Render(todo.Title)
		if todo.Completed {
			box = m.styles.Done.UnsetStrikethrough().Render("[x]")
			title = m.styles.Done.Render(todo.Title)
		}

		b.WriteString(fmt.Sprintf("%s%s %s\n", prefix, box, title))
	}
	return b.String()
}

// visibleRange keeps the cursor on screen when the list is taller than the terminal
func (m Model) visibleRange() (int, int) {
	rows := m.height - 8
	if m.adding {
		rows -= 4
	}
	if rows < 1 {
		rows = 1
	}
	if len(m.todos) <= rows {
		return 0, len(m.todos)
	}

	start := m.cursor - rows/2
	if start < 0 {
		start = 0
	}
	end := start + rows
	if end > len(m.todos) {
		end = len(m.todos)
		start = end - rows
	}
	return start, end
}
