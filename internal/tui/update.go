package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/thenoetrevino/todos/internal/client"
	"github.com/thenoetrevino/todos/internal/models"
)

// Init loads the list from the server
func (m Model) Init() tea.Cmd {
	return m.loadTodos()
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		return m, nil

	case todosLoadedMsg:
		m.loading = false
		m.errText = ""
		m.todos = msg.todos
		m.clampCursor()
		return m, nil

	case todoCreatedMsg:
		m.errText = ""
		m.todos = append(append([]*models.Todo{}, m.todos...), msg.todo)
		m.cursor = len(m.todos) - 1
		m.status = fmt.Sprintf("added #%d", msg.todo.ID)
		return m, nil

	case todoUpdatedMsg:
		m.errText = ""
		todos := make([]*models.Todo, len(m.todos))
		for i, t := range m.todos {
			todos[i] = t
			if t.ID == msg.todo.ID {
				todos[i] = msg.todo
			}
		}
		m.todos = todos
		return m, nil

	case todoDeletedMsg:
		m.errText = ""
		todos := make([]*models.Todo, 0, len(m.todos))
		for _, t := range m.todos {
			if t.ID != msg.id {
				todos = append(todos, t)
			}
		}
		m.todos = todos
		m.clampCursor()
		m.status = fmt.Sprintf("deleted #%d", msg.id)
		return m, nil

	case errMsg:
		m.loading = false
		m.errText = describeError(msg.err)
		// Another client may have removed the todo; resync
		if errors.Is(msg.err, client.ErrNotFound) {
			return m, m.loadTodos()
		}
		return m, nil

	case tea.KeyMsg:
		if m.adding {
			return m.updateAdding(msg)
		}
		return m.updateNormal(msg)
	}

	return m, nil
}

func (m Model) updateAdding(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		title := strings.TrimSpace(m.input.Value())
		if title == "" {
			m.errText = "Title cannot be empty"
			return m, nil
		}
		m.adding = false
		m.errText = ""
		m.input.SetValue("")
		m.input.Blur()
		return m, m.createTodo(title)
	case tea.KeyEsc:
		m.adding = false
		m.errText = ""
		m.input.SetValue("")
		m.input.Blur()
		return m, nil
	case tea.KeyCtrlC:
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.todos)-1 {
			m.cursor++
		}
		return m, nil

	case key.Matches(msg, m.keys.Add):
		m.adding = true
		m.status = ""
		m.input.SetValue("")
		m.input.Focus()
		return m, nil

	case key.Matches(msg, m.keys.Toggle):
		if todo := m.Selected(); todo != nil {
			return m, m.toggleTodo(todo)
		}
		return m, nil

	case key.Matches(msg, m.keys.Delete):
		if todo := m.Selected(); todo != nil {
			return m, m.deleteTodo(todo.ID)
		}
		return m, nil

	case key.Matches(msg, m.keys.Refresh):
		m.loading = true
		m.status = ""
		return m, m.loadTodos()
	}

	return m, nil
}

func describeError(err error) string {
	var ve *client.ValidationError
	switch {
	case errors.Is(err, client.ErrNotFound):
		return "Todo not found, reloading"
	case errors.As(err, &ve):
		return ve.Detail
	default:
		return err.Error()
	}
}
