// Package tui is the interactive terminal client for the todo API.
package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/thenoetrevino/todos/internal/client"
	"github.com/thenoetrevino/todos/internal/config"
	"github.com/thenoetrevino/todos/internal/models"
)

// pageSize is how many todos are requested per list call when loading
const pageSize = 100

// TodoAPI is the subset of the HTTP client the TUI needs
type TodoAPI interface {
	List(ctx context.Context, skip, limit int) ([]*models.Todo, error)
	Create(ctx context.Context, in client.TodoInput) (*models.Todo, error)
	Update(ctx context.Context, id int, in client.TodoInput) (*models.Todo, error)
	Delete(ctx context.Context, id int) error
}

// Model is the Bubble Tea model for the todo list
type Model struct {
	ctx    context.Context
	api    TodoAPI
	keys   keyMap
	help   help.Model
	styles Styles

	todos  []*models.Todo
	cursor int

	// Inline add
	adding bool
	input  textinput.Model

	loading bool
	status  string
	errText string

	width  int
	height int
}

// New creates the TUI model
func New(ctx context.Context, api TodoAPI, cfg *config.Config) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "What needs doing?"
	ti.CharLimit = 500

	return Model{
		ctx:     ctx,
		api:     api,
		keys:    newKeyMap(cfg.KeyMappings),
		help:    help.New(),
		styles:  NewStyles(cfg.ColorScheme),
		input:   ti,
		loading: true,
		width:   80,
		height:  24,
	}
}

// Todos returns the todos currently shown
func (m Model) Todos() []*models.Todo {
	return m.todos
}

// Selected returns the todo under the cursor, or nil when the list is empty
func (m Model) Selected() *models.Todo {
	if m.cursor < 0 || m.cursor >= len(m.todos) {
		return nil
	}
	return m.todos[m.cursor]
}

func (m *Model) clampCursor() {
	if m.cursor >= len(m.todos) {
		m.cursor = len(m.todos) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m Model) counts() (done, pending int) {
	for _, t := range m.todos {
		if t.Completed {
			done++
		} else {
			pending++
		}
	}
	return done, pending
}
