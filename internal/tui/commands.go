package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/thenoetrevino/todos/internal/client"
	"github.com/thenoetrevino/todos/internal/models"
)

type todosLoadedMsg struct {
	todos []*models.Todo
}

type todoCreatedMsg struct {
	todo *models.Todo
}

type todoUpdatedMsg struct {
	todo *models.Todo
}

type todoDeletedMsg struct {
	id int
}

type errMsg struct {
	err error
}

// loadTodos pages through the whole list until an empty page comes back.
// The server may cap a page below pageSize, so skip advances by what arrived.
func (m Model) loadTodos() tea.Cmd {
	ctx, api := m.ctx, m.api
	return func() tea.Msg {
		all := []*models.Todo{}
		for {
			page, err := api.List(ctx, len(all), pageSize)
			if err != nil {
				return errMsg{err: err}
			}
			if len(page) == 0 {
				break
			}
			all = append(all, page...)
		}
		return todosLoadedMsg{todos: all}
	}
}

func (m Model) createTodo(title string) tea.Cmd {
	ctx, api := m.ctx, m.api
	return func() tea.Msg {
		todo, err := api.Create(ctx, client.TodoInput{Title: title})
		if err != nil {
			return errMsg{err: err}
		}
		return todoCreatedMsg{todo: todo}
	}
}

// toggleTodo flips completion; the full record is sent since PUT replaces every field
func (m Model) toggleTodo(todo *models.Todo) tea.Cmd {
	ctx, api := m.ctx, m.api
	in := client.TodoInput{
		Title:       todo.Title,
		Description: todo.Description,
		Completed:   !todo.Completed,
	}
	id := todo.ID
	return func() tea.Msg {
		updated, err := api.Update(ctx, id, in)
		if err != nil {
			return errMsg{err: err}
		}
		return todoUpdatedMsg{todo: updated}
	}
}

func (m Model) deleteTodo(id int) tea.Cmd {
	ctx, api := m.ctx, m.api
	return func() tea.Msg {
		if err := api.Delete(ctx, id); err != nil {
			return errMsg{err: err}
		}
		return todoDeletedMsg{id: id}
	}
}
