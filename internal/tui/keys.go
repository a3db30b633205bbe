package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/thenoetrevino/todos/internal/config"
)

// keyMap adapts the configured key mappings to bubbles key bindings
type keyMap struct {
	Add     key.Binding
	Toggle  key.Binding
	Delete  key.Binding
	Refresh key.Binding
	Up      key.Binding
	Down    key.Binding
	Quit    key.Binding
}

func newKeyMap(km config.KeyMappings) keyMap {
	return keyMap{
		Add:     key.NewBinding(key.WithKeys(km.AddTodo), key.WithHelp(helpKey(km.AddTodo), "add")),
		Toggle:  key.NewBinding(key.WithKeys(km.ToggleTodo), key.WithHelp(helpKey(km.ToggleTodo), "toggle")),
		Delete:  key.NewBinding(key.WithKeys(km.DeleteTodo), key.WithHelp(helpKey(km.DeleteTodo), "delete")),
		Refresh: key.NewBinding(key.WithKeys(km.Refresh), key.WithHelp(helpKey(km.Refresh), "refresh")),
		Up:      key.NewBinding(key.WithKeys(km.PrevTodo, "up"), key.WithHelp(helpKey(km.PrevTodo)+"/↑", "up")),
		Down:    key.NewBinding(key.WithKeys(km.NextTodo, "down"), key.WithHelp(helpKey(km.NextTodo)+"/↓", "down")),
		Quit:    key.NewBinding(key.WithKeys(km.Quit, "ctrl+c"), key.WithHelp(helpKey(km.Quit), "quit")),
	}
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Add, k.Toggle, k.Delete, k.Refresh, k.Quit}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

func helpKey(k string) string {
	if k == " " {
		return "space"
	}
	return k
}
