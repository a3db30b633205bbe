package config

// KeyMappings defines all configurable key bindings for the interactive client
type KeyMappings struct {
	// Todos
	AddTodo    string `yaml:"add_todo" toml:"add_todo"`
	ToggleTodo string `yaml:"toggle_todo" toml:"toggle_todo"`
	DeleteTodo string `yaml:"delete_todo" toml:"delete_todo"`
	Refresh    string `yaml:"refresh" toml:"refresh"`

	// Navigation
	PrevTodo string `yaml:"prev_todo" toml:"prev_todo"`
	NextTodo string `yaml:"next_todo" toml:"next_todo"`

	// Other
	Quit string `yaml:"quit" toml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		AddTodo:    "a",
		ToggleTodo: " ",
		DeleteTodo: "d",
		Refresh:    "r",
		PrevTodo:   "k",
		NextTodo:   "j",
		Quit:       "q",
	}
}

// applyDefaults fills in missing key mappings with defaults
func (k *KeyMappings) applyDefaults() {
	defaults := DefaultKeyMappings()

	if k.AddTodo == "" {
		k.AddTodo = defaults.AddTodo
	}
	if k.ToggleTodo == "" {
		k.ToggleTodo = defaults.ToggleTodo
	}
	if k.DeleteTodo == "" {
		k.DeleteTodo = defaults.DeleteTodo
	}
	if k.Refresh == "" {
		k.Refresh = defaults.Refresh
	}
	if k.PrevTodo == "" {
		k.PrevTodo = defaults.PrevTodo
	}
	if k.NextTodo == "" {
		k.NextTodo = defaults.NextTodo
	}
	if k.Quit == "" {
		k.Quit = defaults.Quit
	}
}
