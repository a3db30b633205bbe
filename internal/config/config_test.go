package config

import (
	"os"
	"path/filepath"
	"testing"
)

// isolateEnv points the config lookup at an empty temp dir and clears overrides
func isolateEnv(t *testing.T) string {
	t.Helper()
	tempDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tempDir)
	for _, key := range []string{"TODOS_ADDR", "TODOS_DB_PATH", "TODOS_LOG_LEVEL", "TODOS_API_URL", "TODOS_MAX_LIST_LIMIT"} {
		t.Setenv(key, "")
	}
	return tempDir
}

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	configDir := filepath.Join(dir, "todos")
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		t.Fatalf("Failed to create config dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(configDir, "config.yaml"), []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
}

func TestDefaultKeyMappings(t *testing.T) {
	defaults := DefaultKeyMappings()

	if defaults.Quit != "q" {
		t.Errorf("Default Quit key = %s, want q", defaults.Quit)
	}
	if defaults.AddTodo != "a" {
		t.Errorf("Default AddTodo key = %s, want a", defaults.AddTodo)
	}
	if defaults.ToggleTodo != " " {
		t.Errorf("Default ToggleTodo key = %q, want space", defaults.ToggleTodo)
	}
}

func TestLoadConfigWithoutFile(t *testing.T) {
	isolateEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() without config file failed: %v", err)
	}

	if cfg.Server.Addr != ":8000" {
		t.Errorf("Server.Addr = %s, want :8000", cfg.Server.Addr)
	}
	if cfg.API.MaxListLimit != 1000 {
		t.Errorf("API.MaxListLimit = %d, want 1000", cfg.API.MaxListLimit)
	}
	if cfg.Client.URL != "http://localhost:8000" {
		t.Errorf("Client.URL = %s, want http://localhost:8000", cfg.Client.URL)
	}
	if cfg.ColorScheme.Accent == "" {
		t.Error("Expected default theme accent to be set")
	}
}

func TestLoadConfigWithFile(t *testing.T) {
	dir := isolateEnv(t)
	writeConfig(t, dir, `server:
  addr: "127.0.0.1:9999"
database:
  path: "/tmp/custom.db"
log:
  level: debug
key_mappings:
  quit: "x"
theme:
  preset: monochrome
`)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() with config file failed: %v", err)
	}

	if cfg.Server.Addr != "127.0.0.1:9999" {
		t.Errorf("Server.Addr = %s, want 127.0.0.1:9999", cfg.Server.Addr)
	}
	if cfg.Database.Path != "/tmp/custom.db" {
		t.Errorf("Database.Path = %s, want /tmp/custom.db", cfg.Database.Path)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %s, want debug", cfg.Log.Level)
	}
	if cfg.KeyMappings.Quit != "x" {
		t.Errorf("Loaded Quit key = %s, want x", cfg.KeyMappings.Quit)
	}

	// Unspecified values should use defaults
	if cfg.KeyMappings.AddTodo != "a" {
		t.Errorf("Loaded AddTodo key = %s, want a (default)", cfg.KeyMappings.AddTodo)
	}
	if cfg.Server.ShutdownTimeoutSeconds != 10 {
		t.Errorf("ShutdownTimeoutSeconds = %d, want 10 (default)", cfg.Server.ShutdownTimeoutSeconds)
	}
	if cfg.ColorScheme.Accent != MonochromeColorScheme().Accent {
		t.Errorf("Theme accent = %s, want monochrome preset %s", cfg.ColorScheme.Accent, MonochromeColorScheme().Accent)
	}
}

func TestLoadConfigInvalidYAML(t *testing.T) {
	dir := isolateEnv(t)
	writeConfig(t, dir, "server: [unclosed")

	if _, err := Load(); err == nil {
		t.Fatal("Expected error for malformed YAML")
	}
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	dir := isolateEnv(t)
	writeConfig(t, dir, `server:
  addr: ":7000"
`)
	t.Setenv("TODOS_ADDR", ":7777")
	t.Setenv("TODOS_DB_PATH", "/var/lib/todos.db")
	t.Setenv("TODOS_MAX_LIST_LIMIT", "50")
	t.Setenv("TODOS_API_URL", "http://todos.internal:8000")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Server.Addr != ":7777" {
		t.Errorf("Server.Addr = %s, want :7777", cfg.Server.Addr)
	}
	if cfg.Database.Path != "/var/lib/todos.db" {
		t.Errorf("Database.Path = %s, want /var/lib/todos.db", cfg.Database.Path)
	}
	if cfg.API.MaxListLimit != 50 {
		t.Errorf("API.MaxListLimit = %d, want 50", cfg.API.MaxListLimit)
	}
	if cfg.Client.URL != "http://todos.internal:8000" {
		t.Errorf("Client.URL = %s, want http://todos.internal:8000", cfg.Client.URL)
	}
}

func TestLoadConfigIgnoresInvalidIntEnv(t *testing.T) {
	isolateEnv(t)
	t.Setenv("TODOS_MAX_LIST_LIMIT", "-3")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.API.MaxListLimit != 1000 {
		t.Errorf("API.MaxListLimit = %d, want 1000", cfg.API.MaxListLimit)
	}
}

func TestSaveConfig(t *testing.T) {
	tempDir := isolateEnv(t)

	cfg := &Config{
		Server:      ServerConfig{Addr: ":8123"},
		KeyMappings: KeyMappings{Quit: "x"},
	}
	cfg.applyDefaults()

	if err := cfg.Save(); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	configPath := filepath.Join(tempDir, "todos", "config.yaml")
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		t.Fatalf("Config file not created at %s", configPath)
	}

	cfg2, err := Load()
	if err != nil {
		t.Fatalf("Load() after Save() failed: %v", err)
	}

	if cfg2.Server.Addr != ":8123" {
		t.Errorf("Reloaded Server.Addr = %s, want :8123", cfg2.Server.Addr)
	}
	if cfg2.KeyMappings.Quit != "x" {
		t.Errorf("Reloaded Quit key = %s, want x", cfg2.KeyMappings.Quit)
	}
}

func TestColorSchemeApplyDefaults(t *testing.T) {
	scheme := ColorScheme{Accent: "#123456"}
	scheme.ApplyDefaults()

	if scheme.Accent != "#123456" {
		t.Errorf("Custom accent overwritten: %s", scheme.Accent)
	}
	if scheme.Done != DefaultColorScheme().Done {
		t.Errorf("Done = %s, want default %s", scheme.Done, DefaultColorScheme().Done)
	}
	if scheme.Preset != "default" {
		t.Errorf("Preset = %s, want default", scheme.Preset)
	}
}

const tomlConfig = `
[server]
addr = "127.0.0.1:7001"

[api]
max_list_limit = 25

[key_mappings]
toggle_todo = "x"
`

func TestLoadFileTOML(t *testing.T) {
	isolateEnv(t)
	path := filepath.Join(t.TempDir(), "todos.toml")
	if err := os.WriteFile(path, []byte(tomlConfig), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile(toml) failed: %v", err)
	}

	if cfg.Server.Addr != "127.0.0.1:7001" {
		t.Errorf("Server.Addr = %s, want 127.0.0.1:7001", cfg.Server.Addr)
	}
	if cfg.API.MaxListLimit != 25 {
		t.Errorf("API.MaxListLimit = %d, want 25", cfg.API.MaxListLimit)
	}
	if cfg.KeyMappings.ToggleTodo != "x" {
		t.Errorf("ToggleTodo = %q, want x", cfg.KeyMappings.ToggleTodo)
	}
	if cfg.KeyMappings.Quit != "q" {
		t.Errorf("Quit = %q, want default q", cfg.KeyMappings.Quit)
	}
}

func TestLoadPrefersYAMLOverTOML(t *testing.T) {
	dir := isolateEnv(t)
	configDir := filepath.Join(dir, "todos")
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		t.Fatalf("Failed to create config dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(configDir, "config.toml"), []byte(tomlConfig), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	// Only TOML present: it is used
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Server.Addr != "127.0.0.1:7001" {
		t.Errorf("Server.Addr = %s, want value from config.toml", cfg.Server.Addr)
	}

	// YAML added: it wins
	writeConfig(t, dir, "server:\n  addr: \":7002\"\n")
	cfg, err = Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Server.Addr != ":7002" {
		t.Errorf("Server.Addr = %s, want value from config.yaml", cfg.Server.Addr)
	}
}

func TestLoadFileInvalidTOML(t *testing.T) {
	isolateEnv(t)
	path := filepath.Join(t.TempDir(), "broken.toml")
	if err := os.WriteFile(path, []byte("[server\naddr ="), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	if _, err := LoadFile(path); err == nil {
		t.Fatal("Expected error for malformed TOML")
	}
}
