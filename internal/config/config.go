package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Server      ServerConfig   `yaml:"server" toml:"server"`
	Database    DatabaseConfig `yaml:"database" toml:"database"`
	API         APIConfig      `yaml:"api" toml:"api"`
	Client      ClientConfig   `yaml:"client" toml:"client"`
	Log         LogConfig      `yaml:"log" toml:"log"`
	KeyMappings KeyMappings    `yaml:"key_mappings" toml:"key_mappings"`
	ColorScheme ColorScheme    `yaml:"theme" toml:"theme"`
}

// ServerConfig controls the HTTP listener
type ServerConfig struct {
	Addr                   string `yaml:"addr" toml:"addr"`
	ShutdownTimeoutSeconds int    `yaml:"shutdown_timeout_seconds" toml:"shutdown_timeout_seconds"`
}

// DatabaseConfig points at the SQLite file
type DatabaseConfig struct {
	Path string `yaml:"path" toml:"path"`
}

// APIConfig holds request policy knobs
type APIConfig struct {
	// MaxListLimit caps the limit query parameter of list requests
	MaxListLimit int `yaml:"max_list_limit" toml:"max_list_limit"`
}

// ClientConfig is used by the CLI and TUI clients
type ClientConfig struct {
	URL            string `yaml:"url" toml:"url"`
	TimeoutSeconds int    `yaml:"timeout_seconds" toml:"timeout_seconds"`
}

// LogConfig controls slog output
type LogConfig struct {
	Level  string `yaml:"level" toml:"level"`   // debug, info, warn, error
	Format string `yaml:"format" toml:"format"` // text, json or pretty
	File   string `yaml:"file" toml:"file"`     // empty means stderr
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:                   ":8000",
			ShutdownTimeoutSeconds: 10,
		},
		Database: DatabaseConfig{
			Path: defaultDBPath(),
		},
		API: APIConfig{
			MaxListLimit: 1000,
		},
		Client: ClientConfig{
			URL:            "http://localhost:8000",
			TimeoutSeconds: 10,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		KeyMappings: DefaultKeyMappings(),
		ColorScheme: DefaultColorScheme(),
	}
}

// Load loads config from the user's config directory
// Returns default config if file doesn't exist
func Load() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		// Return default config if we can't determine config path
		config := Default()
		config.applyEnv()
		return config, nil
	}

	return LoadFile(configPath)
}

// LoadFile loads config from an explicit path, falling back to defaults
// when the file does not exist
func LoadFile(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if errors.Is(err, os.ErrNotExist) {
		config := Default()
		config.applyEnv()
		return config, nil
	}
	if err != nil {
		return nil, err
	}

	var config Config
	if strings.EqualFold(filepath.Ext(configPath), ".toml") {
		if _, err := toml.Decode(string(data), &config); err != nil {
			return nil, fmt.Errorf("parse %s: %w", configPath, err)
		}
	} else if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("parse %s: %w", configPath, err)
	}

	// Fill in any missing values with defaults
	config.applyDefaults()
	config.applyEnv()

	return &config, nil
}

// Save writes the config as YAML to the user's config directory
func (c *Config) Save() error {
	dir, err := getConfigDir()
	if err != nil {
		return err
	}
	configPath := filepath.Join(dir, "config.yaml")

	// Create config directory if it doesn't exist
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0o644)
}

// getConfigPath returns the path to the config file.
// config.yaml wins; config.toml is used when only it exists.
func getConfigPath() (string, error) {
	dir, err := getConfigDir()
	if err != nil {
		return "", err
	}

	yamlPath := filepath.Join(dir, "config.yaml")
	if _, err := os.Stat(yamlPath); err != nil {
		tomlPath := filepath.Join(dir, "config.toml")
		if _, err := os.Stat(tomlPath); err == nil {
			return tomlPath, nil
		}
	}
	return yamlPath, nil
}

func getConfigDir() (string, error) {
	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "todos"), nil
	}

	// Fall back to ~/.config
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "todos"), nil
}

// defaultDBPath places the database under ~/.todos, or the working
// directory when no home directory is available
func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "todos.db"
	}
	return filepath.Join(home, ".todos", "todos.db")
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	defaults := Default()

	if c.Server.Addr == "" {
		c.Server.Addr = defaults.Server.Addr
	}
	if c.Server.ShutdownTimeoutSeconds <= 0 {
		c.Server.ShutdownTimeoutSeconds = defaults.Server.ShutdownTimeoutSeconds
	}
	if c.Database.Path == "" {
		c.Database.Path = defaults.Database.Path
	}
	if c.API.MaxListLimit <= 0 {
		c.API.MaxListLimit = defaults.API.MaxListLimit
	}
	if c.Client.URL == "" {
		c.Client.URL = defaults.Client.URL
	}
	if c.Client.TimeoutSeconds <= 0 {
		c.Client.TimeoutSeconds = defaults.Client.TimeoutSeconds
	}
	if c.Log.Level == "" {
		c.Log.Level = defaults.Log.Level
	}
	if c.Log.Format == "" {
		c.Log.Format = defaults.Log.Format
	}

	c.KeyMappings.applyDefaults()
	c.ColorScheme.ApplyDefaults()
}

// applyEnv overrides values from TODOS_* environment variables
func (c *Config) applyEnv() {
	if v := os.Getenv("TODOS_ADDR"); v != "" {
		c.Server.Addr = v
	}
	if v := os.Getenv("TODOS_DB_PATH"); v != "" {
		c.Database.Path = v
	}
	if v := os.Getenv("TODOS_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv("TODOS_API_URL"); v != "" {
		c.Client.URL = v
	}
	c.API.MaxListLimit = getEnvInt("TODOS_MAX_LIST_LIMIT", c.API.MaxListLimit)
}

// getEnvInt reads a positive integer from an environment variable, returning defaultVal if not set or invalid
func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil && parsed > 0 {
			return parsed
		}
	}
	return defaultVal
}
