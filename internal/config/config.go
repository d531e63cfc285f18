package config

import (
	"os"
	"path/filepath"
	"time"

	"todo-list/internal/domain"
)

const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
)

// Config holds all configuration options for the to-do application
type Config struct {
	Storage     StorageConfig
	Log         LogConfig
	Application ApplicationConfig
	Commands    CommandsConfig
}

// StorageConfig holds task storage configuration
type StorageConfig struct {
	Backend  string `env:"TD_STORAGE_BACKEND" env-default:"json" env-description:"Storage backend: json or sqlite"`
	Dir      string `env:"TD_STORAGE_DIR" env-description:"Directory holding the task file"`
	Filename string `env:"TD_STORAGE_FILENAME" env-description:"Task file name (default depends on backend)"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level   string `env:"TD_LOG_LEVEL" env-default:"warn" env-description:"Log level"`
	Format  string `env:"TD_LOG_FORMAT" env-default:"console" env-description:"Log format: console or json"`
	NoColor bool   `env:"TD_LOG_NO_COLOR" env-description:"Disable colored console logs"`
}

// ApplicationConfig holds application-level configuration
type ApplicationConfig struct {
	Timeout time.Duration `env:"TD_APP_TIMEOUT" env-default:"30s" env-description:"Per-command timeout"`
}

// CommandsConfig holds command-specific defaults
type CommandsConfig struct {
	ListDefaultView string `env:"TD_LIST_DEFAULT_VIEW" env-default:"all" env-description:"View used by list without arguments"`
}

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	homeDir, _ := os.UserHomeDir()

	return &Config{
		Storage: StorageConfig{
			Backend: BackendJSON,
			Dir:     filepath.Join(homeDir, ".td"),
		},
		Log: LogConfig{
			Level:  "warn",
			Format: "console",
		},
		Application: ApplicationConfig{
			Timeout: 30 * time.Second,
		},
		Commands: CommandsConfig{
			ListDefaultView: string(domain.ViewAll),
		},
	}
}

// GetStorageFilename returns the configured file name or the backend default
func (c *Config) GetStorageFilename() string {
	if c.Storage.Filename != "" {
		return c.Storage.Filename
	}
	if c.Storage.Backend == BackendSQLite {
		return "tasks.db"
	}
	return "tasks.json"
}

// GetStoragePath returns the full path to the task file
func (c *Config) GetStoragePath() string {
	return filepath.Join(c.Storage.Dir, c.GetStorageFilename())
}

// GetListDefaultView returns the default list view
func (c *Config) GetListDefaultView() domain.View {
	if view, ok := domain.ParseView(c.Commands.ListDefaultView); ok {
		return view
	}
	return domain.ViewAll
}

// Validate validates the configuration and returns any errors
func (c *Config) Validate() error {
	switch c.Storage.Backend {
	case BackendJSON, BackendSQLite:
	default:
		return &ConfigError{Field: "storage.backend", Message: "storage backend must be json or sqlite"}
	}
	if c.Storage.Dir == "" {
		return &ConfigError{Field: "storage.dir", Message: "storage directory cannot be empty"}
	}

	switch c.Log.Format {
	case "console", "json":
	default:
		return &ConfigError{Field: "log.format", Message: "log format must be console or json"}
	}

	if c.Application.Timeout <= 0 {
		return &ConfigError{Field: "application.timeout", Message: "application timeout must be positive"}
	}

	if _, ok := domain.ParseView(c.Commands.ListDefaultView); !ok {
		return &ConfigError{Field: "commands.list_default_view", Message: "default view must be today, all or completed"}
	}

	return nil
}

// ConfigError represents a configuration validation error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
