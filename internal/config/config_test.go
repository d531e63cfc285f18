package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todo-list/internal/domain"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"TD_STORAGE_BACKEND", "TD_STORAGE_DIR", "TD_STORAGE_FILENAME",
		"TD_LOG_LEVEL", "TD_LOG_FORMAT", "TD_LOG_NO_COLOR",
		"TD_APP_TIMEOUT", "TD_LIST_DEFAULT_VIEW", EnvFileVar,
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestNewConfig_Defaults(t *testing.T) {
	cfg := NewConfig()

	assert.Equal(t, BackendJSON, cfg.Storage.Backend)
	assert.Equal(t, ".td", filepath.Base(cfg.Storage.Dir))
	assert.Equal(t, "tasks.json", cfg.GetStorageFilename())
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, 30*time.Second, cfg.Application.Timeout)
	assert.Equal(t, domain.ViewAll, cfg.GetListDefaultView())
	assert.NoError(t, cfg.Validate())
}

func TestConfig_GetStoragePath(t *testing.T) {
	tests := []struct {
		name     string
		backend  string
		filename string
		want     string
	}{
		{name: "json default", backend: BackendJSON, want: "/data/tasks.json"},
		{name: "sqlite default", backend: BackendSQLite, want: "/data/tasks.db"},
		{name: "explicit filename", backend: BackendSQLite, filename: "todo.sqlite", want: "/data/todo.sqlite"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			cfg.Storage.Dir = "/data"
			cfg.Storage.Backend = tt.backend
			cfg.Storage.Filename = tt.filename

			assert.Equal(t, tt.want, cfg.GetStoragePath())
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*Config)
		wantField string
	}{
		{name: "valid", mutate: func(*Config) {}},
		{name: "unknown backend", mutate: func(c *Config) { c.Storage.Backend = "csv" }, wantField: "storage.backend"},
		{name: "empty dir", mutate: func(c *Config) { c.Storage.Dir = "" }, wantField: "storage.dir"},
		{name: "bad log format", mutate: func(c *Config) { c.Log.Format = "xml" }, wantField: "log.format"},
		{name: "zero timeout", mutate: func(c *Config) { c.Application.Timeout = 0 }, wantField: "application.timeout"},
		{name: "unknown view", mutate: func(c *Config) { c.Commands.ListDefaultView = "tomorrow" }, wantField: "commands.list_default_view"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}

			var configErr *ConfigError
			require.ErrorAs(t, err, &configErr)
			assert.Equal(t, tt.wantField, configErr.Field)
			assert.Contains(t, configErr.Error(), tt.wantField)
		})
	}
}

func TestLoader_Load_Environment(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	t.Setenv("TD_STORAGE_BACKEND", "sqlite")
	t.Setenv("TD_STORAGE_DIR", dir)
	t.Setenv("TD_LOG_LEVEL", "debug")
	t.Setenv("TD_APP_TIMEOUT", "5s")
	t.Setenv("TD_LIST_DEFAULT_VIEW", "today")

	cfg, err := NewLoader().Load()
	require.NoError(t, err)

	assert.Equal(t, BackendSQLite, cfg.Storage.Backend)
	assert.Equal(t, filepath.Join(dir, "tasks.db"), cfg.GetStoragePath())
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 5*time.Second, cfg.Application.Timeout)
	assert.Equal(t, domain.ViewToday, cfg.GetListDefaultView())
}

func TestLoader_Load_InvalidEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("TD_STORAGE_BACKEND", "mongo")

	_, err := NewLoader().Load()
	var configErr *ConfigError
	assert.ErrorAs(t, err, &configErr)
}

func TestLoader_Load_EnvFile(t *testing.T) {
	clearEnv(t)
	envFile := filepath.Join(t.TempDir(), "td.env")
	require.NoError(t, os.WriteFile(envFile, []byte("TD_STORAGE_BACKEND=sqlite\nTD_LIST_DEFAULT_VIEW=completed\n"), 0644))
	t.Setenv(EnvFileVar, envFile)
	t.Setenv("TD_LIST_DEFAULT_VIEW", "today")
	t.Cleanup(func() { os.Unsetenv("TD_STORAGE_BACKEND") })

	cfg, err := NewLoader().Load()
	require.NoError(t, err)

	assert.Equal(t, BackendSQLite, cfg.Storage.Backend)
	assert.Equal(t, domain.ViewToday, cfg.GetListDefaultView(), "environment wins over the env file")
}

func TestLoader_Load_MissingEnvFile(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvFileVar, filepath.Join(t.TempDir(), "missing.env"))

	_, err := NewLoader().Load()
	assert.Error(t, err)
}

func TestConfigOverrides_Apply(t *testing.T) {
	clearEnv(t)
	t.Setenv("TD_STORAGE_DIR", "/from/env")

	cfg, err := NewLoader().Load()
	require.NoError(t, err)

	dir := "/from/flag"
	backend := BackendSQLite
	timeout := 2 * time.Second
	(&ConfigOverrides{Backend: &backend, Dir: &dir, Timeout: &timeout}).Apply(cfg)

	require.NoError(t, cfg.Validate())
	assert.Equal(t, "/from/flag", cfg.Storage.Dir)
	assert.Equal(t, BackendSQLite, cfg.Storage.Backend)
	assert.Equal(t, 2*time.Second, cfg.Application.Timeout)
	assert.Equal(t, "warn", cfg.Log.Level, "fields without overrides keep their value")
}

func TestConfigOverrides_ApplyInvalid(t *testing.T) {
	cfg := NewConfig()
	timeout := -time.Second

	(&ConfigOverrides{Timeout: &timeout}).Apply(cfg)
	assert.Error(t, cfg.Validate())
}

func TestUsage(t *testing.T) {
	usage, err := Usage()
	require.NoError(t, err)
	assert.Contains(t, usage, "TD_STORAGE_BACKEND")
	assert.Contains(t, usage, "TD_LIST_DEFAULT_VIEW")
}
