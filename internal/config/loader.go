package config

import (
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// EnvFileVar names a dotenv file whose values are read before the environment.
// Variables already set in the environment win.
const EnvFileVar = "TD_ENV_FILE"

// Loader handles loading configuration from multiple sources
type Loader struct {
	config *Config
}

// NewLoader creates a new configuration loader
func NewLoader() *Loader {
	return &Loader{
		config: NewConfig(),
	}
}

// Load loads configuration using the cascading strategy:
// 1. Start with defaults
// 2. Override with the TD_ENV_FILE dotenv file and environment variables
// Command line flags are applied afterwards with ConfigOverrides.Apply.
func (l *Loader) Load() (*Config, error) {
	if envFile := os.Getenv(EnvFileVar); envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", envFile, err)
		}
	}

	if err := cleanenv.ReadEnv(l.config); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}

	if err := l.config.Validate(); err != nil {
		return nil, err
	}

	return l.config, nil
}

// Usage describes every environment variable, for help output
func Usage() (string, error) {
	return cleanenv.GetDescription(NewConfig(), nil)
}

// ConfigOverrides holds command line flag overrides
type ConfigOverrides struct {
	Backend  *string
	Dir      *string
	Filename *string
	LogLevel *string
	Timeout  *time.Duration
}

// Apply copies every set override onto config
func (o *ConfigOverrides) Apply(config *Config) {
	if o.Backend != nil {
		config.Storage.Backend = *o.Backend
	}
	if o.Dir != nil {
		config.Storage.Dir = *o.Dir
	}
	if o.Filename != nil {
		config.Storage.Filename = *o.Filename
	}
	if o.LogLevel != nil {
		config.Log.Level = *o.LogLevel
	}
	if o.Timeout != nil {
		config.Application.Timeout = *o.Timeout
	}
}
