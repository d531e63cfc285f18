package config

import (
	"fmt"

	"todo-list/internal/repository"
	"todo-list/internal/repository/jsonfile"
	"todo-list/internal/repository/sqlite"
)

// CreateStorage creates the storage backend selected by the configuration.
// Neither backend touches the disk until the first Load or Save.
func CreateStorage(config *Config) (repository.Storage, error) {
	path := config.GetStoragePath()

	switch config.Storage.Backend {
	case BackendSQLite:
		return sqlite.New(path), nil
	case BackendJSON:
		return jsonfile.New(path), nil
	default:
		return nil, fmt.Errorf("unknown storage backend: %s", config.Storage.Backend)
	}
}

// CreateTestStorage creates an in-memory storage for testing
func CreateTestStorage() repository.Storage {
	return sqlite.New(sqlite.MemoryPath)
}
