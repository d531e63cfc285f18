// Package repository defines the persistence boundary of the task store.
package repository

import (
	"context"

	"todo-list/internal/domain"
)

// Storage reads and writes the complete task list as one unit.
//
// Load reports a missing storage location with a NotFound AppError so callers
// can tell "never written" apart from "unreadable". Save overwrites whatever
// was stored before.
type Storage interface {
	Load(ctx context.Context) ([]domain.Task, error)
	Save(ctx context.Context, tasks []domain.Task) error
	Location() string
	Close() error
}
