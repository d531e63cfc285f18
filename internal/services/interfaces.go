package services

import (
	"context"

	"todo-list/internal/domain"
)

// TaskStore owns the in-memory task list and keeps storage in sync with it.
// Persistence failures are logged and never returned; the in-memory list stays authoritative.
type TaskStore interface {
	// Lifecycle
	Load(ctx context.Context)
	Save(ctx context.Context)
	Close() error

	// Mutations, each persisted immediately
	Add(ctx context.Context, text string) (domain.Task, bool)
	SetCompleted(ctx context.Context, id int64, completed bool) bool
	Delete(ctx context.Context, id int64) bool

	// Queries return copies
	Get(id int64) (domain.Task, bool)
	Filtered(view domain.View) []domain.Task
	Len() int
	Location() string
}
