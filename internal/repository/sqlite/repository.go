// Package sqlite stores the task list in a SQLite database.
package sqlite

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"time"

	"todo-list/internal/domain"
	"todo-list/internal/errors"
	"todo-list/internal/repository/sqlite/migrations"

	_ "modernc.org/sqlite"
)

// MemoryPath opens a private in-memory database
const MemoryPath = ":memory:"

// timeNow is a variable that can be replaced in tests
var timeNow = time.Now

// SQLiteRepository implements repository.Storage on a SQLite database.
// The database is opened and migrated on first use, so an unreadable file
// surfaces as a storage error from Load or Save.
type SQLiteRepository struct {
	db     *sql.DB
	path   string
	mapper *TaskMapper
}

// New creates a repository for the database at dbPath without touching it
func New(dbPath string) *SQLiteRepository {
	return &SQLiteRepository{path: dbPath, mapper: NewTaskMapper()}
}

func (r *SQLiteRepository) fail(operation string, err error) error {
	return errors.NewStorageError(operation, err).WithContext("location", r.path)
}

// open connects to the database, creating its directory if needed, and runs migrations.
// A failed attempt leaves the repository closed so the next call retries.
func (r *SQLiteRepository) open(ctx context.Context) error {
	if r.db != nil {
		return nil
	}

	if r.path != MemoryPath {
		if err := os.MkdirAll(filepath.Dir(r.path), 0755); err != nil {
			return r.fail("create database directory", err)
		}
	}

	db, err := sql.Open("sqlite", r.path)
	if err != nil {
		return r.fail("open database", err)
	}
	// Every connection to :memory: is a separate database.
	db.SetMaxOpenConns(1)

	if err := migrations.RunMigrations(ctx, db); err != nil {
		db.Close()
		return r.fail("run migrations", err)
	}

	r.db = db
	return nil
}

// Location returns the database path
func (r *SQLiteRepository) Location() string {
	return r.path
}

// Close closes the database connection if it was opened
func (r *SQLiteRepository) Close() error {
	if r.db == nil {
		return nil
	}
	err := r.db.Close()
	r.db = nil
	return err
}

// Load returns every task in store order.
// A database that has never been saved to reports NotFound.
func (r *SQLiteRepository) Load(ctx context.Context) ([]domain.Task, error) {
	if err := r.open(ctx); err != nil {
		return nil, err
	}

	saved, err := QueryCount(ctx, r.db, `SELECT COUNT(*) FROM store_state`)
	if err != nil {
		return nil, r.fail("read store state", err)
	}
	if saved == 0 {
		return nil, errors.NewNotFoundError("task database", r.path)
	}

	query := `
	SELECT id, position, text, completed, created, due
	FROM tasks
	ORDER BY position ASC`

	rows, err := QueryMultiple(ctx, r.db, query, ScanTaskRows, "tasks")
	if err != nil {
		return nil, r.fail("read tasks", err)
	}

	return r.mapper.FromDatabaseSlice(rows), nil
}

// Save replaces every stored task with tasks in a single transaction
func (r *SQLiteRepository) Save(ctx context.Context, tasks []domain.Task) error {
	if err := r.open(ctx); err != nil {
		return err
	}

	rows := r.mapper.ToDatabaseSlice(tasks)

	err := WithTransaction(ctx, r.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM tasks`); err != nil {
			return err
		}

		stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO tasks (id, position, text, completed, created, due)
		VALUES (?, ?, ?, ?, ?, ?)`)
		if err != nil {
			return err
		}
		defer stmt.Close()

		for _, row := range rows {
			if _, err := stmt.ExecContext(ctx, row.ID, row.Position, row.Text, FormatBoolForDB(row.Completed), row.Created, row.Due); err != nil {
				return err
			}
		}

		_, err = tx.ExecContext(ctx, `
		INSERT INTO store_state (id, saved_at) VALUES (1, ?)
		ON CONFLICT(id) DO UPDATE SET saved_at = excluded.saved_at`, FormatTimeForDB(timeNow()))
		return err
	})
	if err != nil {
		return r.fail("write tasks", err)
	}

	return nil
}
