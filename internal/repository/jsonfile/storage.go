// Package jsonfile stores the task list as an indented JSON array in a single file.
package jsonfile

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"io/fs"
	"os"
	"path/filepath"

	"todo-list/internal/domain"
	"todo-list/internal/errors"
)

const (
	filePermissions = 0644
	dirPermissions  = 0755
)

// Storage implements repository.Storage on top of a JSON file
type Storage struct {
	path string
}

// New creates a JSON file storage for path. The file is not touched until Load or Save.
func New(path string) *Storage {
	return &Storage{path: path}
}

// Location returns the file path
func (s *Storage) Location() string {
	return s.path
}

// Close is a no-op; the file is opened per operation
func (s *Storage) Close() error {
	return nil
}

func (s *Storage) fail(operation string, err error) error {
	return errors.NewStorageError(operation, err).WithContext("location", s.path)
}

// Load reads and decodes the task file
func (s *Storage) Load(ctx context.Context) ([]domain.Task, error) {
	if err := ctx.Err(); err != nil {
		return nil, s.fail("read task file", err)
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return nil, errors.NewNotFoundError("task file", s.path)
		}
		return nil, s.fail("read task file", err)
	}

	var tasks []domain.Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		return nil, s.fail("decode task file", err)
	}
	if tasks == nil {
		tasks = []domain.Task{}
	}

	return tasks, nil
}

// Save encodes the full task list and replaces the file.
// The data goes to a sibling temp file first so a failed write leaves the old file intact.
func (s *Storage) Save(ctx context.Context, tasks []domain.Task) error {
	if err := ctx.Err(); err != nil {
		return s.fail("write task file", err)
	}
	if tasks == nil {
		tasks = []domain.Task{}
	}

	data, err := json.MarshalIndent(tasks, "", "  ")
	if err != nil {
		return s.fail("encode task file", err)
	}
	data = append(data, '\n')

	if err := os.MkdirAll(filepath.Dir(s.path), dirPermissions); err != nil {
		return s.fail("create task directory", err)
	}

	tempPath := s.path + ".tmp"
	if err := os.WriteFile(tempPath, data, filePermissions); err != nil {
		return s.fail("write task file", err)
	}
	if err := os.Rename(tempPath, s.path); err != nil {
		os.Remove(tempPath)
		return s.fail("replace task file", err)
	}

	return nil
}
