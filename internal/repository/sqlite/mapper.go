package sqlite

import (
	"todo-list/internal/domain"
)

// TaskMapper handles conversion between domain tasks and database rows.
type TaskMapper struct{}

// NewTaskMapper creates a new TaskMapper instance.
func NewTaskMapper() *TaskMapper {
	return &TaskMapper{}
}

// ToDatabase converts a domain Task at the given list position to a row.
func (m *TaskMapper) ToDatabase(task domain.Task, position int64) TaskRow {
	return TaskRow{
		ID:        task.ID,
		Position:  position,
		Text:      task.Text,
		Completed: task.Completed,
		Created:   task.Created,
		Due:       FormatDueForDB(task.Due),
	}
}

// FromDatabase converts a row to a domain Task.
func (m *TaskMapper) FromDatabase(row TaskRow) domain.Task {
	return domain.Task{
		ID:        row.ID,
		Text:      row.Text,
		Completed: row.Completed,
		Created:   row.Created,
		Due:       ParseDueFromDB(row.Due),
	}
}

// ToDatabaseSlice converts a task list to rows numbered by list position.
func (m *TaskMapper) ToDatabaseSlice(tasks []domain.Task) []TaskRow {
	rows := make([]TaskRow, len(tasks))
	for i, task := range tasks {
		rows[i] = m.ToDatabase(task, int64(i))
	}
	return rows
}

// FromDatabaseSlice converts rows to domain tasks, keeping their order.
func (m *TaskMapper) FromDatabaseSlice(rows []TaskRow) []domain.Task {
	tasks := make([]domain.Task, len(rows))
	for i, row := range rows {
		tasks[i] = m.FromDatabase(row)
	}
	return tasks
}
