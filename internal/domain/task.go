package domain

import "time"

// DateLayout is the calendar-date format used for Created and Due.
const DateLayout = "2006-01-02"

// Task represents a single to-do entry.
// This is a pure domain model without storage-specific concerns.
type Task struct {
	ID        int64   `json:"id"`
	Text      string  `json:"text"`
	Completed bool    `json:"completed"`
	Created   string  `json:"created"`
	Due       *string `json:"due"`
}

// NewTask creates an open task with the given id and text, created on the day of now.
func NewTask(id int64, text string, now time.Time) Task {
	return Task{
		ID:      id,
		Text:    text,
		Created: FormatDate(now),
	}
}

// IsDueOn reports whether the task has a due date equal to day.
func (t Task) IsDueOn(day string) bool {
	return t.Due != nil && *t.Due == day
}

// Clone returns a copy that shares no memory with t.
func (t Task) Clone() Task {
	if t.Due != nil {
		due := *t.Due
		t.Due = &due
	}
	return t
}

// String returns the task text for display purposes.
func (t Task) String() string {
	return t.Text
}

// FormatDate formats t as a calendar date in its own location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// NextID returns one more than the largest id in tasks, or 1 when tasks is empty.
func NextID(tasks []Task) int64 {
	var maxID int64
	for _, task := range tasks {
		if task.ID > maxID {
			maxID = task.ID
		}
	}
	return maxID + 1
}
