package sqlite

import "database/sql"

// TaskRow is one row of the tasks table.
// Position keeps the store order independent of id.
type TaskRow struct {
	ID        int64
	Position  int64
	Text      string
	Completed bool
	Created   string
	Due       sql.NullString
}
