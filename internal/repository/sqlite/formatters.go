package sqlite

import (
	"database/sql"
	"time"
)

// FormatBoolForDB stores booleans as 0/1 integers
func FormatBoolForDB(b bool) int64 {
	if b {
		return 1
	}
	return 0
}

// FormatDueForDB converts an optional due date to a nullable column value
func FormatDueForDB(due *string) sql.NullString {
	if due == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *due, Valid: true}
}

// ParseDueFromDB converts a nullable column value back to an optional due date
func ParseDueFromDB(due sql.NullString) *string {
	if !due.Valid {
		return nil
	}
	s := due.String
	return &s
}

// FormatTimeForDB formats a time.Time value as RFC3339 string for consistent database storage
func FormatTimeForDB(t time.Time) string {
	return t.Format(time.RFC3339)
}
