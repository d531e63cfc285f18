package sqlite

// Scanner interface defines the common scanning behavior for both sql.Row and sql.Rows
type Scanner interface {
	Scan(dest ...interface{}) error
}

// Rows interface defines the common behavior for sql.Rows
type Rows interface {
	Next() bool
	Scan(dest ...interface{}) error
	Err() error
}

// ScanTaskRow scans a single task from a database row
func ScanTaskRow(scanner Scanner) (TaskRow, error) {
	var row TaskRow
	err := scanner.Scan(
		&row.ID,
		&row.Position,
		&row.Text,
		&row.Completed,
		&row.Created,
		&row.Due,
	)
	if err != nil {
		return TaskRow{}, err
	}
	return row, nil
}

// ScanTaskRows scans multiple tasks from database rows
func ScanTaskRows(rows Rows) ([]TaskRow, error) {
	result := []TaskRow{}
	for rows.Next() {
		row, err := ScanTaskRow(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}
