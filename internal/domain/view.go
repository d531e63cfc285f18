package domain

import "strings"

// View selects which tasks a filtered listing returns.
type View string

const (
	ViewAll       View = "all"
	ViewCompleted View = "completed"
	ViewToday     View = "today"
)

// Views lists every supported view in display order.
func Views() []View {
	return []View{ViewToday, ViewAll, ViewCompleted}
}

// ParseView maps a user-supplied name onto a View.
func ParseView(name string) (View, bool) {
	switch View(strings.ToLower(strings.TrimSpace(name))) {
	case ViewAll:
		return ViewAll, true
	case ViewCompleted:
		return ViewCompleted, true
	case ViewToday:
		return ViewToday, true
	default:
		return "", false
	}
}

// Matches reports whether task belongs in view on the given day.
// Unknown views behave like ViewAll.
func (v View) Matches(task Task, today string) bool {
	switch v {
	case ViewCompleted:
		return task.Completed
	case ViewToday:
		return task.Created == today || task.IsDueOn(today)
	default:
		return true
	}
}
