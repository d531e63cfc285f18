package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"todo-list/internal/domain"
)

// Renderer formats tasks for terminal output.
// Styles degrade to plain text when the writer is not a terminal.
type Renderer struct {
	doneStyle lipgloss.Style
	openStyle lipgloss.Style
}

// NewRenderer creates a renderer whose color profile matches w
func NewRenderer(w io.Writer) *Renderer {
	r := lipgloss.NewRenderer(w)
	return &Renderer{
		doneStyle: r.NewStyle().
			Foreground(lipgloss.Color("241")).
			Strikethrough(true),
		openStyle: r.NewStyle(),
	}
}

// checkbox returns the marker shown in front of a task
func checkbox(task domain.Task) string {
	if task.Completed {
		return "[x]"
	}
	return "[ ]"
}

// TaskLine renders one task as "[x] 3  Call Mom"
func (r *Renderer) TaskLine(task domain.Task) string {
	line := fmt.Sprintf("%s %d  %s", checkbox(task), task.ID, task.Text)
	if task.Due != nil {
		line += fmt.Sprintf("  (due %s)", *task.Due)
	}
	if task.Completed {
		return r.doneStyle.Render(line)
	}
	return r.openStyle.Render(line)
}
