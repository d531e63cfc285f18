package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"todo-list/internal/services"
)

// AddCommand handles the add command
type AddCommand struct {
	store services.TaskStore
	out   io.Writer
}

// NewAddCommand creates a new add command handler
func NewAddCommand(app *App) *AddCommand {
	return &AddCommand{store: app.store, out: app.out}
}

// Execute runs the add command. All arguments form the task text.
func (c *AddCommand) Execute(ctx context.Context, args []string) error {
	task, added := c.store.Add(ctx, strings.Join(args, " "))
	if !added {
		_, err := fmt.Fprintln(c.out, "Nothing to add: task text is empty")
		return err
	}

	_, err := fmt.Fprintf(c.out, "Added task %d: %s\n", task.ID, task.Text)
	return err
}
