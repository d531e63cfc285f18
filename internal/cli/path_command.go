package cli

import (
	"context"
	"fmt"
	"io"

	"todo-list/internal/services"
)

// PathCommand prints where tasks are stored
type PathCommand struct {
	store services.TaskStore
	out   io.Writer
}

// NewPathCommand creates a new path command handler
func NewPathCommand(app *App) *PathCommand {
	return &PathCommand{store: app.store, out: app.out}
}

// Execute runs the path command
func (c *PathCommand) Execute(ctx context.Context, args []string) error {
	_, err := fmt.Fprintln(c.out, c.store.Location())
	return err
}
