package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"todo-list/internal/services"
	"todo-list/internal/validation"
)

// DeleteCommand handles the delete command
type DeleteCommand struct {
	store        services.TaskStore
	out          io.Writer
	in           io.Reader
	validator    *validation.TaskValidator
	errorHandler *ErrorHandler
	assumeYes    bool
}

// NewDeleteCommand creates a new delete command handler
func NewDeleteCommand(app *App) *DeleteCommand {
	return &DeleteCommand{
		store:        app.store,
		out:          app.out,
		in:           app.in,
		validator:    app.validator,
		errorHandler: app.errorHandler,
		assumeYes:    app.assumeYes,
	}
}

// Execute runs the delete command
func (c *DeleteCommand) Execute(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("failed to delete task: exactly one task id is required")
	}

	id, err := c.validator.ParseTaskID(args[0])
	if err != nil {
		return c.errorHandler.Handle("delete task", err)
	}

	task, found := c.store.Get(id)
	if !found {
		_, err := fmt.Fprintf(c.out, "No task with id %d\n", id)
		return err
	}

	if !c.assumeYes {
		confirmed, err := c.confirm(fmt.Sprintf("Are you sure you want to delete \"%s\"? [y/N] ", task.Text))
		if err != nil {
			return c.errorHandler.Handle("delete task", err)
		}
		if !confirmed {
			_, err := fmt.Fprintln(c.out, "Delete cancelled.")
			return err
		}
	}

	c.store.Delete(ctx, id)
	_, err = fmt.Fprintf(c.out, "Deleted task %d: %s\n", task.ID, task.Text)
	return err
}

// confirm prints prompt and reads one line of input.
// Only "y" or "yes", in any case, confirm. End of input declines.
func (c *DeleteCommand) confirm(prompt string) (bool, error) {
	if _, err := fmt.Fprint(c.out, prompt); err != nil {
		return false, err
	}

	if c.in == nil {
		return false, nil
	}

	line, err := bufio.NewReader(c.in).ReadString('\n')
	if err != nil && err != io.EOF {
		return false, err
	}

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}
