package cli

import (
	"context"
	"fmt"
	"io"

	"todo-list/internal/services"
	"todo-list/internal/validation"
)

// CompleteCommand handles the done and undo commands
type CompleteCommand struct {
	store        services.TaskStore
	out          io.Writer
	validator    *validation.TaskValidator
	errorHandler *ErrorHandler
	completed    bool
}

// NewCompleteCommand creates a handler that sets the completed flag to completed
func NewCompleteCommand(app *App, completed bool) *CompleteCommand {
	return &CompleteCommand{
		store:        app.store,
		out:          app.out,
		validator:    app.validator,
		errorHandler: app.errorHandler,
		completed:    completed,
	}
}

// Execute runs the command against the task id in args[0]
func (c *CompleteCommand) Execute(ctx context.Context, args []string) error {
	operation := "complete task"
	if !c.completed {
		operation = "reopen task"
	}

	if len(args) != 1 {
		return fmt.Errorf("failed to %s: exactly one task id is required", operation)
	}

	id, err := c.validator.ParseTaskID(args[0])
	if err != nil {
		return c.errorHandler.Handle(operation, err)
	}

	if !c.store.SetCompleted(ctx, id, c.completed) {
		_, err := fmt.Fprintf(c.out, "No task with id %d\n", id)
		return err
	}

	task, _ := c.store.Get(id)
	verb := "Completed"
	if !c.completed {
		verb = "Reopened"
	}
	_, err = fmt.Fprintf(c.out, "%s task %d: %s\n", verb, task.ID, task.Text)
	return err
}
