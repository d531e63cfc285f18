package cli

import (
	"context"
	"fmt"
	"io"

	"todo-list/internal/domain"
	"todo-list/internal/services"
	"todo-list/internal/validation"
)

// ListCommand handles the list command
type ListCommand struct {
	store        services.TaskStore
	out          io.Writer
	renderer     *Renderer
	validator    *validation.TaskValidator
	errorHandler *ErrorHandler
	defaultView  domain.View
}

// NewListCommand creates a new list command handler
func NewListCommand(app *App) *ListCommand {
	return &ListCommand{
		store:        app.store,
		out:          app.out,
		renderer:     app.renderer,
		validator:    app.validator,
		errorHandler: app.errorHandler,
		defaultView:  app.config.GetListDefaultView(),
	}
}

// Execute runs the list command
func (c *ListCommand) Execute(ctx context.Context, args []string) error {
	view := c.defaultView
	if len(args) > 0 {
		parsed, err := c.validator.ParseView(args[0])
		if err != nil {
			return c.errorHandler.Handle("list tasks", err)
		}
		view = parsed
	}

	return c.printTasks(c.store.Filtered(view))
}

// printTasks writes one line per task, or a notice for an empty view
func (c *ListCommand) printTasks(tasks []domain.Task) error {
	if len(tasks) == 0 {
		_, err := fmt.Fprintln(c.out, "No tasks found")
		return err
	}

	for _, task := range tasks {
		if _, err := fmt.Fprintln(c.out, c.renderer.TaskLine(task)); err != nil {
			return err
		}
	}
	return nil
}
