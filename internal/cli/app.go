package cli

import (
	"io"

	"todo-list/internal/config"
	"todo-list/internal/services"
	"todo-list/internal/validation"
)

// App holds everything a command handler needs for one invocation
type App struct {
	store        services.TaskStore
	config       *config.Config
	out          io.Writer
	in           io.Reader
	renderer     *Renderer
	validator    *validation.TaskValidator
	errorHandler *ErrorHandler
	registry     *CommandRegistry
	assumeYes    bool
}

// AppOption configures an App
type AppOption func(*App)

// WithAssumeYes answers yes to every confirmation prompt
func WithAssumeYes(assumeYes bool) AppOption {
	return func(a *App) {
		a.assumeYes = assumeYes
	}
}

// NewApp creates a new CLI application instance with dependency injection
func NewApp(store services.TaskStore, cfg *config.Config, out io.Writer, in io.Reader, opts ...AppOption) *App {
	if cfg == nil {
		cfg = config.NewConfig()
	}

	app := &App{
		store:        store,
		config:       cfg,
		out:          out,
		in:           in,
		renderer:     NewRenderer(out),
		validator:    validation.NewTaskValidator(),
		errorHandler: NewErrorHandler(),
	}
	for _, opt := range opts {
		opt(app)
	}
	app.registry = NewCommandRegistry(app)
	return app
}

// Registry returns the commands available to this app
func (a *App) Registry() *CommandRegistry {
	return a.registry
}
