package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"todo-list/internal/config"
	"todo-list/internal/domain"
	"todo-list/internal/errors"
	"todo-list/internal/logging"
	"todo-list/internal/services"
)

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd       *cobra.Command
	config    *config.Config
	logger    zerolog.Logger
	store     services.TaskStore
	ownsStore bool
	assumeYes bool
}

// RootOption configures a RootCommand
type RootOption func(*RootCommand)

// WithStore makes every command use store instead of opening one from configuration.
// The caller keeps ownership and closes it.
func WithStore(store services.TaskStore) RootOption {
	return func(r *RootCommand) {
		r.store = store
	}
}

// NewRootCommand creates the root cobra command with global flags
func NewRootCommand(cfg *config.Config, logger zerolog.Logger, opts ...RootOption) *RootCommand {
	if cfg == nil {
		cfg = config.NewConfig()
	}

	root := &RootCommand{
		config: cfg,
		logger: logger,
	}
	for _, opt := range opts {
		opt(root)
	}

	root.cmd = &cobra.Command{
		Use:   "td",
		Short: "A command-line to-do list",
		Long:  rootHelp(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return root.getConfigFromFlags()
		},
	}

	root.addGlobalFlags()
	root.addSubcommands()

	return root
}

const rootExamples = `td keeps a small to-do list in a file under your home directory.

EXAMPLES:
  td list                          # List every task
  td list today                    # Tasks created or due today
  td list completed                # Completed tasks only
  td add Buy milk                  # Add a task
  td done 3                        # Mark task 3 as completed
  td undo 3                        # Mark task 3 as not completed
  td delete 3                      # Delete task 3 after confirmation
  td path                          # Show where tasks are stored`

// rootHelp appends the environment variables read by config.Loader to the examples
func rootHelp() string {
	usage, err := config.Usage()
	if err != nil || usage == "" {
		return rootExamples
	}

	return rootExamples + `

CONFIGURATION:
  Configuration follows this priority order: command-line flags > environment variables > defaults

` + usage + `
  ` + config.EnvFileVar + ` string
    	Optional dotenv file read before the environment
  ` + logging.DebugEnvVar + ` string
    	Any value forces debug logging`
}

// Execute runs the root command and releases any store it opened
func (r *RootCommand) Execute() error {
	defer r.closeStore()
	return r.cmd.Execute()
}

// SetArgs sets the arguments used by Execute instead of os.Args
func (r *RootCommand) SetArgs(args []string) {
	r.cmd.SetArgs(args)
}

// addGlobalFlags adds global configuration flags
func (r *RootCommand) addGlobalFlags() {
	flags := r.cmd.PersistentFlags()

	flags.String("backend", "", "Storage backend, json or sqlite (overrides TD_STORAGE_BACKEND)")
	flags.String("dir", "", "Storage directory (overrides TD_STORAGE_DIR)")
	flags.String("file", "", "Storage file name (overrides TD_STORAGE_FILENAME)")
	flags.String("log-level", "", "Log level (overrides TD_LOG_LEVEL)")
	flags.Duration("app-timeout", 0, "Per-command timeout (overrides TD_APP_TIMEOUT)")
}

// addSubcommands adds all CLI subcommands to the root command
func (r *RootCommand) addSubcommands() {
	listCmd := &cobra.Command{
		Use:   "list [all|today|completed]",
		Short: "List tasks",
		Long: `List tasks in the given view.

Views:
  all        every task
  today      tasks created today or due today
  completed  completed tasks

Without an argument the view from TD_LIST_DEFAULT_VIEW is used.`,
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: viewNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.run(cmd, "list", args)
		},
	}

	addCmd := &cobra.Command{
		Use:   "add [task text]",
		Short: "Add a task",
		Long:  "Add a new open task. All arguments are joined with spaces to form the task text.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.run(cmd, "add", args)
		},
	}

	doneCmd := &cobra.Command{
		Use:   "done [id]",
		Short: "Mark a task as completed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.run(cmd, "done", args)
		},
	}

	undoCmd := &cobra.Command{
		Use:   "undo [id]",
		Short: "Mark a task as not completed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.run(cmd, "undo", args)
		},
	}

	deleteCmd := &cobra.Command{
		Use:   "delete [id]",
		Short: "Delete a task",
		Long: `Delete a task by id.

This operation cannot be undone. You will be asked to confirm
unless --yes is given.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.run(cmd, "delete", args)
		},
	}
	deleteCmd.Flags().BoolVarP(&r.assumeYes, "yes", "y", false, "Delete without asking for confirmation")

	pathCmd := &cobra.Command{
		Use:   "path",
		Short: "Show where tasks are stored",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.run(cmd, "path", args)
		},
	}

	r.cmd.AddCommand(
		listCmd,
		addCmd,
		doneCmd,
		undoCmd,
		deleteCmd,
		pathCmd,
	)
}

func viewNames() []string {
	names := make([]string, 0, len(domain.Views()))
	for _, view := range domain.Views() {
		names = append(names, string(view))
	}
	return names
}

// run loads the store and dispatches to the named command handler
func (r *RootCommand) run(cmd *cobra.Command, name string, args []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), r.getAppTimeout())
	defer cancel()

	if err := r.openStore(); err != nil {
		return err
	}
	r.store.Load(ctx)

	app := NewApp(r.store, r.config, cmd.OutOrStdout(), cmd.InOrStdin(), WithAssumeYes(r.assumeYes))
	return app.Registry().Execute(ctx, name, args)
}

// openStore builds the task store from configuration unless one was injected
func (r *RootCommand) openStore() error {
	if r.store != nil {
		return nil
	}

	storage, err := config.CreateStorage(r.config)
	if err != nil {
		if errors.ShouldLogError(err) {
			r.logger.Error().Err(err).
				Fields(errors.LogFields(err)).
				Str("backend", r.config.Storage.Backend).
				Msg("failed to open task storage")
		}
		return NewErrorHandler().Handle("open task storage", err)
	}

	r.store = services.NewTaskStore(storage, r.logger)
	r.ownsStore = true
	r.logger.Debug().
		Str("backend", r.config.Storage.Backend).
		Str("location", storage.Location()).
		Msg("task storage opened")
	return nil
}

func (r *RootCommand) closeStore() {
	if !r.ownsStore || r.store == nil {
		return
	}
	if err := r.store.Close(); err != nil {
		r.logger.Error().Err(err).Msg("failed to close task storage")
	}
}

// getAppTimeout returns the configured application timeout
func (r *RootCommand) getAppTimeout() time.Duration {
	if r.config != nil && r.config.Application.Timeout > 0 {
		return r.config.Application.Timeout
	}
	return 30 * time.Second
}

// getConfigFromFlags updates the configuration with values from command-line flags
func (r *RootCommand) getConfigFromFlags() error {
	if r.config == nil {
		return fmt.Errorf("configuration not initialized")
	}

	flags := r.cmd.PersistentFlags()
	overrides := &config.ConfigOverrides{}

	if backend, _ := flags.GetString("backend"); backend != "" {
		overrides.Backend = &backend
	}
	if dir, _ := flags.GetString("dir"); dir != "" {
		overrides.Dir = &dir
	}
	if file, _ := flags.GetString("file"); file != "" {
		overrides.Filename = &file
	}
	if logLevel, _ := flags.GetString("log-level"); logLevel != "" {
		overrides.LogLevel = &logLevel
	}
	if appTimeout, _ := flags.GetDuration("app-timeout"); appTimeout > 0 {
		overrides.Timeout = &appTimeout
	}

	overrides.Apply(r.config)
	if err := r.config.Validate(); err != nil {
		return err
	}

	if overrides.LogLevel != nil {
		logger, err := logging.New(r.cmd.ErrOrStderr(), r.config.Log)
		if err != nil {
			return err
		}
		r.logger = logger
	}

	return nil
}
