package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"todo-list/internal/domain"
	"todo-list/internal/errors"
	"todo-list/internal/repository"
	"todo-list/internal/validation"
)

// taskStoreImpl implements the TaskStore interface
type taskStoreImpl struct {
	storage   repository.Storage
	logger    zerolog.Logger
	clock     func() time.Time
	validator *validation.TaskValidator
	tasks     []domain.Task
}

// Option configures a task store
type Option func(*taskStoreImpl)

// WithClock replaces the clock used to stamp new tasks and evaluate the today view
func WithClock(clock func() time.Time) Option {
	return func(s *taskStoreImpl) {
		s.clock = clock
	}
}

// NewTaskStore creates an empty task store backed by storage.
// Call Load to populate it.
func NewTaskStore(storage repository.Storage, logger zerolog.Logger, opts ...Option) TaskStore {
	s := &taskStoreImpl{
		storage:   storage,
		logger:    logger.With().Str("component", "task_store").Logger(),
		clock:     time.Now,
		validator: validation.NewTaskValidator(),
		tasks:     []domain.Task{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *taskStoreImpl) today() string {
	return domain.FormatDate(s.clock())
}

// Load replaces the in-memory list with the persisted one.
// Missing storage is seeded and written back; any other failure leaves the list empty.
// An empty list from a failed load replaces the stored data on the next mutation.
func (s *taskStoreImpl) Load(ctx context.Context) {
	tasks, err := s.storage.Load(ctx)
	if err != nil {
		if errors.IsNotFound(err) {
			s.tasks = domain.SeedTasks()
			s.logger.Info().
				Str("location", s.storage.Location()).
				Int("count", len(s.tasks)).
				Msg("no task storage found, seeded example tasks")
			s.Save(ctx)
			return
		}

		s.tasks = []domain.Task{}
		s.logger.Error().Err(err).
			Fields(errors.LogFields(err)).
			Msg("failed to load tasks")
		return
	}

	if err := s.validator.ValidateTasks(tasks); err != nil {
		s.tasks = []domain.Task{}
		s.logger.Error().Err(err).
			Str("location", s.storage.Location()).
			Msg("stored tasks are invalid, starting with an empty list")
		return
	}

	s.tasks = tasks
	s.logger.Debug().Int("count", len(tasks)).Msg("tasks loaded")
}

// Save writes the full list to storage
func (s *taskStoreImpl) Save(ctx context.Context) {
	if err := s.storage.Save(ctx, s.tasks); err != nil {
		s.logger.Error().Err(err).
			Fields(errors.LogFields(err)).
			Msg("failed to save tasks")
		return
	}
	s.logger.Debug().Int("count", len(s.tasks)).Msg("tasks saved")
}

// Add appends a new open task. Blank text is ignored.
func (s *taskStoreImpl) Add(ctx context.Context, text string) (domain.Task, bool) {
	text, err := s.validator.GetValidText(text)
	if err != nil {
		s.logger.Debug().Err(err).Msg("ignored task with empty text")
		return domain.Task{}, false
	}

	task := domain.NewTask(domain.NextID(s.tasks), text, s.clock())
	s.tasks = append(s.tasks, task)
	s.Save(ctx)

	return task.Clone(), true
}

// SetCompleted sets the completed flag of the task with the given id
func (s *taskStoreImpl) SetCompleted(ctx context.Context, id int64, completed bool) bool {
	i := s.indexOf(id)
	if i < 0 {
		return false
	}

	s.tasks[i].Completed = completed
	s.Save(ctx)
	return true
}

// Delete removes the task with the given id
func (s *taskStoreImpl) Delete(ctx context.Context, id int64) bool {
	i := s.indexOf(id)
	if i < 0 {
		return false
	}

	s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
	s.Save(ctx)
	return true
}

// Get returns a copy of the task with the given id
func (s *taskStoreImpl) Get(id int64) (domain.Task, bool) {
	i := s.indexOf(id)
	if i < 0 {
		return domain.Task{}, false
	}
	return s.tasks[i].Clone(), true
}

// Filtered returns copies of the tasks matching view, in store order
func (s *taskStoreImpl) Filtered(view domain.View) []domain.Task {
	today := s.today()
	result := make([]domain.Task, 0, len(s.tasks))
	for _, task := range s.tasks {
		if view.Matches(task, today) {
			result = append(result, task.Clone())
		}
	}
	return result
}

// Len returns the number of tasks held
func (s *taskStoreImpl) Len() int {
	return len(s.tasks)
}

// Location returns where the tasks are persisted
func (s *taskStoreImpl) Location() string {
	return s.storage.Location()
}

// Close releases the underlying storage
func (s *taskStoreImpl) Close() error {
	return s.storage.Close()
}

func (s *taskStoreImpl) indexOf(id int64) int {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			return i
		}
	}
	return -1
}
