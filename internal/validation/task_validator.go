package validation

import (
	"strings"

	"todo-list/internal/domain"
)

// TaskValidator provides validation for Task-related operations
type TaskValidator struct {
	validator *Validator
}

// NewTaskValidator creates a new task validator
func NewTaskValidator() *TaskValidator {
	return &TaskValidator{
		validator: NewValidator(),
	}
}

// ValidateText validates task text for creation
func (tv *TaskValidator) ValidateText(text string) error {
	if !tv.validator.IsNonEmptyString(text) {
		validationError := NewValidationError()
		validationError.AddRequiredError("text")
		return validationError
	}
	return nil
}

// GetValidText returns the trimmed text, or an error when nothing is left
func (tv *TaskValidator) GetValidText(text string) (string, error) {
	if err := tv.ValidateText(text); err != nil {
		return "", err
	}
	return tv.validator.TrimAndValidateString(text), nil
}

// ParseTaskID parses a task ID argument
func (tv *TaskValidator) ParseTaskID(arg string) (int64, error) {
	id, ok := tv.validator.ParseTaskID(arg)
	if !ok {
		validationError := NewValidationError()
		validationError.AddInvalidValueError("id", arg, "must be a positive integer")
		return 0, validationError
	}
	return id, nil
}

// ParseView parses a view name argument
func (tv *TaskValidator) ParseView(arg string) (domain.View, error) {
	view, ok := domain.ParseView(arg)
	if !ok {
		validationError := NewValidationError()
		names := make([]string, 0, len(domain.Views()))
		for _, v := range domain.Views() {
			names = append(names, string(v))
		}
		validationError.AddInvalidValueError("view", arg, "must be one of "+strings.Join(names, ", "))
		return "", validationError
	}
	return view, nil
}

// ValidateTasks validates a full task list as read back from storage.
// Every record must be valid on its own and ids must be unique.
func (tv *TaskValidator) ValidateTasks(tasks []domain.Task) error {
	validationError := NewValidationError()
	seen := make(map[int64]bool, len(tasks))

	for _, task := range tasks {
		tv.collectTaskErrors(task, validationError)
		if seen[task.ID] {
			validationError.AddDuplicateError("id", task.ID)
		}
		seen[task.ID] = true
	}

	if validationError.HasErrors() {
		return validationError
	}
	return nil
}

func (tv *TaskValidator) collectTaskErrors(task domain.Task, validationError *ValidationError) {
	if !tv.validator.IsValidTaskID(task.ID) {
		validationError.AddInvalidValueError("id", task.ID, "must be a positive integer")
	}
	if task.Text == "" {
		validationError.AddRequiredError("text")
	}
	if !tv.validator.IsValidDate(task.Created) {
		validationError.AddInvalidFormatError("created", task.Created, domain.DateLayout)
	}
	if task.Due != nil && !tv.validator.IsValidDate(*task.Due) {
		validationError.AddInvalidFormatError("due", *task.Due, domain.DateLayout)
	}
}
