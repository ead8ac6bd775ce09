//nolint:revive // Package name intentionally matches stdlib for domain clarity
package errors

import "fmt"

// TaskNotFoundError indicates no ready or waiting task has the id.
type TaskNotFoundError struct {
	ID int
}

func (e TaskNotFoundError) Error() string {
	return fmt.Sprintf("task not found: %d", e.ID)
}

// InvalidIDError indicates a task id argument is not a positive integer.
type InvalidIDError struct {
	Value string
}

func (e InvalidIDError) Error() string {
	return fmt.Sprintf("invalid task id: %s (must be a positive integer)", e.Value)
}

// InvalidPriorityError indicates an invalid priority value.
type InvalidPriorityError struct {
	Value string
}

func (e InvalidPriorityError) Error() string {
	return fmt.Sprintf("invalid priority: %s (valid: H, M, L)", e.Value)
}

// InvalidDateError indicates a date string that is neither a keyword nor YYYY-MM-DD.
type InvalidDateError struct {
	Value string
}

func (e InvalidDateError) Error() string {
	return fmt.Sprintf("invalid date: %s (valid: today, eow, eom, yyyy-mm-dd)", e.Value)
}

// InvalidModeError indicates an unknown display mode in the config.
type InvalidModeError struct {
	Value string
}

func (e InvalidModeError) Error() string {
	return fmt.Sprintf("invalid mode: %s (valid: minimum, simple)", e.Value)
}

// EmptyDescriptionError indicates a task was given an empty primary description.
type EmptyDescriptionError struct{}

func (e EmptyDescriptionError) Error() string {
	return "description must not be empty"
}

// EmptyAnnotationError indicates annotate was called with empty text.
type EmptyAnnotationError struct {
	ID int
}

func (e EmptyAnnotationError) Error() string {
	return fmt.Sprintf("annotation for task %d must not be empty", e.ID)
}

// ConfigExistsError indicates config init would overwrite an existing file.
type ConfigExistsError struct {
	Path string
}

func (e ConfigExistsError) Error() string {
	return fmt.Sprintf("config already exists: %s (use --force to overwrite)", e.Path)
}

// InvalidRecordError indicates a stored task record is missing required fields.
type InvalidRecordError struct {
	Reason string
}

func (e InvalidRecordError) Error() string {
	return fmt.Sprintf("invalid task record: %s", e.Reason)
}
