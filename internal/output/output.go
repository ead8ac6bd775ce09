package output

import "github.com/abatilo/sigo/internal/task"

// Formatter defines the interface for output formatting.
type Formatter interface {
	FormatEvent(e Event) string
	FormatTaskList(tasks []task.ActiveParams) string
	FormatCompletedList(tasks []task.CompletedTask) string
	FormatError(err error) string
	FormatMessage(msg string) string
}

// EventKind names the outcome of a command.
type EventKind string

const (
	EventCreated        EventKind = "created"
	EventCreatedWaiting EventKind = "created_waiting"
	EventModified       EventKind = "modified"
	EventCompleted      EventKind = "completed"
	EventWaited         EventKind = "waited"
	EventAlreadyWaiting EventKind = "already_waiting"
	EventReturned       EventKind = "returned"
	EventAlreadyReady   EventKind = "already_ready"
	EventAnnotated      EventKind = "annotated"
)

// Event reports what a command did to one task.
type Event struct {
	Kind        EventKind
	ID          int
	Description string
}
