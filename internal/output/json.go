package output

import (
	"encoding/json"

	"github.com/abatilo/sigo/internal/task"
)

// JSONFormatter formats output as JSON.
type JSONFormatter struct{}

// marshalJSON marshals a value to indented JSON with a trailing newline.
func marshalJSON(v any) string {
	data, _ := json.MarshalIndent(v, "", "  ")
	return string(data) + "\n"
}

// NewJSONFormatter creates a new JSONFormatter.
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

// eventJSON is the JSON representation of an event.
type eventJSON struct {
	Event       string `json:"event"`
	ID          int    `json:"id"`
	Description string `json:"description,omitempty"`
}

// FormatEvent formats a command outcome as JSON.
func (f *JSONFormatter) FormatEvent(e Event) string {
	return marshalJSON(eventJSON{Event: string(e.Kind), ID: e.ID, Description: e.Description})
}

// FormatTaskList formats active tasks as JSON, in the on-disk record shape.
func (f *JSONFormatter) FormatTaskList(tasks []task.ActiveParams) string {
	if tasks == nil {
		tasks = []task.ActiveParams{}
	}
	return marshalJSON(tasks)
}

// FormatCompletedList formats the completed archive as JSON.
func (f *JSONFormatter) FormatCompletedList(tasks []task.CompletedTask) string {
	if tasks == nil {
		tasks = []task.CompletedTask{}
	}
	return marshalJSON(tasks)
}

// errorJSON is the JSON representation of an error.
type errorJSON struct {
	Error string `json:"error"`
}

// FormatError formats an error as JSON.
func (f *JSONFormatter) FormatError(err error) string {
	return marshalJSON(errorJSON{Error: err.Error()})
}

// messageJSON is the JSON representation of a message.
type messageJSON struct {
	Message string `json:"message"`
}

// FormatMessage formats a simple message as JSON.
func (f *JSONFormatter) FormatMessage(msg string) string {
	return marshalJSON(messageJSON{Message: msg})
}
