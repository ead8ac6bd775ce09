//nolint:testpackage // Tests require internal access for thorough testing
package errors

import (
	"testing"
)

func TestInvalidPriorityError(t *testing.T) {
	tests := []struct {
		name string
		err  InvalidPriorityError
		want string
	}{
		{
			name: "formats value",
			err:  InvalidPriorityError{Value: "urgent"},
			want: "invalid priority: urgent (valid: H, M, L)",
		},
		{
			name: "handles empty value",
			err:  InvalidPriorityError{Value: ""},
			want: "invalid priority:  (valid: H, M, L)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("InvalidPriorityError.Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTaskNotFoundError(t *testing.T) {
	err := TaskNotFoundError{ID: 42}
	want := "task not found: 42"
	if got := err.Error(); got != want {
		t.Errorf("TaskNotFoundError.Error() = %q, want %q", got, want)
	}
}

func TestInvalidIDError(t *testing.T) {
	err := InvalidIDError{Value: "-3"}
	want := "invalid task id: -3 (must be a positive integer)"
	if got := err.Error(); got != want {
		t.Errorf("InvalidIDError.Error() = %q, want %q", got, want)
	}
}

func TestInvalidDateError(t *testing.T) {
	err := InvalidDateError{Value: "tomorrow"}
	want := "invalid date: tomorrow (valid: today, eow, eom, yyyy-mm-dd)"
	if got := err.Error(); got != want {
		t.Errorf("InvalidDateError.Error() = %q, want %q", got, want)
	}
}

func TestEmptyAnnotationError(t *testing.T) {
	err := EmptyAnnotationError{ID: 5}
	want := "annotation for task 5 must not be empty"
	if got := err.Error(); got != want {
		t.Errorf("EmptyAnnotationError.Error() = %q, want %q", got, want)
	}
}

func TestInvalidRecordError(t *testing.T) {
	err := InvalidRecordError{Reason: "task 2 has no description"}
	want := "invalid task record: task 2 has no description"
	if got := err.Error(); got != want {
		t.Errorf("InvalidRecordError.Error() = %q, want %q", got, want)
	}
}
