package task

import (
	"fmt"
	"slices"
	"strings"

	"cloud.google.com/go/civil"

	sigoerrors "github.com/abatilo/sigo/internal/errors"
)

// Priority represents the importance level of a task.
type Priority string

const (
	// PriorityHigh is worked on first.
	PriorityHigh Priority = "H"
	// PriorityMedium sorts after high.
	PriorityMedium Priority = "M"
	// PriorityLow sorts after medium and before unprioritized tasks.
	PriorityLow Priority = "L"
)

// PriorityOrder returns the sort order for a priority (lower = higher priority).
// A nil priority sorts after every present one.
func PriorityOrder(p *Priority) int {
	if p == nil {
		return 3
	}
	switch *p {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	case PriorityLow:
		return 2
	default:
		// Unreachable for decoded or parsed values; UnmarshalText and
		// ParsePriority reject anything but H, M and L.
		return 3
	}
}

// IsValidPriority checks if a priority string is valid.
func IsValidPriority(p Priority) bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	default:
		return false
	}
}

// ParsePriority accepts H, M or L in either case.
func ParsePriority(s string) (Priority, bool) {
	p := Priority(strings.ToUpper(s))
	return p, IsValidPriority(p)
}

// UnmarshalText accepts exactly H, M or L.
func (p *Priority) UnmarshalText(text []byte) error {
	v := Priority(text)
	if !IsValidPriority(v) {
		return sigoerrors.InvalidPriorityError{Value: string(text)}
	}
	*p = v
	return nil
}

// Task is one of ReadyTask, WaitingTask or CompletedTask.
type Task interface {
	isTask()
}

// ActiveParams is the payload shared by ready and waiting tasks.
type ActiveParams struct {
	ID          int         `json:"id"`
	Priority    *Priority   `json:"priority"`
	Description []string    `json:"description"`
	Due         *civil.Date `json:"due"`
}

// ReadyTask is actionable now.
type ReadyTask struct {
	ActiveParams
}

// WaitingTask is blocked on something external.
type WaitingTask struct {
	ActiveParams
}

// CompletedTask is an archived task. It has no id.
type CompletedTask struct {
	Summary string `json:"summary"`
}

func (ReadyTask) isTask()     {}
func (WaitingTask) isTask()   {}
func (CompletedTask) isTask() {}

// PrimaryDescription returns the first description line.
func (p ActiveParams) PrimaryDescription() string {
	if len(p.Description) == 0 {
		return ""
	}
	return p.Description[0]
}

// Summary concatenates every description line.
func (p ActiveParams) Summary() string {
	return strings.Join(p.Description, "")
}

// WithAnnotation returns a copy with text appended to the description.
func (p ActiveParams) WithAnnotation(text string) ActiveParams {
	p.Description = append(slices.Clone(p.Description), text)
	return p
}

// WithPrimary returns a copy whose first description line is text.
func (p ActiveParams) WithPrimary(text string) ActiveParams {
	desc := slices.Clone(p.Description)
	if len(desc) == 0 {
		desc = []string{text}
	} else {
		desc[0] = text
	}
	p.Description = desc
	return p
}

// WithPriority replaces the priority when priority is non-nil.
func (p ActiveParams) WithPriority(priority *Priority) ActiveParams {
	if priority != nil {
		v := *priority
		p.Priority = &v
	}
	return p
}

// WithDue replaces the due date when due is non-nil.
func (p ActiveParams) WithDue(due *civil.Date) ActiveParams {
	if due != nil {
		v := *due
		p.Due = &v
	}
	return p
}

// Params returns the active payload of t, or false for a completed task.
func Params(t Task) (ActiveParams, bool) {
	switch v := t.(type) {
	case ReadyTask:
		return v.ActiveParams, true
	case WaitingTask:
		return v.ActiveParams, true
	default:
		return ActiveParams{}, false
	}
}

// Compare orders active tasks by priority only.
func Compare(a, b ActiveParams) int {
	return PriorityOrder(a.Priority) - PriorityOrder(b.Priority)
}

// SortReady sorts tasks by priority, keeping file order on ties.
func SortReady(tasks []ReadyTask) {
	slices.SortStableFunc(tasks, func(a, b ReadyTask) int {
		return Compare(a.ActiveParams, b.ActiveParams)
	})
}

// SortWaiting sorts tasks by priority, keeping file order on ties.
func SortWaiting(tasks []WaitingTask) {
	slices.SortStableFunc(tasks, func(a, b WaitingTask) int {
		return Compare(a.ActiveParams, b.ActiveParams)
	})
}

// Collection file names, one per task kind.
const (
	ReadyCollection     = "ready_tasks"
	WaitingCollection   = "waiting_tasks"
	CompletedCollection = "completed_tasks"
)

// Collection names the file holding ready tasks.
func (ReadyTask) Collection() string { return ReadyCollection }

// Collection names the file holding waiting tasks.
func (WaitingTask) Collection() string { return WaitingCollection }

// Collection names the file holding the completed archive.
func (CompletedTask) Collection() string { return CompletedCollection }

// TaskID returns the task id.
func (p ActiveParams) TaskID() int {
	return p.ID
}

// Validate reports a record that has no positive id or no description.
func (p ActiveParams) Validate() error {
	if p.ID < 1 {
		return sigoerrors.InvalidRecordError{Reason: fmt.Sprintf("id %d is not positive", p.ID)}
	}
	if len(p.Description) == 0 {
		return sigoerrors.InvalidRecordError{Reason: fmt.Sprintf("task %d has no description", p.ID)}
	}
	return nil
}

// Validate reports a completed record without a summary.
func (c CompletedTask) Validate() error {
	if c.Summary == "" {
		return sigoerrors.InvalidRecordError{Reason: "completed task has no summary"}
	}
	return nil
}
