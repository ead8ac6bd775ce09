package storage

import (
	"errors"
	"fmt"

	"cloud.google.com/go/civil"

	sigoerrors "github.com/abatilo/sigo/internal/errors"
	"github.com/abatilo/sigo/internal/task"
)

// IssueTaskID returns the lowest positive id unused by ready and waiting tasks.
func IssueTaskID(s *Store) (int, error) {
	ready, err := ReadAll[task.ReadyTask](s)
	if err != nil {
		return 0, err
	}
	waiting, err := ReadAll[task.WaitingTask](s)
	if err != nil {
		return 0, err
	}

	used := make(map[int]bool, len(ready)+len(waiting))
	for _, t := range ready {
		used[t.ID] = true
	}
	for _, t := range waiting {
		used[t.ID] = true
	}
	return task.NextID(func(id int) bool { return used[id] }), nil
}

// GetByID resolves an id to a ready or waiting task, checking ready first.
// Completed tasks have no id and are never returned.
func GetByID(s *Store, id int) (task.Task, error) {
	ready, err := FindByID[task.ReadyTask](s, id)
	if err == nil {
		return ready, nil
	}
	var notFound sigoerrors.TaskNotFoundError
	if !errors.As(err, &notFound) {
		return nil, err
	}

	waiting, err := FindByID[task.WaitingTask](s, id)
	if err != nil {
		return nil, err
	}
	return waiting, nil
}

// Create builds a ready task with a freshly issued id. It is not persisted.
func Create(s *Store, description string, priority *task.Priority, due *civil.Date) (task.ReadyTask, error) {
	if description == "" {
		return task.ReadyTask{}, sigoerrors.EmptyDescriptionError{}
	}
	id, err := IssueTaskID(s)
	if err != nil {
		return task.ReadyTask{}, err
	}
	params := task.ActiveParams{ID: id, Description: []string{description}}
	return task.ReadyTask{ActiveParams: params.WithPriority(priority).WithDue(due)}, nil
}

// AddReady creates a ready task and persists it.
func AddReady(s *Store, description string, priority *task.Priority, due *civil.Date) (task.ReadyTask, error) {
	t, err := Create(s, description, priority, due)
	if err != nil {
		return t, err
	}
	return Add(s, t)
}

// Wait moves a ready task to waiting, appending text as an annotation when non-empty.
func Wait(s *Store, t task.ReadyTask, text *string) (task.WaitingTask, error) {
	if err := DeleteByID[task.ReadyTask](s, t.ID); err != nil {
		return task.WaitingTask{}, err
	}
	waiting, err := Add(s, task.WaitingTask{ActiveParams: t.ActiveParams})
	if err != nil {
		return waiting, err
	}
	if text == nil || *text == "" {
		return waiting, nil
	}
	annotated := task.WaitingTask{ActiveParams: waiting.WithAnnotation(*text)}
	return annotated, replace(s, annotated)
}

// Back moves a waiting task to ready, appending text as an annotation when non-empty.
func Back(s *Store, t task.WaitingTask, text *string) (task.ReadyTask, error) {
	if err := DeleteByID[task.WaitingTask](s, t.ID); err != nil {
		return task.ReadyTask{}, err
	}
	ready, err := Add(s, task.ReadyTask{ActiveParams: t.ActiveParams})
	if err != nil {
		return ready, err
	}
	if text == nil || *text == "" {
		return ready, nil
	}
	annotated := task.ReadyTask{ActiveParams: ready.WithAnnotation(*text)}
	return annotated, replace(s, annotated)
}

// Complete removes t from its collection and appends its summary to the archive.
// It panics when given a completed task.
func Complete(s *Store, t task.Task) (task.CompletedTask, error) {
	var err error
	switch v := t.(type) {
	case task.ReadyTask:
		err = DeleteByID[task.ReadyTask](s, v.ID)
	case task.WaitingTask:
		err = DeleteByID[task.WaitingTask](s, v.ID)
	default:
		panic(fmt.Sprintf("storage: complete called on %T", t))
	}
	if err != nil {
		return task.CompletedTask{}, err
	}

	params, _ := task.Params(t)
	return Add(s, task.CompletedTask{Summary: params.Summary()})
}

// Annotate appends text to the description of t and stores the result.
// It panics when given a completed task.
func Annotate(s *Store, t task.Task, text string) (task.Task, error) {
	params := mustParams("annotate", t)
	if text == "" {
		return t, sigoerrors.EmptyAnnotationError{ID: params.ID}
	}
	return store(s, t, params.WithAnnotation(text))
}

// Modify replaces the primary description, priority and due date of t.
// Nil arguments keep the current value; annotation lines are left untouched.
// It panics when given a completed task.
func Modify(
	s *Store,
	t task.Task,
	text *string,
	priority *task.Priority,
	due *civil.Date,
) (task.Task, error) {
	params := mustParams("modify", t)
	if text != nil {
		if *text == "" {
			return t, sigoerrors.EmptyDescriptionError{}
		}
		params = params.WithPrimary(*text)
	}
	return store(s, t, params.WithPriority(priority).WithDue(due))
}

// ListReady returns ready tasks sorted by priority.
func ListReady(s *Store) ([]task.ReadyTask, error) {
	tasks, err := ReadAll[task.ReadyTask](s)
	if err != nil {
		return nil, err
	}
	task.SortReady(tasks)
	return tasks, nil
}

// ListWaiting returns waiting tasks sorted by priority.
func ListWaiting(s *Store) ([]task.WaitingTask, error) {
	tasks, err := ReadAll[task.WaitingTask](s)
	if err != nil {
		return nil, err
	}
	task.SortWaiting(tasks)
	return tasks, nil
}

// ListCompleted returns the archive in completion order.
func ListCompleted(s *Store) ([]task.CompletedTask, error) {
	return ReadAll[task.CompletedTask](s)
}

func mustParams(op string, t task.Task) task.ActiveParams {
	params, ok := task.Params(t)
	if !ok {
		panic(fmt.Sprintf("storage: %s called on %T", op, t))
	}
	return params
}

// store writes params back into the collection t lives in, keeping t's variant.
func store(s *Store, t task.Task, params task.ActiveParams) (task.Task, error) {
	switch t.(type) {
	case task.ReadyTask:
		updated := task.ReadyTask{ActiveParams: params}
		return updated, replace(s, updated)
	case task.WaitingTask:
		updated := task.WaitingTask{ActiveParams: params}
		return updated, replace(s, updated)
	default:
		panic(fmt.Sprintf("storage: cannot store %T", t))
	}
}
