package main

import (
	"strconv"
	"strings"
	"time"

	"cloud.google.com/go/civil"

	"github.com/abatilo/sigo/internal/date"
	sigoerrors "github.com/abatilo/sigo/internal/errors"
	"github.com/abatilo/sigo/internal/output"
	"github.com/abatilo/sigo/internal/storage"
	"github.com/abatilo/sigo/internal/task"
)

func parseID(s string) (int, error) {
	id, err := strconv.Atoi(s)
	if err != nil || id < 1 {
		return 0, sigoerrors.InvalidIDError{Value: s}
	}
	return id, nil
}

// parsePriority returns nil for an empty flag.
func parsePriority(s string) (*task.Priority, error) {
	if s == "" {
		return nil, nil //nolint:nilnil // absent priority is not an error
	}
	p, ok := task.ParsePriority(s)
	if !ok {
		return nil, sigoerrors.InvalidPriorityError{Value: s}
	}
	return &p, nil
}

// parseDue returns nil for an empty flag.
func parseDue(s string, now time.Time) (*civil.Date, error) {
	if s == "" {
		return nil, nil //nolint:nilnil // absent due date is not an error
	}
	d, err := date.Parse(s, now)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// optionalText joins trailing arguments, returning nil when there are none.
func optionalText(args []string) *string {
	if len(args) == 0 {
		return nil
	}
	text := strings.Join(args, " ")
	return &text
}

func runAdd(
	s *storage.Store,
	description string,
	priority *task.Priority,
	due *civil.Date,
	waiting bool,
) (output.Event, error) {
	t, err := storage.AddReady(s, description, priority, due)
	if err != nil {
		return output.Event{}, err
	}
	if !waiting {
		return output.Event{Kind: output.EventCreated, ID: t.ID, Description: t.PrimaryDescription()}, nil
	}

	w, err := storage.Wait(s, t, nil)
	if err != nil {
		return output.Event{}, err
	}
	return output.Event{Kind: output.EventCreatedWaiting, ID: w.ID, Description: w.PrimaryDescription()}, nil
}

func runDone(s *storage.Store, id int) (output.Event, error) {
	t, err := storage.GetByID(s, id)
	if err != nil {
		return output.Event{}, err
	}
	params, _ := task.Params(t)
	if _, err = storage.Complete(s, t); err != nil {
		return output.Event{}, err
	}
	return output.Event{Kind: output.EventCompleted, ID: id, Description: params.PrimaryDescription()}, nil
}

// runWait moves a ready task to waiting. A task that is already waiting is left alone.
func runWait(s *storage.Store, id int, text *string) (output.Event, error) {
	t, err := storage.GetByID(s, id)
	if err != nil {
		return output.Event{}, err
	}

	switch v := t.(type) {
	case task.WaitingTask:
		return output.Event{Kind: output.EventAlreadyWaiting, ID: v.ID, Description: v.PrimaryDescription()}, nil
	case task.ReadyTask:
		w, waitErr := storage.Wait(s, v, text)
		if waitErr != nil {
			return output.Event{}, waitErr
		}
		return output.Event{Kind: output.EventWaited, ID: w.ID, Description: w.PrimaryDescription()}, nil
	default:
		return output.Event{}, sigoerrors.TaskNotFoundError{ID: id}
	}
}

// runBack moves a waiting task to ready. A task that is already ready is left alone.
func runBack(s *storage.Store, id int, text *string) (output.Event, error) {
	t, err := storage.GetByID(s, id)
	if err != nil {
		return output.Event{}, err
	}

	switch v := t.(type) {
	case task.ReadyTask:
		return output.Event{Kind: output.EventAlreadyReady, ID: v.ID, Description: v.PrimaryDescription()}, nil
	case task.WaitingTask:
		r, backErr := storage.Back(s, v, text)
		if backErr != nil {
			return output.Event{}, backErr
		}
		return output.Event{Kind: output.EventReturned, ID: r.ID, Description: r.PrimaryDescription()}, nil
	default:
		return output.Event{}, sigoerrors.TaskNotFoundError{ID: id}
	}
}

func runAnnotate(s *storage.Store, id int, text string) (output.Event, error) {
	t, err := storage.GetByID(s, id)
	if err != nil {
		return output.Event{}, err
	}
	updated, err := storage.Annotate(s, t, text)
	if err != nil {
		return output.Event{}, err
	}
	params, _ := task.Params(updated)
	return output.Event{Kind: output.EventAnnotated, ID: id, Description: params.PrimaryDescription()}, nil
}

func runModify(
	s *storage.Store,
	id int,
	text *string,
	priority *task.Priority,
	due *civil.Date,
) (output.Event, error) {
	t, err := storage.GetByID(s, id)
	if err != nil {
		return output.Event{}, err
	}
	updated, err := storage.Modify(s, t, text, priority, due)
	if err != nil {
		return output.Event{}, err
	}
	params, _ := task.Params(updated)
	return output.Event{Kind: output.EventModified, ID: id, Description: params.PrimaryDescription()}, nil
}

func readyParams(tasks []task.ReadyTask) []task.ActiveParams {
	params := make([]task.ActiveParams, len(tasks))
	for i, t := range tasks {
		params[i] = t.ActiveParams
	}
	return params
}

func waitingParams(tasks []task.WaitingTask) []task.ActiveParams {
	params := make([]task.ActiveParams, len(tasks))
	for i, t := range tasks {
		params[i] = t.ActiveParams
	}
	return params
}
