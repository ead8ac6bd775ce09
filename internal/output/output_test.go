package output

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abatilo/sigo/internal/config"
	"github.com/abatilo/sigo/internal/task"
)

func sampleTasks() []task.ActiveParams {
	high := task.PriorityHigh
	due := civil.Date{Year: 2024, Month: time.July, Day: 20}
	return []task.ActiveParams{
		{ID: 3, Priority: &high, Description: []string{"write report", "include q3 numbers"}, Due: &due},
		{ID: 1, Description: []string{"buy milk"}},
	}
}

func TestHumanFormatEvent(t *testing.T) {
	f := NewHumanFormatter(config.ModeSimple)

	tests := []struct {
		event Event
		want  string
	}{
		{Event{Kind: EventCreated, ID: 3}, "Created sigo 3\n"},
		{Event{Kind: EventCreatedWaiting, ID: 4}, "Created waiting sigo 4\n"},
		{Event{Kind: EventCompleted, ID: 5, Description: "buy milk"}, "Completed sigo 5 'buy milk'\n"},
		{Event{Kind: EventAlreadyWaiting, ID: 2, Description: "call bank"}, "Already waiting sigo 2 'call bank'\n"},
		{Event{Kind: EventAlreadyReady, ID: 2, Description: "call bank"}, "Already ready sigo 2 'call bank'\n"},
		{Event{Kind: EventModified, ID: 1, Description: "x"}, "Modified sigo 1 'x'\n"},
	}

	for _, tt := range tests {
		t.Run(string(tt.event.Kind), func(t *testing.T) {
			assert.Equal(t, tt.want, f.FormatEvent(tt.event))
		})
	}
}

func TestHumanFormatTaskList(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		f := NewHumanFormatter(config.ModeSimple)
		assert.Equal(t, "No tasks found.\n", f.FormatTaskList(nil))
	})

	t.Run("simple shows annotations", func(t *testing.T) {
		out := NewHumanFormatter(config.ModeSimple).FormatTaskList(sampleTasks())
		assert.Contains(t, out, "Description")
		assert.Contains(t, out, "write report")
		assert.Contains(t, out, "include q3 numbers")
		assert.Contains(t, out, "2024-07-20")
		assert.Contains(t, out, "buy milk")
	})

	t.Run("minimum shows primary only", func(t *testing.T) {
		out := NewHumanFormatter(config.ModeMinimum).FormatTaskList(sampleTasks())
		assert.Contains(t, out, "write report")
		assert.NotContains(t, out, "include q3 numbers")
	})

	t.Run("keeps order", func(t *testing.T) {
		out := NewHumanFormatter(config.ModeSimple).FormatTaskList(sampleTasks())
		assert.Less(t, strings.Index(out, "write report"), strings.Index(out, "buy milk"))
	})
}

func TestHumanFormatCompletedList(t *testing.T) {
	f := NewHumanFormatter(config.ModeSimple)
	assert.Equal(t, "No completed tasks.\n", f.FormatCompletedList(nil))

	got := f.FormatCompletedList([]task.CompletedTask{{Summary: "buy milk"}, {Summary: "call bank"}})
	assert.Equal(t, "[X] buy milk\n[X] call bank\n", got)
}

func TestHumanFormatError(t *testing.T) {
	f := NewHumanFormatter(config.ModeSimple)
	assert.Equal(t, "Error: boom\n", f.FormatError(errors.New("boom")))
	assert.Equal(t, "done\n", f.FormatMessage("done"))
}

func TestJSONFormatEvent(t *testing.T) {
	f := NewJSONFormatter()

	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(f.FormatEvent(Event{Kind: EventWaited, ID: 2, Description: "call bank"})), &got))
	assert.Equal(t, "waited", got["event"])
	assert.EqualValues(t, 2, got["id"])
	assert.Equal(t, "call bank", got["description"])
}

func TestJSONFormatTaskList(t *testing.T) {
	f := NewJSONFormatter()

	assert.Equal(t, "[]\n", f.FormatTaskList(nil))
	assert.Equal(t, "[]\n", f.FormatCompletedList(nil))

	var got []task.ActiveParams
	require.NoError(t, json.Unmarshal([]byte(f.FormatTaskList(sampleTasks())), &got))
	assert.Equal(t, sampleTasks(), got)
}

func TestJSONFormatError(t *testing.T) {
	f := NewJSONFormatter()

	var got map[string]string
	require.NoError(t, json.Unmarshal([]byte(f.FormatError(errors.New("boom"))), &got))
	assert.Equal(t, map[string]string{"error": "boom"}, got)

	require.NoError(t, json.Unmarshal([]byte(f.FormatMessage("ok")), &got))
	assert.Equal(t, "ok", got["message"])
}
