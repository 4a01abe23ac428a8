package hooks

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingListener struct {
	name   string
	events *[]string
}

func (r *recordingListener) HandleEvent(_ context.Context, event Event) {
	*r.events = append(*r.events, r.name+":"+string(event.Type))
}

func TestNewEvent(t *testing.T) {
	a := NewEvent(EventSessionStarted, "session-1")
	b := NewEvent(EventSessionStarted, "session-1")

	assert.NotEmpty(t, a.ID)
	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, EventSessionStarted, a.Type)
	assert.Equal(t, "session-1", a.Session)
	assert.Empty(t, a.Todos)
}

func TestLifecycleEventsCarryDistinctIDs(t *testing.T) {
	started := NewEvent(EventSessionStarted, "session-1")
	ended := NewEvent(EventSessionEnded, started.Session)

	assert.NotEqual(t, started.ID, ended.ID)
	assert.Equal(t, started.Session, ended.Session)
}

func TestDispatcherEmit(t *testing.T) {
	var seen []string
	dispatcher := NewDispatcher()
	dispatcher.Register(&recordingListener{name: "first", events: &seen})
	dispatcher.Register(&recordingListener{name: "second", events: &seen})

	dispatcher.Emit(context.Background(), NewEvent(EventSessionStarted, "s"))
	dispatcher.Emit(context.Background(), NewEvent(EventSessionEnded, "s"))

	assert.Equal(t, []string{
		"first:session-started",
		"second:session-started",
		"first:session-ended",
		"second:session-ended",
	}, seen)
}

func TestDispatcherEmitNoListeners(t *testing.T) {
	assert.NotPanics(t, func() {
		NewDispatcher().Emit(context.Background(), NewEvent(EventSessionStarted, "s"))
	})
}

func TestDecodeTodos(t *testing.T) {
	t.Run("typed map payload", func(t *testing.T) {
		payload := []map[string]any{
			{"content": "wire the watcher bd-3", "status": "in_progress"},
			{"content": "close out bd-4", "status": "completed"},
		}

		todos, err := DecodeTodos(payload)
		require.NoError(t, err)
		require.Len(t, todos, 2)
		assert.Equal(t, TodoInProgress, todos[0].Status)
		assert.Equal(t, "close out bd-4", todos[1].Content)
	})

	t.Run("extra fields are ignored", func(t *testing.T) {
		payload := []map[string]any{
			{"content": "task", "status": "pending", "priority": "high"},
		}

		todos, err := DecodeTodos(payload)
		require.NoError(t, err)
		require.Len(t, todos, 1)
		assert.Equal(t, TodoPending, todos[0].Status)
	})

	t.Run("non-list payload fails", func(t *testing.T) {
		_, err := DecodeTodos("not a list")
		assert.Error(t, err)
	})
}
