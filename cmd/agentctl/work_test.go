package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentctl/agentctl/pkg/hooks"
)

func TestLoadTodoPayload(t *testing.T) {
	t.Run("empty path means no todos", func(t *testing.T) {
		todos, err := loadTodoPayload("")
		require.NoError(t, err)
		assert.Nil(t, todos)
	})

	t.Run("valid payload decodes", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "todos.json")
		payload := `[
			{"content": "wire the watcher bd-3", "status": "in_progress"},
			{"content": "close out bd-4", "status": "completed", "priority": "high"}
		]`
		require.NoError(t, os.WriteFile(path, []byte(payload), 0o644))

		todos, err := loadTodoPayload(path)
		require.NoError(t, err)
		require.Len(t, todos, 2)
		assert.Equal(t, hooks.TodoInProgress, todos[0].Status)
		assert.Equal(t, "close out bd-4", todos[1].Content)
	})

	t.Run("missing file fails", func(t *testing.T) {
		_, err := loadTodoPayload(filepath.Join(t.TempDir(), "absent.json"))
		assert.ErrorContains(t, err, "failed to read todo payload")
	})

	t.Run("malformed json fails", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "todos.json")
		require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

		_, err := loadTodoPayload(path)
		assert.ErrorContains(t, err, "failed to parse todo payload")
	})
}

func TestCompletionEvent(t *testing.T) {
	t.Run("task is reported as a completed todo", func(t *testing.T) {
		event := completionEvent("session-1", "fix bd-12", nil)

		assert.Equal(t, hooks.EventToolExecutionCompleted, event.Type)
		assert.Equal(t, "session-1", event.Session)
		assert.NotEmpty(t, event.ID)
		require.Len(t, event.Todos, 1)
		assert.Equal(t, "fix bd-12", event.Todos[0].Content)
		assert.Equal(t, hooks.TodoCompleted, event.Todos[0].Status)
	})

	t.Run("extra todos come before the task", func(t *testing.T) {
		extra := []hooks.TodoItem{{Content: "bd-7 underway", Status: hooks.TodoInProgress}}
		event := completionEvent("session-1", "fix bd-12", extra)

		require.Len(t, event.Todos, 2)
		assert.Equal(t, "bd-7 underway", event.Todos[0].Content)
		assert.Equal(t, "fix bd-12", event.Todos[1].Content)
	})
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 60))
	assert.Equal(t, "exactly-ten", truncate("exactly-ten", 11))

	long := "0123456789012345678901234567890123456789012345678901234567890"
	assert.Equal(t, long[:57]+"...", truncate(long, 60))

	// Rune-counted, so multi-byte text is never split mid-sequence.
	assert.Equal(t, "日本語の説...", truncate("日本語の説明テキスト", 8))
	assert.Equal(t, "日本語", truncate("日本語", 8))
}
