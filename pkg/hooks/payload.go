package hooks

import (
	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
)

// TodoStatus is the lifecycle state of a todo item.
type TodoStatus string

// Todo item states carried by tool-execution-completed events.
const (
	TodoPending    TodoStatus = "pending"
	TodoInProgress TodoStatus = "in_progress"
	TodoCompleted  TodoStatus = "completed"
)

// TodoItem is one entry of the todo-list payload.
type TodoItem struct {
	Content string     `json:"content" mapstructure:"content"`
	Status  TodoStatus `json:"status" mapstructure:"status"`
}

// DecodeTodos converts a loosely-typed payload (typically unmarshalled JSON)
// into todo items. External hook producers are not trusted to send exact
// types, so decoding is lenient about extra fields.
func DecodeTodos(payload any) ([]TodoItem, error) {
	var todos []TodoItem
	if err := mapstructure.Decode(payload, &todos); err != nil {
		return nil, errors.Wrap(err, "failed to decode todo payload")
	}
	return todos, nil
}
