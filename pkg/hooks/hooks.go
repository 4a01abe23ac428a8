// Package hooks defines the agent lifecycle event contract. Components that
// want to observe task execution (such as the external tracker sync) register
// a Listener on the Dispatcher; emission is fire-and-forget and never feeds
// back into the task-routing path.
package hooks

import (
	"context"

	"github.com/google/uuid"
)

// EventType identifies a lifecycle event.
type EventType string

// Lifecycle events emitted by the orchestration loop.
const (
	EventToolExecutionCompleted EventType = "tool-execution-completed"
	EventSessionStarted         EventType = "session-started"
	EventSessionEnded           EventType = "session-ended"
)

// Event is a single lifecycle notification. Todos is populated only for
// tool-execution-completed events.
type Event struct {
	ID      string     `json:"id"`
	Type    EventType  `json:"type"`
	Session string     `json:"session,omitempty"`
	Todos   []TodoItem `json:"todos,omitempty"`
}

// NewEvent creates an event with a fresh ID.
func NewEvent(eventType EventType, session string) Event {
	return Event{
		ID:      uuid.NewString(),
		Type:    eventType,
		Session: session,
	}
}

// Listener consumes lifecycle events. Implementations must be best-effort:
// errors are theirs to log and swallow, never to surface.
type Listener interface {
	HandleEvent(ctx context.Context, event Event)
}

// Dispatcher fans lifecycle events out to registered listeners.
type Dispatcher struct {
	listeners []Listener
}

// NewDispatcher creates an empty dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{}
}

// Register adds a listener.
func (d *Dispatcher) Register(l Listener) {
	d.listeners = append(d.listeners, l)
}

// Emit delivers the event to every listener in registration order.
func (d *Dispatcher) Emit(ctx context.Context, event Event) {
	for _, l := range d.listeners {
		l.HandleEvent(ctx, event)
	}
}
