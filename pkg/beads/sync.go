package beads

import (
	"context"
	"regexp"

	"github.com/agentctl/agentctl/pkg/hooks"
	"github.com/agentctl/agentctl/pkg/logger"
)

// issuePattern matches beads issue tokens such as "bd-142" or "proj-7"
// embedded in todo item text.
var issuePattern = regexp.MustCompile(`\b[a-z][a-z0-9]*-[0-9]+\b`)

// tracker is the subset of Client the listener needs; narrowed for testing.
type tracker interface {
	Available() bool
	MarkDone(ctx context.Context, id string) error
	Claim(ctx context.Context, id string) error
	Sync(ctx context.Context) error
}

// SyncListener observes lifecycle events and mirrors todo state into the
// beads tracker. It is a one-way side channel: every call is best-effort and
// failures are logged, never raised.
type SyncListener struct {
	client tracker
}

// NewSyncListener creates a listener over the given client.
func NewSyncListener(client *Client) *SyncListener {
	return &SyncListener{client: client}
}

// HandleEvent implements hooks.Listener.
func (l *SyncListener) HandleEvent(ctx context.Context, event hooks.Event) {
	log := logger.G(ctx).WithField("event", string(event.Type))

	switch event.Type {
	case hooks.EventSessionStarted, hooks.EventSessionEnded:
		log.Debug("session lifecycle event observed")
		return
	case hooks.EventToolExecutionCompleted:
	default:
		return
	}

	if !l.client.Available() {
		log.Debug("beads CLI not installed, skipping sync")
		return
	}

	processed := 0
	for _, todo := range event.Todos {
		id := issuePattern.FindString(todo.Content)
		if id == "" {
			continue
		}
		switch todo.Status {
		case hooks.TodoCompleted:
			if err := l.client.MarkDone(ctx, id); err != nil {
				log.WithError(err).WithField("issue", id).Warn("failed to mark issue done")
				continue
			}
			processed++
		case hooks.TodoInProgress:
			if err := l.client.Claim(ctx, id); err != nil {
				log.WithError(err).WithField("issue", id).Warn("failed to claim issue")
				continue
			}
			processed++
		}
	}

	if processed > 0 {
		if err := l.client.Sync(ctx); err != nil {
			log.WithError(err).Warn("failed to sync tracker")
		}
	}
}
