// Package beads mirrors task completion state into the beads issue tracker.
// The tracker is reached through its CLI with a deliberately narrow contract:
// mark an issue done, claim an issue, and sync. Everything here is
// best-effort; a missing or failing tracker never affects task routing.
package beads

import (
	"context"
	"os/exec"

	"github.com/pkg/errors"
)

const defaultBinary = "bd"

// Client shells out to the beads CLI.
type Client struct {
	binary string
}

// NewClient creates a client using the bd binary on PATH.
func NewClient() *Client {
	return &Client{binary: defaultBinary}
}

// Available reports whether the beads CLI is installed.
func (c *Client) Available() bool {
	_, err := exec.LookPath(c.binary)
	return err == nil
}

// MarkDone closes the given issue.
func (c *Client) MarkDone(ctx context.Context, id string) error {
	return c.run(ctx, "close", id)
}

// Claim marks the given issue as in progress.
func (c *Client) Claim(ctx context.Context, id string) error {
	return c.run(ctx, "update", id, "--status", "in_progress")
}

// Sync pushes local tracker state to the remote.
func (c *Client) Sync(ctx context.Context) error {
	return c.run(ctx, "sync")
}

func (c *Client) run(ctx context.Context, args ...string) error {
	cmd := exec.CommandContext(ctx, c.binary, args...)
	if output, err := cmd.CombinedOutput(); err != nil {
		return errors.Wrapf(err, "bd %v failed: %s", args, string(output))
	}
	return nil
}
