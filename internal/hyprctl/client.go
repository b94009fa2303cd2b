package hyprctl

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/mrz1836/hyprws/internal/errors"
)

// Client issues the two hyprctl command forms hyprws needs.
type Client struct {
	runner Runner
}

// NewClient creates a Client backed by runner.
func NewClient(runner Runner) *Client {
	return &Client{runner: runner}
}

// Workspaces runs the query form (`workspaces -j`) and returns the raw JSON.
func (c *Client) Workspaces(ctx context.Context) ([]byte, error) {
	out, err := c.runner.Run(ctx, "workspaces", "-j")
	if err != nil {
		return nil, err
	}
	return []byte(out), nil
}

// DispatchWorkspace runs `dispatch workspace name:<name>`, which creates the
// named workspace (or switches to it if it exists).
// The name:<name> token is passed as a single argument.
func (c *Client) DispatchWorkspace(ctx context.Context, name string) error {
	if name == "" {
		return errors.Wrap(errors.ErrEmptyValue, "workspace name")
	}

	out, err := c.runner.Run(ctx, "dispatch", "workspace", "name:"+name)
	if err != nil {
		return err
	}

	zerolog.Ctx(ctx).Debug().
		Str("component", "hyprctl").
		Str("workspace", name).
		Str("reply", strings.TrimSpace(out)).
		Msg("dispatch completed")
	return nil
}
