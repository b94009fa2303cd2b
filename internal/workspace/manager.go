package workspace

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/mrz1836/hyprws/internal/errors"
)

// Controller is the subset of the hyprctl client the manager needs.
type Controller interface {
	Workspaces(ctx context.Context) ([]byte, error)
	DispatchWorkspace(ctx context.Context, name string) error
}

// Manager lists and creates workspaces through hyprctl.
type Manager interface {
	// List returns the current workspaces in the order hyprctl reports them.
	// Errors wrap ErrCommandFailed or ErrMalformedOutput.
	List(ctx context.Context) ([]Workspace, error)

	// Create creates (or switches to) the named workspace.
	// Errors wrap ErrEmptyValue or ErrCommandFailed.
	Create(ctx context.Context, name string) error
}

// DefaultManager implements Manager on top of a Controller.
type DefaultManager struct {
	ctl Controller
}

// NewManager creates a new DefaultManager.
func NewManager(ctl Controller) *DefaultManager {
	return &DefaultManager{ctl: ctl}
}

// List queries hyprctl and decodes its output.
func (m *DefaultManager) List(ctx context.Context) ([]Workspace, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := m.ctl.Workspaces(ctx)
	if err != nil {
		return nil, err
	}

	workspaces, err := Decode(data)
	if err != nil {
		return nil, err
	}

	zerolog.Ctx(ctx).Debug().
		Str("component", "workspace").
		Int("count", len(workspaces)).
		Msg("workspaces listed")
	return workspaces, nil
}

// Create dispatches the workspace creation.
func (m *DefaultManager) Create(ctx context.Context, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if name == "" {
		return errors.Wrap(errors.ErrEmptyValue, "workspace name")
	}

	if err := m.ctl.DispatchWorkspace(ctx, name); err != nil {
		return err
	}

	zerolog.Ctx(ctx).Debug().
		Str("component", "workspace").
		Str("workspace", name).
		Msg("workspace created")
	return nil
}

var _ Manager = (*DefaultManager)(nil)
