// Package workspace decodes, formats and manages Hyprland workspaces.
package workspace

import (
	"encoding/json"
	"fmt"

	"github.com/mrz1836/hyprws/internal/constants"
	"github.com/mrz1836/hyprws/internal/errors"
)

// Workspace is a point-in-time snapshot of one Hyprland workspace.
// Name is already defaulted to "Unnamed" when hyprctl omitted it.
type Workspace struct {
	ID              int    `json:"id" yaml:"id"`
	Name            string `json:"name" yaml:"name"`
	Windows         int    `json:"windows" yaml:"windows"`
	Monitor         string `json:"monitor,omitempty" yaml:"monitor,omitempty"`
	LastWindowTitle string `json:"lastwindowtitle,omitempty" yaml:"lastwindowtitle,omitempty"`
}

// record mirrors one element of `hyprctl workspaces -j`.
// Pointers distinguish absent fields from zero values.
type record struct {
	ID              *int    `json:"id"`
	Name            *string `json:"name"`
	Windows         *int    `json:"windows"`
	Monitor         string  `json:"monitor"`
	LastWindowTitle string  `json:"lastwindowtitle"`
}

// Decode parses the query output into workspaces, preserving order.
// Anything other than a JSON array of objects carrying id and windows is
// reported as ErrMalformedOutput. A JSON null decodes to no workspaces.
func Decode(data []byte) ([]Workspace, error) {
	var records []record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrMalformedOutput, err)
	}

	workspaces := make([]Workspace, 0, len(records))
	for i, r := range records {
		if r.ID == nil {
			return nil, errors.Wrapf(errors.ErrMalformedOutput, "workspace %d: missing id", i)
		}
		if r.Windows == nil {
			return nil, errors.Wrapf(errors.ErrMalformedOutput, "workspace %d: missing windows", i)
		}

		name := constants.UnnamedWorkspace
		if r.Name != nil {
			name = *r.Name
		}

		workspaces = append(workspaces, Workspace{
			ID:              *r.ID,
			Name:            name,
			Windows:         *r.Windows,
			Monitor:         r.Monitor,
			LastWindowTitle: r.LastWindowTitle,
		})
	}
	return workspaces, nil
}

// Line renders the workspace as "<id>: <name> (<windows> windows)".
func (w Workspace) Line() string {
	return fmt.Sprintf("%d: %s (%d windows)", w.ID, w.Name, w.Windows)
}
