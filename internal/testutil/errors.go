// Package testutil provides testing utilities for hyprws.
//
// It should only be imported by test files (*_test.go).
package testutil

import (
	"fmt"

	"github.com/mrz1836/hyprws/internal/errors"
)

// Mock hyprctl failures shaped like the errors hyprctl.CLIRunner returns.
var (
	// ErrMockQueryFailed is a failed `hyprctl workspaces -j`.
	ErrMockQueryFailed = fmt.Errorf("hyprctl workspaces -j: exit status 1: %w", errors.ErrCommandFailed)

	// ErrMockDispatchFailed is a failed `hyprctl dispatch workspace name:coding`.
	ErrMockDispatchFailed = fmt.Errorf("hyprctl dispatch workspace name:coding: exit status 1: %w", errors.ErrCommandFailed)
)

// MockOutputs are sample `hyprctl workspaces -j` payloads.
const (
	// MockTwoWorkspaces is one named and one unnamed workspace.
	MockTwoWorkspaces = `[{"id":0,"name":"main","windows":3},{"id":1,"windows":0}]`

	// MockNoSocket is what hyprctl prints outside a Hyprland session.
	MockNoSocket = "HYPRLAND_INSTANCE_SIGNATURE not set! (is hyprland running?)"
)
