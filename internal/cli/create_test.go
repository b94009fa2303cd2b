package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrz1836/hyprws/internal/errors"
	"github.com/mrz1836/hyprws/internal/testutil"
)

func TestCreate_Success(t *testing.T) {
	h := newHarness(&fakeController{})

	err := h.run(t, "create", "--name", "coding")
	require.NoError(t, err)

	assert.Contains(t, h.stdout.String(), "Created workspace: coding")
	assert.Equal(t, []string{"coding"}, h.ctl.dispatched)
}

func TestCreate_NameBeforeAction(t *testing.T) {
	h := newHarness(&fakeController{})

	require.NoError(t, h.run(t, "--name", "side project", "create"))

	assert.Equal(t, "Created workspace: side project\n", h.stdout.String())
	assert.Equal(t, []string{"side project"}, h.ctl.dispatched)
}

func TestCreate_MissingName(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"flag absent", []string{"create"}},
		{"flag empty", []string{"create", "--name", ""}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			h := newHarness(&fakeController{})

			err := h.run(t, tc.args...)
			require.ErrorIs(t, err, errors.ErrNameRequired)
			assert.Equal(t, ExitError, ExitCodeForError(err))

			assert.Equal(t, "Error: --name required for create action\n", h.stdout.String())
			assert.Empty(t, h.stderr.String(), "cobra must not print the error a second time")
			assert.Empty(t, h.ctl.dispatched, "hyprctl must not be invoked")
		})
	}
}

func TestCreate_DispatchFailureIsReported(t *testing.T) {
	h := newHarness(&fakeController{dispatchErr: testutil.ErrMockDispatchFailed})

	err := h.run(t, "create", "--name", "coding")
	require.NoError(t, err)
	assert.Equal(t, ExitSuccess, ExitCodeForError(err))

	assert.Equal(t,
		"Error creating workspace: hyprctl dispatch workspace name:coding: exit status 1: command failed\n",
		h.stdout.String())
	assert.NotContains(t, h.stdout.String(), "Created workspace")
}

func TestCreate_JSONOutput(t *testing.T) {
	h := newHarness(&fakeController{})

	require.NoError(t, h.run(t, "create", "--name", "coding", "-o", "json"))
	assert.JSONEq(t, `{"type":"success","message":"Created workspace: coding"}`, h.stdout.String())
}
