package cli

// This file contains test doubles for driving the command tree without
// spawning hyprctl or touching ~/.hyprws.

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/rs/zerolog"

	"github.com/mrz1836/hyprws/internal/config"
	"github.com/mrz1836/hyprws/internal/workspace"
)

// fakeController implements workspace.Controller with canned responses.
type fakeController struct {
	output      string
	queryErr    error
	dispatchErr error
	queries     int
	dispatched  []string
}

func (f *fakeController) Workspaces(_ context.Context) ([]byte, error) {
	f.queries++
	if f.queryErr != nil {
		return nil, f.queryErr
	}
	return []byte(f.output), nil
}

func (f *fakeController) DispatchWorkspace(_ context.Context, name string) error {
	f.dispatched = append(f.dispatched, name)
	return f.dispatchErr
}

// testHarness collects what a command run produced.
type testHarness struct {
	ctl       *fakeController
	cfg       *config.Config
	loadErr   error
	overrides *config.Config
	stdout    bytes.Buffer
	stderr    bytes.Buffer
}

func newHarness(ctl *fakeController) *testHarness {
	return &testHarness{ctl: ctl, cfg: config.DefaultConfig()}
}

func (h *testHarness) deps() dependencies {
	return dependencies{
		loadConfig: func(_ context.Context, overrides *config.Config) (*config.Config, error) {
			h.overrides = overrides
			if h.loadErr != nil {
				return nil, h.loadErr
			}
			return h.cfg, nil
		},
		newController: func(_ *config.Config) workspace.Controller {
			return h.ctl
		},
		initLogger: func(verbose, quiet bool) zerolog.Logger {
			return InitLoggerWithWriter(verbose, quiet, io.Discard)
		},
	}
}

// run executes the root command with args and returns the command error.
func (h *testHarness) run(t *testing.T, args ...string) error {
	t.Helper()

	cmd := newRootCmd(&GlobalFlags{}, BuildInfo{Version: "test"}, h.deps())
	cmd.SetOut(&h.stdout)
	cmd.SetErr(&h.stderr)
	cmd.SetArgs(args)
	return cmd.ExecuteContext(context.Background())
}
