// Package hyprctl runs the Hyprland control utility and returns its output.
package hyprctl

import (
	"bytes"
	"context"
	stderrors "errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/mrz1836/hyprws/internal/constants"
	"github.com/mrz1836/hyprws/internal/errors"
)

// Runner executes a single hyprctl command and returns its standard output.
// Implementations must wrap failures with errors.ErrCommandFailed.
type Runner interface {
	Run(ctx context.Context, args ...string) (string, error)
}

// CLIRunner implements Runner by spawning the hyprctl binary.
type CLIRunner struct {
	binary   string
	instance string
	timeout  time.Duration
}

// Option configures a CLIRunner.
type Option func(*CLIRunner)

// WithInstance targets a specific Hyprland instance signature.
func WithInstance(signature string) Option {
	return func(r *CLIRunner) {
		r.instance = signature
	}
}

// WithTimeout bounds every call. Zero or negative means no timeout.
func WithTimeout(d time.Duration) Option {
	return func(r *CLIRunner) {
		r.timeout = d
	}
}

// NewRunner creates a CLIRunner for the given binary.
// An empty binary falls back to "hyprctl".
func NewRunner(binary string, opts ...Option) *CLIRunner {
	if binary == "" {
		binary = constants.DefaultHyprctlBinary
	}
	r := &CLIRunner{binary: binary}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Binary returns the executable the runner invokes.
func (r *CLIRunner) Binary() string {
	return r.binary
}

// commandArgs prepends the instance selector when one is configured.
func (r *CLIRunner) commandArgs(args []string) []string {
	if r.instance == "" {
		return args
	}
	full := make([]string, 0, len(args)+2)
	full = append(full, constants.HyprctlInstanceFlag, r.instance)
	return append(full, args...)
}

// Run executes hyprctl with args and returns its stdout.
// A start failure or non-zero exit is wrapped with ErrCommandFailed and carries
// the exit status plus any stderr output.
func (r *CLIRunner) Run(ctx context.Context, args ...string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	full := r.commandArgs(args)
	cmd := exec.CommandContext(ctx, r.binary, full...) //#nosec G204 -- binary comes from user config, args are built internally

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	logger := zerolog.Ctx(ctx).With().
		Str("component", "hyprctl").
		Str("binary", r.binary).
		Strs("args", full).
		Logger()

	start := time.Now()
	err := cmd.Run()
	elapsed := time.Since(start)

	if err != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if stderrors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		logger.Debug().
			Err(err).
			Int("exit_code", exitCode).
			Dur("duration_ms", elapsed).
			Msg("hyprctl command failed")
		if ctxErr := ctx.Err(); ctxErr != nil {
			err = ctxErr
		}
		return "", commandError(r.binary, full, err, stderr.String())
	}

	logger.Debug().
		Int("stdout_bytes", stdout.Len()).
		Dur("duration_ms", elapsed).
		Msg("hyprctl command completed")

	return stdout.String(), nil
}

// commandError builds the ErrCommandFailed error for a failed invocation.
func commandError(binary string, args []string, runErr error, stderr string) error {
	detail := runErr.Error()
	if msg := strings.TrimSpace(stderr); msg != "" {
		detail = fmt.Sprintf("%s: %s", detail, msg)
	}
	return fmt.Errorf("%s %s: %s: %w", binary, strings.Join(args, " "), detail, errors.ErrCommandFailed)
}

var _ Runner = (*CLIRunner)(nil)
