// Package errors provides centralized error handling for hyprws.
//
// Sentinel errors categorize failures so callers can branch with errors.Is().
// The two hyprctl failure kinds (ErrCommandFailed and ErrMalformedOutput) are
// reported and swallowed by the CLI; ErrNameRequired is the only runtime
// condition that produces a non-zero exit.
//
// IMPORTANT: This package MUST NOT import any other internal packages.
package errors

import (
	"errors"
	"fmt"
)

var (
	// ErrCommandFailed indicates that the hyprctl process could not be started
	// or exited with a non-zero status.
	ErrCommandFailed = errors.New("command failed")

	// ErrMalformedOutput indicates that hyprctl output was not valid JSON or
	// did not have the expected shape.
	ErrMalformedOutput = errors.New("malformed output")

	// ErrNameRequired indicates that create was invoked without --name.
	ErrNameRequired = errors.New("--name required for create action")

	// ErrActionRequired indicates that no action (list or create) was given.
	ErrActionRequired = errors.New("action required: one of list, create")

	// ErrEmptyValue indicates that a required value was empty.
	ErrEmptyValue = errors.New("value cannot be empty")

	// ErrInvalidOutputFormat indicates an invalid output format was specified.
	ErrInvalidOutputFormat = errors.New("invalid output format")

	// ErrConfigNil indicates that a nil config was passed to validation.
	ErrConfigNil = errors.New("config is nil")

	// ErrConfigInvalid indicates an invalid configuration value.
	ErrConfigInvalid = errors.New("invalid configuration")
)

// Wrap adds context to errors at package boundaries.
// It returns nil if err is nil, allowing for safe inline usage.
// The original chain is preserved for errors.Is().
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", msg, err)
}

// Wrapf is Wrap with a formatted message.
func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

// ExitCode2Error wraps an error to indicate exit code 2 should be used.
type ExitCode2Error struct {
	Err error
}

// NewExitCode2Error wraps an error to indicate exit code 2.
func NewExitCode2Error(err error) *ExitCode2Error {
	return &ExitCode2Error{Err: err}
}

// Error implements the error interface.
func (e *ExitCode2Error) Error() string {
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *ExitCode2Error) Unwrap() error {
	return e.Err
}

// IsExitCode2Error checks if an error should result in exit code 2.
func IsExitCode2Error(err error) bool {
	var e *ExitCode2Error
	return errors.As(err, &e)
}
