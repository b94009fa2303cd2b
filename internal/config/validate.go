package config

import (
	"github.com/mrz1836/hyprws/internal/constants"
	"github.com/mrz1836/hyprws/internal/errors"
)

// Validate checks the configuration for invalid values.
//
// Validation rules:
//   - hyprctl.binary must not be empty
//   - hyprctl.timeout must not be negative
//   - output.diagnostics must be "stdout" or "stderr"
func Validate(cfg *Config) error {
	if cfg == nil {
		return errors.ErrConfigNil
	}

	if cfg.Hyprctl.Binary == "" {
		return errors.Wrap(errors.ErrConfigInvalid, "hyprctl.binary must not be empty")
	}

	if cfg.Hyprctl.Timeout < 0 {
		return errors.Wrapf(errors.ErrConfigInvalid,
			"hyprctl.timeout must not be negative, got %s", cfg.Hyprctl.Timeout)
	}

	switch cfg.Output.Diagnostics {
	case constants.DiagnosticsStdout, constants.DiagnosticsStderr:
	default:
		return errors.Wrapf(errors.ErrConfigInvalid,
			"output.diagnostics must be %q or %q, got %q",
			constants.DiagnosticsStdout, constants.DiagnosticsStderr, cfg.Output.Diagnostics)
	}

	return nil
}
