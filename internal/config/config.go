// Package config provides configuration management for hyprws with layered precedence.
//
// Configuration sources are loaded in the following order (highest precedence first):
//  1. CLI flags (passed via LoadWithOverrides)
//  2. Environment variables (HYPRWS_* prefix, "." replaced by "_")
//  3. Global config (~/.hyprws/config.yaml, or $HYPRWS_HOME/config.yaml)
//  4. Built-in defaults
//
// IMPORTANT: This package may import internal/constants and internal/errors,
// but MUST NOT import other internal packages.
package config

import "time"

// Config is the root configuration structure for hyprws.
type Config struct {
	// Hyprctl contains settings for invoking the Hyprland control utility.
	Hyprctl HyprctlConfig `yaml:"hyprctl" mapstructure:"hyprctl"`

	// Output contains settings for user-facing output.
	Output OutputConfig `yaml:"output" mapstructure:"output"`
}

// HyprctlConfig controls how hyprctl is invoked.
type HyprctlConfig struct {
	// Binary is the executable name or path.
	// Default: "hyprctl"
	Binary string `yaml:"binary" mapstructure:"binary"`

	// Instance is a Hyprland instance signature passed as --instance.
	// Empty means hyprctl picks the instance from its own environment.
	Instance string `yaml:"instance" mapstructure:"instance"`

	// Timeout bounds a single hyprctl call. Zero disables the timeout.
	// Default: 0
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`
}

// OutputConfig controls where diagnostics are written.
type OutputConfig struct {
	// Diagnostics is "stdout" (default, single stream) or "stderr".
	Diagnostics string `yaml:"diagnostics" mapstructure:"diagnostics"`
}
