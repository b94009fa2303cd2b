package config

import (
	"github.com/spf13/viper"

	"github.com/mrz1836/hyprws/internal/constants"
)

// DefaultConfig returns a new Config with default values.
// These match the defaults registered on viper by setDefaults.
func DefaultConfig() *Config {
	return &Config{
		Hyprctl: HyprctlConfig{
			Binary: constants.DefaultHyprctlBinary,
		},
		Output: OutputConfig{
			Diagnostics: constants.DiagnosticsStdout,
		},
	}
}

// setDefaults configures all default values on the Viper instance.
// IMPORTANT: Keys must match the mapstructure tag names exactly.
func setDefaults(v *viper.Viper) {
	v.SetDefault("hyprctl.binary", constants.DefaultHyprctlBinary)
	v.SetDefault("hyprctl.instance", "")
	v.SetDefault("hyprctl.timeout", "0s")

	v.SetDefault("output.diagnostics", constants.DiagnosticsStdout)
}
