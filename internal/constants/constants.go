// Package constants provides centralized constant values used throughout hyprws.
// This package is the single source of truth for all shared constants and MUST NOT
// import any other internal packages.
package constants

// hyprctl invocation.
const (
	// DefaultHyprctlBinary is the control utility invoked when no binary is configured.
	DefaultHyprctlBinary = "hyprctl"

	// HyprctlInstanceFlag selects a specific Hyprland instance by signature.
	HyprctlInstanceFlag = "--instance"

	// UnnamedWorkspace is displayed for workspaces reported without a name.
	UnnamedWorkspace = "Unnamed"
)

// Directory and file names used by hyprws.
const (
	// HyprwsHome is the hidden directory name where hyprws keeps its config and logs.
	// This directory is created in the user's home directory.
	HyprwsHome = ".hyprws"

	// HomeEnvVar overrides the location of HyprwsHome.
	HomeEnvVar = "HYPRWS_HOME"

	// EnvPrefix is the prefix for environment variable overrides (HYPRWS_OUTPUT, ...).
	EnvPrefix = "HYPRWS"

	// LogsDir is the directory name where log files are stored.
	LogsDir = "logs"

	// CLILogFileName is the name of the CLI log file in ~/.hyprws/logs.
	CLILogFileName = "hyprws.log"

	// GlobalConfigName is the name of the configuration file in HyprwsHome.
	GlobalConfigName = "config.yaml"
)

// Log rotation settings.
const (
	LogMaxSizeMB  = 5
	LogMaxBackups = 3
	LogMaxAgeDays = 14
	LogCompress   = true
)

// Diagnostic stream names accepted by output.diagnostics.
const (
	DiagnosticsStdout = "stdout"
	DiagnosticsStderr = "stderr"
)
