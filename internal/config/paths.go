package config

import (
	"os"
	"path/filepath"

	"github.com/mrz1836/hyprws/internal/constants"
	"github.com/mrz1836/hyprws/internal/errors"
)

// HomeDir returns the hyprws home directory.
// HYPRWS_HOME takes precedence; otherwise it is ~/.hyprws.
func HomeDir() (string, error) {
	if home := os.Getenv(constants.HomeEnvVar); home != "" {
		return home, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, "failed to get home directory")
	}
	return filepath.Join(home, constants.HyprwsHome), nil
}

// GlobalConfigPath returns the full path to the configuration file.
func GlobalConfigPath() (string, error) {
	dir, err := HomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, constants.GlobalConfigName), nil
}

// LogFilePath returns the path to the rotating CLI log file.
func LogFilePath() (string, error) {
	dir, err := HomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, constants.LogsDir, constants.CLILogFileName), nil
}
