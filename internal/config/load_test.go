package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrz1836/hyprws/internal/constants"
	"github.com/mrz1836/hyprws/internal/errors"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_ReturnsDefaultsWhenNoConfigFile(t *testing.T) {
	t.Setenv(constants.HomeEnvVar, t.TempDir())

	cfg, err := Load(context.Background())
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadFromPath_ReadsFile(t *testing.T) {
	path := writeConfig(t, `
hyprctl:
  binary: /usr/local/bin/hyprctl
  instance: abc123
  timeout: 5s
output:
  diagnostics: stderr
`)

	cfg, err := LoadFromPath(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, "/usr/local/bin/hyprctl", cfg.Hyprctl.Binary)
	assert.Equal(t, "abc123", cfg.Hyprctl.Instance)
	assert.Equal(t, 5*time.Second, cfg.Hyprctl.Timeout)
	assert.Equal(t, constants.DiagnosticsStderr, cfg.Output.Diagnostics)
}

func TestLoadFromPath_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadFromPath(context.Background(), filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, constants.DefaultHyprctlBinary, cfg.Hyprctl.Binary)
}

func TestLoadFromPath_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "hyprctl:\n  binary: from-file\n")
	t.Setenv("HYPRWS_HYPRCTL_BINARY", "from-env")

	cfg, err := LoadFromPath(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.Hyprctl.Binary)
}

func TestLoadFromPath_InvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"negative timeout", "hyprctl:\n  timeout: -1s\n"},
		{"unknown diagnostics stream", "output:\n  diagnostics: syslog\n"},
		{"empty binary", "hyprctl:\n  binary: \"\"\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := LoadFromPath(context.Background(), writeConfig(t, tc.content))
			require.Error(t, err)
			assert.ErrorIs(t, err, errors.ErrConfigInvalid)
		})
	}
}

func TestLoadFromPath_UnparseableFile(t *testing.T) {
	_, err := LoadFromPath(context.Background(), writeConfig(t, "hyprctl: [unclosed\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadWithOverrides(t *testing.T) {
	t.Setenv(constants.HomeEnvVar, t.TempDir())

	cfg, err := LoadWithOverrides(context.Background(), &Config{
		Hyprctl: HyprctlConfig{Instance: "sig-1", Timeout: 2 * time.Second},
	})
	require.NoError(t, err)

	assert.Equal(t, "sig-1", cfg.Hyprctl.Instance)
	assert.Equal(t, 2*time.Second, cfg.Hyprctl.Timeout)
	assert.Equal(t, constants.DefaultHyprctlBinary, cfg.Hyprctl.Binary, "zero overrides are ignored")
}

func TestLoadWithOverrides_RevalidatesAfterOverrides(t *testing.T) {
	t.Setenv(constants.HomeEnvVar, t.TempDir())

	_, err := LoadWithOverrides(context.Background(), &Config{
		Output: OutputConfig{Diagnostics: "tty"},
	})
	require.ErrorIs(t, err, errors.ErrConfigInvalid)
}
