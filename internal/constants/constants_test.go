package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHyprctlConstants(t *testing.T) {
	assert.Equal(t, "hyprctl", DefaultHyprctlBinary)
	assert.Equal(t, "Unnamed", UnnamedWorkspace)
}

func TestLogRotationConstants(t *testing.T) {
	t.Run("rotation keeps logs bounded", func(t *testing.T) {
		assert.Positive(t, LogMaxSizeMB)
		assert.Positive(t, LogMaxBackups)
		assert.Positive(t, LogMaxAgeDays)
	})

	t.Run("log file lives under the logs dir", func(t *testing.T) {
		assert.Equal(t, "logs", LogsDir)
		assert.Equal(t, "hyprws.log", CLILogFileName)
	})
}

func TestDiagnosticsStreams(t *testing.T) {
	assert.NotEqual(t, DiagnosticsStdout, DiagnosticsStderr)
}
