package cli

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectLevel(t *testing.T) {
	tests := []struct {
		name     string
		verbose  bool
		quiet    bool
		expected zerolog.Level
	}{
		{"default", false, false, zerolog.InfoLevel},
		{"verbose", true, false, zerolog.DebugLevel},
		{"quiet", false, true, zerolog.WarnLevel},
		{"verbose wins", true, true, zerolog.DebugLevel},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, selectLevel(tc.verbose, tc.quiet))
		})
	}
}

func TestInitLoggerWithWriter(t *testing.T) {
	var buf bytes.Buffer
	logger := InitLoggerWithWriter(true, false, &buf)

	logger.Debug().Str("component", "hyprctl").Msg("hyprctl command completed")

	assert.Equal(t, zerolog.DebugLevel, logger.GetLevel())
	assert.Contains(t, buf.String(), `"component":"hyprctl"`)
	assert.Contains(t, buf.String(), "hyprctl command completed")
}

func TestInitLogger_WritesLogFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HYPRWS_HOME", home)
	t.Cleanup(CloseLogFile)

	logger := InitLogger(false, true)
	assert.Equal(t, zerolog.WarnLevel, logger.GetLevel())

	w, err := createLogFileWriter()
	require.NoError(t, err)
	require.NoError(t, w.Close())
	assert.DirExists(t, home+"/logs")
}

func TestCloseLogFile_Idempotent(t *testing.T) {
	CloseLogFile()
	CloseLogFile()
}
