package logging

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shohamc1/mxbmm/pkg/paths"
)

func TestSetupLogger(t *testing.T) {
	tests := []struct {
		name      string
		verbosity int
		wantLevel zerolog.Level
	}{
		{"default warn level", 0, zerolog.WarnLevel},
		{"info level", 1, zerolog.InfoLevel},
		{"debug level", 2, zerolog.DebugLevel},
		{"trace level", 3, zerolog.TraceLevel},
		{"high verbosity defaults to trace", 5, zerolog.TraceLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stateDir := filepath.Join(t.TempDir(), "state")
			t.Setenv(paths.EnvStateDir, stateDir)
			t.Cleanup(func() { Setup(Options{Console: io.Discard}) })

			SetupLogger(tt.verbosity, true)

			assert.Equal(t, tt.wantLevel, zerolog.GlobalLevel())
			assert.FileExists(t, filepath.Join(stateDir, paths.LogFileName))
		})
	}
}

func TestSetupWritesConsoleAndFile(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "nested", "mxbmm.log")
	var console bytes.Buffer
	saved := log.Logger
	t.Cleanup(func() {
		Setup(Options{Console: io.Discard})
		log.Logger = saved
	})

	Setup(Options{Verbosity: 1, LogFile: logFile, Console: &console, NoColor: true})
	log.Info().Str("mod", "Track").Msg("installed")

	assert.Contains(t, console.String(), "installed")
	data, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"mod":"Track"`)
}

func TestSetupUnwritableLogFileFallsBackToConsole(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0644))
	var console bytes.Buffer
	saved := log.Logger
	t.Cleanup(func() {
		Setup(Options{Console: io.Discard})
		log.Logger = saved
	})

	Setup(Options{LogFile: filepath.Join(blocker, "mxbmm.log"), Console: &console, NoColor: true})

	assert.Contains(t, console.String(), "Failed to create log file")
}

func TestLevelFor(t *testing.T) {
	tests := []struct {
		verbosity int
		want      zerolog.Level
	}{
		{-1, zerolog.WarnLevel},
		{0, zerolog.WarnLevel},
		{1, zerolog.InfoLevel},
		{2, zerolog.DebugLevel},
		{3, zerolog.TraceLevel},
		{9, zerolog.TraceLevel},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, levelFor(tt.verbosity), "verbosity %d", tt.verbosity)
	}
}

func TestGetLoggerAddsComponent(t *testing.T) {
	var buf bytes.Buffer
	saved := log.Logger
	defer func() { log.Logger = saved }()
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	log.Logger = zerolog.New(&buf)

	logger := GetLogger("staging")
	logger.Info().Msg("staged")

	assert.Contains(t, buf.String(), `"component":"staging"`)
	assert.Contains(t, buf.String(), "staged")
}

func TestLogOperationStart(t *testing.T) {
	var buf bytes.Buffer
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	logger := zerolog.New(&buf)

	done := LogOperationStart(logger, "commit")
	done()

	output := buf.String()
	assert.Contains(t, output, "Operation started")
	assert.Contains(t, output, "Operation completed")
	assert.Contains(t, output, "duration")
}
