package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/arthur-debert/carrierlock/pkg/testutil"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
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
			root := testutil.IsolateXDG(t)

			SetupLogger(tt.verbosity, true)
			assert.Equal(t, tt.wantLevel, zerolog.GlobalLevel())

			logPath := filepath.Join(root, "state", "carrierlock", "carrierlock.log")
			assert.True(t, testutil.FileExists(t, logPath), "log file was not created at %s", logPath)
		})
	}
}

func TestSetupLoggerWithoutFile(t *testing.T) {
	root := testutil.IsolateXDG(t)

	SetupLogger(0, false)

	_, err := os.Stat(filepath.Join(root, "state", "carrierlock"))
	assert.True(t, os.IsNotExist(err), "state directory should not be created")
}

func TestLogFilePath(t *testing.T) {
	t.Run("with XDG_STATE_HOME", func(t *testing.T) {
		dir := t.TempDir()
		t.Setenv("XDG_STATE_HOME", dir)
		assert.Equal(t, filepath.Join(dir, "carrierlock", "carrierlock.log"), LogFilePath())
	})

	t.Run("without XDG_STATE_HOME", func(t *testing.T) {
		home := t.TempDir()
		t.Setenv("HOME", home)
		t.Setenv("XDG_STATE_HOME", "")
		got := LogFilePath()
		assert.True(t, filepath.IsAbs(got))
		assert.Equal(t, filepath.Join("carrierlock", "carrierlock.log"),
			filepath.Join(filepath.Base(filepath.Dir(got)), filepath.Base(got)))
	})
}

func TestGetLogger(t *testing.T) {
	var buf bytes.Buffer
	log.Logger = zerolog.New(&buf)
	zerolog.SetGlobalLevel(zerolog.DebugLevel)

	logger := GetLogger("test-component")
	logger.Info().Msg("test message")

	assert.Contains(t, buf.String(), `"component":"test-component"`)
	assert.Contains(t, buf.String(), "test message")
}

func TestLevelFor(t *testing.T) {
	assert.Equal(t, zerolog.WarnLevel, levelFor(-1))
	assert.Equal(t, zerolog.InfoLevel, levelFor(1))
	assert.Equal(t, zerolog.TraceLevel, levelFor(9))
}

func TestLogCommand(t *testing.T) {
	var buf bytes.Buffer
	log.Logger = zerolog.New(&buf)
	zerolog.SetGlobalLevel(zerolog.DebugLevel)

	LogCommand("check", []string{"--sim", "mcc=310,mnc=001"})

	output := buf.String()
	assert.Contains(t, output, "check")
	assert.Contains(t, output, "mcc=310,mnc=001")
	assert.Contains(t, output, "Executing command")
}

func TestLogOperationStart(t *testing.T) {
	var buf bytes.Buffer
	log.Logger = zerolog.New(&buf)
	zerolog.SetGlobalLevel(zerolog.DebugLevel)

	done := LogOperationStart(log.Logger, "evaluate")
	time.Sleep(time.Millisecond)
	done()

	output := buf.String()
	require.Contains(t, output, "Operation started")
	assert.Contains(t, output, "Operation completed")
	assert.Contains(t, output, `"operation":"evaluate"`)
	assert.Contains(t, output, "duration")
}
