package logging

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureLogs routes the global logger to a buffer for the duration of t.
func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer

	prevLogger, prevLevel := log.Logger, zerolog.GlobalLevel()
	t.Cleanup(func() {
		log.Logger = prevLogger
		zerolog.SetGlobalLevel(prevLevel)
	})

	zerolog.SetGlobalLevel(zerolog.TraceLevel)
	log.Logger = zerolog.New(&buf).Level(zerolog.DebugLevel)
	return &buf
}

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
			tempDir := t.TempDir()
			t.Setenv("WIELDY_STATE_DIR", "")
			t.Setenv("XDG_STATE_HOME", tempDir)

			SetupLogger(tt.verbosity)

			assert.Equal(t, tt.wantLevel, zerolog.GlobalLevel())

			logPath := filepath.Join(tempDir, "wieldy", "wieldy.log")
			_, err := os.Stat(logPath)
			assert.NoError(t, err, "log file should exist at %s", logPath)
		})
	}
}

func TestSetupLogger_UnwritableStateDir(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))

	// The state directory would have to be created inside a regular file.
	t.Setenv("WIELDY_STATE_DIR", filepath.Join(blocker, "state"))

	assert.NotPanics(t, func() { SetupLogger(0) })
	assert.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())
}

func TestGetLogger(t *testing.T) {
	buf := captureLogs(t)

	logger := GetLogger("build")
	logger.Info().Msg("test message")

	assert.Contains(t, buf.String(), `"component":"build"`)
	assert.Contains(t, buf.String(), "test message")
}

func TestWithFields(t *testing.T) {
	buf := captureLogs(t)

	logger := WithFields(map[string]interface{}{
		"key1": "value1",
		"key2": 42,
		"key3": true,
	})
	logger.Info().Msg("test message with fields")

	output := buf.String()
	assert.Contains(t, output, `"key1":"value1"`)
	assert.Contains(t, output, `"key2":42`)
	assert.Contains(t, output, `"key3":true`)
}

func TestLogCommand(t *testing.T) {
	buf := captureLogs(t)

	LogCommand("wieldy", []string{"-c", "site/"})

	output := buf.String()
	assert.Contains(t, output, "wieldy")
	assert.Contains(t, output, "site/")
	assert.Contains(t, output, "Executing command")
}

func TestLogOperationStart(t *testing.T) {
	buf := captureLogs(t)

	done := LogOperationStart(log.Logger, "compile")
	assert.Contains(t, buf.String(), "Operation started")
	assert.NotContains(t, buf.String(), "Operation completed")

	done()
	assert.Contains(t, buf.String(), "Operation completed")
	assert.Contains(t, buf.String(), `"duration"`)
}

func TestMust_NoError(t *testing.T) {
	assert.NotPanics(t, func() {
		Must(nil, "this should not exit")
	})
}

func TestMust_WithError(t *testing.T) {
	if os.Getenv("BE_CRASHER") == "1" {
		Must(errors.New("test error"), "expected exit")
		return
	}

	cmd := os.Args[0]
	proc := &os.ProcAttr{
		Env:   append(os.Environ(), "BE_CRASHER=1"),
		Files: []*os.File{os.Stdin, os.Stdout, os.Stderr},
	}

	process, err := os.StartProcess(cmd, []string{cmd, "-test.run=TestMust_WithError"}, proc)
	require.NoError(t, err)

	state, err := process.Wait()
	require.NoError(t, err)
	assert.False(t, state.Success(), "process should have exited with error")
}
