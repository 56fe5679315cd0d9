package logging

import (
	"bytes"
	"os"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test_Logger_InitLogger_LogLevelConfiguration tests logger initialization with various log levels
func Test_Logger_InitLogger_LogLevelConfiguration(t *testing.T) {
	tests := []struct {
		name          string
		logLevel      string
		expectedLevel log.Level
	}{
		{name: "debug_level", logLevel: "debug", expectedLevel: log.DebugLevel},
		{name: "info_level", logLevel: "info", expectedLevel: log.InfoLevel},
		{name: "warn_level", logLevel: "warn", expectedLevel: log.WarnLevel},
		{name: "warning_level_alias", logLevel: "warning", expectedLevel: log.WarnLevel},
		{name: "error_level", logLevel: "error", expectedLevel: log.ErrorLevel},
		{name: "default_empty_level", logLevel: "", expectedLevel: log.DebugLevel},
		{name: "default_invalid_level", logLevel: "invalid", expectedLevel: log.DebugLevel},
		{name: "case_mixed_info", logLevel: "InFo", expectedLevel: log.InfoLevel},
		{name: "whitespace_trimmed", logLevel: "  warn  ", expectedLevel: log.WarnLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("LOG_LEVEL", tt.logLevel)

			Logger = nil
			InitLogger()

			require.NotNil(t, Logger, "Logger should be initialized")
			assert.Equal(t, tt.expectedLevel, Logger.GetLevel())
		})
	}
}

// Test_Logger_Configure_OptionsOverrideEnvironment tests explicit options
func Test_Logger_Configure_OptionsOverrideEnvironment(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")

	Configure(Options{Level: "error", Format: "json", Prefix: "[density] "})
	require.NotNil(t, Logger)
	assert.Equal(t, log.ErrorLevel, Logger.GetLevel())
	assert.Equal(t, "[density] ", Logger.GetPrefix())

	Configure(Options{})
	assert.Equal(t, log.DebugLevel, Logger.GetLevel())

	var buf bytes.Buffer
	Configure(Options{Level: "info", Format: "logfmt", Output: &buf})
	Logger.Info("routed", "tile_x", 1)
	assert.Contains(t, buf.String(), "routed")
	assert.Contains(t, buf.String(), "tile_x=1")
}

// Test_Logger_GetLogger_SingletonBehavior tests lazy initialization
func Test_Logger_GetLogger_SingletonBehavior(t *testing.T) {
	t.Setenv("LOG_LEVEL", "info")

	Logger = nil
	logger := GetLogger()
	require.NotNil(t, logger)
	assert.Same(t, logger, GetLogger(), "Subsequent GetLogger calls should return same instance")

	existing := log.New(os.Stderr)
	Logger = existing
	assert.Same(t, existing, GetLogger())
}

// Test_Logger_ContextHelpers_Functionality tests logging helper functions
func Test_Logger_ContextHelpers_Functionality(t *testing.T) {
	var buf bytes.Buffer
	Logger = log.New(&buf)
	Logger.SetLevel(log.DebugLevel)
	Logger.SetFormatter(log.LogfmtFormatter)

	WithFields("tile_x", 3, "tile_z", -4).Info("tile built")
	WithDuration("sample", 500*time.Millisecond).Info("done")

	out := buf.String()
	assert.Contains(t, out, "tile_x=3")
	assert.Contains(t, out, "tile_z=-4")
	assert.Contains(t, out, "operation=sample")
	assert.Contains(t, out, "duration=500ms")
}

// Test_DefaultLoggerWrapper_With tests field accumulation on the wrapper
func Test_DefaultLoggerWrapper_With(t *testing.T) {
	var buf bytes.Buffer
	Logger = log.New(&buf)
	Logger.SetLevel(log.DebugLevel)
	Logger.SetFormatter(log.LogfmtFormatter)

	base := NewDefaultLoggerWrapper()
	child := base.With("component", "sampler").With("mode", "trilinear")

	child.Warn("slow tile", "tile_x", 1)
	base.Debug("no fields")

	out := buf.String()
	assert.Contains(t, out, "component=sampler")
	assert.Contains(t, out, "mode=trilinear")
	assert.Contains(t, out, "tile_x=1")
	assert.Contains(t, out, "no fields")
}
