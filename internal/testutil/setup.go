// Package testutil provides common testing utilities shared by the density
// service tests: logger capture, temporary directories and short-mode skips.
package testutil

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/require"

	"github.com/VoidMesh/density/internal/logging"
)

// TestConfig holds configuration for test setup
type TestConfig struct {
	// EnableLogCapture routes log output to t.Log instead of discarding it
	EnableLogCapture bool
	// TempDir is created before the test runs when non-empty
	TempDir string
}

// DefaultTestConfig returns a default test configuration suitable for most tests
func DefaultTestConfig() *TestConfig {
	return &TestConfig{
		EnableLogCapture: false, // Disable by default for cleaner test output
	}
}

// SetupTest initializes the test environment with the provided configuration.
//
// Usage:
//
//	func TestMyFunction(t *testing.T) {
//	    cleanup := testutil.SetupTest(t, testutil.DefaultTestConfig())
//	    defer cleanup()
//	    // ... test code
//	}
func SetupTest(t *testing.T, config *TestConfig) func() {
	t.Helper()

	originalLogger := logging.Logger
	if config.EnableLogCapture {
		testLogger := log.New(testWriter{t: t})
		testLogger.SetLevel(log.DebugLevel)
		logging.Logger = testLogger
	} else {
		// Disable logging output during tests to reduce noise
		logging.Logger = log.New(io.Discard)
	}

	if config.TempDir != "" {
		require.NoError(t, os.MkdirAll(config.TempDir, 0o755))
	}

	return func() {
		logging.Logger = originalLogger
	}
}

// CaptureLogs sends logfmt output of the global logger to w until the test
// ends.
func CaptureLogs(t *testing.T, w io.Writer) {
	t.Helper()

	originalLogger := logging.Logger
	logger := log.New(w)
	logger.SetLevel(log.DebugLevel)
	logger.SetFormatter(log.LogfmtFormatter)
	logging.Logger = logger
	t.Cleanup(func() {
		logging.Logger = originalLogger
	})
}

// testWriter adapts testing.T to implement io.Writer for log output
type testWriter struct {
	t *testing.T
}

func (tw testWriter) Write(p []byte) (n int, err error) {
	tw.t.Helper()
	tw.t.Log(string(p))
	return len(p), nil
}

// TempPath returns a path named name inside a per-test temporary directory.
func TempPath(t *testing.T, name string) string {
	t.Helper()
	return filepath.Join(t.TempDir(), name)
}

// SkipIfShort skips the test if testing.Short() is true.
// This should be used for tests that are slow or require external resources.
func SkipIfShort(t *testing.T, reason string) {
	t.Helper()

	if testing.Short() {
		if reason == "" {
			reason = "skipping test in short mode"
		}
		t.Skip(reason)
	}
}
