package logging

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

var Logger *log.Logger

// LogLevel represents available log levels
type LogLevel string

const (
	DebugLevel LogLevel = "debug"
	InfoLevel  LogLevel = "info"
	WarnLevel  LogLevel = "warn"
	ErrorLevel LogLevel = "error"
)

// Options controls logger construction. Zero values fall back to the
// LOG_LEVEL environment variable and text output on stderr.
type Options struct {
	Level  string
	Format string
	Prefix string
	Output io.Writer
}

// InitLogger initializes the global logger from LOG_LEVEL
func InitLogger() {
	Configure(Options{})
}

// Configure replaces the global logger using the given options
func Configure(opts Options) {
	out := opts.Output
	if out == nil {
		out = os.Stderr
	}
	Logger = log.New(out)

	level := ParseLevel(opts.Level)
	if opts.Level == "" {
		level = getLogLevelFromEnv()
	}
	setLogLevel(Logger, level)

	switch strings.ToLower(opts.Format) {
	case "json":
		Logger.SetFormatter(log.JSONFormatter)
	case "logfmt":
		Logger.SetFormatter(log.LogfmtFormatter)
	default:
		Logger.SetFormatter(log.TextFormatter)
	}

	Logger.SetReportTimestamp(true)
	Logger.SetReportCaller(true)
	if opts.Prefix != "" {
		Logger.SetPrefix(opts.Prefix)
	}

	Logger.Debug("Logger initialized successfully", "level", level)
}

// getLogLevelFromEnv reads log level from LOG_LEVEL environment variable
func getLogLevelFromEnv() LogLevel {
	return ParseLevel(os.Getenv("LOG_LEVEL"))
}

// ParseLevel maps a level name to a LogLevel, defaulting to debug
func ParseLevel(s string) LogLevel {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return DebugLevel
	case "info":
		return InfoLevel
	case "warn", "warning":
		return WarnLevel
	case "error":
		return ErrorLevel
	default:
		// Default to debug level for maximum visibility
		return DebugLevel
	}
}

// setLogLevel configures the logger with the specified level
func setLogLevel(logger *log.Logger, level LogLevel) {
	switch level {
	case DebugLevel:
		logger.SetLevel(log.DebugLevel)
	case InfoLevel:
		logger.SetLevel(log.InfoLevel)
	case WarnLevel:
		logger.SetLevel(log.WarnLevel)
	case ErrorLevel:
		logger.SetLevel(log.ErrorLevel)
	default:
		logger.SetLevel(log.DebugLevel)
	}
}

// GetLogger returns the global logger instance
func GetLogger() *log.Logger {
	if Logger == nil {
		InitLogger()
	}
	return Logger
}

// WithFields creates a logger with contextual fields
func WithFields(fields ...interface{}) *log.Logger {
	return GetLogger().With(fields...)
}

// WithDuration creates a logger with duration context (for performance logging)
func WithDuration(operation string, duration interface{}) *log.Logger {
	return WithFields("operation", operation, "duration", duration)
}
