package logger

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/mingle-social/cli/pkg/config"
)

var logger *log.Logger

// Init opens the configured log file and builds the logger. Logging
// before Init, or after a failed open, is dropped; command output on
// stdout/stderr stays clean either way.
func Init(verbose bool) {
	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}

	f, err := os.OpenFile(config.GetString("log.file"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600)
	if err != nil {
		return
	}

	logger = log.NewWithOptions(f, log.Options{
		Level:           level,
		Prefix:          "mingle",
		ReportTimestamp: true,
	})
}

// Debug logs a debug message
func Debug(msg string, args ...interface{}) {
	if logger != nil {
		logger.Debug(msg, args...)
	}
}

// Info logs an info message
func Info(msg string, args ...interface{}) {
	if logger != nil {
		logger.Info(msg, args...)
	}
}

// Warn logs a warning message
func Warn(msg string, args ...interface{}) {
	if logger != nil {
		logger.Warn(msg, args...)
	}
}

// Error logs an error message
func Error(msg string, args ...interface{}) {
	if logger != nil {
		logger.Error(msg, args...)
	}
}
