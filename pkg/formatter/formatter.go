package formatter

import (
	"github.com/fatih/color"
	"github.com/mingle-social/cli/pkg/output"
)

// Bold highlights identifiers inline (usernames, post titles)
var Bold = color.New(color.Bold)

// PrintSuccess prints a success message
func PrintSuccess(format string, args ...interface{}) {
	output.PrintSuccess(format, args...)
}

// PrintError prints an error message
func PrintError(format string, args ...interface{}) {
	output.PrintError(format, args...)
}

// PrintInfo prints an info message
func PrintInfo(format string, args ...interface{}) {
	output.PrintInfo(format, args...)
}

// PrintWarning prints a warning message
func PrintWarning(format string, args ...interface{}) {
	output.PrintWarning(format, args...)
}

// PrintKeyValue prints key-value pairs using the centralized output
// service
func PrintKeyValue(data map[string]interface{}) {
	output.PrintRecord("", data)
}
