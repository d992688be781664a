// Package internal holds the logging helpers shared by the CLI surfaces.
package internal

import (
	"io"
	"os"

	"github.com/fatih/color"
)

// Stderr is where every helper writes. Tests may replace it.
var Stderr io.Writer = os.Stderr

var debugMode bool

var (
	debugColor   = color.New(color.FgHiBlack)
	warnColor    = color.New(color.FgYellow)
	fatalColor   = color.New(color.FgRed, color.Bold)
	successColor = color.New(color.FgGreen)
)

// SetDebug enables or disables Debugf output.
func SetDebug(on bool) {
	debugMode = on
}

// DebugEnabled reports whether debug output is on.
func DebugEnabled() bool {
	return debugMode
}

// Debugf prints debug messages when debug mode is enabled.
func Debugf(format string, args ...any) {
	if debugMode {
		_, _ = debugColor.Fprintf(Stderr, "[DEBUG] "+format+"\n", args...)
	}
}

// Warning logs a warning.
func Warning(msg string) {
	_, _ = warnColor.Fprintf(Stderr, "Warn %s\n", msg)
}

// Success logs a completed action.
func Success(format string, args ...any) {
	_, _ = successColor.Fprintf(Stderr, format+"\n", args...)
}

// FatalError logs an error and exits the program.
func FatalError(msg string, err error) {
	_, _ = fatalColor.Fprintf(Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}
