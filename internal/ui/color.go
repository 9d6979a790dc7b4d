// Package ui provides colored console output.
package ui

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

var (
	// Colors
	Red    = color.New(color.FgRed)
	Green  = color.New(color.FgGreen)
	Yellow = color.New(color.FgYellow)
	Blue   = color.New(color.FgBlue)
	Cyan   = color.New(color.FgCyan)
	Faint  = color.New(color.Faint)
	Bold   = color.New(color.Bold)
)

var verbose bool

// Configure sets verbosity and turns color off when asked to, when NO_COLOR
// is set, or when stdout is not a terminal.
func Configure(beVerbose, noColor bool) {
	verbose = beVerbose
	if noColor || os.Getenv("NO_COLOR") != "" || !term.IsTerminal(int(os.Stdout.Fd())) {
		color.NoColor = true
	}
}

// Verbose reports whether debug output is enabled.
func Verbose() bool {
	return verbose
}

// Success prints a green success message with checkmark.
func Success(format string, args ...any) {
	Green.Printf("✓ "+format+"\n", args...)
}

// Error prints a red error message with X.
func Error(format string, args ...any) {
	Red.Printf("✗ "+format+"\n", args...)
}

// Warning prints a yellow warning message.
func Warning(format string, args ...any) {
	Yellow.Printf("⚠ "+format+"\n", args...)
}

// Info prints a blue info message.
func Info(format string, args ...any) {
	Blue.Printf(format+"\n", args...)
}

// Header prints a bold header.
func Header(format string, args ...any) {
	Bold.Printf(format+"\n", args...)
}

// Detail prints an indented key/value pair.
func Detail(key string, value any) {
	Cyan.Printf("  %s: ", key)
	fmt.Printf("%v\n", value)
}

// Debug prints a faint message when verbose output is on.
func Debug(format string, args ...any) {
	if !verbose {
		return
	}
	Faint.Printf("· "+format+"\n", args...)
}

// Fatal prints an error to stderr and exits.
func Fatal(format string, args ...any) {
	Red.Fprintf(os.Stderr, "✗ "+format+"\n", args...)
	os.Exit(1)
}
