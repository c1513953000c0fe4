// Package printer provides colored terminal output helpers for the pixmat
// CLI. The matrix library itself never prints; all user-facing output goes
// through here.
package printer

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

var (
	green  = color.New(color.FgGreen)
	yellow = color.New(color.FgYellow)
	red    = color.New(color.FgRed, color.Bold)
	cyan   = color.New(color.FgCyan)
)

// Success prints a success message in green with a checkmark prefix.
func Success(format string, a ...any) {
	green.Printf("✓ "+format, a...)
}

// Info prints an informational message in the default color.
func Info(format string, a ...any) {
	fmt.Printf(format, a...)
}

// Warning prints a warning message in yellow.
func Warning(format string, a ...any) {
	yellow.Printf("warning: "+format, a...)
}

// Heading prints a section heading in cyan.
func Heading(format string, a ...any) {
	cyan.Printf(format, a...)
}

// Error prints a formatted error with optional suggestions to stderr and
// returns a plain error for cobra (which is configured to not re-print it).
func Error(title string, suggestions ...string) error {
	red.Fprintf(os.Stderr, "error: %s\n", title)
	for _, s := range suggestions {
		fmt.Fprintf(os.Stderr, "  %s\n", s)
	}
	return fmt.Errorf("%s", title)
}
