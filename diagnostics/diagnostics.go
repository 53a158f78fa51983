// Package diagnostics prints messages of the command line tool. Library
// packages return errors and never print.
package diagnostics

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

var (
	fatalColor   = color.New(color.FgRed, color.Bold)
	warningColor = color.New(color.FgYellow)
)

// Fatal prints a fatal error message and exits if err is not nil
func Fatal(msg string, err error) {
	if err == nil {
		return
	}
	fatalColor.Fprint(os.Stderr, "Fatal: ")
	fmt.Fprintf(os.Stderr, "%s: %v\n", msg, err)
	os.Exit(1)
}

// Warn prints a non fatal advisory to w
func Warn(w io.Writer, msg string) {
	warningColor.Fprint(w, "Warning: ")
	fmt.Fprintln(w, msg)
}

// Warnf is Warn with formatting
func Warnf(w io.Writer, format string, args ...any) {
	Warn(w, fmt.Sprintf(format, args...))
}
