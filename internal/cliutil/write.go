// Package cliutil provides output helpers shared by the specdiff commands.
package cliutil

import (
	"fmt"
	"io"
	"os"
)

// Writef writes formatted output to w. A failed write is reported on stderr.
func Writef(w io.Writer, format string, args ...any) {
	if _, err := fmt.Fprintf(w, format, args...); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "write error: %v\n", err)
	}
}

// Section writes a titled block of pre-formatted lines followed by a blank
// line, as used in command usage text.
func Section(w io.Writer, title string, lines ...string) {
	Writef(w, "%s:\n", title)
	for _, l := range lines {
		Writef(w, "  %s\n", l)
	}
	Writef(w, "\n")
}

// PrintError reports err on w in the form the commands use for failures.
func PrintError(w io.Writer, err error) {
	Writef(w, "Error: %v\n", err)
}
