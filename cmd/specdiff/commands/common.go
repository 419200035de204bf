// Package commands implements the specdiff subcommands.
package commands

import (
	"errors"
	"io"
	"log/slog"
	"os"

	"github.com/erraggy/specdiff/parser"
)

// Output streams used by the commands. Tests replace them.
var (
	Stdout io.Writer = os.Stdout
	Stderr io.Writer = os.Stderr
)

// ErrBreakingDifferences is returned by HandleDiff after a successful
// comparison that found breaking differences. It maps to exit status 1.
var ErrBreakingDifferences = errors.New("breaking differences found")

// newLogger returns a debug-level slog text logger on Stderr when verbose is
// set, and a no-op logger otherwise.
func newLogger(verbose bool) parser.Logger {
	if !verbose {
		return parser.NopLogger{}
	}
	handler := slog.NewTextHandler(Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
	return parser.NewSlogAdapter(slog.New(handler))
}
