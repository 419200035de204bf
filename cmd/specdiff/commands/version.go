package commands

import (
	"github.com/erraggy/specdiff"
	"github.com/erraggy/specdiff/internal/cliutil"
)

// HandleVersion prints build information.
func HandleVersion() {
	cliutil.Writef(Stdout, "specdiff v%s\n", specdiff.Version())
	cliutil.Writef(Stdout, "  commit:     %s\n", specdiff.Commit())
	cliutil.Writef(Stdout, "  built:      %s\n", specdiff.BuildTime())
	cliutil.Writef(Stdout, "  go version: %s\n", specdiff.GoVersion())
}
