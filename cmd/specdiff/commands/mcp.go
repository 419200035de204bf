package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/erraggy/specdiff/internal/cliutil"
	"github.com/erraggy/specdiff/internal/mcpserver"
)

// HandleMCP serves the MCP tools over stdio until the client disconnects or
// the process is interrupted.
func HandleMCP(args []string) error {
	fs := flag.NewFlagSet("mcp", flag.ContinueOnError)
	fs.SetOutput(Stderr)
	fs.Usage = func() {
		out := fs.Output()
		cliutil.Writef(out, "Usage: specdiff mcp\n\n")
		cliutil.Writef(out, "Start an MCP server over stdio exposing the diff tool.\n\n")
		cliutil.Section(out, "Environment",
			"SPECDIFF_POLICY_FILE        severity policy file",
			"SPECDIFF_CONCURRENCY        concurrent schema comparisons",
			"SPECDIFF_CACHE_ENABLED      cache parsed documents (default true)",
			"SPECDIFF_MAX_INLINE_SIZE    limit for inline content inputs",
			"SPECDIFF_ALLOW_PRIVATE_IPS  allow URL inputs on private networks")
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	if fs.NArg() != 0 {
		fs.Usage()
		return fmt.Errorf("mcp command takes no arguments")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return mcpserver.Run(ctx)
}
