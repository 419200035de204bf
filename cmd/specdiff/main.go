package main

import (
	"errors"
	"os"

	"github.com/erraggy/specdiff/cmd/specdiff/commands"
	"github.com/erraggy/specdiff/internal/cliutil"
)

// commandNames lists the subcommands offered as typo suggestions.
var commandNames = []string{"diff", "mcp", "version", "help"}

func main() {
	os.Exit(run(os.Args[1:]))
}

// run dispatches args to a subcommand and returns the process exit status.
func run(args []string) int {
	if len(args) < 1 {
		printUsage()
		return 1
	}

	var err error
	switch command := args[0]; command {
	case "version", "-v", "--version":
		commands.HandleVersion()
	case "help", "-h", "--help":
		printUsage()
	case "diff":
		err = commands.HandleDiff(args[1:])
	case "mcp":
		err = commands.HandleMCP(args[1:])
	default:
		cliutil.Writef(commands.Stderr, "Unknown command: %s\n", command)
		if s := suggestCommand(command); s != "" {
			cliutil.Writef(commands.Stderr, "Did you mean: %s?\n", s)
		}
		cliutil.Writef(commands.Stderr, "\n")
		printUsage()
		return 1
	}

	switch {
	case err == nil:
		return 0
	case errors.Is(err, commands.ErrBreakingDifferences):
		return 1
	default:
		cliutil.PrintError(commands.Stderr, err)
		return 1
	}
}

func printUsage() {
	out := commands.Stdout
	cliutil.Writef(out, "specdiff - classify differences between two OpenAPI documents\n\n")
	cliutil.Writef(out, "Usage: specdiff <command> [flags] [args]\n\n")
	cliutil.Section(out, "Commands",
		"diff       Compare two documents and report classified differences",
		"mcp        Serve the diff tool over MCP (stdio)",
		"version    Show version information",
		"help       Show this help message")
	cliutil.Writef(out, "Run 'specdiff <command> --help' for details on a command.\n")
}

// suggestCommand returns the closest command within edit distance 2, or "".
func suggestCommand(input string) string {
	best, bestDist := "", 3
	for _, name := range commandNames {
		if d := editDistance(input, name); d < bestDist {
			best, bestDist = name, d
		}
	}
	return best
}

// editDistance is the Levenshtein distance between a and b.
func editDistance(a, b string) int {
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}
