// Package mcpserver exposes specdiff as an MCP (Model Context Protocol) tool
// server over stdio.
package mcpserver

import (
	"context"
	"regexp"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/specdiff"
)

const serverInstructions = `specdiff MCP server. Compares two OpenAPI (Swagger 2.0 or OpenAPI 3.x) documents and classifies every difference as breaking, non-breaking or unclassified.

Configuration comes from SPECDIFF_* environment variables in your MCP client config:
- SPECDIFF_POLICY_FILE: severity policy file (.yaml, .toml or .json); the built-in policy is used when unset
- SPECDIFF_CONCURRENCY: number of concurrent schema comparisons
- SPECDIFF_CACHE_ENABLED (default: true), SPECDIFF_CACHE_FILE_TTL (default: 15m), SPECDIFF_CACHE_URL_TTL (default: 5m)
- SPECDIFF_MAX_INLINE_SIZE (default: 10MiB): limit for inline content inputs
- SPECDIFF_ALLOW_PRIVATE_IPS (default: false): allow URL inputs on private networks`

// Run serves MCP over stdio until the client disconnects or ctx is cancelled.
func Run(ctx context.Context) error {
	if cfg.CacheEnabled {
		specCache.startSweeper(ctx, cfg.CacheSweepInterval)
	}
	server := mcp.NewServer(
		&mcp.Implementation{Name: "specdiff", Version: specdiff.Version()},
		&mcp.ServerOptions{Instructions: serverInstructions},
	)
	registerTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "diff",
		Description: "Compare two versions of an OpenAPI document (source and destination, each given as file, url or content). Returns per-severity counts, the classified differences with their code and location, and a summary line. Use breaking_only=true to return only the breaking differences.",
	}, handleDiff)
}

// makeSlice returns nil for n == 0 so empty lists are omitted from output.
func makeSlice[T any](n int) []T {
	if n == 0 {
		return nil
	}
	return make([]T, 0, n)
}

var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

// sanitizeError replaces absolute filesystem paths in err with "<path>".
func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}
