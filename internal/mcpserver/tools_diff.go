package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/specdiff/classifier"
	"github.com/erraggy/specdiff/differ"
	"github.com/erraggy/specdiff/reporter"
)

type diffInput struct {
	Source       specInput `json:"source"                  jsonschema:"The original OpenAPI document"`
	Destination  specInput `json:"destination"             jsonschema:"The revised OpenAPI document compared against source"`
	BreakingOnly bool      `json:"breaking_only,omitempty" jsonschema:"Only return breaking differences"`
}

type diffEntry struct {
	Code     string `json:"code"`
	Location string `json:"location"`
	Action   string `json:"action"`
	Entity   string `json:"entity"`
	Source   string `json:"source"`
}

type diffOutput struct {
	SourceVersion      string      `json:"source_version"`
	DestinationVersion string      `json:"destination_version"`
	TotalCount         int         `json:"total_count"`
	BreakingCount      int         `json:"breaking_count"`
	NonBreakingCount   int         `json:"non_breaking_count"`
	UnclassifiedCount  int         `json:"unclassified_count"`
	BreakingFound      bool        `json:"breaking_found"`
	Breaking           []diffEntry `json:"breaking,omitempty"`
	NonBreaking        []diffEntry `json:"non_breaking,omitempty"`
	Unclassified       []diffEntry `json:"unclassified,omitempty"`
	Summary            string      `json:"summary"`
}

// activePolicy returns the policy named by SPECDIFF_POLICY_FILE, or the
// default policy when it is unset.
func activePolicy() (*classifier.Policy, error) {
	if cfg.PolicyFile == "" {
		return classifier.DefaultPolicy(), nil
	}
	return classifier.LoadPolicy(cfg.PolicyFile)
}

func handleDiff(ctx context.Context, _ *mcp.CallToolRequest, input diffInput) (*mcp.CallToolResult, diffOutput, error) {
	source, err := input.Source.resolve()
	if err != nil {
		return errResult(err), diffOutput{}, nil
	}
	destination, err := input.Destination.resolve()
	if err != nil {
		return errResult(err), diffOutput{}, nil
	}
	policy, err := activePolicy()
	if err != nil {
		return errResult(err), diffOutput{}, nil
	}

	opts := []differ.Option{
		differ.WithSourceParsed(source),
		differ.WithDestinationParsed(destination),
	}
	if cfg.Concurrency > 0 {
		opts = append(opts, differ.WithConcurrency(cfg.Concurrency))
	}
	result, err := differ.DiffWithOptions(ctx, opts...)
	if err != nil {
		return errResult(err), diffOutput{}, nil
	}

	classified := classifier.Classify(result.Differences, policy)
	summary := reporter.Summarize(classified)

	output := diffOutput{
		SourceVersion:      result.SourceVersion,
		DestinationVersion: result.DestinationVersion,
		TotalCount:         summary.Total,
		BreakingCount:      summary.Breaking,
		NonBreakingCount:   summary.NonBreaking,
		UnclassifiedCount:  summary.Unclassified,
		BreakingFound:      summary.BreakingDifferencesFound,
		Breaking:           entries(classified.BreakingDifferences),
		Summary:            summary.String(),
	}
	if !input.BreakingOnly {
		output.NonBreaking = entries(classified.NonBreakingDifferences)
		output.Unclassified = entries(classified.UnclassifiedDifferences)
	}
	return nil, output, nil
}

func entries(diffs []differ.Difference) []diffEntry {
	out := makeSlice[diffEntry](len(diffs))
	for _, d := range diffs {
		out = append(out, diffEntry{
			Code:     d.Code,
			Location: d.Location(),
			Action:   string(d.Action),
			Entity:   d.Entity,
			Source:   d.Source,
		})
	}
	return out
}
