// Package reporter renders classified differences as text, JSON or YAML.
package reporter

import (
	"encoding/json"
	"fmt"
	"io"

	"go.yaml.in/yaml/v4"

	"github.com/erraggy/specdiff/classifier"
	"github.com/erraggy/specdiff/differ"
	"github.com/erraggy/specdiff/internal/cliutil"
)

// Output format constants
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// ValidateFormat returns an error if format is not a supported output format.
func ValidateFormat(format string) error {
	if format != FormatText && format != FormatJSON && format != FormatYAML {
		return fmt.Errorf("invalid format '%s'. Valid formats: %s, %s, %s", format, FormatText, FormatJSON, FormatYAML)
	}
	return nil
}

// Summary counts differences per severity.
type Summary struct {
	Total                    int  `json:"total" yaml:"total"`
	Breaking                 int  `json:"breaking" yaml:"breaking"`
	NonBreaking              int  `json:"nonBreaking" yaml:"nonBreaking"`
	Unclassified             int  `json:"unclassified" yaml:"unclassified"`
	BreakingDifferencesFound bool `json:"breakingDifferencesFound" yaml:"breakingDifferencesFound"`
}

// String renders the summary as one line.
func (s Summary) String() string {
	if s.Total == 0 {
		return "no differences found"
	}
	return fmt.Sprintf("%d difference(s): %d breaking, %d non-breaking, %d unclassified",
		s.Total, s.Breaking, s.NonBreaking, s.Unclassified)
}

// Report is everything rendered for one comparison.
type Report struct {
	SourcePath         string             `json:"sourcePath" yaml:"sourcePath"`
	SourceVersion      string             `json:"sourceVersion" yaml:"sourceVersion"`
	DestinationPath    string             `json:"destinationPath" yaml:"destinationPath"`
	DestinationVersion string             `json:"destinationVersion" yaml:"destinationVersion"`
	Summary            Summary            `json:"summary" yaml:"summary"`
	Result             *classifier.Result `json:"result" yaml:"result"`
}

// NewReport combines a comparison with its classification.
func NewReport(diff *differ.DiffResult, classified *classifier.Result) *Report {
	return &Report{
		SourcePath:         diff.SourcePath,
		SourceVersion:      diff.SourceVersion,
		DestinationPath:    diff.DestinationPath,
		DestinationVersion: diff.DestinationVersion,
		Summary:            Summarize(classified),
		Result:             classified,
	}
}

// Summarize counts a classification result.
func Summarize(r *classifier.Result) Summary {
	return Summary{
		Total:                    r.Count(),
		Breaking:                 len(r.BreakingDifferences),
		NonBreaking:              len(r.NonBreakingDifferences),
		Unclassified:             len(r.UnclassifiedDifferences),
		BreakingDifferencesFound: r.BreakingDifferencesFound,
	}
}

// Render writes report to w in the given format.
func Render(w io.Writer, report *Report, format string) error {
	switch format {
	case FormatText:
		renderText(w, report)
		return nil
	case FormatJSON:
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("reporter: marshaling to json: %w", err)
		}
		cliutil.Writef(w, "%s\n", data)
		return nil
	case FormatYAML:
		data, err := yaml.Marshal(report)
		if err != nil {
			return fmt.Errorf("reporter: marshaling to yaml: %w", err)
		}
		cliutil.Writef(w, "%s", data)
		return nil
	default:
		return ValidateFormat(format)
	}
}

func renderText(w io.Writer, report *Report) {
	cliutil.Writef(w, "Source:      %s (%s)\n", report.SourcePath, report.SourceVersion)
	cliutil.Writef(w, "Destination: %s (%s)\n\n", report.DestinationPath, report.DestinationVersion)

	if report.Summary.Total == 0 {
		cliutil.Writef(w, "✓ No differences found\n")
		return
	}

	section(w, "Breaking", "✗", report.Result.BreakingDifferences)
	section(w, "Non-breaking", "ℹ", report.Result.NonBreakingDifferences)
	section(w, "Unclassified", "·", report.Result.UnclassifiedDifferences)

	cliutil.Writef(w, "Summary: %s\n", report.Summary)
}

func section(w io.Writer, title, symbol string, diffs []differ.Difference) {
	if len(diffs) == 0 {
		return
	}
	cliutil.Writef(w, "%s differences (%d):\n", title, len(diffs))
	for _, d := range diffs {
		cliutil.Writef(w, "  %s %s\n", symbol, d)
	}
	cliutil.Writef(w, "\n")
}
