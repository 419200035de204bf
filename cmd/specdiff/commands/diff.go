package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"

	"github.com/erraggy/specdiff"
	"github.com/erraggy/specdiff/classifier"
	"github.com/erraggy/specdiff/differ"
	"github.com/erraggy/specdiff/internal/cliutil"
	"github.com/erraggy/specdiff/internal/fileutil"
	"github.com/erraggy/specdiff/reporter"
)

// DiffFlags contains flags for the diff command
type DiffFlags struct {
	Format      string
	Output      string
	Policy      string
	Concurrency int
	Verbose     bool
}

// SetupDiffFlags creates and configures a FlagSet for the diff command.
// Returns the FlagSet and a DiffFlags struct with bound flag variables.
func SetupDiffFlags() (*flag.FlagSet, *DiffFlags) {
	fs := flag.NewFlagSet("diff", flag.ContinueOnError)
	fs.SetOutput(Stderr)
	flags := &DiffFlags{}

	fs.StringVar(&flags.Format, "format", reporter.FormatText, "output format: text, json, or yaml")
	fs.StringVar(&flags.Output, "output", "", "write the report to this file instead of stdout")
	fs.StringVar(&flags.Policy, "policy", "", "severity policy file (.yaml, .yml, .toml or .json)")
	fs.IntVar(&flags.Concurrency, "concurrency", 0, "maximum concurrent schema comparisons (0 = GOMAXPROCS)")
	fs.BoolVar(&flags.Verbose, "verbose", false, "log parsing and comparison steps to stderr")

	fs.Usage = func() {
		out := fs.Output()
		cliutil.Writef(out, "Usage: specdiff diff [flags] <source> <destination>\n\n")
		cliutil.Writef(out, "Compare two OpenAPI documents (files, URLs or - for stdin) and classify each difference.\n\n")
		cliutil.Writef(out, "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(out, "\n")
		cliutil.Section(out, "Output Formats",
			"text (default)  One line per difference, grouped by severity",
			"json            JSON report for programmatic processing",
			"yaml            YAML report for programmatic processing")
		cliutil.Section(out, "Examples",
			"specdiff diff api-v1.yaml api-v2.yaml",
			"specdiff diff --policy policy.toml api-v1.yaml api-v2.yaml",
			"specdiff diff --format json old.yaml new.yaml | jq '.summary'",
			"specdiff diff --format yaml --output report.yaml old.yaml new.yaml",
			"cat new.yaml | specdiff diff old.yaml -")
		cliutil.Section(out, "Exit Status",
			"0    No breaking differences found",
			"1    Breaking differences found, or an error occurred")
	}

	return fs, flags
}

// HandleDiff executes the diff command
func HandleDiff(args []string) error {
	fs, flags := SetupDiffFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 2 {
		fs.Usage()
		return fmt.Errorf("diff command requires exactly two file paths or URLs")
	}
	if err := reporter.ValidateFormat(flags.Format); err != nil {
		return err
	}
	if flags.Concurrency < 0 {
		return fmt.Errorf("invalid concurrency %d: must be non-negative", flags.Concurrency)
	}

	policy := classifier.DefaultPolicy()
	if flags.Policy != "" {
		p, err := classifier.LoadPolicy(flags.Policy)
		if err != nil {
			return err
		}
		policy = p
	}

	d := differ.New()
	d.Logger = newLogger(flags.Verbose)
	d.Concurrency = flags.Concurrency
	d.UserAgent = specdiff.UserAgent()

	result, err := d.Diff(context.Background(), fs.Arg(0), fs.Arg(1))
	if err != nil {
		return fmt.Errorf("comparing specifications: %w", err)
	}

	classified := classifier.Classify(result.Differences, policy)
	if err := writeReport(flags.Output, reporter.NewReport(result, classified), flags.Format); err != nil {
		return err
	}

	if classified.BreakingDifferencesFound {
		return ErrBreakingDifferences
	}
	return nil
}

// writeReport renders report to Stdout, or to path when one is given.
func writeReport(path string, report *reporter.Report, format string) (err error) {
	if path == "" {
		return reporter.Render(Stdout, report, format)
	}
	f, err := fileutil.CreateReport(path)
	if err != nil {
		return fmt.Errorf("creating report file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing report file: %w", cerr)
		}
	}()
	return reporter.Render(f, report, format)
}
