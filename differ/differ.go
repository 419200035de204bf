package differ

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/erraggy/specdiff/internal/options"
	"github.com/erraggy/specdiff/oaserrors"
	"github.com/erraggy/specdiff/parser"
	"github.com/erraggy/specdiff/schemadiff"
)

// DiffResult contains the results of comparing two API descriptions
type DiffResult struct {
	// SourcePath is where the source document was read from
	SourcePath string
	// SourceFormat is the source document's format (swagger2 or openapi3)
	SourceFormat string
	// SourceVersion is the source document's declared version
	SourceVersion string
	// SourceSize is the size of the source document in bytes
	SourceSize int64
	// DestinationPath is where the destination document was read from
	DestinationPath string
	// DestinationFormat is the destination document's format
	DestinationFormat string
	// DestinationVersion is the destination document's declared version
	DestinationVersion string
	// DestinationSize is the size of the destination document in bytes
	DestinationSize int64
	// Differences contains all findings in traversal order
	Differences []Difference
}

// HasDifferences reports whether any difference was found.
func (r *DiffResult) HasDifferences() bool {
	return len(r.Differences) > 0
}

// Differ handles API description comparison
type Differ struct {
	// Oracle compares schemas. Defaults to schemadiff.NewPatchOracle().
	Oracle schemadiff.Oracle
	// Logger is the structured logger for debug output.
	// If nil, logging is disabled.
	Logger parser.Logger
	// Concurrency bounds the schema comparisons in flight.
	// Zero means runtime.GOMAXPROCS(0); 1 runs them one at a time.
	Concurrency int
	// UserAgent is the User-Agent string used when fetching URLs
	UserAgent string
}

// New creates a new Differ instance with default settings
func New() *Differ {
	return &Differ{Oracle: schemadiff.NewPatchOracle()}
}

func (d *Differ) log() parser.Logger {
	return parser.LoggerOrNop(d.Logger)
}

func (d *Differ) oracle() schemadiff.Oracle {
	if d.Oracle == nil {
		return schemadiff.NewPatchOracle()
	}
	return d.Oracle
}

func (d *Differ) concurrency() int {
	if d.Concurrency > 0 {
		return d.Concurrency
	}
	return runtime.GOMAXPROCS(0)
}

// finder walks one pair of documents.
type finder struct {
	c     *collector
	log   parser.Logger
	lower cases.Caser
}

// FindDifferences compares two parsed documents. Top-level properties are
// reported first, then paths and everything below them. The returned list is
// deterministic for a given pair of documents.
//
// Schema oracle errors are returned unmodified and no differences are
// returned with them. A nil document compares as an empty one.
func (d *Differ) FindDifferences(ctx context.Context, source, destination *parser.Spec) ([]Difference, error) {
	if source == nil {
		source = &parser.Spec{}
	}
	if destination == nil {
		destination = &parser.Spec{}
	}

	f := &finder{
		c:     &collector{},
		log:   d.log(),
		lower: cases.Lower(language.Und),
	}
	f.xProperties(source.XProperties, destination.XProperties)
	f.paths(source.Paths, destination.Paths)

	f.log.Debug("running schema comparisons", "jobs", len(f.c.jobs), "concurrency", d.concurrency())
	return f.c.flush(ctx, d.oracle(), d.concurrency())
}

// Diff parses and compares two documents given as file paths or URLs.
func (d *Differ) Diff(ctx context.Context, sourcePath, destinationPath string) (*DiffResult, error) {
	source, err := d.parse(sourcePath)
	if err != nil {
		return nil, fmt.Errorf("differ: failed to parse source: %w", err)
	}
	destination, err := d.parse(destinationPath)
	if err != nil {
		return nil, fmt.Errorf("differ: failed to parse destination: %w", err)
	}
	return d.DiffParsed(ctx, source, destination)
}

// DiffParsed compares two already parsed documents.
func (d *Differ) DiffParsed(ctx context.Context, source, destination *parser.ParseResult) (*DiffResult, error) {
	diffs, err := d.FindDifferences(ctx, source.Spec, destination.Spec)
	if err != nil {
		return nil, err
	}
	return &DiffResult{
		SourcePath:         source.SourcePath,
		SourceFormat:       source.Format,
		SourceVersion:      source.Version,
		SourceSize:         source.SourceSize,
		DestinationPath:    destination.SourcePath,
		DestinationFormat:  destination.Format,
		DestinationVersion: destination.Version,
		DestinationSize:    destination.SourceSize,
		Differences:        diffs,
	}, nil
}

func (d *Differ) parse(path string) (*parser.ParseResult, error) {
	p := parser.New()
	p.Logger = d.Logger
	if d.UserAgent != "" {
		p.UserAgent = d.UserAgent
	}
	return p.Parse(path)
}

// Option is a function that configures a diff operation
type Option func(*diffConfig) error

// diffConfig holds configuration for a diff operation
type diffConfig struct {
	// Input sources (exactly one source and one destination must be set)
	sourceFilePath      *string
	sourceParsed        *parser.ParseResult
	destinationFilePath *string
	destinationParsed   *parser.ParseResult

	oracle      schemadiff.Oracle
	logger      parser.Logger
	concurrency int
	userAgent   string
}

// DiffWithOptions compares two API descriptions using functional options.
//
// Example:
//
//	result, err := differ.DiffWithOptions(ctx,
//	    differ.WithSourceFilePath("api-v1.yaml"),
//	    differ.WithDestinationFilePath("api-v2.yaml"),
//	    differ.WithConcurrency(4),
//	)
func DiffWithOptions(ctx context.Context, opts ...Option) (*DiffResult, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("differ: invalid options: %w", err)
	}

	d := &Differ{
		Oracle:      cfg.oracle,
		Logger:      cfg.logger,
		Concurrency: cfg.concurrency,
		UserAgent:   cfg.userAgent,
	}

	source := cfg.sourceParsed
	if cfg.sourceFilePath != nil {
		source, err = d.parse(*cfg.sourceFilePath)
		if err != nil {
			return nil, fmt.Errorf("differ: failed to parse source: %w", err)
		}
	}

	destination := cfg.destinationParsed
	if cfg.destinationFilePath != nil {
		destination, err = d.parse(*cfg.destinationFilePath)
		if err != nil {
			return nil, fmt.Errorf("differ: failed to parse destination: %w", err)
		}
	}

	return d.DiffParsed(ctx, source, destination)
}

// applyOptions applies option functions and validates configuration
func applyOptions(opts ...Option) (*diffConfig, error) {
	cfg := &diffConfig{}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if err := options.ValidateSingleInputSource(
		"source", "use WithSourceFilePath or WithSourceParsed",
		cfg.sourceFilePath != nil, cfg.sourceParsed != nil,
	); err != nil {
		return nil, err
	}
	if err := options.ValidateSingleInputSource(
		"destination", "use WithDestinationFilePath or WithDestinationParsed",
		cfg.destinationFilePath != nil, cfg.destinationParsed != nil,
	); err != nil {
		return nil, err
	}

	return cfg, nil
}

// WithSourceFilePath specifies a file path or URL as the source document
func WithSourceFilePath(path string) Option {
	return func(cfg *diffConfig) error {
		cfg.sourceFilePath = &path
		return nil
	}
}

// WithSourceParsed specifies a parsed ParseResult as the source document
func WithSourceParsed(result *parser.ParseResult) Option {
	return func(cfg *diffConfig) error {
		if result == nil || result.Spec == nil {
			return &oaserrors.ConfigError{Option: "WithSourceParsed", Message: "parse result has no spec"}
		}
		cfg.sourceParsed = result
		return nil
	}
}

// WithDestinationFilePath specifies a file path or URL as the destination document
func WithDestinationFilePath(path string) Option {
	return func(cfg *diffConfig) error {
		cfg.destinationFilePath = &path
		return nil
	}
}

// WithDestinationParsed specifies a parsed ParseResult as the destination document
func WithDestinationParsed(result *parser.ParseResult) Option {
	return func(cfg *diffConfig) error {
		if result == nil || result.Spec == nil {
			return &oaserrors.ConfigError{Option: "WithDestinationParsed", Message: "parse result has no spec"}
		}
		cfg.destinationParsed = result
		return nil
	}
}

// WithOracle replaces the schema comparison oracle
// Default: schemadiff.NewPatchOracle()
func WithOracle(o schemadiff.Oracle) Option {
	return func(cfg *diffConfig) error {
		cfg.oracle = o
		return nil
	}
}

// WithLogger sets the structured logger for debug output
func WithLogger(l parser.Logger) Option {
	return func(cfg *diffConfig) error {
		cfg.logger = l
		return nil
	}
}

// WithConcurrency bounds the schema comparisons in flight
// Default: 0 (runtime.GOMAXPROCS(0))
func WithConcurrency(n int) Option {
	return func(cfg *diffConfig) error {
		if n < 0 {
			return &oaserrors.ConfigError{Option: "WithConcurrency", Value: n, Message: "must not be negative"}
		}
		cfg.concurrency = n
		return nil
	}
}

// WithUserAgent sets the User-Agent string for HTTP requests
// Default: "" (uses parser default)
func WithUserAgent(ua string) Option {
	return func(cfg *diffConfig) error {
		cfg.userAgent = ua
		return nil
	}
}
