package parser

import (
	"fmt"
	"io"
	"net/http"

	"github.com/erraggy/specdiff/internal/options"
	"github.com/erraggy/specdiff/oaserrors"
)

// Option is a function that configures a parse operation
type Option func(*parseConfig) error

// parseConfig holds configuration for a parse operation
type parseConfig struct {
	// Input source (exactly one must be set)
	filePath *string
	reader   io.Reader
	bytes    []byte

	userAgent   string
	httpClient  *http.Client
	logger      Logger
	maxFileSize int64
	maxNodes    int64

	// Source identification
	sourceName *string // Override SourcePath in the result
}

// ParseWithOptions parses an OpenAPI specification using functional options.
//
// Example:
//
//	result, err := parser.ParseWithOptions(
//	    parser.WithFilePath("openapi.yaml"),
//	    parser.WithMaxFileSize(5 << 20),
//	)
func ParseWithOptions(opts ...Option) (*ParseResult, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("parser: invalid options: %w", err)
	}

	p := &Parser{
		MaxFileSize:      cfg.maxFileSize,
		MaxExpandedNodes: cfg.maxNodes,
		UserAgent:        cfg.userAgent,
		HTTPClient:       cfg.httpClient,
		Logger:           cfg.logger,
	}

	// Route to appropriate parsing method based on input source
	var result *ParseResult
	switch {
	case cfg.filePath != nil:
		result, err = p.Parse(*cfg.filePath)
	case cfg.reader != nil:
		result, err = p.ParseReader(cfg.reader)
	default:
		result, err = p.ParseBytes(cfg.bytes)
	}
	if err != nil {
		return nil, err
	}

	if cfg.sourceName != nil {
		result.SourcePath = *cfg.sourceName
	}
	return result, nil
}

// applyOptions applies option functions and validates configuration
func applyOptions(opts ...Option) (*parseConfig, error) {
	cfg := &parseConfig{
		userAgent: defaultUserAgent(),
	}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	// Validate exactly one input source is specified
	if err := options.ValidateSingleInputSource(
		"input", "use WithFilePath, WithReader, or WithBytes",
		cfg.filePath != nil, cfg.reader != nil, cfg.bytes != nil,
	); err != nil {
		return nil, err
	}

	return cfg, nil
}

// WithFilePath specifies a file path, "-" for stdin, or URL as the input source
func WithFilePath(path string) Option {
	return func(cfg *parseConfig) error {
		cfg.filePath = &path
		return nil
	}
}

// WithReader specifies an io.Reader as the input source
func WithReader(r io.Reader) Option {
	return func(cfg *parseConfig) error {
		if r == nil {
			return &oaserrors.ConfigError{Option: "WithReader", Message: "reader cannot be nil"}
		}
		cfg.reader = r
		return nil
	}
}

// WithBytes specifies a byte slice as the input source
func WithBytes(data []byte) Option {
	return func(cfg *parseConfig) error {
		if data == nil {
			data = []byte{}
		}
		cfg.bytes = data
		return nil
	}
}

// WithLogger sets the structured logger for debug output
func WithLogger(l Logger) Option {
	return func(cfg *parseConfig) error {
		cfg.logger = l
		return nil
	}
}

// WithMaxFileSize sets the maximum input size in bytes (0 uses DefaultMaxFileSize)
func WithMaxFileSize(size int64) Option {
	return func(cfg *parseConfig) error {
		if size < 0 {
			return &oaserrors.ConfigError{Option: "WithMaxFileSize", Value: size, Message: "must not be negative"}
		}
		cfg.maxFileSize = size
		return nil
	}
}

// WithMaxExpandedNodes sets the reference expansion budget (0 uses DefaultMaxExpandedNodes)
func WithMaxExpandedNodes(n int64) Option {
	return func(cfg *parseConfig) error {
		if n < 0 {
			return &oaserrors.ConfigError{Option: "WithMaxExpandedNodes", Value: n, Message: "must not be negative"}
		}
		cfg.maxNodes = n
		return nil
	}
}

// WithUserAgent sets the User-Agent header for URL fetches
func WithUserAgent(ua string) Option {
	return func(cfg *parseConfig) error {
		cfg.userAgent = ua
		return nil
	}
}

// WithHTTPClient sets the client used for URL fetches
func WithHTTPClient(client *http.Client) Option {
	return func(cfg *parseConfig) error {
		cfg.httpClient = client
		return nil
	}
}

// WithSourceName overrides ParseResult.SourcePath, useful for in-memory input
func WithSourceName(name string) Option {
	return func(cfg *parseConfig) error {
		cfg.sourceName = &name
		return nil
	}
}
