package parser

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/erraggy/specdiff"
	"github.com/erraggy/specdiff/oaserrors"
)

// DefaultMaxFileSize is the input size limit used when Parser.MaxFileSize is 0.
const DefaultMaxFileSize int64 = 50 << 20

// stdinPath is the Parse argument that reads the document from standard input.
const stdinPath = "-"

// Parser handles OpenAPI specification loading and parsing.
type Parser struct {
	// MaxFileSize is the maximum number of bytes read from any input.
	// Zero means DefaultMaxFileSize.
	MaxFileSize int64
	// MaxExpandedNodes bounds the size of the document once local references
	// are expanded. Zero means DefaultMaxExpandedNodes.
	MaxExpandedNodes int64
	// UserAgent is the User-Agent header sent when fetching URLs.
	// If unset, defaults to specdiff.UserAgent().
	UserAgent string
	// HTTPClient is the client used to fetch URLs. If nil, a client with a
	// 30 second timeout is created per request.
	HTTPClient *http.Client
	// Logger is the structured logger for debug output.
	// If nil, logging is disabled.
	Logger Logger

	// stdin is the reader used for the "-" input; nil means os.Stdin.
	stdin io.Reader
}

// New creates a new Parser instance with default settings.
func New() *Parser {
	return &Parser{}
}

// ParseResult contains a parsed document and information about where it came from.
type ParseResult struct {
	// SourcePath is the document's input source path that it was read from.
	// Note: if the source was not a file path, this will be set to the name of
	// the method and end in '.yaml' or '.json' based on the detected format.
	SourcePath string
	// Format is FormatSwagger2 or FormatOpenAPI3.
	Format string
	// Version is the declared specification version.
	Version string
	// Spec is the entity tree built from the document.
	Spec *Spec
	// Data is the decoded document with local references resolved.
	Data map[string]any
	// SourceSize is the number of bytes decoded, after decompression.
	SourceSize int64
	// LoadTime is how long reading and building took.
	LoadTime time.Duration
	// Warnings holds non-fatal issues such as unresolved external references.
	Warnings []string
}

func (p *Parser) log() Logger {
	return LoggerOrNop(p.Logger)
}

func (p *Parser) maxFileSize() int64 {
	if p.MaxFileSize > 0 {
		return p.MaxFileSize
	}
	return DefaultMaxFileSize
}

func (p *Parser) maxExpandedNodes() int64 {
	if p.MaxExpandedNodes > 0 {
		return p.MaxExpandedNodes
	}
	return DefaultMaxExpandedNodes
}

// Parse parses an OpenAPI specification from a file path, "-" for standard
// input, or an http(s) URL.
func (p *Parser) Parse(specPath string) (*ParseResult, error) {
	start := time.Now()

	var (
		data []byte
		err  error
	)
	switch {
	case isURL(specPath):
		p.log().Debug("fetching specification", "url", specPath)
		data, err = p.fetchURL(specPath)
	case specPath == stdinPath:
		p.log().Debug("reading specification from stdin")
		in := p.stdin
		if in == nil {
			in = os.Stdin
		}
		data, err = p.readLimited(in, specPath)
	default:
		p.log().Debug("reading specification", "path", specPath)
		data, err = p.readFile(specPath)
	}
	if err != nil {
		return nil, err
	}

	res, err := p.parseContent(data, specPath)
	if err != nil {
		return nil, err
	}
	res.LoadTime = time.Since(start)
	return res, nil
}

// ParseReader parses an OpenAPI specification from an io.Reader.
// Note: since there is no actual ParseResult.SourcePath, it will be set to:
// ParseReader.yaml or ParseReader.json
func (p *Parser) ParseReader(r io.Reader) (*ParseResult, error) {
	start := time.Now()
	data, err := p.readLimited(r, "ParseReader")
	if err != nil {
		return nil, err
	}
	res, err := p.parseContent(data, sourceName("ParseReader", data))
	if err != nil {
		return nil, err
	}
	res.LoadTime = time.Since(start)
	return res, nil
}

// ParseBytes parses an OpenAPI specification from a byte slice.
// Note: since there is no actual ParseResult.SourcePath, it will be set to:
// ParseBytes.yaml or ParseBytes.json
func (p *Parser) ParseBytes(data []byte) (*ParseResult, error) {
	start := time.Now()
	if err := p.checkSize(int64(len(data)), "ParseBytes"); err != nil {
		return nil, err
	}
	res, err := p.parseContent(data, sourceName("ParseBytes", data))
	if err != nil {
		return nil, err
	}
	res.LoadTime = time.Since(start)
	return res, nil
}

// sourceName names in-memory input after the method that read it.
func sourceName(method string, data []byte) string {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) > 0 && (trimmed[0] == '{' || trimmed[0] == '[') {
		return method + ".json"
	}
	return method + ".yaml"
}

// parseContent decompresses, decodes, resolves and builds one document.
func (p *Parser) parseContent(data []byte, sourcePath string) (*ParseResult, error) {
	data, err := p.decompress(data, sourcePath)
	if err != nil {
		return nil, err
	}

	root, err := decodeDocument(data, sourcePath)
	if err != nil {
		return nil, err
	}

	format, version, err := detectFormat(root)
	if err != nil {
		return nil, &oaserrors.ParseError{Path: sourcePath, Message: err.Error()}
	}
	p.log().Debug("detected format", "source", sourcePath, "format", format, "version", version)

	res := &ParseResult{
		SourcePath: sourcePath,
		Format:     format,
		Version:    version,
		SourceSize: int64(len(data)),
	}

	r := newResolver(root, p.log())
	r.maxNodes = p.maxExpandedNodes()
	resolved, err := r.resolveDocument()
	if err != nil {
		return nil, fmt.Errorf("parser: %s: %w", sourcePath, err)
	}
	res.Data = resolved
	res.Warnings = append(res.Warnings, r.warnings...)

	b := &builder{format: format, log: p.log()}
	res.Spec = b.build(resolved, version)
	res.Warnings = append(res.Warnings, b.warnings...)

	p.log().Info("parsed specification",
		"source", sourcePath,
		"format", format,
		"paths", len(res.Spec.Paths),
		"size", FormatBytes(res.SourceSize))
	return res, nil
}

// Parse is a convenience function that parses a specification with default
// settings.
func Parse(specPath string) (*ParseResult, error) {
	return New().Parse(specPath)
}

// ParseSpec parses a specification and returns only its entity tree.
func ParseSpec(specPath string) (*Spec, error) {
	res, err := Parse(specPath)
	if err != nil {
		return nil, err
	}
	return res.Spec, nil
}

// defaultUserAgent returns the User-Agent used when Parser.UserAgent is empty.
func defaultUserAgent() string {
	return specdiff.UserAgent()
}
