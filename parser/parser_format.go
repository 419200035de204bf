package parser

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/klauspost/compress/gzip"

	"github.com/erraggy/specdiff/oaserrors"
)

// gzipMagic is the two-byte header every gzip stream starts with.
var gzipMagic = []byte{0x1f, 0x8b}

// FormatBytes formats a byte size into a human-readable string
func FormatBytes(size int64) string {
	const unit = 1024
	if size < unit {
		return fmt.Sprintf("%d B", size)
	}
	div, exp := int64(unit), 0
	for n := size / unit; n >= unit && exp < 5; n /= unit {
		div *= unit
		exp++
	}

	// Use proper binary unit notation (KiB, MiB, GiB, etc.)
	return fmt.Sprintf("%.1f %ciB", float64(size)/float64(div), "KMGTPE"[exp])
}

// isURL determines if the given path is a URL (http:// or https://)
func isURL(path string) bool {
	return strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://")
}

// isGzip reports whether data starts with the gzip magic bytes.
func isGzip(data []byte) bool {
	return bytes.HasPrefix(data, gzipMagic)
}

func (p *Parser) checkSize(size int64, source string) error {
	if limit := p.maxFileSize(); size > limit {
		return &oaserrors.ResourceLimitError{
			ResourceType: "file_size",
			Limit:        limit,
			Actual:       size,
			Message:      source,
		}
	}
	return nil
}

// readFile reads a local file, refusing anything over the size limit before
// reading it.
func (p *Parser) readFile(path string) ([]byte, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &oaserrors.ParseError{Path: path, Message: "file not found", Cause: err}
		}
		return nil, &oaserrors.ParseError{Path: path, Message: "failed to stat file", Cause: err}
	}
	if info.IsDir() {
		return nil, &oaserrors.ParseError{Path: path, Message: "path is a directory"}
	}
	if err := p.checkSize(info.Size(), path); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path) //nolint:gosec // path is user-provided input (CLI)
	if err != nil {
		return nil, &oaserrors.ParseError{Path: path, Message: "failed to read file", Cause: err}
	}
	return data, nil
}

// readLimited reads r up to the size limit. One byte past the limit is read
// so an oversized stream can be told apart from one exactly at the limit.
func (p *Parser) readLimited(r io.Reader, source string) ([]byte, error) {
	limit := p.maxFileSize()
	data, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return nil, &oaserrors.ParseError{Path: source, Message: "failed to read input", Cause: err}
	}
	if int64(len(data)) > limit {
		return nil, &oaserrors.ResourceLimitError{
			ResourceType: "file_size",
			Limit:        limit,
			Message:      source,
		}
	}
	return data, nil
}

// decompress returns data unchanged unless it is gzip-compressed.
// The decompressed size is held to the same limit as plain input.
func (p *Parser) decompress(data []byte, source string) ([]byte, error) {
	if !isGzip(data) {
		return data, nil
	}
	p.log().Debug("decompressing gzip input", "source", source, "compressed", FormatBytes(int64(len(data))))

	zr, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, &oaserrors.ParseError{Path: source, Message: "invalid gzip stream", Cause: err}
	}
	defer func() {
		_ = zr.Close()
	}()
	return p.readLimited(zr, source)
}

// fetchURL fetches content from a URL.
func (p *Parser) fetchURL(urlStr string) ([]byte, error) {
	// Use custom client if provided, otherwise create default
	client := p.HTTPClient
	if client == nil {
		client = &http.Client{
			Timeout: 30 * time.Second,
		}
	}

	req, err := http.NewRequest(http.MethodGet, urlStr, nil)
	if err != nil {
		return nil, fmt.Errorf("parser: failed to create request: %w", err)
	}

	userAgent := p.UserAgent
	if userAgent == "" {
		userAgent = defaultUserAgent()
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := client.Do(req) //nolint:gosec // URL is user-provided input (CLI)
	if err != nil {
		return nil, fmt.Errorf("parser: failed to fetch URL: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("parser: HTTP %d: %s", resp.StatusCode, resp.Status)
	}

	if resp.ContentLength > 0 {
		if err := p.checkSize(resp.ContentLength, urlStr); err != nil {
			return nil, err
		}
	}
	return p.readLimited(resp.Body, urlStr)
}
