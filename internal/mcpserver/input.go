package mcpserver

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/erraggy/specdiff/parser"
)

// specInput is one document argument of a tool. Exactly one field is set.
type specInput struct {
	File    string `json:"file,omitempty"    jsonschema:"Path to an OpenAPI document on disk"`
	URL     string `json:"url,omitempty"     jsonschema:"URL to fetch an OpenAPI document from"`
	Content string `json:"content,omitempty" jsonschema:"Inline OpenAPI document content (JSON or YAML)"`
}

// inlineSourceName is reported as the source path of content inputs.
const inlineSourceName = "inline"

type cacheEntry struct {
	result    *parser.ParseResult
	lastUsed  time.Time
	expiresAt time.Time
}

// parseCache keeps parsed documents for the session. Files are keyed by
// absolute path and modification time, content by its SHA-256 and URLs by
// the URL itself.
type parseCache struct {
	mu       sync.Mutex
	entries  map[string]*cacheEntry
	maxSize  int
	sweeping atomic.Bool
}

func newParseCache(maxSize int) *parseCache {
	return &parseCache{entries: make(map[string]*cacheEntry), maxSize: maxSize}
}

var specCache = newParseCache(cfg.CacheMaxSize)

// get returns the cached result for key, dropping it if expired.
func (c *parseCache) get(key string) *parser.ParseResult {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[key]
	if !ok {
		return nil
	}
	now := time.Now()
	if now.After(e.expiresAt) {
		delete(c.entries, key)
		return nil
	}
	e.lastUsed = now
	return e.result
}

// put stores result under key, evicting the least recently used entry when full.
func (c *parseCache) put(key string, result *parser.ParseResult, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := time.Now()
	if _, ok := c.entries[key]; !ok && len(c.entries) >= c.maxSize {
		c.evictLocked()
	}
	c.entries[key] = &cacheEntry{result: result, lastUsed: now, expiresAt: now.Add(ttl)}
}

func (c *parseCache) evictLocked() {
	var oldest string
	var oldestAt time.Time
	for k, e := range c.entries {
		if oldest == "" || e.lastUsed.Before(oldestAt) {
			oldest, oldestAt = k, e.lastUsed
		}
	}
	delete(c.entries, oldest)
}

func (c *parseCache) sweep() {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := time.Now()
	for k, e := range c.entries {
		if now.After(e.expiresAt) {
			delete(c.entries, k)
		}
	}
}

// startSweeper removes expired entries every interval until ctx is done.
// Only one sweeper runs at a time.
func (c *parseCache) startSweeper(ctx context.Context, interval time.Duration) {
	if interval <= 0 || !c.sweeping.CompareAndSwap(false, true) {
		return
	}
	go func() {
		defer c.sweeping.Store(false)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				c.sweep()
			}
		}
	}()
}

func (c *parseCache) reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]*cacheEntry)
}

func (c *parseCache) size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// cacheKey returns the cache key and TTL for s, or an empty key when s
// cannot be cached.
func (s specInput) cacheKey() (string, time.Duration) {
	switch {
	case s.File != "":
		abs, err := filepath.Abs(s.File)
		if err != nil {
			return "", 0
		}
		info, err := os.Stat(abs)
		if err != nil {
			return "", 0
		}
		return fmt.Sprintf("file:%s:%d", abs, info.ModTime().UnixNano()), cfg.CacheFileTTL
	case s.URL != "":
		return "url:" + s.URL, cfg.CacheURLTTL
	case s.Content != "":
		sum := sha256.Sum256([]byte(s.Content))
		return "content:" + hex.EncodeToString(sum[:]), cfg.CacheContentTTL
	}
	return "", 0
}

// set returns how many of the input fields are populated.
func (s specInput) set() int {
	n := 0
	for _, v := range []string{s.File, s.URL, s.Content} {
		if v != "" {
			n++
		}
	}
	return n
}

// parserOptions maps s to parser options.
func (s specInput) parserOptions() []parser.Option {
	switch {
	case s.File != "":
		return []parser.Option{parser.WithFilePath(s.File)}
	case s.URL != "":
		opts := []parser.Option{parser.WithFilePath(s.URL)}
		if !cfg.AllowPrivateIPs {
			opts = append(opts, parser.WithHTTPClient(newSafeHTTPClient()))
		}
		return opts
	default:
		return []parser.Option{
			parser.WithReader(strings.NewReader(s.Content)),
			parser.WithSourceName(inlineSourceName),
		}
	}
}

// resolve parses the document s names, consulting the session cache first.
func (s specInput) resolve() (*parser.ParseResult, error) {
	if n := s.set(); n != 1 {
		return nil, fmt.Errorf("exactly one of file, url, or content must be provided (got %d)", n)
	}
	if s.Content != "" && int64(len(s.Content)) > cfg.MaxInlineSize {
		return nil, fmt.Errorf("inline content size %d bytes exceeds maximum %d bytes; use file input instead, or set SPECDIFF_MAX_INLINE_SIZE",
			len(s.Content), cfg.MaxInlineSize)
	}

	var key string
	var ttl time.Duration
	if cfg.CacheEnabled {
		key, ttl = s.cacheKey()
	}
	if key != "" {
		if cached := specCache.get(key); cached != nil {
			return cached, nil
		}
	}

	result, err := parser.ParseWithOptions(s.parserOptions()...)
	if err != nil {
		return nil, err
	}
	if key != "" {
		specCache.put(key, result, ttl)
	}
	return result, nil
}
