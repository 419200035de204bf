package parser

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"go.yaml.in/yaml/v4"

	"github.com/erraggy/specdiff/oaserrors"
)

// decodeDocument decodes YAML or JSON into a normalized document root.
func decodeDocument(data []byte, source string) (map[string]any, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, &oaserrors.ParseError{Path: source, Message: "failed to decode document", Cause: err}
	}
	if raw == nil {
		return nil, &oaserrors.ParseError{Path: source, Message: "document is empty"}
	}
	root, ok := normalizeValue(raw).(map[string]any)
	if !ok {
		return nil, &oaserrors.ParseError{
			Path:    source,
			Message: fmt.Sprintf("document root must be a mapping, got %T", raw),
		}
	}
	return root, nil
}

// normalizeValue converts decoded YAML into JSON-compatible values: mapping
// keys become strings and timestamps become RFC 3339 strings.
func normalizeValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[k] = normalizeValue(val)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[keyString(k)] = normalizeValue(val)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = normalizeValue(val)
		}
		return out
	case time.Time:
		return t.Format(time.RFC3339)
	default:
		return v
	}
}

// keyString renders a non-string mapping key such as the int 200 in
// "responses: {200: ...}".
func keyString(k any) string {
	switch t := k.(type) {
	case string:
		return t
	case nil:
		return "null"
	default:
		return fmt.Sprint(t)
	}
}

var errUnknownFormat = errors.New(`unable to detect format: expected "swagger: 2.0" or "openapi: 3.x"`)

// detectFormat reads the declared version from the document root.
func detectFormat(root map[string]any) (format, version string, err error) {
	if v, ok := root["swagger"]; ok {
		version = versionString(v)
		if version == "2" || strings.HasPrefix(version, "2.") {
			return FormatSwagger2, version, nil
		}
		return "", "", fmt.Errorf("unsupported swagger version %q", version)
	}
	if v, ok := root["openapi"]; ok {
		version = versionString(v)
		if version == "3" || strings.HasPrefix(version, "3.") {
			return FormatOpenAPI3, version, nil
		}
		return "", "", fmt.Errorf("unsupported openapi version %q", version)
	}
	return "", "", errUnknownFormat
}

// versionString renders a version that YAML may have decoded as a number,
// so an unquoted "swagger: 2.0" reads back as "2.0".
func versionString(v any) string {
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case int:
		return strconv.Itoa(t) + ".0"
	case float64:
		if t == math.Trunc(t) {
			return strconv.FormatFloat(t, 'f', 1, 64)
		}
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}
