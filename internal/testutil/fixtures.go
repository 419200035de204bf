// Package testutil provides test utilities and fixtures for unit tests.
//
// Documents are plain decoded maps so that any package, the parser
// included, can use them without an import cycle.
package testutil

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/gzip"
	"go.yaml.in/yaml/v4"
)

// NewSimpleOAS2Document creates a minimal Swagger 2.0 document for testing.
// Contains only required fields: swagger, info, host, basePath, schemes, paths.
func NewSimpleOAS2Document() map[string]any {
	return map[string]any{
		"swagger": "2.0",
		"info": map[string]any{
			"title":   "Test API",
			"version": "1.0.0",
		},
		"host":     "api.example.com",
		"basePath": "/v1",
		"schemes":  []any{"https"},
		"paths":    map[string]any{},
	}
}

// NewDetailedOAS2Document creates a Swagger 2.0 document with a path
// parameter, a body parameter, a referenced definition and a response header.
func NewDetailedOAS2Document() map[string]any {
	doc := NewSimpleOAS2Document()
	doc["definitions"] = map[string]any{
		"Pet": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"id":   map[string]any{"type": "integer"},
				"name": map[string]any{"type": "string"},
			},
		},
	}
	doc["paths"] = map[string]any{
		"/pets/{petId}": map[string]any{
			"parameters": []any{
				map[string]any{"name": "petId", "in": "path", "required": true, "type": "integer", "format": "int64"},
			},
			"get": map[string]any{
				"operationId": "getPet",
				"responses": map[string]any{
					"200": map[string]any{
						"description": "A pet",
						"schema":      map[string]any{"$ref": "#/definitions/Pet"},
						"headers": map[string]any{
							"X-Rate-Limit": map[string]any{"type": "integer"},
						},
					},
				},
			},
			"put": map[string]any{
				"operationId": "updatePet",
				"parameters": []any{
					map[string]any{"name": "body", "in": "body", "required": true, "schema": map[string]any{"$ref": "#/definitions/Pet"}},
				},
				"responses": map[string]any{
					"204": map[string]any{"description": "Updated"},
				},
			},
		},
	}
	return doc
}

// NewSimpleOAS3Document creates a minimal OpenAPI 3.x document for testing.
// Contains only required fields: openapi, info, paths, servers.
func NewSimpleOAS3Document() map[string]any {
	return map[string]any{
		"openapi": "3.0.3",
		"info": map[string]any{
			"title":   "Test API",
			"version": "1.0.0",
		},
		"servers": []any{
			map[string]any{"url": "https://api.example.com/v1", "description": "Production server"},
		},
		"paths": map[string]any{},
	}
}

// NewDetailedOAS3Document creates an OpenAPI 3.x document with parameters,
// a request body, a referenced component schema and a response header.
func NewDetailedOAS3Document() map[string]any {
	doc := NewSimpleOAS3Document()
	doc["components"] = map[string]any{
		"schemas": map[string]any{
			"Pet": map[string]any{
				"type":     "object",
				"required": []any{"id", "name"},
				"properties": map[string]any{
					"id":   map[string]any{"type": "integer", "format": "int64"},
					"name": map[string]any{"type": "string"},
				},
			},
		},
	}
	doc["paths"] = map[string]any{
		"/pets": map[string]any{
			"get": map[string]any{
				"operationId": "listPets",
				"parameters": []any{
					map[string]any{"name": "limit", "in": "query", "schema": map[string]any{"type": "integer"}},
				},
				"responses": map[string]any{
					"200": map[string]any{
						"description": "A list of pets",
						"headers": map[string]any{
							"X-Next": map[string]any{"schema": map[string]any{"type": "string"}},
						},
						"content": map[string]any{
							"application/json": map[string]any{
								"schema": map[string]any{
									"type":  "array",
									"items": map[string]any{"$ref": "#/components/schemas/Pet"},
								},
							},
						},
					},
				},
			},
			"post": map[string]any{
				"operationId": "createPet",
				"requestBody": map[string]any{
					"content": map[string]any{
						"application/json": map[string]any{
							"schema": map[string]any{"$ref": "#/components/schemas/Pet"},
						},
					},
				},
				"responses": map[string]any{
					"201": map[string]any{"description": "Created"},
				},
			},
		},
	}
	return doc
}

// WriteTempYAML marshals a document to YAML and writes it to a temporary file.
// Returns the path to the temporary file.
// The file is automatically cleaned up when the test completes (via t.TempDir).
func WriteTempYAML(t *testing.T, doc any) string {
	t.Helper()

	data, err := yaml.Marshal(doc)
	if err != nil {
		t.Fatalf("Failed to marshal document to YAML: %v", err)
	}

	return writeTemp(t, "test.yaml", data)
}

// WriteTempJSON marshals a document to JSON and writes it to a temporary file.
// Returns the path to the temporary file.
// The file is automatically cleaned up when the test completes (via t.TempDir).
func WriteTempJSON(t *testing.T, doc any) string {
	t.Helper()

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		t.Fatalf("Failed to marshal document to JSON: %v", err)
	}

	return writeTemp(t, "test.json", data)
}

// WriteTempGzip marshals a document to YAML, gzip-compresses it and writes it
// to a temporary file.
func WriteTempGzip(t *testing.T, doc any) string {
	t.Helper()

	return writeTemp(t, "test.yaml.gz", GzipYAML(t, doc))
}

// GzipYAML marshals a document to YAML and returns it gzip-compressed.
func GzipYAML(t *testing.T, doc any) []byte {
	t.Helper()

	data, err := yaml.Marshal(doc)
	if err != nil {
		t.Fatalf("Failed to marshal document to YAML: %v", err)
	}

	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	if _, err := zw.Write(data); err != nil {
		t.Fatalf("Failed to gzip document: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("Failed to finish gzip stream: %v", err)
	}
	return buf.Bytes()
}

// MustYAML marshals a document to YAML bytes.
func MustYAML(t *testing.T, doc any) []byte {
	t.Helper()

	data, err := yaml.Marshal(doc)
	if err != nil {
		t.Fatalf("Failed to marshal document to YAML: %v", err)
	}
	return data
}

func writeTemp(t *testing.T, name string, data []byte) string {
	t.Helper()

	tmpFile := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(tmpFile, data, 0600); err != nil {
		t.Fatalf("Failed to write temporary file: %v", err)
	}
	return tmpFile
}
