package parser

import (
	"strings"

	"github.com/erraggy/specdiff/internal/httputil"
)

// Document formats recognised by the parser.
const (
	// FormatSwagger2 identifies a Swagger / OpenAPI 2.0 document.
	FormatSwagger2 = "swagger2"
	// FormatOpenAPI3 identifies an OpenAPI 3.x document.
	FormatOpenAPI3 = "openapi3"
)

// HTTPMethods lists the operation keys of a path item, lower-cased.
var HTTPMethods = httputil.Methods

// Path is a location in the original document: string segments are object
// keys and int segments are array indices.
type Path []any

// Schema is a JSON Schema object.
type Schema = map[string]any

// Property is a value paired with where it was found in the original document.
type Property[T any] struct {
	Value        T
	OriginalPath Path
}

// Spec is the parsed form of one API description.
type Spec struct {
	// Format is FormatSwagger2 or FormatOpenAPI3.
	Format string
	// Version is the declared "swagger" or "openapi" version.
	Version string
	// Paths is keyed by the raw path template as written in the document.
	Paths map[string]*PathItem
	// XProperties holds root "x-" extensions keyed by name and info fields
	// keyed as "info.<field>".
	XProperties map[string]*Property[any]
}

// PathItem is one entry under "paths".
type PathItem struct {
	// Operations is keyed by lower-cased HTTP method.
	Operations    map[string]*Operation
	OriginalValue *Property[any]
}

// Operation is one HTTP method of a path item.
type Operation struct {
	// Parameters is keyed "<in>:<name>" and includes path-item level
	// parameters the operation does not override. Header names are
	// lower-cased.
	Parameters map[string]*Parameter
	// RequestBody is nil when the operation declares none.
	RequestBody *RequestBody
	// Responses is keyed by status code ("200", "default", "4XX").
	Responses     map[string]*Response
	OriginalValue *Property[any]
}

// Parameter is a non-body request parameter.
type Parameter struct {
	Name          string
	In            string
	Required      bool
	JSONSchema    *Property[Schema]
	OriginalValue *Property[any]
}

// Key returns the "<in>:<name>" key the parameter is stored under.
func (p *Parameter) Key() string {
	return ParameterKey(p.In, p.Name)
}

// ParameterKey builds the key parameters are stored under in
// Operation.Parameters. Header names are case-insensitive and lower-cased.
func ParameterKey(in, name string) string {
	if in == "header" {
		name = strings.ToLower(name)
	}
	return in + ":" + name
}

// Response is one status code entry of an operation.
type Response struct {
	// Headers is keyed by header name as written in the document.
	Headers map[string]*Property[any]
	// JSONSchema is nil when the response has no body.
	JSONSchema    *Property[Schema]
	OriginalValue *Property[any]
}

// RequestBody is the payload of an operation.
type RequestBody struct {
	JSONSchema    *Property[Schema]
	OriginalValue *Property[any]
}
