package oaserrors

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Sentinels matched by errors.Is against the typed errors below.
var (
	// ErrParse matches any *ParseError.
	ErrParse = errors.New("parse error")
	// ErrReference matches any *ReferenceError.
	ErrReference = errors.New("reference error")
	// ErrResourceLimit matches any *ResourceLimitError.
	ErrResourceLimit = errors.New("resource limit exceeded")
	// ErrConfig matches any *ConfigError.
	ErrConfig = errors.New("configuration error")
	// ErrSchemaDiff matches any *SchemaDiffError.
	ErrSchemaDiff = errors.New("schema diff error")
)

// describe renders a sentinel followed by each non-empty clause. Clauses
// carry their own leading separator.
func describe(sentinel error, clauses ...string) string {
	var b strings.Builder
	b.WriteString(sentinel.Error())
	for _, c := range clauses {
		b.WriteString(c)
	}
	return b.String()
}

// clause returns sep+v, or "" when v is empty.
func clause(sep, v string) string {
	if v == "" {
		return ""
	}
	return sep + v
}

func causeClause(err error) string {
	if err == nil {
		return ""
	}
	return ": " + err.Error()
}

// ParseError is a failure to read or decode a document.
type ParseError struct {
	// Path is the file path, URL or source name
	Path string
	// Line is the 1-based line of the failure, 0 when unknown
	Line int
	// Message describes the failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

func (e *ParseError) Error() string {
	line := ""
	if e.Line > 0 {
		line = " at line " + strconv.Itoa(e.Line)
	}
	return describe(ErrParse, clause(" in ", e.Path), line, clause(": ", e.Message), causeClause(e.Cause))
}

func (e *ParseError) Unwrap() error { return e.Cause }

func (e *ParseError) Is(target error) bool { return target == ErrParse }

// ReferenceError is a local $ref whose target does not exist.
type ReferenceError struct {
	// Ref is the unresolved reference, e.g. "#/components/schemas/Pet"
	Ref string
	// Location is the dotted document path holding the $ref
	Location string
	// Message adds context
	Message string
}

func (e *ReferenceError) Error() string {
	return describe(ErrReference, clause(": ", e.Ref), clause(" at ", e.Location), clause(": ", e.Message))
}

func (e *ReferenceError) Is(target error) bool { return target == ErrReference }

// ResourceLimitError is an input that exceeded a configured limit.
type ResourceLimitError struct {
	// ResourceType names the limit, e.g. "file_size"
	ResourceType string
	// Limit is the configured maximum
	Limit int64
	// Actual is the observed value, 0 when unknown
	Actual int64
	// Message adds context, usually the source name
	Message string
}

func (e *ResourceLimitError) Error() string {
	limits := ""
	if e.Limit > 0 {
		limits = " (limit: " + strconv.FormatInt(e.Limit, 10)
		if e.Actual > 0 {
			limits += ", actual: " + strconv.FormatInt(e.Actual, 10)
		}
		limits += ")"
	}
	return describe(ErrResourceLimit, clause(": ", e.ResourceType), limits, clause(": ", e.Message))
}

func (e *ResourceLimitError) Is(target error) bool { return target == ErrResourceLimit }

// ConfigError is an invalid option, missing input or bad policy file.
type ConfigError struct {
	// Option names the offending option or input
	Option string
	// Value is the rejected value, nil when not applicable
	Value any
	// Message describes the problem
	Message string
	// Cause is the underlying error, if any
	Cause error
}

func (e *ConfigError) Error() string {
	value := ""
	if e.Value != nil {
		value = " (value: " + fmt.Sprint(e.Value) + ")"
	}
	return describe(ErrConfig, clause(" for ", e.Option), value, clause(": ", e.Message), causeClause(e.Cause))
}

func (e *ConfigError) Unwrap() error { return e.Cause }

func (e *ConfigError) Is(target error) bool { return target == ErrConfig }

// SchemaDiffError is a failure inside the schema-diff oracle.
type SchemaDiffError struct {
	// Pointer is the JSON pointer being compared, if known
	Pointer string
	// Message describes the failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

func (e *SchemaDiffError) Error() string {
	return describe(ErrSchemaDiff, clause(" at ", e.Pointer), clause(": ", e.Message), causeClause(e.Cause))
}

func (e *SchemaDiffError) Unwrap() error { return e.Cause }

func (e *SchemaDiffError) Is(target error) bool { return target == ErrSchemaDiff }
