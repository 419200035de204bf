package schemadiff

import "context"

// Schema is a JSON Schema object.
type Schema = map[string]any

// Result is the outcome of comparing two schemas.
type Result struct {
	AdditionsFound bool
	RemovalsFound  bool
	// AddedSchema holds the fragments present only in the destination,
	// shaped like the destination schema.
	AddedSchema Schema
	// RemovedSchema holds the fragments present only in the source,
	// shaped like the source schema.
	RemovedSchema Schema
	// Both fragments are copies; editing them leaves the inputs untouched.
}

// Oracle compares two JSON Schemas.
type Oracle interface {
	DiffSchemas(ctx context.Context, source, destination Schema) (*Result, error)
}

// OracleFunc adapts an ordinary function to the Oracle interface.
type OracleFunc func(ctx context.Context, source, destination Schema) (*Result, error)

// DiffSchemas calls f(ctx, source, destination).
func (f OracleFunc) DiffSchemas(ctx context.Context, source, destination Schema) (*Result, error) {
	return f(ctx, source, destination)
}
