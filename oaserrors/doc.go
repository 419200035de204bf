// Package oaserrors provides structured error types for the specdiff library.
//
// Import path: github.com/erraggy/specdiff/oaserrors
//
// This package enables programmatic error handling via [errors.Is] and [errors.As],
// allowing callers to distinguish loading problems from comparison failures.
//
// # Error Types
//
//   - [ParseError]: reading or decoding a specification document failed
//   - [ReferenceError]: a local $ref could not be resolved
//   - [ResourceLimitError]: an input exceeded a configured limit
//   - [ConfigError]: invalid options or policy data
//   - [SchemaDiffError]: the schema-diff oracle could not compare two schemas
//
// # Sentinel Errors
//
// Each error type has a corresponding sentinel error for use with errors.Is():
//
//   - [ErrParse]: Matches any [ParseError]
//   - [ErrReference]: Matches any [ReferenceError]
//   - [ErrResourceLimit]: Matches any [ResourceLimitError]
//   - [ErrConfig]: Matches any [ConfigError]
//   - [ErrSchemaDiff]: Matches any [SchemaDiffError]
//
// # Usage Examples
//
//	diffs, err := d.FindDifferences(ctx, source, destination)
//	if errors.Is(err, oaserrors.ErrSchemaDiff) {
//	    // the comparison was aborted by a schema failure
//	}
//
//	var refErr *oaserrors.ReferenceError
//	if errors.As(err, &refErr) {
//	    fmt.Printf("Failed to resolve ref: %s\n", refErr.Ref)
//	}
//
// # Error Chaining
//
// Error types with a Cause field support chaining via Unwrap(), so the root
// cause stays reachable through the standard error chain:
//
//	var parseErr *oaserrors.ParseError
//	if errors.As(err, &parseErr) && errors.Is(parseErr.Cause, os.ErrNotExist) {
//	    // The document file doesn't exist
//	}
package oaserrors
