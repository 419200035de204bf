// Package options provides shared utilities for option validation across packages.
package options

import "github.com/erraggy/specdiff/oaserrors"

// ValidateSingleInputSource ensures exactly one input source is specified for
// the named input (for example "source" or "destination").
// sources is a variadic list of booleans indicating whether each source is set.
func ValidateSingleInputSource(input, hint string, sources ...bool) error {
	sourceCount := 0
	for _, hasSource := range sources {
		if hasSource {
			sourceCount++
		}
	}

	if sourceCount == 0 {
		return &oaserrors.ConfigError{Option: input, Message: "must specify an input (" + hint + ")"}
	}
	if sourceCount > 1 {
		return &oaserrors.ConfigError{Option: input, Message: "must specify exactly one input"}
	}

	return nil
}
