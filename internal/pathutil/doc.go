// Copyright 2024 Erraggy
// SPDX-License-Identifier: MIT

// Package pathutil renders and normalizes document locations.
//
// Locations are kept as segment slices while a document is walked and are
// only rendered when a difference or warning is reported:
//
//	pathutil.JoinPath([]any{"paths", "/pets", "get", "parameters", 0})
//	// "paths./pets.get.parameters[0]"
//
// [PathBuilder] does the rendering; [Get] and [Put] pool builders.
//
// [NormalizeTemplate] rewrites path template parameters to positional names
// so "/pets/{id}" and "/pets/{petId}" compare as the same path.
package pathutil
