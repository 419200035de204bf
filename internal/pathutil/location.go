// Copyright 2024 Erraggy
// SPDX-License-Identifier: MIT

package pathutil

import "fmt"

// JoinPath renders an original document location as a dotted path.
// String segments are joined with "." and integer segments are rendered as
// array indices, so ["paths", "/pets", "get", "parameters", 0] becomes
// "paths./pets.get.parameters[0]".
func JoinPath(segments []any) string {
	p := Get()
	defer Put(p)
	for _, seg := range segments {
		switch v := seg.(type) {
		case int:
			p.PushIndex(v)
		case string:
			p.Push(v)
		default:
			p.Push(fmt.Sprint(v))
		}
	}
	return p.String()
}

// Append returns a copy of base with segments appended. The copy keeps
// sibling locations built from the same base from sharing a backing array.
func Append(base []any, segments ...any) []any {
	out := make([]any, 0, len(base)+len(segments))
	out = append(out, base...)
	return append(out, segments...)
}
