// Copyright 2024 Erraggy
// SPDX-License-Identifier: MIT

package pathutil

import (
	"strconv"
	"strings"
)

// canonicalParamPrefix names normalized template parameters: param0, param1, ...
const canonicalParamPrefix = "param"

// NormalizeTemplate rewrites every {name} placeholder in a path template to a
// position-derived name, assigned left to right. Repeated references to the
// same original name inside one path share a canonical name, so
// "/users/{id}/posts/{postId}" and "/users/{userId}/posts/{post_id}" both
// become "/users/{param0}/posts/{param1}".
//
// The returned map translates original parameter names to their canonical
// names. It is nil when the path has no placeholders, in which case the path
// is returned unchanged.
func NormalizeTemplate(path string) (string, map[string]string) {
	if !strings.Contains(path, "{") {
		return path, nil
	}

	names := make(map[string]string)
	segments := strings.Split(path, "}")
	last := len(segments) - 1

	var b strings.Builder
	b.Grow(len(path))
	for i, segment := range segments {
		literal, param, found := strings.Cut(segment, "{")
		b.WriteString(literal)
		if !found {
			// A "}" without a matching "{" is kept as literal text.
			if i < last {
				b.WriteByte('}')
			}
			continue
		}
		if i == last {
			// An unterminated "{" is kept as literal text.
			b.WriteByte('{')
			b.WriteString(param)
			continue
		}
		canonical, ok := names[param]
		if !ok {
			canonical = canonicalParamPrefix + strconv.Itoa(len(names))
			names[param] = canonical
		}
		b.WriteByte('{')
		b.WriteString(canonical)
		b.WriteByte('}')
	}
	if len(names) == 0 {
		return path, nil
	}
	return b.String(), names
}
