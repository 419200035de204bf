// Package httputil holds the HTTP vocabulary of OpenAPI documents: operation
// methods and response status code keys.
package httputil

import "strconv"

// Operation keys of a path item.
const (
	MethodGet     = "get"
	MethodPut     = "put"
	MethodPost    = "post"
	MethodDelete  = "delete"
	MethodOptions = "options"
	MethodHead    = "head"
	MethodPatch   = "patch"
	MethodTrace   = "trace"
)

// Methods lists every operation key in document order.
var Methods = []string{
	MethodGet, MethodPut, MethodPost, MethodDelete,
	MethodOptions, MethodHead, MethodPatch, MethodTrace,
}

const (
	minStatusCode = 100
	maxStatusCode = 599
	wildcardChar  = 'X'
)

// ValidateStatusCode reports whether code is a valid response key:
// "default", a wildcard range such as "2XX", or a number from 100 to 599.
func ValidateStatusCode(code string) bool {
	if code == "default" {
		return true
	}
	if len(code) != 3 {
		return false
	}
	if code[1] == wildcardChar && code[2] == wildcardChar {
		return code[0] >= '1' && code[0] <= '5'
	}
	for i := range 3 {
		if code[i] < '0' || code[i] > '9' {
			return false
		}
	}
	n, _ := strconv.Atoi(code)
	return n >= minStatusCode && n <= maxStatusCode
}
