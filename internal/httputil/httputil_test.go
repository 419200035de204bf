package httputil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateStatusCode(t *testing.T) {
	tests := []struct {
		code  string
		valid bool
	}{
		{"200", true},
		{"404", true},
		{"100", true},
		{"599", true},
		{"default", true},
		{"2XX", true},
		{"5XX", true},
		{"099", false},
		{"600", false},
		{"6XX", false},
		{"2xx", false},
		{"20", false},
		{"2000", false},
		{"abc", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.valid, ValidateStatusCode(tt.code))
		})
	}
}

func TestMethods(t *testing.T) {
	assert.Len(t, Methods, 8)
	assert.Equal(t, MethodGet, Methods[0])
	assert.Equal(t, MethodTrace, Methods[7])
}
