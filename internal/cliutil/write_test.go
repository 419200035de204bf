package cliutil

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWritef(t *testing.T) {
	tests := []struct {
		name   string
		format string
		args   []any
		want   string
	}{
		{"single arg", "Hello, %s!", []any{"World"}, "Hello, World!"},
		{"no args", "Simple message", nil, "Simple message"},
		{"multiple args", "%s: %d items, %v active", []any{"Status", 42, true}, "Status: 42 items, true active"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			Writef(&buf, tt.format, tt.args...)
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestWritef_WriteErrorDoesNotPanic(t *testing.T) {
	assert.NotPanics(t, func() { Writef(failingWriter{}, "x") })
}

func TestSection(t *testing.T) {
	var buf bytes.Buffer
	Section(&buf, "Examples", "specdiff diff a.yaml b.yaml", "specdiff version")
	assert.Equal(t, "Examples:\n  specdiff diff a.yaml b.yaml\n  specdiff version\n\n", buf.String())
}

func TestPrintError(t *testing.T) {
	var buf bytes.Buffer
	PrintError(&buf, errors.New("boom"))
	assert.Equal(t, "Error: boom\n", buf.String())
}
