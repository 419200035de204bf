package differ

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/erraggy/specdiff/parser"
)

const (
	petstoreV1 = "../testdata/petstore-v1.yaml"
	petstoreV2 = "../testdata/petstore-v2.yaml"
)

// mustSpec parses an inline YAML document.
func mustSpec(t *testing.T, doc string) *parser.Spec {
	t.Helper()
	res, err := parser.New().ParseBytes([]byte(doc))
	require.NoError(t, err)
	return res.Spec
}

// mustParseFile parses a testdata document.
func mustParseFile(t *testing.T, path string) *parser.ParseResult {
	t.Helper()
	res, err := parser.Parse(path)
	require.NoError(t, err)
	return res
}

// find runs the default differ over two documents.
func find(t *testing.T, source, destination *parser.Spec) []Difference {
	t.Helper()
	diffs, err := New().FindDifferences(context.Background(), source, destination)
	require.NoError(t, err)
	return diffs
}

func codes(diffs []Difference) []string {
	out := make([]string, len(diffs))
	for i, d := range diffs {
		out[i] = d.Code
	}
	return out
}
