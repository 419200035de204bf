package commands

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v4"

	"github.com/erraggy/specdiff/parser"
)

const (
	petstoreV1 = "../../../testdata/petstore-v1.yaml"
	petstoreV2 = "../../../testdata/petstore-v2.yaml"
)

// captureOutput redirects Stdout and Stderr for the duration of a test.
func captureOutput(t *testing.T) (stdout, stderr *bytes.Buffer) {
	t.Helper()
	prevOut, prevErr := Stdout, Stderr
	stdout, stderr = &bytes.Buffer{}, &bytes.Buffer{}
	Stdout, Stderr = stdout, stderr
	t.Cleanup(func() { Stdout, Stderr = prevOut, prevErr })
	return stdout, stderr
}

func TestSetupDiffFlags(t *testing.T) {
	fs, flags := SetupDiffFlags()

	t.Run("default values", func(t *testing.T) {
		assert.Equal(t, "text", flags.Format)
		assert.Empty(t, flags.Policy)
		assert.Zero(t, flags.Concurrency)
		assert.False(t, flags.Verbose)
	})

	t.Run("parse flags", func(t *testing.T) {
		args := []string{"--format", "json", "--policy", "p.yaml", "--concurrency", "2", "--verbose", "v1.yaml", "v2.yaml"}
		require.NoError(t, fs.Parse(args))
		assert.Equal(t, "json", flags.Format)
		assert.Equal(t, "p.yaml", flags.Policy)
		assert.Equal(t, 2, flags.Concurrency)
		assert.True(t, flags.Verbose)
		assert.Equal(t, 2, fs.NArg())
	})
}

func TestHandleDiff_ArgumentErrors(t *testing.T) {
	captureOutput(t)
	tests := []struct {
		name string
		args []string
	}{
		{"no args", []string{}},
		{"one arg", []string{"v1.yaml"}},
		{"three args", []string{"a", "b", "c"}},
		{"invalid format", []string{"--format", "xml", petstoreV1, petstoreV2}},
		{"negative concurrency", []string{"--concurrency", "-1", petstoreV1, petstoreV2}},
		{"unknown flag", []string{"--nope", petstoreV1, petstoreV2}},
		{"missing policy", []string{"--policy", "missing.yaml", petstoreV1, petstoreV2}},
		{"missing file", []string{petstoreV1, "missing.yaml"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := HandleDiff(tt.args)
			require.Error(t, err)
			assert.NotErrorIs(t, err, ErrBreakingDifferences)
		})
	}
}

func TestHandleDiff_Help(t *testing.T) {
	_, stderr := captureOutput(t)
	require.NoError(t, HandleDiff([]string{"--help"}))
	assert.Contains(t, stderr.String(), "Usage: specdiff diff")
	assert.Contains(t, stderr.String(), "Exit Status:")
}

func TestHandleDiff_TextBreaking(t *testing.T) {
	stdout, _ := captureOutput(t)

	err := HandleDiff([]string{petstoreV1, petstoreV2})
	require.ErrorIs(t, err, ErrBreakingDifferences)

	out := stdout.String()
	assert.Contains(t, out, "Breaking differences (4):")
	assert.Contains(t, out, "method.remove paths./pets/{petId}.delete")
	assert.Contains(t, out, "Summary: 13 difference(s)")
}

func TestHandleDiff_Identical(t *testing.T) {
	stdout, _ := captureOutput(t)
	require.NoError(t, HandleDiff([]string{petstoreV1, petstoreV1}))
	assert.Contains(t, stdout.String(), "No differences found")
}

func TestHandleDiff_JSON(t *testing.T) {
	stdout, _ := captureOutput(t)

	err := HandleDiff([]string{"--format", "json", "--concurrency", "1", petstoreV1, petstoreV2})
	require.ErrorIs(t, err, ErrBreakingDifferences)

	var report map[string]any
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &report))
	summary := report["summary"].(map[string]any)
	assert.Equal(t, float64(13), summary["total"])
	assert.Equal(t, float64(4), summary["breaking"])
}

func TestHandleDiff_YAML(t *testing.T) {
	stdout, _ := captureOutput(t)

	err := HandleDiff([]string{"--format", "yaml", petstoreV1, petstoreV2})
	require.ErrorIs(t, err, ErrBreakingDifferences)

	var report map[string]any
	require.NoError(t, yaml.Unmarshal(stdout.Bytes(), &report))
	assert.Contains(t, report, "result")
}

func TestHandleDiff_OutputFile(t *testing.T) {
	stdout, _ := captureOutput(t)
	out := filepath.Join(t.TempDir(), "report.json")

	err := HandleDiff([]string{"--format", "json", "--output", out, petstoreV1, petstoreV2})
	require.ErrorIs(t, err, ErrBreakingDifferences)
	assert.Empty(t, stdout.String())

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	var report map[string]any
	require.NoError(t, json.Unmarshal(data, &report))
	assert.Equal(t, petstoreV1, report["sourcePath"])
}

func TestHandleDiff_OutputFileError(t *testing.T) {
	captureOutput(t)
	out := filepath.Join(t.TempDir(), "missing", "report.txt")
	err := HandleDiff([]string{"--output", out, petstoreV1, petstoreV2})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "creating report file")
}

func TestHandleDiff_PolicyDowngradesBreaking(t *testing.T) {
	stdout, _ := captureOutput(t)
	policy := filepath.Join(t.TempDir(), "policy.yaml")
	require.NoError(t, os.WriteFile(policy, []byte("version: \"1\"\nrules:\n  \"*\": non-breaking\n"), 0o644))

	require.NoError(t, HandleDiff([]string{"--policy", policy, petstoreV1, petstoreV2}))
	assert.NotContains(t, stdout.String(), "Breaking differences")
}

func TestHandleDiff_Verbose(t *testing.T) {
	_, stderr := captureOutput(t)
	require.NoError(t, HandleDiff([]string{"--verbose", petstoreV1, petstoreV1}))
	assert.Contains(t, stderr.String(), "level=DEBUG")
}

func TestNewLogger(t *testing.T) {
	assert.IsType(t, parser.NopLogger{}, newLogger(false))
	assert.IsType(t, &parser.SlogAdapter{}, newLogger(true))
}

func TestHandleMCP_Arguments(t *testing.T) {
	_, stderr := captureOutput(t)
	require.NoError(t, HandleMCP([]string{"--help"}))
	assert.Contains(t, stderr.String(), "SPECDIFF_POLICY_FILE")

	require.Error(t, HandleMCP([]string{"extra"}))
}

func TestHandleVersion(t *testing.T) {
	stdout, _ := captureOutput(t)
	HandleVersion()
	assert.Contains(t, stdout.String(), "specdiff v")
	assert.Contains(t, stdout.String(), "go version:")
}
