package mcpserver

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const petstoreV2 = "../../testdata/petstore-v2.yaml"

const diffBaseSpec = `openapi: "3.0.0"
info:
  title: Test API
  version: "1.0.0"
paths:
  /pets:
    get:
      responses:
        "200":
          description: OK
`

const diffRevisedSpec = `openapi: "3.0.0"
info:
  title: Test API
  version: "1.0.0"
paths:
  /pets:
    get:
      responses:
        "200":
          description: OK
    post:
      responses:
        "201":
          description: Created
`

func callDiff(t *testing.T, input diffInput) (*mcp.CallToolResult, diffOutput) {
	t.Helper()
	res, out, err := handleDiff(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	return res, out
}

func TestDiffTool_Petstore(t *testing.T) {
	specCache.reset()
	res, out := callDiff(t, diffInput{
		Source:      specInput{File: petstoreV1},
		Destination: specInput{File: petstoreV2},
	})
	require.Nil(t, res)

	assert.Equal(t, 13, out.TotalCount)
	assert.Equal(t, 4, out.BreakingCount)
	assert.Equal(t, 5, out.NonBreakingCount)
	assert.Equal(t, 4, out.UnclassifiedCount)
	assert.True(t, out.BreakingFound)
	assert.Len(t, out.Breaking, 4)
	assert.Len(t, out.NonBreaking, 5)
	assert.Len(t, out.Unclassified, 4)
	assert.Equal(t, "13 difference(s): 4 breaking, 5 non-breaking, 4 unclassified", out.Summary)

	codes := make([]string, 0, len(out.Breaking))
	for _, e := range out.Breaking {
		assert.NotEmpty(t, e.Location)
		codes = append(codes, e.Code)
	}
	assert.Contains(t, codes, "method.remove")
	assert.Contains(t, codes, "request.parameter.required.add")
}

func TestDiffTool_BreakingOnly(t *testing.T) {
	specCache.reset()
	_, out := callDiff(t, diffInput{
		Source:       specInput{File: petstoreV1},
		Destination:  specInput{File: petstoreV2},
		BreakingOnly: true,
	})

	assert.Equal(t, 13, out.TotalCount)
	assert.Len(t, out.Breaking, 4)
	assert.Nil(t, out.NonBreaking)
	assert.Nil(t, out.Unclassified)
}

func TestDiffTool_AddedOperation(t *testing.T) {
	_, out := callDiff(t, diffInput{
		Source:      specInput{Content: diffBaseSpec},
		Destination: specInput{Content: diffRevisedSpec},
	})

	require.Len(t, out.NonBreaking, 1)
	assert.Equal(t, "method.add", out.NonBreaking[0].Code)
	assert.Equal(t, "paths./pets.post", out.NonBreaking[0].Location)
	assert.False(t, out.BreakingFound)
}

func TestDiffTool_NoDifferences(t *testing.T) {
	_, out := callDiff(t, diffInput{
		Source:      specInput{Content: diffBaseSpec},
		Destination: specInput{Content: diffBaseSpec},
	})

	assert.Zero(t, out.TotalCount)
	assert.Equal(t, "no differences found", out.Summary)
}

func TestDiffTool_PolicyFromEnvironment(t *testing.T) {
	path := filepath.Join(t.TempDir(), "policy.toml")
	require.NoError(t, os.WriteFile(path, []byte("version = \"1\"\n\n[rules]\n\"method.add\" = \"breaking\"\n"), 0o644))
	c := *cfg
	c.PolicyFile = path
	withConfig(t, &c)

	_, out := callDiff(t, diffInput{
		Source:      specInput{Content: diffBaseSpec},
		Destination: specInput{Content: diffRevisedSpec},
	})
	assert.True(t, out.BreakingFound)
	assert.Equal(t, 1, out.BreakingCount)
}

func TestDiffTool_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input diffInput
	}{
		{"missing source", diffInput{Destination: specInput{Content: diffBaseSpec}}},
		{"missing destination", diffInput{Source: specInput{Content: diffBaseSpec}}},
		{"invalid document", diffInput{Source: specInput{Content: "just: text"}, Destination: specInput{Content: diffBaseSpec}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, _ := callDiff(t, tt.input)
			require.NotNil(t, res)
			assert.True(t, res.IsError)
		})
	}
}

func TestDiffTool_BadPolicyFile(t *testing.T) {
	c := *cfg
	c.PolicyFile = filepath.Join(t.TempDir(), "missing.yaml")
	withConfig(t, &c)

	res, _ := callDiff(t, diffInput{
		Source:      specInput{Content: diffBaseSpec},
		Destination: specInput{Content: diffBaseSpec},
	})
	require.NotNil(t, res)
	assert.True(t, res.IsError)
}
