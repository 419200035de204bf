package parser

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/specdiff/internal/testutil"
	"github.com/erraggy/specdiff/oaserrors"
)

func TestParseBytes_OAS3(t *testing.T) {
	doc := testutil.NewDetailedOAS3Document()
	doc["x-owner"] = "pets-team"

	res, err := New().ParseBytes(testutil.MustYAML(t, doc))
	require.NoError(t, err)

	assert.Equal(t, "ParseBytes.yaml", res.SourcePath)
	assert.Equal(t, FormatOpenAPI3, res.Format)
	assert.Equal(t, "3.0.3", res.Version)

	spec := res.Spec
	require.Contains(t, spec.Paths, "/pets")
	assert.Equal(t, Path{"paths", "/pets"}, spec.Paths["/pets"].OriginalValue.OriginalPath)

	require.Contains(t, spec.XProperties, "info.title")
	assert.Equal(t, "Test API", spec.XProperties["info.title"].Value)
	assert.Equal(t, Path{"info", "title"}, spec.XProperties["info.title"].OriginalPath)
	require.Contains(t, spec.XProperties, "x-owner")
	assert.Equal(t, Path{"x-owner"}, spec.XProperties["x-owner"].OriginalPath)
	assert.NotContains(t, spec.XProperties, "servers")

	get := spec.Paths["/pets"].Operations["get"]
	require.NotNil(t, get)
	require.Contains(t, get.Parameters, "query:limit")
	limit := get.Parameters["query:limit"]
	assert.False(t, limit.Required)
	assert.Equal(t, Schema{"type": "integer"}, limit.JSONSchema.Value)
	assert.Equal(t, Path{"paths", "/pets", "get", "parameters", 0, "schema"}, limit.JSONSchema.OriginalPath)

	ok := get.Responses["200"]
	require.NotNil(t, ok)
	assert.Contains(t, ok.Headers, "X-Next")
	assert.Equal(t, Path{"paths", "/pets", "get", "responses", "200", "headers", "X-Next"}, ok.Headers["X-Next"].OriginalPath)
	items := ok.JSONSchema.Value["items"].(map[string]any)
	assert.Equal(t, "object", items["type"], "component reference should be inlined")

	post := spec.Paths["/pets"].Operations["post"]
	require.NotNil(t, post.RequestBody)
	assert.Equal(t, Path{"paths", "/pets", "post", "requestBody", "content", "application/json", "schema"},
		post.RequestBody.JSONSchema.OriginalPath)
	assert.Equal(t, "object", post.RequestBody.JSONSchema.Value["type"])
	assert.Nil(t, post.Responses["201"].JSONSchema)
}

func TestParseBytes_Swagger2(t *testing.T) {
	res, err := New().ParseBytes(testutil.MustYAML(t, testutil.NewDetailedOAS2Document()))
	require.NoError(t, err)
	assert.Equal(t, FormatSwagger2, res.Format)

	item := res.Spec.Paths["/pets/{petId}"]
	require.NotNil(t, item)

	get := item.Operations["get"]
	require.Contains(t, get.Parameters, "path:petId", "path-item parameters are merged into operations")
	petID := get.Parameters["path:petId"]
	assert.True(t, petID.Required)
	assert.Equal(t, Schema{"type": "integer", "format": "int64"}, petID.JSONSchema.Value)
	assert.Equal(t, Path{"paths", "/pets/{petId}", "parameters", 0}, petID.JSONSchema.OriginalPath)
	assert.Nil(t, get.RequestBody)
	assert.Equal(t, "object", get.Responses["200"].JSONSchema.Value["type"])
	assert.Contains(t, get.Responses["200"].Headers, "X-Rate-Limit")

	put := item.Operations["put"]
	require.NotNil(t, put.RequestBody, "body parameter becomes the request body")
	assert.NotContains(t, put.Parameters, "body:body")
	assert.Equal(t, Path{"paths", "/pets/{petId}", "put", "parameters", 0, "schema"}, put.RequestBody.JSONSchema.OriginalPath)
	assert.Equal(t, "object", put.RequestBody.JSONSchema.Value["type"])
}

func TestParseBytes_YAMLScalars(t *testing.T) {
	src := `
swagger: 2.0
info:
  title: Scalars
  version: 1
paths:
  /a:
    GET:
      responses:
        200:
          description: ok
`
	res, err := New().ParseBytes([]byte(src))
	require.NoError(t, err)
	assert.Equal(t, FormatSwagger2, res.Format)
	assert.Equal(t, "2.0", res.Version)

	op := res.Spec.Paths["/a"].Operations["get"]
	require.NotNil(t, op, "method keys are matched case-insensitively")
	assert.Contains(t, op.Responses, "200", "integer status codes become string keys")
}

func TestParseBytes_Parameters(t *testing.T) {
	src := `
openapi: 3.1.0
info: {title: Params, version: "1"}
paths:
  /items/{id}:
    parameters:
      - {name: id, in: path, schema: {type: string}}
      - {name: verbose, in: query, schema: {type: boolean}}
    get:
      parameters:
        - {name: verbose, in: query, required: true, schema: {type: integer}}
        - {name: X-Trace-ID, in: header, schema: {type: string}}
        - name: filter
          in: query
          content:
            application/json:
              schema: {type: object}
        - {in: query}
      responses:
        default: {description: ok}
`
	res, err := New().ParseBytes([]byte(src))
	require.NoError(t, err)

	op := res.Spec.Paths["/items/{id}"].Operations["get"]
	require.NotNil(t, op)
	assert.Len(t, op.Parameters, 4)

	assert.True(t, op.Parameters["path:id"].Required, "path parameters are always required")

	verbose := op.Parameters["query:verbose"]
	assert.True(t, verbose.Required, "operation parameter overrides path-item parameter")
	assert.Equal(t, Schema{"type": "integer"}, verbose.JSONSchema.Value)

	trace := op.Parameters["header:x-trace-id"]
	require.NotNil(t, trace, "header parameter keys are lower-cased")
	assert.Equal(t, "X-Trace-ID", trace.Name)

	filter := op.Parameters["query:filter"]
	require.NotNil(t, filter.JSONSchema)
	assert.Equal(t, Path{"paths", "/items/{id}", "get", "parameters", 2, "content", "application/json", "schema"},
		filter.JSONSchema.OriginalPath)

	assert.NotEmpty(t, res.Warnings, "nameless parameter is reported")
}

func TestParseBytes_Errors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		sentinel error
	}{
		{"invalid yaml", "openapi: [", oaserrors.ErrParse},
		{"empty document", "", oaserrors.ErrParse},
		{"scalar root", "just a string", oaserrors.ErrParse},
		{"unknown format", "info: {title: x}", oaserrors.ErrParse},
		{"unsupported version", "openapi: 4.0.0", oaserrors.ErrParse},
		{"missing reference", `
openapi: 3.0.0
paths:
  /a:
    get:
      responses:
        "200":
          content:
            application/json:
              schema: {$ref: "#/components/schemas/Missing"}
`, oaserrors.ErrReference},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New().ParseBytes([]byte(tt.input))
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.sentinel)
		})
	}
}

func TestParseBytes_SizeLimit(t *testing.T) {
	p := &Parser{MaxFileSize: 16}
	_, err := p.ParseBytes([]byte(strings.Repeat("a", 17)))

	var limitErr *oaserrors.ResourceLimitError
	require.ErrorAs(t, err, &limitErr)
	assert.Equal(t, int64(16), limitErr.Limit)
	assert.Equal(t, int64(17), limitErr.Actual)
}

func TestParseBytes_Gzip(t *testing.T) {
	res, err := New().ParseBytes(testutil.GzipYAML(t, testutil.NewDetailedOAS3Document()))
	require.NoError(t, err)
	assert.Equal(t, FormatOpenAPI3, res.Format)
	assert.Contains(t, res.Spec.Paths, "/pets")
}

func TestParseBytes_GzipSizeLimit(t *testing.T) {
	data := testutil.GzipYAML(t, map[string]any{"openapi": "3.0.0", "info": map[string]any{"description": strings.Repeat("x", 4096)}})
	p := &Parser{MaxFileSize: int64(len(data)) + 10}

	_, err := p.ParseBytes(data)
	assert.ErrorIs(t, err, oaserrors.ErrResourceLimit, "decompressed size is limited too")
}

func TestParse_File(t *testing.T) {
	for name, path := range map[string]string{
		"yaml": testutil.WriteTempYAML(t, testutil.NewDetailedOAS3Document()),
		"json": testutil.WriteTempJSON(t, testutil.NewDetailedOAS3Document()),
		"gzip": testutil.WriteTempGzip(t, testutil.NewDetailedOAS3Document()),
	} {
		t.Run(name, func(t *testing.T) {
			res, err := Parse(path)
			require.NoError(t, err)
			assert.Equal(t, path, res.SourcePath)
			assert.Contains(t, res.Spec.Paths, "/pets")
			assert.Positive(t, res.SourceSize)
		})
	}
}

func TestParse_FileErrors(t *testing.T) {
	_, err := Parse("/nonexistent/openapi.yaml")
	assert.ErrorIs(t, err, oaserrors.ErrParse)

	_, err = Parse(t.TempDir())
	assert.ErrorIs(t, err, oaserrors.ErrParse)

	p := &Parser{MaxFileSize: 8}
	_, err = p.Parse(testutil.WriteTempYAML(t, testutil.NewSimpleOAS3Document()))
	assert.ErrorIs(t, err, oaserrors.ErrResourceLimit)
}

func TestParse_Stdin(t *testing.T) {
	p := New()
	p.stdin = strings.NewReader(string(testutil.MustYAML(t, testutil.NewSimpleOAS2Document())))

	res, err := p.Parse("-")
	require.NoError(t, err)
	assert.Equal(t, "-", res.SourcePath)
	assert.Equal(t, FormatSwagger2, res.Format)
}

func TestParse_URL(t *testing.T) {
	body := testutil.MustYAML(t, testutil.NewDetailedOAS3Document())
	var gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/openapi.yaml" {
			http.NotFound(w, r)
			return
		}
		gotUA = r.Header.Get("User-Agent")
		_, _ = w.Write(body)
	}))
	defer srv.Close()

	p := &Parser{UserAgent: "specdiff-test/1.0", HTTPClient: srv.Client()}
	res, err := p.Parse(srv.URL + "/openapi.yaml")
	require.NoError(t, err)
	assert.Equal(t, "specdiff-test/1.0", gotUA)
	assert.Contains(t, res.Spec.Paths, "/pets")

	_, err = p.Parse(srv.URL + "/missing.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP 404")
}

func TestParseReader(t *testing.T) {
	res, err := New().ParseReader(strings.NewReader(`{"openapi": "3.0.0", "info": {"title": "json"}, "paths": {}}`))
	require.NoError(t, err)
	assert.Equal(t, "ParseReader.json", res.SourcePath)
	assert.Equal(t, "json", res.Spec.XProperties["info.title"].Value)
}

func TestParseSpec(t *testing.T) {
	spec, err := ParseSpec(testutil.WriteTempYAML(t, testutil.NewDetailedOAS2Document()))
	require.NoError(t, err)
	assert.Equal(t, FormatSwagger2, spec.Format)

	_, err = ParseSpec("/nonexistent.yaml")
	assert.Error(t, err)
}

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		size int64
		want string
	}{
		{0, "0 B"},
		{1023, "1023 B"},
		{1024, "1.0 KiB"},
		{1536, "1.5 KiB"},
		{5 << 20, "5.0 MiB"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatBytes(tt.size))
	}
}
