package parser

import (
	"fmt"
	"sort"
	"strings"

	"github.com/erraggy/specdiff/internal/httputil"
	"github.com/erraggy/specdiff/internal/pathutil"
)

// builder turns a resolved document into the entity tree.
type builder struct {
	format   string
	log      Logger
	warnings []string
}

func (b *builder) warn(msg string, location Path) {
	loc := pathutil.JoinPath(location)
	b.warnings = append(b.warnings, fmt.Sprintf("%s at %s", msg, loc))
	b.log.Warn(msg, "location", loc)
}

func (b *builder) build(root map[string]any, version string) *Spec {
	spec := &Spec{
		Format:      b.format,
		Version:     version,
		Paths:       make(map[string]*PathItem),
		XProperties: make(map[string]*Property[any]),
	}

	for k, v := range root {
		if isExtension(k) {
			spec.XProperties[k] = &Property[any]{Value: v, OriginalPath: Path{k}}
		}
	}
	if info, ok := root["info"].(map[string]any); ok {
		for k, v := range info {
			spec.XProperties["info."+k] = &Property[any]{Value: v, OriginalPath: Path{"info", k}}
		}
	}

	paths, _ := root["paths"].(map[string]any)
	for p, raw := range paths {
		if isExtension(p) {
			continue
		}
		item, ok := raw.(map[string]any)
		if !ok {
			b.warn("path item is not an object", Path{"paths", p})
			continue
		}
		spec.Paths[p] = b.buildPathItem(p, item)
	}
	return spec
}

func (b *builder) buildPathItem(p string, item map[string]any) *PathItem {
	base := Path{"paths", p}
	pi := &PathItem{
		Operations:    make(map[string]*Operation),
		OriginalValue: &Property[any]{Value: item, OriginalPath: base},
	}
	shared, _ := item["parameters"].([]any)
	for _, method := range HTTPMethods {
		raw, ok := lookupFold(item, method)
		if !ok {
			continue
		}
		op, ok := raw.(map[string]any)
		if !ok {
			b.warn("operation is not an object", pathutil.Append(base, method))
			continue
		}
		pi.Operations[method] = b.buildOperation(base, shared, method, op)
	}
	return pi
}

// lookupFold finds a method key regardless of case.
func lookupFold(item map[string]any, method string) (any, bool) {
	if v, ok := item[method]; ok {
		return v, true
	}
	for k, v := range item {
		if strings.EqualFold(k, method) {
			return v, true
		}
	}
	return nil, false
}

func (b *builder) buildOperation(base Path, shared []any, method string, op map[string]any) *Operation {
	opPath := pathutil.Append(base, method)
	o := &Operation{
		Parameters:    make(map[string]*Parameter),
		Responses:     make(map[string]*Response),
		OriginalValue: &Property[any]{Value: op, OriginalPath: opPath},
	}

	// Path-item parameters first so operation parameters override them.
	b.addParameters(o, shared, pathutil.Append(base, "parameters"))
	own, _ := op["parameters"].([]any)
	b.addParameters(o, own, pathutil.Append(opPath, "parameters"))

	if b.format == FormatOpenAPI3 {
		if rb, ok := op["requestBody"].(map[string]any); ok {
			rbPath := pathutil.Append(opPath, "requestBody")
			o.RequestBody = &RequestBody{
				JSONSchema:    contentSchema(rb, rbPath),
				OriginalValue: &Property[any]{Value: rb, OriginalPath: rbPath},
			}
		}
	}

	responses, _ := op["responses"].(map[string]any)
	for code, raw := range responses {
		if isExtension(code) {
			continue
		}
		resp, ok := raw.(map[string]any)
		if !ok {
			b.warn("response is not an object", pathutil.Append(opPath, "responses", code))
			continue
		}
		if !httputil.ValidateStatusCode(code) {
			b.warn("unexpected response status code", pathutil.Append(opPath, "responses", code))
		}
		o.Responses[code] = b.buildResponse(pathutil.Append(opPath, "responses", code), resp)
	}
	return o
}

func (b *builder) addParameters(o *Operation, params []any, base Path) {
	for i, raw := range params {
		loc := pathutil.Append(base, i)
		param, ok := raw.(map[string]any)
		if !ok {
			b.warn("parameter is not an object", loc)
			continue
		}
		name, _ := param["name"].(string)
		in, _ := param["in"].(string)
		if name == "" || in == "" {
			b.warn("parameter without name or location skipped", loc)
			continue
		}

		if in == "body" && b.format == FormatSwagger2 {
			schema := propertySchema(param["schema"], pathutil.Append(loc, "schema"))
			o.RequestBody = &RequestBody{
				JSONSchema:    schema,
				OriginalValue: &Property[any]{Value: param, OriginalPath: loc},
			}
			continue
		}

		required, _ := param["required"].(bool)
		p := &Parameter{
			Name:          name,
			In:            in,
			Required:      required || in == "path",
			OriginalValue: &Property[any]{Value: param, OriginalPath: loc},
		}
		if b.format == FormatSwagger2 {
			p.JSONSchema = &Property[Schema]{Value: swaggerParameterSchema(param), OriginalPath: loc}
		} else if s := propertySchema(param["schema"], pathutil.Append(loc, "schema")); s != nil {
			p.JSONSchema = s
		} else {
			p.JSONSchema = contentSchema(param, loc)
		}
		o.Parameters[p.Key()] = p
	}
}

func (b *builder) buildResponse(loc Path, resp map[string]any) *Response {
	r := &Response{
		Headers:       make(map[string]*Property[any]),
		OriginalValue: &Property[any]{Value: resp, OriginalPath: loc},
	}
	headers, _ := resp["headers"].(map[string]any)
	for name, h := range headers {
		r.Headers[name] = &Property[any]{Value: h, OriginalPath: pathutil.Append(loc, "headers", name)}
	}
	if b.format == FormatSwagger2 {
		r.JSONSchema = propertySchema(resp["schema"], pathutil.Append(loc, "schema"))
	} else {
		r.JSONSchema = contentSchema(resp, loc)
	}
	return r
}

// contentSchema picks the body schema from an OpenAPI 3 "content" map.
func contentSchema(holder map[string]any, loc Path) *Property[Schema] {
	content, _ := holder["content"].(map[string]any)
	mediaType, ok := selectMediaType(content)
	if !ok {
		return nil
	}
	media, _ := content[mediaType].(map[string]any)
	return propertySchema(media["schema"], pathutil.Append(loc, "content", mediaType, "schema"))
}

// selectMediaType prefers application/json, then the first media type
// containing "json" in sorted order, then the first media type.
func selectMediaType(content map[string]any) (string, bool) {
	if len(content) == 0 {
		return "", false
	}
	if _, ok := content["application/json"]; ok {
		return "application/json", true
	}
	types := make([]string, 0, len(content))
	for mt := range content {
		types = append(types, mt)
	}
	sort.Strings(types)
	for _, mt := range types {
		if strings.Contains(strings.ToLower(mt), "json") {
			return mt, true
		}
	}
	return types[0], true
}

// propertySchema wraps a schema value, or returns nil when v is not a schema.
func propertySchema(v any, loc Path) *Property[Schema] {
	s, ok := toSchema(v)
	if !ok {
		return nil
	}
	return &Property[Schema]{Value: s, OriginalPath: loc}
}

// toSchema accepts object schemas and normalizes boolean schemas.
func toSchema(v any) (Schema, bool) {
	switch t := v.(type) {
	case map[string]any:
		return t, true
	case bool:
		if t {
			return Schema{}, true
		}
		return Schema{"not": Schema{}}, true
	default:
		return nil, false
	}
}

// swaggerSchemaKeywords are the Swagger 2.0 non-body parameter fields that
// carry JSON Schema meaning.
var swaggerSchemaKeywords = []string{
	"type", "format", "enum", "default",
	"maximum", "exclusiveMaximum", "minimum", "exclusiveMinimum", "multipleOf",
	"maxLength", "minLength", "pattern",
	"maxItems", "minItems", "uniqueItems",
}

// swaggerParameterSchema assembles a JSON Schema from a Swagger 2.0
// parameter's type keywords. "items" is converted recursively.
func swaggerParameterSchema(param map[string]any) Schema {
	s := Schema{}
	for _, kw := range swaggerSchemaKeywords {
		if v, ok := param[kw]; ok {
			s[kw] = v
		}
	}
	if items, ok := param["items"].(map[string]any); ok {
		s["items"] = swaggerParameterSchema(items)
	}
	if t, _ := param["type"].(string); t == "file" {
		s["type"] = "string"
		s["format"] = "binary"
	}
	return s
}

func isExtension(key string) bool {
	return strings.HasPrefix(key, "x-")
}
