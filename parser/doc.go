// Package parser loads OpenAPI 2.0 and 3.x documents and builds the entity
// tree the differ compares.
//
// Documents may be YAML or JSON, read from a local file, standard input ("-")
// or an http(s) URL. gzip-compressed input is detected by its magic bytes and
// decompressed transparently.
//
// # Quick Start
//
//	result, err := parser.ParseWithOptions(
//		parser.WithFilePath("openapi.yaml"),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(result.Format, len(result.Spec.Paths))
//
// Or create a reusable Parser instance:
//
//	p := parser.New()
//	p.MaxFileSize = 10 << 20
//	before, _ := p.Parse("v1.yaml")
//	after, _ := p.Parse("https://example.com/v2.yaml")
//
// # Entity Tree
//
// A [Spec] holds the document's paths keyed by their raw template and the
// top-level properties outside paths ([Spec.XProperties]): root vendor
// extensions keyed by name and every info field keyed as "info.<field>".
// Each entity records the value it was built from together with its location
// in the original document (a [Path]), so differences can point back at the
// exact source of a change.
//
// Swagger 2.0 documents are lifted into the same shape as OpenAPI 3.x: the
// "in: body" parameter becomes the request body and non-body parameters get a
// JSON Schema assembled from their type keywords.
//
// # References
//
// Local references ("#/...") are resolved before the tree is built. When a
// reference points back at one of its own ancestors the inner "$ref" is kept
// as-is, so recursive schemas terminate. External references are left in
// place and reported through the configured [Logger]. A local reference whose
// target does not exist fails the parse with an [oaserrors.ReferenceError].
//
// # Errors
//
// Read and decode failures are reported as [oaserrors.ParseError]; inputs
// larger than [Parser.MaxFileSize] as [oaserrors.ResourceLimitError].
package parser
