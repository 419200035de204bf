// Package specdiff computes classifiable differences between two versions of
// an OpenAPI (Swagger 2.0 or OpenAPI 3.x) description, so that tooling can
// decide whether an API change is safe to release.
//
// # Overview
//
// The library is split into small packages that can be used on their own:
//
//   - parser: Load a document from a file, URL or bytes and build the entity
//     tree (paths, operations, parameters, bodies, headers, extensions)
//   - differ: Walk two entity trees and emit one taxonomy-tagged Difference
//     per addition or removal
//   - schemadiff: Compare two JSON Schemas and report added and removed
//     schema fragments
//   - classifier: Map each difference to breaking, non-breaking or
//     unclassified using a versioned, replaceable policy
//   - reporter: Render classified results as text, JSON or YAML
//
// # Quick Start
//
//	result, err := differ.DiffWithOptions(ctx,
//		differ.WithSourceFilePath("api-v1.yaml"),
//		differ.WithDestinationFilePath("api-v2.yaml"),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	classified := classifier.Classify(result.Differences, classifier.DefaultPolicy())
//	if classified.BreakingDifferencesFound {
//		_ = reporter.Render(os.Stdout, classified, reporter.FormatText)
//		os.Exit(1)
//	}
//
// # Path Matching
//
// Templated paths are matched by position, not by parameter name, so
// "/users/{id}" in one version and "/users/{userId}" in the next are the
// same route. Reported locations always use the spelling of the original
// document.
//
// # Command Line
//
// The specdiff command wraps the same pipeline:
//
//	specdiff diff api-v1.yaml api-v2.yaml
//	specdiff diff --format json --policy policy.yaml old.yaml new.yaml
//	specdiff mcp
package specdiff
