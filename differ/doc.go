// Package differ finds the differences between two versions of an API
// description.
//
// The differ walks two [parser.Spec] trees level by level: top-level
// properties, paths, methods, parameters, request bodies, responses, response
// headers and response bodies. Every finding is a [Difference] tagged with an
// entity from a fixed taxonomy ("path", "method", "response.header", ...)
// and an action ("add" or "remove"), so a policy can later decide which
// findings break clients. The differ itself performs no classification; see
// package classifier.
//
// # Matching
//
// At each level keys are matched by membership: keys only in the destination
// are additions, keys only in the source are removals and common keys are
// compared one level deeper. Output is ordered additions first, then
// removals, then common keys, each in lexicographic order, so the same pair
// of documents always yields the same list.
//
// Path templates are compared by shape: "/pets/{petId}" and "/pets/{id}"
// both normalize to "/pets/{param0}" and match. Path parameters are renamed
// the same way. Response header names are compared case-insensitively.
//
// # Schemas
//
// Request bodies, response bodies and parameters are compared through a
// [schemadiff.Oracle]. Each scope yields at most one "add" carrying the added
// schema fragment and one "remove" carrying the removed fragment. Schema
// comparisons run concurrently after the walk; their results are placed back
// in walk order.
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
//	for _, d := range result.Differences {
//		fmt.Println(d)
//	}
package differ
