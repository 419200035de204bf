// Package classifier assigns a severity to each difference found by the
// differ.
//
// A [Policy] maps difference codes ("path.remove", "response.header.add") to
// one of three severities: breaking, non-breaking or unclassified. Exact
// codes are looked up first, then glob rules such as "info.*.add" (matched
// with path.Match, longest pattern first). Differences tagged
// "unclassified" and codes no rule covers are left unclassified.
//
// [DefaultPolicy] returns the built-in policy. Custom policies are loaded
// from YAML, TOML or JSON files with [LoadPolicy]:
//
//	version: "1"
//	rules:
//	  path.remove: breaking
//	  "info.*.add": non-breaking
//
// Typical use:
//
//	diffs, _ := differ.New().FindDifferences(ctx, before, after)
//	result := classifier.Classify(diffs, classifier.DefaultPolicy())
//	if result.BreakingDifferencesFound {
//		os.Exit(1)
//	}
package classifier
