package classifier

import "github.com/erraggy/specdiff/differ"

// Result buckets differences by severity. Each bucket keeps the input order.
type Result struct {
	BreakingDifferences      []differ.Difference `json:"breakingDifferences" yaml:"breakingDifferences"`
	NonBreakingDifferences   []differ.Difference `json:"nonBreakingDifferences" yaml:"nonBreakingDifferences"`
	UnclassifiedDifferences  []differ.Difference `json:"unclassifiedDifferences" yaml:"unclassifiedDifferences"`
	BreakingDifferencesFound bool                `json:"breakingDifferencesFound" yaml:"breakingDifferencesFound"`
}

// Count returns the total number of differences classified.
func (r *Result) Count() int {
	return len(r.BreakingDifferences) + len(r.NonBreakingDifferences) + len(r.UnclassifiedDifferences)
}

// Classify assigns each difference a severity under policy. A nil policy
// leaves everything unclassified.
func Classify(diffs []differ.Difference, policy *Policy) *Result {
	m := newMatcher(policy)
	res := &Result{
		BreakingDifferences:     []differ.Difference{},
		NonBreakingDifferences:  []differ.Difference{},
		UnclassifiedDifferences: []differ.Difference{},
	}
	for _, d := range diffs {
		s := SeverityUnclassified
		if d.Entity != differ.EntityUnclassified {
			s = m.severity(d.Code)
		}
		switch s {
		case SeverityBreaking:
			res.BreakingDifferences = append(res.BreakingDifferences, d)
		case SeverityNonBreaking:
			res.NonBreakingDifferences = append(res.NonBreakingDifferences, d)
		default:
			res.UnclassifiedDifferences = append(res.UnclassifiedDifferences, d)
		}
	}
	res.BreakingDifferencesFound = len(res.BreakingDifferences) > 0
	return res
}
