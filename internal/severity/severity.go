// Package severity provides the severity buckets that a change policy assigns
// to each difference between two API descriptions.
//
// The buckets are ordered from least to most severe:
// Unclassified < NonBreaking < Breaking
package severity

import "fmt"

// Severity is the classification bucket assigned to a difference.
type Severity int

const (
	// SeverityUnclassified indicates the policy has no opinion about the change.
	// It is the zero value so unknown changes are never silently treated as safe.
	SeverityUnclassified Severity = iota

	// SeverityNonBreaking indicates existing consumers keep working.
	SeverityNonBreaking

	// SeverityBreaking indicates existing consumers may fail after the change.
	SeverityBreaking
)

// String returns the string representation of the severity level.
func (s Severity) String() string {
	switch s {
	case SeverityUnclassified:
		return "unclassified"
	case SeverityNonBreaking:
		return "non-breaking"
	case SeverityBreaking:
		return "breaking"
	default:
		return "unknown"
	}
}

// Parse converts a policy string into a Severity.
func Parse(s string) (Severity, error) {
	switch s {
	case "unclassified":
		return SeverityUnclassified, nil
	case "non-breaking":
		return SeverityNonBreaking, nil
	case "breaking":
		return SeverityBreaking, nil
	default:
		return SeverityUnclassified, fmt.Errorf("severity: unknown level %q", s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s Severity) MarshalText() ([]byte, error) {
	str := s.String()
	if str == "unknown" {
		return nil, fmt.Errorf("severity: cannot marshal level %d", int(s))
	}
	return []byte(str), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Severity) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
