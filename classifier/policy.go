package classifier

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"go.yaml.in/yaml/v4"

	"github.com/erraggy/specdiff/internal/severity"
	"github.com/erraggy/specdiff/oaserrors"
)

// Severity is the classification bucket assigned to a difference
type Severity = severity.Severity

const (
	// SeverityUnclassified indicates the policy has no opinion about the change
	SeverityUnclassified = severity.SeverityUnclassified
	// SeverityNonBreaking indicates existing consumers keep working
	SeverityNonBreaking = severity.SeverityNonBreaking
	// SeverityBreaking indicates existing consumers may fail after the change
	SeverityBreaking = severity.SeverityBreaking
)

// PolicyVersion is the only policy file version understood.
const PolicyVersion = "1"

// PolicyFormat is the encoding of a policy file.
type PolicyFormat string

const (
	// PolicyFormatYAML is a YAML policy (.yaml, .yml)
	PolicyFormatYAML PolicyFormat = "yaml"
	// PolicyFormatTOML is a TOML policy (.toml)
	PolicyFormatTOML PolicyFormat = "toml"
	// PolicyFormatJSON is a JSON policy (.json)
	PolicyFormatJSON PolicyFormat = "json"
)

//go:embed default_policy.yaml
var defaultPolicyYAML []byte

// Policy maps difference codes, or glob patterns over them, to severities.
type Policy struct {
	Version string
	Rules   map[string]Severity
}

// rawPolicy is the on-disk shape shared by every policy format.
type rawPolicy struct {
	Version string            `yaml:"version" toml:"version" json:"version"`
	Rules   map[string]string `yaml:"rules" toml:"rules" json:"rules"`
}

// DefaultPolicy returns a fresh copy of the built-in policy.
func DefaultPolicy() *Policy {
	p, err := ParsePolicy(defaultPolicyYAML, PolicyFormatYAML)
	if err != nil {
		panic(fmt.Sprintf("classifier: invalid embedded default policy: %v", err))
	}
	return p
}

// LoadPolicy reads a policy file, choosing the format by extension.
func LoadPolicy(policyPath string) (*Policy, error) {
	format, err := formatFromPath(policyPath)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(policyPath) //nolint:gosec // path is user-provided input (CLI)
	if err != nil {
		return nil, &oaserrors.ConfigError{Option: "policy", Value: policyPath, Message: "failed to read policy file", Cause: err}
	}
	p, err := ParsePolicy(data, format)
	if err != nil {
		return nil, fmt.Errorf("classifier: %s: %w", policyPath, err)
	}
	return p, nil
}

func formatFromPath(policyPath string) (PolicyFormat, error) {
	switch strings.ToLower(filepath.Ext(policyPath)) {
	case ".yaml", ".yml":
		return PolicyFormatYAML, nil
	case ".toml":
		return PolicyFormatTOML, nil
	case ".json":
		return PolicyFormatJSON, nil
	default:
		return "", &oaserrors.ConfigError{
			Option:  "policy",
			Value:   policyPath,
			Message: "unsupported policy file extension (use .yaml, .yml, .toml or .json)",
		}
	}
}

// ParsePolicy decodes and validates a policy document.
func ParsePolicy(data []byte, format PolicyFormat) (*Policy, error) {
	var raw rawPolicy
	var err error
	switch format {
	case PolicyFormatYAML:
		err = yaml.Unmarshal(data, &raw)
	case PolicyFormatTOML:
		_, err = toml.Decode(string(data), &raw)
	case PolicyFormatJSON:
		err = json.Unmarshal(data, &raw)
	default:
		return nil, &oaserrors.ConfigError{Option: "policy format", Value: string(format), Message: "unsupported format"}
	}
	if err != nil {
		return nil, &oaserrors.ConfigError{Option: "policy", Message: "failed to decode " + string(format), Cause: err}
	}

	if raw.Version != PolicyVersion {
		return nil, &oaserrors.ConfigError{Option: "version", Value: raw.Version, Message: "unsupported policy version (want " + PolicyVersion + ")"}
	}

	p := &Policy{Version: raw.Version, Rules: make(map[string]Severity, len(raw.Rules))}
	for code, level := range raw.Rules {
		s, err := severity.Parse(level)
		if err != nil {
			return nil, &oaserrors.ConfigError{Option: "rules." + code, Value: level, Message: "unknown severity", Cause: err}
		}
		if isGlob(code) {
			if _, err := path.Match(code, ""); err != nil {
				return nil, &oaserrors.ConfigError{Option: "rules." + code, Message: "invalid glob pattern", Cause: err}
			}
		}
		p.Rules[code] = s
	}
	return p, nil
}

func isGlob(code string) bool {
	return strings.ContainsAny(code, "*?[")
}

// matcher resolves codes against one policy.
type matcher struct {
	exact map[string]Severity
	// globs is ordered longest pattern first, then lexicographically.
	globs []string
	rules map[string]Severity
}

func newMatcher(p *Policy) *matcher {
	m := &matcher{exact: make(map[string]Severity), rules: map[string]Severity{}}
	if p == nil {
		return m
	}
	m.rules = p.Rules
	for code, s := range p.Rules {
		if isGlob(code) {
			m.globs = append(m.globs, code)
		} else {
			m.exact[code] = s
		}
	}
	sort.Slice(m.globs, func(i, j int) bool {
		if len(m.globs[i]) != len(m.globs[j]) {
			return len(m.globs[i]) > len(m.globs[j])
		}
		return m.globs[i] < m.globs[j]
	})
	return m
}

func (m *matcher) severity(code string) Severity {
	if s, ok := m.exact[code]; ok {
		return s
	}
	for _, pattern := range m.globs {
		if ok, _ := path.Match(pattern, code); ok {
			return m.rules[pattern]
		}
	}
	return SeverityUnclassified
}

// Severity returns the severity the policy assigns to a difference code.
func (p *Policy) Severity(code string) Severity {
	return newMatcher(p).severity(code)
}
