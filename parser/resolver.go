package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/erraggy/specdiff/internal/pathutil"
	"github.com/erraggy/specdiff/oaserrors"
)

const (
	// MaxRefDepth is the maximum number of references expanded inside one
	// another. Deeper chains fail with a ResourceLimitError.
	MaxRefDepth = 100

	// DefaultMaxExpandedNodes is the expansion budget used when
	// Parser.MaxExpandedNodes is 0. Shared expansions count once per use.
	DefaultMaxExpandedNodes int64 = 1 << 22
)

// expansion is a resolved reference target and its size in nodes.
type expansion struct {
	value any
	nodes int64
}

// resolver inlines local references across one document. Each acyclic
// target is expanded once and the result is shared by every use, so the
// resolved document must be treated as read-only.
type resolver struct {
	root     map[string]any
	log      Logger
	maxNodes int64
	nodes    int64
	// cycles counts circular references kept so far; an expansion that
	// kept one depends on the stack and is not shared.
	cycles   int
	expanded map[string]expansion
	warned   map[string]bool
	warnings []string
}

func newResolver(root map[string]any, log Logger) *resolver {
	return &resolver{
		root:     root,
		log:      log,
		maxNodes: DefaultMaxExpandedNodes,
		expanded: make(map[string]expansion),
		warned:   make(map[string]bool),
	}
}

// count charges n nodes against the expansion budget.
func (r *resolver) count(n int64, loc []any) error {
	r.nodes += n
	if r.nodes > r.maxNodes {
		return &oaserrors.ResourceLimitError{
			ResourceType: "expanded_nodes",
			Limit:        r.maxNodes,
			Actual:       r.nodes,
			Message:      "reference expansion too large at " + pathutil.JoinPath(loc),
		}
	}
	return nil
}

// resolveDocument returns a copy of the root with every resolvable local
// reference replaced by its target.
func (r *resolver) resolveDocument() (map[string]any, error) {
	out, err := r.resolve(r.root, nil, make(map[string]bool))
	if err != nil {
		return nil, err
	}
	return out.(map[string]any), nil
}

// resolve walks v. stack holds the references currently being expanded; a
// reference already on it is a cycle and is left as a bare "$ref".
func (r *resolver) resolve(v any, loc []any, stack map[string]bool) (any, error) {
	switch t := v.(type) {
	case map[string]any:
		if ref, ok := t["$ref"].(string); ok {
			return r.resolveRef(ref, loc, stack)
		}
		if err := r.count(1, loc); err != nil {
			return nil, err
		}
		out := make(map[string]any, len(t))
		for k, val := range t {
			resolved, err := r.resolve(val, append(loc, k), stack)
			if err != nil {
				return nil, err
			}
			out[k] = resolved
		}
		return out, nil
	case []any:
		if err := r.count(1, loc); err != nil {
			return nil, err
		}
		out := make([]any, len(t))
		for i, val := range t {
			resolved, err := r.resolve(val, append(loc, i), stack)
			if err != nil {
				return nil, err
			}
			out[i] = resolved
		}
		return out, nil
	default:
		if err := r.count(1, loc); err != nil {
			return nil, err
		}
		return v, nil
	}
}

func (r *resolver) resolveRef(ref string, loc []any, stack map[string]bool) (any, error) {
	if !strings.HasPrefix(ref, "#") {
		if !r.warned[ref] {
			r.warned[ref] = true
			msg := fmt.Sprintf("external reference %q at %s left unresolved", ref, pathutil.JoinPath(loc))
			r.warnings = append(r.warnings, msg)
			r.log.Warn("external reference left unresolved", "ref", ref, "location", pathutil.JoinPath(loc))
		}
		return r.keepRef(ref, loc)
	}
	if stack[ref] {
		r.log.Debug("circular reference kept", "ref", ref, "location", pathutil.JoinPath(loc))
		r.cycles++
		return r.keepRef(ref, loc)
	}
	if e, ok := r.expanded[ref]; ok {
		if err := r.count(e.nodes, loc); err != nil {
			return nil, err
		}
		return e.value, nil
	}
	if len(stack) >= MaxRefDepth {
		return nil, &oaserrors.ResourceLimitError{
			ResourceType: "ref_depth",
			Limit:        MaxRefDepth,
			Actual:       int64(len(stack) + 1),
			Message:      "references nested too deeply at " + pathutil.JoinPath(loc),
		}
	}

	target, err := lookupPointer(r.root, ref)
	if err != nil {
		return nil, &oaserrors.ReferenceError{
			Ref:      ref,
			Location: pathutil.JoinPath(loc),
			Message:  err.Error(),
		}
	}

	nodes, cycles := r.nodes, r.cycles
	stack[ref] = true
	out, err := r.resolve(target, loc, stack)
	delete(stack, ref)
	if err != nil {
		return nil, err
	}
	if r.cycles == cycles {
		r.expanded[ref] = expansion{value: out, nodes: r.nodes - nodes}
	}
	return out, nil
}

// keepRef returns a bare reference object in place of an expansion.
func (r *resolver) keepRef(ref string, loc []any) (any, error) {
	if err := r.count(1, loc); err != nil {
		return nil, err
	}
	return map[string]any{"$ref": ref}, nil
}

// lookupPointer follows a "#/a/b/0" fragment pointer from root.
func lookupPointer(root map[string]any, ref string) (any, error) {
	pointer := strings.TrimPrefix(ref, "#")
	if pointer == "" {
		return root, nil
	}
	if !strings.HasPrefix(pointer, "/") {
		return nil, fmt.Errorf("invalid JSON pointer %q", pointer)
	}

	var cur any = root
	for _, token := range strings.Split(pointer[1:], "/") {
		token = unescapeToken(token)
		switch node := cur.(type) {
		case map[string]any:
			next, ok := node[token]
			if !ok {
				return nil, fmt.Errorf("target not found: %q missing", token)
			}
			cur = next
		case []any:
			idx, err := strconv.Atoi(token)
			if err != nil || idx < 0 || idx >= len(node) {
				return nil, fmt.Errorf("target not found: index %q out of range", token)
			}
			cur = node[idx]
		default:
			return nil, fmt.Errorf("target not found: cannot descend into %T at %q", cur, token)
		}
	}
	return cur, nil
}

// unescapeToken decodes one JSON pointer reference token (RFC 6901).
func unescapeToken(token string) string {
	if !strings.Contains(token, "~") {
		return token
	}
	return strings.ReplaceAll(strings.ReplaceAll(token, "~1", "/"), "~0", "~")
}
