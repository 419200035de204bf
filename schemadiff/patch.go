package schemadiff

import (
	"context"
	"strings"

	"github.com/wI2L/jsondiff"

	"github.com/erraggy/specdiff/internal/equalutil"
	"github.com/erraggy/specdiff/oaserrors"
)

// PatchOracle is the jsondiff-backed Oracle.
type PatchOracle struct{}

// NewPatchOracle returns the default Oracle.
func NewPatchOracle() *PatchOracle {
	return &PatchOracle{}
}

var _ Oracle = (*PatchOracle)(nil)

// DiffSchemas implements Oracle. A nil schema compares as the empty schema.
func (o *PatchOracle) DiffSchemas(ctx context.Context, source, destination Schema) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if source == nil {
		source = Schema{}
	}
	if destination == nil {
		destination = Schema{}
	}

	patch, err := jsondiff.Compare(source, destination)
	if err != nil {
		return nil, &oaserrors.SchemaDiffError{Message: "failed to compare schemas", Cause: err}
	}

	f := newFolder(source, destination)
	for _, op := range patch {
		if err := f.fold(op.Type, op.Path); err != nil {
			return nil, err
		}
	}
	return f.result(), nil
}

// folder accumulates patch operations into added and removed fragments.
type folder struct {
	src, dst any
	added    Schema
	removed  Schema
	addFound bool
	remFound bool
	// arrays holds pointers of arrays already compared as sets.
	arrays map[string]bool
}

func newFolder(src, dst Schema) *folder {
	return &folder{
		src:     src,
		dst:     dst,
		added:   Schema{},
		removed: Schema{},
		arrays:  make(map[string]bool),
	}
}

func (f *folder) result() *Result {
	res := &Result{AdditionsFound: f.addFound, RemovalsFound: f.remFound}
	if f.addFound {
		res.AddedSchema = f.added
	}
	if f.remFound {
		res.RemovedSchema = f.removed
	}
	return res
}

func (f *folder) fold(opType, pointer string) error {
	tokens, err := splitPointer(pointer)
	if err != nil {
		return err
	}

	if n, ok := f.arrayPrefix(tokens); ok {
		f.foldArray(tokens[:n])
		return nil
	}
	if isArray(lookup(f.src, tokens)) && isArray(lookup(f.dst, tokens)) {
		f.foldArray(tokens)
		return nil
	}

	switch opType {
	case jsondiff.OperationAdd:
		f.markAdded(tokens)
	case jsondiff.OperationRemove:
		f.markRemoved(tokens)
	case jsondiff.OperationReplace:
		f.markAdded(tokens)
		f.markRemoved(tokens)
	default:
		return &oaserrors.SchemaDiffError{Pointer: pointer, Message: "unexpected patch operation " + opType}
	}
	return nil
}

// arrayPrefix returns the length of the shortest prefix of tokens that names
// an array on either side, when the operation reaches inside that array.
func (f *folder) arrayPrefix(tokens []string) (int, bool) {
	src, dst := f.src, f.dst
	for i, tok := range tokens {
		if isArray(src) || isArray(dst) {
			return i, true
		}
		src = child(src, tok)
		dst = child(dst, tok)
	}
	return 0, false
}

// foldArray compares the arrays at tokens as sets. Each array is compared
// once no matter how many patch operations touch it.
func (f *folder) foldArray(tokens []string) {
	key := strings.Join(tokens, "/")
	if f.arrays[key] {
		return
	}
	f.arrays[key] = true

	srcArr, _ := lookup(f.src, tokens).([]any)
	dstArr, _ := lookup(f.dst, tokens).([]any)

	if onlyDst := subtract(dstArr, srcArr); len(onlyDst) > 0 {
		f.set(&f.added, tokens, onlyDst)
		f.addFound = true
	}
	if onlySrc := subtract(srcArr, dstArr); len(onlySrc) > 0 {
		f.set(&f.removed, tokens, onlySrc)
		f.remFound = true
	}
}

func (f *folder) markAdded(tokens []string) {
	f.set(&f.added, tokens, lookup(f.dst, tokens))
	f.addFound = true
}

func (f *folder) markRemoved(tokens []string) {
	f.set(&f.removed, tokens, lookup(f.src, tokens))
	f.remFound = true
}

// set stores a copy of value at tokens inside frag, creating intermediate
// objects. An empty token list replaces the whole fragment.
func (f *folder) set(frag *Schema, tokens []string, value any) {
	value = deepCopy(value)
	if len(tokens) == 0 {
		if m, ok := value.(map[string]any); ok {
			*frag = m
		} else {
			*frag = Schema{}
		}
		return
	}
	cur := *frag
	for _, tok := range tokens[:len(tokens)-1] {
		next, ok := cur[tok].(map[string]any)
		if !ok {
			next = map[string]any{}
			cur[tok] = next
		}
		cur = next
	}
	cur[tokens[len(tokens)-1]] = value
}

// deepCopy copies the maps and slices of a decoded JSON value so fragments
// never share storage with the compared schemas.
func deepCopy(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[k] = deepCopy(val)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = deepCopy(val)
		}
		return out
	default:
		return v
	}
}

// subtract returns the elements of a that have no equal element in b,
// in their original order.
func subtract(a, b []any) []any {
	var out []any
	for _, x := range a {
		found := false
		for _, y := range b {
			if equalutil.Equal(x, y) {
				found = true
				break
			}
		}
		if !found {
			out = append(out, x)
		}
	}
	return out
}

func isArray(v any) bool {
	_, ok := v.([]any)
	return ok
}

// child descends one object level. Arrays are never descended into because
// arrayPrefix stops at the first one.
func child(v any, tok string) any {
	if m, ok := v.(map[string]any); ok {
		return m[tok]
	}
	return nil
}

func lookup(v any, tokens []string) any {
	for _, tok := range tokens {
		v = child(v, tok)
	}
	return v
}

// splitPointer splits a JSON pointer into unescaped reference tokens.
func splitPointer(pointer string) ([]string, error) {
	if pointer == "" {
		return nil, nil
	}
	if !strings.HasPrefix(pointer, "/") {
		return nil, &oaserrors.SchemaDiffError{Pointer: pointer, Message: "invalid JSON pointer"}
	}
	tokens := strings.Split(pointer[1:], "/")
	for i, tok := range tokens {
		if strings.Contains(tok, "~") {
			tokens[i] = strings.ReplaceAll(strings.ReplaceAll(tok, "~1", "/"), "~0", "~")
		}
	}
	return tokens, nil
}
