package differ

import (
	"github.com/erraggy/specdiff/internal/maputil"
	"github.com/erraggy/specdiff/parser"
)

// operations reports added and removed methods of a common path and returns
// the methods present on both sides, sorted.
func (f *finder) operations(source, destination *parser.PathItem) []string {
	ks := maputil.KeySets(source.Operations, destination.Operations)
	for _, method := range ks.Added {
		f.c.add(newDifference(nil, entityDetails(destination.Operations[method].OriginalValue), EntityMethod, ActionAdd))
	}
	for _, method := range ks.Removed {
		f.c.add(newDifference(entityDetails(source.Operations[method].OriginalValue), nil, EntityMethod, ActionRemove))
	}
	return ks.Common
}

// requestBody compares the request body scopes of a common operation.
func (f *finder) requestBody(source, destination *parser.Operation) {
	srcSchema, srcEnclosing := bodyScope(source)
	dstSchema, dstEnclosing := bodyScope(destination)
	f.compareScopes(EntityRequestBodyScope, srcSchema, srcEnclosing, dstSchema, dstEnclosing)
}

// bodyScope returns the request body schema and the entity that encloses it:
// the body itself or, when there is none, the operation.
func bodyScope(op *parser.Operation) (*parser.Property[parser.Schema], *parser.Property[any]) {
	if op.RequestBody == nil {
		return nil, op.OriginalValue
	}
	return op.RequestBody.JSONSchema, op.RequestBody.OriginalValue
}
