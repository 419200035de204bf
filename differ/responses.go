package differ

import (
	"github.com/erraggy/specdiff/internal/maputil"
	"github.com/erraggy/specdiff/parser"
)

// responses compares the responses of a common operation by status code.
// Common codes are compared by headers and then by body.
func (f *finder) responses(source, destination *parser.Operation) {
	ks := maputil.KeySets(source.Responses, destination.Responses)
	for _, code := range ks.Added {
		f.c.add(newDifference(nil, entityDetails(destination.Responses[code].OriginalValue), EntityResponseStatusCode, ActionAdd))
	}
	for _, code := range ks.Removed {
		f.c.add(newDifference(entityDetails(source.Responses[code].OriginalValue), nil, EntityResponseStatusCode, ActionRemove))
	}
	for _, code := range ks.Common {
		s, d := source.Responses[code], destination.Responses[code]
		f.headers(s.Headers, d.Headers)
		f.compareScopes(EntityResponseBodyScope, s.JSONSchema, s.OriginalValue, d.JSONSchema, d.OriginalValue)
	}
}
