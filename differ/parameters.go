package differ

import (
	"github.com/erraggy/specdiff/internal/maputil"
	"github.com/erraggy/specdiff/parser"
)

// parameters compares the parameters of a common operation. Path parameters
// are matched by position in the template rather than by name.
func (f *finder) parameters(source *parser.Operation, sourceNames map[string]string,
	destination *parser.Operation, destinationNames map[string]string,
) {
	src := canonicalParameters(source.Parameters, sourceNames)
	dst := canonicalParameters(destination.Parameters, destinationNames)

	ks := maputil.KeySets(src, dst)
	for _, key := range ks.Added {
		p := dst[key]
		f.c.add(newDifference(nil, entityDetails(p.OriginalValue), parameterEntity(p), ActionAdd))
	}
	for _, key := range ks.Removed {
		p := src[key]
		f.c.add(newDifference(entityDetails(p.OriginalValue), nil, parameterEntity(p), ActionRemove))
	}
	for _, key := range ks.Common {
		s, d := src[key], dst[key]
		if s.Required != d.Required {
			sd, dd := entityDetails(s.OriginalValue), entityDetails(d.OriginalValue)
			f.c.add(newDifference(sd, dd, parameterEntity(s), ActionRemove))
			f.c.add(newDifference(sd, dd, parameterEntity(d), ActionAdd))
		}
		f.compareScopes(EntityParameterScope, s.JSONSchema, s.OriginalValue, d.JSONSchema, d.OriginalValue)
	}
}

// canonicalParameters re-keys path parameters by their canonical template
// name. Other parameters keep their keys.
func canonicalParameters(params map[string]*parser.Parameter, names map[string]string) map[string]*parser.Parameter {
	out := make(map[string]*parser.Parameter, len(params))
	for _, key := range maputil.SortedKeys(params) {
		p := params[key]
		if p.In == "path" {
			if canonical, ok := names[p.Name]; ok {
				key = parser.ParameterKey(p.In, canonical)
			}
		}
		if _, exists := out[key]; !exists {
			out[key] = p
		}
	}
	return out
}

func parameterEntity(p *parser.Parameter) string {
	if p.Required {
		return EntityRequiredParameter
	}
	return EntityOptionalParameter
}
