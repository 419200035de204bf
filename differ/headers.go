package differ

import (
	"github.com/erraggy/specdiff/internal/maputil"
	"github.com/erraggy/specdiff/parser"
)

// headers reports response headers added or removed. Names are compared
// case-insensitively.
func (f *finder) headers(source, destination map[string]*parser.Property[any]) {
	src := f.foldHeaders(source)
	dst := f.foldHeaders(destination)

	ks := maputil.KeySets(src, dst)
	for _, name := range ks.Added {
		f.c.add(newDifference(nil, entityDetails(dst[name]), EntityResponseHeader, ActionAdd))
	}
	for _, name := range ks.Removed {
		f.c.add(newDifference(entityDetails(src[name]), nil, EntityResponseHeader, ActionRemove))
	}
}

// foldHeaders re-keys headers by lower-cased name. When two names differ only
// by case the lexicographically first one is kept.
func (f *finder) foldHeaders(headers map[string]*parser.Property[any]) map[string]*parser.Property[any] {
	out := make(map[string]*parser.Property[any], len(headers))
	for _, name := range maputil.SortedKeys(headers) {
		key := f.lower.String(name)
		if _, exists := out[key]; exists {
			f.log.Warn("response headers differ only by case; ignoring duplicate", "header", name)
			continue
		}
		out[key] = headers[name]
	}
	return out
}
