package differ

import (
	"github.com/erraggy/specdiff/internal/equalutil"
	"github.com/erraggy/specdiff/internal/maputil"
	"github.com/erraggy/specdiff/parser"
)

// xProperties compares the top-level properties outside paths. An edited
// value is reported as an add and a remove, both carrying both sides.
func (f *finder) xProperties(source, destination map[string]*parser.Property[any]) {
	ks := maputil.KeySets(source, destination)
	f.log.Debug("comparing top-level properties",
		"added", len(ks.Added), "removed", len(ks.Removed), "common", len(ks.Common))

	for _, name := range ks.Added {
		f.c.add(newDifference(nil, entityDetails(destination[name]), name, ActionAdd))
	}
	for _, name := range ks.Removed {
		f.c.add(newDifference(entityDetails(source[name]), nil, name, ActionRemove))
	}
	for _, name := range ks.Common {
		src, dst := source[name], destination[name]
		if equalutil.Equal(src.Value, dst.Value) {
			continue
		}
		f.c.add(newDifference(entityDetails(src), entityDetails(dst), name, ActionAdd))
		f.c.add(newDifference(entityDetails(src), entityDetails(dst), name, ActionRemove))
	}
}
