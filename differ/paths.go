package differ

import (
	"github.com/erraggy/specdiff/internal/maputil"
	"github.com/erraggy/specdiff/internal/pathutil"
	"github.com/erraggy/specdiff/parser"
)

// templatedPath is a path item filed under its normalized template.
type templatedPath struct {
	raw string
	// names maps the raw placeholder names to their canonical names
	names map[string]string
	item  *parser.PathItem
}

// normalizePaths re-keys path items by normalized template. When two raw
// paths normalize to the same key the lexicographically first one is kept.
func (f *finder) normalizePaths(paths map[string]*parser.PathItem, side string) map[string]templatedPath {
	out := make(map[string]templatedPath, len(paths))
	for _, raw := range maputil.SortedKeys(paths) {
		canonical, names := pathutil.NormalizeTemplate(raw)
		if kept, ok := out[canonical]; ok {
			f.log.Warn("paths normalize to the same template; ignoring duplicate",
				"side", side, "template", canonical, "kept", kept.raw, "ignored", raw)
			continue
		}
		out[canonical] = templatedPath{raw: raw, names: names, item: paths[raw]}
	}
	return out
}

func (f *finder) paths(source, destination map[string]*parser.PathItem) {
	src := f.normalizePaths(source, "source")
	dst := f.normalizePaths(destination, "destination")

	ks := maputil.KeySets(src, dst)
	f.log.Debug("comparing paths",
		"added", len(ks.Added), "removed", len(ks.Removed), "common", len(ks.Common))

	for _, key := range ks.Added {
		f.c.add(newDifference(nil, entityDetails(dst[key].item.OriginalValue), EntityPath, ActionAdd))
	}
	for _, key := range ks.Removed {
		f.c.add(newDifference(entityDetails(src[key].item.OriginalValue), nil, EntityPath, ActionRemove))
	}
	for _, key := range ks.Common {
		s, d := src[key], dst[key]
		common := f.operations(s.item, d.item)
		for _, method := range common {
			so, do := s.item.Operations[method], d.item.Operations[method]
			f.parameters(so, s.names, do, d.names)
			f.requestBody(so, do)
			f.responses(so, do)
		}
	}
}
