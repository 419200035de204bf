package differ

import (
	"context"

	"github.com/erraggy/specdiff/internal/pathutil"
	"github.com/erraggy/specdiff/parser"
	"github.com/erraggy/specdiff/schemadiff"
)

// scopeJob is one pending schema comparison.
type scopeJob struct {
	slot        int
	entity      string
	source      *EntityDetails
	destination *EntityDetails
	sourceSch   parser.Schema
	destSch     parser.Schema
}

// run asks the oracle about the two schemas. An absent schema compares as
// the empty schema. Oracle errors are returned as-is.
func (j scopeJob) run(ctx context.Context, oracle schemadiff.Oracle) ([]Difference, error) {
	src, dst := j.sourceSch, j.destSch
	if src == nil {
		src = parser.Schema{}
	}
	if dst == nil {
		dst = parser.Schema{}
	}

	res, err := oracle.DiffSchemas(ctx, src, dst)
	if err != nil {
		return nil, err
	}

	var out []Difference
	if res.AdditionsFound {
		d := newDifference(j.source, j.destination, j.entity, ActionAdd)
		d.Source = SourceJSONSchemaDiff
		d.Details = res.AddedSchema
		out = append(out, d)
	}
	if res.RemovalsFound {
		d := newDifference(j.source, j.destination, j.entity, ActionRemove)
		d.Source = SourceJSONSchemaDiff
		d.Details = res.RemovedSchema
		out = append(out, d)
	}
	return out, nil
}

// scopeSide describes one side of a scope. When the side has no schema the
// location of the enclosing entity is used with no value.
func scopeSide(schema *parser.Property[parser.Schema], enclosing *parser.Property[any]) (*EntityDetails, parser.Schema) {
	if schema != nil {
		return entityDetails(schema), schema.Value
	}
	if enclosing == nil {
		return nil, nil
	}
	return &EntityDetails{Location: pathutil.JoinPath(enclosing.OriginalPath)}, nil
}

// compareScopes defers a schema comparison for two scopes of the same
// entity. Two absent schemas cannot differ and are skipped.
func (f *finder) compareScopes(entity string,
	srcSchema *parser.Property[parser.Schema], srcEnclosing *parser.Property[any],
	dstSchema *parser.Property[parser.Schema], dstEnclosing *parser.Property[any],
) {
	if srcSchema == nil && dstSchema == nil {
		return
	}
	job := scopeJob{entity: entity}
	job.source, job.sourceSch = scopeSide(srcSchema, srcEnclosing)
	job.destination, job.destSch = scopeSide(dstSchema, dstEnclosing)
	f.c.deferScope(job)
}
