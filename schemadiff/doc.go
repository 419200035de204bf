// Package schemadiff compares two JSON Schemas and reports what one adds to
// and removes from the other.
//
// The differ treats schema comparison as an oracle behind the [Oracle]
// interface. [PatchOracle] is the default implementation: it computes an RFC
// 6902 patch with github.com/wI2L/jsondiff and folds the operations into two
// schema fragments, one holding everything added and one holding everything
// removed.
//
// Arrays are compared as sets. Any change inside an array (the "required"
// list, an "enum", the branches of "oneOf") is reported at the array itself,
// with the elements present on only one side.
//
//	o := schemadiff.NewPatchOracle()
//	res, err := o.DiffSchemas(ctx,
//		schemadiff.Schema{"required": []any{"id"}},
//		schemadiff.Schema{"required": []any{"id", "name"}},
//	)
//	// res.AdditionsFound == true
//	// res.AddedSchema == {"required": ["name"]}
package schemadiff
