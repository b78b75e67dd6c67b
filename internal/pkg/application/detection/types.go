package detection

import (
	"github.com/oceanbound/maritime-boundary-api/internal/pkg/infrastructure/geometries"
)

// Record is one feature of a dataset: its attribute values keyed by
// column name, plus its geometry. Column names vary freely between
// datasets; the resolver in fields.go maps them to semantic roles.
type Record struct {
	Fields   map[string]any
	Geometry geometries.Geometry
}

// RecordSet is the parsed content of one uploaded dataset. All records
// share the same schema. A record set is owned by the caller for the
// duration of one detection request and is never mutated by this package.
type RecordSet struct {
	Fields   []string
	Records  []Record
	SRID     geometries.SRID
	Warnings []string
}

// Result is the outcome of one detection call. Found is false when
// matching legitimately came up empty, which is a normal outcome and
// distinct from the hard errors this package returns.
type Result struct {
	Found    bool
	Geometry geometries.Geometry
	Matched  []Record
	Warnings []string
}

func notFound(warnings ...string) Result {
	return Result{Found: false, Warnings: warnings}
}
