package detection

import (
	"context"

	"github.com/oceanbound/maritime-boundary-api/internal/pkg/infrastructure/geometries"
	"github.com/oceanbound/maritime-boundary-api/internal/pkg/infrastructure/logging"
)

// ByBoundaryLines implements the lookup strategy: the dataset already
// contains digitized boundary polylines, each tagged with the country on
// either side. Which columns carry those tags differs between sources, so
// both are resolved from the alias tables and matching falls back to a
// full-text scan when neither resolves.
func (s svc) ByBoundaryLines(ctx context.Context, rs RecordSet, country1, country2 string) (Result, error) {
	var err error

	ctx, span := tracer.Start(ctx, "boundary-lookup")
	defer func() { recordErrorAndEndSpan(err, span) }()

	log := logging.GetLoggerFromContext(ctx)

	leftField, leftOK := ResolveField(rs.Fields, s.config.Aliases.LeftCountry)
	rightField, rightOK := ResolveField(rs.Fields, s.config.Aliases.RightCountry)

	if !leftOK || !rightOK {
		log.Debug().Msg("country columns did not resolve, using full text matching")
		leftField, rightField = "", ""
	}

	matched := MatchRecords(rs.Records, country1, country2, leftField, rightField)
	if len(matched) == 0 {
		log.Debug().Msgf("no boundary lines between %s and %s", country1, country2)
		return notFound(rs.Warnings...), nil
	}

	union := geometries.Geometry{}
	for _, r := range matched {
		union, err = union.Union(r.Geometry)
		if err != nil {
			return Result{}, err
		}
	}

	if union.IsEmpty() {
		return notFound(rs.Warnings...), nil
	}

	return Result{
		Found:    true,
		Geometry: union,
		Matched:  matched,
		Warnings: rs.Warnings,
	}, nil
}
