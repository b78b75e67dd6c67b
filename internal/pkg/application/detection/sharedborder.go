package detection

import (
	"context"
	"fmt"
	"strings"

	"github.com/oceanbound/maritime-boundary-api/internal/pkg/infrastructure/geometries"
	"github.com/oceanbound/maritime-boundary-api/internal/pkg/infrastructure/logging"
	"github.com/samber/lo"
	"go.opentelemetry.io/otel/trace"
)

// BySharedBorder implements the polygon strategy: each country's maritime
// polygons (typically its EEZ) are unioned, the outlines of the two
// unions are taken, and their intersection is the shared border. An empty
// intersection means the two zones do not touch, which is a legitimate
// not-found outcome and not an error.
func (s svc) BySharedBorder(ctx context.Context, rs RecordSet, countryField, country1, country2 string) (Result, error) {
	var err error

	ctx, span := tracer.Start(ctx, "shared-border")
	defer func() { recordErrorAndEndSpan(err, span) }()

	log := logging.GetLoggerFromContext(ctx)

	field, ok := resolvePresent(rs.Fields, countryField)
	if !ok {
		err = fmt.Errorf("column %s is not present in the dataset: %w", countryField, ErrFieldNotFound)
		return Result{}, err
	}

	subsetA := filterByCountry(rs.Records, field, country1)
	subsetB := filterByCountry(rs.Records, field, country2)

	if len(subsetA) == 0 || len(subsetB) == 0 {
		err = fmt.Errorf("no polygons found for country pair %s / %s: %w", country1, country2, ErrNoMatchFound)
		return Result{}, err
	}

	borderA, err := outline(subsetA)
	if err != nil {
		return Result{}, err
	}

	borderB, err := outline(subsetB)
	if err != nil {
		return Result{}, err
	}

	intersection, err := borderA.Intersection(borderB)
	if err != nil {
		return Result{}, err
	}

	if intersection.IsEmpty() {
		log.Debug().Msgf("zones of %s and %s do not touch", country1, country2)
		return notFound(rs.Warnings...), nil
	}

	return Result{
		Found:    true,
		Geometry: intersection,
		Matched:  append(append([]Record{}, subsetA...), subsetB...),
		Warnings: rs.Warnings,
	}, nil
}

func filterByCountry(records []Record, field, country string) []Record {
	return lo.Filter(records, func(r Record, _ int) bool {
		return strings.EqualFold(stringValue(r.Fields[field]), country)
	})
}

func outline(records []Record) (geometries.Geometry, error) {
	union := geometries.Geometry{}

	var err error
	for _, r := range records {
		union, err = union.Union(r.Geometry)
		if err != nil {
			return geometries.Geometry{}, err
		}
	}

	return union.Boundary()
}

func recordErrorAndEndSpan(err error, span trace.Span) {
	if err != nil {
		span.RecordError(err)
	}
	span.End()
}
