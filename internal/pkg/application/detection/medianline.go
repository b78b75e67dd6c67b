package detection

import (
	"context"
	"fmt"

	"github.com/oceanbound/maritime-boundary-api/internal/pkg/infrastructure/geometries"
	"github.com/oceanbound/maritime-boundary-api/internal/pkg/infrastructure/logging"
)

// ByMedianLine approximates the median between two coastlines.
//
// The first coastline is sampled at sampleCount+1 evenly spaced arc-length
// positions. Each sample is projected onto the second coastline
// (nearest-point projection, not nearest vertex) and the midpoint of the
// pair is kept. The midpoints, in sampling order, form the median line.
// All distance work happens in the planar CRS (EPSG:3857); the result is
// returned in geographic coordinates.
//
// The output is an approximation of the true equidistant median: it
// inherits the sampling resolution and may self-intersect along strongly
// concave coastlines.
func (s svc) ByMedianLine(ctx context.Context, coast1, coast2 RecordSet, sampleCount int) (Result, error) {
	var err error

	ctx, span := tracer.Start(ctx, "median-line")
	defer func() { recordErrorAndEndSpan(err, span) }()

	log := logging.GetLoggerFromContext(ctx)

	if sampleCount <= 0 {
		err = fmt.Errorf("%w: got %d", ErrInvalidSampleCount, sampleCount)
		return Result{}, err
	}

	warnings := append(append([]string{}, coast1.Warnings...), coast2.Warnings...)

	geom1, err := unionOf(coast1)
	if err != nil {
		return Result{}, err
	}

	geom2, err := unionOf(coast2)
	if err != nil {
		return Result{}, err
	}

	geom1, w1, err := planarized(geom1)
	if err != nil {
		return Result{}, err
	}
	if w1 != "" {
		warnings = append(warnings, w1)
	}

	geom2, w2, err := planarized(geom2)
	if err != nil {
		return Result{}, err
	}
	if w2 != "" {
		warnings = append(warnings, w2)
	}

	length := geom1.Length()
	if length == 0 {
		err = fmt.Errorf("first coastline has zero length: %w", geometries.ErrEmptyGeometry)
		return Result{}, err
	}

	log.Debug().Msgf("sampling %d midpoints along %.0f meters of coastline", sampleCount+1, length)

	midpoints := make([][]float64, 0, sampleCount+1)

	for i := 0; i <= sampleCount; i++ {
		position := float64(i) / float64(sampleCount) * length

		px, py, err := geom1.InterpolatePoint(position)
		if err != nil {
			return Result{}, err
		}

		nearest, err := geom2.NearestPosition(px, py)
		if err != nil {
			return Result{}, err
		}

		qx, qy, err := geom2.InterpolatePoint(nearest)
		if err != nil {
			return Result{}, err
		}

		midpoints = append(midpoints, []float64{(px + qx) / 2.0, (py + qy) / 2.0})
	}

	median, err := geometries.NewLineString(midpoints, geometries.WebMercator)
	if err != nil {
		return Result{}, err
	}

	median, err = median.Transform(geometries.WGS84)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Found:    true,
		Geometry: median,
		Warnings: warnings,
	}, nil
}

func unionOf(rs RecordSet) (geometries.Geometry, error) {
	union := geometries.Geometry{}

	var err error
	for _, r := range rs.Records {
		union, err = union.Union(r.Geometry)
		if err != nil {
			return geometries.Geometry{}, err
		}
	}

	if union.IsEmpty() {
		return geometries.Geometry{}, fmt.Errorf("coastline dataset contains no geometry: %w", geometries.ErrEmptyGeometry)
	}

	return union.DeclaredAs(rs.SRID), nil
}
