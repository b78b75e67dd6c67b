package boundaries

import (
	"context"
	"errors"
	"testing"

	"github.com/matryer/is"
	"github.com/oceanbound/maritime-boundary-api/internal/pkg/application/detection"
	"github.com/oceanbound/maritime-boundary-api/internal/pkg/infrastructure/repositories/database"
	db "github.com/oceanbound/maritime-boundary-api/internal/pkg/infrastructure/repositories/database/boundaries"
	"github.com/oceanbound/maritime-boundary-api/pkg/types"
)

const boundaryLines string = `{
	"type": "FeatureCollection",
	"features": [
		{
			"type": "Feature",
			"properties": {"line_orig": "India", "line_dest": "Sri Lanka"},
			"geometry": {"type": "LineString", "coordinates": [[79.5, 9.0], [79.6, 8.5]]}
		},
		{
			"type": "Feature",
			"properties": {"line_orig": "Sri Lanka", "line_dest": "Maldives"},
			"geometry": {"type": "LineString", "coordinates": [[77.0, 5.0], [77.5, 5.5]]}
		}
	]
}`

func TestUploadDatasetReturnsInfo(t *testing.T) {
	is, ctx, svc := testSetup(t)

	info, err := svc.UploadDataset(ctx, "boundaries.geojson", []byte(boundaryLines))
	is.NoErr(err)

	is.True(info.ID != "")
	is.Equal(info.FeatureCount, 2)
	is.Equal(info.Fields, []string{"line_dest", "line_orig"})
	is.Equal(len(info.Warnings), 1) // no crs member in the upload
}

func TestUploadRejectsEmptyCollection(t *testing.T) {
	is, ctx, svc := testSetup(t)

	_, err := svc.UploadDataset(ctx, "empty.geojson", []byte(`{"type":"FeatureCollection","features":[]}`))
	is.True(err != nil)
}

func TestDetectRequiresKnownMethod(t *testing.T) {
	is, ctx, svc := testSetup(t)

	_, err := svc.Detect(ctx, types.DetectionRequest{
		Method:   "triangulation",
		Country1: "India",
		Country2: "Sri Lanka",
	})
	is.True(errors.Is(err, ErrUnknownMethod))
}

func TestDetectRequiresBothCountries(t *testing.T) {
	is, ctx, svc := testSetup(t)

	_, err := svc.Detect(ctx, types.DetectionRequest{Method: types.MethodLookup, Country1: "India"})
	is.Equal(err, ErrMissingCountry)
}

func TestDetectByLookupFindsBoundary(t *testing.T) {
	is, ctx, svc := testSetup(t)

	info, err := svc.UploadDataset(ctx, "boundaries.geojson", []byte(boundaryLines))
	is.NoErr(err)

	outcome, err := svc.Detect(ctx, types.DetectionRequest{
		Method:    types.MethodLookup,
		Country1:  "sri lanka",
		Country2:  "india",
		DatasetID: info.ID,
	})
	is.NoErr(err)

	is.True(outcome.Found)
	is.Equal(outcome.MatchedCount, 1)
	is.True(outcome.Boundary != nil)
	is.True(len(outcome.Boundary.Features) > 0)
}

func TestDetectByLookupStoresNotFoundOutcome(t *testing.T) {
	is, ctx, svc := testSetup(t)

	info, err := svc.UploadDataset(ctx, "boundaries.geojson", []byte(boundaryLines))
	is.NoErr(err)

	outcome, err := svc.Detect(ctx, types.DetectionRequest{
		Method:    types.MethodLookup,
		Country1:  "Norway",
		Country2:  "Sweden",
		DatasetID: info.ID,
	})
	is.NoErr(err)
	is.True(!outcome.Found)

	stored, err := svc.GetBoundaryByID(ctx, outcome.ID)
	is.NoErr(err)
	is.True(!stored.Found)
	is.True(stored.Boundary == nil)
}

func TestDetectAgainstUnknownDataset(t *testing.T) {
	is, ctx, svc := testSetup(t)

	_, err := svc.Detect(ctx, types.DetectionRequest{
		Method:    types.MethodLookup,
		Country1:  "India",
		Country2:  "Sri Lanka",
		DatasetID: "no-such-dataset",
	})
	is.True(errors.Is(err, ErrDatasetNotFound))
}

func TestGetBoundaryByIDRoundTrip(t *testing.T) {
	is, ctx, svc := testSetup(t)

	info, err := svc.UploadDataset(ctx, "boundaries.geojson", []byte(boundaryLines))
	is.NoErr(err)

	outcome, err := svc.Detect(ctx, types.DetectionRequest{
		Method:    types.MethodLookup,
		Country1:  "India",
		Country2:  "Sri Lanka",
		DatasetID: info.ID,
	})
	is.NoErr(err)

	stored, err := svc.GetBoundaryByID(ctx, outcome.ID)
	is.NoErr(err)

	is.Equal(stored.Method, types.MethodLookup)
	is.Equal(stored.Country1, "India")
	is.Equal(stored.Country2, "Sri Lanka")
	is.True(stored.Found)
	is.True(stored.Boundary != nil)
}

func testSetup(t *testing.T) (*is.I, context.Context, BoundaryService) {
	is := is.New(t)
	ctx := context.Background()

	repo, err := db.NewRepository(database.NewSQLiteConnector(ctx))
	is.NoErr(err)

	return is, ctx, New(detection.New(nil), repo)
}
