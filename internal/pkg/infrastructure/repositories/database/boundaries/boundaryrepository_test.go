package boundaries

import (
	"context"
	"testing"

	"github.com/matryer/is"
	"github.com/oceanbound/maritime-boundary-api/internal/pkg/infrastructure/repositories/database"
)

func TestSaveAndGetDataset(t *testing.T) {
	is, ctx, r := testSetup(t)

	err := r.SaveDataset(ctx, &Dataset{
		DatasetID:    "dataset-01",
		Name:         "eez_boundaries.geojson",
		SRID:         4326,
		FeatureCount: 2,
		Schema:       "line_name,line_orig",
		Content:      []byte(`{"type":"FeatureCollection","features":[]}`),
	})
	is.NoErr(err)

	dataset, err := r.GetDatasetByID(ctx, "dataset-01")
	is.NoErr(err)
	is.Equal(dataset.Name, "eez_boundaries.geojson")
	is.Equal(dataset.FeatureCount, 2)
}

func TestGetUnknownDatasetReturnsNotFound(t *testing.T) {
	is, ctx, r := testSetup(t)

	_, err := r.GetDatasetByID(ctx, "no-such-dataset")
	is.Equal(err, ErrDatasetNotFound)
}

func TestGetDatasetsOmitsContent(t *testing.T) {
	is, ctx, r := testSetup(t)

	err := r.SaveDataset(ctx, &Dataset{
		DatasetID: "dataset-01",
		Name:      "coastlines.geojson",
		Content:   []byte(`{"type":"FeatureCollection","features":[]}`),
	})
	is.NoErr(err)

	datasets, err := r.GetDatasets(ctx)
	is.NoErr(err)
	is.Equal(len(datasets), 1)
	is.Equal(len(datasets[0].Content), 0)
}

func TestSaveAndGetBoundary(t *testing.T) {
	is, ctx, r := testSetup(t)

	err := r.SaveBoundary(ctx, &Boundary{
		BoundaryID:   "boundary-01",
		Method:       "lookup",
		Country1:     "India",
		Country2:     "Sri Lanka",
		Found:        true,
		MatchedCount: 3,
		GeoJSON:      []byte(`{"type":"FeatureCollection","features":[]}`),
	})
	is.NoErr(err)

	boundary, err := r.GetBoundaryByID(ctx, "boundary-01")
	is.NoErr(err)
	is.Equal(boundary.Country1, "India")
	is.True(boundary.Found)
}

func TestGetUnknownBoundaryReturnsNotFound(t *testing.T) {
	is, ctx, r := testSetup(t)

	_, err := r.GetBoundaryByID(ctx, "no-such-boundary")
	is.Equal(err, ErrBoundaryNotFound)
}

func TestQueryBoundariesByCountry(t *testing.T) {
	is, ctx, r := testSetup(t)

	err := r.SaveBoundary(ctx, &Boundary{BoundaryID: "b-01", Method: "lookup", Country1: "India", Country2: "Sri Lanka", Found: true})
	is.NoErr(err)
	err = r.SaveBoundary(ctx, &Boundary{BoundaryID: "b-02", Method: "lookup", Country1: "Sri Lanka", Country2: "Maldives", Found: false})
	is.NoErr(err)

	boundaries, err := r.QueryBoundaries(ctx, WithCountry("sri lanka"))
	is.NoErr(err)
	is.Equal(len(boundaries), 2)

	boundaries, err = r.QueryBoundaries(ctx, WithCountry("india"), WithFoundOnly())
	is.NoErr(err)
	is.Equal(len(boundaries), 1)
	is.Equal(boundaries[0].BoundaryID, "b-01")
}

func TestQueryBoundariesByMethod(t *testing.T) {
	is, ctx, r := testSetup(t)

	err := r.SaveBoundary(ctx, &Boundary{BoundaryID: "b-01", Method: "lookup", Country1: "India", Country2: "Sri Lanka"})
	is.NoErr(err)
	err = r.SaveBoundary(ctx, &Boundary{BoundaryID: "b-02", Method: "median-line", Country1: "India", Country2: "Sri Lanka"})
	is.NoErr(err)

	boundaries, err := r.QueryBoundaries(ctx, WithMethod("median-line"))
	is.NoErr(err)
	is.Equal(len(boundaries), 1)
	is.Equal(boundaries[0].BoundaryID, "b-02")
}

func testSetup(t *testing.T) (*is.I, context.Context, Repository) {
	is := is.New(t)
	ctx := context.Background()

	r, err := NewRepository(database.NewSQLiteConnector(ctx))
	is.NoErr(err)

	return is, ctx, r
}
