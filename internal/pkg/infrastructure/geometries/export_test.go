package geometries

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/matryer/is"
)

func TestExportTagsCollectionWithGeographicCRS(t *testing.T) {
	is := is.New(t)

	line := geomFromJSON(is, WGS84, `{"type":"LineString","coordinates":[[79.5,9.5],[79.6,9.0]]}`)

	fc, err := ExportFeatureCollection(line)
	is.NoErr(err)

	is.Equal(fc.Type, "FeatureCollection")
	is.Equal(fc.CRS.Properties.Name, "EPSG:4326")
	is.Equal(len(fc.Features), 1)
	is.Equal(fc.Features[0].Type, "Feature")
}

func TestExportReprojectsPlanarGeometry(t *testing.T) {
	is := is.New(t)

	line := geomFromJSON(is, WebMercator, `{"type":"LineString","coordinates":[[0,0],[10000,0]]}`)

	fc, err := ExportFeatureCollection(line)
	is.NoErr(err)

	coords := struct {
		Coordinates [][]float64 `json:"coordinates"`
	}{}
	is.NoErr(json.Unmarshal(fc.Features[0].Geometry, &coords))

	// 10 km along the equator is well under one degree of longitude
	is.True(coords.Coordinates[1][0] > 0)
	is.True(coords.Coordinates[1][0] < 1)
}

func TestExportSkipsEmptyMembers(t *testing.T) {
	is := is.New(t)

	line := geomFromJSON(is, WGS84, `{"type":"LineString","coordinates":[[0,0],[1,1]]}`)

	fc, err := ExportFeatureCollection(Geometry{}, line)
	is.NoErr(err)
	is.Equal(len(fc.Features), 1)
}

func TestExportOfNothingIsAnError(t *testing.T) {
	is := is.New(t)

	_, err := ExportFeatureCollection(Geometry{})
	is.True(errors.Is(err, ErrEmptyGeometry))

	_, err = Export()
	is.True(errors.Is(err, ErrEmptyGeometry))
}

func TestExportRoundTrip(t *testing.T) {
	is := is.New(t)

	line := geomFromJSON(is, WGS84, `{"type":"LineString","coordinates":[[79.5,9.5],[79.6,9.0]]}`)

	fc, err := ExportFeatureCollection(line)
	is.NoErr(err)

	reparsed, err := FromGeoJSON(fc.Features[0].Geometry, WGS84)
	is.NoErr(err)

	original, err := line.GeoJSON()
	is.NoErr(err)
	roundTripped, err := reparsed.GeoJSON()
	is.NoErr(err)

	is.Equal(string(original), string(roundTripped))
}

func TestExportProducesValidInterchangeBytes(t *testing.T) {
	is := is.New(t)

	line := geomFromJSON(is, WGS84, `{"type":"LineString","coordinates":[[79.5,9.5],[79.6,9.0]]}`)

	b, err := Export(line)
	is.NoErr(err)

	decoded := map[string]any{}
	is.NoErr(json.Unmarshal(b, &decoded))
	is.Equal(decoded["type"], "FeatureCollection")
}
