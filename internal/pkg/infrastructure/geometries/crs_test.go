package geometries

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/matryer/is"
)

func firstPosition(is *is.I, g Geometry) (float64, float64) {
	raw, err := g.GeoJSON()
	is.NoErr(err)

	gj := struct {
		Type        string          `json:"type"`
		Coordinates json.RawMessage `json:"coordinates"`
	}{}
	is.NoErr(json.Unmarshal(raw, &gj))

	if gj.Type == "Point" {
		pos := []float64{}
		is.NoErr(json.Unmarshal(gj.Coordinates, &pos))
		return pos[0], pos[1]
	}

	positions := [][]float64{}
	is.NoErr(json.Unmarshal(gj.Coordinates, &positions))
	return positions[0][0], positions[0][1]
}

func TestSRIDFromCRSNameAcceptsCommonForms(t *testing.T) {
	is := is.New(t)

	for _, name := range []string{
		"EPSG:4326",
		"urn:ogc:def:crs:EPSG::4326",
		"urn:ogc:def:crs:OGC:1.3:CRS84",
		"CRS84",
	} {
		srid, err := SRIDFromCRSName(name)
		is.NoErr(err)
		is.Equal(srid, WGS84)
	}

	srid, err := SRIDFromCRSName("EPSG:3857")
	is.NoErr(err)
	is.Equal(srid, WebMercator)
}

func TestSRIDFromCRSNameRejectsUnknownSystems(t *testing.T) {
	is := is.New(t)

	_, err := SRIDFromCRSName("EPSG:32633")
	is.True(err != nil)

	_, err = SRIDFromCRSName("not a crs name")
	is.True(err != nil)
}

func TestMercatorRoundTrip(t *testing.T) {
	is := is.New(t)

	positions := [][]float64{
		{0, 0},
		{79.52, 9.21},
		{-179.9, 84.9},
		{13.3, -55.1},
	}

	for _, p := range positions {
		x, y := forwardMercator(p[0], p[1])
		lon, lat := inverseMercator(x, y)

		is.True(math.Abs(lon-p[0]) < 1e-9)
		is.True(math.Abs(lat-p[1]) < 1e-9)
	}
}

func TestTransformPointToWebMercator(t *testing.T) {
	is := is.New(t)

	p, err := NewPoint(0, 0, WGS84)
	is.NoErr(err)

	transformed, err := p.Transform(WebMercator)
	is.NoErr(err)
	is.Equal(transformed.SRID(), WebMercator)

	x, y := firstPosition(is, transformed)
	is.True(math.Abs(x) < 1e-9)
	is.True(math.Abs(y) < 1e-9)
}

func TestTransformLineStringRoundTrip(t *testing.T) {
	is := is.New(t)

	line, err := FromGeoJSON([]byte(`{"type":"LineString","coordinates":[[79.5,9.5],[79.6,9.0],[79.8,8.5]]}`), WGS84)
	is.NoErr(err)

	planar, err := line.Transform(WebMercator)
	is.NoErr(err)

	back, err := planar.Transform(WGS84)
	is.NoErr(err)

	x, y := firstPosition(is, back)
	is.True(math.Abs(x-79.5) < 1e-9)
	is.True(math.Abs(y-9.5) < 1e-9)
}

func TestTransformToSameSRIDIsANoOp(t *testing.T) {
	is := is.New(t)

	p, err := NewPoint(79.5, 9.5, WGS84)
	is.NoErr(err)

	same, err := p.Transform(WGS84)
	is.NoErr(err)
	is.Equal(same.SRID(), WGS84)
}

func TestTransformFromUndefinedCRSFails(t *testing.T) {
	is := is.New(t)

	p, err := NewPoint(79.5, 9.5, UndefinedCRS)
	is.NoErr(err)

	_, err = p.Transform(WebMercator)
	is.True(err != nil)
}
