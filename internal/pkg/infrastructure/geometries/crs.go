package geometries

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// SRID identifies a coordinate reference system by its EPSG code.
type SRID int

const (
	UndefinedCRS SRID = 0

	// WGS84 is the geographic CRS (degrees) used for all input and output.
	WGS84 SRID = 4326

	// WebMercator is the planar CRS (meters) used internally for any
	// operation that requires true distances.
	WebMercator SRID = 3857
)

func (s SRID) Name() string {
	return fmt.Sprintf("EPSG:%d", int(s))
}

// SRIDFromCRSName parses the name member of a GeoJSON named CRS. Both the
// legacy "EPSG:nnnn" form and OGC URNs ("urn:ogc:def:crs:EPSG::nnnn") are
// accepted. CRS84 is the axis-swapped alias for WGS84 and maps to it.
func SRIDFromCRSName(name string) (SRID, error) {
	n := strings.TrimSpace(name)

	if strings.EqualFold(n, "urn:ogc:def:crs:OGC:1.3:CRS84") || strings.EqualFold(n, "CRS84") {
		return WGS84, nil
	}

	if i := strings.LastIndexAny(n, ":"); i >= 0 {
		if code, err := strconv.Atoi(n[i+1:]); err == nil {
			switch SRID(code) {
			case WGS84, WebMercator:
				return SRID(code), nil
			default:
				return UndefinedCRS, fmt.Errorf("%w: EPSG:%d", ErrUnsupportedSRID, code)
			}
		}
	}

	return UndefinedCRS, fmt.Errorf("%w: %s", ErrUnsupportedSRID, name)
}

const earthRadius = 6378137.0

func forwardMercator(lon, lat float64) (float64, float64) {
	x := earthRadius * lon * math.Pi / 180.0
	y := earthRadius * math.Log(math.Tan(math.Pi/4.0+lat*math.Pi/360.0))
	return x, y
}

func inverseMercator(x, y float64) (float64, float64) {
	lon := x / earthRadius * 180.0 / math.Pi
	lat := (2.0*math.Atan(math.Exp(y/earthRadius)) - math.Pi/2.0) * 180.0 / math.Pi
	return lon, lat
}

// Transform reprojects the geometry into the requested CRS. Only the
// WGS84 <-> WebMercator pair is supported; anything else is an error
// rather than a silent passthrough.
func (g Geometry) Transform(to SRID) (Geometry, error) {
	if g.IsEmpty() {
		return Geometry{}, ErrEmptyGeometry
	}

	if g.srid == to {
		return g, nil
	}

	var project func(x, y float64) (float64, float64)

	switch {
	case g.srid == WGS84 && to == WebMercator:
		project = forwardMercator
	case g.srid == WebMercator && to == WGS84:
		project = inverseMercator
	default:
		return Geometry{}, fmt.Errorf("%w: cannot transform %d to %d", ErrUnsupportedSRID, g.srid, to)
	}

	var gj geoJSONGeometry
	err := json.Unmarshal([]byte(g.geom.ToGeoJSON(-1)), &gj)
	if err != nil {
		return Geometry{}, fmt.Errorf("%w: %s", ErrInvalidGeometry, err.Error())
	}

	transformed, err := transformGeometry(gj, project)
	if err != nil {
		return Geometry{}, err
	}

	raw, err := json.Marshal(transformed)
	if err != nil {
		return Geometry{}, err
	}

	return FromGeoJSON(raw, to)
}

type geoJSONGeometry struct {
	Type        string            `json:"type"`
	Coordinates json.RawMessage   `json:"coordinates,omitempty"`
	Geometries  []geoJSONGeometry `json:"geometries,omitempty"`
}

func transformGeometry(g geoJSONGeometry, project func(x, y float64) (float64, float64)) (geoJSONGeometry, error) {
	if g.Type == "GeometryCollection" {
		parts := make([]geoJSONGeometry, 0, len(g.Geometries))
		for _, member := range g.Geometries {
			t, err := transformGeometry(member, project)
			if err != nil {
				return geoJSONGeometry{}, err
			}
			parts = append(parts, t)
		}
		return geoJSONGeometry{Type: g.Type, Geometries: parts}, nil
	}

	var coords any

	switch g.Type {
	case "Point":
		coords = &[]float64{}
	case "LineString", "MultiPoint":
		coords = &[][]float64{}
	case "Polygon", "MultiLineString":
		coords = &[][][]float64{}
	case "MultiPolygon":
		coords = &[][][][]float64{}
	default:
		return geoJSONGeometry{}, fmt.Errorf("%w: unknown geometry type %s", ErrInvalidGeometry, g.Type)
	}

	err := json.Unmarshal(g.Coordinates, coords)
	if err != nil {
		return geoJSONGeometry{}, fmt.Errorf("%w: %s", ErrInvalidGeometry, err.Error())
	}

	switch c := coords.(type) {
	case *[]float64:
		transformPosition(*c, project)
	case *[][]float64:
		transformPositions(*c, project)
	case *[][][]float64:
		for _, ring := range *c {
			transformPositions(ring, project)
		}
	case *[][][][]float64:
		for _, poly := range *c {
			for _, ring := range poly {
				transformPositions(ring, project)
			}
		}
	}

	raw, err := json.Marshal(coords)
	if err != nil {
		return geoJSONGeometry{}, err
	}

	return geoJSONGeometry{Type: g.Type, Coordinates: raw}, nil
}

func transformPosition(pos []float64, project func(x, y float64) (float64, float64)) {
	if len(pos) >= 2 {
		pos[0], pos[1] = project(pos[0], pos[1])
	}
}

func transformPositions(positions [][]float64, project func(x, y float64) (float64, float64)) {
	for _, pos := range positions {
		transformPosition(pos, project)
	}
}
