// Package geometries wraps the GEOS bindings behind a Geometry type that
// always carries its coordinate reference system. Operations that combine
// two geometries refuse to mix CRSs; reprojection is always an explicit
// Transform step.
package geometries

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/twpayne/go-geos"
)

// Common errors returned by this package.
var (
	ErrEmptyGeometry   = errors.New("geometries: empty geometry")
	ErrCRSMismatch     = errors.New("geometries: geometries are in different coordinate reference systems")
	ErrUnsupportedSRID = errors.New("geometries: unsupported coordinate reference system")
	ErrInvalidGeometry = errors.New("geometries: invalid geometry")
)

// Geometry is a GEOS geometry tagged with the SRID its coordinates are
// expressed in. The zero value is an empty geometry with an undefined CRS.
type Geometry struct {
	geom *geos.Geom
	srid SRID
}

func FromGeoJSON(raw []byte, srid SRID) (Geometry, error) {
	g, err := geos.NewGeomFromGeoJSON(string(raw))
	if err != nil {
		return Geometry{}, fmt.Errorf("%w: %s", ErrInvalidGeometry, err.Error())
	}

	return Geometry{geom: g, srid: srid}, nil
}

func NewPoint(x, y float64, srid SRID) (Geometry, error) {
	g, err := geos.NewGeomFromWKT(fmt.Sprintf("POINT (%.12f %.12f)", x, y))
	if err != nil {
		return Geometry{}, fmt.Errorf("%w: %s", ErrInvalidGeometry, err.Error())
	}

	return Geometry{geom: g, srid: srid}, nil
}

func NewLineString(coords [][]float64, srid SRID) (Geometry, error) {
	if len(coords) < 2 {
		return Geometry{}, ErrEmptyGeometry
	}

	raw, err := json.Marshal(geoJSONGeometry{
		Type:        "LineString",
		Coordinates: mustMarshal(coords),
	})
	if err != nil {
		return Geometry{}, err
	}

	return FromGeoJSON(raw, srid)
}

func (g Geometry) SRID() SRID {
	return g.srid
}

// DeclaredAs re-tags a geometry whose CRS is undefined. The coordinates
// are not changed; callers must surface the assumption they are making.
func (g Geometry) DeclaredAs(srid SRID) Geometry {
	if g.srid != UndefinedCRS {
		return g
	}

	return Geometry{geom: g.geom, srid: srid}
}

func (g Geometry) IsEmpty() bool {
	return g.geom == nil || g.geom.IsEmpty()
}

// Union merges this geometry with another in the same CRS.
func (g Geometry) Union(other Geometry) (Geometry, error) {
	if g.IsEmpty() {
		return other, nil
	}
	if other.IsEmpty() {
		return g, nil
	}
	if g.srid != other.srid {
		return Geometry{}, fmt.Errorf("%w: %d vs %d", ErrCRSMismatch, g.srid, other.srid)
	}

	return Geometry{geom: g.geom.Union(other.geom), srid: g.srid}, nil
}

// Boundary returns the topological boundary, e.g. the outline of a
// polygon union.
func (g Geometry) Boundary() (Geometry, error) {
	if g.IsEmpty() {
		return Geometry{}, ErrEmptyGeometry
	}

	return Geometry{geom: g.geom.Boundary(), srid: g.srid}, nil
}

func (g Geometry) Intersection(other Geometry) (Geometry, error) {
	if g.IsEmpty() || other.IsEmpty() {
		return Geometry{}, ErrEmptyGeometry
	}
	if g.srid != other.srid {
		return Geometry{}, fmt.Errorf("%w: %d vs %d", ErrCRSMismatch, g.srid, other.srid)
	}

	return Geometry{geom: g.geom.Intersection(other.geom), srid: g.srid}, nil
}

// Length returns the total length of the geometry in CRS units, i.e.
// meters for EPSG:3857 and degrees for EPSG:4326.
func (g Geometry) Length() float64 {
	if g.IsEmpty() {
		return 0
	}

	return g.geom.Length()
}

// InterpolatePoint returns the coordinates of the point at the given
// arc-length position along a lineal geometry.
func (g Geometry) InterpolatePoint(distance float64) (float64, float64, error) {
	if g.IsEmpty() {
		return 0, 0, ErrEmptyGeometry
	}

	p := g.geom.Interpolate(distance)
	if p == nil || p.IsEmpty() {
		return 0, 0, ErrEmptyGeometry
	}

	return p.X(), p.Y(), nil
}

// NearestPosition returns the arc-length position along a lineal geometry
// of the point nearest to (x, y). Coordinates must be expressed in the
// geometry's own CRS.
func (g Geometry) NearestPosition(x, y float64) (float64, error) {
	if g.IsEmpty() {
		return 0, ErrEmptyGeometry
	}

	p, err := geos.NewGeomFromWKT(fmt.Sprintf("POINT (%.12f %.12f)", x, y))
	if err != nil {
		return 0, fmt.Errorf("%w: %s", ErrInvalidGeometry, err.Error())
	}

	return g.geom.Project(p), nil
}

// GeoJSON returns the geometry member as raw GeoJSON, without any CRS
// tagging. Callers that need an interchange document should use
// ExportFeatureCollection instead.
func (g Geometry) GeoJSON() (json.RawMessage, error) {
	if g.geom == nil {
		return nil, ErrEmptyGeometry
	}

	return json.RawMessage(g.geom.ToGeoJSON(-1)), nil
}

func mustMarshal(v any) json.RawMessage {
	b, _ := json.Marshal(v)
	return b
}
