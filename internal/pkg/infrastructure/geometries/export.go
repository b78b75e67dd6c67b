package geometries

import (
	"encoding/json"

	"github.com/oceanbound/maritime-boundary-api/pkg/types"
)

// ExportFeatureCollection wraps one or more geometries into a GeoJSON
// feature collection in geographic coordinates. Geometries arriving in a
// projected CRS are reprojected; the output is always tagged EPSG:4326.
func ExportFeatureCollection(geoms ...Geometry) (types.FeatureCollection, error) {
	features := make([]types.Feature, 0, len(geoms))

	for _, g := range geoms {
		if g.IsEmpty() {
			continue
		}

		if g.SRID() != WGS84 {
			transformed, err := g.Transform(WGS84)
			if err != nil {
				return types.FeatureCollection{}, err
			}
			g = transformed
		}

		raw, err := g.GeoJSON()
		if err != nil {
			return types.FeatureCollection{}, err
		}

		features = append(features, types.Feature{
			Type:       "Feature",
			Geometry:   raw,
			Properties: map[string]any{},
		})
	}

	if len(features) == 0 {
		return types.FeatureCollection{}, ErrEmptyGeometry
	}

	return types.FeatureCollection{
		Type:     "FeatureCollection",
		CRS:      types.NamedCRS(WGS84.Name()),
		Features: features,
	}, nil
}

// Export serializes geometries to interchange bytes, see
// ExportFeatureCollection.
func Export(geoms ...Geometry) ([]byte, error) {
	fc, err := ExportFeatureCollection(geoms...)
	if err != nil {
		return nil, err
	}

	return json.Marshal(fc)
}
