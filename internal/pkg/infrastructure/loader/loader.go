// Package loader parses uploaded GeoJSON feature collections into the
// record sets the detection core operates on. The service is agnostic to
// how the file was produced; properties become record fields and the CRS
// member, when present, is honoured.
package loader

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/oceanbound/maritime-boundary-api/internal/pkg/application/detection"
	"github.com/oceanbound/maritime-boundary-api/internal/pkg/infrastructure/geometries"
	"github.com/oceanbound/maritime-boundary-api/pkg/types"
)

var ErrNoFeatures = fmt.Errorf("feature collection contains no features")

// ParseFeatureCollection decodes a GeoJSON feature collection. A missing
// CRS member is not an error: the coordinates are assumed to be
// geographic (EPSG:4326) and the assumption is reported as a warning on
// the returned record set.
func ParseFeatureCollection(data []byte) (detection.RecordSet, error) {
	var fc types.FeatureCollection

	err := json.Unmarshal(data, &fc)
	if err != nil {
		return detection.RecordSet{}, fmt.Errorf("could not parse geojson: %w", err)
	}

	if len(fc.Features) == 0 {
		return detection.RecordSet{}, ErrNoFeatures
	}

	srid := geometries.WGS84
	warnings := []string{}

	if fc.CRS == nil {
		warnings = append(warnings, "dataset has no crs member, assuming EPSG:4326 (WGS84)")
	} else {
		srid, err = geometries.SRIDFromCRSName(fc.CRS.Properties.Name)
		if err != nil {
			return detection.RecordSet{}, err
		}
	}

	fields := map[string]struct{}{}
	records := make([]detection.Record, 0, len(fc.Features))

	for i, f := range fc.Features {
		record := detection.Record{
			Fields: f.Properties,
		}

		if record.Fields == nil {
			record.Fields = map[string]any{}
		}

		for name := range record.Fields {
			fields[name] = struct{}{}
		}

		if len(f.Geometry) > 0 {
			g, err := geometries.FromGeoJSON(f.Geometry, srid)
			if err != nil {
				return detection.RecordSet{}, fmt.Errorf("feature %d: %w", i, err)
			}
			record.Geometry = g
		}

		records = append(records, record)
	}

	schema := make([]string, 0, len(fields))
	for name := range fields {
		schema = append(schema, name)
	}
	sort.Strings(schema)

	return detection.RecordSet{
		Fields:   schema,
		Records:  records,
		SRID:     srid,
		Warnings: warnings,
	}, nil
}
