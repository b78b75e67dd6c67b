package types

import (
	"encoding/json"
	"time"
)

// FeatureCollection is the GeoJSON structure used for both dataset
// ingest and boundary export. Exported collections are always tagged
// with the geographic CRS (EPSG:4326).
type FeatureCollection struct {
	Type     string    `json:"type"`
	CRS      *CRS      `json:"crs,omitempty"`
	Features []Feature `json:"features"`
}

type Feature struct {
	Type       string          `json:"type"`
	Geometry   json.RawMessage `json:"geometry"`
	Properties map[string]any  `json:"properties"`
}

// CRS follows the named-CRS convention from the GeoJSON 2008 spec,
// e.g. {"type":"name","properties":{"name":"EPSG:4326"}}.
type CRS struct {
	Type       string        `json:"type"`
	Properties CRSProperties `json:"properties"`
}

type CRSProperties struct {
	Name string `json:"name"`
}

func NamedCRS(name string) *CRS {
	return &CRS{
		Type:       "name",
		Properties: CRSProperties{Name: name},
	}
}

const (
	MethodLookup       string = "lookup"
	MethodSharedBorder string = "shared-border"
	MethodMedianLine   string = "median-line"
)

// DetectionRequest selects exactly one detection method per request.
// DatasetID drives the lookup and shared-border methods. The median-line
// method instead takes one coastline dataset per side.
type DetectionRequest struct {
	Method   string `json:"method"`
	Country1 string `json:"country1"`
	Country2 string `json:"country2"`

	DatasetID string `json:"datasetID,omitempty"`

	// shared-border only: the column holding the country name. It is
	// required and not resolved from the alias tables.
	CountryField string `json:"countryField,omitempty"`

	// median-line only
	FirstCoastlineID  string `json:"firstCoastlineID,omitempty"`
	SecondCoastlineID string `json:"secondCoastlineID,omitempty"`
	SampleCount       int    `json:"sampleCount,omitempty"`
}

type DetectionOutcome struct {
	ID       string `json:"id,omitempty"`
	Method   string `json:"method"`
	Country1 string `json:"country1"`
	Country2 string `json:"country2"`

	Found        bool     `json:"found"`
	MatchedCount int      `json:"matchedCount"`
	Warnings     []string `json:"warnings,omitempty"`

	Boundary *FeatureCollection `json:"boundary,omitempty"`
}

type DatasetInfo struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	SRID         int       `json:"srid"`
	FeatureCount int       `json:"featureCount"`
	Fields       []string  `json:"fields"`
	Warnings     []string  `json:"warnings,omitempty"`
	UploadedAt   time.Time `json:"uploadedAt"`
}

type Collection[T any] struct {
	Data       []T    `json:"data"`
	Count      uint64 `json:"count"`
	Offset     uint64 `json:"offset"`
	Limit      uint64 `json:"limit"`
	TotalCount uint64 `json:"totalCount"`
}
