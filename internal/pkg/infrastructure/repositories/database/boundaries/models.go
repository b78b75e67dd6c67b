package boundaries

import (
	"gorm.io/gorm"
)

// Dataset is one uploaded geospatial file, kept verbatim so that a
// detection request can be re-run against it and so previews can show
// the contributing records.
type Dataset struct {
	gorm.Model `json:"-"`

	DatasetID string `gorm:"uniqueIndex" json:"id"`
	Name      string `json:"name"`
	SRID      int    `json:"srid"`

	FeatureCount int    `json:"featureCount"`
	Schema       string `json:"schema"`
	Warnings     string `json:"warnings"`

	Content []byte `json:"-"`
}

// Boundary is the stored outcome of one detection request. GeoJSON holds
// the exported feature collection when a boundary was found.
type Boundary struct {
	gorm.Model `json:"-"`

	BoundaryID string `gorm:"uniqueIndex" json:"id"`

	Method   string `json:"method"`
	Country1 string `json:"country1"`
	Country2 string `json:"country2"`

	DatasetRefs string `json:"datasetRefs"`

	Found        bool   `json:"found"`
	MatchedCount int    `json:"matchedCount"`
	Warnings     string `json:"warnings"`

	GeoJSON []byte `json:"-"`
}
