// Package detection locates the maritime boundary between two countries
// in an uploaded geospatial dataset. Three independent strategies are
// provided: lookup of pre-digitized boundary polylines, derivation of a
// shared border from two national polygon sets, and approximation of a
// median line between two coastlines.
package detection

import (
	"context"
	"fmt"
	"io"

	"github.com/oceanbound/maritime-boundary-api/internal/pkg/infrastructure/geometries"
	"go.opentelemetry.io/otel"
	"gopkg.in/yaml.v2"
)

var tracer = otel.Tracer("maritime-boundary-api/detection")

var ErrFieldNotFound = fmt.Errorf("field not found")
var ErrNoMatchFound = fmt.Errorf("no matching records found")
var ErrInvalidSampleCount = fmt.Errorf("sample count must be a positive integer")

//go:generate moq -rm -out detection_mock.go . BoundaryDetector
type BoundaryDetector interface {
	// ByBoundaryLines selects pre-digitized boundary polylines tagged
	// with the two countries and returns their union.
	ByBoundaryLines(ctx context.Context, rs RecordSet, country1, country2 string) (Result, error)

	// BySharedBorder derives the common border from two national polygon
	// subsets (e.g. exclusive economic zones) by intersecting the
	// boundaries of their unions. countryField must name a column that is
	// present in the dataset; it is not resolved from the alias tables.
	BySharedBorder(ctx context.Context, rs RecordSet, countryField, country1, country2 string) (Result, error)

	// ByMedianLine approximates the median between two coastlines by
	// arc-length sampling of the first and nearest-point projection onto
	// the second. The result is an approximation, not a true equidistant
	// median.
	ByMedianLine(ctx context.Context, coast1, coast2 RecordSet, sampleCount int) (Result, error)

	Config() *Config
}

// Config carries the field alias tables and the defaults that the caller
// may override per deployment.
type Config struct {
	Aliases  AliasConfig `yaml:"aliases"`
	Defaults Defaults    `yaml:"defaults"`
}

// AliasConfig lists candidate column names per semantic role, in priority
// order. The order is significant and must be preserved.
type AliasConfig struct {
	LeftCountry  []string `yaml:"leftCountry"`
	RightCountry []string `yaml:"rightCountry"`
}

type Defaults struct {
	SampleCount int `yaml:"sampleCount"`
}

// DefaultConfig returns alias tables covering the column names commonly
// found in published maritime boundary datasets.
func DefaultConfig() *Config {
	return &Config{
		Aliases: AliasConfig{
			LeftCountry:  []string{"left_country", "line_orig", "territory1", "sovereign1", "ctry1", "country1"},
			RightCountry: []string{"right_country", "line_dest", "territory2", "sovereign2", "ctry2", "country2"},
		},
		Defaults: Defaults{
			SampleCount: 250,
		},
	}
}

func NewConfig(config io.ReadCloser) (*Config, error) {
	defer config.Close()

	b, err := io.ReadAll(config)
	if err != nil {
		return nil, err
	}

	cfg := DefaultConfig()
	err = yaml.Unmarshal(b, cfg)
	if err != nil {
		return nil, err
	}

	if len(cfg.Aliases.LeftCountry) == 0 || len(cfg.Aliases.RightCountry) == 0 {
		return nil, fmt.Errorf("alias tables must not be empty")
	}

	if cfg.Defaults.SampleCount <= 0 {
		return nil, ErrInvalidSampleCount
	}

	return cfg, nil
}

type svc struct {
	config *Config
}

func New(config *Config) BoundaryDetector {
	if config == nil {
		config = DefaultConfig()
	}

	return svc{config: config}
}

func (s svc) Config() *Config {
	return s.config
}

// planarized reprojects a geometry to the planar CRS, assuming geographic
// coordinates when the dataset carried no CRS metadata. The assumption is
// reported through the returned warning, never silently applied.
func planarized(g geometries.Geometry) (geometries.Geometry, string, error) {
	warning := ""

	if g.SRID() == geometries.UndefinedCRS {
		warning = "geometry has no CRS metadata, assuming EPSG:4326 (WGS84)"
		g = g.DeclaredAs(geometries.WGS84)
	}

	transformed, err := g.Transform(geometries.WebMercator)
	if err != nil {
		return geometries.Geometry{}, "", err
	}

	return transformed, warning, nil
}
