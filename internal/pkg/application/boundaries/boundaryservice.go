package boundaries

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/oceanbound/maritime-boundary-api/internal/pkg/application/detection"
	"github.com/oceanbound/maritime-boundary-api/internal/pkg/infrastructure/geometries"
	"github.com/oceanbound/maritime-boundary-api/internal/pkg/infrastructure/loader"
	"github.com/oceanbound/maritime-boundary-api/internal/pkg/infrastructure/logging"
	db "github.com/oceanbound/maritime-boundary-api/internal/pkg/infrastructure/repositories/database/boundaries"
	"github.com/oceanbound/maritime-boundary-api/pkg/types"
	"github.com/samber/lo"
)

var ErrDatasetNotFound = db.ErrDatasetNotFound
var ErrBoundaryNotFound = db.ErrBoundaryNotFound

var ErrUnknownMethod = fmt.Errorf("unknown detection method")
var ErrMissingCountry = fmt.Errorf("both country names must be provided")
var ErrMissingDatasetRef = fmt.Errorf("request does not reference the datasets its method requires")

//go:generate moq -rm -out boundaryservice_mock.go . BoundaryService
type BoundaryService interface {
	UploadDataset(ctx context.Context, name string, data []byte) (types.DatasetInfo, error)
	GetDatasets(ctx context.Context) ([]types.DatasetInfo, error)
	GetDatasetByID(ctx context.Context, datasetID string) (types.DatasetInfo, error)

	Detect(ctx context.Context, request types.DetectionRequest) (types.DetectionOutcome, error)
	GetBoundaryByID(ctx context.Context, boundaryID string) (types.DetectionOutcome, error)
}

type boundarySvc struct {
	detector detection.BoundaryDetector
	storage  db.Repository
}

func New(detector detection.BoundaryDetector, storage db.Repository) BoundaryService {
	return &boundarySvc{
		detector: detector,
		storage:  storage,
	}
}

// UploadDataset parses and stores an uploaded feature collection. The
// raw content is kept so that later detection requests can be run
// against it.
func (svc *boundarySvc) UploadDataset(ctx context.Context, name string, data []byte) (types.DatasetInfo, error) {
	rs, err := loader.ParseFeatureCollection(data)
	if err != nil {
		return types.DatasetInfo{}, err
	}

	dataset := db.Dataset{
		DatasetID:    uuid.NewString(),
		Name:         name,
		SRID:         int(rs.SRID),
		FeatureCount: len(rs.Records),
		Schema:       strings.Join(rs.Fields, ","),
		Warnings:     strings.Join(rs.Warnings, "\n"),
		Content:      data,
	}

	err = svc.storage.SaveDataset(ctx, &dataset)
	if err != nil {
		return types.DatasetInfo{}, err
	}

	logger := logging.GetLoggerFromContext(ctx)
	logger.Info().
		Str("dataset_id", dataset.DatasetID).
		Int("feature_count", dataset.FeatureCount).
		Msg("dataset stored")

	return datasetInfo(dataset), nil
}

func (svc *boundarySvc) GetDatasets(ctx context.Context) ([]types.DatasetInfo, error) {
	datasets, err := svc.storage.GetDatasets(ctx)
	if err != nil {
		return nil, err
	}

	return lo.Map(datasets, func(d db.Dataset, _ int) types.DatasetInfo {
		return datasetInfo(d)
	}), nil
}

func (svc *boundarySvc) GetDatasetByID(ctx context.Context, datasetID string) (types.DatasetInfo, error) {
	dataset, err := svc.storage.GetDatasetByID(ctx, datasetID)
	if err != nil {
		return types.DatasetInfo{}, err
	}

	return datasetInfo(dataset), nil
}

// Detect runs the requested detection method and stores the outcome. A
// boundary that could not be found is a stored outcome with Found set to
// false, not an error.
func (svc *boundarySvc) Detect(ctx context.Context, request types.DetectionRequest) (types.DetectionOutcome, error) {
	if request.Country1 == "" || request.Country2 == "" {
		return types.DetectionOutcome{}, ErrMissingCountry
	}

	var result detection.Result
	var err error

	switch request.Method {
	case types.MethodLookup:
		result, err = svc.detectByLookup(ctx, request)
	case types.MethodSharedBorder:
		result, err = svc.detectBySharedBorder(ctx, request)
	case types.MethodMedianLine:
		result, err = svc.detectByMedianLine(ctx, request)
	default:
		return types.DetectionOutcome{}, fmt.Errorf("%w: %s", ErrUnknownMethod, request.Method)
	}

	if err != nil {
		return types.DetectionOutcome{}, err
	}

	outcome := types.DetectionOutcome{
		ID:           uuid.NewString(),
		Method:       request.Method,
		Country1:     request.Country1,
		Country2:     request.Country2,
		Found:        result.Found,
		MatchedCount: len(result.Matched),
		Warnings:     result.Warnings,
	}

	boundary := db.Boundary{
		BoundaryID:   outcome.ID,
		Method:       outcome.Method,
		Country1:     outcome.Country1,
		Country2:     outcome.Country2,
		DatasetRefs:  datasetRefs(request),
		Found:        outcome.Found,
		MatchedCount: outcome.MatchedCount,
		Warnings:     strings.Join(outcome.Warnings, "\n"),
	}

	if result.Found {
		fc, err := geometries.ExportFeatureCollection(result.Geometry)
		if err != nil {
			if errors.Is(err, geometries.ErrEmptyGeometry) {
				outcome.Found = false
				boundary.Found = false
			} else {
				return types.DetectionOutcome{}, err
			}
		} else {
			outcome.Boundary = &fc
			boundary.GeoJSON, err = json.Marshal(fc)
			if err != nil {
				return types.DetectionOutcome{}, err
			}
		}
	}

	err = svc.storage.SaveBoundary(ctx, &boundary)
	if err != nil {
		return types.DetectionOutcome{}, err
	}

	logger := logging.GetLoggerFromContext(ctx)
	logger.Info().
		Str("boundary_id", outcome.ID).
		Str("method", outcome.Method).
		Bool("found", outcome.Found).
		Msg("detection completed")

	return outcome, nil
}

func (svc *boundarySvc) GetBoundaryByID(ctx context.Context, boundaryID string) (types.DetectionOutcome, error) {
	boundary, err := svc.storage.GetBoundaryByID(ctx, boundaryID)
	if err != nil {
		return types.DetectionOutcome{}, err
	}

	outcome := types.DetectionOutcome{
		ID:           boundary.BoundaryID,
		Method:       boundary.Method,
		Country1:     boundary.Country1,
		Country2:     boundary.Country2,
		Found:        boundary.Found,
		MatchedCount: boundary.MatchedCount,
		Warnings:     splitLines(boundary.Warnings),
	}

	if len(boundary.GeoJSON) > 0 {
		var fc types.FeatureCollection
		err = json.Unmarshal(boundary.GeoJSON, &fc)
		if err != nil {
			return types.DetectionOutcome{}, fmt.Errorf("stored boundary %s holds invalid geojson: %w", boundaryID, err)
		}
		outcome.Boundary = &fc
	}

	return outcome, nil
}

func (svc *boundarySvc) detectByLookup(ctx context.Context, request types.DetectionRequest) (detection.Result, error) {
	rs, err := svc.loadRecordSet(ctx, request.DatasetID)
	if err != nil {
		return detection.Result{}, err
	}

	return svc.detector.ByBoundaryLines(ctx, rs, request.Country1, request.Country2)
}

func (svc *boundarySvc) detectBySharedBorder(ctx context.Context, request types.DetectionRequest) (detection.Result, error) {
	rs, err := svc.loadRecordSet(ctx, request.DatasetID)
	if err != nil {
		return detection.Result{}, err
	}

	return svc.detector.BySharedBorder(ctx, rs, request.CountryField, request.Country1, request.Country2)
}

func (svc *boundarySvc) detectByMedianLine(ctx context.Context, request types.DetectionRequest) (detection.Result, error) {
	if request.FirstCoastlineID == "" || request.SecondCoastlineID == "" {
		return detection.Result{}, ErrMissingDatasetRef
	}

	coast1, err := svc.loadRecordSet(ctx, request.FirstCoastlineID)
	if err != nil {
		return detection.Result{}, err
	}

	coast2, err := svc.loadRecordSet(ctx, request.SecondCoastlineID)
	if err != nil {
		return detection.Result{}, err
	}

	sampleCount := request.SampleCount
	if sampleCount == 0 {
		sampleCount = svc.detector.Config().Defaults.SampleCount
	}

	return svc.detector.ByMedianLine(ctx, coast1, coast2, sampleCount)
}

func (svc *boundarySvc) loadRecordSet(ctx context.Context, datasetID string) (detection.RecordSet, error) {
	if datasetID == "" {
		return detection.RecordSet{}, ErrMissingDatasetRef
	}

	dataset, err := svc.storage.GetDatasetByID(ctx, datasetID)
	if err != nil {
		return detection.RecordSet{}, err
	}

	return loader.ParseFeatureCollection(dataset.Content)
}

func datasetInfo(d db.Dataset) types.DatasetInfo {
	return types.DatasetInfo{
		ID:           d.DatasetID,
		Name:         d.Name,
		SRID:         d.SRID,
		FeatureCount: d.FeatureCount,
		Fields:       splitList(d.Schema),
		Warnings:     splitLines(d.Warnings),
		UploadedAt:   d.CreatedAt,
	}
}

func datasetRefs(request types.DetectionRequest) string {
	refs := lo.Compact([]string{request.DatasetID, request.FirstCoastlineID, request.SecondCoastlineID})
	return strings.Join(refs, ",")
}

func splitList(s string) []string {
	if s == "" {
		return []string{}
	}
	return strings.Split(s, ",")
}

func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}
