package boundaries

import (
	"context"
	"errors"
	"fmt"

	"github.com/oceanbound/maritime-boundary-api/internal/pkg/infrastructure/repositories/database"
	"gorm.io/gorm"
)

var ErrDatasetNotFound = fmt.Errorf("dataset not found")
var ErrBoundaryNotFound = fmt.Errorf("boundary not found")
var ErrRepositoryError = fmt.Errorf("could not fetch data from repository")

func NewRepository(connect database.ConnectorFunc) (Repository, error) {
	impl, err := connect()
	if err != nil {
		return nil, err
	}

	err = impl.AutoMigrate(&Dataset{}, &Boundary{})
	if err != nil {
		return nil, err
	}

	return &boundaryRepository{
		db: impl,
	}, nil
}

//go:generate moq -rm -out boundaryrepository_mock.go . Repository

type Repository interface {
	SaveDataset(ctx context.Context, dataset *Dataset) error
	GetDatasets(ctx context.Context) ([]Dataset, error)
	GetDatasetByID(ctx context.Context, datasetID string) (Dataset, error)

	SaveBoundary(ctx context.Context, boundary *Boundary) error
	GetBoundaryByID(ctx context.Context, boundaryID string) (Boundary, error)
	QueryBoundaries(ctx context.Context, conditions ...ConditionFunc) ([]Boundary, error)
}

type boundaryRepository struct {
	db *gorm.DB
}

func (r *boundaryRepository) SaveDataset(ctx context.Context, dataset *Dataset) error {
	result := r.db.WithContext(ctx).Save(dataset)
	return result.Error
}

func (r *boundaryRepository) GetDatasets(ctx context.Context) ([]Dataset, error) {
	var datasets []Dataset

	result := r.db.WithContext(ctx).Omit("content").Order("created_at DESC").Find(&datasets)

	return datasets, result.Error
}

func (r *boundaryRepository) GetDatasetByID(ctx context.Context, datasetID string) (Dataset, error) {
	var dataset Dataset

	result := r.db.WithContext(ctx).Where(&Dataset{DatasetID: datasetID}).First(&dataset)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Dataset{}, ErrDatasetNotFound
		}

		return Dataset{}, ErrRepositoryError
	}

	return dataset, nil
}

func (r *boundaryRepository) SaveBoundary(ctx context.Context, boundary *Boundary) error {
	result := r.db.WithContext(ctx).Save(boundary)
	return result.Error
}

func (r *boundaryRepository) GetBoundaryByID(ctx context.Context, boundaryID string) (Boundary, error) {
	var boundary Boundary

	result := r.db.WithContext(ctx).Where(&Boundary{BoundaryID: boundaryID}).First(&boundary)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Boundary{}, ErrBoundaryNotFound
		}

		return Boundary{}, ErrRepositoryError
	}

	return boundary, nil
}

func (r *boundaryRepository) QueryBoundaries(ctx context.Context, conditions ...ConditionFunc) ([]Boundary, error) {
	query := r.db.WithContext(ctx).Model(&Boundary{}).Omit("geo_json")

	for _, condition := range conditions {
		query = condition(query)
	}

	var boundaries []Boundary
	result := query.Order("created_at DESC").Find(&boundaries)

	return boundaries, result.Error
}
