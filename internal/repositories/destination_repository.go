package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"tripcraft/internal/models/db_models"
)

type DestinationRepository interface {
	GetOrCreate(ctx context.Context, name, country string, lat, lng float64) (*db_models.Destination, error)
	GetByID(ctx context.Context, id uuid.UUID) (*db_models.Destination, error)
}

type destinationRepository struct {
	db *gorm.DB
}

func NewDestinationRepository(db *gorm.DB) DestinationRepository {
	return &destinationRepository{db: db}
}

func (r *destinationRepository) GetOrCreate(ctx context.Context, name, country string, lat, lng float64) (*db_models.Destination, error) {
	var dest db_models.Destination
	err := r.db.WithContext(ctx).First(&dest, "name = ?", name).Error
	if err == nil {
		return &dest, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	dest = db_models.Destination{
		Name:      name,
		Country:   country,
		Latitude:  lat,
		Longitude: lng,
	}
	if err := r.db.WithContext(ctx).Create(&dest).Error; err != nil {
		return nil, err
	}
	return &dest, nil
}

func (r *destinationRepository) GetByID(ctx context.Context, id uuid.UUID) (*db_models.Destination, error) {
	var dest db_models.Destination
	err := r.db.WithContext(ctx).First(&dest, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &dest, nil
}
