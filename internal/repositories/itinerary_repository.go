package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"tripcraft/internal/models/db_models"
)

type ItineraryRepository interface {
	Create(ctx context.Context, itinerary *db_models.Itinerary) (uuid.UUID, error)
	GetByID(ctx context.Context, id uuid.UUID) (*db_models.Itinerary, error)
	ListByUser(ctx context.Context, userID uuid.UUID, page, pageSize int) ([]db_models.Itinerary, error)
	// ReplaceDocument swaps the whole stored document; partial updates
	// are not supported.
	ReplaceDocument(ctx context.Context, id uuid.UUID, document datatypes.JSON) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type itineraryRepository struct {
	db *gorm.DB
}

func NewItineraryRepository(db *gorm.DB) ItineraryRepository {
	return &itineraryRepository{db: db}
}

func (r *itineraryRepository) Create(ctx context.Context, itinerary *db_models.Itinerary) (uuid.UUID, error) {
	if err := r.db.WithContext(ctx).Create(itinerary).Error; err != nil {
		return uuid.Nil, err
	}
	return itinerary.ID, nil
}

func (r *itineraryRepository) GetByID(ctx context.Context, id uuid.UUID) (*db_models.Itinerary, error) {
	var itinerary db_models.Itinerary
	err := r.db.WithContext(ctx).First(&itinerary, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &itinerary, nil
}

func (r *itineraryRepository) ListByUser(ctx context.Context, userID uuid.UUID, page, pageSize int) ([]db_models.Itinerary, error) {
	var itineraries []db_models.Itinerary
	offset := (page - 1) * pageSize

	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Offset(offset).
		Limit(pageSize).
		Find(&itineraries).Error
	if err != nil {
		return nil, err
	}
	return itineraries, nil
}

func (r *itineraryRepository) ReplaceDocument(ctx context.Context, id uuid.UUID, document datatypes.JSON) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&db_models.Itinerary{}).
			Where("id = ?", id).
			Update("document", document)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *itineraryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := r.db.WithContext(ctx).Delete(&db_models.Itinerary{}, "id = ?", id).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return nil
}
