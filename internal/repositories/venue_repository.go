package repositories

import (
	"context"
	"errors"
	"math"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"tripcraft/internal/models/db_models"
)

// CoordTolerance is the proximity window for the name-based dedup match.
const CoordTolerance = 0.001

type VenueRepository interface {
	// UpsertVenue inserts the venue or updates the stored record it
	// deduplicates against. Matching is by (external_id, source) first,
	// then by name plus coordinates within ±CoordTolerance degrees.
	UpsertVenue(ctx context.Context, venue *db_models.Venue) (*db_models.Venue, error)
	ListVenuesByDestination(ctx context.Context, destinationID uuid.UUID, kind db_models.VenueKind, page, pageSize int) ([]db_models.Venue, error)
	UpdateImage(ctx context.Context, id uuid.UUID, imageURL string) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type venueRepository struct {
	db *gorm.DB
}

func NewVenueRepository(db *gorm.DB) VenueRepository {
	return &venueRepository{db: db}
}

// SameVenue reports whether incoming deduplicates against existing.
func SameVenue(existing, incoming *db_models.Venue) bool {
	if incoming.ExternalID != "" && existing.ExternalID == incoming.ExternalID && existing.Source == incoming.Source {
		return true
	}
	if existing.Name != incoming.Name {
		return false
	}
	if existing.Latitude == nil || existing.Longitude == nil || incoming.Latitude == nil || incoming.Longitude == nil {
		return false
	}
	return math.Abs(*existing.Latitude-*incoming.Latitude) <= CoordTolerance &&
		math.Abs(*existing.Longitude-*incoming.Longitude) <= CoordTolerance
}

// MergeVenue copies the mutable fields of src onto dst. Identity fields
// (id, external id, source, destination, kind) stay as stored.
func MergeVenue(dst *db_models.Venue, src *db_models.Venue) {
	dst.Name = src.Name
	dst.Rating = src.Rating
	dst.PriceTier = src.PriceTier
	dst.Tags = src.Tags
	dst.Description = src.Description
	if src.ImageURL != "" {
		dst.ImageURL = src.ImageURL
	}
	if src.Latitude != nil {
		dst.Latitude = src.Latitude
	}
	if src.Longitude != nil {
		dst.Longitude = src.Longitude
	}
}

func (r *venueRepository) UpsertVenue(ctx context.Context, venue *db_models.Venue) (*db_models.Venue, error) {
	var stored *db_models.Venue

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing db_models.Venue
		err := tx.Where("external_id = ? AND source = ?", venue.ExternalID, venue.Source).
			First(&existing).Error
		if err != nil && errors.Is(err, gorm.ErrRecordNotFound) && venue.Latitude != nil && venue.Longitude != nil {
			err = tx.Where(
				"destination_id = ? AND name = ? AND latitude BETWEEN ? AND ? AND longitude BETWEEN ? AND ?",
				venue.DestinationID, venue.Name,
				*venue.Latitude-CoordTolerance, *venue.Latitude+CoordTolerance,
				*venue.Longitude-CoordTolerance, *venue.Longitude+CoordTolerance,
			).First(&existing).Error
		}

		switch {
		case err == nil:
			MergeVenue(&existing, venue)
			if saveErr := tx.Save(&existing).Error; saveErr != nil {
				return saveErr
			}
			stored = &existing
			return nil
		case errors.Is(err, gorm.ErrRecordNotFound):
			if createErr := tx.Create(venue).Error; createErr != nil {
				return createErr
			}
			stored = venue
			return nil
		default:
			return err
		}
	})
	if err != nil {
		return nil, err
	}
	return stored, nil
}

func (r *venueRepository) ListVenuesByDestination(ctx context.Context, destinationID uuid.UUID, kind db_models.VenueKind, page, pageSize int) ([]db_models.Venue, error) {
	var venues []db_models.Venue

	query := r.db.WithContext(ctx).
		Where("destination_id = ?", destinationID).
		Order("rating DESC NULLS LAST").
		Order("updated_at DESC")

	if kind != "" {
		query = query.Where("kind = ?", kind)
	}
	if page > 0 && pageSize > 0 {
		query = query.Offset((page - 1) * pageSize).Limit(pageSize)
	}

	if err := query.Find(&venues).Error; err != nil {
		return nil, err
	}
	return venues, nil
}

func (r *venueRepository) UpdateImage(ctx context.Context, id uuid.UUID, imageURL string) error {
	return r.db.WithContext(ctx).
		Model(&db_models.Venue{}).
		Where("id = ?", id).
		Update("image_url", imageURL).Error
}

func (r *venueRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := r.db.WithContext(ctx).Delete(&db_models.Venue{}, "id = ?", id).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return nil
}
