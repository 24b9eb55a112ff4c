package services

import (
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"tripcraft/internal/models/db_models"
	"tripcraft/internal/models/response_models"
	"tripcraft/pkg/providers"
)

// priceLevelTable maps the provider's free-text or symbolic price level
// onto a canonical tier. Lookups are case-insensitive; anything
// unrecognized falls back to "$".
var priceLevelTable = map[string]db_models.PriceTier{
	"inexpensive":    db_models.PriceCheap,
	"$":              db_models.PriceCheap,
	"moderate":       db_models.PriceModerate,
	"$$":             db_models.PriceModerate,
	"expensive":      db_models.PriceExpensive,
	"$$$":            db_models.PriceExpensive,
	"very expensive": db_models.PriceLuxury,
	"$$$$":           db_models.PriceLuxury,
}

func MapPriceLevel(level string) db_models.PriceTier {
	if tier, ok := priceLevelTable[strings.ToLower(strings.TrimSpace(level))]; ok {
		return tier
	}
	return db_models.PriceCheap
}

// NormalizeRawVenue converts one provider record into the canonical venue
// shape. Kind and price tier are always set on the result; unparseable
// numeric fields are dropped rather than stored as zero.
func NormalizeRawVenue(raw providers.RawVenueRecord, kind db_models.VenueKind, destinationID uuid.UUID) db_models.Venue {
	venue := db_models.Venue{
		ExternalID:    raw.ID,
		Source:        db_models.SourceProvider,
		DestinationID: destinationID,
		Name:          raw.Name,
		Kind:          kind,
		PriceTier:     MapPriceLevel(raw.PriceLevel),
		ImageURL:      raw.ImageURL,
	}

	if lat, err := raw.Latitude.Float64(); err == nil {
		venue.Latitude = &lat
	}
	if lng, err := raw.Longitude.Float64(); err == nil {
		venue.Longitude = &lng
	}
	if rating, err := raw.Rating.Float64(); err == nil {
		venue.Rating = &rating
	}

	tags := make(pq.StringArray, 0, len(raw.Categories)*2)
	for _, cat := range raw.Categories {
		if cat.Name != "" {
			tags = append(tags, strings.ToLower(cat.Name))
		}
		if cat.Subcategory != "" {
			tags = append(tags, strings.ToLower(cat.Subcategory))
		}
	}
	venue.Tags = tags

	return venue
}

func VenueToView(v db_models.Venue) response_models.VenueView {
	return response_models.VenueView{
		ID:        v.ID.String(),
		Name:      v.Name,
		Kind:      string(v.Kind),
		Latitude:  v.Latitude,
		Longitude: v.Longitude,
		Rating:    v.Rating,
		PriceTier: string(v.PriceTier),
		Tags:      []string(v.Tags),
		ImageURL:  v.ImageURL,
	}
}
