package db_models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
)

type VenueKind string

const (
	KindHotel      VenueKind = "HOTEL"
	KindRestaurant VenueKind = "RESTAURANT"
	KindAttraction VenueKind = "ATTRACTION"
	KindActivity   VenueKind = "ACTIVITY"
)

type PriceTier string

const (
	PriceCheap     PriceTier = "$"
	PriceModerate  PriceTier = "$$"
	PriceExpensive PriceTier = "$$$"
	PriceLuxury    PriceTier = "$$$$"
)

const (
	SourceProvider  = "PROVIDER"
	SourceSynthetic = "SYNTHETIC"
)

// Venue is one point of interest attached to a destination. Provider
// venues carry (ExternalID, Source) as their dedup key; synthetic
// venues get a locally generated external id.
type Venue struct {
	BaseModel
	ExternalID    string         `gorm:"uniqueIndex:idx_venues_external_source"`
	Source        string         `gorm:"uniqueIndex:idx_venues_external_source"`
	DestinationID uuid.UUID      `gorm:"index"`
	Name          string
	Kind          VenueKind
	Latitude      *float64
	Longitude     *float64
	Rating        *float64
	PriceTier     PriceTier      `gorm:"default:'$$'"`
	Tags          pq.StringArray `gorm:"type:text[]"`
	ImageURL      string
	Description   string

	Destination Destination
}
