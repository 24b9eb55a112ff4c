package services

import (
	"context"
	"log"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"tripcraft/internal/models/db_models"
	"tripcraft/internal/models/request_models"
	"tripcraft/internal/models/response_models"
	"tripcraft/internal/repositories"
	"tripcraft/pkg/providers"
	"tripcraft/pkg/utils"
)

const (
	poolSearchRadiusMeters = 15000
	poolSearchLimit        = 50
	imageEnrichmentWorkers = 4
)

// providerCategoryTable maps a venue kind onto the provider's search
// category. ACTIVITY aliases to the attraction category.
var providerCategoryTable = map[db_models.VenueKind]string{
	db_models.KindHotel:      "lodging",
	db_models.KindRestaurant: "restaurants",
	db_models.KindAttraction: "attractions",
	db_models.KindActivity:   "attractions",
}

// poolKinds is the fixed query order; response order within each kind is
// preserved so day slicing stays reproducible.
var poolKinds = []db_models.VenueKind{
	db_models.KindHotel,
	db_models.KindRestaurant,
	db_models.KindAttraction,
}

type VenuePoolServiceInterface interface {
	// BuildPool queries the places provider per venue kind, normalizes
	// and stores what it finds, and returns the preference-filtered pool.
	BuildPool(ctx context.Context, dest *db_models.Destination, interests []string, budgetTier string) ([]response_models.VenueView, error)
	SyncDestination(ctx context.Context, req request_models.SyncVenuesRequest) (int, error)
	ListVenues(ctx context.Context, destinationID string, kind string, page, pageSize int) ([]response_models.VenueView, error)
	DeleteVenue(ctx context.Context, id string) error
}

type VenuePoolService struct {
	placesClient providers.PlacesClientInterface
	imageClient  providers.ImageClientInterface
	venueRepo    repositories.VenueRepository
	destRepo     repositories.DestinationRepository
}

func NewVenuePoolService(
	placesClient providers.PlacesClientInterface,
	imageClient providers.ImageClientInterface,
	venueRepo repositories.VenueRepository,
	destRepo repositories.DestinationRepository,
) VenuePoolServiceInterface {
	return &VenuePoolService{
		placesClient: placesClient,
		imageClient:  imageClient,
		venueRepo:    venueRepo,
		destRepo:     destRepo,
	}
}

func (s *VenuePoolService) BuildPool(ctx context.Context, dest *db_models.Destination, interests []string, budgetTier string) ([]response_models.VenueView, error) {
	pool, err := s.collectVenues(ctx, dest)
	if err != nil {
		return nil, err
	}
	return FilterVenues(pool, budgetTier, interests), nil
}

// collectVenues queries, normalizes and upserts every venue the provider
// returns, unfiltered. The returned views mirror what was written.
func (s *VenuePoolService) collectVenues(ctx context.Context, dest *db_models.Destination) ([]response_models.VenueView, error) {
	pool := make([]response_models.VenueView, 0, poolSearchLimit*len(poolKinds))
	var lastErr error

	for _, kind := range poolKinds {
		records, err := s.placesClient.SearchNearby(ctx, dest.Latitude, dest.Longitude, providerCategoryTable[kind], poolSearchRadiusMeters, poolSearchLimit)
		if err != nil {
			// One failed kind never aborts the build.
			log.Printf("Places search for %s near %s failed: %v", kind, dest.Name, err)
			lastErr = err
			continue
		}

		for _, raw := range records {
			venue := NormalizeRawVenue(raw, kind, dest.ID)
			stored, err := s.venueRepo.UpsertVenue(ctx, &venue)
			if err != nil {
				log.Printf("Upsert of venue %q failed: %v", venue.Name, err)
				stored = &venue
			}
			pool = append(pool, VenueToView(*stored))
		}
	}

	if len(pool) == 0 && lastErr != nil {
		return nil, utils.ErrProviderUnavailable
	}
	return pool, nil
}

// SyncDestination refreshes the stored venue pool for a destination and
// backfills missing venue images. The count reports every venue written,
// not a preference-filtered subset; sync stores the whole pool so later
// trips with other budgets or interests can draw from it.
func (s *VenuePoolService) SyncDestination(ctx context.Context, req request_models.SyncVenuesRequest) (int, error) {
	dest, err := s.destRepo.GetOrCreate(ctx, req.City, req.Country, req.Latitude, req.Longitude)
	if err != nil {
		return 0, utils.ErrDatabaseError
	}

	pool, err := s.collectVenues(ctx, dest)
	if err != nil {
		return 0, err
	}

	s.enrichImages(ctx, dest.Name, pool)
	return len(pool), nil
}

// enrichImages fans out one image lookup per venue that has none. Each
// lookup is an independent read, so a bounded errgroup is safe here.
func (s *VenuePoolService) enrichImages(ctx context.Context, destinationName string, pool []response_models.VenueView) {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(imageEnrichmentWorkers)

	for _, v := range pool {
		if v.ImageURL != "" {
			continue
		}
		venue := v
		g.Go(func() error {
			urls, err := s.imageClient.SearchImages(gctx, venue.Name+" "+destinationName, 1)
			if err != nil || len(urls) == 0 {
				return nil
			}
			id, err := uuid.Parse(venue.ID)
			if err != nil {
				return nil
			}
			if err := s.venueRepo.UpdateImage(gctx, id, urls[0]); err != nil {
				log.Printf("Image update for venue %s failed: %v", venue.ID, err)
			}
			return nil
		})
	}
	_ = g.Wait()
}

func (s *VenuePoolService) ListVenues(ctx context.Context, destinationID string, kind string, page, pageSize int) ([]response_models.VenueView, error) {
	destID, err := uuid.Parse(destinationID)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}

	dest, err := s.destRepo.GetByID(ctx, destID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if dest == nil {
		return nil, utils.ErrDestinationNotFound
	}

	venues, err := s.venueRepo.ListVenuesByDestination(ctx, destID, db_models.VenueKind(kind), page, pageSize)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	views := make([]response_models.VenueView, 0, len(venues))
	for _, v := range venues {
		views = append(views, VenueToView(v))
	}
	return views, nil
}

func (s *VenuePoolService) DeleteVenue(ctx context.Context, id string) error {
	venueID, err := uuid.Parse(id)
	if err != nil {
		return utils.ErrInvalidInput
	}
	if err := s.venueRepo.Delete(ctx, venueID); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}
