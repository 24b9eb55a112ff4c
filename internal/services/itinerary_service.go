package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"tripcraft/internal/models/db_models"
	"tripcraft/internal/models/response_models"
	"tripcraft/internal/repositories"
	"tripcraft/pkg/memcache"
	"tripcraft/pkg/providers"
	"tripcraft/pkg/utils"
)

const itineraryCacheTTL = 10 * time.Minute

type ItineraryServiceInterface interface {
	// GenerateItinerary builds the deterministic day-by-day plan. It
	// degrades to synthetic venues on any provider problem and only
	// fails for invalid input.
	GenerateItinerary(ctx context.Context, params TripParams) (*response_models.ItineraryResponse, error)
	// GenerateSmartItinerary additionally applies the minimum-rating
	// floor and decorates days with best-effort narratives.
	GenerateSmartItinerary(ctx context.Context, params TripParams) (*response_models.ItineraryResponse, error)
	GetItinerary(ctx context.Context, id string) (*response_models.ItineraryResponse, error)
	ListItineraries(ctx context.Context, userID string, page, pageSize int) ([]response_models.ItineraryListItem, error)
	UpdateItinerary(ctx context.Context, id string, document json.RawMessage) error
	DeleteItinerary(ctx context.Context, id string) error
}

type ItineraryService struct {
	poolService   VenuePoolServiceInterface
	fallback      *FallbackGenerator
	enrichment    EnrichmentServiceInterface
	imageClient   providers.ImageClientInterface
	itineraryRepo repositories.ItineraryRepository
	destRepo      repositories.DestinationRepository
	cache         memcache.ItineraryCache
}

func NewItineraryService(
	poolService VenuePoolServiceInterface,
	fallback *FallbackGenerator,
	enrichment EnrichmentServiceInterface,
	imageClient providers.ImageClientInterface,
	itineraryRepo repositories.ItineraryRepository,
	destRepo repositories.DestinationRepository,
	cache memcache.ItineraryCache,
) ItineraryServiceInterface {
	return &ItineraryService{
		poolService:   poolService,
		fallback:      fallback,
		enrichment:    enrichment,
		imageClient:   imageClient,
		itineraryRepo: itineraryRepo,
		destRepo:      destRepo,
		cache:         cache,
	}
}

func (s *ItineraryService) GenerateItinerary(ctx context.Context, params TripParams) (*response_models.ItineraryResponse, error) {
	return s.generate(ctx, params, false)
}

func (s *ItineraryService) GenerateSmartItinerary(ctx context.Context, params TripParams) (*response_models.ItineraryResponse, error) {
	return s.generate(ctx, params, true)
}

// cacheKey must identify the destination, not just its name: distinct
// cities can share one ("Paris, France" vs "Paris, USA"), so country and
// coordinates are part of the key.
func cacheKey(params TripParams, smart bool) string {
	variant := "direct"
	if smart {
		variant = "smart"
	}
	coords := "none"
	if params.Latitude != nil && params.Longitude != nil {
		coords = fmt.Sprintf("%.4f,%.4f", *params.Latitude, *params.Longitude)
	}
	return fmt.Sprintf("%s|%s|%s|%s|%d|%s|%s|%s",
		strings.ToLower(params.DestinationName),
		strings.ToLower(params.Country),
		coords,
		params.BudgetTier,
		params.DurationDays,
		strings.Join(params.Interests, ","),
		params.StartDate.Format(utils.DateLayout),
		variant,
	)
}

func (s *ItineraryService) generate(ctx context.Context, params TripParams, smart bool) (*response_models.ItineraryResponse, error) {
	key := cacheKey(params, smart)
	if cached, ok := s.cache.Get(key); ok {
		if resp, ok := cached.(*response_models.ItineraryResponse); ok {
			return resp, nil
		}
	}

	pool := s.buildPool(ctx, params)
	if smart {
		pool = ApplyRatingFloor(pool, MinimumRating)
	}

	resp := ComposeItinerary(pool, params.DurationDays, params.DestinationName, params.StartDate)
	resp.BudgetTier = params.BudgetTier
	resp.Travelers = params.Travelers
	resp.TotalBudget = params.TotalBudget

	if len(resp.Images) == 0 {
		// The image client degrades to stable placeholders, never errors.
		urls, _ := s.imageClient.SearchImages(ctx, params.DestinationName, maxItineraryImages)
		resp.Images = urls
	}

	if smart {
		resp.Days = s.enrichment.EnrichDays(ctx, params.DestinationName, resp.Days)
	}

	s.persist(ctx, params, &resp)

	s.cache.Set(key, &resp, itineraryCacheTTL)
	return &resp, nil
}

// buildPool prefers real provider data and falls back to the synthetic
// generator whenever coordinates are missing, the provider fails, or it
// returns nothing the filter keeps. The fallback pool intentionally
// skips the preference filter: it was generated for this trip and the
// composer must never start from an empty pool.
func (s *ItineraryService) buildPool(ctx context.Context, params TripParams) []response_models.VenueView {
	if params.Latitude == nil || params.Longitude == nil {
		return s.fallback.Generate(params.DestinationName, params.DurationDays)
	}

	dest, err := s.destRepo.GetOrCreate(ctx, params.DestinationName, params.Country, *params.Latitude, *params.Longitude)
	if err != nil {
		log.Printf("Destination lookup for %q failed, using synthetic pool: %v", params.DestinationName, err)
		return s.fallback.Generate(params.DestinationName, params.DurationDays)
	}

	pool, err := s.poolService.BuildPool(ctx, dest, params.Interests, params.BudgetTier)
	if err != nil || len(pool) == 0 {
		if err != nil {
			log.Printf("Venue pool for %q unavailable, using synthetic pool: %v", params.DestinationName, err)
		}
		return s.fallback.Generate(params.DestinationName, params.DurationDays)
	}
	return pool
}

// persist stores the composed document. Persistence is best-effort: a
// storage failure is logged and the itinerary is still returned, just
// without a stored id.
func (s *ItineraryService) persist(ctx context.Context, params TripParams, resp *response_models.ItineraryResponse) {
	document, err := json.Marshal(resp)
	if err != nil {
		log.Printf("Marshal of itinerary document failed: %v", err)
		return
	}

	record := &db_models.Itinerary{
		UserID:          params.UserID,
		DestinationName: params.DestinationName,
		Days:            params.DurationDays,
		BudgetTier:      params.BudgetTier,
		TotalCost:       resp.TotalCost,
		Document:        datatypes.JSON(document),
	}
	id, err := s.itineraryRepo.Create(ctx, record)
	if err != nil {
		log.Printf("Persisting itinerary for %q failed: %v", params.DestinationName, err)
		return
	}
	resp.ID = id.String()
}

func (s *ItineraryService) GetItinerary(ctx context.Context, id string) (*response_models.ItineraryResponse, error) {
	itineraryID, err := uuid.Parse(id)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}

	record, err := s.itineraryRepo.GetByID(ctx, itineraryID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if record == nil {
		return nil, utils.ErrItineraryNotFound
	}

	var resp response_models.ItineraryResponse
	if err := json.Unmarshal(record.Document, &resp); err != nil {
		return nil, utils.ErrDatabaseError
	}
	resp.ID = record.ID.String()
	return &resp, nil
}

func (s *ItineraryService) ListItineraries(ctx context.Context, userID string, page, pageSize int) ([]response_models.ItineraryListItem, error) {
	if page < 1 {
		return nil, utils.ErrInvalidPage
	}
	if pageSize < 1 || pageSize > 100 {
		return nil, utils.ErrInvalidPageSize
	}
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}

	records, err := s.itineraryRepo.ListByUser(ctx, uid, page, pageSize)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.ItineraryListItem, 0, len(records))
	for _, record := range records {
		out = append(out, response_models.ItineraryListItem{
			ID:              record.ID.String(),
			DestinationName: record.DestinationName,
			Days:            record.Days,
			BudgetTier:      record.BudgetTier,
			TotalCost:       record.TotalCost,
			CreatedAt:       record.CreatedAt,
		})
	}
	return out, nil
}

func (s *ItineraryService) UpdateItinerary(ctx context.Context, id string, document json.RawMessage) error {
	itineraryID, err := uuid.Parse(id)
	if err != nil {
		return utils.ErrInvalidInput
	}

	// The update endpoint replaces the whole document; reject anything
	// that does not decode as an itinerary.
	var resp response_models.ItineraryResponse
	if err := json.Unmarshal(document, &resp); err != nil || len(resp.Days) == 0 {
		return fmt.Errorf("%w: document must be a full itinerary", utils.ErrInvalidInput)
	}

	if err := s.itineraryRepo.ReplaceDocument(ctx, itineraryID, datatypes.JSON(document)); err != nil {
		if record, getErr := s.itineraryRepo.GetByID(ctx, itineraryID); getErr == nil && record == nil {
			return utils.ErrItineraryNotFound
		}
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *ItineraryService) DeleteItinerary(ctx context.Context, id string) error {
	itineraryID, err := uuid.Parse(id)
	if err != nil {
		return utils.ErrInvalidInput
	}
	if err := s.itineraryRepo.Delete(ctx, itineraryID); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}
