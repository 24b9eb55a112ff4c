package itinerary_fx

import (
	"time"

	"go.uber.org/fx"
	"gorm.io/gorm"

	"tripcraft/internal/repositories"
	"tripcraft/internal/services"
	"tripcraft/pkg/memcache"
	"tripcraft/pkg/providers"
)

var Module = fx.Provide(
	provideItineraryRepo,
	provideItineraryCache,
	provideFallbackGenerator,
	provideItineraryService,
)

func provideItineraryRepo(db *gorm.DB) repositories.ItineraryRepository {
	return repositories.NewItineraryRepository(db)
}

func provideItineraryCache() memcache.ItineraryCache {
	return memcache.NewItineraryCache()
}

func provideFallbackGenerator() *services.FallbackGenerator {
	return services.NewFallbackGenerator(time.Now().UnixNano())
}

func provideItineraryService(
	poolService services.VenuePoolServiceInterface,
	fallback *services.FallbackGenerator,
	enrichment services.EnrichmentServiceInterface,
	imageClient providers.ImageClientInterface,
	itineraryRepo repositories.ItineraryRepository,
	destRepo repositories.DestinationRepository,
	cache memcache.ItineraryCache,
) services.ItineraryServiceInterface {
	return services.NewItineraryService(poolService, fallback, enrichment, imageClient, itineraryRepo, destRepo, cache)
}
