package venues_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"tripcraft/internal/repositories"
	"tripcraft/internal/services"
	"tripcraft/pkg/providers"
)

var Module = fx.Provide(
	provideVenueRepo,
	provideDestinationRepo,
	provideVenuePoolService,
)

func provideVenueRepo(db *gorm.DB) repositories.VenueRepository {
	return repositories.NewVenueRepository(db)
}

func provideDestinationRepo(db *gorm.DB) repositories.DestinationRepository {
	return repositories.NewDestinationRepository(db)
}

func provideVenuePoolService(
	placesClient providers.PlacesClientInterface,
	imageClient providers.ImageClientInterface,
	venueRepo repositories.VenueRepository,
	destRepo repositories.DestinationRepository,
) services.VenuePoolServiceInterface {
	return services.NewVenuePoolService(placesClient, imageClient, venueRepo, destRepo)
}
