package providers_fx

import (
	"os"

	"go.uber.org/fx"

	"tripcraft/pkg/providers"
)

var Module = fx.Provide(providePlacesClient, provideImageClient)

func providePlacesClient() providers.PlacesClientInterface {
	base := os.Getenv("PLACES_BASE_URL")
	if base == "" {
		base = "https://api.places.example.com/v3"
	}
	return providers.NewPlacesClient(base, os.Getenv("PLACES_API_KEY"))
}

func provideImageClient() providers.ImageClientInterface {
	base := os.Getenv("IMAGE_BASE_URL")
	if base == "" {
		base = "https://api.images.example.com"
	}
	return providers.NewImageClient(base, os.Getenv("IMAGE_API_KEY"))
}
