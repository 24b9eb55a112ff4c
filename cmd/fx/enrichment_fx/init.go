package enrichment_fx

import (
	"log"
	"os"

	"go.uber.org/fx"

	"tripcraft/internal/services"
	"tripcraft/pkg/utils"
)

var Module = fx.Provide(provideNarrativeClient, provideEnrichmentService)

// provideNarrativeClient picks whichever AI provider is configured;
// with no key at all itineraries are simply returned without prose.
func provideNarrativeClient() utils.NarrativeClientInterface {
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		return utils.NewOpenAINarrativeClient(key, os.Getenv("OPENAI_MODEL"))
	}
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		client, err := utils.NewGeminiNarrativeClient(key, os.Getenv("GEMINI_MODEL"))
		if err == nil {
			return client
		}
		log.Printf("Gemini client unavailable, narratives disabled: %v", err)
	}
	return utils.NewNoopNarrativeClient()
}

func provideEnrichmentService(client utils.NarrativeClientInterface) services.EnrichmentServiceInterface {
	return services.NewEnrichmentService(client)
}
