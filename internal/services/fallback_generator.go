package services

import (
	"fmt"
	"math"
	"math/rand"
	"strings"
	"sync"

	"tripcraft/internal/models/response_models"
)

var fallbackRestaurantNames = []string{
	"Street Food Market",
	"Heritage Kitchen",
	"Riverside Cafe",
	"Garden Bistro",
	"Night Market Grill",
}

var fallbackAttractionNames = []string{
	"Old Quarter Walking Tour",
	"National Museum",
	"Central Market",
	"Botanical Gardens",
	"Historic Temple",
	"Scenic Viewpoint",
}

var fallbackPriceTiers = []string{"$", "$$", "$$$"}

// FallbackGenerator synthesizes a venue pool when the places provider is
// down or unconfigured, so composition always has input. The random
// source only jitters ratings and price tiers for variety; it is
// injected so tests can pin a seed.
type FallbackGenerator struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

func NewFallbackGenerator(seed int64) *FallbackGenerator {
	return &FallbackGenerator{rnd: rand.New(rand.NewSource(seed))}
}

func roundRating(r float64) float64 {
	return math.Round(r*10) / 10
}

func syntheticID(destinationName, kind string, i int) string {
	slug := strings.ToLower(strings.ReplaceAll(destinationName, " ", "-"))
	return fmt.Sprintf("synthetic-%s-%s-%d", slug, strings.ToLower(kind), i)
}

// Generate produces one hotel, three restaurants per day and two
// attractions per day, cycling through the fixed name templates.
func (g *FallbackGenerator) Generate(destinationName string, durationDays int) []response_models.VenueView {
	g.mu.Lock()
	defer g.mu.Unlock()

	pool := make([]response_models.VenueView, 0, 1+durationDays*5)

	pool = append(pool, response_models.VenueView{
		ID:        syntheticID(destinationName, "hotel", 0),
		Name:      fmt.Sprintf("%s Central Hotel", destinationName),
		Kind:      "HOTEL",
		Rating:    floatPtr(4.2),
		PriceTier: "$$",
	})

	for i := 0; i < durationDays*3; i++ {
		name := fmt.Sprintf("%s %s", destinationName, fallbackRestaurantNames[i%len(fallbackRestaurantNames)])
		if round := i / len(fallbackRestaurantNames); round > 0 {
			name = fmt.Sprintf("%s %d", name, round+1)
		}
		pool = append(pool, response_models.VenueView{
			ID:        syntheticID(destinationName, "restaurant", i),
			Name:      name,
			Kind:      "RESTAURANT",
			Rating:    floatPtr(roundRating(4.0 + g.rnd.Float64()*0.8)),
			PriceTier: fallbackPriceTiers[g.rnd.Intn(len(fallbackPriceTiers))],
		})
	}

	for i := 0; i < durationDays*2; i++ {
		name := fallbackAttractionNames[i%len(fallbackAttractionNames)]
		if round := i / len(fallbackAttractionNames); round > 0 {
			name = fmt.Sprintf("%s %d", name, round+1)
		}
		pool = append(pool, response_models.VenueView{
			ID:     syntheticID(destinationName, "attraction", i),
			Name:   name,
			Kind:   "ATTRACTION",
			Rating: floatPtr(roundRating(4.1 + g.rnd.Float64()*0.7)),
		})
	}

	return pool
}
