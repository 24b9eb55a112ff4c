package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"tripcraft/internal/models/response_models"
)

func taggedVenue(id, tier string, tags ...string) response_models.VenueView {
	return response_models.VenueView{
		ID:        id,
		Name:      id,
		Kind:      "RESTAURANT",
		PriceTier: tier,
		Tags:      tags,
	}
}

func ids(venues []response_models.VenueView) []string {
	out := make([]string, 0, len(venues))
	for _, v := range venues {
		out = append(out, v.ID)
	}
	return out
}

func TestFilterVenues_BudgetLow(t *testing.T) {
	pool := []response_models.VenueView{
		taggedVenue("cheap", "$"),
		taggedVenue("moderate", "$$"),
		taggedVenue("expensive", "$$$"),
		taggedVenue("luxury", "$$$$"),
		taggedVenue("untiered", ""),
	}

	out := FilterVenues(pool, "low", nil)

	assert.Equal(t, []string{"cheap", "moderate", "untiered"}, ids(out))
}

func TestFilterVenues_BudgetTiers(t *testing.T) {
	pool := []response_models.VenueView{
		taggedVenue("cheap", "$"),
		taggedVenue("moderate", "$$"),
		taggedVenue("expensive", "$$$"),
		taggedVenue("luxury", "$$$$"),
	}

	assert.Equal(t, []string{"moderate", "expensive"}, ids(FilterVenues(pool, "mid", nil)))
	assert.Equal(t, []string{"expensive", "luxury"}, ids(FilterVenues(pool, "high", nil)))
}

func TestFilterVenues_InterestSubstringMatch(t *testing.T) {
	pool := []response_models.VenueView{
		taggedVenue("museum", "$$", "art museum", "history"),
		taggedVenue("beach", "$$", "beach club"),
		taggedVenue("untagged", "$$"),
	}

	out := FilterVenues(pool, "mid", []string{"museum"})
	assert.Equal(t, []string{"museum"}, ids(out))

	// Case-insensitive substring, not exact match.
	out = FilterVenues(pool, "mid", []string{"ART"})
	assert.Equal(t, []string{"museum"}, ids(out))
}

func TestFilterVenues_EmptyInterestsKeepAll(t *testing.T) {
	pool := []response_models.VenueView{
		taggedVenue("a", "$$", "food"),
		taggedVenue("b", "$$"),
	}

	out := FilterVenues(pool, "mid", nil)
	assert.Len(t, out, 2)
}

func TestApplyRatingFloor(t *testing.T) {
	pool := []response_models.VenueView{
		venue("good", "Good", "RESTAURANT", "$$", 4.2),
		venue("bad", "Bad", "RESTAURANT", "$$", 2.4),
		taggedVenue("unrated", "$$"),
	}

	out := ApplyRatingFloor(pool, MinimumRating)

	// Unrated venues pass the floor.
	assert.Equal(t, []string{"good", "unrated"}, ids(out))
}
