package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripcraft/internal/models/response_models"
)

var composeStart = time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

func venue(id, name, kind, tier string, rating float64) response_models.VenueView {
	return response_models.VenueView{
		ID:        id,
		Name:      name,
		Kind:      kind,
		Rating:    floatPtr(rating),
		PriceTier: tier,
	}
}

func samplePool() []response_models.VenueView {
	pool := []response_models.VenueView{
		venue("h1", "Hotel Emerald", "HOTEL", "$$", 4.4),
		venue("h2", "Hotel Opal", "HOTEL", "$$$", 4.7),
	}
	for i := 1; i <= 9; i++ {
		pool = append(pool, venue(fmt.Sprintf("r%d", i), fmt.Sprintf("Restaurant %d", i), "RESTAURANT", "$$", 4.0))
	}
	for i := 1; i <= 6; i++ {
		pool = append(pool, venue(fmt.Sprintf("a%d", i), fmt.Sprintf("Attraction %d", i), "ATTRACTION", "", 4.5))
	}
	return pool
}

func TestComposeItinerary_Deterministic(t *testing.T) {
	pool := samplePool()

	first := ComposeItinerary(pool, 3, "Lisbon", composeStart)
	second := ComposeItinerary(pool, 3, "Lisbon", composeStart)

	assert.Equal(t, first, second)
}

func TestComposeItinerary_SlotInvariant(t *testing.T) {
	pool := samplePool()
	wantTimes := []string{"08:00", "10:00", "13:30", "15:30", "19:00"}
	wantDurations := []int{60, 180, 90, 150, 120}

	for days := 1; days <= 30; days++ {
		out := ComposeItinerary(pool, days, "Lisbon", composeStart)
		require.Len(t, out.Days, days, "days=%d", days)

		for _, day := range out.Days {
			require.Len(t, day.Slots, 5, "days=%d day=%d", days, day.Day)
			for i, slot := range day.Slots {
				assert.Equal(t, wantTimes[i], slot.Time)
				assert.Equal(t, wantDurations[i], slot.DurationMinutes)
			}
			assert.Equal(t, SlotKindMeal, day.Slots[0].Kind)
			assert.Equal(t, SlotKindActivity, day.Slots[1].Kind)
			assert.Equal(t, SlotKindMeal, day.Slots[2].Kind)
			assert.Equal(t, SlotKindActivity, day.Slots[3].Kind)
			assert.Equal(t, SlotKindMeal, day.Slots[4].Kind)
		}
	}
}

func TestComposeItinerary_ThemePriority(t *testing.T) {
	oneDay := ComposeItinerary(samplePool(), 1, "Lisbon", composeStart)
	// A one-day trip is an arrival day even though it is also the last day.
	assert.Equal(t, "Arrival & City Introduction", oneDay.Days[0].Theme)

	fiveDays := ComposeItinerary(samplePool(), 5, "Lisbon", composeStart)
	themes := make([]string, 0, 5)
	for _, day := range fiveDays.Days {
		themes = append(themes, day.Theme)
	}
	assert.Equal(t, []string{
		"Arrival & City Introduction",
		"Cultural Immersion",
		"Local Experiences",
		"Discovery Day 4",
		"Final Exploration & Departure",
	}, themes)
}

func TestComposeItinerary_DayCost(t *testing.T) {
	// Three $$ meals plus two placeholder activities: 35*3 + 25*2.
	pool := []response_models.VenueView{
		venue("r1", "Bistro A", "RESTAURANT", "$$", 4.0),
		venue("r2", "Bistro B", "RESTAURANT", "$$", 4.1),
		venue("r3", "Bistro C", "RESTAURANT", "$$", 4.2),
	}

	out := ComposeItinerary(pool, 1, "Lisbon", composeStart)

	require.Len(t, out.Days, 1)
	assert.Equal(t, 155, out.Days[0].EstimatedCost)
	assert.Equal(t, 155, out.TotalCost)
}

func TestComposeItinerary_DisjointDaySlices(t *testing.T) {
	out := ComposeItinerary(samplePool(), 3, "Lisbon", composeStart)

	// Each day consumes its own restaurant sub-range, no cycling.
	assert.Equal(t, "Restaurant 1", out.Days[0].Slots[0].Venue.Name)
	assert.Equal(t, "Restaurant 4", out.Days[1].Slots[0].Venue.Name)
	assert.Equal(t, "Restaurant 7", out.Days[2].Slots[0].Venue.Name)
	assert.Equal(t, "Attraction 1", out.Days[0].Slots[1].Venue.Name)
	assert.Equal(t, "Attraction 3", out.Days[1].Slots[1].Venue.Name)
	assert.Equal(t, "Attraction 5", out.Days[2].Slots[1].Venue.Name)
}

func TestComposeItinerary_PlaceholdersFillExhaustedPool(t *testing.T) {
	out := ComposeItinerary(nil, 2, "Porto", composeStart)

	require.Len(t, out.Days, 2)
	day := out.Days[1]
	assert.Equal(t, "Hotel Restaurant", day.Slots[0].Venue.Name)
	assert.Equal(t, "City Walking Tour", day.Slots[1].Venue.Name)
	assert.Equal(t, "Local Bistro", day.Slots[2].Venue.Name)
	assert.Equal(t, "Cultural Experience", day.Slots[3].Venue.Name)
	assert.Equal(t, "Fine Dining Restaurant", day.Slots[4].Venue.Name)

	// Synthesized accommodation when no hotel is in the pool.
	assert.Equal(t, "Porto Grand Hotel", day.Accommodation.Name)
	assert.Equal(t, "$$", day.Accommodation.PriceTier)
	require.NotNil(t, day.Accommodation.Rating)
	assert.Equal(t, 4.0, *day.Accommodation.Rating)
}

func TestComposeItinerary_AccommodationSharedAcrossDays(t *testing.T) {
	out := ComposeItinerary(samplePool(), 4, "Lisbon", composeStart)

	for _, day := range out.Days {
		assert.Equal(t, "Hotel Emerald", day.Accommodation.Name)
	}
	require.Len(t, out.Summary.Accommodations, 1)
	assert.Equal(t, "Hotel Emerald", out.Summary.Accommodations[0].Name)
}

func TestComposeItinerary_DatesAndWeekdays(t *testing.T) {
	out := ComposeItinerary(samplePool(), 3, "Lisbon", composeStart)

	assert.Equal(t, "2026-03-02", out.Days[0].Date)
	assert.Equal(t, "Monday", out.Days[0].Weekday)
	assert.Equal(t, "2026-03-03", out.Days[1].Date)
	assert.Equal(t, "2026-03-04", out.Days[2].Date)
}

func TestComposeItinerary_ImagesCappedAtTen(t *testing.T) {
	pool := samplePool()
	for i := range pool {
		pool[i].ImageURL = fmt.Sprintf("https://img.example.com/%s.jpg", pool[i].ID)
	}

	out := ComposeItinerary(pool, 2, "Lisbon", composeStart)

	require.Len(t, out.Images, 10)
	assert.Equal(t, "https://img.example.com/h1.jpg", out.Images[0])
	assert.Equal(t, len(pool), out.TotalVenues)
}
