package services

import (
	"fmt"
	"time"

	"tripcraft/internal/models/response_models"
	"tripcraft/pkg/utils"
)

const (
	SlotKindMeal     = "meal"
	SlotKindActivity = "activity"
)

// The daily schedule is fixed: five slots, always in this order.
var slotTimes = []string{"08:00", "10:00", "13:30", "15:30", "19:00"}
var slotDurations = []int{60, 180, 90, 150, 120}

// mealCostTable prices one meal slot by the venue's tier.
var mealCostTable = map[string]int{
	"$":    15,
	"$$":   35,
	"$$$":  65,
	"$$$$": 120,
}

const (
	defaultMealCost    = 35
	activitySlotCost   = 25
	maxItineraryImages = 10
)

func mealCost(priceTier string) int {
	if cost, ok := mealCostTable[priceTier]; ok {
		return cost
	}
	return defaultMealCost
}

func floatPtr(f float64) *float64 { return &f }

func placeholderVenue(id, name, kind string, rating float64, priceTier string) response_models.VenueView {
	return response_models.VenueView{
		ID:        id,
		Name:      name,
		Kind:      kind,
		Rating:    floatPtr(rating),
		PriceTier: priceTier,
	}
}

// placeholder meals for breakfast/lunch/dinner, used when the restaurant
// pool runs out for a day.
var mealPlaceholders = []response_models.VenueView{
	placeholderVenue("placeholder-breakfast", "Hotel Restaurant", "RESTAURANT", 4.2, "$$"),
	placeholderVenue("placeholder-lunch", "Local Bistro", "RESTAURANT", 4.3, "$$"),
	placeholderVenue("placeholder-dinner", "Fine Dining Restaurant", "RESTAURANT", 4.6, "$$$"),
}

var activityPlaceholders = []response_models.VenueView{
	placeholderVenue("placeholder-morning", "City Walking Tour", "ATTRACTION", 4.5, ""),
	placeholderVenue("placeholder-afternoon", "Cultural Experience", "ATTRACTION", 4.4, ""),
}

func dayTheme(day, durationDays int) string {
	// Priority order matters: a one-day trip is an arrival day, never a
	// departure day, even though day 1 is also the last day.
	switch {
	case day == 1:
		return "Arrival & City Introduction"
	case day == durationDays:
		return "Final Exploration & Departure"
	case day == 2:
		return "Cultural Immersion"
	case day == 3:
		return "Local Experiences"
	default:
		return fmt.Sprintf("Discovery Day %d", day)
	}
}

// takeSlice returns venues[lo:hi] clamped to the pool size, so each day
// consumes its own disjoint sub-range rather than cycling.
func takeSlice(venues []response_models.VenueView, lo, hi int) []response_models.VenueView {
	if lo >= len(venues) {
		return nil
	}
	if hi > len(venues) {
		hi = len(venues)
	}
	return venues[lo:hi]
}

// ComposeItinerary deterministically assembles the day-by-day schedule
// from an order-stable venue pool. It is a pure function: same pool,
// duration, destination and start date always produce the same plan.
func ComposeItinerary(pool []response_models.VenueView, durationDays int, destinationName string, start time.Time) response_models.ItineraryResponse {
	var hotels, restaurants, attractions []response_models.VenueView
	for _, v := range pool {
		switch v.Kind {
		case "HOTEL":
			hotels = append(hotels, v)
		case "RESTAURANT":
			restaurants = append(restaurants, v)
		default:
			// ATTRACTION and ACTIVITY both schedule as activities.
			attractions = append(attractions, v)
		}
	}

	accommodation := placeholderVenue(
		"placeholder-hotel",
		fmt.Sprintf("%s Grand Hotel", destinationName),
		"HOTEL", 4.0, "$$",
	)
	if len(hotels) > 0 {
		accommodation = hotels[0]
	}

	days := make([]response_models.DayPlan, 0, durationDays)
	totalCost := 0

	for d := 1; d <= durationDays; d++ {
		meals := takeSlice(restaurants, (d-1)*3, d*3)
		activities := takeSlice(attractions, (d-1)*2, d*2)

		slotVenue := func(venues []response_models.VenueView, idx int, placeholders []response_models.VenueView) response_models.VenueView {
			if idx < len(venues) {
				return venues[idx]
			}
			return placeholders[idx]
		}

		venuesBySlot := []response_models.VenueView{
			slotVenue(meals, 0, mealPlaceholders),
			slotVenue(activities, 0, activityPlaceholders),
			slotVenue(meals, 1, mealPlaceholders),
			slotVenue(activities, 1, activityPlaceholders),
			slotVenue(meals, 2, mealPlaceholders),
		}
		kindsBySlot := []string{SlotKindMeal, SlotKindActivity, SlotKindMeal, SlotKindActivity, SlotKindMeal}

		slots := make([]response_models.ScheduleSlot, 0, len(slotTimes))
		dayCost := 0
		for i := range slotTimes {
			slots = append(slots, response_models.ScheduleSlot{
				Time:            slotTimes[i],
				Kind:            kindsBySlot[i],
				DurationMinutes: slotDurations[i],
				Venue:           venuesBySlot[i],
			})
			if kindsBySlot[i] == SlotKindMeal {
				dayCost += mealCost(venuesBySlot[i].PriceTier)
			} else {
				dayCost += activitySlotCost
			}
		}

		date := utils.DayDate(start, d)
		days = append(days, response_models.DayPlan{
			Day:           d,
			Date:          utils.FormatDate(date),
			Weekday:       utils.WeekdayName(date),
			Theme:         dayTheme(d, durationDays),
			Accommodation: accommodation,
			Slots:         slots,
			EstimatedCost: dayCost,
		})
		totalCost += dayCost
	}

	images := make([]string, 0, maxItineraryImages)
	for _, v := range pool {
		if v.ImageURL == "" {
			continue
		}
		images = append(images, v.ImageURL)
		if len(images) == maxItineraryImages {
			break
		}
	}

	return response_models.ItineraryResponse{
		DestinationName: destinationName,
		DurationDays:    durationDays,
		Days:            days,
		Summary: response_models.ItinerarySummary{
			Accommodations: []response_models.VenueView{accommodation},
		},
		TotalCost:   totalCost,
		TotalVenues: len(pool),
		Images:      images,
	}
}
