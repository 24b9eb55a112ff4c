package request_models

import "encoding/json"

// GenerateItineraryRequest accepts both the current request shape
// (city/country/budget_range/days) and the legacy mobile-app shape
// (destination "City, Country" + duration). Normalization into a fully
// populated TripParams happens in one place, before any planning runs.
type GenerateItineraryRequest struct {
	City        string   `json:"city"`
	Country     string   `json:"country"`
	Interests   []string `json:"interests"`
	BudgetRange string   `json:"budget_range"`
	Days        *int     `json:"days"`

	// Legacy aliases still sent by older app builds.
	Destination string `json:"destination"`
	Duration    *int   `json:"duration"`

	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`

	Travelers   int     `json:"travelers"`
	TotalBudget float64 `json:"total_budget"`
	StartDate   string  `json:"start_date"`
	UserID      string  `json:"user_id"`
}

type UpdateItineraryRequest struct {
	Document json.RawMessage `json:"document" binding:"required"`
}
