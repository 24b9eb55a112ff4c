package response_models

type ScheduleSlot struct {
	Time            string    `json:"time"`
	Kind            string    `json:"kind"` // meal | activity
	DurationMinutes int       `json:"duration_minutes"`
	Venue           VenueView `json:"venue"`
}

type DayPlan struct {
	Day           int            `json:"day"`
	Date          string         `json:"date"`
	Weekday       string         `json:"weekday"`
	Theme         string         `json:"theme"`
	Accommodation VenueView      `json:"accommodation"`
	Slots         []ScheduleSlot `json:"slots"`
	EstimatedCost int            `json:"estimated_cost"`
	Narrative     string         `json:"narrative,omitempty"`
}

type ItinerarySummary struct {
	Accommodations []VenueView `json:"accommodations"`
}

type ItineraryResponse struct {
	ID              string           `json:"id,omitempty"`
	DestinationName string           `json:"destination_name"`
	DurationDays    int              `json:"duration_days"`
	BudgetTier      string           `json:"budget_tier"`
	Travelers       int              `json:"travelers,omitempty"`
	TotalBudget     float64          `json:"total_budget,omitempty"`
	Days            []DayPlan        `json:"days"`
	Summary         ItinerarySummary `json:"summary"`
	TotalCost       int              `json:"total_cost"`
	TotalVenues     int              `json:"total_venues"`
	Images          []string         `json:"images"`
}

type ItineraryListItem struct {
	ID              string `json:"id"`
	DestinationName string `json:"destination_name"`
	Days            int    `json:"days"`
	BudgetTier      string `json:"budget_tier"`
	TotalCost       int    `json:"total_cost"`
	CreatedAt       int64  `json:"created_at"`
}
