package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"tripcraft/internal/models/request_models"
	"tripcraft/pkg/utils"
)

// TripParams is the fully resolved input to itinerary synthesis. Every
// field is valid by construction; composition never revalidates.
type TripParams struct {
	DestinationName string
	Country         string
	Latitude        *float64
	Longitude       *float64
	DurationDays    int
	BudgetTier      string
	Interests       []string
	Travelers       int
	TotalBudget     float64
	StartDate       time.Time
	UserID          *uuid.UUID
}

var defaultInterests = []string{"culture", "food", "sightseeing"}

var validBudgetTiers = map[string]bool{"low": true, "mid": true, "high": true}

// NormalizeTripRequest resolves legacy aliases, fills defaults and
// validates field values. It is the only place partial requests are
// handled; everything downstream sees a complete TripParams.
func NormalizeTripRequest(req request_models.GenerateItineraryRequest, now time.Time) (TripParams, error) {
	city := strings.TrimSpace(req.City)
	country := strings.TrimSpace(req.Country)

	// Legacy builds send destination as "City, Country".
	if city == "" && req.Destination != "" {
		parts := strings.SplitN(req.Destination, ",", 2)
		city = strings.TrimSpace(parts[0])
		if country == "" && len(parts) == 2 {
			country = strings.TrimSpace(parts[1])
		}
	}
	if city == "" {
		return TripParams{}, fmt.Errorf("%w: city is required", utils.ErrInvalidInput)
	}

	days := 0
	switch {
	case req.Days != nil:
		days = *req.Days
	case req.Duration != nil:
		days = *req.Duration
	default:
		return TripParams{}, fmt.Errorf("%w: days is required", utils.ErrInvalidInput)
	}
	if days < 1 || days > 30 {
		return TripParams{}, fmt.Errorf("%w: days must be between 1 and 30", utils.ErrInvalidInput)
	}

	budget := strings.ToLower(strings.TrimSpace(req.BudgetRange))
	if budget == "" {
		budget = "mid"
	}
	if !validBudgetTiers[budget] {
		return TripParams{}, fmt.Errorf("%w: budget_range must be one of low, mid, high", utils.ErrInvalidInput)
	}

	interests := make([]string, 0, len(req.Interests))
	for _, interest := range req.Interests {
		if trimmed := strings.ToLower(strings.TrimSpace(interest)); trimmed != "" {
			interests = append(interests, trimmed)
		}
	}
	if len(interests) == 0 {
		interests = append(interests, defaultInterests...)
	}

	start := now
	if req.StartDate != "" {
		parsed, err := time.Parse(utils.DateLayout, req.StartDate)
		if err != nil {
			return TripParams{}, fmt.Errorf("%w: start_date must be YYYY-MM-DD", utils.ErrInvalidInput)
		}
		start = parsed
	}

	var userID *uuid.UUID
	if req.UserID != "" {
		parsed, err := uuid.Parse(req.UserID)
		if err != nil {
			return TripParams{}, fmt.Errorf("%w: user_id must be a uuid", utils.ErrInvalidInput)
		}
		userID = &parsed
	}

	return TripParams{
		DestinationName: city,
		Country:         country,
		Latitude:        req.Latitude,
		Longitude:       req.Longitude,
		DurationDays:    days,
		BudgetTier:      budget,
		Interests:       interests,
		Travelers:       req.Travelers,
		TotalBudget:     req.TotalBudget,
		StartDate:       start,
		UserID:          userID,
	}, nil
}
