package services

import (
	"strings"

	"tripcraft/internal/models/response_models"
)

// budgetTierTable maps a trip budget tier onto the price tiers it allows.
var budgetTierTable = map[string][]string{
	"low":  {"$", "$$"},
	"mid":  {"$$", "$$$"},
	"high": {"$$$", "$$$$"},
}

// MinimumRating is the floor applied on the smart-planning path only.
// The direct generation path intentionally skips it; the two paths have
// always behaved differently and clients depend on the direct one being
// more permissive.
const MinimumRating = 3.0

func allowedPriceTiers(budgetTier string) map[string]bool {
	allowed := make(map[string]bool)
	for _, tier := range budgetTierTable[strings.ToLower(budgetTier)] {
		allowed[tier] = true
	}
	return allowed
}

// FilterVenues narrows the pool by budget and interests. A venue with no
// price tier passes the budget check; an empty interest list keeps
// everything. Input order is preserved.
func FilterVenues(venues []response_models.VenueView, budgetTier string, interests []string) []response_models.VenueView {
	allowed := allowedPriceTiers(budgetTier)

	out := make([]response_models.VenueView, 0, len(venues))
	for _, v := range venues {
		if len(allowed) > 0 && v.PriceTier != "" && !allowed[v.PriceTier] {
			continue
		}
		if !matchesInterests(v.Tags, interests) {
			continue
		}
		out = append(out, v)
	}
	return out
}

func matchesInterests(tags, interests []string) bool {
	if len(interests) == 0 {
		return true
	}
	for _, interest := range interests {
		needle := strings.ToLower(interest)
		for _, tag := range tags {
			if strings.Contains(strings.ToLower(tag), needle) {
				return true
			}
		}
	}
	return false
}

// ApplyRatingFloor drops venues rated below floor. Unrated venues pass.
func ApplyRatingFloor(venues []response_models.VenueView, floor float64) []response_models.VenueView {
	out := make([]response_models.VenueView, 0, len(venues))
	for _, v := range venues {
		if v.Rating != nil && *v.Rating < floor {
			continue
		}
		out = append(out, v)
	}
	return out
}
