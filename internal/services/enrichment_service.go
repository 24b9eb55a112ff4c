package services

import (
	"context"
	"log"

	"golang.org/x/sync/errgroup"

	"tripcraft/internal/models/response_models"
	"tripcraft/pkg/utils"
)

const narrativeWorkers = 3

// EnrichmentServiceInterface decorates composed days with optional AI
// prose. It is strictly additive: the schedule, costs and themes are
// already final when it runs, and any failure leaves the day untouched.
type EnrichmentServiceInterface interface {
	EnrichDays(ctx context.Context, destination string, days []response_models.DayPlan) []response_models.DayPlan
}

type EnrichmentService struct {
	client utils.NarrativeClientInterface
}

func NewEnrichmentService(client utils.NarrativeClientInterface) EnrichmentServiceInterface {
	return &EnrichmentService{client: client}
}

func (s *EnrichmentService) EnrichDays(ctx context.Context, destination string, days []response_models.DayPlan) []response_models.DayPlan {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(narrativeWorkers)

	for i := range days {
		idx := i
		g.Go(func() error {
			day := days[idx]
			names := make([]string, 0, len(day.Slots))
			for _, slot := range day.Slots {
				names = append(names, slot.Venue.Name)
			}

			narrative, err := s.client.GenerateDayNarrative(gctx, destination, day.Theme, names)
			if err != nil {
				log.Printf("Narrative for day %d skipped: %v", day.Day, err)
				return nil
			}
			days[idx].Narrative = narrative
			return nil
		})
	}
	_ = g.Wait()
	return days
}
