package services

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"tripcraft/internal/models/db_models"
	"tripcraft/internal/models/request_models"
	"tripcraft/internal/models/response_models"
	"tripcraft/pkg/memcache"
	"tripcraft/pkg/utils"
)

// ---- fakes ----

type fakePoolService struct {
	pool  []response_models.VenueView
	err   error
	calls int
}

func (f *fakePoolService) BuildPool(ctx context.Context, dest *db_models.Destination, interests []string, budgetTier string) ([]response_models.VenueView, error) {
	f.calls++
	return f.pool, f.err
}

func (f *fakePoolService) SyncDestination(ctx context.Context, req request_models.SyncVenuesRequest) (int, error) {
	return 0, nil
}

func (f *fakePoolService) ListVenues(ctx context.Context, destinationID string, kind string, page, pageSize int) ([]response_models.VenueView, error) {
	return nil, nil
}

func (f *fakePoolService) DeleteVenue(ctx context.Context, id string) error { return nil }

type fakeItineraryRepo struct {
	records map[uuid.UUID]*db_models.Itinerary
}

func newFakeItineraryRepo() *fakeItineraryRepo {
	return &fakeItineraryRepo{records: make(map[uuid.UUID]*db_models.Itinerary)}
}

func (f *fakeItineraryRepo) Create(ctx context.Context, itinerary *db_models.Itinerary) (uuid.UUID, error) {
	itinerary.ID = uuid.New()
	f.records[itinerary.ID] = itinerary
	return itinerary.ID, nil
}

func (f *fakeItineraryRepo) GetByID(ctx context.Context, id uuid.UUID) (*db_models.Itinerary, error) {
	return f.records[id], nil
}

func (f *fakeItineraryRepo) ListByUser(ctx context.Context, userID uuid.UUID, page, pageSize int) ([]db_models.Itinerary, error) {
	var out []db_models.Itinerary
	for _, record := range f.records {
		if record.UserID != nil && *record.UserID == userID {
			out = append(out, *record)
		}
	}
	return out, nil
}

func (f *fakeItineraryRepo) ReplaceDocument(ctx context.Context, id uuid.UUID, document datatypes.JSON) error {
	record, ok := f.records[id]
	if !ok {
		return nil
	}
	record.Document = document
	return nil
}

func (f *fakeItineraryRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(f.records, id)
	return nil
}

type stubNarrativeClient struct {
	text string
	err  error
}

func (s stubNarrativeClient) GenerateDayNarrative(ctx context.Context, destination, theme string, venueNames []string) (string, error) {
	return s.text, s.err
}

func newTestService(pool *fakePoolService, repo *fakeItineraryRepo, narrative utils.NarrativeClientInterface) ItineraryServiceInterface {
	return NewItineraryService(
		pool,
		NewFallbackGenerator(42),
		NewEnrichmentService(narrative),
		fakeImageClient{},
		repo,
		&fakeDestRepo{},
		memcache.NewItineraryCache(),
	)
}

func coords() (*float64, *float64) {
	lat, lng := 38.7223, -9.1393
	return &lat, &lng
}

func testParams(days int) TripParams {
	lat, lng := coords()
	return TripParams{
		DestinationName: "Lisbon",
		Country:         "Portugal",
		Latitude:        lat,
		Longitude:       lng,
		DurationDays:    days,
		BudgetTier:      "mid",
		Interests:       []string{"culture", "food", "sightseeing"},
		StartDate:       time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
	}
}

// ---- tests ----

func TestGenerateItinerary_FallsBackWhenProviderFails(t *testing.T) {
	pool := &fakePoolService{err: utils.ErrProviderUnavailable}
	svc := newTestService(pool, newFakeItineraryRepo(), stubNarrativeClient{})

	out, err := svc.GenerateItinerary(context.Background(), testParams(4))

	require.NoError(t, err)
	require.Len(t, out.Days, 4)
	for _, day := range out.Days {
		require.Len(t, day.Slots, 5)
		for _, slot := range day.Slots {
			assert.NotEmpty(t, slot.Venue.Name)
		}
	}
	assert.Greater(t, out.TotalVenues, 0)
	assert.NotEmpty(t, out.Images)
}

func TestGenerateItinerary_RoundTripDays(t *testing.T) {
	for days := 1; days <= 30; days++ {
		pool := &fakePoolService{pool: samplePool()}
		svc := newTestService(pool, newFakeItineraryRepo(), stubNarrativeClient{})

		out, err := svc.GenerateItinerary(context.Background(), testParams(days))

		require.NoError(t, err)
		assert.Len(t, out.Days, days)
	}
}

func TestGenerateItinerary_MissingCoordinatesUsesFallback(t *testing.T) {
	pool := &fakePoolService{pool: samplePool()}
	svc := newTestService(pool, newFakeItineraryRepo(), stubNarrativeClient{})

	params := testParams(2)
	params.Latitude = nil
	params.Longitude = nil

	out, err := svc.GenerateItinerary(context.Background(), params)

	require.NoError(t, err)
	assert.Equal(t, 0, pool.calls, "provider must not be queried without coordinates")
	assert.Equal(t, "Lisbon Central Hotel", out.Days[0].Accommodation.Name)
}

func TestGenerateItinerary_PersistsDocument(t *testing.T) {
	repo := newFakeItineraryRepo()
	svc := newTestService(&fakePoolService{pool: samplePool()}, repo, stubNarrativeClient{})

	out, err := svc.GenerateItinerary(context.Background(), testParams(3))

	require.NoError(t, err)
	require.NotEmpty(t, out.ID)

	id, err := uuid.Parse(out.ID)
	require.NoError(t, err)
	stored := repo.records[id]
	require.NotNil(t, stored)
	assert.Equal(t, "Lisbon", stored.DestinationName)
	assert.Equal(t, 3, stored.Days)
	assert.Equal(t, out.TotalCost, stored.TotalCost)

	var doc response_models.ItineraryResponse
	require.NoError(t, json.Unmarshal(stored.Document, &doc))
	assert.Len(t, doc.Days, 3)
}

func TestGenerateItinerary_SecondCallServedFromCache(t *testing.T) {
	pool := &fakePoolService{pool: samplePool()}
	svc := newTestService(pool, newFakeItineraryRepo(), stubNarrativeClient{})

	first, err := svc.GenerateItinerary(context.Background(), testParams(3))
	require.NoError(t, err)
	second, err := svc.GenerateItinerary(context.Background(), testParams(3))
	require.NoError(t, err)

	assert.Equal(t, 1, pool.calls)
	assert.Equal(t, first, second)
}

func TestGenerateItinerary_SameNameDifferentDestinationNotShared(t *testing.T) {
	pool := &fakePoolService{pool: samplePool()}
	svc := newTestService(pool, newFakeItineraryRepo(), stubNarrativeClient{})

	france := testParams(3)
	france.DestinationName = "Paris"
	france.Country = "France"
	latF, lngF := 48.8566, 2.3522
	france.Latitude, france.Longitude = &latF, &lngF

	usa := testParams(3)
	usa.DestinationName = "Paris"
	usa.Country = "USA"
	latU, lngU := 33.6609, -95.5555
	usa.Latitude, usa.Longitude = &latU, &lngU

	_, err := svc.GenerateItinerary(context.Background(), france)
	require.NoError(t, err)
	_, err = svc.GenerateItinerary(context.Background(), usa)
	require.NoError(t, err)

	// The second city must compose its own pool, not reuse the first's cache entry.
	assert.Equal(t, 2, pool.calls)
}

func TestGenerateSmartItinerary_AppliesRatingFloorAndNarratives(t *testing.T) {
	lowRated := venue("bad", "Dubious Diner", "RESTAURANT", "$$", 2.1)
	pool := &fakePoolService{pool: append(samplePool(), lowRated)}
	svc := newTestService(pool, newFakeItineraryRepo(), stubNarrativeClient{text: "A fine day out."})

	out, err := svc.GenerateSmartItinerary(context.Background(), testParams(5))

	require.NoError(t, err)
	for _, day := range out.Days {
		assert.Equal(t, "A fine day out.", day.Narrative)
		for _, slot := range day.Slots {
			assert.NotEqual(t, "Dubious Diner", slot.Venue.Name)
		}
	}
}

func TestGenerateItinerary_DirectPathSkipsRatingFloor(t *testing.T) {
	lowRated := venue("bad", "Dubious Diner", "RESTAURANT", "$$", 2.1)
	pool := &fakePoolService{pool: []response_models.VenueView{lowRated}}
	svc := newTestService(pool, newFakeItineraryRepo(), stubNarrativeClient{})

	out, err := svc.GenerateItinerary(context.Background(), testParams(1))

	require.NoError(t, err)
	assert.Equal(t, "Dubious Diner", out.Days[0].Slots[0].Venue.Name)
}

func TestGetItinerary_NotFound(t *testing.T) {
	svc := newTestService(&fakePoolService{}, newFakeItineraryRepo(), stubNarrativeClient{})

	_, err := svc.GetItinerary(context.Background(), uuid.New().String())

	require.ErrorIs(t, err, utils.ErrItineraryNotFound)
}

func TestUpdateItinerary_FullReplace(t *testing.T) {
	repo := newFakeItineraryRepo()
	svc := newTestService(&fakePoolService{pool: samplePool()}, repo, stubNarrativeClient{})

	out, err := svc.GenerateItinerary(context.Background(), testParams(2))
	require.NoError(t, err)

	out.Days[0].Theme = "Rainy Day Plan"
	replacement, err := json.Marshal(out)
	require.NoError(t, err)

	require.NoError(t, svc.UpdateItinerary(context.Background(), out.ID, replacement))

	got, err := svc.GetItinerary(context.Background(), out.ID)
	require.NoError(t, err)
	assert.Equal(t, "Rainy Day Plan", got.Days[0].Theme)
}

func TestUpdateItinerary_RejectsNonItineraryDocument(t *testing.T) {
	svc := newTestService(&fakePoolService{}, newFakeItineraryRepo(), stubNarrativeClient{})

	err := svc.UpdateItinerary(context.Background(), uuid.New().String(), json.RawMessage(`{"foo":1}`))

	require.ErrorIs(t, err, utils.ErrInvalidInput)
}

func TestGenerateSmartItinerary_NarrativeFailureIsNonFatal(t *testing.T) {
	pool := &fakePoolService{pool: samplePool()}
	svc := newTestService(pool, newFakeItineraryRepo(), stubNarrativeClient{err: context.DeadlineExceeded})

	out, err := svc.GenerateSmartItinerary(context.Background(), testParams(2))

	require.NoError(t, err)
	require.Len(t, out.Days, 2)
	for _, day := range out.Days {
		assert.Empty(t, day.Narrative)
	}
}
