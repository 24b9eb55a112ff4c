package providers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"
)

var (
	ErrUnauthorized = errors.New("places: unauthorized")
	ErrUnavailable  = errors.New("places: provider unavailable")
)

// RawVenueRecord is the provider wire shape. It is validated and converted
// into a canonical venue at the service boundary; nothing outside the
// normalizer should touch these fields.
type RawVenueRecord struct {
	ID         string        `json:"id"`
	Name       string        `json:"name"`
	Latitude   json.Number   `json:"latitude"`
	Longitude  json.Number   `json:"longitude"`
	Rating     json.Number   `json:"rating"`
	PriceLevel string        `json:"price_level"`
	ImageURL   string        `json:"image_url"`
	Categories []RawCategory `json:"categories"`
}

type RawCategory struct {
	Name        string `json:"name"`
	Subcategory string `json:"subcategory"`
}

type searchResponse struct {
	Results []RawVenueRecord `json:"results"`
}

// PlacesClientInterface is the venue-data provider boundary.
// An unconfigured client returns (nil, nil); a failing provider returns a
// non-nil error so callers can tell "no results" from "provider down".
type PlacesClientInterface interface {
	SearchNearby(ctx context.Context, lat, lng float64, category string, radiusMeters, limit int) ([]RawVenueRecord, error)
}

type PlacesClient struct {
	base string
	key  string
	hc   *http.Client
	rl   *rate.Limiter
}

// NewPlacesClient builds the nearby-search client. Successive searches are
// paced at one request per second to stay under the provider rate limit.
func NewPlacesClient(base, key string) *PlacesClient {
	return &PlacesClient{
		base: base,
		key:  key,
		hc:   &http.Client{Timeout: 20 * time.Second},
		rl:   rate.NewLimiter(rate.Every(time.Second), 1),
	}
}

func (c *PlacesClient) SearchNearby(ctx context.Context, lat, lng float64, category string, radiusMeters, limit int) ([]RawVenueRecord, error) {
	if c.key == "" {
		// Not configured for this deployment; callers fall back to synthetic venues.
		return nil, nil
	}

	if err := c.rl.Wait(ctx); err != nil {
		return nil, err
	}

	q := url.Values{}
	q.Set("ll", fmt.Sprintf("%f,%f", lat, lng))
	q.Set("category", category)
	q.Set("radius", fmt.Sprintf("%d", radiusMeters))
	q.Set("limit", fmt.Sprintf("%d", limit))
	endpoint := fmt.Sprintf("%s/places/search?%s", c.base, q.Encode())

	var lastErr error
	for attempt := 0; attempt < 3; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("Authorization", c.key)
		req.Header.Set("Accept", "application/json")

		resp, err := c.hc.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			lastErr = err
			if attempt < 2 && sleepCtx(ctx, backoff(attempt)) {
				continue
			}
			return nil, fmt.Errorf("%w: %v", ErrUnavailable, lastErr)
		}

		switch {
		case resp.StatusCode == http.StatusOK:
			var out searchResponse
			err := json.NewDecoder(resp.Body).Decode(&out)
			resp.Body.Close()
			if err != nil {
				return nil, fmt.Errorf("%w: decode: %v", ErrUnavailable, err)
			}
			return out.Results, nil

		case resp.StatusCode == http.StatusUnauthorized, resp.StatusCode == http.StatusForbidden:
			drain(resp)
			return nil, ErrUnauthorized

		case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
			drain(resp)
			lastErr = fmt.Errorf("status %d", resp.StatusCode)
			if attempt < 2 && sleepCtx(ctx, backoff(attempt)) {
				continue
			}
			return nil, fmt.Errorf("%w: %v", ErrUnavailable, lastErr)

		default:
			drain(resp)
			return nil, fmt.Errorf("%w: unexpected status %d", ErrUnavailable, resp.StatusCode)
		}
	}
	return nil, fmt.Errorf("%w: %v", ErrUnavailable, lastErr)
}

func drain(resp *http.Response) {
	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
}

func backoff(attempt int) time.Duration {
	return time.Duration(attempt+1) * 500 * time.Millisecond
}

// sleepCtx waits d or until ctx is done; reports whether the full wait elapsed.
func sleepCtx(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
