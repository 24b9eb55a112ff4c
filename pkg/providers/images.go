package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// ImageClientInterface looks up photo URLs for a venue or destination.
// It never fails: when the provider is unconfigured or errors out it
// returns a deterministic placeholder list instead.
type ImageClientInterface interface {
	SearchImages(ctx context.Context, query string, count int) ([]string, error)
}

type ImageClient struct {
	base string
	key  string
	hc   *http.Client
}

func NewImageClient(base, key string) *ImageClient {
	return &ImageClient{
		base: base,
		key:  key,
		hc:   &http.Client{Timeout: 10 * time.Second},
	}
}

type imageSearchResponse struct {
	Results []struct {
		URL string `json:"url"`
	} `json:"results"`
}

func (c *ImageClient) SearchImages(ctx context.Context, query string, count int) ([]string, error) {
	if count <= 0 {
		count = 1
	}
	if c.key == "" {
		return FallbackImageURLs(query, count), nil
	}

	q := url.Values{}
	q.Set("query", query)
	q.Set("per_page", fmt.Sprintf("%d", count))
	endpoint := fmt.Sprintf("%s/search/photos?%s", c.base, q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return FallbackImageURLs(query, count), nil
	}
	req.Header.Set("Authorization", c.key)

	resp, err := c.hc.Do(req)
	if err != nil {
		log.Printf("Image search failed for %q: %v", query, err)
		return FallbackImageURLs(query, count), nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("Image search for %q returned status %d", query, resp.StatusCode)
		return FallbackImageURLs(query, count), nil
	}

	var out imageSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return FallbackImageURLs(query, count), nil
	}

	urls := make([]string, 0, len(out.Results))
	for _, r := range out.Results {
		if r.URL != "" {
			urls = append(urls, r.URL)
		}
	}
	if len(urls) == 0 {
		return FallbackImageURLs(query, count), nil
	}
	return urls, nil
}

// FallbackImageURLs is stable for a given query so cached and repeated
// responses stay identical.
func FallbackImageURLs(query string, count int) []string {
	slug := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(query), " ", "-"))
	if slug == "" {
		slug = "travel"
	}
	urls := make([]string, 0, count)
	for i := 1; i <= count; i++ {
		urls = append(urls, fmt.Sprintf("https://images.tripcraft.app/static/%s-%d.jpg", slug, i))
	}
	return urls
}
