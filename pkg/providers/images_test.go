package providers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchImages_ParsesResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "img-key", r.Header.Get("Authorization"))
		w.Write([]byte(`{"results":[{"url":"https://cdn.example.com/a.jpg"},{"url":"https://cdn.example.com/b.jpg"}]}`))
	}))
	defer srv.Close()

	client := NewImageClient(srv.URL, "img-key")

	urls, err := client.SearchImages(context.Background(), "Lisbon", 2)

	require.NoError(t, err)
	assert.Equal(t, []string{"https://cdn.example.com/a.jpg", "https://cdn.example.com/b.jpg"}, urls)
}

func TestSearchImages_UnconfiguredFallsBack(t *testing.T) {
	client := NewImageClient("http://unused.invalid", "")

	urls, err := client.SearchImages(context.Background(), "Hoi An", 3)

	require.NoError(t, err)
	assert.Equal(t, []string{
		"https://images.tripcraft.app/static/hoi-an-1.jpg",
		"https://images.tripcraft.app/static/hoi-an-2.jpg",
		"https://images.tripcraft.app/static/hoi-an-3.jpg",
	}, urls)
}

func TestSearchImages_ProviderErrorFallsBack(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewImageClient(srv.URL, "img-key")

	urls, err := client.SearchImages(context.Background(), "Lisbon", 2)

	require.NoError(t, err)
	assert.Equal(t, FallbackImageURLs("Lisbon", 2), urls)
}

func TestFallbackImageURLs_Stable(t *testing.T) {
	first := FallbackImageURLs("Da Nang", 4)
	second := FallbackImageURLs("Da Nang", 4)

	assert.Equal(t, first, second)
	assert.Len(t, first, 4)

	// Empty queries still produce usable URLs.
	assert.Equal(t, []string{"https://images.tripcraft.app/static/travel-1.jpg"}, FallbackImageURLs("  ", 1))
}
