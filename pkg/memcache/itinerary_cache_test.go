package memcache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItineraryCache_SetGet(t *testing.T) {
	cache := NewItineraryCache()

	cache.Set("lisbon|mid|3", "doc", time.Minute)

	got, ok := cache.Get("lisbon|mid|3")
	require.True(t, ok)
	assert.Equal(t, "doc", got)
}

func TestItineraryCache_Expiry(t *testing.T) {
	cache := NewItineraryCache()

	cache.Set("key", "doc", 10*time.Millisecond)
	time.Sleep(20 * time.Millisecond)

	_, ok := cache.Get("key")
	assert.False(t, ok)
}

func TestItineraryCache_Invalidate(t *testing.T) {
	cache := NewItineraryCache()

	cache.Set("key", "doc", time.Minute)
	cache.Invalidate("key")

	_, ok := cache.Get("key")
	assert.False(t, ok)
}

func TestItineraryCache_MissingKey(t *testing.T) {
	cache := NewItineraryCache()

	_, ok := cache.Get("never-set")
	assert.False(t, ok)
}
