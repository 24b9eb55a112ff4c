package memcache

import (
	"sync"
	"time"
)

// ItineraryCache keeps recently generated itinerary documents in process
// memory so identical trip requests within the TTL skip provider calls.
type ItineraryCache interface {
	Set(key string, doc any, ttl time.Duration)
	Get(key string) (any, bool)
	Invalidate(key string)
}

type entry struct {
	doc       any
	expiresAt time.Time
}

type itineraryCache struct {
	mu   sync.RWMutex
	data map[string]entry
}

func NewItineraryCache() ItineraryCache {
	return &itineraryCache{
		data: make(map[string]entry),
	}
}

func (s *itineraryCache) Set(key string, doc any, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = entry{
		doc:       doc,
		expiresAt: time.Now().Add(ttl),
	}
}

func (s *itineraryCache) Get(key string) (any, bool) {
	s.mu.RLock()
	e, ok := s.data[key]
	s.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if time.Now().After(e.expiresAt) {
		s.mu.Lock()
		delete(s.data, key) // cleanup expired
		s.mu.Unlock()
		return nil, false
	}
	return e.doc, true
}

func (s *itineraryCache) Invalidate(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
}
