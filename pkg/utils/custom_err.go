package utils

import "errors"

var (
	ErrInvalidInput        = errors.New("invalid input")
	ErrInvalidPage         = errors.New("invalid page parameter")
	ErrInvalidPageSize     = errors.New("invalid page size parameter")
	ErrItineraryNotFound   = errors.New("itinerary not found")
	ErrVenueNotFound       = errors.New("venue not found")
	ErrDestinationNotFound = errors.New("destination not found")
	ErrProviderUnavailable = errors.New("venue provider unavailable")
	ErrDatabaseError       = errors.New("database error")
)
