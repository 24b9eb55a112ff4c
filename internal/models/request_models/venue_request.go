package request_models

// SyncVenuesRequest identifies the destination to refresh. Sync stores
// the whole provider pool; budget and interest narrowing happens per
// trip at generation time, not here.
type SyncVenuesRequest struct {
	City      string  `json:"city" binding:"required"`
	Country   string  `json:"country"`
	Latitude  float64 `json:"latitude" binding:"required"`
	Longitude float64 `json:"longitude" binding:"required"`
}
