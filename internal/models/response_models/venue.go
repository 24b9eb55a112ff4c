package response_models

type VenueView struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Kind      string   `json:"kind"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
	Rating    *float64 `json:"rating,omitempty"`
	PriceTier string   `json:"price_tier"`
	Tags      []string `json:"tags,omitempty"`
	ImageURL  string   `json:"image_url,omitempty"`
}
