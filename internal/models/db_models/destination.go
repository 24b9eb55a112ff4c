package db_models

type Destination struct {
	BaseModel
	Name      string `gorm:"uniqueIndex"`
	Country   string
	Latitude  float64
	Longitude float64

	Venues []Venue `gorm:"foreignKey:DestinationID"`
}
