package db_models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Itinerary stores the composed day-by-day plan as a single JSONB
// document. Updates replace the whole document; the plan is never
// decomposed into rows.
type Itinerary struct {
	BaseModel
	UserID          *uuid.UUID `gorm:"index"`
	DestinationName string
	Days            int
	BudgetTier      string
	TotalCost       int
	Document        datatypes.JSON `gorm:"type:jsonb"`
}
