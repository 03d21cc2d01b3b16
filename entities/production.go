package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Production is one planting-to-harvest cycle on a land. Dates are stored as
// plain "2006-01-02" strings: the spreadsheet import matches planting dates by
// string equality, so nothing is gained by normalizing them to time.Time here.
type Production struct {
	ID                   string   `gorm:"primaryKey" json:"id"`
	LandID               string   `gorm:"index" json:"land_id"`
	Commodity            string   `json:"commodity"`
	PlantingDate         string   `gorm:"index" json:"planting_date"` // YYYY-MM-DD
	SeedCount            int      `json:"seed_count"`
	EstimatedHarvestDate *string  `json:"estimated_harvest_date"`
	HarvestDate          *string  `json:"harvest_date"`
	HarvestYieldKg       *float64 `json:"harvest_yield_kg"`
	Status               string   `gorm:"index" json:"status"` // planted|growing|harvested
	Notes                *string  `json:"notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Joined on list reads; nil when the owning land is gone.
	Land *Land `gorm:"foreignKey:LandID;references:ID;constraint:OnDelete:CASCADE" json:"land,omitempty"`
}

func (p *Production) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

// Active reports whether the cycle is still in the ground.
func (p *Production) Active() bool {
	return p.Status == "planted" || p.Status == "growing"
}
