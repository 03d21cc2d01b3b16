package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Commodities is the fixed vocabulary offered by the land form. "Others"
// unlocks the free-text CustomCommodity field.
var Commodities = []string{"Red Chili", "Rawit Chili", "Tomatoes", "Shallots", "Garlic", "Others"}

// MaxLandPhotos caps the photo gallery per land.
const MaxLandPhotos = 3

type Land struct {
	ID              string   `gorm:"primaryKey" json:"id"`
	Name            string   `gorm:"index" json:"name"`
	AreaM2          float64  `json:"area_m2"`
	Address         *string  `json:"address"`
	Latitude        *float64 `json:"latitude"`
	Longitude       *float64 `json:"longitude"`
	Commodities     []string `gorm:"serializer:json" json:"commodities"`
	CustomCommodity *string  `json:"custom_commodity"`
	Photos          []string `gorm:"serializer:json" json:"photos"`
	Status          string   `gorm:"index" json:"status"` // active|vacant|archived

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (l *Land) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	return nil
}

// HasCommodity reports whether the land declares the given vocabulary tag.
func (l *Land) HasCommodity(tag string) bool {
	for _, c := range l.Commodities {
		if c == tag {
			return true
		}
	}
	return false
}
