package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Activity struct {
	ID            string     `gorm:"primaryKey" json:"id"`
	LandID        *string    `gorm:"index" json:"land_id"`
	ProductionID  *string    `gorm:"index" json:"production_id"`
	ActivityType  string     `json:"activity_type"`
	Description   string     `json:"description"`
	ScheduledDate *string    `json:"scheduled_date"` // YYYY-MM-DD
	CompletedAt   *time.Time `json:"completed_at"`
	Status        string     `gorm:"index" json:"status"` // pending|in_progress|completed

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Land       *Land       `gorm:"foreignKey:LandID;references:ID;constraint:OnDelete:CASCADE" json:"land,omitempty"`
	Production *Production `gorm:"foreignKey:ProductionID;references:ID;constraint:OnDelete:CASCADE" json:"production,omitempty"`
}

func (a *Activity) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
