package service

import (
	"errors"

	"github.com/rindang-net/digifarm/entities"
)

// ErrInvalid wraps every form-validation failure so controllers can map it to
// a 400 without string matching.
var ErrInvalid = errors.New("invalid input")

// LandInput carries the land form fields. Status is set by the service on
// create and only changed through Update.
type LandInput struct {
	Name            string   `json:"name"`
	AreaM2          float64  `json:"area_m2"`
	Address         *string  `json:"address"`
	Latitude        *float64 `json:"latitude"`
	Longitude       *float64 `json:"longitude"`
	Commodities     []string `json:"commodities"`
	CustomCommodity *string  `json:"custom_commodity"`
	Status          string   `json:"status"`
}

type LandService interface {
	Create(in LandInput) (*entities.Land, error)
	Update(id string, in LandInput) (*entities.Land, error)
	List() ([]entities.Land, error)
	ListActive() ([]entities.Land, error)
	Get(id string) (*entities.Land, error)
	Delete(id string) error
	// AttachPhoto appends an uploaded photo URL, capped at MaxLandPhotos.
	AttachPhoto(id string, url string) (*entities.Land, error)
}
