package serviceImp

import (
	"fmt"

	"github.com/rindang-net/digifarm/entities"
	repo "github.com/rindang-net/digifarm/pkg/land/repository"
	"github.com/rindang-net/digifarm/pkg/land/service"
)

type landSvc struct{ r repo.LandRepository }

func New(r repo.LandRepository) service.LandService { return &landSvc{r} }

func (s *landSvc) Create(in service.LandInput) (*entities.Land, error) {
	if err := validate(in); err != nil {
		return nil, err
	}
	l := &entities.Land{
		Name:            in.Name,
		AreaM2:          in.AreaM2,
		Address:         in.Address,
		Latitude:        in.Latitude,
		Longitude:       in.Longitude,
		Commodities:     in.Commodities,
		CustomCommodity: customCommodity(in),
		Photos:          []string{},
		Status:          "active",
	}
	if err := s.r.Create(l); err != nil {
		return nil, err
	}
	return l, nil
}

func (s *landSvc) Update(id string, in service.LandInput) (*entities.Land, error) {
	if err := validate(in); err != nil {
		return nil, err
	}
	l, err := s.r.FindByID(id)
	if err != nil {
		return nil, err
	}
	l.Name = in.Name
	l.AreaM2 = in.AreaM2
	l.Address = in.Address
	l.Latitude = in.Latitude
	l.Longitude = in.Longitude
	l.Commodities = in.Commodities
	l.CustomCommodity = customCommodity(in)
	if in.Status != "" {
		if !validStatus(in.Status) {
			return nil, fmt.Errorf("%w: status must be active, vacant or archived", service.ErrInvalid)
		}
		l.Status = in.Status
	}
	if err := s.r.Update(l); err != nil {
		return nil, err
	}
	return l, nil
}

func (s *landSvc) List() ([]entities.Land, error) { return s.r.List() }

func (s *landSvc) ListActive() ([]entities.Land, error) { return s.r.ListByStatus("active") }

func (s *landSvc) Get(id string) (*entities.Land, error) { return s.r.FindByID(id) }

func (s *landSvc) Delete(id string) error { return s.r.Delete(id) }

func (s *landSvc) AttachPhoto(id string, url string) (*entities.Land, error) {
	l, err := s.r.FindByID(id)
	if err != nil {
		return nil, err
	}
	if len(l.Photos) >= entities.MaxLandPhotos {
		return nil, fmt.Errorf("%w: maximum %d photos allowed", service.ErrInvalid, entities.MaxLandPhotos)
	}
	l.Photos = append(l.Photos, url)
	if err := s.r.Update(l); err != nil {
		return nil, err
	}
	return l, nil
}

func validate(in service.LandInput) error {
	if in.Name == "" {
		return fmt.Errorf("%w: name is required", service.ErrInvalid)
	}
	if in.AreaM2 <= 0 {
		return fmt.Errorf("%w: area_m2 must be greater than 0", service.ErrInvalid)
	}
	if (in.Latitude == nil) != (in.Longitude == nil) {
		return fmt.Errorf("%w: latitude and longitude must be set together", service.ErrInvalid)
	}
	if in.Latitude != nil {
		if *in.Latitude < -90 || *in.Latitude > 90 {
			return fmt.Errorf("%w: latitude out of range", service.ErrInvalid)
		}
		if *in.Longitude < -180 || *in.Longitude > 180 {
			return fmt.Errorf("%w: longitude out of range", service.ErrInvalid)
		}
	}
	if len(in.Commodities) == 0 {
		return fmt.Errorf("%w: select at least one commodity", service.ErrInvalid)
	}
	others := 0
	for _, c := range in.Commodities {
		if !validCommodity(c) {
			return fmt.Errorf("%w: unknown commodity %q", service.ErrInvalid, c)
		}
		if c == "Others" {
			others++
		}
	}
	if others > 1 {
		return fmt.Errorf("%w: commodity Others may appear at most once", service.ErrInvalid)
	}
	if others == 1 && (in.CustomCommodity == nil || *in.CustomCommodity == "") {
		return fmt.Errorf("%w: custom_commodity is required with Others", service.ErrInvalid)
	}
	return nil
}

// customCommodity keeps the free-text label only while Others is declared.
func customCommodity(in service.LandInput) *string {
	for _, c := range in.Commodities {
		if c == "Others" {
			return in.CustomCommodity
		}
	}
	return nil
}

func validStatus(s string) bool {
	return s == "active" || s == "vacant" || s == "archived"
}

func validCommodity(tag string) bool {
	for _, c := range entities.Commodities {
		if c == tag {
			return true
		}
	}
	return false
}
