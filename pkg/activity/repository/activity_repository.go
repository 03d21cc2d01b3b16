package repository

import "github.com/rindang-net/digifarm/entities"

// Filter narrows List; zero values mean no constraint.
type Filter struct {
	LandID string
	Status string
}

type ActivityRepository interface {
	Create(a *entities.Activity) error
	List(f Filter) ([]entities.Activity, error)
	FindByID(id string) (*entities.Activity, error)
	Update(a *entities.Activity) error
	Delete(id string) error
}
