package repository

import "github.com/rindang-net/digifarm/entities"

type LandRepository interface {
	Create(l *entities.Land) error
	List() ([]entities.Land, error)
	ListByStatus(status string) ([]entities.Land, error)
	FindByID(id string) (*entities.Land, error)
	Update(l *entities.Land) error
	// Delete removes the land and cascades its productions and activities.
	Delete(id string) error
}
