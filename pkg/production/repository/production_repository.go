package repository

import "github.com/rindang-net/digifarm/entities"

type ProductionRepository interface {
	Create(p *entities.Production) error
	// CreateBatch inserts all records in one write, used by the planting import.
	CreateBatch(ps []entities.Production) error
	// List returns productions newest first with the owning land joined.
	List() ([]entities.Production, error)
	FindByID(id string) (*entities.Production, error)
	Update(p *entities.Production) error
	// RecordHarvest sets both harvest fields and the harvested status in a
	// single update, never a partial one.
	RecordHarvest(id string, harvestDate string, yieldKg float64) error
	Delete(id string) error
	DeleteBatch(ids []string) error
}
