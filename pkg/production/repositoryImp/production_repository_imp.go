package repositoryImp

import (
	"gorm.io/gorm"

	"github.com/rindang-net/digifarm/entities"
	"github.com/rindang-net/digifarm/pkg/production/repository"
)

type productionRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.ProductionRepository { return &productionRepo{db} }

func (r *productionRepo) Create(p *entities.Production) error { return r.db.Create(p).Error }

func (r *productionRepo) CreateBatch(ps []entities.Production) error {
	return r.db.Create(&ps).Error
}

func (r *productionRepo) List() ([]entities.Production, error) {
	var out []entities.Production
	if err := r.db.Preload("Land").Order("created_at DESC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *productionRepo) FindByID(id string) (*entities.Production, error) {
	var p entities.Production
	if err := r.db.Preload("Land").First(&p, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *productionRepo) Update(p *entities.Production) error { return r.db.Save(p).Error }

func (r *productionRepo) RecordHarvest(id string, harvestDate string, yieldKg float64) error {
	res := r.db.Model(&entities.Production{}).Where("id = ?", id).Updates(map[string]any{
		"harvest_date":     harvestDate,
		"harvest_yield_kg": yieldKg,
		"status":           "harvested",
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *productionRepo) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("production_id = ?", id).Delete(&entities.Activity{}).Error; err != nil {
			return err
		}
		return tx.Delete(&entities.Production{}, "id = ?", id).Error
	})
}

func (r *productionRepo) DeleteBatch(ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("production_id IN ?", ids).Delete(&entities.Activity{}).Error; err != nil {
			return err
		}
		return tx.Delete(&entities.Production{}, "id IN ?", ids).Error
	})
}
