package repositoryImp

import (
	"gorm.io/gorm"

	"github.com/rindang-net/digifarm/entities"
	"github.com/rindang-net/digifarm/pkg/land/repository"
)

type landRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.LandRepository { return &landRepo{db} }

func (r *landRepo) Create(l *entities.Land) error { return r.db.Create(l).Error }

func (r *landRepo) List() ([]entities.Land, error) {
	var out []entities.Land
	if err := r.db.Order("created_at DESC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *landRepo) ListByStatus(status string) ([]entities.Land, error) {
	var out []entities.Land
	if err := r.db.Where("status = ?", status).Order("created_at DESC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *landRepo) FindByID(id string) (*entities.Land, error) {
	var l entities.Land
	if err := r.db.First(&l, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *landRepo) Update(l *entities.Land) error { return r.db.Save(l).Error }

func (r *landRepo) Delete(id string) error {
	// The sqlite driver does not always enforce FK cascades, so dependent rows
	// are removed explicitly in one transaction.
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("production_id IN (?)",
			tx.Model(&entities.Production{}).Select("id").Where("land_id = ?", id),
		).Delete(&entities.Activity{}).Error; err != nil {
			return err
		}
		if err := tx.Where("land_id = ?", id).Delete(&entities.Activity{}).Error; err != nil {
			return err
		}
		if err := tx.Where("land_id = ?", id).Delete(&entities.Production{}).Error; err != nil {
			return err
		}
		return tx.Delete(&entities.Land{}, "id = ?", id).Error
	})
}
