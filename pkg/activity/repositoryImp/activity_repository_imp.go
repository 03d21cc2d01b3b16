package repositoryImp

import (
	"gorm.io/gorm"

	"github.com/rindang-net/digifarm/entities"
	"github.com/rindang-net/digifarm/pkg/activity/repository"
)

type activityRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.ActivityRepository { return &activityRepo{db} }

func (r *activityRepo) Create(a *entities.Activity) error { return r.db.Create(a).Error }

func (r *activityRepo) List(f repository.Filter) ([]entities.Activity, error) {
	q := r.db.Preload("Land").Preload("Production")
	if f.LandID != "" {
		q = q.Where("land_id = ?", f.LandID)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	var out []entities.Activity
	if err := q.Order("created_at DESC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *activityRepo) FindByID(id string) (*entities.Activity, error) {
	var a entities.Activity
	if err := r.db.Preload("Land").Preload("Production").First(&a, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *activityRepo) Update(a *entities.Activity) error { return r.db.Save(a).Error }

func (r *activityRepo) Delete(id string) error {
	return r.db.Delete(&entities.Activity{}, "id = ?", id).Error
}
