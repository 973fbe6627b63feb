package repositoryImp

import (
	"gorm.io/gorm"

	"hinga/entities"
	"hinga/pkg/cropplan/repository"
)

type cropPlanRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.CropPlanRepository { return &cropPlanRepo{db} }

func (r *cropPlanRepo) Create(p *entities.CropPlan) error { return r.db.Create(p).Error }

func (r *cropPlanRepo) FindByID(id uint) (*entities.CropPlan, error) {
	var p entities.CropPlan
	if err := r.db.First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *cropPlanRepo) ListByUser(userID uint) ([]entities.CropPlan, error) {
	var ps []entities.CropPlan
	if err := r.db.Where("user_id = ?", userID).Order("plan_id DESC").Find(&ps).Error; err != nil {
		return nil, err
	}
	return ps, nil
}

func (r *cropPlanRepo) ListAll() ([]entities.CropPlan, error) {
	var ps []entities.CropPlan
	if err := r.db.Order("plan_id DESC").Find(&ps).Error; err != nil {
		return nil, err
	}
	return ps, nil
}

func (r *cropPlanRepo) Save(p *entities.CropPlan) error { return r.db.Save(p).Error }

func (r *cropPlanRepo) Delete(id uint) error {
	return r.db.Delete(&entities.CropPlan{}, id).Error
}
