package repository

import "hinga/entities"

type CropPlanRepository interface {
	Create(p *entities.CropPlan) error
	FindByID(id uint) (*entities.CropPlan, error)
	ListByUser(userID uint) ([]entities.CropPlan, error)
	ListAll() ([]entities.CropPlan, error)
	Save(p *entities.CropPlan) error
	Delete(id uint) error
}
