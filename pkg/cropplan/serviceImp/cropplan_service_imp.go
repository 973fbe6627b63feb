package serviceImp

import (
	"errors"
	"math"
	"time"

	"gorm.io/gorm"

	"hinga/entities"
	"hinga/pkg/cropplan/repository"
	"hinga/pkg/cropplan/service"
	estsvc "hinga/pkg/estimate/service"
	"hinga/pkg/refdata"
)

const dateLayout = "2006-01-02"

type cropPlanSvc struct {
	repo      repository.CropPlanRepository
	estimator estsvc.EstimationService
}

func New(repo repository.CropPlanRepository, estimator estsvc.EstimationService) service.CropPlanService {
	return &cropPlanSvc{repo: repo, estimator: estimator}
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }

func (s *cropPlanSvc) find(id uint) (*entities.CropPlan, error) {
	p, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, service.ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (s *cropPlanSvc) findOwned(actor service.Identity, id uint) (*entities.CropPlan, error) {
	p, err := s.find(id)
	if err != nil {
		return nil, err
	}
	if p.UserID != actor.UserID && !actor.IsAdmin() {
		return nil, service.ErrForbidden
	}
	return p, nil
}

func validateCreate(in service.CreateInput) error {
	if !refdata.IsKnownCrop(in.CropName) {
		return &service.ValidationError{Field: "crop_name", Message: "unknown crop"}
	}
	if in.DistrictName == "" {
		return &service.ValidationError{Field: "district_name", Message: "is required"}
	}
	if in.AreaHa <= 0 {
		return &service.ValidationError{Field: "area_ha", Message: "must be a positive number"}
	}
	if in.PlantingDate.IsZero() {
		return &service.ValidationError{Field: "planting_date", Message: "must be a valid date"}
	}
	if in.Status != "" {
		if !in.Status.Valid() {
			return &service.ValidationError{Field: "status", Message: "unknown status"}
		}
		if in.Status == entities.StatusHarvested {
			return &service.ValidationError{Field: "status", Message: "is set by recording a harvest"}
		}
	}
	return nil
}

// applyEstimate recomputes the derived fields from a fresh estimate.
func applyEstimate(p *entities.CropPlan, est *estsvc.Estimate) {
	harvest, _ := time.Parse(dateLayout, est.EstimatedHarvestDate)
	p.EstimatedHarvestDate = &harvest
	p.EstimatedYieldKgHa = est.EstimatedYieldKgPerHa
	p.EstimatedProductionKg = est.EstimatedTotalProductionKg
	p.EstimatedPriceRwfKg = est.EstimatedPricePerKgRwf
	p.EstimatedRevenueRwf = est.EstimatedRevenueRwf
}

func (s *cropPlanSvc) Create(actor service.Identity, in service.CreateInput) (*entities.CropPlan, error) {
	if err := validateCreate(in); err != nil {
		return nil, err
	}
	status := in.Status
	if status == "" {
		status = entities.StatusPlanted
	}

	// estimation failure fails the whole creation; no partially-estimated
	// plan is persisted
	est, err := s.estimator.Estimate(in.CropName, in.AreaHa, in.PlantingDate, in.DistrictName)
	if err != nil {
		return nil, err
	}

	p := &entities.CropPlan{
		UserID:       actor.UserID,
		CropName:     in.CropName,
		DistrictName: in.DistrictName,
		AreaHa:       in.AreaHa,
		PlantingDate: in.PlantingDate,
		Status:       status,
	}
	applyEstimate(p, est)
	if err := s.repo.Create(p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *cropPlanSvc) Get(actor service.Identity, id uint) (*entities.CropPlan, error) {
	return s.findOwned(actor, id)
}

func (s *cropPlanSvc) List(actor service.Identity) ([]entities.CropPlan, error) {
	if actor.IsAdmin() {
		return s.repo.ListAll()
	}
	return s.repo.ListByUser(actor.UserID)
}

func (s *cropPlanSvc) Update(actor service.Identity, id uint, patch service.Patch) (*entities.CropPlan, error) {
	p, err := s.findOwned(actor, id)
	if err != nil {
		return nil, err
	}

	reestimate := false
	if patch.CropName != nil && *patch.CropName != p.CropName {
		if !refdata.IsKnownCrop(*patch.CropName) {
			return nil, &service.ValidationError{Field: "crop_name", Message: "unknown crop"}
		}
		p.CropName = *patch.CropName
		reestimate = true
	}
	if patch.DistrictName != nil && *patch.DistrictName != p.DistrictName {
		if *patch.DistrictName == "" {
			return nil, &service.ValidationError{Field: "district_name", Message: "is required"}
		}
		p.DistrictName = *patch.DistrictName
		reestimate = true
	}
	if patch.AreaHa != nil && *patch.AreaHa != p.AreaHa {
		if *patch.AreaHa <= 0 {
			return nil, &service.ValidationError{Field: "area_ha", Message: "must be a positive number"}
		}
		p.AreaHa = *patch.AreaHa
		reestimate = true
	}
	if patch.PlantingDate != nil && !patch.PlantingDate.Equal(p.PlantingDate) {
		p.PlantingDate = *patch.PlantingDate
		reestimate = true
	}
	if patch.Status != nil && *patch.Status != p.Status {
		if !patch.Status.Valid() {
			return nil, &service.ValidationError{Field: "status", Message: "unknown status"}
		}
		// the harvested state is only ever entered through RecordHarvest,
		// which fills the actual fields alongside the transition
		if *patch.Status == entities.StatusHarvested {
			return nil, &service.ValidationError{Field: "status", Message: "is set by recording a harvest"}
		}
		switch p.Status {
		case entities.StatusCompleted, entities.StatusCancelled:
			return nil, &service.InvalidTransitionError{Attempted: "update", Current: p.Status}
		}
		p.Status = *patch.Status
	}

	if reestimate {
		est, err := s.estimator.Estimate(p.CropName, p.AreaHa, p.PlantingDate, p.DistrictName)
		if err != nil {
			return nil, err
		}
		applyEstimate(p, est)
	}

	if err := s.repo.Save(p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *cropPlanSvc) RecordHarvest(actor service.Identity, id uint, in service.HarvestInput) (*entities.CropPlan, error) {
	p, err := s.findOwned(actor, id)
	if err != nil {
		return nil, err
	}
	if p.Status == entities.StatusHarvested {
		return nil, service.ErrAlreadyHarvested
	}
	if p.Status != entities.StatusPlanted {
		return nil, &service.InvalidTransitionError{Attempted: "harvest", Current: p.Status}
	}
	if in.ActualYieldKgHa <= 0 {
		return nil, &service.ValidationError{Field: "actual_yield_kg_ha", Message: "must be a positive number"}
	}
	if in.ActualPriceRwfKg < 0 {
		return nil, &service.ValidationError{Field: "actual_price_rwf_kg", Message: "must not be negative"}
	}

	harvestDate := in.HarvestDate
	if harvestDate.IsZero() {
		harvestDate = time.Now()
	}

	// area comes from the stored record, never from the client, so a stale
	// or forged area cannot corrupt the actual-production figure
	production := round2(p.AreaHa * in.ActualYieldKgHa)
	revenue := round2(production * in.ActualPriceRwfKg)

	yield := in.ActualYieldKgHa
	price := in.ActualPriceRwfKg
	p.Status = entities.StatusHarvested
	p.ActualHarvestDate = &harvestDate
	p.ActualYieldKgHa = &yield
	p.ActualProductionKg = &production
	p.ActualPriceRwfKg = &price
	p.ActualRevenueRwf = &revenue
	p.HarvestNotes = in.Notes

	if err := s.repo.Save(p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *cropPlanSvc) Cancel(actor service.Identity, id uint) (*entities.CropPlan, error) {
	p, err := s.findOwned(actor, id)
	if err != nil {
		return nil, err
	}
	switch p.Status {
	case entities.StatusCompleted, entities.StatusCancelled:
		return nil, &service.InvalidTransitionError{Attempted: "cancel", Current: p.Status}
	}
	p.Status = entities.StatusCancelled
	if err := s.repo.Save(p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *cropPlanSvc) Complete(actor service.Identity, id uint) (*entities.CropPlan, error) {
	p, err := s.findOwned(actor, id)
	if err != nil {
		return nil, err
	}
	if p.Status != entities.StatusHarvested {
		return nil, &service.InvalidTransitionError{Attempted: "complete", Current: p.Status}
	}
	p.Status = entities.StatusCompleted
	if err := s.repo.Save(p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *cropPlanSvc) Delete(actor service.Identity, id uint) error {
	p, err := s.findOwned(actor, id)
	if err != nil {
		return err
	}
	return s.repo.Delete(p.PlanID)
}
