package service

import (
	"errors"
	"fmt"
	"time"

	"hinga/entities"
)

var (
	ErrNotFound  = errors.New("crop plan not found")
	ErrForbidden = errors.New("crop plan belongs to another user")
	// ErrAlreadyHarvested reports a repeated harvest recording; the caller
	// surfaces it as a conflict.
	ErrAlreadyHarvested = errors.New("crop plan already harvested")
)

// InvalidTransitionError carries the current status so the caller can
// decide whether to retry after a state change.
type InvalidTransitionError struct {
	Attempted string
	Current   entities.PlanStatus
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("cannot %s a crop plan with status %q", e.Attempted, e.Current)
}

// ValidationError is a caller-input error attributable to one field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Field + ": " + e.Message }

// Identity is the authenticated caller; mutations require the owning user
// or an administrator.
type Identity struct {
	UserID uint
	Role   string
}

func (id Identity) IsAdmin() bool { return id.Role == entities.RoleAdmin }

type CreateInput struct {
	CropName     string
	DistrictName string
	AreaHa       float64
	PlantingDate time.Time
	Status       entities.PlanStatus // optional; defaults to Planted
}

// Patch carries a partial update; nil fields are left untouched. Changing
// any of crop/district/area/planting date re-runs estimation with the
// merged values.
type Patch struct {
	CropName     *string
	DistrictName *string
	AreaHa       *float64
	PlantingDate *time.Time
	Status       *entities.PlanStatus
}

type HarvestInput struct {
	HarvestDate      time.Time
	ActualYieldKgHa  float64
	ActualPriceRwfKg float64
	Notes            *string
}

type CropPlanService interface {
	Create(actor Identity, in CreateInput) (*entities.CropPlan, error)
	Get(actor Identity, id uint) (*entities.CropPlan, error)
	List(actor Identity) ([]entities.CropPlan, error)
	Update(actor Identity, id uint, patch Patch) (*entities.CropPlan, error)
	RecordHarvest(actor Identity, id uint, in HarvestInput) (*entities.CropPlan, error)
	Cancel(actor Identity, id uint) (*entities.CropPlan, error)
	Complete(actor Identity, id uint) (*entities.CropPlan, error)
	Delete(actor Identity, id uint) error
}
