package entities

import "time"

type PlanStatus string

const (
	StatusPlanned   PlanStatus = "Planned"
	StatusPlanted   PlanStatus = "Planted"
	StatusHarvested PlanStatus = "Harvested"
	StatusCompleted PlanStatus = "Completed"
	StatusCancelled PlanStatus = "Cancelled"
)

// Valid reports whether s is one of the five plan statuses.
func (s PlanStatus) Valid() bool {
	switch s {
	case StatusPlanned, StatusPlanted, StatusHarvested, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// CropPlan is one planting decision by a farmer. Estimated fields are
// derived and recomputed whenever crop, area, planting date or district
// change. Actual fields stay nil until harvest is recorded, which happens
// exactly once.
type CropPlan struct {
	PlanID       uint       `gorm:"primaryKey" json:"plan_id"`
	UserID       uint       `gorm:"index" json:"user_id"`
	CropName     string     `json:"crop_name"`
	DistrictName string     `json:"district_name"`
	AreaHa       float64    `json:"area_ha"`
	PlantingDate time.Time  `json:"planting_date"`
	Status       PlanStatus `gorm:"index" json:"status"`

	EstimatedHarvestDate  *time.Time `json:"estimated_harvest_date"`
	EstimatedYieldKgHa    float64    `json:"estimated_yield_kg_ha"`
	EstimatedProductionKg float64    `json:"estimated_production_kg"`
	EstimatedPriceRwfKg   float64    `json:"estimated_price_rwf_kg"`
	EstimatedRevenueRwf   float64    `json:"estimated_revenue_rwf"`

	ActualHarvestDate  *time.Time `json:"actual_harvest_date"`
	ActualYieldKgHa    *float64   `json:"actual_yield_kg_ha"`
	ActualProductionKg *float64   `json:"actual_production_kg"`
	ActualPriceRwfKg   *float64   `json:"actual_price_rwf_kg"`
	ActualRevenueRwf   *float64   `json:"actual_revenue_rwf"`
	HarvestNotes       *string    `json:"harvest_notes"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
