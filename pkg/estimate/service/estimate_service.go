package service

import (
	"fmt"
	"time"
)

// Estimate is the projected outcome for one planting decision.
type Estimate struct {
	CropName                   string  `json:"crop_name"`
	AreaHa                     float64 `json:"area_ha"`
	PlantingDate               string  `json:"planting_date"`
	EstimatedYieldKgPerHa      float64 `json:"estimated_yield_kg_per_ha"`
	EstimatedTotalProductionKg float64 `json:"estimated_total_production_kg"`
	EstimatedPricePerKgRwf     float64 `json:"estimated_price_per_kg_rwf"`
	EstimatedRevenueRwf        float64 `json:"estimated_revenue_rwf"`
	EstimatedHarvestDate       string  `json:"estimated_harvest_date"`
}

// EstimationError means both the district lookup and the per-crop default
// table resolved to zero for yield or price. It is fatal to the single
// estimate request; no partial estimate is returned.
type EstimationError struct {
	Crop     string
	District string
	Quantity string // "yield" or "price"
}

func (e *EstimationError) Error() string {
	return fmt.Sprintf("could not estimate %s for crop %q in district %q", e.Quantity, e.Crop, e.District)
}

type EstimationService interface {
	// Estimate derives yield from district production history (falling back
	// to the per-crop default table), price from district consumption data
	// (value / quantity of the top crop by value, same fallback), and the
	// harvest date from the crop's maturity-day constant.
	Estimate(cropName string, areaHa float64, plantingDate time.Time, district string) (*Estimate, error)
}
