package service

import "errors"

// Location types accepted by the demand and connection queries.
const (
	LocationDistrict = "District"
	LocationProvince = "Province"
)

// Sort keys for demand insights.
const (
	SortByQuantity = "quantity"
	SortByValue    = "value"
)

var (
	ErrBadLocationType = errors.New("location_type must be District or Province")
	ErrBadSortBy       = errors.New("sort_by must be quantity or value")
)

// DemandInsight is the aggregate household demand for one crop in a location.
// Quantities and values are whole-unit magnitudes, rounded to 0 decimals.
type DemandInsight struct {
	CropName        string  `json:"crop_name"`
	TotalQuantityKg float64 `json:"total_quantity_kg"`
	TotalValueRwf   float64 `json:"total_value_rwf"`
}

type DemandService interface {
	// DemandInsights returns the top crops by consumption for a district,
	// or for a province with quantity/value summed across its districts.
	DemandInsights(location, locationType string, topN int, sortBy string) ([]DemandInsight, error)
}
