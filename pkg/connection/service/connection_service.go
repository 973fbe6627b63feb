package service

import "errors"

var ErrBadLocationType = errors.New("location_type must be District or Province")

// Establishment is the projection of a census row returned to callers.
type Establishment struct {
	SectionCode     string  `json:"section_code"`
	SectionName     string  `json:"section_name"`
	District        string  `json:"district"`
	TotalWorkers    int     `json:"total_workers"`
	AnnualTurnover  float64 `json:"annual_turnover"`
	EmployedCapital float64 `json:"employed_capital"`
}

// ConnectionService classifies business establishments around a location
// into market connections for the farmer. A province query is a flat union
// of its district rows; establishment records are not numeric-summable by
// identity, so there is no roll-up here.
type ConnectionService interface {
	FindCooperatives(location, locationType string) ([]Establishment, error)
	// FindBuyersAndProcessors returns two lists: food-trade establishments
	// (buyers) and food-processing establishments (processors) that clear
	// the worker-count OR turnover threshold. One establishment can appear
	// in both lists when it carries both flags.
	FindBuyersAndProcessors(location, locationType string, minWorkers int, minTurnover float64) (buyers, processors []Establishment, err error)
	FindExporters(location, locationType string) ([]Establishment, error)
}
