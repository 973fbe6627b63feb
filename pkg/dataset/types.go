package dataset

import "errors"

// ErrNotLoaded is returned by services constructed without a loaded Store.
// It is distinct from "no rows matched", which is an empty (valid) result.
var ErrNotLoaded = errors.New("datasets not loaded")

// ProductionRecord is one historical row per district x crop x season.
type ProductionRecord struct {
	District          string
	Crop              string
	Season            string
	AvgAreaHa         float64
	AvgYieldKgHa      float64
	TotalProductionKg float64
	Observations      int
}

// ConsumptionRecord is one historical household-survey row per district x crop.
type ConsumptionRecord struct {
	District   string
	Province   string
	Crop       string
	QuantityKg float64
	ValueRwf   float64
	Households int
}

// EstablishmentRecord is one business-census row.
type EstablishmentRecord struct {
	District        string
	Province        string
	SectionCode     string
	SectionName     string
	TotalWorkers    int
	AnnualTurnover  float64
	EmployedCapital float64
	Agriculture     bool
	FoodProcessing  bool
	FoodTrade       bool
	Exporter        bool
	Cooperative     bool
}

// LoadWarnings counts numeric cells that failed to parse and were coerced
// to zero, per dataset. Coercion is silent per-cell; the totals are logged
// once after load so malformed source data is not swallowed entirely.
type LoadWarnings struct {
	Production    int
	Consumption   int
	Establishment int
}

// Store holds the three read-only row collections. It is populated once at
// startup and never mutated afterwards, so concurrent reads need no locking.
// Tests construct it directly from fixture rows.
type Store struct {
	Production     []ProductionRecord
	Consumption    []ConsumptionRecord
	Establishments []EstablishmentRecord
	Warnings       LoadWarnings
}
