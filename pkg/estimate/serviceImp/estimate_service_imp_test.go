package serviceImp

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hinga/pkg/dataset"
	demandImp "hinga/pkg/demand/serviceImp"
	estsvc "hinga/pkg/estimate/service"
	recImp "hinga/pkg/recommend/serviceImp"
)

func newEstimator(store *dataset.Store) estsvc.EstimationService {
	return New(recImp.New(store), demandImp.New(store))
}

func gasaboStore() *dataset.Store {
	return &dataset.Store{
		Production: []dataset.ProductionRecord{
			{District: "Gasabo", Crop: "Maize", AvgAreaHa: 1.0, AvgYieldKgHa: 700, TotalProductionKg: 700},
		},
		Consumption: []dataset.ConsumptionRecord{
			{District: "Gasabo", Province: "Kigali City", Crop: "Maize", QuantityKg: 10000, ValueRwf: 3500000},
		},
	}
}

func date(s string) time.Time {
	d, _ := time.Parse("2006-01-02", s)
	return d
}

func TestEstimateGasaboMaize(t *testing.T) {
	svc := newEstimator(gasaboStore())

	est, err := svc.Estimate("Maize", 2.0, date("2025-03-15"), "Gasabo")
	require.NoError(t, err)

	assert.Equal(t, 700.0, est.EstimatedYieldKgPerHa)
	assert.Equal(t, 1400.0, est.EstimatedTotalProductionKg)
	assert.Equal(t, 350.0, est.EstimatedPricePerKgRwf)
	assert.Equal(t, 490000.0, est.EstimatedRevenueRwf)
	assert.Equal(t, "2025-07-13", est.EstimatedHarvestDate)
	assert.Equal(t, "2025-03-15", est.PlantingDate)
}

func TestEstimateRevenueRoundTrip(t *testing.T) {
	svc := newEstimator(gasaboStore())

	est, err := svc.Estimate("Maize", 1.37, date("2025-03-15"), "Gasabo")
	require.NoError(t, err)
	assert.Equal(t, est.EstimatedTotalProductionKg*est.EstimatedPricePerKgRwf, est.EstimatedRevenueRwf)
}

func TestEstimateYieldFallsBackToDefaultTable(t *testing.T) {
	// no production rows at all for the district
	store := gasaboStore()
	store.Production = nil
	svc := newEstimator(store)

	est, err := svc.Estimate("Maize", 2.0, date("2025-03-15"), "Gasabo")
	require.NoError(t, err)
	assert.Equal(t, 1500.0, est.EstimatedYieldKgPerHa)
}

func TestEstimatePriceFallsBackToDefaultTable(t *testing.T) {
	store := gasaboStore()
	store.Consumption = nil
	svc := newEstimator(store)

	est, err := svc.Estimate("Maize", 2.0, date("2025-03-15"), "Gasabo")
	require.NoError(t, err)
	assert.Equal(t, 250.0, est.EstimatedPricePerKgRwf)
}

func TestEstimatePriceIgnoresNonTopCrop(t *testing.T) {
	// Beans dominates the district's consumption by value, so Maize falls
	// back to its default price even though a Maize row exists.
	store := gasaboStore()
	store.Consumption = append(store.Consumption, dataset.ConsumptionRecord{
		District: "Gasabo", Province: "Kigali City", Crop: "Beans", QuantityKg: 20000, ValueRwf: 9000000,
	})
	svc := newEstimator(store)

	est, err := svc.Estimate("Maize", 2.0, date("2025-03-15"), "Gasabo")
	require.NoError(t, err)
	assert.Equal(t, 250.0, est.EstimatedPricePerKgRwf)
}

func TestEstimateUnknownCropFails(t *testing.T) {
	svc := newEstimator(gasaboStore())

	_, err := svc.Estimate("Sorghum", 2.0, date("2025-03-15"), "Gasabo")
	require.Error(t, err)
	var estErr *estsvc.EstimationError
	require.ErrorAs(t, err, &estErr)
	assert.Equal(t, "Sorghum", estErr.Crop)
	assert.Equal(t, "Gasabo", estErr.District)
	assert.Equal(t, "yield", estErr.Quantity)
}

func TestEstimateMaturityDefaultsTo90Days(t *testing.T) {
	// the estimator itself does not restrict the crop list; an unknown
	// crop that still resolves yield and price gets the generic maturity
	store := &dataset.Store{
		Production: []dataset.ProductionRecord{
			{District: "Gasabo", Crop: "Sorghum", AvgAreaHa: 1.0, AvgYieldKgHa: 600, TotalProductionKg: 600},
		},
		Consumption: []dataset.ConsumptionRecord{
			{District: "Gasabo", Province: "Kigali City", Crop: "Sorghum", QuantityKg: 5000, ValueRwf: 1000000},
		},
	}
	svc := newEstimator(store)

	est, err := svc.Estimate("Sorghum", 1.0, date("2025-01-01"), "Gasabo")
	require.NoError(t, err)
	assert.Equal(t, "2025-04-01", est.EstimatedHarvestDate)
}
