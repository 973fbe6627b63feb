package serviceImp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hinga/pkg/dataset"
)

func fixtureStore() *dataset.Store {
	return &dataset.Store{
		Production: []dataset.ProductionRecord{
			{District: "Gasabo", Crop: "Maize", Season: "A", AvgAreaHa: 1.0, AvgYieldKgHa: 700, TotalProductionKg: 700},
			{District: "Gasabo", Crop: "Beans", Season: "A", AvgAreaHa: 3.0, AvgYieldKgHa: 500, TotalProductionKg: 1500},
			{District: "Gasabo", Crop: "Tomatoes", Season: "B", AvgAreaHa: 0.005, AvgYieldKgHa: 9000, TotalProductionKg: 45},
			{District: "Musanze", Crop: "Irish potatoes", Season: "A", AvgAreaHa: 2.0, AvgYieldKgHa: 11000, TotalProductionKg: 22000},
			{District: "Musanze", Crop: "Irish potatoes", Season: "B", AvgAreaHa: 4.0, AvgYieldKgHa: 9000, TotalProductionKg: 36000},
		},
	}
}

func TestRecommendUnknownDistrictReturnsEmpty(t *testing.T) {
	svc := New(fixtureStore())
	recs, err := svc.Recommend("Ngoma", 5.0, 3, "")
	require.NoError(t, err)
	assert.Empty(t, recs)
}

func TestRecommendNilStore(t *testing.T) {
	svc := New(nil)
	_, err := svc.Recommend("Gasabo", 5.0, 3, "")
	assert.ErrorIs(t, err, dataset.ErrNotLoaded)
}

func TestRecommendSeasonalFallback(t *testing.T) {
	svc := New(fixtureStore())

	// Season C has no rows for Gasabo; the result must match the
	// all-season query instead of coming back empty.
	all, err := svc.Recommend("Gasabo", 5.0, 3, "")
	require.NoError(t, err)
	seasonal, err := svc.Recommend("Gasabo", 5.0, 3, "C")
	require.NoError(t, err)
	assert.Equal(t, all, seasonal)
}

func TestRecommendProportionalAllocation(t *testing.T) {
	svc := New(fixtureStore())

	// Maize (1 ha) and Beans (3 ha) split 5 ha in a 1:3 ratio.
	recs, err := svc.Recommend("Gasabo", 5.0, 2, "")
	require.NoError(t, err)
	require.Len(t, recs, 2)

	// ranked by mean yield descending
	assert.Equal(t, "Maize", recs[0].CropName)
	assert.Equal(t, "Beans", recs[1].CropName)
	assert.Equal(t, 1.25, recs[0].RecommendedAreaHa)
	assert.Equal(t, 3.75, recs[1].RecommendedAreaHa)
	assert.Equal(t, 700.0, recs[0].EstimatedYieldKgPerHa)
	assert.Equal(t, 875.0, recs[0].EstimatedTotalProductionKg)
}

func TestRecommendAllocationConservesFarmSize(t *testing.T) {
	svc := New(fixtureStore())

	// 7.3 ha over a 1:3 area ratio gives shares of 1.825 and 5.475, which
	// would both round up if rounded independently. The last share must
	// absorb the drift.
	recs, err := svc.Recommend("Gasabo", 7.3, 3, "")
	require.NoError(t, err)
	require.Len(t, recs, 2)

	var sum float64
	for _, r := range recs {
		sum += r.RecommendedAreaHa
	}
	assert.InDelta(t, 7.3, sum, 1e-9)
	assert.Equal(t, round2(7.3-recs[0].RecommendedAreaHa), recs[1].RecommendedAreaHa)
}

func TestRecommendNoiseFilterDropsTinyArea(t *testing.T) {
	svc := New(fixtureStore())

	// Tomatoes has the highest yield but a 0.005 ha mean area.
	recs, err := svc.Recommend("Gasabo", 5.0, 3, "")
	require.NoError(t, err)
	for _, r := range recs {
		assert.NotEqual(t, "Tomatoes", r.CropName)
	}
}

func TestRecommendSeasonFilterApplied(t *testing.T) {
	svc := New(fixtureStore())

	recs, err := svc.Recommend("Musanze", 6.0, 3, "B")
	require.NoError(t, err)
	require.Len(t, recs, 1)
	// only the season-B row contributes
	assert.Equal(t, 9000.0, recs[0].EstimatedYieldKgPerHa)
	assert.Equal(t, 6.0, recs[0].RecommendedAreaHa)
}

func TestRecommendGroupsAcrossSeasons(t *testing.T) {
	svc := New(fixtureStore())

	recs, err := svc.Recommend("Musanze", 6.0, 3, "")
	require.NoError(t, err)
	require.Len(t, recs, 1)
	// mean of the two seasonal yields
	assert.Equal(t, 10000.0, recs[0].EstimatedYieldKgPerHa)
}
