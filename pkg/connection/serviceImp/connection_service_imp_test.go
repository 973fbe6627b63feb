package serviceImp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hinga/pkg/connection/service"
	"hinga/pkg/dataset"
)

func fixtureStore() *dataset.Store {
	return &dataset.Store{
		Establishments: []dataset.EstablishmentRecord{
			{District: "Gasabo", Province: "Kigali City", SectionCode: "G", SectionName: "Wholesale and retail trade",
				TotalWorkers: 12, AnnualTurnover: 5000000, FoodTrade: true},
			{District: "Gasabo", Province: "Kigali City", SectionCode: "C", SectionName: "Manufacturing",
				TotalWorkers: 3, AnnualTurnover: 2000000, FoodProcessing: true},
			{District: "Gasabo", Province: "Kigali City", SectionCode: "G", SectionName: "Wholesale and retail trade",
				TotalWorkers: 3, AnnualTurnover: 400000, FoodTrade: true}, // below both thresholds
			{District: "Gasabo", Province: "Kigali City", SectionCode: "C", SectionName: "Manufacturing",
				TotalWorkers: 40, AnnualTurnover: 9000000, FoodTrade: true, FoodProcessing: true},
			{District: "Kicukiro", Province: "Kigali City", SectionCode: "A", SectionName: "Agriculture",
				TotalWorkers: 8, AnnualTurnover: 700000, Cooperative: true},
			{District: "Kicukiro", Province: "Kigali City", SectionCode: "C", SectionName: "Manufacturing",
				TotalWorkers: 25, AnnualTurnover: 12000000, Exporter: true},
		},
	}
}

func TestFindCooperatives(t *testing.T) {
	svc := New(fixtureStore())
	out, err := svc.FindCooperatives("Kicukiro", "District")
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Agriculture", out[0].SectionName)
}

func TestFindExporters(t *testing.T) {
	svc := New(fixtureStore())
	out, err := svc.FindExporters("Kicukiro", "District")
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, 25, out[0].TotalWorkers)
}

func TestBuyersAndProcessorsThresholds(t *testing.T) {
	svc := New(fixtureStore())
	buyers, processors, err := svc.FindBuyersAndProcessors("Gasabo", "District", 5, 1000000)
	require.NoError(t, err)

	// the 3-worker / 400k-turnover trader clears neither threshold
	require.Len(t, buyers, 2)
	for _, b := range buyers {
		assert.True(t, b.TotalWorkers >= 5 || b.AnnualTurnover >= 1000000)
	}

	// the 3-worker processor clears the turnover threshold
	require.Len(t, processors, 2)
}

func TestBuyersAndProcessorsOverlap(t *testing.T) {
	svc := New(fixtureStore())
	buyers, processors, err := svc.FindBuyersAndProcessors("Gasabo", "District", 5, 1000000)
	require.NoError(t, err)

	// an establishment with both flags appears in both lists
	found := 0
	for _, b := range buyers {
		if b.TotalWorkers == 40 {
			found++
		}
	}
	for _, p := range processors {
		if p.TotalWorkers == 40 {
			found++
		}
	}
	assert.Equal(t, 2, found)
}

func TestProvinceIsFlatUnion(t *testing.T) {
	svc := New(fixtureStore())

	// no roll-up: the province query returns each district row as-is
	out, err := svc.FindCooperatives("Kigali City", "Province")
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Kicukiro", out[0].District)
}

func TestBadLocationType(t *testing.T) {
	svc := New(fixtureStore())
	_, err := svc.FindCooperatives("Gasabo", "Sector")
	assert.ErrorIs(t, err, service.ErrBadLocationType)
}

func TestEmptyLocationIsValid(t *testing.T) {
	svc := New(fixtureStore())
	out, err := svc.FindExporters("Rubavu", "District")
	require.NoError(t, err)
	assert.Empty(t, out)
}
