package refdata

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCropLookupsAreCaseInsensitive(t *testing.T) {
	assert.True(t, IsKnownCrop("maize"))
	assert.True(t, IsKnownCrop("IRISH POTATOES"))
	assert.False(t, IsKnownCrop("Sorghum"))

	assert.Equal(t, 120, MaturityDays("MAIZE"))
	assert.Equal(t, 1500.0, DefaultYieldKgHa("maize"))
	assert.Equal(t, 400.0, DefaultPriceRwfKg("beans"))
}

func TestUnknownCropDefaults(t *testing.T) {
	assert.Equal(t, DefaultMaturityDays, MaturityDays("Sorghum"))
	assert.Equal(t, 0.0, DefaultYieldKgHa("Sorghum"))
	assert.Equal(t, 0.0, DefaultPriceRwfKg("Sorghum"))
}

func TestDistrictProvinceMap(t *testing.T) {
	assert.Equal(t, "Kigali City", ProvinceOf("gasabo"))
	assert.Equal(t, "Northern Province", ProvinceOf("Musanze"))
	assert.Equal(t, "", ProvinceOf("Nairobi"))

	assert.True(t, IsKnownDistrict("Rubavu"))
	assert.False(t, IsKnownDistrict(""))
	assert.Len(t, Districts(), 30)
}

func TestCropsReturnsCopy(t *testing.T) {
	a := Crops()
	a[0].Name = "mutated"
	assert.Equal(t, "Maize", Crops()[0].Name)
	assert.Len(t, CropNames(), 5)
}
