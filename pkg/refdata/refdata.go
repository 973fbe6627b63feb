package refdata

import "strings"

// Crop is one entry of the fixed MVP crop list. MaturityDays is calendar
// days from planting to expected harvest. DefaultYieldKgHa and
// DefaultPriceRwfKg are the fallbacks used when a district has no usable
// production/consumption history for the crop.
type Crop struct {
	Name              string
	MaturityDays      int
	DefaultYieldKgHa  float64
	DefaultPriceRwfKg float64
}

// DefaultMaturityDays applies to crops outside the MVP list.
const DefaultMaturityDays = 90

var crops = []Crop{
	{Name: "Maize", MaturityDays: 120, DefaultYieldKgHa: 1500, DefaultPriceRwfKg: 250},
	{Name: "Beans", MaturityDays: 90, DefaultYieldKgHa: 900, DefaultPriceRwfKg: 400},
	{Name: "Irish potatoes", MaturityDays: 105, DefaultYieldKgHa: 10000, DefaultPriceRwfKg: 300},
	{Name: "Cassava", MaturityDays: 300, DefaultYieldKgHa: 12000, DefaultPriceRwfKg: 150},
	{Name: "Tomatoes", MaturityDays: 80, DefaultYieldKgHa: 8000, DefaultPriceRwfKg: 350},
}

func Crops() []Crop {
	out := make([]Crop, len(crops))
	copy(out, crops)
	return out
}

func CropNames() []string {
	names := make([]string, len(crops))
	for i, c := range crops {
		names[i] = c.Name
	}
	return names
}

func IsKnownCrop(name string) bool {
	for _, c := range crops {
		if strings.EqualFold(c.Name, name) {
			return true
		}
	}
	return false
}

func MaturityDays(crop string) int {
	for _, c := range crops {
		if strings.EqualFold(c.Name, crop) {
			return c.MaturityDays
		}
	}
	return DefaultMaturityDays
}

func DefaultYieldKgHa(crop string) float64 {
	for _, c := range crops {
		if strings.EqualFold(c.Name, crop) {
			return c.DefaultYieldKgHa
		}
	}
	return 0
}

func DefaultPriceRwfKg(crop string) float64 {
	for _, c := range crops {
		if strings.EqualFold(c.Name, crop) {
			return c.DefaultPriceRwfKg
		}
	}
	return 0
}

// districtProvince maps each of Rwanda's 30 districts to its province.
var districtProvince = map[string]string{
	// Kigali City
	"Gasabo":     "Kigali City",
	"Kicukiro":   "Kigali City",
	"Nyarugenge": "Kigali City",
	// Southern Province
	"Gisagara":  "Southern Province",
	"Huye":      "Southern Province",
	"Kamonyi":   "Southern Province",
	"Muhanga":   "Southern Province",
	"Nyamagabe": "Southern Province",
	"Nyanza":    "Southern Province",
	"Nyaruguru": "Southern Province",
	"Ruhango":   "Southern Province",
	// Western Province
	"Karongi":    "Western Province",
	"Ngororero":  "Western Province",
	"Nyabihu":    "Western Province",
	"Nyamasheke": "Western Province",
	"Rubavu":     "Western Province",
	"Rusizi":     "Western Province",
	"Rutsiro":    "Western Province",
	// Northern Province
	"Burera":  "Northern Province",
	"Gakenke": "Northern Province",
	"Gicumbi": "Northern Province",
	"Musanze": "Northern Province",
	"Rulindo": "Northern Province",
	// Eastern Province
	"Bugesera":  "Eastern Province",
	"Gatsibo":   "Eastern Province",
	"Kayonza":   "Eastern Province",
	"Kirehe":    "Eastern Province",
	"Ngoma":     "Eastern Province",
	"Nyagatare": "Eastern Province",
	"Rwamagana": "Eastern Province",
}

// ProvinceOf returns the province of a district, or "" if unknown.
func ProvinceOf(district string) string {
	for d, p := range districtProvince {
		if strings.EqualFold(d, district) {
			return p
		}
	}
	return ""
}

func IsKnownDistrict(name string) bool {
	return ProvinceOf(name) != ""
}

func Districts() []string {
	out := make([]string, 0, len(districtProvince))
	for d := range districtProvince {
		out = append(out, d)
	}
	return out
}
