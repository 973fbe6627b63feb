package serviceImp

import (
	"math"
	"strings"
	"time"

	demandsvc "hinga/pkg/demand/service"
	"hinga/pkg/estimate/service"
	recsvc "hinga/pkg/recommend/service"
	"hinga/pkg/refdata"
)

const dateLayout = "2006-01-02"

type estimateSvc struct {
	rec recsvc.RecommendationService
	dem demandsvc.DemandService
}

func New(rec recsvc.RecommendationService, dem demandsvc.DemandService) service.EstimationService {
	return &estimateSvc{rec: rec, dem: dem}
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }

func (s *estimateSvc) Estimate(cropName string, areaHa float64, plantingDate time.Time, district string) (*service.Estimate, error) {
	yield, err := s.resolveYield(cropName, district)
	if err != nil {
		return nil, err
	}
	price, err := s.resolvePrice(cropName, district)
	if err != nil {
		return nil, err
	}

	yield = round2(yield)
	price = round2(price)
	total := round2(areaHa * yield)
	// revenue derives from the already-rounded figures so that
	// revenue == total * price holds exactly for the caller
	revenue := round2(total * price)

	harvest := plantingDate.AddDate(0, 0, refdata.MaturityDays(cropName))

	return &service.Estimate{
		CropName:                   cropName,
		AreaHa:                     areaHa,
		PlantingDate:               plantingDate.Format(dateLayout),
		EstimatedYieldKgPerHa:      yield,
		EstimatedTotalProductionKg: total,
		EstimatedPricePerKgRwf:     price,
		EstimatedRevenueRwf:        revenue,
		EstimatedHarvestDate:       harvest.Format(dateLayout),
	}, nil
}

// resolveYield asks the recommendation ranking for the district's top crop
// and uses its yield when it is the requested crop; otherwise the per-crop
// default table. Zero after both means there is nothing to estimate from.
func (s *estimateSvc) resolveYield(cropName, district string) (float64, error) {
	var yield float64
	recs, err := s.rec.Recommend(district, 1, 1, "")
	if err == nil {
		for _, r := range recs {
			if strings.EqualFold(r.CropName, cropName) {
				yield = r.EstimatedYieldKgPerHa
			}
		}
	}
	if yield == 0 {
		yield = refdata.DefaultYieldKgHa(cropName)
	}
	if yield == 0 {
		return 0, &service.EstimationError{Crop: cropName, District: district, Quantity: "yield"}
	}
	return yield, nil
}

// resolvePrice derives price per kg from the district's top crop by
// consumption value (value / quantity) when it matches the requested crop,
// falling back to the per-crop default price table.
func (s *estimateSvc) resolvePrice(cropName, district string) (float64, error) {
	var price float64
	insights, err := s.dem.DemandInsights(district, demandsvc.LocationDistrict, 1, demandsvc.SortByValue)
	if err == nil {
		for _, in := range insights {
			if strings.EqualFold(in.CropName, cropName) && in.TotalQuantityKg != 0 {
				price = in.TotalValueRwf / in.TotalQuantityKg
			}
		}
	}
	if price == 0 {
		price = refdata.DefaultPriceRwfKg(cropName)
	}
	if price == 0 {
		return 0, &service.EstimationError{Crop: cropName, District: district, Quantity: "price"}
	}
	return price, nil
}
