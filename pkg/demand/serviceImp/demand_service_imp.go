package serviceImp

import (
	"math"
	"sort"
	"strings"

	"hinga/pkg/dataset"
	"hinga/pkg/demand/service"
)

type demandSvc struct{ store *dataset.Store }

func New(store *dataset.Store) service.DemandService { return &demandSvc{store: store} }

func (s *demandSvc) DemandInsights(location, locationType string, topN int, sortBy string) ([]service.DemandInsight, error) {
	if s.store == nil {
		return nil, dataset.ErrNotLoaded
	}
	if topN <= 0 {
		topN = 5
	}
	if sortBy == "" {
		sortBy = service.SortByQuantity
	}
	if sortBy != service.SortByQuantity && sortBy != service.SortByValue {
		return nil, service.ErrBadSortBy
	}

	var byProvince bool
	switch {
	case strings.EqualFold(locationType, service.LocationDistrict), locationType == "":
	case strings.EqualFold(locationType, service.LocationProvince):
		byProvince = true
	default:
		return nil, service.ErrBadLocationType
	}

	// Provincial records are not pre-aggregated; sum quantity and value per
	// crop across the province's districts on every call.
	type agg struct {
		name string
		qty  float64
		val  float64
	}
	byCrop := map[string]*agg{}
	for _, r := range s.store.Consumption {
		if byProvince {
			if !strings.EqualFold(r.Province, location) {
				continue
			}
		} else if !strings.EqualFold(r.District, location) {
			continue
		}
		key := strings.ToLower(r.Crop)
		a, ok := byCrop[key]
		if !ok {
			a = &agg{name: r.Crop}
			byCrop[key] = a
		}
		a.qty += r.QuantityKg
		a.val += r.ValueRwf
	}
	if len(byCrop) == 0 {
		return []service.DemandInsight{}, nil
	}

	crops := make([]*agg, 0, len(byCrop))
	for _, a := range byCrop {
		crops = append(crops, a)
	}
	sort.Slice(crops, func(i, j int) bool {
		if sortBy == service.SortByValue {
			if crops[i].val != crops[j].val {
				return crops[i].val > crops[j].val
			}
		} else if crops[i].qty != crops[j].qty {
			return crops[i].qty > crops[j].qty
		}
		return crops[i].name < crops[j].name
	})
	if topN < len(crops) {
		crops = crops[:topN]
	}

	out := make([]service.DemandInsight, 0, len(crops))
	for _, a := range crops {
		out = append(out, service.DemandInsight{
			CropName:        a.name,
			TotalQuantityKg: math.Round(a.qty),
			TotalValueRwf:   math.Round(a.val),
		})
	}
	return out, nil
}
