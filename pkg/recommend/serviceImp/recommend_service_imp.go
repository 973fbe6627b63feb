package serviceImp

import (
	"math"
	"sort"
	"strings"

	"hinga/pkg/dataset"
	"hinga/pkg/recommend/service"
)

type recommendSvc struct{ store *dataset.Store }

func New(store *dataset.Store) service.RecommendationService { return &recommendSvc{store: store} }

func round2(v float64) float64 { return math.Round(v*100) / 100 }

type cropAgg struct {
	name     string
	sumArea  float64
	sumYield float64
	n        int
}

func (s *recommendSvc) Recommend(district string, farmSizeHa float64, topN int, season string) ([]service.CropRecommendation, error) {
	if s.store == nil {
		return nil, dataset.ErrNotLoaded
	}
	if topN <= 0 {
		topN = 3
	}

	rows := make([]dataset.ProductionRecord, 0)
	for _, r := range s.store.Production {
		if strings.EqualFold(r.District, district) {
			rows = append(rows, r)
		}
	}
	if len(rows) == 0 {
		return []service.CropRecommendation{}, nil
	}

	// Seasonal data is sparse: an empty seasonal sub-filter falls back to
	// the full all-season district set instead of blocking the request.
	if season != "" {
		seasonal := make([]dataset.ProductionRecord, 0, len(rows))
		for _, r := range rows {
			if strings.EqualFold(r.Season, season) {
				seasonal = append(seasonal, r)
			}
		}
		if len(seasonal) > 0 {
			rows = seasonal
		}
	}

	byCrop := map[string]*cropAgg{}
	for _, r := range rows {
		key := strings.ToLower(r.Crop)
		a, ok := byCrop[key]
		if !ok {
			a = &cropAgg{name: r.Crop}
			byCrop[key] = a
		}
		a.sumArea += r.AvgAreaHa
		a.sumYield += r.AvgYieldKgHa
		a.n++
	}

	type ranked struct {
		name      string
		meanArea  float64
		meanYield float64
	}
	candidates := make([]ranked, 0, len(byCrop))
	for _, a := range byCrop {
		meanArea := a.sumArea / float64(a.n)
		meanYield := a.sumYield / float64(a.n)
		// noise filter: crops with near-zero footprint or no yield signal
		if meanArea <= 0.01 || meanYield <= 0 {
			continue
		}
		candidates = append(candidates, ranked{name: a.name, meanArea: meanArea, meanYield: meanYield})
	}
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].meanYield != candidates[j].meanYield {
			return candidates[i].meanYield > candidates[j].meanYield
		}
		return candidates[i].name < candidates[j].name
	})
	if topN < len(candidates) {
		candidates = candidates[:topN]
	}
	if len(candidates) == 0 {
		return []service.CropRecommendation{}, nil
	}

	var areaSum float64
	for _, c := range candidates {
		areaSum += c.meanArea
	}

	out := make([]service.CropRecommendation, 0, len(candidates))
	var allocated float64
	for i, c := range candidates {
		var alloc float64
		if areaSum > 0 {
			alloc = farmSizeHa * (c.meanArea / areaSum)
		} else {
			alloc = farmSizeHa / float64(len(candidates))
		}
		area := round2(alloc)
		// the last share absorbs the rounding drift so the allocations
		// sum back to the requested farm size
		if i == len(candidates)-1 {
			area = round2(farmSizeHa - allocated)
		}
		allocated += area
		out = append(out, service.CropRecommendation{
			CropName:                   c.name,
			RecommendedAreaHa:          area,
			EstimatedYieldKgPerHa:      round2(c.meanYield),
			EstimatedTotalProductionKg: round2(area * c.meanYield),
		})
	}
	return out, nil
}
