package service

// CropRecommendation is one ranked crop with its share of the farmer's land.
type CropRecommendation struct {
	CropName                   string  `json:"crop_name"`
	RecommendedAreaHa          float64 `json:"recommended_area_ha"`
	EstimatedYieldKgPerHa      float64 `json:"estimated_yield_kg_per_ha"`
	EstimatedTotalProductionKg float64 `json:"estimated_total_production_kg"`
}

type RecommendationService interface {
	// Recommend ranks crops grown in the district by historical mean yield
	// and splits farmSizeHa across the top N proportionally to each crop's
	// historical mean planted area. season == "" means all seasons.
	Recommend(district string, farmSizeHa float64, topN int, season string) ([]CropRecommendation, error)
}
