package controllerImp

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"hinga/pkg/recommend/service"
)

type RecommendCtrl struct{ svc service.RecommendationService }

func New(svc service.RecommendationService) *RecommendCtrl { return &RecommendCtrl{svc: svc} }

// Recommend handles GET /recommendations?district=&farm_size_ha=&top_n=&season=
func (h *RecommendCtrl) Recommend(c echo.Context) error {
	district := strings.TrimSpace(c.QueryParam("district"))
	if district == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "district is required"})
	}

	farmSize, err := strconv.ParseFloat(c.QueryParam("farm_size_ha"), 64)
	if err != nil || farmSize <= 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "farm_size_ha must be a positive number"})
	}

	topN := 3
	if v := c.QueryParam("top_n"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > 10 {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "top_n must be between 1 and 10"})
		}
		topN = n
	}

	recs, err := h.svc.Recommend(district, farmSize, topN, strings.TrimSpace(c.QueryParam("season")))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, recs)
}
