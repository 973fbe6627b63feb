package controllerImp

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"hinga/pkg/demand/service"
)

type DemandCtrl struct{ svc service.DemandService }

func New(svc service.DemandService) *DemandCtrl { return &DemandCtrl{svc: svc} }

// Insights handles GET /demand?location=&location_type=&top_n=&sort_by=
func (h *DemandCtrl) Insights(c echo.Context) error {
	location := strings.TrimSpace(c.QueryParam("location"))
	if location == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "location is required"})
	}

	locationType := c.QueryParam("location_type")
	if locationType == "" {
		locationType = service.LocationDistrict
	}

	topN := 5
	if v := c.QueryParam("top_n"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > 20 {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "top_n must be between 1 and 20"})
		}
		topN = n
	}

	sortBy := c.QueryParam("sort_by")

	insights, err := h.svc.DemandInsights(location, locationType, topN, sortBy)
	if err != nil {
		if errors.Is(err, service.ErrBadLocationType) || errors.Is(err, service.ErrBadSortBy) {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, insights)
}
