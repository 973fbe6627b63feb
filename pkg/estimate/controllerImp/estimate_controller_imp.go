package controllerImp

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"hinga/pkg/estimate/service"
	"hinga/pkg/refdata"
)

const dateLayout = "2006-01-02"

type EstimateCtrl struct{ svc service.EstimationService }

func New(svc service.EstimationService) *EstimateCtrl { return &EstimateCtrl{svc: svc} }

// Estimate handles GET /estimates?crop=&area_ha=&planting_date=&district=
func (h *EstimateCtrl) Estimate(c echo.Context) error {
	crop := strings.TrimSpace(c.QueryParam("crop"))
	if crop == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "crop is required"})
	}
	if !refdata.IsKnownCrop(crop) {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "unknown crop, expected one of: " + strings.Join(refdata.CropNames(), ", ")})
	}
	district := strings.TrimSpace(c.QueryParam("district"))
	if district == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "district is required"})
	}
	area, err := strconv.ParseFloat(c.QueryParam("area_ha"), 64)
	if err != nil || area <= 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "area_ha must be a positive number"})
	}
	plantingDate, err := time.Parse(dateLayout, c.QueryParam("planting_date"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "planting_date must be a valid YYYY-MM-DD date"})
	}

	est, err := h.svc.Estimate(crop, area, plantingDate, district)
	if err != nil {
		var estErr *service.EstimationError
		if errors.As(err, &estErr) {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": estErr.Error()})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, est)
}
