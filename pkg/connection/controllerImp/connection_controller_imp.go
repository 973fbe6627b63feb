package controllerImp

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"hinga/pkg/connection/service"
)

// Default thresholds for the buyers/processors query.
const (
	defaultMinWorkers  = 5
	defaultMinTurnover = 1_000_000
)

type ConnectionCtrl struct{ svc service.ConnectionService }

func New(svc service.ConnectionService) *ConnectionCtrl { return &ConnectionCtrl{svc: svc} }

func (h *ConnectionCtrl) location(c echo.Context) (string, string, error) {
	location := strings.TrimSpace(c.QueryParam("location"))
	if location == "" {
		return "", "", errors.New("location is required")
	}
	locationType := c.QueryParam("location_type")
	if locationType == "" {
		locationType = "District"
	}
	return location, locationType, nil
}

func (h *ConnectionCtrl) Cooperatives(c echo.Context) error {
	location, locationType, err := h.location(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	out, err := h.svc.FindCooperatives(location, locationType)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ConnectionCtrl) BuyersAndProcessors(c echo.Context) error {
	location, locationType, err := h.location(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	minWorkers := defaultMinWorkers
	if v := c.QueryParam("min_workers"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "min_workers must be a non-negative integer"})
		}
		minWorkers = n
	}
	minTurnover := float64(defaultMinTurnover)
	if v := c.QueryParam("min_turnover"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil || f < 0 {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "min_turnover must be a non-negative number"})
		}
		minTurnover = f
	}

	buyers, processors, err := h.svc.FindBuyersAndProcessors(location, locationType, minWorkers, minTurnover)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"buyers": buyers, "processors": processors})
}

func (h *ConnectionCtrl) Exporters(c echo.Context) error {
	location, locationType, err := h.location(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	out, err := h.svc.FindExporters(location, locationType)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func writeServiceError(c echo.Context, err error) error {
	if errors.Is(err, service.ErrBadLocationType) {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
}
