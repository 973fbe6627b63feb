package controllerImp

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"hinga/entities"
	"hinga/pkg/cropplan/service"
	estsvc "hinga/pkg/estimate/service"
)

const dateLayout = "2006-01-02"

type CropPlanCtrl struct {
	svc      service.CropPlanService
	validate *validator.Validate
}

func New(svc service.CropPlanService) *CropPlanCtrl {
	return &CropPlanCtrl{svc: svc, validate: validator.New()}
}

func actor(c echo.Context) service.Identity {
	uid, _ := c.Get("uid").(uint)
	role, _ := c.Get("role").(string)
	return service.Identity{UserID: uid, Role: role}
}

func planID(c echo.Context) (uint, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return 0, errors.New("invalid plan id")
	}
	return uint(id), nil
}

type createReq struct {
	CropName     string  `json:"crop_name" validate:"required"`
	DistrictName string  `json:"district_name" validate:"required"`
	AreaHa       float64 `json:"area_ha" validate:"required,gt=0"`
	PlantingDate string  `json:"planting_date" validate:"required"`
	Status       string  `json:"status"`
}

func (h *CropPlanCtrl) Create(c echo.Context) error {
	var req createReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	pd, err := time.Parse(dateLayout, req.PlantingDate)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "planting_date must be a valid YYYY-MM-DD date"})
	}

	p, err := h.svc.Create(actor(c), service.CreateInput{
		CropName:     req.CropName,
		DistrictName: req.DistrictName,
		AreaHa:       req.AreaHa,
		PlantingDate: pd,
		Status:       entities.PlanStatus(req.Status),
	})
	if err != nil {
		return writePlanError(c, err)
	}
	return c.JSON(http.StatusCreated, p)
}

func (h *CropPlanCtrl) Get(c echo.Context) error {
	id, err := planID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	p, err := h.svc.Get(actor(c), id)
	if err != nil {
		return writePlanError(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

func (h *CropPlanCtrl) List(c echo.Context) error {
	ps, err := h.svc.List(actor(c))
	if err != nil {
		return writePlanError(c, err)
	}
	return c.JSON(http.StatusOK, ps)
}

type patchReq struct {
	CropName     *string  `json:"crop_name"`
	DistrictName *string  `json:"district_name"`
	AreaHa       *float64 `json:"area_ha"`
	PlantingDate *string  `json:"planting_date"`
	Status       *string  `json:"status"`
}

func (h *CropPlanCtrl) Patch(c echo.Context) error {
	id, err := planID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	var req patchReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}

	patch := service.Patch{
		CropName:     req.CropName,
		DistrictName: req.DistrictName,
		AreaHa:       req.AreaHa,
	}
	if req.PlantingDate != nil {
		pd, err := time.Parse(dateLayout, *req.PlantingDate)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "planting_date must be a valid YYYY-MM-DD date"})
		}
		patch.PlantingDate = &pd
	}
	if req.Status != nil {
		st := entities.PlanStatus(*req.Status)
		patch.Status = &st
	}

	p, err := h.svc.Update(actor(c), id, patch)
	if err != nil {
		return writePlanError(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

type harvestReq struct {
	HarvestDate      string   `json:"harvest_date"`
	ActualYieldKgHa  float64  `json:"actual_yield_kg_ha" validate:"required,gt=0"`
	ActualPriceRwfKg float64  `json:"actual_price_rwf_kg" validate:"gte=0"`
	Notes            *string  `json:"notes"`
}

func (h *CropPlanCtrl) RecordHarvest(c echo.Context) error {
	id, err := planID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	var req harvestReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	in := service.HarvestInput{
		ActualYieldKgHa:  req.ActualYieldKgHa,
		ActualPriceRwfKg: req.ActualPriceRwfKg,
		Notes:            req.Notes,
	}
	if req.HarvestDate != "" {
		hd, err := time.Parse(dateLayout, req.HarvestDate)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "harvest_date must be a valid YYYY-MM-DD date"})
		}
		in.HarvestDate = hd
	}

	p, err := h.svc.RecordHarvest(actor(c), id, in)
	if err != nil {
		return writePlanError(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

func (h *CropPlanCtrl) Cancel(c echo.Context) error {
	id, err := planID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	p, err := h.svc.Cancel(actor(c), id)
	if err != nil {
		return writePlanError(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

func (h *CropPlanCtrl) Complete(c echo.Context) error {
	id, err := planID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	p, err := h.svc.Complete(actor(c), id)
	if err != nil {
		return writePlanError(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

func (h *CropPlanCtrl) Delete(c echo.Context) error {
	id, err := planID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	if err := h.svc.Delete(actor(c), id); err != nil {
		return writePlanError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func writePlanError(c echo.Context, err error) error {
	var vErr *service.ValidationError
	var tErr *service.InvalidTransitionError
	var eErr *estsvc.EstimationError
	switch {
	case errors.As(err, &vErr):
		return c.JSON(http.StatusBadRequest, map[string]string{"error": vErr.Error()})
	case errors.Is(err, service.ErrNotFound):
		return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
	case errors.Is(err, service.ErrForbidden):
		return c.JSON(http.StatusForbidden, map[string]string{"error": err.Error()})
	case errors.Is(err, service.ErrAlreadyHarvested):
		return c.JSON(http.StatusConflict, map[string]string{"error": err.Error()})
	case errors.As(err, &tErr):
		return c.JSON(http.StatusConflict, map[string]string{"error": tErr.Error()})
	case errors.As(err, &eErr):
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": eErr.Error()})
	}
	return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
}
