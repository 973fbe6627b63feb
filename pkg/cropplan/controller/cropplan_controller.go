package controller

import "github.com/labstack/echo/v4"

type CropPlanController interface {
	Create(c echo.Context) error
	Get(c echo.Context) error
	List(c echo.Context) error
	Patch(c echo.Context) error
	RecordHarvest(c echo.Context) error
	Cancel(c echo.Context) error
	Complete(c echo.Context) error
	Delete(c echo.Context) error
}
