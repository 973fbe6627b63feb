package controller

import "github.com/labstack/echo/v4"

type EstimateController interface {
	Estimate(c echo.Context) error
}
