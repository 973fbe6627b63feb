package controller

import "github.com/labstack/echo/v4"

type DemandController interface {
	Insights(c echo.Context) error
}
