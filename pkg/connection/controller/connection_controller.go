package controller

import "github.com/labstack/echo/v4"

type ConnectionController interface {
	Cooperatives(c echo.Context) error
	BuyersAndProcessors(c echo.Context) error
	Exporters(c echo.Context) error
}
