package controller

import "github.com/labstack/echo/v4"

type RecommendController interface {
	Recommend(c echo.Context) error
}
