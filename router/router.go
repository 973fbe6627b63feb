package router

import (
	"github.com/labstack/echo/v4"

	"hinga/pkg/middleware"
)

// New wires the route table. Controllers are passed as the minimal
// interfaces each group needs.
func New(
	e *echo.Echo,
	jwtSecret string,
	authCtrl interface {
		Register(echo.Context) error
		Login(echo.Context) error
		WhoAmI(echo.Context) error
	},
	recCtrl interface{ Recommend(echo.Context) error },
	demandCtrl interface{ Insights(echo.Context) error },
	connCtrl interface {
		Cooperatives(echo.Context) error
		BuyersAndProcessors(echo.Context) error
		Exporters(echo.Context) error
	},
	estCtrl interface{ Estimate(echo.Context) error },
	planCtrl interface {
		Create(echo.Context) error
		Get(echo.Context) error
		List(echo.Context) error
		Patch(echo.Context) error
		RecordHarvest(echo.Context) error
		Cancel(echo.Context) error
		Complete(echo.Context) error
		Delete(echo.Context) error
	},
	advCtrl interface {
		IngestText(echo.Context) error
		IngestURL(echo.Context) error
		Search(echo.Context) error
	},
	healthCtrl interface{ Health(echo.Context) error },
) *echo.Echo {
	e.GET("/health", healthCtrl.Health)

	e.POST("/auth/register", authCtrl.Register)
	e.POST("/auth/login", authCtrl.Login)

	api := e.Group("", middleware.JWT(jwtSecret))
	api.GET("/whoami", authCtrl.WhoAmI)

	api.GET("/recommendations", recCtrl.Recommend)
	api.GET("/demand", demandCtrl.Insights)
	api.GET("/connections/cooperatives", connCtrl.Cooperatives)
	api.GET("/connections/buyers-processors", connCtrl.BuyersAndProcessors)
	api.GET("/connections/exporters", connCtrl.Exporters)
	api.GET("/estimates", estCtrl.Estimate)

	api.POST("/plans", planCtrl.Create)
	api.GET("/plans", planCtrl.List)
	api.GET("/plans/:id", planCtrl.Get)
	api.PATCH("/plans/:id", planCtrl.Patch)
	api.POST("/plans/:id/harvest", planCtrl.RecordHarvest)
	api.POST("/plans/:id/cancel", planCtrl.Cancel)
	api.POST("/plans/:id/complete", planCtrl.Complete)
	api.DELETE("/plans/:id", planCtrl.Delete)

	api.POST("/advisory/ingest", advCtrl.IngestText, middleware.AdminOnly())
	api.POST("/advisory/ingest/url", advCtrl.IngestURL, middleware.AdminOnly())
	api.GET("/advisory/search", advCtrl.Search)

	return e
}
