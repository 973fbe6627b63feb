package main

import (
	"log"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"hinga/config"
	"hinga/database"
	"hinga/router"

	"hinga/pkg/dataset"

	// Auth
	authCtrlImp "hinga/pkg/auth/controllerImp"
	userRepoImp "hinga/pkg/auth/repositoryImp"

	// Insight services
	connSvcImp "hinga/pkg/connection/serviceImp"
	demandSvcImp "hinga/pkg/demand/serviceImp"
	estSvcImp "hinga/pkg/estimate/serviceImp"
	recSvcImp "hinga/pkg/recommend/serviceImp"

	connCtrlImp "hinga/pkg/connection/controllerImp"
	demandCtrlImp "hinga/pkg/demand/controllerImp"
	estCtrlImp "hinga/pkg/estimate/controllerImp"
	recCtrlImp "hinga/pkg/recommend/controllerImp"

	// Crop plans
	planCtrlImp "hinga/pkg/cropplan/controllerImp"
	planRepoImp "hinga/pkg/cropplan/repositoryImp"
	planSvcImp "hinga/pkg/cropplan/serviceImp"

	// Advisory
	advCtrlImp "hinga/pkg/advisory/controllerImp"
	advRepoImp "hinga/pkg/advisory/repositoryImp"
	advSvcImp "hinga/pkg/advisory/serviceImp"

	// Health
	healthCtrlImp "hinga/pkg/health/controllerImp"
)

func main() {
	// 1) Config
	cfg := config.Load()

	// 2) DB (sqlite) + automigrate
	db := database.OpenSQLite(cfg.DBPath)

	// 3) Datasets. Every query depends on all three, so a load failure
	// is fatal; there is no partial-service mode.
	store, err := dataset.LoadFromFiles(cfg.ProductionCSV, cfg.ConsumptionCSV, cfg.EstablishmentXLSX)
	if err != nil {
		log.Fatalf("load datasets: %v", err)
	}
	log.Printf("[dataset] loaded %d production, %d consumption, %d establishment rows",
		len(store.Production), len(store.Consumption), len(store.Establishments))

	// 4) Echo
	e := echo.New()
	e.Use(echoMiddleware.Recover())

	// 5) Insight services over the read-only store
	recSvc := recSvcImp.New(store)
	demandSvc := demandSvcImp.New(store)
	connSvc := connSvcImp.New(store)
	estSvc := estSvcImp.New(recSvc, demandSvc)

	// 6) Repos/Services/Controllers
	users := userRepoImp.New(db)
	authCtrl := authCtrlImp.New(users, cfg.JWTSecret, cfg.JWTExpiryHours)

	planRepo := planRepoImp.New(db)
	planSvc := planSvcImp.New(planRepo, estSvc)
	planCtrl := planCtrlImp.New(planSvc)

	advRepo := advRepoImp.New(db)
	advSvc := advSvcImp.New(advRepo)
	advCtrl := advCtrlImp.New(advSvc, cfg.AdvisoryDomains)

	recCtrl := recCtrlImp.New(recSvc)
	demandCtrl := demandCtrlImp.New(demandSvc)
	connCtrl := connCtrlImp.New(connSvc)
	estCtrl := estCtrlImp.New(estSvc)

	hCtrl := healthCtrlImp.NewHealthCtrl(db, store)

	// 7) Router
	r := router.New(
		e,
		cfg.JWTSecret,
		authCtrl,
		recCtrl,
		demandCtrl,
		connCtrl,
		estCtrl,
		planCtrl,
		advCtrl,
		hCtrl,
	)

	// 8) Start
	log.Printf("listening on :%s", cfg.Port)
	if err := r.Start(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
