package main

import (
	"log"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"github.com/rindang-net/digifarm/config"
	"github.com/rindang-net/digifarm/database"
	"github.com/rindang-net/digifarm/router"

	// Auth + Health
	authCtrlImp "github.com/rindang-net/digifarm/pkg/auth/controllerImp"
	healthCtrlImp "github.com/rindang-net/digifarm/pkg/health/controllerImp"

	// Land
	landCtrlImp "github.com/rindang-net/digifarm/pkg/land/controllerImp"
	landRepoImp "github.com/rindang-net/digifarm/pkg/land/repositoryImp"
	landSvcImp "github.com/rindang-net/digifarm/pkg/land/serviceImp"

	// Production
	prodCtrlImp "github.com/rindang-net/digifarm/pkg/production/controllerImp"
	prodRepoImp "github.com/rindang-net/digifarm/pkg/production/repositoryImp"
	prodSvcImp "github.com/rindang-net/digifarm/pkg/production/serviceImp"

	// Activity
	actCtrlImp "github.com/rindang-net/digifarm/pkg/activity/controllerImp"
	actRepoImp "github.com/rindang-net/digifarm/pkg/activity/repositoryImp"

	// Overview + photo storage
	"github.com/rindang-net/digifarm/pkg/overview"
	"github.com/rindang-net/digifarm/pkg/storage"
)

func main() {
	// 1) Config
	cfg := config.Load()

	// 2) DB (sqlite) + automigrate
	db := database.OpenSQLite(cfg.DBPath)

	// 3) Photo blob store, served below via the static route
	photos, err := storage.NewLocal(cfg.UploadDir, cfg.PublicBaseURL)
	if err != nil {
		log.Fatalf("photo store: %v", err)
	}

	// 4) Repos
	lRepo := landRepoImp.New(db)
	pRepo := prodRepoImp.New(db)
	aRepo := actRepoImp.New(db)

	// 5) Services
	lSvc := landSvcImp.New(lRepo)
	pSvc := prodSvcImp.New(pRepo, lRepo)
	ovSvc := overview.NewService(lRepo, pRepo, aRepo)

	// 6) Controllers
	lCtrl := landCtrlImp.New(lSvc, photos)
	pCtrl := prodCtrlImp.New(pSvc)
	aCtrl := actCtrlImp.New(aRepo)
	ovCtrl := overview.NewController(ovSvc)
	authCtrl := authCtrlImp.NewAuthController()
	hCtrl := healthCtrlImp.NewHealthCtrl(db)

	// 7) Echo
	e := echo.New()
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.Logger())
	e.Static("/static", "static")

	// 8) Router
	r := router.New(e, cfg.HeaderAuth, lCtrl, pCtrl, aCtrl, ovCtrl, authCtrl, hCtrl)

	// 9) Start
	log.Printf("listening on :%s", cfg.Port)
	if err := r.Start(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
