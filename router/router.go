package router

import (
	"github.com/labstack/echo/v4"

	activityCtrl "github.com/rindang-net/digifarm/pkg/activity/controllerImp"
	landController "github.com/rindang-net/digifarm/pkg/land/controller"
	"github.com/rindang-net/digifarm/pkg/middleware"
	"github.com/rindang-net/digifarm/pkg/overview"
	productionController "github.com/rindang-net/digifarm/pkg/production/controller"
)

func New(
	e *echo.Echo,
	headerAuth bool,
	landCtrl landController.LandController,
	prodCtrl productionController.ProductionController,
	actCtrl *activityCtrl.ActivityCtrl,
	ovCtrl *overview.Controller,
	authCtrl interface {
		DevLogin(echo.Context) error
		WhoAmI(echo.Context) error
	},
	healthCtrl interface{ Health(echo.Context) error },
) *echo.Echo {
	e.Use(middleware.DevLogin())
	e.Use(middleware.HeaderAuth(headerAuth))

	e.GET("/health", healthCtrl.Health)
	e.GET("/devlogin", authCtrl.DevLogin)
	e.GET("/whoami", authCtrl.WhoAmI)

	e.POST("/lands", landCtrl.Create)
	e.GET("/lands", landCtrl.List)
	e.GET("/lands/:id", landCtrl.Get)
	e.PUT("/lands/:id", landCtrl.Update)
	e.DELETE("/lands/:id", landCtrl.Delete)
	e.POST("/lands/:id/photos", landCtrl.UploadPhoto)

	p := e.Group("/productions")
	p.POST("", prodCtrl.Create)
	p.GET("", prodCtrl.List)
	p.PUT("/:id", prodCtrl.Update)
	p.DELETE("/:id", prodCtrl.Delete)
	p.POST("/bulk-delete", prodCtrl.BulkDelete)
	p.POST("/:id/harvest", prodCtrl.RecordHarvest)
	p.POST("/import/planting", prodCtrl.ImportPlanting)
	p.POST("/import/harvest", prodCtrl.ImportHarvest)
	p.GET("/export", prodCtrl.Export)
	p.GET("/analytics/commodities", prodCtrl.Commodities)
	p.GET("/analytics/periods", prodCtrl.Periods)
	p.GET("/analytics/share", prodCtrl.Share)

	e.POST("/activities", actCtrl.Create)
	e.GET("/activities", actCtrl.List)
	e.PUT("/activities/:id", actCtrl.Update)
	e.PATCH("/activities/:id", actCtrl.Patch)
	e.DELETE("/activities/:id", actCtrl.Delete)

	o := e.Group("/overview")
	o.GET("/stats", ovCtrl.Stats)
	o.GET("/calendar", ovCtrl.Calendar)
	o.GET("/activities", ovCtrl.Activities)
	o.GET("/productivity", ovCtrl.Productivity)

	return e
}
