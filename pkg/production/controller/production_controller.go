package controller

import "github.com/labstack/echo/v4"

type ProductionController interface {
	Create(c echo.Context) error
	List(c echo.Context) error
	Update(c echo.Context) error
	Delete(c echo.Context) error
	BulkDelete(c echo.Context) error
	RecordHarvest(c echo.Context) error
	ImportPlanting(c echo.Context) error
	ImportHarvest(c echo.Context) error
	Export(c echo.Context) error
	Commodities(c echo.Context) error
	Periods(c echo.Context) error
	Share(c echo.Context) error
}
