package controllerImp

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/rindang-net/digifarm/pkg/production/controller"
	"github.com/rindang-net/digifarm/pkg/production/service"
)

type ProductionCtrl struct{ svc service.ProductionService }

func New(svc service.ProductionService) controller.ProductionController {
	return &ProductionCtrl{svc: svc}
}

func (h *ProductionCtrl) Create(c echo.Context) error {
	var in service.ProductionInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	p, err := h.svc.Create(in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusCreated, p)
}

func (h *ProductionCtrl) List(c echo.Context) error {
	out, err := h.svc.List()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ProductionCtrl) Update(c echo.Context) error {
	var in service.ProductionInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	p, err := h.svc.Update(c.Param("id"), in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

func (h *ProductionCtrl) Delete(c echo.Context) error {
	if err := h.svc.Delete(c.Param("id")); err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (h *ProductionCtrl) BulkDelete(c echo.Context) error {
	var body struct {
		IDs []string `json:"ids"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if len(body.IDs) == 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "ids is required"})
	}
	if err := h.svc.DeleteBatch(body.IDs); err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"deleted": len(body.IDs)})
}

func (h *ProductionCtrl) RecordHarvest(c echo.Context) error {
	var in service.HarvestInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	p, err := h.svc.RecordHarvest(c.Param("id"), in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

func (h *ProductionCtrl) ImportPlanting(c echo.Context) error {
	return h.importSheet(c, h.svc.ImportPlanting)
}

func (h *ProductionCtrl) ImportHarvest(c echo.Context) error {
	return h.importSheet(c, h.svc.ImportHarvest)
}

func (h *ProductionCtrl) importSheet(c echo.Context, run func(src io.Reader, filename string) (*service.ImportSummary, error)) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "file is required"})
	}
	src, err := fh.Open()
	if err != nil {
		return fail(c, err)
	}
	defer src.Close()

	sum, err := run(src, fh.Filename)
	if err != nil {
		// a partially applied harvest batch still reports what it did
		if sum != nil {
			return c.JSON(http.StatusInternalServerError, map[string]any{
				"error": err.Error(), "summary": sum,
			})
		}
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, sum)
}

func (h *ProductionCtrl) Export(c echo.Context) error {
	name := fmt.Sprintf("productions_%s", time.Now().Format("2006-01-02"))
	switch c.QueryParam("format") {
	case "xlsx":
		c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+name+`.xlsx"`)
		c.Response().Header().Set(echo.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Response().WriteHeader(http.StatusOK)
		return h.svc.ExportXLSX(c.Response())
	case "", "csv":
		c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+name+`.csv"`)
		c.Response().Header().Set(echo.HeaderContentType, "text/csv")
		c.Response().WriteHeader(http.StatusOK)
		return h.svc.ExportCSV(c.Response())
	default:
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "format must be csv or xlsx"})
	}
}

func (h *ProductionCtrl) Commodities(c echo.Context) error {
	out, err := h.svc.CommodityStats()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ProductionCtrl) Periods(c echo.Context) error {
	out, err := h.svc.YieldByPeriod()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ProductionCtrl) Share(c echo.Context) error {
	out, err := h.svc.ShareByCommodity()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func fail(c echo.Context, err error) error {
	switch {
	case errors.Is(err, service.ErrInvalid):
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	case errors.Is(err, gorm.ErrRecordNotFound):
		return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
	default:
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
}
