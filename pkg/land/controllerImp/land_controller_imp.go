package controllerImp

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/rindang-net/digifarm/entities"
	"github.com/rindang-net/digifarm/pkg/land/controller"
	"github.com/rindang-net/digifarm/pkg/land/service"
	"github.com/rindang-net/digifarm/pkg/storage"
)

type LandCtrl struct {
	svc    service.LandService
	photos storage.Store
}

func New(svc service.LandService, photos storage.Store) controller.LandController {
	return &LandCtrl{svc: svc, photos: photos}
}

func (h *LandCtrl) Create(c echo.Context) error {
	var in service.LandInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	l, err := h.svc.Create(in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusCreated, l)
}

func (h *LandCtrl) List(c echo.Context) error {
	var (
		lands []entities.Land
		err   error
	)
	if c.QueryParam("status") == "active" {
		lands, err = h.svc.ListActive()
	} else {
		lands, err = h.svc.List()
	}
	if err != nil {
		return fail(c, err)
	}
	if tag := c.QueryParam("commodity"); tag != "" {
		filtered := make([]entities.Land, 0, len(lands))
		for i := range lands {
			if lands[i].HasCommodity(tag) {
				filtered = append(filtered, lands[i])
			}
		}
		lands = filtered
	}
	return c.JSON(http.StatusOK, lands)
}

func (h *LandCtrl) Get(c echo.Context) error {
	l, err := h.svc.Get(c.Param("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, l)
}

func (h *LandCtrl) Update(c echo.Context) error {
	var in service.LandInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	l, err := h.svc.Update(c.Param("id"), in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, l)
}

func (h *LandCtrl) Delete(c echo.Context) error {
	if err := h.svc.Delete(c.Param("id")); err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (h *LandCtrl) UploadPhoto(c echo.Context) error {
	fh, err := c.FormFile("photo")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "photo file is required"})
	}
	src, err := fh.Open()
	if err != nil {
		return fail(c, err)
	}
	defer src.Close()

	url, err := h.photos.Save(fh.Filename, src)
	if err != nil {
		return fail(c, err)
	}
	l, err := h.svc.AttachPhoto(c.Param("id"), url)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, l)
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
