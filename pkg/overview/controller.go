package overview

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type Controller struct{ svc *Service }

func NewController(svc *Service) *Controller { return &Controller{svc: svc} }

func (h *Controller) Stats(c echo.Context) error {
	out, err := h.svc.Stats()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *Controller) Calendar(c echo.Context) error {
	out, err := h.svc.Calendar()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *Controller) Activities(c echo.Context) error {
	out, err := h.svc.Ongoing()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *Controller) Productivity(c echo.Context) error {
	out, err := h.svc.Productivity()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func fail(c echo.Context, err error) error {
	return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
}
