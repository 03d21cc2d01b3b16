package controllerImp

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/rindang-net/digifarm/entities"
	repo "github.com/rindang-net/digifarm/pkg/activity/repository"
)

type ActivityCtrl struct{ repo repo.ActivityRepository }

func New(r repo.ActivityRepository) *ActivityCtrl { return &ActivityCtrl{r} }

type activityReq struct {
	LandID        *string `json:"land_id"`
	ProductionID  *string `json:"production_id"`
	ActivityType  string  `json:"activity_type"`
	Description   string  `json:"description"`
	ScheduledDate *string `json:"scheduled_date"`
	Status        string  `json:"status"`
}

func (h *ActivityCtrl) Create(c echo.Context) error {
	var req activityReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if req.ActivityType == "" || req.Description == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "activity_type and description are required"})
	}
	status := req.Status
	if status == "" {
		status = "pending"
	}
	if !validStatus(status) {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "status must be pending, in_progress or completed"})
	}
	a := &entities.Activity{
		LandID:        req.LandID,
		ProductionID:  req.ProductionID,
		ActivityType:  req.ActivityType,
		Description:   req.Description,
		ScheduledDate: req.ScheduledDate,
		Status:        status,
	}
	if status == "completed" {
		now := time.Now()
		a.CompletedAt = &now
	}
	if err := h.repo.Create(a); err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusCreated, a)
}

func (h *ActivityCtrl) List(c echo.Context) error {
	out, err := h.repo.List(repo.Filter{
		LandID: c.QueryParam("land_id"),
		Status: c.QueryParam("status"),
	})
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ActivityCtrl) Update(c echo.Context) error {
	var req activityReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	a, err := h.repo.FindByID(c.Param("id"))
	if err != nil {
		return fail(c, err)
	}
	if req.ActivityType != "" {
		a.ActivityType = req.ActivityType
	}
	if req.Description != "" {
		a.Description = req.Description
	}
	a.LandID = req.LandID
	a.ProductionID = req.ProductionID
	a.ScheduledDate = req.ScheduledDate
	if req.Status != "" {
		if !validStatus(req.Status) {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "status must be pending, in_progress or completed"})
		}
		setStatus(a, req.Status)
	}
	if err := h.repo.Update(a); err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, a)
}

// Patch flips just the status; completing stamps completed_at.
func (h *ActivityCtrl) Patch(c echo.Context) error {
	var body struct {
		Status string `json:"status"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if body.Status == "" {
		body.Status = "completed"
	}
	if !validStatus(body.Status) {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "status must be pending, in_progress or completed"})
	}
	a, err := h.repo.FindByID(c.Param("id"))
	if err != nil {
		return fail(c, err)
	}
	setStatus(a, body.Status)
	if err := h.repo.Update(a); err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, a)
}

func (h *ActivityCtrl) Delete(c echo.Context) error {
	if err := h.repo.Delete(c.Param("id")); err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func setStatus(a *entities.Activity, status string) {
	a.Status = status
	if status == "completed" {
		if a.CompletedAt == nil {
			now := time.Now()
			a.CompletedAt = &now
		}
	} else {
		a.CompletedAt = nil
	}
}

func validStatus(s string) bool {
	return s == "pending" || s == "in_progress" || s == "completed"
}

func fail(c echo.Context, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
	}
	return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
}
