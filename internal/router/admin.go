package router

import (
	"net/http"
	"strings"

	"github.com/aidaily/ai-daily/internal/apperr"
	"github.com/aidaily/ai-daily/internal/domain"
	"github.com/aidaily/ai-daily/internal/storage"
	"github.com/labstack/echo/v4"
)

// AdminRouter serves the tracked-model CRUD and the push-config
// singleton.
type AdminRouter struct {
	e      *echo.Echo
	models *storage.ModelStore
	push   *storage.PushStore
}

func NewAdminRouter(e *echo.Echo, models *storage.ModelStore, push *storage.PushStore) *AdminRouter {
	return &AdminRouter{
		e:      e,
		models: models,
		push:   push,
	}
}

func (r *AdminRouter) Bind() {
	g := r.e.Group("/api/admin")
	g.GET("/models", r.listModelsHandler)
	g.POST("/models", r.createModelHandler)
	g.PUT("/models", r.updateModelHandler)
	g.DELETE("/models", r.deleteModelHandler)
	g.GET("/push-config", r.getPushConfigHandler)
	g.PUT("/push-config", r.updatePushConfigHandler)
}

func (r *AdminRouter) listModelsHandler(c echo.Context) error {
	models, err := r.models.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, models)
}

type createModelRequest struct {
	Name     string `json:"name"`
	Priority int    `json:"priority"`
}

func (r *AdminRouter) createModelHandler(c echo.Context) error {
	var req createModelRequest
	if err := c.Bind(&req); err != nil {
		return apperr.NewValidationWrap("invalid request body", err)
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return apperr.NewValidation("model name is required")
	}

	model, err := r.models.Create(c.Request().Context(), name, req.Priority)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, model)
}

type updateModelRequest struct {
	ID       string  `json:"id"`
	Name     *string `json:"name"`
	IsActive *bool   `json:"isActive"`
	Priority *int    `json:"priority"`
}

func (r *AdminRouter) updateModelHandler(c echo.Context) error {
	var req updateModelRequest
	if err := c.Bind(&req); err != nil {
		return apperr.NewValidationWrap("invalid request body", err)
	}
	if req.ID == "" {
		return apperr.NewValidation("model id is required")
	}

	model, err := r.models.Update(c.Request().Context(), req.ID, storage.ModelUpdate{
		Name:     req.Name,
		IsActive: req.IsActive,
		Priority: req.Priority,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, model)
}

func (r *AdminRouter) deleteModelHandler(c echo.Context) error {
	id := c.QueryParam("id")
	if id == "" {
		return apperr.NewValidation("model id is required")
	}

	if err := r.models.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "model deleted"})
}

func (r *AdminRouter) getPushConfigHandler(c echo.Context) error {
	cfg, err := r.push.Get(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, cfg)
}

type updatePushConfigRequest struct {
	PushTime  *string `json:"pushTime"`
	Timezone  *string `json:"timezone"`
	IsEnabled *bool   `json:"isEnabled"`
}

func (r *AdminRouter) updatePushConfigHandler(c echo.Context) error {
	var req updatePushConfigRequest
	if err := c.Bind(&req); err != nil {
		return apperr.NewValidationWrap("invalid request body", err)
	}

	// Reject before touching storage; a bad field must not partially
	// update the singleton.
	if req.PushTime != nil && *req.PushTime != "" {
		if err := domain.ValidatePushTime(*req.PushTime); err != nil {
			return apperr.NewValidationWrap("invalid push time", err)
		}
	}
	if req.Timezone != nil && *req.Timezone != "" {
		if err := domain.ValidateTimezone(*req.Timezone); err != nil {
			return apperr.NewValidationWrap("invalid timezone", err)
		}
	}

	cfg, err := r.push.Update(c.Request().Context(), storage.PushUpdate{
		PushTime:  req.PushTime,
		Timezone:  req.Timezone,
		IsEnabled: req.IsEnabled,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, cfg)
}
