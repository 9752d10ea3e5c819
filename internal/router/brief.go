package router

import (
	"errors"
	"net/http"
	"strings"

	"github.com/aidaily/ai-daily/internal/apperr"
	"github.com/aidaily/ai-daily/internal/domain"
	"github.com/aidaily/ai-daily/internal/pipeline"
	"github.com/aidaily/ai-daily/internal/storage"
	"github.com/labstack/echo/v4"
)

// BriefRouter serves the read side of the dashboard plus the generation
// trigger.
type BriefRouter struct {
	e      *echo.Echo
	briefs *storage.BriefStore
	pipe   *pipeline.Pipeline

	// cronSecret guards POST /api/generate when set. The scheduled
	// trigger passes it as a bearer token.
	cronSecret string
}

type BriefRouterOption func(*BriefRouter)

func WithCronSecret(secret string) BriefRouterOption {
	return func(r *BriefRouter) {
		r.cronSecret = secret
	}
}

func NewBriefRouter(e *echo.Echo, briefs *storage.BriefStore, pipe *pipeline.Pipeline, opts ...BriefRouterOption) *BriefRouter {
	r := &BriefRouter{
		e:      e,
		briefs: briefs,
		pipe:   pipe,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *BriefRouter) Bind() {
	g := r.e.Group("/api")
	g.GET("/brief/latest", r.latestHandler)
	g.GET("/brief/:date", r.byDateHandler)
	g.GET("/dates", r.datesHandler)
	g.POST("/generate", r.generateHandler)
}

func (r *BriefRouter) latestHandler(c echo.Context) error {
	brief, err := r.briefs.Latest(c.Request().Context())
	if errors.Is(err, storage.ErrNotFound) {
		return c.JSON(http.StatusOK, domain.EmptyBrief(""))
	}
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, brief)
}

func (r *BriefRouter) byDateHandler(c echo.Context) error {
	date := c.Param("date")
	if !domain.ValidDate(date) {
		return apperr.NewValidation("date must be YYYY-MM-DD")
	}

	brief, err := r.briefs.Get(c.Request().Context(), date)
	if errors.Is(err, storage.ErrNotFound) {
		// Absent dates answer with an empty-shaped brief, not a 404.
		return c.JSON(http.StatusOK, domain.EmptyBrief(date))
	}
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, brief)
}

func (r *BriefRouter) datesHandler(c echo.Context) error {
	dates, err := r.briefs.Dates(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string][]string{"dates": dates})
}

type generateRequest struct {
	Date  string `json:"date"`
	Force bool   `json:"force"`
}

func (r *BriefRouter) generateHandler(c echo.Context) error {
	if err := r.authorize(c); err != nil {
		return err
	}

	var req generateRequest
	if err := c.Bind(&req); err != nil {
		return apperr.NewValidationWrap("invalid request body", err)
	}
	if req.Date == "" {
		return apperr.NewValidation("date is required")
	}
	if !domain.ValidDate(req.Date) {
		return apperr.NewValidation("date must be YYYY-MM-DD")
	}

	brief, err := r.pipe.Generate(c.Request().Context(), req.Date, req.Force)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, brief)
}

func (r *BriefRouter) authorize(c echo.Context) error {
	if r.cronSecret == "" {
		return nil
	}

	auth := c.Request().Header.Get(echo.HeaderAuthorization)
	token, ok := strings.CutPrefix(auth, "Bearer ")
	if !ok || token != r.cronSecret {
		return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	return nil
}
