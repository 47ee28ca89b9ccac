// Package runs serves the job-run history.
package runs

import (
	"net/http"
	"strconv"

	"jobhost/domain/jobrun"

	"github.com/labstack/echo/v4"
)

const defaultLimit = 50

type Handler struct {
	repo jobrun.Repository
}

func NewHandler(repo jobrun.Repository) *Handler {
	return &Handler{repo: repo}
}

func (h Handler) Index(c echo.Context) error {
	ctx := c.Request().Context()

	var filters jobrun.RunFilters
	if job := c.QueryParam("job"); job != "" {
		filters.JobName = &job
	}
	if status := c.QueryParam("status"); status != "" {
		filters.Status = &status
	}

	filters.Limit = defaultLimit
	if raw := c.QueryParam("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 1 {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid limit"})
		}
		filters.Limit = limit
	}

	runs, err := h.repo.FindAll(ctx, filters)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "Failed to list runs: " + err.Error(),
		})
	}

	return c.JSON(http.StatusOK, runs)
}

func (h Handler) Show(c echo.Context) error {
	run, err := h.repo.FindByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "run not found"})
	}
	return c.JSON(http.StatusOK, run)
}

func (h Handler) RegisterRoutes(g *echo.Group) {
	g.GET("", h.Index)
	g.GET("/:id", h.Show)
}
