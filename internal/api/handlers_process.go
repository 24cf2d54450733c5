package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/KimBaekRu/mes-system-server/internal/metrics"
	"github.com/KimBaekRu/mes-system-server/internal/store"
)

// Process-stage mutations are REST-only; nothing is broadcast for them.

// HandleListProcessStages returns the full process-stage collection.
func (h *Handler) HandleListProcessStages(c echo.Context) error {
	return c.JSON(http.StatusOK, h.process.List())
}

// HandleCreateProcessStage creates a new process stage.
func (h *Handler) HandleCreateProcessStage(c echo.Context) error {
	var req struct {
		Title string  `json:"title"`
		X     float64 `json:"x"`
		Y     float64 `json:"y"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid JSON body"})
	}

	st := h.process.Create(req.Title, req.X, req.Y)
	metrics.EntityMutations.WithLabelValues("process", "create").Inc()

	return c.JSON(http.StatusCreated, st)
}

// HandleUpdateProcessStage merges the request fields into the stored stage.
func (h *Handler) HandleUpdateProcessStage(c echo.Context) error {
	id, err := parseEntityID(c)
	if err != nil {
		return c.NoContent(http.StatusNotFound)
	}

	var fields map[string]any
	if err := c.Bind(&fields); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid JSON body"})
	}

	st, err := h.process.Update(id, fields)
	if err == store.ErrNotFound {
		return c.NoContent(http.StatusNotFound)
	}

	metrics.EntityMutations.WithLabelValues("process", "update").Inc()
	return c.JSON(http.StatusOK, st)
}

// HandleDeleteProcessStage removes the stage; unknown ids are a no-op.
func (h *Handler) HandleDeleteProcessStage(c echo.Context) error {
	if id, err := parseEntityID(c); err == nil {
		h.process.Delete(id)
		metrics.EntityMutations.WithLabelValues("process", "delete").Inc()
	}
	return c.NoContent(http.StatusNoContent)
}
