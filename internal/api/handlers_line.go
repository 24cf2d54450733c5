package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/KimBaekRu/mes-system-server/internal/metrics"
	"github.com/KimBaekRu/mes-system-server/internal/store"
)

// Line mutations are REST-only; nothing is broadcast for them.

// HandleListLines returns the full line collection.
func (h *Handler) HandleListLines(c echo.Context) error {
	return c.JSON(http.StatusOK, h.lines.List())
}

// HandleCreateLine creates a new production line label.
func (h *Handler) HandleCreateLine(c echo.Context) error {
	var req struct {
		Name string  `json:"name"`
		X    float64 `json:"x"`
		Y    float64 `json:"y"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid JSON body"})
	}

	ln := h.lines.Create(req.Name, req.X, req.Y)
	metrics.EntityMutations.WithLabelValues("line", "create").Inc()

	return c.JSON(http.StatusCreated, ln)
}

// HandleUpdateLine merges name/x/y into the stored line.
func (h *Handler) HandleUpdateLine(c echo.Context) error {
	id, err := parseEntityID(c)
	if err != nil {
		return c.NoContent(http.StatusNotFound)
	}

	var fields map[string]any
	if err := c.Bind(&fields); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid JSON body"})
	}

	ln, err := h.lines.Update(id, fields)
	if err == store.ErrNotFound {
		return c.NoContent(http.StatusNotFound)
	}

	metrics.EntityMutations.WithLabelValues("line", "update").Inc()
	return c.JSON(http.StatusOK, ln)
}

// HandleDeleteLine removes the line; unknown ids are a no-op.
func (h *Handler) HandleDeleteLine(c echo.Context) error {
	if id, err := parseEntityID(c); err == nil {
		h.lines.Delete(id)
		metrics.EntityMutations.WithLabelValues("line", "delete").Inc()
	}
	return c.NoContent(http.StatusNoContent)
}
