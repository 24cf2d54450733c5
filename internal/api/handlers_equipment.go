package api

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/KimBaekRu/mes-system-server/internal/metrics"
	"github.com/KimBaekRu/mes-system-server/internal/realtime"
	"github.com/KimBaekRu/mes-system-server/internal/store"
)

// HandleListEquipments returns the full equipment collection.
func (h *Handler) HandleListEquipments(c echo.Context) error {
	return c.JSON(http.StatusOK, h.equipment.List())
}

// HandleListEquipmentsMsgpack returns the equipment collection in
// MessagePack format for bandwidth-sensitive dashboard clients.
func (h *Handler) HandleListEquipmentsMsgpack(c echo.Context) error {
	data, err := msgpack.Marshal(h.equipment.List())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to encode msgpack"})
	}
	return c.Blob(http.StatusOK, "application/msgpack", data)
}

// HandleCreateEquipment creates a new equipment and broadcasts it.
func (h *Handler) HandleCreateEquipment(c echo.Context) error {
	var req struct {
		Name    string  `json:"name"`
		IconURL string  `json:"iconUrl"`
		X       float64 `json:"x"`
		Y       float64 `json:"y"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid JSON body"})
	}

	eq := h.equipment.Create(req.Name, req.IconURL, req.X, req.Y)
	metrics.EntityMutations.WithLabelValues("equipment", "create").Inc()
	h.hub.Broadcast(realtime.EventEquipmentAdded, eq)

	return c.JSON(http.StatusCreated, eq)
}

// HandleUpdateEquipment merges the request fields into the stored equipment
// and broadcasts the result. Unknown ids answer 404 with an empty body.
func (h *Handler) HandleUpdateEquipment(c echo.Context) error {
	id, err := parseEntityID(c)
	if err != nil {
		return c.NoContent(http.StatusNotFound)
	}

	var fields map[string]any
	if err := c.Bind(&fields); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid JSON body"})
	}

	eq, err := h.equipment.Update(id, fields)
	if err == store.ErrNotFound {
		return c.NoContent(http.StatusNotFound)
	}

	metrics.EntityMutations.WithLabelValues("equipment", "update").Inc()
	h.hub.Broadcast(realtime.EventEquipmentUpdated, eq)

	return c.JSON(http.StatusOK, eq)
}

// HandleDeleteEquipment removes the equipment and broadcasts the deleted id.
// Deleting an unknown id is a tolerated no-op.
func (h *Handler) HandleDeleteEquipment(c echo.Context) error {
	id, err := parseEntityID(c)
	if err == nil {
		h.equipment.Delete(id)
		metrics.EntityMutations.WithLabelValues("equipment", "delete").Inc()
		h.hub.Broadcast(realtime.EventEquipmentDeleted, id)
	}
	return c.NoContent(http.StatusNoContent)
}

// parseEntityID reads the :id route parameter. Non-numeric ids behave like
// unknown ids.
func parseEntityID(c echo.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}
