package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/KimBaekRu/mes-system-server/internal/auth"
	"github.com/KimBaekRu/mes-system-server/internal/metrics"
	"github.com/KimBaekRu/mes-system-server/internal/realtime"
	"github.com/KimBaekRu/mes-system-server/internal/store"
)

// Handler handles API requests.
type Handler struct {
	equipment *store.EquipmentStore
	process   *store.ProcessStore
	lines     *store.LineStore
	auth      *auth.Service
	hub       *realtime.Hub
	version   string
}

// NewHandler creates a new API handler.
func NewHandler(equipment *store.EquipmentStore, process *store.ProcessStore, lines *store.LineStore, authSvc *auth.Service, hub *realtime.Hub, version string) *Handler {
	return &Handler{
		equipment: equipment,
		process:   process,
		lines:     lines,
		auth:      authSvc,
		hub:       hub,
		version:   version,
	}
}

// HandleHealth returns server health status.
func (h *Handler) HandleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":  "ok",
		"version": h.version,
	})
}

// HandleLogin checks the submitted credentials against the static user list.
// There is no token or session; the response is a one-shot signal.
func (h *Handler) HandleLogin(c echo.Context) error {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
		Role     string `json:"role"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid JSON body"})
	}

	user, err := h.auth.Authenticate(req.Username, req.Password, req.Role)
	if err != nil {
		metrics.LoginFailures.Inc()
		return c.JSON(http.StatusUnauthorized, map[string]string{
			"error": "login failed: username, password, or role does not match",
		})
	}

	return c.JSON(http.StatusOK, map[string]string{
		"username": user.Username,
		"role":     user.Role,
	})
}
