// routes.go - Route registration helpers
package api

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RegisterRoutes registers all API routes with the Echo instance.
func RegisterRoutes(e *echo.Echo, h *Handler, wsh *WebSocketHandler) {
	apiGroup := e.Group("/api")

	apiGroup.GET("/health", h.HandleHealth)
	apiGroup.POST("/login", h.HandleLogin)

	// Realtime dashboard channel
	apiGroup.GET("/ws/dashboard", wsh.HandleWebSocket)

	// Equipment
	apiGroup.GET("/equipments", h.HandleListEquipments)
	apiGroup.GET("/equipments/msgpack", h.HandleListEquipmentsMsgpack)
	apiGroup.POST("/equipments", h.HandleCreateEquipment)
	apiGroup.PUT("/equipments/:id", h.HandleUpdateEquipment)
	apiGroup.DELETE("/equipments/:id", h.HandleDeleteEquipment)

	// Process stages
	apiGroup.GET("/processTitles", h.HandleListProcessStages)
	apiGroup.POST("/processTitles", h.HandleCreateProcessStage)
	apiGroup.PUT("/processTitles/:id", h.HandleUpdateProcessStage)
	apiGroup.DELETE("/processTitles/:id", h.HandleDeleteProcessStage)

	// Production lines
	apiGroup.GET("/lineNames", h.HandleListLines)
	apiGroup.POST("/lineNames", h.HandleCreateLine)
	apiGroup.PUT("/lineNames/:id", h.HandleUpdateLine)
	apiGroup.DELETE("/lineNames/:id", h.HandleDeleteLine)

	// Prometheus metrics
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
}
