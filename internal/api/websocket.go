package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"github.com/KimBaekRu/mes-system-server/internal/realtime"
	"github.com/KimBaekRu/mes-system-server/internal/store"
)

// WebSocketHandler manages dashboard subscriber connections.
type WebSocketHandler struct {
	hub        *realtime.Hub
	equipment  *store.EquipmentStore
	upgrader   websocket.Upgrader
	sendBuffer int
}

// NewWebSocketHandler creates the dashboard websocket handler.
func NewWebSocketHandler(hub *realtime.Hub, equipment *store.EquipmentStore, sendBuffer int, maxMessageSizeKB int) *WebSocketHandler {
	if sendBuffer <= 0 {
		sendBuffer = 64
	}
	if maxMessageSizeKB <= 0 {
		maxMessageSizeKB = 64
	}
	return &WebSocketHandler{
		hub:       hub,
		equipment: equipment,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				// The dashboard frontend may be served from a different origin
				return true
			},
			ReadBufferSize:  maxMessageSizeKB * 1024,
			WriteBufferSize: maxMessageSizeKB * 1024,
		},
		sendBuffer: sendBuffer,
	}
}

// HandleWebSocket upgrades the connection and runs the dashboard protocol:
// one full equipment snapshot first, then broadcast events until the client
// disconnects. Client messages are status pushes and keepalive pings.
func (wsh *WebSocketHandler) HandleWebSocket(c echo.Context) error {
	ws, err := wsh.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}
	defer ws.Close()

	client := realtime.NewClient(ws, wsh.sendBuffer)
	fmt.Printf("[WebSocket] Dashboard client connected: %s\n", client.ID())

	// The snapshot is queued before registration so it is delivered ahead
	// of any broadcast.
	client.Queue(realtime.NewMessage(realtime.EventInitialEquipments, wsh.equipment.List()))
	wsh.hub.Register(client)
	defer wsh.hub.Unregister(client)

	go client.WritePump()

	for {
		var msg realtime.Message
		if err := ws.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				fmt.Printf("[WebSocket] Connection error: %v\n", err)
			}
			break
		}

		switch msg.Event {
		case realtime.EventPing:
			client.Queue(realtime.NewMessage(realtime.EventPong, nil))
		case realtime.EventUpdateStatus:
			var p realtime.StatusPayload
			if err := json.Unmarshal(msg.Data, &p); err != nil {
				continue
			}
			wsh.hub.HandleStatusUpdate(p)
		}
	}

	fmt.Printf("[WebSocket] Dashboard client disconnected: %s\n", client.ID())
	return nil
}
