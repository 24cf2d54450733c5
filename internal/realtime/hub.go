// Package realtime implements the dashboard's publish/subscribe channel.
// Delivery is at-most-once, best effort: a subscriber whose send buffer is
// full misses the event and has to re-fetch the list over REST.
package realtime

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/KimBaekRu/mes-system-server/internal/metrics"
	"github.com/KimBaekRu/mes-system-server/internal/models"
)

// Event names on the dashboard channel.
const (
	// Server -> client
	EventInitialEquipments = "initialEquipments"
	EventEquipmentAdded    = "equipmentAdded"
	EventEquipmentUpdated  = "equipmentUpdated"
	EventEquipmentDeleted  = "equipmentDeleted"
	EventStatusUpdate      = "statusUpdate"
	EventPong              = "pong"

	// Client -> server
	EventUpdateStatus = "updateStatus"
	EventPing         = "ping"
)

// StatusPayload is the body of statusUpdate and updateStatus events.
type StatusPayload struct {
	ID     int64  `json:"id"`
	Status string `json:"status"`
	User   string `json:"user,omitempty"`
}

// EquipmentUpdater is the store-side hook for direct status pushes. Routing
// them through the entity store keeps persistence and audit history
// consistent with REST updates.
type EquipmentUpdater interface {
	UpdateStatus(id int64, status, user string) (models.Equipment, error)
}

// Hub fans events out to all connected dashboard subscribers.
type Hub struct {
	mu      sync.RWMutex
	clients map[string]*Client
	updater EquipmentUpdater
}

// NewHub creates a hub that applies direct status pushes via updater.
func NewHub(updater EquipmentUpdater) *Hub {
	return &Hub{
		clients: make(map[string]*Client),
		updater: updater,
	}
}

// Register adds a subscriber to the broadcast set. Messages queued on the
// client before registration are delivered ahead of any broadcast.
func (h *Hub) Register(c *Client) {
	h.mu.Lock()
	h.clients[c.id] = c
	h.mu.Unlock()
	metrics.RealtimeClients.Inc()
}

// Unregister removes a subscriber and closes its send channel.
func (h *Hub) Unregister(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[c.id]; !ok {
		return
	}
	delete(h.clients, c.id)
	close(c.send)
	metrics.RealtimeClients.Dec()
}

// ClientCount returns the number of connected subscribers.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Broadcast fans an event out to every connected subscriber.
func (h *Hub) Broadcast(event string, data any) {
	msg := NewMessage(event, data)
	metrics.RealtimeEvents.WithLabelValues(event).Inc()

	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, c := range h.clients {
		select {
		case c.send <- msg:
		default:
			fmt.Printf("[Realtime] Dropping %s for slow client %s\n", event, c.id)
		}
	}
}

// HandleStatusUpdate applies a direct status push from a subscriber. The
// change goes through the equipment store; unknown ids are silently
// ignored and nothing is broadcast for them.
func (h *Hub) HandleStatusUpdate(p StatusPayload) {
	if _, err := h.updater.UpdateStatus(p.ID, p.Status, p.User); err != nil {
		return
	}
	h.Broadcast(EventStatusUpdate, StatusPayload{ID: p.ID, Status: p.Status})
}

// Message is the JSON envelope on the dashboard websocket.
type Message struct {
	Event     string          `json:"event"`
	Data      json.RawMessage `json:"data,omitempty"`
	Timestamp int64           `json:"timestamp"`
}

// NewMessage builds an envelope with a server-assigned timestamp.
func NewMessage(event string, data any) Message {
	return Message{
		Event:     event,
		Data:      mustJSON(data),
		Timestamp: nowMilli(),
	}
}

func mustJSON(v any) json.RawMessage {
	if v == nil {
		return nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		return []byte("{}")
	}
	return data
}
