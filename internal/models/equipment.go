package models

// StatusIdle is the status assigned to newly created equipment.
const StatusIdle = "idle"

// Equipment represents a machine placed on the dashboard floor map.
// MaintenanceHistory records are opaque to the backend; the frontend owns
// their shape, so they are stored and returned as-is.
type Equipment struct {
	ID                 int64          `json:"id"`
	Name               string         `json:"name"`
	IconURL            string         `json:"iconUrl"`
	X                  float64        `json:"x"`
	Y                  float64        `json:"y"`
	Status             string         `json:"status"`
	History            []HistoryEntry `json:"history"`
	MaintenanceHistory []any          `json:"maintenanceHistory,omitempty"`
}
