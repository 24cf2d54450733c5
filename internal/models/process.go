package models

// ProcessStage represents a named process step on the dashboard.
// Yield and SecondField carry whatever the frontend sends; no type is
// imposed on them.
type ProcessStage struct {
	ID                 int64          `json:"id"`
	Title              string         `json:"title"`
	X                  float64        `json:"x"`
	Y                  float64        `json:"y"`
	Yield              any            `json:"yield,omitempty"`
	SecondField        any            `json:"secondField,omitempty"`
	MaintenanceHistory []any          `json:"maintenanceHistory,omitempty"`
	MaterialNames      []string       `json:"materialNames,omitempty"`
	LastSaved          string         `json:"lastSaved,omitempty"`
	History            []HistoryEntry `json:"history"`
}
