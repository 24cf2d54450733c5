package models

// HistoryEntry is one audit record on an entity's tracked field.
// Time is RFC3339 and always server-assigned at the moment of the update.
type HistoryEntry struct {
	User  string `json:"user"`
	Time  string `json:"time"`
	Value any    `json:"value"`
}
