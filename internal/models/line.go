package models

// Line represents a production line label on the dashboard. Lines carry no
// audit history.
type Line struct {
	ID   int64   `json:"id"`
	Name string  `json:"name"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
}
