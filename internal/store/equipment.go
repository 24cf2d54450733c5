package store

import (
	"path/filepath"
	"sync"

	"github.com/KimBaekRu/mes-system-server/internal/models"
)

// EquipmentStore owns the equipment collection and its backing document.
// All access goes through its methods; no other component touches the slice.
type EquipmentStore struct {
	mu         sync.RWMutex
	path       string
	equipments []models.Equipment
	lastID     int64
}

// NewEquipmentStore loads equipments.json from dataDir. A missing or
// malformed document yields an empty collection.
func NewEquipmentStore(dataDir string) *EquipmentStore {
	s := &EquipmentStore{
		path:       filepath.Join(dataDir, "equipments.json"),
		equipments: []models.Equipment{},
	}
	loadDocument(s.path, &s.equipments)
	for i := range s.equipments {
		if s.equipments[i].ID > s.lastID {
			s.lastID = s.equipments[i].ID
		}
		if s.equipments[i].History == nil {
			s.equipments[i].History = []models.HistoryEntry{}
		}
	}
	return s
}

// List returns the full collection in insertion order.
func (s *EquipmentStore) List() []models.Equipment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Equipment, len(s.equipments))
	copy(out, s.equipments)
	return out
}

// Create appends a new equipment with status "idle" and an empty history,
// persists the collection, and returns the new entity.
func (s *EquipmentStore) Create(name, iconURL string, x, y float64) models.Equipment {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastID = nextID(s.lastID)
	eq := models.Equipment{
		ID:      s.lastID,
		Name:    name,
		IconURL: iconURL,
		X:       x,
		Y:       y,
		Status:  models.StatusIdle,
		History: []models.HistoryEntry{},
	}
	s.equipments = append(s.equipments, eq)
	saveDocument(s.path, s.equipments)
	return eq
}

// Update merges the allow-listed fields of the request over the stored
// entity, appends a history entry, persists, and returns the result.
// Fields that are absent or of the wrong type are left untouched.
func (s *EquipmentStore) Update(id int64, fields map[string]any) (models.Equipment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx == -1 {
		return models.Equipment{}, ErrNotFound
	}

	eq := s.equipments[idx]
	if v, ok := stringField(fields, "name"); ok {
		eq.Name = v
	}
	if v, ok := stringField(fields, "iconUrl"); ok {
		eq.IconURL = v
	}
	if v, ok := stringField(fields, "status"); ok {
		eq.Status = v
	}
	if v, ok := numberField(fields, "x"); ok {
		eq.X = v
	}
	if v, ok := numberField(fields, "y"); ok {
		eq.Y = v
	}
	if v, ok := arrayField(fields, "maintenanceHistory"); ok {
		eq.MaintenanceHistory = v
	}

	// Every equipment update records an audit entry. When the request
	// carries no status the entry repeats the current one.
	value := any(eq.Status)
	if v, present := fields["status"]; present {
		value = v
	}
	eq.History = append(eq.History, models.HistoryEntry{
		User:  historyUser(fields),
		Time:  historyTime(),
		Value: value,
	})

	s.equipments[idx] = eq
	saveDocument(s.path, s.equipments)
	return eq, nil
}

// UpdateStatus routes a realtime status push through the regular update
// path so persistence and audit history stay consistent with REST
// mutations.
func (s *EquipmentStore) UpdateStatus(id int64, status, user string) (models.Equipment, error) {
	fields := map[string]any{"status": status}
	if user != "" {
		fields["user"] = user
	}
	return s.Update(id, fields)
}

// Delete removes the equipment with the given id. Unknown ids are a no-op;
// the collection is persisted either way.
func (s *EquipmentStore) Delete(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := make([]models.Equipment, 0, len(s.equipments))
	for _, eq := range s.equipments {
		if eq.ID != id {
			kept = append(kept, eq)
		}
	}
	s.equipments = kept
	saveDocument(s.path, s.equipments)
}

func (s *EquipmentStore) indexOf(id int64) int {
	for i := range s.equipments {
		if s.equipments[i].ID == id {
			return i
		}
	}
	return -1
}
