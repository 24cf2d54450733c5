package store

import (
	"path/filepath"
	"sync"

	"github.com/KimBaekRu/mes-system-server/internal/models"
)

// ProcessStore owns the process-stage collection and its backing document.
type ProcessStore struct {
	mu     sync.RWMutex
	path   string
	stages []models.ProcessStage
	lastID int64
}

// NewProcessStore loads processTitles.json from dataDir.
func NewProcessStore(dataDir string) *ProcessStore {
	s := &ProcessStore{
		path:   filepath.Join(dataDir, "processTitles.json"),
		stages: []models.ProcessStage{},
	}
	loadDocument(s.path, &s.stages)
	for i := range s.stages {
		if s.stages[i].ID > s.lastID {
			s.lastID = s.stages[i].ID
		}
		if s.stages[i].History == nil {
			s.stages[i].History = []models.HistoryEntry{}
		}
	}
	return s
}

// List returns the full collection in insertion order.
func (s *ProcessStore) List() []models.ProcessStage {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.ProcessStage, len(s.stages))
	copy(out, s.stages)
	return out
}

// Create appends a new process stage with an empty history, persists, and
// returns the new entity.
func (s *ProcessStore) Create(title string, x, y float64) models.ProcessStage {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastID = nextID(s.lastID)
	st := models.ProcessStage{
		ID:      s.lastID,
		Title:   title,
		X:       x,
		Y:       y,
		History: []models.HistoryEntry{},
	}
	s.stages = append(s.stages, st)
	saveDocument(s.path, s.stages)
	return st
}

// Update merges the allow-listed fields of the request over the stored
// stage. A history entry is appended only when the request carries a yield
// value; other updates leave the audit trail alone.
func (s *ProcessStore) Update(id int64, fields map[string]any) (models.ProcessStage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx == -1 {
		return models.ProcessStage{}, ErrNotFound
	}

	st := s.stages[idx]
	if v, ok := stringField(fields, "title"); ok {
		st.Title = v
	}
	if v, ok := numberField(fields, "x"); ok {
		st.X = v
	}
	if v, ok := numberField(fields, "y"); ok {
		st.Y = v
	}
	if v, present := fields["yield"]; present {
		st.Yield = v
	}
	if v, present := fields["secondField"]; present {
		st.SecondField = v
	}
	if v, ok := arrayField(fields, "maintenanceHistory"); ok {
		st.MaintenanceHistory = v
	}
	if v, ok := stringArrayField(fields, "materialNames"); ok {
		st.MaterialNames = v
	}
	if v, ok := stringField(fields, "lastSaved"); ok && v != "" {
		st.LastSaved = v
	}

	if v, present := fields["yield"]; present {
		st.History = append(st.History, models.HistoryEntry{
			User:  historyUser(fields),
			Time:  historyTime(),
			Value: v,
		})
	}

	s.stages[idx] = st
	saveDocument(s.path, s.stages)
	return st, nil
}

// Delete removes the stage with the given id; unknown ids are a no-op.
func (s *ProcessStore) Delete(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := make([]models.ProcessStage, 0, len(s.stages))
	for _, st := range s.stages {
		if st.ID != id {
			kept = append(kept, st)
		}
	}
	s.stages = kept
	saveDocument(s.path, s.stages)
}

func (s *ProcessStore) indexOf(id int64) int {
	for i := range s.stages {
		if s.stages[i].ID == id {
			return i
		}
	}
	return -1
}
