package store

import (
	"path/filepath"
	"sync"

	"github.com/KimBaekRu/mes-system-server/internal/models"
)

// LineStore owns the production-line collection and its backing document.
// Lines carry no audit history.
type LineStore struct {
	mu     sync.RWMutex
	path   string
	lines  []models.Line
	lastID int64
}

// NewLineStore loads lineNames.json from dataDir.
func NewLineStore(dataDir string) *LineStore {
	s := &LineStore{
		path:  filepath.Join(dataDir, "lineNames.json"),
		lines: []models.Line{},
	}
	loadDocument(s.path, &s.lines)
	for i := range s.lines {
		if s.lines[i].ID > s.lastID {
			s.lastID = s.lines[i].ID
		}
	}
	return s
}

// List returns the full collection in insertion order.
func (s *LineStore) List() []models.Line {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Line, len(s.lines))
	copy(out, s.lines)
	return out
}

// Create appends a new line, persists, and returns the new entity.
func (s *LineStore) Create(name string, x, y float64) models.Line {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastID = nextID(s.lastID)
	ln := models.Line{ID: s.lastID, Name: name, X: x, Y: y}
	s.lines = append(s.lines, ln)
	saveDocument(s.path, s.lines)
	return ln
}

// Update merges name/x/y over the stored line.
func (s *LineStore) Update(id int64, fields map[string]any) (models.Line, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i := range s.lines {
		if s.lines[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return models.Line{}, ErrNotFound
	}

	ln := s.lines[idx]
	if v, ok := stringField(fields, "name"); ok {
		ln.Name = v
	}
	if v, ok := numberField(fields, "x"); ok {
		ln.X = v
	}
	if v, ok := numberField(fields, "y"); ok {
		ln.Y = v
	}

	s.lines[idx] = ln
	saveDocument(s.path, s.lines)
	return ln, nil
}

// Delete removes the line with the given id; unknown ids are a no-op.
func (s *LineStore) Delete(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := make([]models.Line, 0, len(s.lines))
	for _, ln := range s.lines {
		if ln.ID != id {
			kept = append(kept, ln)
		}
	}
	s.lines = kept
	saveDocument(s.path, s.lines)
}
