// process_test.go - Tests for the process-stage collection
package store

import (
	"reflect"
	"testing"
)

func TestProcessStore_Create(t *testing.T) {
	s := NewProcessStore(t.TempDir())

	st := s.Create("Etching", 5, 6)
	if st.Title != "Etching" || st.X != 5 || st.Y != 6 {
		t.Errorf("Unexpected created stage: %+v", st)
	}
	if st.History == nil || len(st.History) != 0 {
		t.Errorf("Expected empty history, got %v", st.History)
	}
	if len(s.List()) != 1 {
		t.Errorf("Expected stage in list")
	}
}

func TestProcessStore_Update(t *testing.T) {
	t.Run("yield appends exactly one history entry", func(t *testing.T) {
		s := NewProcessStore(t.TempDir())
		st := s.Create("Etching", 0, 0)

		updated, err := s.Update(st.ID, map[string]any{"yield": 98.5, "user": "bob"})
		if err != nil {
			t.Fatalf("Update failed: %v", err)
		}
		if updated.Yield != 98.5 {
			t.Errorf("Expected yield 98.5, got %v", updated.Yield)
		}
		if len(updated.History) != 1 {
			t.Fatalf("Expected 1 history entry, got %d", len(updated.History))
		}
		if updated.History[0].User != "bob" || updated.History[0].Value != 98.5 {
			t.Errorf("Unexpected history entry: %+v", updated.History[0])
		}
	})

	t.Run("update without yield leaves history alone", func(t *testing.T) {
		s := NewProcessStore(t.TempDir())
		st := s.Create("Etching", 0, 0)

		updated, err := s.Update(st.ID, map[string]any{"title": "Etching 2", "x": float64(7)})
		if err != nil {
			t.Fatalf("Update failed: %v", err)
		}
		if updated.Title != "Etching 2" || updated.X != 7 {
			t.Errorf("Unexpected merge result: %+v", updated)
		}
		if len(updated.History) != 0 {
			t.Errorf("Expected no history entry, got %d", len(updated.History))
		}
	})

	t.Run("explicit null yield still counts as present", func(t *testing.T) {
		s := NewProcessStore(t.TempDir())
		st := s.Create("Etching", 0, 0)

		updated, err := s.Update(st.ID, map[string]any{"yield": nil})
		if err != nil {
			t.Fatalf("Update failed: %v", err)
		}
		if len(updated.History) != 1 {
			t.Fatalf("Expected 1 history entry, got %d", len(updated.History))
		}
		if updated.History[0].Value != nil {
			t.Errorf("Expected nil value recorded, got %v", updated.History[0].Value)
		}
	})

	t.Run("secondField is stored as-is", func(t *testing.T) {
		s := NewProcessStore(t.TempDir())
		st := s.Create("Etching", 0, 0)

		updated, err := s.Update(st.ID, map[string]any{"secondField": map[string]any{"shift": "night"}})
		if err != nil {
			t.Fatalf("Update failed: %v", err)
		}
		if updated.SecondField == nil {
			t.Error("Expected secondField to be set")
		}
		if len(updated.History) != 0 {
			t.Errorf("Expected no history entry for secondField, got %d", len(updated.History))
		}
	})

	t.Run("materialNames keeps only strings", func(t *testing.T) {
		s := NewProcessStore(t.TempDir())
		st := s.Create("Etching", 0, 0)

		updated, err := s.Update(st.ID, map[string]any{"materialNames": []any{"copper", 3.0, "resin"}})
		if err != nil {
			t.Fatalf("Update failed: %v", err)
		}
		if !reflect.DeepEqual(updated.MaterialNames, []string{"copper", "resin"}) {
			t.Errorf("Unexpected materialNames: %v", updated.MaterialNames)
		}
	})

	t.Run("empty lastSaved is ignored", func(t *testing.T) {
		s := NewProcessStore(t.TempDir())
		st := s.Create("Etching", 0, 0)

		if _, err := s.Update(st.ID, map[string]any{"lastSaved": "2025-02-01T00:00:00Z"}); err != nil {
			t.Fatalf("Update failed: %v", err)
		}
		updated, err := s.Update(st.ID, map[string]any{"lastSaved": ""})
		if err != nil {
			t.Fatalf("Update failed: %v", err)
		}
		if updated.LastSaved != "2025-02-01T00:00:00Z" {
			t.Errorf("Expected lastSaved untouched, got %q", updated.LastSaved)
		}
	})

	t.Run("unknown id returns ErrNotFound", func(t *testing.T) {
		s := NewProcessStore(t.TempDir())
		if _, err := s.Update(12345, map[string]any{"title": "x"}); err != ErrNotFound {
			t.Errorf("Expected ErrNotFound, got %v", err)
		}
	})
}

func TestProcessStore_DeleteAndReload(t *testing.T) {
	dir := t.TempDir()
	s := NewProcessStore(dir)
	a := s.Create("A", 0, 0)
	s.Create("B", 0, 0)
	if _, err := s.Update(a.ID, map[string]any{"yield": "98%"}); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	reloaded := NewProcessStore(dir)
	if !reflect.DeepEqual(s.List(), reloaded.List()) {
		t.Errorf("Reloaded collection differs")
	}

	s.Delete(a.ID)
	s.Delete(a.ID) // idempotent
	if len(s.List()) != 1 {
		t.Errorf("Expected 1 stage after delete, got %d", len(s.List()))
	}
}
