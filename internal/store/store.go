// Package store owns the in-memory entity collections and their backing
// JSON documents. Each collection is loaded once at startup and rewritten
// wholesale on every mutation; the on-disk document is the pretty-printed
// serialized form of the in-memory slice.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// ErrNotFound is returned when an update targets an id that is not in the
// collection. Deletes tolerate unknown ids and never return it.
var ErrNotFound = errors.New("entity not found")

// loadDocument reads a JSON array document into dst. A missing or malformed
// document leaves dst empty; dashboard state is low-stakes, so startup never
// fails on it.
func loadDocument(path string, dst any) {
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			fmt.Printf("[Store] Failed to read %s: %v\n", filepath.Base(path), err)
		}
		return
	}
	if err := json.Unmarshal(data, dst); err != nil {
		fmt.Printf("[Store] Malformed document %s, starting empty: %v\n", filepath.Base(path), err)
	}
}

// saveDocument rewrites the whole document. Write errors are logged and
// swallowed; the in-memory collection stays authoritative until the next
// successful write.
func saveDocument(path string, v any) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Printf("[Store] Failed to serialize %s: %v\n", filepath.Base(path), err)
		return
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		fmt.Printf("[Store] Failed to write %s: %v\n", filepath.Base(path), err)
	}
}

// nextID returns a millisecond-shaped id strictly greater than last, so
// creations within the same millisecond cannot collide.
func nextID(last int64) int64 {
	now := time.Now().UnixMilli()
	if now <= last {
		return last + 1
	}
	return now
}

// historyTime formats the server-assigned timestamp of a history entry.
func historyTime() string {
	return time.Now().Format(time.RFC3339)
}

// Field extraction helpers for merge updates. A field that is absent or of
// the wrong type is reported as not present and left untouched by the caller.

func stringField(fields map[string]any, key string) (string, bool) {
	v, ok := fields[key].(string)
	return v, ok
}

func numberField(fields map[string]any, key string) (float64, bool) {
	v, ok := fields[key].(float64)
	return v, ok
}

func arrayField(fields map[string]any, key string) ([]any, bool) {
	v, ok := fields[key].([]any)
	return v, ok
}

func stringArrayField(fields map[string]any, key string) ([]string, bool) {
	raw, ok := fields[key].([]any)
	if !ok {
		return nil, false
	}
	out := make([]string, 0, len(raw))
	for _, item := range raw {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out, true
}

// historyUser resolves the acting user of a mutation request.
func historyUser(fields map[string]any) string {
	if u, ok := stringField(fields, "user"); ok && u != "" {
		return u
	}
	return "unknown"
}
