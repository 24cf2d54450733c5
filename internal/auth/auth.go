// Package auth implements the stateless credential check against the static
// user list. There are no tokens and no sessions; a successful login is a
// one-shot authorization signal for the frontend.
package auth

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/KimBaekRu/mes-system-server/internal/models"
)

// ErrInvalidCredentials is returned when no user matches all three fields.
var ErrInvalidCredentials = errors.New("invalid credentials")

// Service holds the read-only user list loaded at startup.
type Service struct {
	users []models.User
}

// NewService loads the user list. users.json in the data directory is
// authoritative; when it is absent, the YAML seed shipped under
// defaults/users.yaml is loaded instead. A missing or malformed list is
// treated as empty, so every login fails rather than the process.
func NewService(dataDir string) *Service {
	s := &Service{}

	path := filepath.Join(dataDir, "users.json")
	if data, err := os.ReadFile(path); err == nil {
		if err := json.Unmarshal(data, &s.users); err != nil {
			fmt.Printf("[Auth] Malformed users.json, no users loaded: %v\n", err)
		}
		return s
	}

	seedPath := filepath.Join(dataDir, "defaults", "users.yaml")
	data, err := os.ReadFile(seedPath)
	if err != nil {
		return s
	}
	if err := yaml.Unmarshal(data, &s.users); err != nil {
		fmt.Printf("[Auth] Malformed users.yaml seed, no users loaded: %v\n", err)
		return s
	}
	fmt.Printf("[Auth] Loaded %d users from seed file\n", len(s.users))
	return s
}

// Authenticate matches on exact equality of all three fields and returns
// the matched user without its password.
func (s *Service) Authenticate(username, password, role string) (models.User, error) {
	for _, u := range s.users {
		if u.Username == username && u.Password == password && u.Role == role {
			return models.User{Username: u.Username, Role: u.Role}, nil
		}
	}
	return models.User{}, ErrInvalidCredentials
}

// UserCount reports how many accounts were loaded, for the startup log.
func (s *Service) UserCount() int {
	return len(s.users)
}
