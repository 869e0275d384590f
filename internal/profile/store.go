// Package profile persists the single active user profile to a local JSON
// file, the server-side counterpart of the client's localStorage entry. The
// file being absent or unreadable always degrades to "no active profile",
// never to a failure that could take the app down.
package profile

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/beatburn/server/internal/models"
)

var ErrNoProfile = errors.New("no active profile")

type Store struct {
	mu   sync.Mutex
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

// Save replaces the stored profile. The write goes through a temp file and
// a rename so a crash mid-write can never leave a half-written profile.
func (store *Store) Save(user models.User) error {
	store.mu.Lock()
	defer store.mu.Unlock()
	return store.write(user)
}

// Load returns the stored profile. A missing or corrupt file yields
// ErrNoProfile; corruption is logged, not propagated.
func (store *Store) Load() (models.User, error) {
	store.mu.Lock()
	defer store.mu.Unlock()
	return store.read()
}

// UpdateStats merges a stats patch into the stored profile. Totals are
// clamped at zero so a bad patch can never push an accumulator negative.
func (store *Store) UpdateStats(patch models.StatsPatch) (models.User, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	user, err := store.read()
	if err != nil {
		return models.User{}, err
	}

	if patch.CaloriesBurned != nil {
		user.CaloriesBurned = max(*patch.CaloriesBurned, 0)
	}
	if patch.CaloriesConsumed != nil {
		user.CaloriesConsumed = max(*patch.CaloriesConsumed, 0)
	}
	if patch.WeightKg != nil {
		user.WeightKg = *patch.WeightKg
	}
	user.UpdatedAt = time.Now()

	if err := store.write(user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

// Clear removes the stored profile (logout). Clearing an empty store is fine.
func (store *Store) Clear() error {
	store.mu.Lock()
	defer store.mu.Unlock()

	err := os.Remove(store.path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("clear profile: %w", err)
	}
	return nil
}

func (store *Store) read() (models.User, error) {
	raw, err := os.ReadFile(store.path)
	if errors.Is(err, os.ErrNotExist) {
		return models.User{}, ErrNoProfile
	}
	if err != nil {
		log.Printf("profile store: read failed, treating as empty: %v", err)
		return models.User{}, ErrNoProfile
	}

	var user models.User
	if err := json.Unmarshal(raw, &user); err != nil {
		log.Printf("profile store: corrupt profile at %s, treating as empty: %v", store.path, err)
		return models.User{}, ErrNoProfile
	}
	return user, nil
}

func (store *Store) write(user models.User) error {
	if dir := filepath.Dir(store.path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create profile directory: %w", err)
		}
	}

	raw, err := json.MarshalIndent(user, "", "  ")
	if err != nil {
		return fmt.Errorf("encode profile: %w", err)
	}

	tmpPath := store.path + ".tmp"
	if err := os.WriteFile(tmpPath, raw, 0o600); err != nil {
		return fmt.Errorf("write profile: %w", err)
	}
	if err := os.Rename(tmpPath, store.path); err != nil {
		return fmt.Errorf("replace profile: %w", err)
	}
	return nil
}
