package profile

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/beatburn/server/internal/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(filepath.Join(t.TempDir(), "profile.json"))
}

func sampleProfile() models.User {
	return models.User{
		ID:          1,
		Username:    "dancer",
		Name:        "Dana",
		Age:         25,
		Gender:      models.GenderFemale,
		HeightCm:    175,
		WeightKg:    70,
		Goal:        "Weight Loss",
		DanceStyle:  "Zumba",
		BMI:         22.9,
		BMR:         1508,
		CalorieGoal: 1837,
		CreatedAt:   time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	store := newTestStore(t)
	saved := sampleProfile()

	if err := store.Save(saved); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(saved, loaded) {
		t.Fatalf("round trip mismatch:\nsaved  %+v\nloaded %+v", saved, loaded)
	}
}

func TestLoadMissingFile(t *testing.T) {
	store := newTestStore(t)

	if _, err := store.Load(); !errors.Is(err, ErrNoProfile) {
		t.Fatalf("expected ErrNoProfile, got %v", err)
	}
}

func TestLoadCorruptFileFallsBackToEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	store := NewStore(path)
	if _, err := store.Load(); !errors.Is(err, ErrNoProfile) {
		t.Fatalf("expected ErrNoProfile for corrupt file, got %v", err)
	}
}

func TestUpdateStatsMergesAndClamps(t *testing.T) {
	store := newTestStore(t)
	if err := store.Save(sampleProfile()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	burned := 247
	negative := -50
	updated, err := store.UpdateStats(models.StatsPatch{CaloriesBurned: &burned, CaloriesConsumed: &negative})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.CaloriesBurned != 247 {
		t.Fatalf("expected 247 burned, got %d", updated.CaloriesBurned)
	}
	if updated.CaloriesConsumed != 0 {
		t.Fatalf("expected consumed clamped to 0, got %d", updated.CaloriesConsumed)
	}

	// Unrelated fields survive the merge.
	if updated.Name != "Dana" || updated.BMR != 1508 {
		t.Fatalf("expected untouched fields to survive, got %+v", updated)
	}
}

func TestClearThenLoad(t *testing.T) {
	store := newTestStore(t)
	if err := store.Save(sampleProfile()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := store.Clear(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := store.Load(); !errors.Is(err, ErrNoProfile) {
		t.Fatalf("expected ErrNoProfile after clear, got %v", err)
	}

	// Clearing twice stays quiet.
	if err := store.Clear(); err != nil {
		t.Fatalf("unexpected error on second clear: %v", err)
	}
}
