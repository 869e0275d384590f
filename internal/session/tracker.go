// Package session tracks a live dance/workout session: elapsed time,
// estimated calories and completed moves. State lives in memory only until
// the session is stopped and its summary is flushed by the caller.
package session

import (
	"math"
	"time"

	"github.com/beatburn/server/internal/metrics"
)

const (
	StateIdle    = "idle"
	StateRunning = "running"
)

// A move is credited every 15 elapsed seconds, matching the move pacing of
// the dance screen.
const ticksPerMove = 15

// Summary is the final aggregate of a stopped session.
type Summary struct {
	DurationSec    int `json:"durationSeconds"`
	DurationMin    int `json:"duration"`
	CaloriesBurned int `json:"caloriesBurned"`
	Moves          int `json:"moves"`
}

// Snapshot is the live view of a session in progress.
type Snapshot struct {
	State          string    `json:"state"`
	Intensity      string    `json:"intensity,omitempty"`
	ElapsedSec     int       `json:"elapsedSeconds"`
	CaloriesBurned int       `json:"caloriesBurned"`
	Moves          int       `json:"moves"`
	StartedAt      time.Time `json:"startedAt,omitempty"`
}

// Tracker is the Idle -> Running -> Idle state machine for one session.
// It is not safe for concurrent use; the Manager serializes access.
type Tracker struct {
	state      string
	intensity  string
	burnRate   float64
	elapsedSec int
	calories   float64
	moves      int
	startedAt  time.Time
}

func NewTracker() *Tracker {
	return &Tracker{state: StateIdle}
}

// Start resets all counters and transitions to Running. Starting over a
// running session discards it and begins fresh.
func (tracker *Tracker) Start(weightKg float64, intensity string, now time.Time) error {
	burnRate, err := metrics.BurnRatePerSecond(weightKg, intensity)
	if err != nil {
		return err
	}

	tracker.state = StateRunning
	tracker.intensity = intensity
	tracker.burnRate = burnRate
	tracker.elapsedSec = 0
	tracker.calories = 0
	tracker.moves = 0
	tracker.startedAt = now
	return nil
}

// Tick advances the session by one second. Ticks while idle are ignored, so
// a late ticker callback after Stop can never corrupt the counters.
func (tracker *Tracker) Tick() {
	if tracker.state != StateRunning {
		return
	}
	tracker.elapsedSec++
	tracker.calories += tracker.burnRate
	if tracker.elapsedSec%ticksPerMove == 0 {
		tracker.moves++
	}
}

func (tracker *Tracker) Running() bool {
	return tracker.state == StateRunning
}

func (tracker *Tracker) Snapshot() Snapshot {
	if tracker.state != StateRunning {
		return Snapshot{State: StateIdle}
	}
	return Snapshot{
		State:          StateRunning,
		Intensity:      tracker.intensity,
		ElapsedSec:     tracker.elapsedSec,
		CaloriesBurned: int(math.Round(tracker.calories)),
		Moves:          tracker.moves,
		StartedAt:      tracker.startedAt,
	}
}

// Stop transitions back to Idle and returns the final aggregate. Stopping an
// idle tracker is a no-op returning a zeroed summary.
func (tracker *Tracker) Stop() Summary {
	if tracker.state != StateRunning {
		return Summary{}
	}

	summary := Summary{
		DurationSec:    tracker.elapsedSec,
		DurationMin:    tracker.elapsedSec / 60,
		CaloriesBurned: int(math.Round(tracker.calories)),
		Moves:          tracker.moves,
	}
	tracker.state = StateIdle
	tracker.elapsedSec = 0
	tracker.calories = 0
	tracker.moves = 0
	return summary
}
