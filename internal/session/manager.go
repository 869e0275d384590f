package session

import (
	"context"
	"errors"
	"sync"
	"time"
)

var ErrSessionActive = errors.New("session already running")

// Manager owns at most one live session per user. All tracker access goes
// through its mutex, so the ticker goroutines and HTTP handlers never race
// on the counters.
type Manager struct {
	mu       sync.Mutex
	interval time.Duration
	sessions map[uint]*activeSession
}

type activeSession struct {
	tracker *Tracker
	cancel  context.CancelFunc
}

func NewManager() *Manager {
	return NewManagerWithInterval(time.Second)
}

// NewManagerWithInterval exists so tests can keep the ticker from firing.
func NewManagerWithInterval(interval time.Duration) *Manager {
	return &Manager{
		interval: interval,
		sessions: make(map[uint]*activeSession),
	}
}

// Start begins a session for the user and launches its one-second ticker.
// A user can only have one running session at a time.
func (manager *Manager) Start(userID uint, weightKg float64, intensity string, now time.Time) error {
	manager.mu.Lock()
	defer manager.mu.Unlock()

	if _, running := manager.sessions[userID]; running {
		return ErrSessionActive
	}

	tracker := NewTracker()
	if err := tracker.Start(weightKg, intensity, now); err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	manager.sessions[userID] = &activeSession{tracker: tracker, cancel: cancel}
	go manager.run(ctx, tracker)
	return nil
}

func (manager *Manager) run(ctx context.Context, tracker *Tracker) {
	ticker := time.NewTicker(manager.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			manager.mu.Lock()
			tracker.Tick()
			manager.mu.Unlock()
		}
	}
}

// Snapshot returns the live counters, or an idle snapshot when the user has
// no running session.
func (manager *Manager) Snapshot(userID uint) Snapshot {
	manager.mu.Lock()
	defer manager.mu.Unlock()

	active, running := manager.sessions[userID]
	if !running {
		return Snapshot{State: StateIdle}
	}
	return active.tracker.Snapshot()
}

// Stop cancels the ticker and returns the final aggregate. The second
// return reports whether a session was actually running; stopping a user
// with no session is a no-op returning a zeroed summary.
func (manager *Manager) Stop(userID uint) (Summary, bool) {
	manager.mu.Lock()
	defer manager.mu.Unlock()

	active, running := manager.sessions[userID]
	if !running {
		return Summary{}, false
	}

	active.cancel()
	delete(manager.sessions, userID)
	return active.tracker.Stop(), true
}

// Close cancels every running session. Used on server shutdown.
func (manager *Manager) Close() {
	manager.mu.Lock()
	defer manager.mu.Unlock()

	for userID, active := range manager.sessions {
		active.cancel()
		active.tracker.Stop()
		delete(manager.sessions, userID)
	}
}
