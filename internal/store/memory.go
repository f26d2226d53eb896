// internal/store/memory.go
//
// In-memory snapshot store shared between the console loop (writer) and the
// debug HTTP server (reader).
//
// Characteristics:
//   - Stores game.Snapshot values keyed by session ID, plus the most recent one.
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - Snapshots are values, so readers never observe a session mid-update.
//   - State is lost when the process exits.

package store

import (
	"context"
	"errors"
	"sync"

	"github.com/robalobadob/hangman/internal/game"
)

// ErrNotFound is returned when no snapshot has been published yet.
var ErrNotFound = errors.New("not found")

// Store defines the publishing interface for session snapshots.
type Store interface {
	// Save records the latest snapshot for its session.
	Save(ctx context.Context, snap game.Snapshot) error

	// Get retrieves the latest snapshot for a session ID.
	Get(ctx context.Context, id string) (game.Snapshot, error)

	// Latest retrieves the most recently saved snapshot of any session.
	Latest(ctx context.Context) (game.Snapshot, error)
}

// memory is an in-memory map-based Store implementation.
type memory struct {
	mu     sync.RWMutex             // guards fields below
	snaps  map[string]game.Snapshot // keyed by Snapshot.SessionID
	latest string
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{snaps: make(map[string]game.Snapshot)}
}

// Save adds or replaces the snapshot for its session.
func (m *memory) Save(ctx context.Context, snap game.Snapshot) error {
	if snap.SessionID == "" {
		return errors.New("snapshot has no session id")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.snaps[snap.SessionID] = snap
	m.latest = snap.SessionID
	return nil
}

// Get looks up a snapshot by session ID.
func (m *memory) Get(ctx context.Context, id string) (game.Snapshot, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if s, ok := m.snaps[id]; ok {
		return s, nil
	}
	return game.Snapshot{}, ErrNotFound
}

// Latest returns the most recently saved snapshot.
func (m *memory) Latest(ctx context.Context) (game.Snapshot, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.latest == "" {
		return game.Snapshot{}, ErrNotFound
	}
	return m.snaps[m.latest], nil
}
