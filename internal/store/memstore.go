package store

import (
	"sync"

	"github.com/zyadmagdy11/Quoridor-Game/internal/game"
	"github.com/zyadmagdy11/Quoridor-Game/internal/room"
)

type MemoryStore struct {
	mu        sync.RWMutex
	rooms     map[string]*room.Room
	snapshots map[string]game.Snapshot
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		rooms:     map[string]*room.Room{},
		snapshots: map[string]game.Snapshot{},
	}
}

func (m *MemoryStore) GetRoom(code string) (*room.Room, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	r, ok := m.rooms[code]
	return r, ok
}

func (m *MemoryStore) SaveRoom(r *room.Room) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rooms[r.Code] = r
}

// GetSnapshot returns the saved game for a room. Boards copy what they
// restore, so handing out the stored value is safe.
func (m *MemoryStore) GetSnapshot(code string) (game.Snapshot, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.snapshots[code]
	return s, ok
}

func (m *MemoryStore) SaveSnapshot(code string, s game.Snapshot) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.snapshots[code] = s
}
