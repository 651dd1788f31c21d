package assessment

import (
	"context"
	"sync"
)

// LevelStore persists per-learner inferred levels. Get reports false when
// the learner has no prior inferred level.
type LevelStore interface {
	Get(ctx context.Context, learnerID string) (Level, bool, error)
	Set(ctx context.Context, learnerID string, level Level) error
}

// MemoryLevelStore is an in-memory LevelStore for development and tests.
type MemoryLevelStore struct {
	levels map[string]Level
	mu     sync.RWMutex
}

// NewMemoryLevelStore creates an empty in-memory level store.
func NewMemoryLevelStore() *MemoryLevelStore {
	return &MemoryLevelStore{levels: make(map[string]Level)}
}

func (s *MemoryLevelStore) Get(_ context.Context, learnerID string) (Level, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	level, ok := s.levels[learnerID]
	return level, ok, nil
}

func (s *MemoryLevelStore) Set(_ context.Context, learnerID string, level Level) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.levels[learnerID] = level
	return nil
}
