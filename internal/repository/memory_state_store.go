package repository

import (
	"context"
	"fmt"
	"sync"

	"github.com/puzpuzpuz/xsync/v4"
)

// MemoryStateStore is a process-local StateStore used for tests and for
// running without MySQL or Redis.  Values are stored encoded so callers
// never share memory with the store.  Each team's values form one
// immutable map that writers replace as a whole.
type MemoryStateStore struct {
	mu    sync.Mutex // serialises writers
	teams *xsync.Map[string, map[string][]byte]
}

func NewMemoryStateStore() *MemoryStateStore {
	return &MemoryStateStore{teams: xsync.NewMap[string, map[string][]byte]()}
}

func (s *MemoryStateStore) Load(_ context.Context, teamID, key string, dst any) (bool, error) {
	snap, _ := s.teams.Load(teamID)
	b, ok := snap[key]
	if !ok {
		return false, nil
	}
	return true, decode(b, dst)
}

func (s *MemoryStateStore) LoadAll(_ context.Context, teamID string, dst map[string]any) error {
	snap, _ := s.teams.Load(teamID)
	for key, d := range dst {
		b, ok := snap[key]
		if !ok {
			continue
		}
		if err := decode(b, d); err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
	}
	return nil
}

func (s *MemoryStateStore) Save(ctx context.Context, teamID, key string, v any) error {
	return s.SaveAll(ctx, teamID, map[string]any{key: v})
}

func (s *MemoryStateStore) SaveAll(_ context.Context, teamID string, values map[string]any) error {
	_, encoded, err := encodeAll(values)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	old, _ := s.teams.Load(teamID)
	next := make(map[string][]byte, len(old)+len(encoded))
	for k, b := range old {
		next[k] = b
	}
	for k, b := range encoded {
		next[k] = b
	}
	s.teams.Store(teamID, next)
	return nil
}

func (s *MemoryStateStore) Delete(_ context.Context, teamID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.teams.Delete(teamID)
	return nil
}
