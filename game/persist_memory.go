package game

import (
	"context"
	"sync"

	"github.com/pkg/errors"
)

// MemoryHandResultPersist keeps hand results in process memory.
type MemoryHandResultPersist struct {
	mu      sync.RWMutex
	results map[string]map[uint32][]byte
}

func NewMemoryHandResultPersist() *MemoryHandResultPersist {
	return &MemoryHandResultPersist{
		results: make(map[string]map[uint32][]byte),
	}
}

func (m *MemoryHandResultPersist) SaveHandResult(ctx context.Context, result *HandResult) error {
	data, err := result.ToJSON()
	if err != nil {
		return errors.Wrapf(err, "could not marshal hand %d of game %s", result.HandNum, result.GameCode)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	hands, ok := m.results[result.GameCode]
	if !ok {
		hands = make(map[uint32][]byte)
		m.results[result.GameCode] = hands
	}
	hands[result.HandNum] = data
	return nil
}

func (m *MemoryHandResultPersist) LoadHandResult(ctx context.Context, gameCode string, handNum uint32) (*HandResult, error) {
	m.mu.RLock()
	data, ok := m.results[gameCode][handNum]
	m.mu.RUnlock()
	if !ok {
		return nil, errors.Errorf("no result for hand %d of game %s", handNum, gameCode)
	}
	return HandResultFromJSON(data)
}

func (m *MemoryHandResultPersist) HandCount(ctx context.Context, gameCode string) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.results[gameCode]), nil
}
