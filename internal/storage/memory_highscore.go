package storage

import (
	"context"
	"sync"
)

// MemoryHighScoreStore хранит рекорд в памяти процесса. Используется в тестах
// и при backend: memory.
type MemoryHighScoreStore struct {
	mu     sync.RWMutex
	score  uint32
	found  bool
	closed bool
}

func NewMemoryHighScoreStore() *MemoryHighScoreStore {
	return &MemoryHighScoreStore{}
}

// NewMemoryHighScoreStoreWith создает хранилище с уже записанным рекордом.
func NewMemoryHighScoreStoreWith(score uint32) *MemoryHighScoreStore {
	return &MemoryHighScoreStore{score: score, found: true}
}

func (m *MemoryHighScoreStore) Load(ctx context.Context) (uint32, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.closed {
		return 0, false, ErrStoreClosed
	}
	return m.score, m.found, nil
}

func (m *MemoryHighScoreStore) Save(ctx context.Context, score uint32) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return ErrStoreClosed
	}
	m.score = score
	m.found = true
	return nil
}

func (m *MemoryHighScoreStore) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}
