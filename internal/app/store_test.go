package app

import (
	"context"

	"go-tank-shmup/internal/storage"
)

// countingStore оборачивает настоящее хранилище: считает обращения
// и, если задан err, возвращает его вместо результата.
type countingStore struct {
	storage.HighScoreStore
	err   error
	loads int
	saves int
}

func newCountingStore(inner storage.HighScoreStore) *countingStore {
	return &countingStore{HighScoreStore: inner}
}

func (s *countingStore) Load(ctx context.Context) (uint32, bool, error) {
	s.loads++
	if s.err != nil {
		return 0, false, s.err
	}
	return s.HighScoreStore.Load(ctx)
}

func (s *countingStore) Save(ctx context.Context, score uint32) error {
	s.saves++
	if s.err != nil {
		return s.err
	}
	return s.HighScoreStore.Save(ctx, score)
}
