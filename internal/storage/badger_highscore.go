package storage

import (
	"context"
	"encoding/binary"
	"fmt"
	"sync"

	"github.com/dgraph-io/badger/v3"

	"go-tank-shmup/internal/logging"
)

// BadgerHighScoreStore хранит рекорд в BadgerDB как 4 байта big-endian.
type BadgerHighScoreStore struct {
	db      *badger.DB
	key     []byte
	mutex   sync.RWMutex
	isReady bool
}

// NewBadgerHighScoreStore открывает базу в каталоге dbPath.
func NewBadgerHighScoreStore(dbPath, keyPrefix string) (*BadgerHighScoreStore, error) {
	opts := badger.DefaultOptions(dbPath)
	opts.Logger = nil // Отключаем логирование BadgerDB
	return openBadger(opts, keyPrefix)
}

// NewInMemoryBadgerHighScoreStore открывает BadgerDB без диска (для тестов).
func NewInMemoryBadgerHighScoreStore(keyPrefix string) (*BadgerHighScoreStore, error) {
	opts := badger.DefaultOptions("").WithInMemory(true)
	opts.Logger = nil
	return openBadger(opts, keyPrefix)
}

func openBadger(opts badger.Options, keyPrefix string) (*BadgerHighScoreStore, error) {
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("не удалось открыть BadgerDB: %w", err)
	}
	logging.LogDebug("badger high score store opened at %q", opts.Dir)
	return &BadgerHighScoreStore{
		db:      db,
		key:     []byte(keyPrefix + HighScoreKey),
		isReady: true,
	}, nil
}

func (s *BadgerHighScoreStore) Load(ctx context.Context) (uint32, bool, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	if !s.isReady {
		return 0, false, ErrStoreClosed
	}
	if err := ctx.Err(); err != nil {
		return 0, false, err
	}

	var data []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(s.key)
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			data = append([]byte{}, val...)
			return nil
		})
	})
	if err == badger.ErrKeyNotFound {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("ошибка чтения из BadgerDB: %w", err)
	}
	if len(data) != 4 {
		return 0, false, fmt.Errorf("повреждённое значение %s: %d байт", HighScoreKey, len(data))
	}
	return binary.BigEndian.Uint32(data), true, nil
}

func (s *BadgerHighScoreStore) Save(ctx context.Context, score uint32) error {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	if !s.isReady {
		return ErrStoreClosed
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	buf := make([]byte, 4)
	binary.BigEndian.PutUint32(buf, score)
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(s.key, buf)
	})
	if err != nil {
		return fmt.Errorf("ошибка сохранения в BadgerDB: %w", err)
	}
	return nil
}

// Close закрывает хранилище. Повторный вызов ничего не делает.
func (s *BadgerHighScoreStore) Close() error {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	if !s.isReady {
		return nil
	}
	s.isReady = false
	return s.db.Close()
}
