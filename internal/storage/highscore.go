package storage

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"go-tank-shmup/internal/config"
)

// HighScoreKey - единственный ключ, который хранит игра.
const HighScoreKey = "high_score"

// ErrStoreClosed возвращается при обращении к закрытому хранилищу.
var ErrStoreClosed = errors.New("high score store is closed")

// HighScoreStore определяет интерфейс хранилища рекорда.
type HighScoreStore interface {
	// Load возвращает сохранённый рекорд. found == false, если рекорда ещё нет.
	Load(ctx context.Context) (score uint32, found bool, err error)

	// Save перезаписывает рекорд. Сравнение со старым значением делает вызывающий.
	Save(ctx context.Context, score uint32) error

	Close() error
}

// OpenHighScoreStore создает хранилище по настройкам.
func OpenHighScoreStore(cfg config.StoreConfig) (HighScoreStore, error) {
	switch cfg.Backend {
	case "memory":
		return NewMemoryHighScoreStore(), nil
	case "badger":
		return NewBadgerHighScoreStore(filepath.Join(cfg.Path, "highscore"), cfg.KeyPrefix)
	case "redis":
		return NewRedisHighScoreStore(&RedisConfig{
			Addr:      cfg.RedisAddr,
			Password:  cfg.RedisPassword,
			DB:        cfg.RedisDB,
			KeyPrefix: cfg.KeyPrefix,
		})
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.Backend)
	}
}
