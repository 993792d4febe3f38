package storage

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"

	"go-tank-shmup/internal/logging"
)

// RedisConfig содержит настройки подключения к Redis
type RedisConfig struct {
	Addr      string // Адрес Redis сервера
	Password  string // Пароль (пустой если не требуется)
	DB        int    // Номер базы данных
	KeyPrefix string // Префикс для ключей
}

// RedisHighScoreStore хранит рекорд в Redis десятичной строкой,
// чтобы несколько машин делили один рекорд.
type RedisHighScoreStore struct {
	client *redis.Client
	key    string
}

// NewRedisHighScoreStore подключается к Redis и проверяет соединение.
func NewRedisHighScoreStore(cfg *RedisConfig) (*RedisHighScoreStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	logging.LogInfo("connected to Redis at %s", cfg.Addr)
	return &RedisHighScoreStore{client: client, key: cfg.KeyPrefix + HighScoreKey}, nil
}

func (s *RedisHighScoreStore) Load(ctx context.Context) (uint32, bool, error) {
	data, err := s.client.Get(ctx, s.key).Result()
	if err == redis.Nil {
		return 0, false, nil
	} else if err != nil {
		return 0, false, fmt.Errorf("failed to get %s: %w", HighScoreKey, err)
	}
	v, err := strconv.ParseUint(data, 10, 32)
	if err != nil {
		return 0, false, fmt.Errorf("invalid %s value %q: %w", HighScoreKey, data, err)
	}
	return uint32(v), true, nil
}

func (s *RedisHighScoreStore) Save(ctx context.Context, score uint32) error {
	if err := s.client.Set(ctx, s.key, strconv.FormatUint(uint64(score), 10), 0).Err(); err != nil {
		return fmt.Errorf("failed to set %s: %w", HighScoreKey, err)
	}
	return nil
}

func (s *RedisHighScoreStore) Close() error {
	return s.client.Close()
}
