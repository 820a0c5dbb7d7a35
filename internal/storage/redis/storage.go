package redis

import (
	"context"
	"errors"
	"fmt"

	"tasknotes-service/internal/storage"

	"github.com/redis/go-redis/v9"
)

// Config параметры подключения к Redis
type Config struct {
	Addr     string
	Password string
	DB       int
	// Prefix добавляется ко всем ключам, например "tasknotes:"
	Prefix string
}

var _ storage.Storage = (*store)(nil)

type store struct {
	client *redis.Client
	prefix string
}

// NewStorage подключается к Redis и проверяет соединение через PING
func NewStorage(ctx context.Context, cfg Config) (storage.Storage, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.Addr, err)
	}
	return New(client, cfg.Prefix), nil
}

// New оборачивает готовый клиент Redis
func New(client *redis.Client, prefix string) storage.Storage {
	return &store{
		client: client,
		prefix: prefix,
	}
}

func (s *store) Get(ctx context.Context, key string) (string, bool, error) {
	value, err := s.client.Get(ctx, s.prefix+key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("redis get %s: %w", key, err)
	}
	return value, true, nil
}

// Set записывает значение без TTL: снимки коллекций живут до следующей записи
func (s *store) Set(ctx context.Context, key, value string) error {
	if err := s.client.Set(ctx, s.prefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

func (s *store) Close() error {
	return s.client.Close()
}
