package memory

import (
	"context"
	"sync"

	"tasknotes-service/internal/storage"
)

var _ storage.Storage = (*store)(nil)

type store struct {
	mu     sync.RWMutex
	values map[string]string
	closed bool
}

// NewStorage создает in-memory хранилище на основе map.
// Данные не переживают перезапуск процесса.
func NewStorage() storage.Storage {
	return &store{
		values: make(map[string]string),
	}
}

func (s *store) Get(ctx context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return "", false, storage.ErrClosed
	}

	value, ok := s.values[key]
	return value, ok, nil
}

func (s *store) Set(ctx context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return storage.ErrClosed
	}

	s.values[key] = value
	return nil
}

func (s *store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	return nil
}
