package storage

import (
	"context"
	"errors"
)

// ErrClosed возвращается при обращении к закрытому хранилищу
var ErrClosed = errors.New("storage is closed")

// Storage строковое key-value хранилище.
// Каждая запись полностью перезаписывает предыдущее значение ключа.
type Storage interface {
	// Get возвращает значение ключа; ok == false, если ключ отсутствует
	Get(ctx context.Context, key string) (value string, ok bool, err error)

	// Set записывает значение под ключом, перезаписывая предыдущее
	Set(ctx context.Context, key, value string) error

	// Close освобождает ресурсы хранилища
	Close() error
}
