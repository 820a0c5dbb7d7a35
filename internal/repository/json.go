package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"tasknotes-service/internal/storage"
)

// validator реализуется сущностями, которые умеют проверять свою целостность
type validator interface {
	Validate() error
}

type jsonCollection[T any] struct {
	storage storage.Storage
	key     string
}

// NewJSONCollection создает адаптер, хранящий коллекцию как JSON-массив под ключом key
func NewJSONCollection[T any](s storage.Storage, key string) Collection[T] {
	return &jsonCollection[T]{
		storage: s,
		key:     key,
	}
}

// Load читает снимок коллекции. Поврежденные данные отбрасываются целиком, а не чинятся.
func (c *jsonCollection[T]) Load(ctx context.Context) []T {
	raw, ok, err := c.storage.Get(ctx, c.key)
	if err != nil {
		log.Printf("[repository] failed to read %q, starting empty: %v", c.key, err)
		return []T{}
	}
	if !ok {
		return []T{}
	}

	items, err := decode[T](raw)
	if err != nil {
		log.Printf("[repository] dropping malformed %q: %v", c.key, err)
		return []T{}
	}
	return items
}

// Save пишет коллекцию целиком; nil сохраняется как пустой массив
func (c *jsonCollection[T]) Save(ctx context.Context, items []T) error {
	if items == nil {
		items = []T{}
	}

	b, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to encode %q: %w", c.key, err)
	}

	if err := c.storage.Set(ctx, c.key, string(b)); err != nil {
		return fmt.Errorf("failed to save %q: %w", c.key, err)
	}
	return nil
}

func decode[T any](raw string) ([]T, error) {
	var items []T
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, err
	}
	if items == nil {
		// JSON null
		return []T{}, nil
	}

	for i := range items {
		if v, ok := any(items[i]).(validator); ok {
			if err := v.Validate(); err != nil {
				return nil, fmt.Errorf("item %d: %w", i, err)
			}
		}
	}
	return items, nil
}
