package repository

import "context"

const (
	// TasksKey ключ хранилища для коллекции задач
	TasksKey = "tasks"
	// NotesKey ключ хранилища для коллекции заметок
	NotesKey = "notes"
)

// Collection адаптер персистентности для упорядоченной коллекции сущностей.
// Каждая запись полностью заменяет сохраненный снимок.
type Collection[T any] interface {
	// Load возвращает сохраненную коллекцию.
	// Отсутствующий ключ, ошибка чтения или поврежденные данные дают пустую коллекцию.
	Load(ctx context.Context) []T

	// Save сериализует коллекцию целиком и перезаписывает сохраненный снимок
	Save(ctx context.Context, items []T) error
}
