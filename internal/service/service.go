package service

import (
	"context"

	"tasknotes-service/internal/model"
)

// TaskService владелец упорядоченной коллекции задач.
// Каждая успешная мутация сохраняет коллекцию целиком.
// Мутации по несуществующему id ничего не делают и возвращают applied == false.
type TaskService interface {
	// Load заменяет коллекцию в памяти сохраненной (пустой при отсутствии или повреждении)
	Load(ctx context.Context)

	// List возвращает копию коллекции в порядке добавления
	List(ctx context.Context) []model.Task

	// Add создает задачу в статусе Pending и добавляет ее в конец коллекции
	Add(ctx context.Context, title, description, priority string) (model.Task, error)

	// Update заменяет title, description и priority; статус и даты не меняются
	Update(ctx context.Context, id model.ID, title, description, priority string) (task model.Task, applied bool, err error)

	// ToggleStatus переключает Pending <-> Completed
	ToggleStatus(ctx context.Context, id model.ID) (task model.Task, applied bool, err error)

	// Delete удаляет задачу по id
	Delete(ctx context.Context, id model.ID) (applied bool, err error)

	// ClearCompleted удаляет все выполненные задачи и возвращает их количество
	ClearCompleted(ctx context.Context) (removed int, err error)
}

// NoteService владелец упорядоченной коллекции заметок и единственной сессии редактирования
type NoteService interface {
	// Load заменяет коллекцию в памяти сохраненной и закрывает сессию редактирования
	Load(ctx context.Context)

	// List возвращает копию коллекции в порядке добавления
	List(ctx context.Context) []model.Note

	// Add создает заметку и добавляет ее в конец коллекции
	Add(ctx context.Context, title, text, category string) (model.Note, error)

	// StartEdit открывает сессию редактирования заметки, заменяя предыдущую
	StartEdit(ctx context.Context, id model.ID) (note model.Note, applied bool)

	// SaveEdit сохраняет title и text заметки и обновляет UpdatedAt
	SaveEdit(ctx context.Context, id model.ID, title, text string) (note model.Note, applied bool, err error)

	// CancelEdit закрывает сессию редактирования без изменений
	CancelEdit(ctx context.Context)

	// EditingID возвращает id редактируемой заметки или пустую строку
	EditingID(ctx context.Context) model.ID

	// Snapshot возвращает копию коллекции и id редактируемой заметки,
	// прочитанные под одной блокировкой
	Snapshot(ctx context.Context) (notes []model.Note, editing model.ID)

	// Delete удаляет заметку по id
	Delete(ctx context.Context, id model.ID) (applied bool, err error)
}
