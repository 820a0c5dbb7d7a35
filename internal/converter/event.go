package converter

import (
	"tasknotes-service/internal/model"
	todov1 "tasknotes-service/pkg/api/todo/v1"
)

// EventToAPI конвертирует событие изменения коллекции
func EventToAPI(event model.Event) *todov1.Event {
	return &todov1.Event{
		Entity: string(event.Entity),
		Kind:   string(event.Kind),
		Id:     event.ID.String(),
		At:     event.At,
	}
}
