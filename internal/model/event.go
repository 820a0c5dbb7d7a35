package model

import "time"

// Entity тип сущности, к которой относится событие
type Entity string

const (
	EntityTask Entity = "task"
	EntityNote Entity = "note"
)

// EventKind вид изменения коллекции
type EventKind string

const (
	EventCreated EventKind = "created"
	EventUpdated EventKind = "updated"
	EventDeleted EventKind = "deleted"
	// EventCleared массовое удаление выполненных задач
	EventCleared EventKind = "cleared"
)

// Event событие об изменении коллекции задач или заметок
type Event struct {
	Entity Entity    `json:"entity"`
	Kind   EventKind `json:"kind"`
	ID     ID        `json:"id,omitempty"`
	At     time.Time `json:"at"`
}
