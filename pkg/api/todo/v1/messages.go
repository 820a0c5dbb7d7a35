// Package todov1 описывает gRPC API сервиса задач и заметок todo.v1.TodoService.
// Сообщения передаются кодеком JSON (content-subtype "json").
package todov1

import (
	"errors"
	"strings"
	"time"
)

// FieldViolation ошибка валидации одного поля запроса
type FieldViolation struct {
	Field       string
	Description string
}

func (e *FieldViolation) Error() string {
	return e.Field + ": " + e.Description
}

func requireID(id string) error {
	if strings.TrimSpace(id) == "" {
		return &FieldViolation{Field: "id", Description: "id is required"}
	}
	return nil
}

// Task задача
type Task struct {
	Id          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Priority    string     `json:"priority"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"createdAt"`
	CompletedAt *time.Time `json:"completedAt"`
}

// TaskStats счетчики задач
type TaskStats struct {
	Total     int32 `json:"total"`
	Pending   int32 `json:"pending"`
	Completed int32 `json:"completed"`
}

// Note заметка
type Note struct {
	Id        string    `json:"id"`
	Title     string    `json:"title"`
	Text      string    `json:"text"`
	Category  string    `json:"category"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Event событие об изменении коллекции
type Event struct {
	Entity string    `json:"entity"`
	Kind   string    `json:"kind"`
	Id     string    `json:"id,omitempty"`
	At     time.Time `json:"at"`
}

type AddTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
}

type AddTaskResponse struct {
	Task *Task `json:"task"`
}

type UpdateTaskRequest struct {
	Id          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
}

func (x *UpdateTaskRequest) Validate() error {
	return requireID(x.Id)
}

type UpdateTaskResponse struct {
	Task    *Task `json:"task,omitempty"`
	Applied bool  `json:"applied"`
}

type ToggleTaskStatusRequest struct {
	Id string `json:"id"`
}

func (x *ToggleTaskStatusRequest) Validate() error {
	return requireID(x.Id)
}

type ToggleTaskStatusResponse struct {
	Task    *Task `json:"task,omitempty"`
	Applied bool  `json:"applied"`
}

type DeleteTaskRequest struct {
	Id string `json:"id"`
}

func (x *DeleteTaskRequest) Validate() error {
	return requireID(x.Id)
}

type DeleteTaskResponse struct {
	Applied bool `json:"applied"`
}

type ClearCompletedTasksRequest struct{}

type ClearCompletedTasksResponse struct {
	Removed int32 `json:"removed"`
}

type ListTasksRequest struct {
	Filter string `json:"filter"`
	Sort   string `json:"sort"`
}

type ListTasksResponse struct {
	Tasks []*Task    `json:"tasks"`
	Stats *TaskStats `json:"stats"`
}

type AddNoteRequest struct {
	Title    string `json:"title"`
	Text     string `json:"text"`
	Category string `json:"category"`
}

type AddNoteResponse struct {
	Note *Note `json:"note"`
}

type StartNoteEditRequest struct {
	Id string `json:"id"`
}

func (x *StartNoteEditRequest) Validate() error {
	return requireID(x.Id)
}

type StartNoteEditResponse struct {
	Note    *Note `json:"note,omitempty"`
	Applied bool  `json:"applied"`
}

type SaveNoteEditRequest struct {
	Id    string `json:"id"`
	Title string `json:"title"`
	Text  string `json:"text"`
}

func (x *SaveNoteEditRequest) Validate() error {
	return requireID(x.Id)
}

type SaveNoteEditResponse struct {
	Note    *Note `json:"note,omitempty"`
	Applied bool  `json:"applied"`
}

type CancelNoteEditRequest struct{}

type CancelNoteEditResponse struct{}

type DeleteNoteRequest struct {
	Id string `json:"id"`
}

func (x *DeleteNoteRequest) Validate() error {
	return requireID(x.Id)
}

type DeleteNoteResponse struct {
	Applied bool `json:"applied"`
}

type ListNotesRequest struct {
	Category string `json:"category"`
	Search   string `json:"search"`
}

type ListNotesResponse struct {
	Notes     []*Note `json:"notes"`
	EditingId string  `json:"editingId,omitempty"`
}

// SubscribeRequest подписка на события; пустой Entity означает все сущности
type SubscribeRequest struct {
	Entity string `json:"entity,omitempty"`
}

func (x *SubscribeRequest) Validate() error {
	switch x.Entity {
	case "", "task", "note":
		return nil
	}
	return &FieldViolation{Field: "entity", Description: "entity must be task or note"}
}

// IsFieldViolation проверяет, что err вызвана невалидным полем запроса
func IsFieldViolation(err error) bool {
	var fv *FieldViolation
	return errors.As(err, &fv)
}
