package model

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	// TitleMaxLength максимальная длина заголовка задачи (в символах)
	TitleMaxLength = 100
	// DescriptionMaxLength максимальная длина описания задачи (в символах)
	DescriptionMaxLength = 500
)

// Priority приоритет задачи
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// ParsePriority разбирает приоритет. Пустая строка означает medium.
func ParsePriority(s string) (Priority, error) {
	p := Priority(strings.ToLower(strings.TrimSpace(s)))
	if p == "" {
		return PriorityMedium, nil
	}
	if !p.Valid() {
		return "", NewValidationError("priority", fmt.Sprintf("unknown priority %q", s))
	}
	return p, nil
}

// Valid проверяет, что приоритет входит в перечисление
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Rank возвращает вес приоритета для сортировки (high=3, medium=2, low=1)
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	}
	return 0
}

// Status статус задачи
type Status string

const (
	StatusPending   Status = "Pending"
	StatusCompleted Status = "Completed"
)

// Task задача (доменная модель). JSON-теги задают формат хранения.
type Task struct {
	ID          ID         `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Priority    Priority   `json:"priority"`
	Status      Status     `json:"status"`
	CreatedAt   time.Time  `json:"createdAt"`
	CompletedAt *time.Time `json:"completedAt"`
}

// IsCompleted возвращает true для выполненной задачи
func (t Task) IsCompleted() bool {
	return t.Status == StatusCompleted
}

// Toggled возвращает копию задачи с переключенным статусом.
// completedAt выставляется в now при переходе в Completed и сбрасывается при возврате в Pending.
func (t Task) Toggled(now time.Time) Task {
	if t.IsCompleted() {
		t.Status = StatusPending
		t.CompletedAt = nil
		return t
	}
	t.Status = StatusCompleted
	t.CompletedAt = &now
	return t
}

// Validate проверяет целостность задачи, прочитанной из хранилища
func (t Task) Validate() error {
	if t.ID == "" {
		return errors.New("task id cannot be empty")
	}
	if strings.TrimSpace(t.Title) == "" {
		return errors.New("task title cannot be empty")
	}
	if !t.Priority.Valid() {
		return fmt.Errorf("task %s: invalid priority %q", t.ID, t.Priority)
	}
	switch t.Status {
	case StatusPending:
		if t.CompletedAt != nil {
			return fmt.Errorf("task %s: pending task has completedAt", t.ID)
		}
	case StatusCompleted:
		if t.CompletedAt == nil {
			return fmt.Errorf("task %s: completed task has no completedAt", t.ID)
		}
	default:
		return fmt.Errorf("task %s: invalid status %q", t.ID, t.Status)
	}
	return nil
}

// ValidateTaskTitle проверяет заголовок новой задачи и возвращает его без пробелов по краям.
// Лимит длины считается по введенной строке до обрезки.
func ValidateTaskTitle(title string) (string, error) {
	trimmed := strings.TrimSpace(title)
	if trimmed == "" {
		return "", NewValidationError("title", "title is required")
	}
	if utf8.RuneCountInString(title) > TitleMaxLength {
		return "", NewValidationError("title", fmt.Sprintf("title must be at most %d characters", TitleMaxLength))
	}
	return trimmed, nil
}

// ValidateTaskDescription проверяет описание новой задачи; лимит считается до обрезки
func ValidateTaskDescription(description string) (string, error) {
	if utf8.RuneCountInString(description) > DescriptionMaxLength {
		return "", NewValidationError("description", fmt.Sprintf("description must be at most %d characters", DescriptionMaxLength))
	}
	return strings.TrimSpace(description), nil
}
