package model

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// UntitledNote заголовок по умолчанию для заметки без заголовка
const UntitledNote = "Untitled Note"

// Category категория заметки
type Category string

const (
	CategoryPersonal  Category = "personal"
	CategoryWork      Category = "work"
	CategoryIdeas     Category = "ideas"
	CategoryTasks     Category = "tasks"
	CategoryImportant Category = "important"
)

// Categories перечисляет все категории в порядке отображения
var Categories = []Category{CategoryPersonal, CategoryWork, CategoryIdeas, CategoryTasks, CategoryImportant}

// ParseCategory разбирает категорию. Пустая строка означает personal.
func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	if c == "" {
		return CategoryPersonal, nil
	}
	if !c.Valid() {
		return "", NewValidationError("category", fmt.Sprintf("unknown category %q", s))
	}
	return c, nil
}

// Valid проверяет, что категория входит в перечисление
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Note заметка (доменная модель)
type Note struct {
	ID        ID        `json:"id"`
	Title     string    `json:"title"`
	Text      string    `json:"text"`
	Category  Category  `json:"category"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Validate проверяет целостность заметки, прочитанной из хранилища.
// Категория может отсутствовать в старых данных.
func (n Note) Validate() error {
	if n.ID == "" {
		return errors.New("note id cannot be empty")
	}
	if strings.TrimSpace(n.Text) == "" {
		return fmt.Errorf("note %s: text cannot be empty", n.ID)
	}
	if n.Category != "" && !n.Category.Valid() {
		return fmt.Errorf("note %s: invalid category %q", n.ID, n.Category)
	}
	return nil
}

// NoteTitle возвращает обрезанный заголовок или UntitledNote для пустого
func NoteTitle(title string) string {
	trimmed := strings.TrimSpace(title)
	if trimmed == "" {
		return UntitledNote
	}
	return trimmed
}

// ValidateNoteText проверяет, что текст не пустой после обрезки пробелов.
// Сам текст возвращается как есть.
func ValidateNoteText(text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", NewValidationError("text", "text cannot be empty")
	}
	return text, nil
}
