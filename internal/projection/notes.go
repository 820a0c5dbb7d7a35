package projection

import (
	"strings"

	"tasknotes-service/internal/model"
)

// CategoryAll значение фильтра, пропускающее все категории
const CategoryAll = "all"

// NoteQuery параметры представления заметок.
// Пустая Category означает все категории, пустой Search не фильтрует.
type NoteQuery struct {
	Category model.Category
	Search   string
}

// ParseNoteCategory разбирает фильтр категории; "" и "all" означают все категории
func ParseNoteCategory(s string) (model.Category, error) {
	trimmed := strings.ToLower(strings.TrimSpace(s))
	if trimmed == "" || trimmed == CategoryAll {
		return "", nil
	}
	return model.ParseCategory(trimmed)
}

// Notes возвращает заметки, подходящие под категорию И поисковую строку.
// Поиск регистронезависимый, по вхождению в заголовок ИЛИ текст. Порядок вставки сохраняется.
func Notes(notes []model.Note, q NoteQuery) []model.Note {
	search := strings.ToLower(strings.TrimSpace(q.Search))

	out := make([]model.Note, 0, len(notes))
	for _, n := range notes {
		if q.Category != "" && n.Category != q.Category {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(n.Title), search) &&
			!strings.Contains(strings.ToLower(n.Text), search) {
			continue
		}
		out = append(out, n)
	}
	return out
}
