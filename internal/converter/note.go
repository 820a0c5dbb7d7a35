package converter

import (
	"tasknotes-service/internal/model"
	todov1 "tasknotes-service/pkg/api/todo/v1"
)

// NoteToAPI конвертирует domain модель Note в сообщение API
func NoteToAPI(note model.Note) *todov1.Note {
	return &todov1.Note{
		Id:        note.ID.String(),
		Title:     note.Title,
		Text:      note.Text,
		Category:  string(note.Category),
		CreatedAt: note.CreatedAt,
		UpdatedAt: note.UpdatedAt,
	}
}

// NotesToAPI конвертирует слайс заметок; пустой слайс остается пустым, а не nil
func NotesToAPI(notes []model.Note) []*todov1.Note {
	out := make([]*todov1.Note, len(notes))
	for i, note := range notes {
		out[i] = NoteToAPI(note)
	}
	return out
}
