package model

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// ID непрозрачный идентификатор задачи или заметки
type ID string

// NewID генерирует новый идентификатор (UUIDv7, упорядочен по времени создания)
func NewID() ID {
	id, err := uuid.NewV7()
	if err != nil {
		return ID(uuid.NewString())
	}
	return ID(id.String())
}

// String возвращает строковое представление идентификатора
func (id ID) String() string {
	return string(id)
}

// UnmarshalJSON принимает как строку, так и число.
// Старые данные хранили id заметок как миллисекундный timestamp.
func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("id must be a string or a number: %w", err)
	}
	*id = ID(n.String())
	return nil
}
