package model

import "errors"

// ValidationError описывает отклоненный ввод пользователя.
// Операция, вернувшая ValidationError, не изменяет состояние.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// NewValidationError создает ошибку валидации для поля
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// IsValidation проверяет, является ли err (или обернутая в нее ошибка) ошибкой валидации
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
