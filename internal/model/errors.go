package model

import "errors"

// ValidationError возвращается, когда входные данные не прошли проверку
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError создает ошибку валидации для указанного поля
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// IsValidationError проверяет, является ли ошибка (или любая в цепочке) ошибкой валидации
func IsValidationError(err error) bool {
	var vErr *ValidationError
	return errors.As(err, &vErr)
}
