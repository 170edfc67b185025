package model

import (
	"strings"
)

// Note представляет заметку (доменная модель)
type Note struct {
	ID      int64  // Идентификатор, назначается хранилищем
	Title   string // Заголовок заметки
	Content string // Содержание заметки (может быть пустым)
}

// Validate проверяет валидность заметки
func (n *Note) Validate() error {
	if strings.TrimSpace(n.Title) == "" {
		return NewValidationError("title", "title cannot be empty")
	}
	return nil
}

// IsEmpty проверяет, пуста ли заметка
func (n *Note) IsEmpty() bool {
	return n.ID == 0 && n.Title == "" && n.Content == ""
}
