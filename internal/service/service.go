package service

import (
	"context"

	"notes-crud/internal/model"
)

// NoteService интерфейс для бизнес-логики работы с заметками
type NoteService interface {
	// Create создает новую заметку с указанными title и content
	Create(ctx context.Context, title, content string) (model.Note, error)

	// Get возвращает заметку по её ID
	Get(ctx context.Context, id int64) (model.Note, error)

	// List возвращает список всех заметок
	List(ctx context.Context) ([]model.Note, error)

	// Update заменяет title и content заметки с указанным ID
	Update(ctx context.Context, id int64, title, content string) (model.Note, error)

	// Delete удаляет заметку по ID (идемпотентно)
	Delete(ctx context.Context, id int64) error
}
