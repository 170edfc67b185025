package repository

import (
	"context"
	"errors"

	"notes-crud/internal/model"
)

// ErrNoteNotFound возвращается, когда заметка с указанным ID отсутствует в хранилище
var ErrNoteNotFound = errors.New("note not found")

// NoteRepository интерфейс для работы с заметками в хранилище.
// ID назначается хранилищем, монотонно возрастает и никогда не переиспользуется.
type NoteRepository interface {
	// Create создает новую заметку и возвращает созданную заметку с ID
	Create(ctx context.Context, note model.Note) (model.Note, error)

	// GetByID возвращает заметку по её ID
	GetByID(ctx context.Context, id int64) (model.Note, error)

	// List возвращает список всех заметок
	List(ctx context.Context) ([]model.Note, error)

	// Update заменяет title и content существующей заметки
	Update(ctx context.Context, note model.Note) (model.Note, error)

	// Delete удаляет заметку по ID. Отсутствие заметки не является ошибкой.
	Delete(ctx context.Context, id int64) error

	// Ping проверяет доступность хранилища
	Ping(ctx context.Context) error

	// Close освобождает ресурсы хранилища
	Close() error
}
