package notes

import (
	"context"
	"fmt"

	"notes-crud/internal/model"
	"notes-crud/internal/repository"
	svc "notes-crud/internal/service"
)

var _ svc.NoteService = (*service)(nil)

type service struct {
	noteRepository repository.NoteRepository
}

// NewNoteService создает новый экземпляр сервиса для работы с заметками
func NewNoteService(noteRepository repository.NoteRepository) svc.NoteService {
	return &service{
		noteRepository: noteRepository,
	}
}

// Create создает новую заметку с указанными title и content.
// Значения сохраняются как есть, без обрезки пробелов.
func (s *service) Create(ctx context.Context, title, content string) (model.Note, error) {
	note := model.Note{
		Title:   title,
		Content: content,
	}

	// Валидация до обращения к хранилищу
	if err := note.Validate(); err != nil {
		return model.Note{}, err
	}

	// ID назначается репозиторием
	createdNote, err := s.noteRepository.Create(ctx, note)
	if err != nil {
		return model.Note{}, fmt.Errorf("create note: %w", err)
	}

	return createdNote, nil
}

// Get возвращает заметку по её ID
func (s *service) Get(ctx context.Context, id int64) (model.Note, error) {
	note, err := s.noteRepository.GetByID(ctx, id)
	if err != nil {
		return model.Note{}, fmt.Errorf("get note %d: %w", id, err)
	}

	return note, nil
}

// List возвращает список всех заметок
func (s *service) List(ctx context.Context) ([]model.Note, error) {
	notes, err := s.noteRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}

	return notes, nil
}

// Update заменяет title и content существующей заметки
func (s *service) Update(ctx context.Context, id int64, title, content string) (model.Note, error) {
	note := model.Note{
		ID:      id,
		Title:   title,
		Content: content,
	}

	if err := note.Validate(); err != nil {
		return model.Note{}, err
	}

	// Репозиторий вернет ErrNoteNotFound, ничего не изменив
	updatedNote, err := s.noteRepository.Update(ctx, note)
	if err != nil {
		return model.Note{}, fmt.Errorf("update note %d: %w", id, err)
	}

	return updatedNote, nil
}

// Delete удаляет заметку по ID
func (s *service) Delete(ctx context.Context, id int64) error {
	if err := s.noteRepository.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete note %d: %w", id, err)
	}

	return nil
}
