package memory

import (
	"context"
	"sync"

	"notes-crud/internal/model"
	"notes-crud/internal/repository"
)

var _ repository.NoteRepository = (*repo)(nil)

// repo хранит заметки в слайсе, чтобы List отдавал их в порядке вставки.
// Счетчик ID принадлежит экземпляру, глобального состояния нет.
type repo struct {
	mu     sync.RWMutex
	notes  []model.Note
	nextID int64
}

// NewRepository создает новый экземпляр in-memory репозитория
func NewRepository() repository.NoteRepository {
	return &repo{
		notes:  make([]model.Note, 0),
		nextID: 1,
	}
}

// Create назначает следующий ID и добавляет заметку в конец списка
func (r *repo) Create(ctx context.Context, note model.Note) (model.Note, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	note.ID = r.nextID
	r.nextID++
	r.notes = append(r.notes, note)

	return note, nil
}

// GetByID возвращает заметку по её ID
func (r *repo) GetByID(ctx context.Context, id int64) (model.Note, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if i := r.indexOf(id); i >= 0 {
		return r.notes[i], nil
	}

	return model.Note{}, repository.ErrNoteNotFound
}

// List возвращает копию списка заметок в порядке вставки
func (r *repo) List(ctx context.Context) ([]model.Note, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	notes := make([]model.Note, len(r.notes))
	copy(notes, r.notes)

	return notes, nil
}

// Update заменяет title и content существующей заметки
func (r *repo) Update(ctx context.Context, note model.Note) (model.Note, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(note.ID)
	if i < 0 {
		return model.Note{}, repository.ErrNoteNotFound
	}

	r.notes[i].Title = note.Title
	r.notes[i].Content = note.Content

	return r.notes[i], nil
}

// Delete удаляет заметку по ID, если она существует
func (r *repo) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if i := r.indexOf(id); i >= 0 {
		r.notes = append(r.notes[:i], r.notes[i+1:]...)
	}

	return nil
}

// Ping всегда успешен: in-memory хранилище доступно, пока жив процесс
func (r *repo) Ping(ctx context.Context) error {
	return nil
}

func (r *repo) Close() error {
	return nil
}

// indexOf выполняет линейный поиск, вызывающий должен держать блокировку
func (r *repo) indexOf(id int64) int {
	for i := range r.notes {
		if r.notes[i].ID == id {
			return i
		}
	}
	return -1
}
