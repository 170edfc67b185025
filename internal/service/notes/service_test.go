package notes

import (
	"context"
	"errors"
	"testing"

	"notes-crud/internal/model"
	"notes-crud/internal/repository"
)

// mockRepository - простой mock репозитория для тестирования
type mockRepository struct {
	notes       map[int64]model.Note
	nextID      int64
	calls       int
	createError error
	listError   error
	deleteError error
}

func newMockRepository() *mockRepository {
	return &mockRepository{
		notes:  make(map[int64]model.Note),
		nextID: 1,
	}
}

func (m *mockRepository) Create(ctx context.Context, note model.Note) (model.Note, error) {
	m.calls++
	if m.createError != nil {
		return model.Note{}, m.createError
	}

	note.ID = m.nextID
	m.nextID++
	m.notes[note.ID] = note
	return note, nil
}

func (m *mockRepository) GetByID(ctx context.Context, id int64) (model.Note, error) {
	m.calls++
	note, exists := m.notes[id]
	if !exists {
		return model.Note{}, repository.ErrNoteNotFound
	}

	return note, nil
}

func (m *mockRepository) List(ctx context.Context) ([]model.Note, error) {
	m.calls++
	if m.listError != nil {
		return nil, m.listError
	}

	notes := make([]model.Note, 0, len(m.notes))
	for _, note := range m.notes {
		notes = append(notes, note)
	}

	return notes, nil
}

func (m *mockRepository) Update(ctx context.Context, note model.Note) (model.Note, error) {
	m.calls++
	if _, exists := m.notes[note.ID]; !exists {
		return model.Note{}, repository.ErrNoteNotFound
	}

	m.notes[note.ID] = note
	return note, nil
}

func (m *mockRepository) Delete(ctx context.Context, id int64) error {
	m.calls++
	if m.deleteError != nil {
		return m.deleteError
	}

	delete(m.notes, id)
	return nil
}

func (m *mockRepository) Ping(ctx context.Context) error { return nil }

func (m *mockRepository) Close() error { return nil }

// Проверяем, что mockRepository реализует интерфейс
var _ repository.NoteRepository = (*mockRepository)(nil)

func TestNoteService_Create_Success(t *testing.T) {
	ctx := context.Background()
	mockRepo := newMockRepository()
	service := NewNoteService(mockRepo)

	note, err := service.Create(ctx, "Test Note", "Test Content")
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if note.ID != 1 {
		t.Errorf("Expected ID 1, got %d", note.ID)
	}

	if note.Title != "Test Note" {
		t.Errorf("Expected title %q, got %q", "Test Note", note.Title)
	}

	if note.Content != "Test Content" {
		t.Errorf("Expected content %q, got %q", "Test Content", note.Content)
	}
}

func TestNoteService_Create_KeepsWhitespace(t *testing.T) {
	ctx := context.Background()
	service := NewNoteService(newMockRepository())

	note, err := service.Create(ctx, " Title ", "  Content  ")
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if note.Title != " Title " || note.Content != "  Content  " {
		t.Errorf("Expected values stored verbatim, got %q / %q", note.Title, note.Content)
	}
}

func TestNoteService_Create_EmptyContent(t *testing.T) {
	ctx := context.Background()
	service := NewNoteService(newMockRepository())

	note, err := service.Create(ctx, "Title", "")
	if err != nil {
		t.Fatalf("Expected no error for empty content, got: %v", err)
	}

	if note.Content != "" {
		t.Errorf("Expected empty content, got %q", note.Content)
	}
}

func TestNoteService_Create_BlankTitle(t *testing.T) {
	ctx := context.Background()
	mockRepo := newMockRepository()
	service := NewNoteService(mockRepo)

	for _, title := range []string{"", "   "} {
		note, err := service.Create(ctx, title, "content")

		if !model.IsValidationError(err) {
			t.Errorf("Expected ValidationError for title %q, got: %v", title, err)
		}

		if !note.IsEmpty() {
			t.Error("Expected empty note on error")
		}
	}

	if mockRepo.calls != 0 {
		t.Errorf("Expected repository to be untouched, got %d calls", mockRepo.calls)
	}
}

func TestNoteService_Create_RepositoryError(t *testing.T) {
	ctx := context.Background()
	mockRepo := newMockRepository()
	mockRepo.createError = errors.New("disk full")
	service := NewNoteService(mockRepo)

	_, err := service.Create(ctx, "Title", "Content")
	if !errors.Is(err, mockRepo.createError) {
		t.Errorf("Expected wrapped repository error, got: %v", err)
	}
}

func TestNoteService_Get_Success(t *testing.T) {
	ctx := context.Background()
	mockRepo := newMockRepository()
	service := NewNoteService(mockRepo)

	mockRepo.notes[7] = model.Note{ID: 7, Title: "Test Note", Content: "Test Content"}

	note, err := service.Get(ctx, 7)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if note.Title != "Test Note" {
		t.Errorf("Expected title %q, got %q", "Test Note", note.Title)
	}
}

func TestNoteService_Get_NotFound(t *testing.T) {
	ctx := context.Background()
	service := NewNoteService(newMockRepository())

	note, err := service.Get(ctx, 404)

	if !errors.Is(err, repository.ErrNoteNotFound) {
		t.Errorf("Expected ErrNoteNotFound, got: %v", err)
	}

	if !note.IsEmpty() {
		t.Error("Expected empty note on error")
	}
}

func TestNoteService_List(t *testing.T) {
	ctx := context.Background()
	mockRepo := newMockRepository()
	service := NewNoteService(mockRepo)

	notes, err := service.List(ctx)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if len(notes) != 0 {
		t.Errorf("Expected 0 notes, got %d", len(notes))
	}

	mockRepo.notes[1] = model.Note{ID: 1, Title: "Note 1"}
	mockRepo.notes[2] = model.Note{ID: 2, Title: "Note 2"}

	notes, err = service.List(ctx)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if len(notes) != 2 {
		t.Errorf("Expected 2 notes, got %d", len(notes))
	}
}

func TestNoteService_List_Error(t *testing.T) {
	ctx := context.Background()
	mockRepo := newMockRepository()
	mockRepo.listError = errors.New("list error")
	service := NewNoteService(mockRepo)

	if _, err := service.List(ctx); !errors.Is(err, mockRepo.listError) {
		t.Errorf("Expected list error, got: %v", err)
	}
}

func TestNoteService_Update_Success(t *testing.T) {
	ctx := context.Background()
	mockRepo := newMockRepository()
	service := NewNoteService(mockRepo)

	mockRepo.notes[3] = model.Note{ID: 3, Title: "Original Title", Content: "Original Content"}

	note, err := service.Update(ctx, 3, "New Title", "")
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if note.Title != "New Title" || note.Content != "" {
		t.Errorf("Unexpected note after update: %+v", note)
	}

	if mockRepo.notes[3].Title != "New Title" {
		t.Errorf("Expected stored title to change, got %q", mockRepo.notes[3].Title)
	}
}

func TestNoteService_Update_NotFound(t *testing.T) {
	ctx := context.Background()
	mockRepo := newMockRepository()
	service := NewNoteService(mockRepo)

	_, err := service.Update(ctx, 9, "Title", "Content")
	if !errors.Is(err, repository.ErrNoteNotFound) {
		t.Errorf("Expected ErrNoteNotFound, got: %v", err)
	}

	if len(mockRepo.notes) != 0 {
		t.Errorf("Expected no side effects, got %d notes", len(mockRepo.notes))
	}
}

func TestNoteService_Update_BlankTitle(t *testing.T) {
	ctx := context.Background()
	mockRepo := newMockRepository()
	service := NewNoteService(mockRepo)

	mockRepo.notes[1] = model.Note{ID: 1, Title: "Keep", Content: "Keep"}

	_, err := service.Update(ctx, 1, " ", "x")
	if !model.IsValidationError(err) {
		t.Errorf("Expected ValidationError, got: %v", err)
	}

	if mockRepo.notes[1].Title != "Keep" {
		t.Error("Expected note to stay unchanged")
	}
}

func TestNoteService_Delete_Idempotent(t *testing.T) {
	ctx := context.Background()
	mockRepo := newMockRepository()
	service := NewNoteService(mockRepo)

	mockRepo.notes[1] = model.Note{ID: 1, Title: "Bye"}

	if err := service.Delete(ctx, 1); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if err := service.Delete(ctx, 1); err != nil {
		t.Fatalf("Expected no error on second delete, got: %v", err)
	}

	if _, ok := mockRepo.notes[1]; ok {
		t.Error("Expected note to be deleted")
	}
}

func TestNoteService_Delete_Error(t *testing.T) {
	ctx := context.Background()
	mockRepo := newMockRepository()
	mockRepo.deleteError = errors.New("locked")
	service := NewNoteService(mockRepo)

	if err := service.Delete(ctx, 1); !errors.Is(err, mockRepo.deleteError) {
		t.Errorf("Expected wrapped delete error, got: %v", err)
	}
}
