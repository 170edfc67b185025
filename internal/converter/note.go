package converter

import (
	"notes-crud/internal/model"
	notesv1 "notes-crud/pkg/api/notes/v1"
)

// ModelToAPI конвертирует domain модель Note в представление API
func ModelToAPI(note model.Note) notesv1.Note {
	return notesv1.Note{
		ID:      note.ID,
		Title:   note.Title,
		Content: note.Content,
	}
}

// ModelsToAPI конвертирует слайс domain моделей.
// Всегда возвращает не-nil слайс, чтобы пустой список сериализовался как [].
func ModelsToAPI(notes []model.Note) []notesv1.Note {
	apiNotes := make([]notesv1.Note, len(notes))
	for i, note := range notes {
		apiNotes[i] = ModelToAPI(note)
	}

	return apiNotes
}
