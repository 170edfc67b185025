// Package notesv1 описывает JSON-представление REST API заметок.
// Типы используются и сервером, и клиентом.
package notesv1

// Note заметка в ответах API
type Note struct {
	ID      int64  `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

// NoteInput тело запросов POST и PUT.
// Указатели позволяют отличить отсутствующее поле от пустой строки.
type NoteInput struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

// Result ответ на update и delete
type Result struct {
	Result string `json:"result"`
}

// ErrorResponse тело ответа с ошибкой
type ErrorResponse struct {
	Error string `json:"error"`
}

// HealthResponse ответ /healthz
type HealthResponse struct {
	Status string `json:"status"`
}

// Тексты ответов API
const (
	ResultUpdated         = "Updated"
	ResultDeleted         = "Deleted"
	ResultDeletedIfExists = "Deleted if existed"

	ErrTitleContentRequired = "Title and content required"
	ErrNoteNotFound         = "Note not found"
	ErrInternal             = "Internal server error"
)

// StringPtr возвращает указатель на строку, удобно для сборки NoteInput
func StringPtr(s string) *string {
	return &s
}
