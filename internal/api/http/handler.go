package http

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"notes-crud/internal/converter"
	"notes-crud/internal/model"
	"notes-crud/internal/repository"
	svc "notes-crud/internal/service"
	notesv1 "notes-crud/pkg/api/notes/v1"
)

// maxBodyBytes ограничивает размер тела запроса
const maxBodyBytes = 1 << 20

// Options отличает варианты API: префикс маршрутов и текст ответа на удаление
type Options struct {
	Prefix       string // Например, "/notes" или "/api/notes"
	DeleteResult string // "Deleted" или "Deleted if existed"
}

// Handler транслирует HTTP запросы в вызовы NoteService
type Handler struct {
	noteService svc.NoteService
	opts        Options
}

// NewHandler создает новый экземпляр HTTP хэндлера
func NewHandler(noteService svc.NoteService, opts Options) *Handler {
	if opts.Prefix == "" {
		opts.Prefix = "/notes"
	}
	if opts.DeleteResult == "" {
		opts.DeleteResult = notesv1.ResultDeleted
	}

	return &Handler{
		noteService: noteService,
		opts:        opts,
	}
}

// Register регистрирует маршруты заметок на mux
func (h *Handler) Register(mux *http.ServeMux) {
	p := h.opts.Prefix
	mux.HandleFunc("POST "+p, h.CreateNote)
	mux.HandleFunc("GET "+p, h.ListNotes)
	mux.HandleFunc("GET "+p+"/{id}", h.GetNote)
	mux.HandleFunc("PUT "+p+"/{id}", h.UpdateNote)
	mux.HandleFunc("DELETE "+p+"/{id}", h.DeleteNote)

	log.Printf("[HTTP] Registered notes routes under %s", p)
}

// CreateNote создает новую заметку
func (h *Handler) CreateNote(w http.ResponseWriter, r *http.Request) {
	title, content, err := decodeInput(w, r)
	if err != nil {
		writeError(w, err)
		return
	}

	note, err := h.noteService.Create(r.Context(), title, content)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, converter.ModelToAPI(note))
}

// ListNotes возвращает список всех заметок
func (h *Handler) ListNotes(w http.ResponseWriter, r *http.Request) {
	notes, err := h.noteService.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, converter.ModelsToAPI(notes))
}

// GetNote возвращает заметку по ID
func (h *Handler) GetNote(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	note, err := h.noteService.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, converter.ModelToAPI(note))
}

// UpdateNote заменяет title и content заметки.
// Тело проверяется до поиска заметки, как и при создании.
func (h *Handler) UpdateNote(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	title, content, err := decodeInput(w, r)
	if err != nil {
		writeError(w, err)
		return
	}

	if _, err := h.noteService.Update(r.Context(), id, title, content); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, notesv1.Result{Result: notesv1.ResultUpdated})
}

// DeleteNote удаляет заметку. Ответ 200 независимо от того, существовала ли она.
func (h *Handler) DeleteNote(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		// Нечисловой ID не может существовать, удалять нечего
		writeError(w, err)
		return
	}

	if err := h.noteService.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, notesv1.Result{Result: h.opts.DeleteResult})
}

// Pinger проверяет готовность хранилища
type Pinger interface {
	Ping(ctx context.Context) error
}

// Health возвращает хэндлер /healthz
func Health(p Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := p.Ping(r.Context()); err != nil {
			log.Printf("[HTTP] Health check failed: %v", err)
			writeJSON(w, http.StatusServiceUnavailable, notesv1.HealthResponse{Status: "unavailable"})
			return
		}
		writeJSON(w, http.StatusOK, notesv1.HealthResponse{Status: "ok"})
	}
}

// parseID извлекает числовой ID из пути. Нечисловой ID трактуется как отсутствующая заметка.
// Принимается только каноническая запись: цифры без знака и ведущих нулей.
func parseID(r *http.Request) (int64, error) {
	raw := r.PathValue("id")
	if !isCanonicalID(raw) {
		return 0, repository.ErrNoteNotFound
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, repository.ErrNoteNotFound
	}
	return id, nil
}

func isCanonicalID(s string) bool {
	if s == "" || (len(s) > 1 && s[0] == '0') {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// decodeInput проверяет наличие обоих полей в JSON теле запроса
func decodeInput(w http.ResponseWriter, r *http.Request) (string, string, error) {
	var in notesv1.NoteInput

	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		return "", "", model.NewValidationError("body", "invalid JSON body: "+err.Error())
	}

	if in.Title == nil {
		return "", "", model.NewValidationError("title", "title is required")
	}
	if in.Content == nil {
		return "", "", model.NewValidationError("content", "content is required")
	}

	return *in.Title, *in.Content, nil
}

// writeError конвертирует внутренние ошибки в HTTP статусы
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, repository.ErrNoteNotFound):
		writeJSON(w, http.StatusNotFound, notesv1.ErrorResponse{Error: notesv1.ErrNoteNotFound})
	case model.IsValidationError(err):
		writeJSON(w, http.StatusBadRequest, notesv1.ErrorResponse{Error: notesv1.ErrTitleContentRequired})
	default:
		log.Printf("[HTTP] Internal error: %v", err)
		writeJSON(w, http.StatusInternalServerError, notesv1.ErrorResponse{Error: notesv1.ErrInternal})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("[HTTP] Failed to encode response: %v", err)
	}
}
