// Package client реализует HTTP клиент REST API заметок.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	notesv1 "notes-crud/pkg/api/notes/v1"
)

var (
	// ErrNotFound сервер ответил 404
	ErrNotFound = errors.New("note not found")
	// ErrValidation сервер ответил 400
	ErrValidation = errors.New("validation failed")
)

// StatusError ответ сервера с кодом не 2xx
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("server responded %d: %s", e.Code, e.Message)
}

// Is позволяет сравнивать StatusError с ErrNotFound и ErrValidation через errors.Is
func (e *StatusError) Is(target error) bool {
	switch target {
	case ErrNotFound:
		return e.Code == http.StatusNotFound
	case ErrValidation:
		return e.Code == http.StatusBadRequest
	}
	return false
}

// Client клиент REST API заметок
type Client struct {
	baseURL    string
	prefix     string
	httpClient *http.Client
}

// Option настраивает Client
type Option func(*Client)

// WithHTTPClient подменяет http.Client (например, в тестах)
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// New создает клиент для сервера baseURL (например, "http://localhost:8080")
// с префиксом маршрутов prefix ("/notes" или "/api/notes")
func New(baseURL, prefix string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		prefix:     "/" + strings.Trim(prefix, "/"),
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Create создает заметку
func (c *Client) Create(ctx context.Context, title, content string) (notesv1.Note, error) {
	var note notesv1.Note
	err := c.do(ctx, http.MethodPost, c.prefix, input(title, content), http.StatusCreated, &note)
	return note, err
}

// List возвращает все заметки
func (c *Client) List(ctx context.Context) ([]notesv1.Note, error) {
	var notes []notesv1.Note
	if err := c.do(ctx, http.MethodGet, c.prefix, nil, http.StatusOK, &notes); err != nil {
		return nil, err
	}
	return notes, nil
}

// Get возвращает заметку по ID
func (c *Client) Get(ctx context.Context, id int64) (notesv1.Note, error) {
	var note notesv1.Note
	err := c.do(ctx, http.MethodGet, c.notePath(id), nil, http.StatusOK, &note)
	return note, err
}

// Update заменяет title и content, возвращает текст результата
func (c *Client) Update(ctx context.Context, id int64, title, content string) (string, error) {
	var res notesv1.Result
	err := c.do(ctx, http.MethodPut, c.notePath(id), input(title, content), http.StatusOK, &res)
	return res.Result, err
}

// Delete удаляет заметку, возвращает текст результата
func (c *Client) Delete(ctx context.Context, id int64) (string, error) {
	var res notesv1.Result
	err := c.do(ctx, http.MethodDelete, c.notePath(id), nil, http.StatusOK, &res)
	return res.Result, err
}

func (c *Client) notePath(id int64) string {
	return c.prefix + "/" + strconv.FormatInt(id, 10)
}

func input(title, content string) *notesv1.NoteInput {
	return &notesv1.NoteInput{
		Title:   notesv1.StringPtr(title),
		Content: notesv1.StringPtr(content),
	}
}

// do выполняет запрос и декодирует ответ в out при ожидаемом статусе
func (c *Client) do(ctx context.Context, method, path string, body any, wantStatus int, out any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("json.Marshal: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("http.NewRequest: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != wantStatus {
		var apiErr notesv1.ErrorResponse
		_ = json.NewDecoder(resp.Body).Decode(&apiErr)
		if apiErr.Error == "" {
			apiErr.Error = http.StatusText(resp.StatusCode)
		}
		return &StatusError{Code: resp.StatusCode, Message: apiErr.Error}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
