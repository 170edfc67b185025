// Package sqlite реализует персистентное хранилище заметок поверх SQLite.
// Используется ncruces/go-sqlite3/driver, который предоставляет интерфейс database/sql.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"

	"notes-crud/internal/model"
	"notes-crud/internal/repository"
)

// AUTOINCREMENT гарантирует, что ID удаленных заметок не будут выданы повторно
const schema = `
CREATE TABLE IF NOT EXISTS notes (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    title TEXT NOT NULL,
    content TEXT NOT NULL
);
`

var _ repository.NoteRepository = (*repo)(nil)

type repo struct {
	db *sql.DB
}

// NewRepository открывает базу по DSN и создает таблицу notes, если её нет.
// DSN ":memory:" подходит для тестов, путь к файлу для постоянного хранения.
func NewRepository(ctx context.Context, dsn string) (repository.NoteRepository, error) {
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("sql.Open: %w", err)
	}

	// SQLite допускает одного писателя; для ":memory:" каждое соединение это отдельная база
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &repo{db: db}, nil
}

// withConn выдает операции отдельное соединение из пула и возвращает его по завершении
func (r *repo) withConn(ctx context.Context, fn func(conn *sql.Conn) error) error {
	conn, err := r.db.Conn(ctx)
	if err != nil {
		return fmt.Errorf("db.Conn: %w", err)
	}
	defer conn.Close()

	return fn(conn)
}

// withTx выполняет запись в отдельной транзакции на выделенном соединении
func (r *repo) withTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	return r.withConn(ctx, func(conn *sql.Conn) error {
		tx, err := conn.BeginTx(ctx, nil)
		if err != nil {
			return fmt.Errorf("conn.BeginTx: %w", err)
		}

		if err := fn(tx); err != nil {
			_ = tx.Rollback()
			return err
		}

		if err := tx.Commit(); err != nil {
			return fmt.Errorf("tx.Commit: %w", err)
		}
		return nil
	})
}

// Create вставляет заметку и возвращает её с назначенным ID
func (r *repo) Create(ctx context.Context, note model.Note) (model.Note, error) {
	err := r.withTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx,
			`INSERT INTO notes (title, content) VALUES (?, ?)`,
			note.Title, note.Content)
		if err != nil {
			return fmt.Errorf("insert note: %w", err)
		}

		id, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("last insert id: %w", err)
		}
		note.ID = id
		return nil
	})
	if err != nil {
		return model.Note{}, err
	}

	return note, nil
}

// GetByID возвращает заметку по первичному ключу
func (r *repo) GetByID(ctx context.Context, id int64) (model.Note, error) {
	var note model.Note
	err := r.withConn(ctx, func(conn *sql.Conn) error {
		return conn.QueryRowContext(ctx,
			`SELECT id, title, content FROM notes WHERE id = ?`, id,
		).Scan(&note.ID, &note.Title, &note.Content)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return model.Note{}, repository.ErrNoteNotFound
	}
	if err != nil {
		return model.Note{}, fmt.Errorf("select note %d: %w", id, err)
	}

	return note, nil
}

// List возвращает все заметки в порядке первичного ключа
func (r *repo) List(ctx context.Context) ([]model.Note, error) {
	notes := make([]model.Note, 0)
	err := r.withConn(ctx, func(conn *sql.Conn) error {
		rows, err := conn.QueryContext(ctx, `SELECT id, title, content FROM notes ORDER BY id`)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var note model.Note
			if err := rows.Scan(&note.ID, &note.Title, &note.Content); err != nil {
				return err
			}
			notes = append(notes, note)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}

	return notes, nil
}

// Update заменяет title и content. Если строка не найдена, транзакция откатывается.
func (r *repo) Update(ctx context.Context, note model.Note) (model.Note, error) {
	err := r.withTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx,
			`UPDATE notes SET title = ?, content = ? WHERE id = ?`,
			note.Title, note.Content, note.ID)
		if err != nil {
			return fmt.Errorf("update note %d: %w", note.ID, err)
		}

		affected, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("rows affected: %w", err)
		}
		if affected == 0 {
			return repository.ErrNoteNotFound
		}
		return nil
	})
	if err != nil {
		return model.Note{}, err
	}

	return note, nil
}

// Delete удаляет заметку. Удаление несуществующей заметки не считается ошибкой.
func (r *repo) Delete(ctx context.Context, id int64) error {
	return r.withTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM notes WHERE id = ?`, id); err != nil {
			return fmt.Errorf("delete note %d: %w", id, err)
		}
		return nil
	})
}

// Ping проверяет соединение с базой
func (r *repo) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

// Close закрывает пул соединений
func (r *repo) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}
