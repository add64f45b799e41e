// Package storage provides the durable SQLite backend for the task
// store. It honors the same contract and error kinds as the in-memory
// collection; deadlines are persisted in canonical YYYY-MM-DD form.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"opsboard/internal/apperr"
	"opsboard/internal/calendar"
	"opsboard/internal/model"
)

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) (*SQLiteRepository, error) {
	if db == nil {
		return nil, errors.New("storage: nil db")
	}
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}
	return &SQLiteRepository{db: db}, nil
}

func OpenSQLite(path string) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	repo, err := NewSQLiteRepository(db)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return repo, nil
}

func (r *SQLiteRepository) DB() *sql.DB {
	return r.db
}

func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

func (r *SQLiteRepository) CreateTask(ctx context.Context, in model.Task) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO tasks (id, title, description, status, priority, category, deadline, assignee, is_flagged)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		in.ID, in.Title, in.Description, string(in.Status), string(in.Priority), string(in.Category),
		in.DeadlineKey(), in.Assignee, boolInt(in.IsFlagged),
	)
	return err
}

func (r *SQLiteRepository) GetTask(ctx context.Context, id string) (model.Task, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, title, description, status, priority, category, deadline, assignee, is_flagged
		FROM tasks WHERE id = ?`, id)
	task, err := scanTask(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Task{}, apperr.NotFound(id)
		}
		return model.Task{}, err
	}
	return task, nil
}

func (r *SQLiteRepository) UpdateTask(ctx context.Context, in model.Task) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE tasks
		SET title = ?, description = ?, status = ?, priority = ?, category = ?, deadline = ?, assignee = ?, is_flagged = ?
		WHERE id = ?`,
		in.Title, in.Description, string(in.Status), string(in.Priority), string(in.Category),
		in.DeadlineKey(), in.Assignee, boolInt(in.IsFlagged), in.ID,
	)
	if err != nil {
		return err
	}
	return checkRowsAffected(res, in.ID)
}

func (r *SQLiteRepository) DeleteTask(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return checkRowsAffected(res, id)
}

// ListTasks returns all tasks in insertion order.
func (r *SQLiteRepository) ListTasks(ctx context.Context) ([]model.Task, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, title, description, status, priority, category, deadline, assignee, is_flagged
		FROM tasks ORDER BY rowid ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.Task, 0)
	for rows.Next() {
		task, scanErr := scanTask(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		out = append(out, task)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(row rowScanner) (model.Task, error) {
	var (
		task     model.Task
		status   string
		priority string
		category string
		deadline string
		flagged  int
	)
	if err := row.Scan(&task.ID, &task.Title, &task.Description, &status, &priority, &category,
		&deadline, &task.Assignee, &flagged); err != nil {
		return model.Task{}, err
	}
	date, ok := calendar.ParseKey(deadline)
	if !ok {
		return model.Task{}, fmt.Errorf("storage: corrupt deadline %q for task %s", deadline, task.ID)
	}
	task.Status = model.Status(status)
	task.Priority = model.Priority(priority)
	task.Category = model.Category(category)
	task.Deadline = date
	task.IsFlagged = flagged != 0
	return task, nil
}

func boolInt(v bool) int {
	if v {
		return 1
	}
	return 0
}

func checkRowsAffected(res sql.Result, id string) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return apperr.NotFound(id)
	}
	return nil
}
