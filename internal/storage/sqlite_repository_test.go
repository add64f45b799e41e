package storage

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"opsboard/internal/apperr"
	"opsboard/internal/calendar"
	"opsboard/internal/model"
)

func newTestRepo(t *testing.T) *SQLiteRepository {
	t.Helper()
	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, MigrateUp(db))
	repo, err := NewSQLiteRepository(db)
	require.NoError(t, err)
	return repo
}

func sampleTask(id string) model.Task {
	return model.Task{
		ID:       id,
		Title:    "Audit stock levels",
		Status:   model.StatusToDo,
		Priority: model.PriorityHigh,
		Category: model.CategoryInventory,
		Deadline: calendar.Date{Year: 2024, Month: 6, Day: 25},
		Assignee: "Dana",
	}
}

func TestCreateAndGetRoundTrip(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	in := sampleTask("task-1")
	in.IsFlagged = true
	require.NoError(t, repo.CreateTask(ctx, in))

	got, err := repo.GetTask(ctx, "task-1")
	require.NoError(t, err)
	assert.Equal(t, in, got)
	assert.Equal(t, "2024-06-25", got.DeadlineKey())
}

func TestGetTaskNotFound(t *testing.T) {
	repo := newTestRepo(t)
	_, err := repo.GetTask(context.Background(), "missing")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestUpdateTask(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	require.NoError(t, repo.CreateTask(ctx, sampleTask("task-1")))

	updated := sampleTask("task-1")
	updated.Status = model.StatusFinished
	updated.Deadline = calendar.Date{Year: 2024, Month: 7, Day: 1}
	require.NoError(t, repo.UpdateTask(ctx, updated))

	got, err := repo.GetTask(ctx, "task-1")
	require.NoError(t, err)
	assert.Equal(t, model.StatusFinished, got.Status)
	assert.Equal(t, "2024-07-01", got.DeadlineKey())
}

func TestUpdateUnknownTask(t *testing.T) {
	repo := newTestRepo(t)
	err := repo.UpdateTask(context.Background(), sampleTask("missing"))
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestDeleteTask(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	require.NoError(t, repo.CreateTask(ctx, sampleTask("task-1")))

	require.NoError(t, repo.DeleteTask(ctx, "task-1"))
	err := repo.DeleteTask(ctx, "task-1")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestListTasksInsertionOrder(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	for _, id := range []string{"c", "a", "b"} {
		task := sampleTask(id)
		task.Title = id
		require.NoError(t, repo.CreateTask(ctx, task))
	}

	list, err := repo.ListTasks(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "c", list[0].ID)
	assert.Equal(t, "a", list[1].ID)
	assert.Equal(t, "b", list[2].ID)
}

func TestMigrateUpRecordsVersion(t *testing.T) {
	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, MigrateUp(db))

	var count int
	err = db.QueryRow(`SELECT COUNT(*) FROM schema_migrations WHERE version = '0001_create_tasks'`).Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestMigrateUpIsIdempotent(t *testing.T) {
	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, MigrateUp(db))
	require.NoError(t, MigrateUp(db))

	var count int
	err = db.QueryRow(`SELECT COUNT(*) FROM schema_migrations`).Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 1, count, "a second run must not re-apply or re-record")
}

func TestMigrateDown(t *testing.T) {
	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, MigrateUp(db))
	require.NoError(t, MigrateDown(db))

	var count int
	err = db.QueryRow(`SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = 'tasks'`).Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	err = db.QueryRow(`SELECT COUNT(*) FROM schema_migrations`).Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 0, count, "rollback clears the version record")

	require.NoError(t, MigrateUp(db), "the schema can be rebuilt after a rollback")
}
