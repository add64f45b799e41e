package store

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"opsboard/internal/apperr"
	"opsboard/internal/calendar"
	"opsboard/internal/model"
)

func newTestStore() *Store {
	n := 0
	return New(WithIDFunc(func() string {
		n++
		return fmt.Sprintf("task-%d", n)
	}))
}

func TestCreateAssignsIDAndDefaults(t *testing.T) {
	s := newTestStore()
	task, err := s.Create(context.Background(), Fields{Title: "Audit", Deadline: "2024-06-25"})
	require.NoError(t, err)

	assert.Equal(t, "task-1", task.ID)
	assert.Equal(t, model.StatusToDo, task.Status)
	assert.Equal(t, model.PriorityNormal, task.Priority)
	assert.Equal(t, model.CategorySystem, task.Category)
	assert.Equal(t, calendar.Date{Year: 2024, Month: 6, Day: 25}, task.Deadline)
}

func TestCreateValidation(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()

	_, err := s.Create(ctx, Fields{Title: "  ", Deadline: "2024-06-25"})
	assert.ErrorIs(t, err, apperr.ErrValidation)

	_, err = s.Create(ctx, Fields{Title: "Audit", Deadline: "2024-6-25"})
	assert.ErrorIs(t, err, apperr.ErrValidation)

	_, err = s.Create(ctx, Fields{Title: "Audit", Deadline: "2023-02-29"})
	assert.ErrorIs(t, err, apperr.ErrValidation)

	assert.Equal(t, 0, s.Len(), "failed creates must not write")
}

func TestCreateNeverReusesIDs(t *testing.T) {
	s := New()
	ctx := context.Background()
	a, err := s.Create(ctx, Fields{Title: "one", Deadline: "2024-06-01"})
	require.NoError(t, err)
	require.NoError(t, s.Remove(ctx, a.ID))
	b, err := s.Create(ctx, Fields{Title: "two", Deadline: "2024-06-02"})
	require.NoError(t, err)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestUpdateMergesPatch(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()
	task, err := s.Create(ctx, Fields{Title: "Audit", Deadline: "2024-06-25"})
	require.NoError(t, err)

	status := model.StatusInProgress
	deadline := "2024-07-01"
	flagged := true
	updated, err := s.Update(ctx, task.ID, Patch{Status: &status, Deadline: &deadline, IsFlagged: &flagged})
	require.NoError(t, err)

	assert.Equal(t, task.ID, updated.ID, "id must be stable across updates")
	assert.Equal(t, model.StatusInProgress, updated.Status)
	assert.Equal(t, "2024-07-01", updated.DeadlineKey())
	assert.True(t, updated.IsFlagged)
	assert.Equal(t, "Audit", updated.Title, "unpatched fields keep their values")
}

func TestUpdateValidationLeavesTaskUntouched(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()
	task, err := s.Create(ctx, Fields{Title: "Audit", Deadline: "2024-06-25"})
	require.NoError(t, err)

	empty := ""
	_, err = s.Update(ctx, task.ID, Patch{Title: &empty})
	assert.ErrorIs(t, err, apperr.ErrValidation)

	bad := "2024-02-30"
	_, err = s.Update(ctx, task.ID, Patch{Deadline: &bad})
	assert.ErrorIs(t, err, apperr.ErrValidation)

	got, err := s.Get(task.ID)
	require.NoError(t, err)
	assert.Equal(t, "Audit", got.Title)
	assert.Equal(t, "2024-06-25", got.DeadlineKey())
}

func TestUpdateUnknownID(t *testing.T) {
	s := newTestStore()
	title := "x"
	_, err := s.Update(context.Background(), "missing", Patch{Title: &title})
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestRemoveDoubleDeleteIsError(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()
	task, err := s.Create(ctx, Fields{Title: "Audit", Deadline: "2024-06-25"})
	require.NoError(t, err)

	require.NoError(t, s.Remove(ctx, task.ID))
	err = s.Remove(ctx, task.ID)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestListPreservesInsertionOrder(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()
	for _, title := range []string{"first", "second", "third"} {
		_, err := s.Create(ctx, Fields{Title: title, Deadline: "2024-06-25"})
		require.NoError(t, err)
	}
	_ = mustRemoveSecond(t, s)

	list := s.List()
	require.Len(t, list, 2)
	assert.Equal(t, "first", list[0].Title)
	assert.Equal(t, "third", list[1].Title)
}

func mustRemoveSecond(t *testing.T, s *Store) model.Task {
	t.Helper()
	list := s.List()
	require.Len(t, list, 3)
	require.NoError(t, s.Remove(context.Background(), list[1].ID))
	return list[1]
}

func TestPrepareDoesNotStore(t *testing.T) {
	s := newTestStore()
	task, err := s.Prepare(Fields{Title: "Audit", Deadline: "2024-06-25"})
	require.NoError(t, err)
	assert.Equal(t, "task-1", task.ID)
	assert.Equal(t, 0, s.Len())

	require.NoError(t, s.Put(context.Background(), task))
	assert.Equal(t, 1, s.Len())
}

func TestPutRejectsDuplicateID(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()
	task, err := s.Prepare(Fields{Title: "Audit", Deadline: "2024-06-25"})
	require.NoError(t, err)
	require.NoError(t, s.Put(ctx, task))

	err = s.Put(ctx, task)
	assert.ErrorIs(t, err, apperr.ErrValidation)
}

type recordingRepo struct {
	created []string
	updated []string
	deleted []string
	loaded  []model.Task
}

func (r *recordingRepo) CreateTask(_ context.Context, in model.Task) error {
	r.created = append(r.created, in.ID)
	return nil
}

func (r *recordingRepo) UpdateTask(_ context.Context, in model.Task) error {
	r.updated = append(r.updated, in.ID)
	return nil
}

func (r *recordingRepo) DeleteTask(_ context.Context, id string) error {
	r.deleted = append(r.deleted, id)
	return nil
}

func (r *recordingRepo) ListTasks(_ context.Context) ([]model.Task, error) {
	return r.loaded, nil
}

func TestRepositoryDelegation(t *testing.T) {
	repo := &recordingRepo{}
	s := New(WithRepository(repo))
	ctx := context.Background()

	task, err := s.Create(ctx, Fields{Title: "Audit", Deadline: "2024-06-25"})
	require.NoError(t, err)
	status := model.StatusFinished
	_, err = s.Update(ctx, task.ID, Patch{Status: &status})
	require.NoError(t, err)
	require.NoError(t, s.Remove(ctx, task.ID))

	assert.Equal(t, []string{task.ID}, repo.created)
	assert.Equal(t, []string{task.ID}, repo.updated)
	assert.Equal(t, []string{task.ID}, repo.deleted)
}

type failingRepo struct {
	recordingRepo
	err error
}

func (r *failingRepo) CreateTask(context.Context, model.Task) error { return r.err }
func (r *failingRepo) UpdateTask(context.Context, model.Task) error { return r.err }
func (r *failingRepo) DeleteTask(context.Context, string) error     { return r.err }

func TestFailedPersistCreateLeavesMemoryUntouched(t *testing.T) {
	repo := &failingRepo{err: errors.New("disk full")}
	s := New(WithRepository(repo))

	_, err := s.Create(context.Background(), Fields{Title: "Audit", Deadline: "2024-06-25"})
	require.Error(t, err)
	assert.Equal(t, 0, s.Len(), "a rejected persist must not leave the task in memory")
	assert.Empty(t, s.List())
}

func TestFailedPersistUpdateLeavesTaskUntouched(t *testing.T) {
	repo := &failingRepo{}
	s := New(WithRepository(repo))
	ctx := context.Background()
	task, err := s.Create(ctx, Fields{Title: "Audit", Deadline: "2024-06-25"})
	require.NoError(t, err)

	repo.err = errors.New("disk full")
	status := model.StatusFinished
	_, err = s.Update(ctx, task.ID, Patch{Status: &status})
	require.Error(t, err)

	got, err := s.Get(task.ID)
	require.NoError(t, err)
	assert.Equal(t, model.StatusToDo, got.Status, "memory and repository must not diverge")
}

func TestFailedPersistDeleteKeepsTask(t *testing.T) {
	repo := &failingRepo{}
	s := New(WithRepository(repo))
	ctx := context.Background()
	task, err := s.Create(ctx, Fields{Title: "Audit", Deadline: "2024-06-25"})
	require.NoError(t, err)

	repo.err = errors.New("disk full")
	require.Error(t, s.Remove(ctx, task.ID))
	assert.Equal(t, 1, s.Len(), "a failed delete must keep the task visible")
}

func TestLoadReplacesCollection(t *testing.T) {
	repo := &recordingRepo{loaded: []model.Task{
		{ID: "a", Title: "persisted", Status: model.StatusToDo, Priority: model.PriorityNormal,
			Category: model.CategorySystem, Deadline: calendar.Date{Year: 2024, Month: 6, Day: 10}},
	}}
	s := New(WithRepository(repo))
	require.NoError(t, s.Load(context.Background()))

	list := s.List()
	require.Len(t, list, 1)
	assert.Equal(t, "persisted", list[0].Title)
}
