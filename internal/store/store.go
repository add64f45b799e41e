// Package store owns the canonical in-memory task collection. All
// mutations go through Create/Update/Remove; views are recomputed from
// List snapshots and never patched incrementally.
package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"opsboard/internal/apperr"
	"opsboard/internal/calendar"
	"opsboard/internal/model"
)

// Repository is an optional durable backend honoring the same contract
// and error kinds as the store itself.
type Repository interface {
	CreateTask(ctx context.Context, in model.Task) error
	UpdateTask(ctx context.Context, in model.Task) error
	DeleteTask(ctx context.Context, id string) error
	ListTasks(ctx context.Context) ([]model.Task, error)
}

// Logger receives store mutation events.
type Logger interface {
	Info(category, msg string)
	Error(category, msg string)
}

// Fields carries the caller-supplied attributes for a new task. Deadline
// crosses the boundary in canonical YYYY-MM-DD form.
type Fields struct {
	Title       string
	Description string
	Status      model.Status
	Priority    model.Priority
	Category    model.Category
	Deadline    string
	Assignee    string
	IsFlagged   bool
}

// Patch describes a partial update; nil fields are left untouched.
type Patch struct {
	Title       *string
	Description *string
	Status      *model.Status
	Priority    *model.Priority
	Category    *model.Category
	Deadline    *string
	Assignee    *string
	IsFlagged   *bool
}

// Store keeps tasks in insertion order for deterministic rendering.
type Store struct {
	tasks  map[string]model.Task
	order  []string
	repo   Repository
	logger Logger
	newID  func() string
}

type Option func(*Store)

// WithRepository attaches a durable backend. Writes are mirrored to it
// after the in-memory mutation succeeds.
func WithRepository(repo Repository) Option {
	return func(s *Store) { s.repo = repo }
}

func WithLogger(logger Logger) Option {
	return func(s *Store) { s.logger = logger }
}

// WithIDFunc overrides id generation, for tests.
func WithIDFunc(fn func() string) Option {
	return func(s *Store) { s.newID = fn }
}

func New(opts ...Option) *Store {
	s := &Store{
		tasks: make(map[string]model.Task),
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load replaces the in-memory collection with the repository contents.
func (s *Store) Load(ctx context.Context) error {
	if s.repo == nil {
		return nil
	}
	tasks, err := s.repo.ListTasks(ctx)
	if err != nil {
		return fmt.Errorf("load tasks: %w", err)
	}
	s.tasks = make(map[string]model.Task, len(tasks))
	s.order = s.order[:0]
	for _, t := range tasks {
		s.tasks[t.ID] = t
		s.order = append(s.order, t.ID)
	}
	return nil
}

// Prepare validates the fields and materializes a task with a fresh id
// without storing it. Status, priority and category default to
// ToDo/Normal/System when unset so that quick-add flows only need a
// title and deadline.
func (s *Store) Prepare(fields Fields) (model.Task, error) {
	deadline, err := parseDeadline(fields.Deadline)
	if err != nil {
		return model.Task{}, err
	}
	task := model.Task{
		ID:          s.newID(),
		Title:       strings.TrimSpace(fields.Title),
		Description: fields.Description,
		Status:      fields.Status,
		Priority:    fields.Priority,
		Category:    fields.Category,
		Deadline:    deadline,
		Assignee:    fields.Assignee,
		IsFlagged:   fields.IsFlagged,
	}
	if task.Status == "" {
		task.Status = model.StatusToDo
	}
	if task.Priority == "" {
		task.Priority = model.PriorityNormal
	}
	if task.Category == "" {
		task.Category = model.CategorySystem
	}
	if err := task.Validate(); err != nil {
		return model.Task{}, apperr.Validation("%v", err)
	}
	return task, nil
}

// Put inserts a previously prepared task. The repository write happens
// first so a rejected persist leaves the in-memory collection untouched.
func (s *Store) Put(ctx context.Context, task model.Task) error {
	if err := task.Validate(); err != nil {
		return apperr.Validation("%v", err)
	}
	if _, exists := s.tasks[task.ID]; exists {
		return apperr.Validation("task id %s already exists", task.ID)
	}
	if s.repo != nil {
		if err := s.repo.CreateTask(ctx, task); err != nil {
			s.logError("store", fmt.Sprintf("persist create %s: %v", task.ID, err))
			return err
		}
	}
	s.tasks[task.ID] = task
	s.order = append(s.order, task.ID)
	s.logInfo("store", fmt.Sprintf("created %s %q", task.ID, task.Title))
	return nil
}

// Create validates, materializes and stores a task in one step.
func (s *Store) Create(ctx context.Context, fields Fields) (model.Task, error) {
	task, err := s.Prepare(fields)
	if err != nil {
		return model.Task{}, err
	}
	if err := s.Put(ctx, task); err != nil {
		return model.Task{}, err
	}
	return task, nil
}

// Update merges the patch into the existing task. The id is immutable.
func (s *Store) Update(ctx context.Context, id string, patch Patch) (model.Task, error) {
	task, ok := s.tasks[id]
	if !ok {
		return model.Task{}, apperr.NotFound(id)
	}

	if patch.Title != nil {
		task.Title = strings.TrimSpace(*patch.Title)
	}
	if patch.Description != nil {
		task.Description = *patch.Description
	}
	if patch.Status != nil {
		task.Status = *patch.Status
	}
	if patch.Priority != nil {
		task.Priority = *patch.Priority
	}
	if patch.Category != nil {
		task.Category = *patch.Category
	}
	if patch.Deadline != nil {
		deadline, err := parseDeadline(*patch.Deadline)
		if err != nil {
			return model.Task{}, err
		}
		task.Deadline = deadline
	}
	if patch.Assignee != nil {
		task.Assignee = *patch.Assignee
	}
	if patch.IsFlagged != nil {
		task.IsFlagged = *patch.IsFlagged
	}
	if err := task.Validate(); err != nil {
		return model.Task{}, apperr.Validation("%v", err)
	}

	if s.repo != nil {
		if err := s.repo.UpdateTask(ctx, task); err != nil {
			s.logError("store", fmt.Sprintf("persist update %s: %v", id, err))
			return model.Task{}, err
		}
	}
	s.tasks[id] = task
	s.logInfo("store", fmt.Sprintf("updated %s", id))
	return task, nil
}

// Remove deletes the task. Deleting an unknown or already-deleted id is
// an error so callers can detect double deletes.
func (s *Store) Remove(ctx context.Context, id string) error {
	if _, ok := s.tasks[id]; !ok {
		return apperr.NotFound(id)
	}
	if s.repo != nil {
		if err := s.repo.DeleteTask(ctx, id); err != nil {
			s.logError("store", fmt.Sprintf("persist delete %s: %v", id, err))
			return err
		}
	}
	delete(s.tasks, id)
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	s.logInfo("store", fmt.Sprintf("removed %s", id))
	return nil
}

// Get returns a single task by id.
func (s *Store) Get(id string) (model.Task, error) {
	task, ok := s.tasks[id]
	if !ok {
		return model.Task{}, apperr.NotFound(id)
	}
	return task, nil
}

// List returns a snapshot of all tasks in insertion order.
func (s *Store) List() []model.Task {
	out := make([]model.Task, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.tasks[id])
	}
	return out
}

// Len returns the number of stored tasks.
func (s *Store) Len() int {
	return len(s.tasks)
}

func parseDeadline(raw string) (calendar.Date, error) {
	d, ok := calendar.ParseKey(strings.TrimSpace(raw))
	if !ok {
		return calendar.Date{}, apperr.Validation("deadline %q is not a valid YYYY-MM-DD date", raw)
	}
	return d, nil
}

func (s *Store) logInfo(category, msg string) {
	if s.logger != nil {
		s.logger.Info(category, msg)
	}
}

func (s *Store) logError(category, msg string) {
	if s.logger != nil {
		s.logger.Error(category, msg)
	}
}
