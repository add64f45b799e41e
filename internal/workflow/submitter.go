// Package workflow models the asynchronous create/edit flow: a draft is
// submitted, an external commit runs (a latency-bearing round-trip), and
// the flight resolves with the committed task. The caller applies that
// task to the store when the result arrives; keeping the write on the
// caller's own loop means store reads never race a flight. A dismissed
// dialog cancels the flight; a cancelled flight never reaches the store.
package workflow

import (
	"context"
	"fmt"
	"sync"

	"opsboard/internal/apperr"
	"opsboard/internal/model"
)

type State string

const (
	StateIdle      State = "idle"
	StatePending   State = "pending"
	StateCommitted State = "committed"
	StateFailed    State = "failed"
)

// CommitFunc performs the external commit for a draft. It must respect
// ctx cancellation.
type CommitFunc func(ctx context.Context) (model.Task, error)

// Logger receives flight lifecycle events.
type Logger interface {
	Info(category, msg string)
	Error(category, msg string)
}

// Result is the terminal outcome of one flight. On success Task carries
// the committed draft, ready to be written to the store.
type Result struct {
	Task model.Task
	Err  error
}

// Submitter is the single-flight state machine for one draft. A second
// Submit while a flight is pending is a conflict; Cancel discards the
// eventual resolution.
type Submitter struct {
	mu      sync.Mutex
	draftID string
	state   State
	gen     int
	cancel  context.CancelFunc
	logger  Logger
}

func New(draftID string) *Submitter {
	return &Submitter{draftID: draftID, state: StateIdle}
}

// WithLogger attaches a logger for flight events.
func (s *Submitter) WithLogger(logger Logger) *Submitter {
	s.logger = logger
	return s
}

func (s *Submitter) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Submit starts a flight. The returned channel delivers exactly one
// Result: the committed task, the commit error, or ctx.Err() when the
// flight was cancelled mid-commit.
func (s *Submitter) Submit(ctx context.Context, commit CommitFunc) (<-chan Result, error) {
	s.mu.Lock()
	if s.state == StatePending {
		s.mu.Unlock()
		s.logError(fmt.Sprintf("rejected submit for draft %s: flight already pending", s.draftID))
		return nil, apperr.Conflict(s.draftID)
	}
	flightCtx, cancel := context.WithCancel(ctx)
	s.state = StatePending
	s.cancel = cancel
	s.gen++
	gen := s.gen
	s.mu.Unlock()
	s.logInfo(fmt.Sprintf("flight started for draft %s", s.draftID))

	out := make(chan Result, 1)
	go func() {
		task, err := commit(flightCtx)
		out <- s.resolve(gen, flightCtx, task, err)
	}()
	return out, nil
}

// Cancel discards a pending flight. The commit may still run to
// completion in the background but its resolution is dropped.
func (s *Submitter) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StatePending {
		return
	}
	s.cancel()
	s.cancel = nil
	s.gen++
	s.state = StateIdle
	s.logInfo(fmt.Sprintf("flight cancelled for draft %s", s.draftID))
}

func (s *Submitter) resolve(gen int, ctx context.Context, task model.Task, err error) Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.gen != gen {
		// Cancelled while in flight; drop the resolution.
		return Result{Err: context.Canceled}
	}
	s.cancel = nil

	if err == nil {
		err = ctx.Err()
	}
	if err != nil {
		s.state = StateFailed
		s.logError(fmt.Sprintf("flight failed for draft %s: %v", s.draftID, err))
		return Result{Err: err}
	}
	s.state = StateCommitted
	s.logInfo(fmt.Sprintf("flight committed for draft %s: task %s", s.draftID, task.ID))
	return Result{Task: task}
}

func (s *Submitter) logInfo(msg string) {
	if s.logger != nil {
		s.logger.Info("workflow", msg)
	}
}

func (s *Submitter) logError(msg string) {
	if s.logger != nil {
		s.logger.Error("workflow", msg)
	}
}
