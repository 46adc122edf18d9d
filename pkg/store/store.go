// Package store implements the fetch-lifecycle state machine backing each
// data domain. A Store holds the last committed snapshot of one domain plus
// its lifecycle status; the orchestrator is its only writer, readers only
// ever see full snapshots.
//
// Lifecycle: idle → pending → (ready | failed) → pending → ...
// A second fetch can never start while one is pending, and a terminal
// transition is only accepted from the fetch cycle that opened it.
package store

import (
	"sync"
	"time"

	"github.com/Ottocr/GEMS/pkg/serrors"
)

// Status is the fetch-lifecycle state of a domain.
type Status string

const (
	// StatusIdle means no fetch has populated the domain yet, or it was
	// cleared.
	StatusIdle Status = "IDLE"
	// StatusPending means a fetch is in flight.
	StatusPending Status = "PENDING"
	// StatusReady means the snapshot holds the result of the last fetch.
	StatusReady Status = "READY"
	// StatusFailed means the last fetch errored; the previous snapshot data
	// is retained for display.
	StatusFailed Status = "FAILED"
)

// Snapshot is the full, immutable view of a domain at one point in time.
type Snapshot[T any] struct {
	// Data is the last successfully committed payload. On failure it keeps
	// the previous value so stale data stays visible.
	Data T `json:"data"`
	// Status is the current lifecycle state.
	Status Status `json:"status"`
	// Err is the display message of the last failed fetch, empty otherwise.
	Err string `json:"error,omitempty"`
	// UpdatedAt is when the snapshot last changed state.
	UpdatedAt time.Time `json:"updatedAt"`
}

// Ticket authorizes the terminal transition of one fetch cycle. It is
// issued by BeginFetch and must be presented to Succeed or Fail; a ticket
// from a superseded or cleared cycle is rejected, which prevents a late
// response from double-committing into a newer context.
type Ticket struct {
	epoch uint64
}

// Store is a mutex-guarded domain store. The zero value is not usable;
// construct with New.
type Store[T any] struct {
	name string

	mu    sync.Mutex
	snap  Snapshot[T]
	epoch uint64
}

// New creates an idle store for the named domain.
func New[T any](name string) *Store[T] {
	return &Store[T]{
		name: name,
		snap: Snapshot[T]{Status: StatusIdle, UpdatedAt: time.Now()},
	}
}

// Name returns the domain name the store was created with.
func (s *Store[T]) Name() string { return s.name }

// BeginFetch transitions the store to pending and returns the ticket for
// this fetch cycle. It is only legal from idle, ready or failed; while a
// fetch is pending it returns ErrConflict so two writers can never race on
// the same snapshot.
func (s *Store[T]) BeginFetch() (Ticket, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.snap.Status == StatusPending {
		return Ticket{}, serrors.With(serrors.ErrConflict,
			"%s: fetch already in flight", s.name)
	}

	s.epoch++
	s.snap.Status = StatusPending
	s.snap.Err = ""
	s.snap.UpdatedAt = time.Now()

	return Ticket{epoch: s.epoch}, nil
}

// Succeed commits data as the new snapshot and transitions to ready. The
// whole payload is replaced; there is no incremental merge. A stale ticket
// leaves the store untouched and returns ErrConflict.
func (s *Store[T]) Succeed(t Ticket, data T) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkTicket(t); err != nil {
		return err
	}

	s.snap.Data = data
	s.snap.Status = StatusReady
	s.snap.Err = ""
	s.snap.UpdatedAt = time.Now()

	return nil
}

// Fail transitions to failed and records the error message for display.
// The previous data is deliberately kept so the UI can show stale results
// next to the error. A stale ticket returns ErrConflict.
func (s *Store[T]) Fail(t Ticket, cause error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkTicket(t); err != nil {
		return err
	}

	s.snap.Status = StatusFailed
	if cause != nil {
		s.snap.Err = cause.Error()
	} else {
		s.snap.Err = "fetch failed"
	}
	s.snap.UpdatedAt = time.Now()

	return nil
}

// Clear resets the store to idle with a zero payload. Used when the viewed
// entity changes and stale data must not leak into the new context; any
// in-flight fetch cycle is invalidated.
func (s *Store[T]) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	var zero T
	s.epoch++
	s.snap = Snapshot[T]{Data: zero, Status: StatusIdle, UpdatedAt: time.Now()}
}

// Snapshot returns a copy of the current snapshot.
func (s *Store[T]) Snapshot() Snapshot[T] {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.snap
}

// Status returns the current lifecycle status.
func (s *Store[T]) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.snap.Status
}

func (s *Store[T]) checkTicket(t Ticket) error {
	if s.snap.Status != StatusPending {
		return serrors.With(serrors.ErrConflict,
			"%s: no fetch in flight", s.name)
	}
	if t.epoch != s.epoch {
		return serrors.With(serrors.ErrConflict,
			"%s: fetch cycle superseded", s.name)
	}

	return nil
}
