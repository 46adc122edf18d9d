package store_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Ottocr/GEMS/pkg/serrors"
	"github.com/Ottocr/GEMS/pkg/store"
)

type payload struct {
	Countries []string
}

func TestLifecycle_Success(t *testing.T) {
	s := store.New[payload]("dashboard")
	require.Equal(t, store.StatusIdle, s.Status())

	ticket, err := s.BeginFetch()
	require.NoError(t, err)
	require.Equal(t, store.StatusPending, s.Status())

	require.NoError(t, s.Succeed(ticket, payload{Countries: []string{"NLD"}}))

	snap := s.Snapshot()
	require.Equal(t, store.StatusReady, snap.Status)
	require.Empty(t, snap.Err)
	require.Equal(t, []string{"NLD"}, snap.Data.Countries)
}

func TestLifecycle_FailureKeepsStaleData(t *testing.T) {
	s := store.New[payload]("dashboard")

	ticket, err := s.BeginFetch()
	require.NoError(t, err)
	require.NoError(t, s.Succeed(ticket, payload{Countries: []string{"NLD", "IRQ"}}))

	ticket, err = s.BeginFetch()
	require.NoError(t, err)
	require.NoError(t, s.Fail(ticket, errors.New("backend unreachable")))

	snap := s.Snapshot()
	require.Equal(t, store.StatusFailed, snap.Status)
	require.Equal(t, "backend unreachable", snap.Err)
	// Stale data stays visible next to the error.
	require.Equal(t, []string{"NLD", "IRQ"}, snap.Data.Countries)

	// A failed store can start a new fetch, which clears the error.
	ticket, err = s.BeginFetch()
	require.NoError(t, err)
	require.Empty(t, s.Snapshot().Err)
	require.NoError(t, s.Succeed(ticket, payload{}))
}

func TestBeginFetch_RejectedWhilePending(t *testing.T) {
	s := store.New[payload]("riskManagement")

	first, err := s.BeginFetch()
	require.NoError(t, err)

	_, err = s.BeginFetch()
	require.ErrorIs(t, err, serrors.ErrConflict)

	// The rejected attempt must not have disturbed the in-flight cycle.
	require.NoError(t, s.Succeed(first, payload{}))
	require.Equal(t, store.StatusReady, s.Status())
}

func TestTerminalTransition_RequiresPending(t *testing.T) {
	s := store.New[payload]("assetDetail")

	ticket, err := s.BeginFetch()
	require.NoError(t, err)
	require.NoError(t, s.Succeed(ticket, payload{}))

	// Double commit of the same cycle is a protocol violation.
	require.ErrorIs(t, s.Succeed(ticket, payload{}), serrors.ErrConflict)
	require.ErrorIs(t, s.Fail(ticket, errors.New("late")), serrors.ErrConflict)
}

func TestClear_InvalidatesInFlightTicket(t *testing.T) {
	s := store.New[payload]("riskManagement")

	ticket, err := s.BeginFetch()
	require.NoError(t, err)

	// Selection changed while the fetch was in flight.
	s.Clear()
	require.Equal(t, store.StatusIdle, s.Status())

	// The late response must not leak into the new context.
	err = s.Succeed(ticket, payload{Countries: []string{"stale"}})
	require.ErrorIs(t, err, serrors.ErrConflict)
	require.Empty(t, s.Snapshot().Data.Countries)
}

func TestClear_ResetsPayload(t *testing.T) {
	s := store.New[payload]("dashboard")

	ticket, err := s.BeginFetch()
	require.NoError(t, err)
	require.NoError(t, s.Succeed(ticket, payload{Countries: []string{"NLD"}}))

	s.Clear()

	snap := s.Snapshot()
	require.Equal(t, store.StatusIdle, snap.Status)
	require.Empty(t, snap.Data.Countries)
	require.Empty(t, snap.Err)
}
