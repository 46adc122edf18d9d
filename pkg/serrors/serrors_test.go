package serrors_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Ottocr/GEMS/pkg/serrors"
)

func TestErrorMatchesKind(t *testing.T) {
	err := serrors.With(serrors.ErrUnauthorized, "token expired")

	require.ErrorIs(t, err, serrors.ErrUnauthorized)
	require.NotErrorIs(t, err, serrors.ErrNotFound)
	require.Equal(t, "token expired", err.Error())
	require.Equal(t, serrors.ErrUnauthorized, err.Kind())
}

func TestErrorMatchesCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := serrors.Wrap(serrors.ErrUnavailable, cause, "dashboard fetch failed")

	require.ErrorIs(t, err, serrors.ErrUnavailable)
	require.ErrorIs(t, err, cause)
	require.Equal(t, "dashboard fetch failed: connection refused", err.Error())
}

func TestErrorSurvivesFurtherWrapping(t *testing.T) {
	err := fmt.Errorf("could not refresh: %w", serrors.KindOnly(serrors.ErrConflict))

	require.ErrorIs(t, err, serrors.ErrConflict)

	var sem *serrors.Error
	require.ErrorAs(t, err, &sem)
	require.Equal(t, serrors.ErrConflict, sem.Kind())
}

func TestKindOnlyMessage(t *testing.T) {
	require.Equal(t, "CONFLICT", serrors.KindOnly(serrors.ErrConflict).Error())
}
