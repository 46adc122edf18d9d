package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestGetBeforeSetupReturnsNopLogger(t *testing.T) {
	prev := defaultLogger
	defaultLogger = nil
	t.Cleanup(func() { defaultLogger = prev })

	ctx := context.Background()
	require.NotNil(t, Get(ctx))

	// WithFields derives from the default logger; without the fallback this
	// dereferences nil inside zap.
	require.NotPanics(t, func() {
		Info(WithFields(ctx, zap.String("requestId", "test")), "access log")
	})
}
