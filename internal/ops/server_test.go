package ops

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Ottocr/GEMS/internal/orchestrator"
	"github.com/Ottocr/GEMS/pkg/domain"
	mockgemsapi "github.com/Ottocr/GEMS/pkg/gemsapi/mock"
	"github.com/Ottocr/GEMS/pkg/logger"
	"github.com/Ottocr/GEMS/pkg/store"
)

func testServer(t *testing.T) *httptest.Server {
	t.Helper()

	logger.Setup(logger.DevelopmentEnvironment)

	ctrl := gomock.NewController(t)
	orch := orchestrator.New(mockgemsapi.NewMockClient(ctrl), nil)

	srv := New(orch, Options{MetricsPath: "/metrics", WriteTimeout: 0})
	ts := httptest.NewServer(srv.httpServer.Handler)
	t.Cleanup(ts.Close)

	return ts
}

func TestHealthz(t *testing.T) {
	ts := testServer(t)

	res, err := http.Get(ts.URL + "/healthz")
	require.NoError(t, err)
	defer func() { _ = res.Body.Close() }()

	require.Equal(t, http.StatusOK, res.StatusCode)
}

func TestDashboardSnapshotServed(t *testing.T) {
	ts := testServer(t)

	res, err := http.Get(ts.URL + "/snapshots/dashboard")
	require.NoError(t, err)
	defer func() { _ = res.Body.Close() }()

	require.Equal(t, http.StatusOK, res.StatusCode)
	require.Equal(t, "application/json", res.Header.Get("Content-Type"))

	var snap store.Snapshot[domain.DashboardData]
	require.NoError(t, json.NewDecoder(res.Body).Decode(&snap))
	require.Equal(t, store.StatusIdle, snap.Status)
}

func TestPreflightShortCircuits(t *testing.T) {
	ts := testServer(t)

	req, err := http.NewRequest(http.MethodOptions, ts.URL+"/snapshots/risk", nil)
	require.NoError(t, err)

	res, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer func() { _ = res.Body.Close() }()

	require.Equal(t, http.StatusNoContent, res.StatusCode)
	require.Equal(t, "*", res.Header.Get("Access-Control-Allow-Origin"))
}
