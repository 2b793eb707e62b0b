package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tubewatch/pkg/domain"
	"tubewatch/server/mocks"
)

func testServer(t *testing.T, stats StatsProvider) *Server {
	t.Helper()

	cfg := &mocks.ConfigProviderMock{
		GetServerConfigFunc: func() (string, time.Duration) { return ":0", 5 * time.Second },
	}
	quota := &mocks.QuotaProviderMock{
		StateFunc:     func() domain.QuotaState { return domain.QuotaState{Used: 42} },
		BudgetFunc:    func() int64 { return 10000 },
		NextResetFunc: func() time.Time { return time.Date(2025, 6, 2, 7, 0, 0, 0, time.UTC) },
	}
	scheduler := &mocks.SchedulerInfoMock{
		LastCycleFunc: func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) },
	}

	return New(cfg, stats, quota, scheduler, "test", false)
}

func TestServer_StatusHandler(t *testing.T) {
	stats := &mocks.StatsProviderMock{
		StatsFunc: func(ctx context.Context) (int64, int64, error) { return 3, 7, nil },
	}
	srv := testServer(t, stats)

	ts := httptest.NewServer(srv.router)
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/api/v1/status")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var status statusResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&status))

	assert.Equal(t, "ok", status.Status)
	assert.Equal(t, "test", status.Version)
	assert.Equal(t, int64(3), status.Sources)
	assert.Equal(t, int64(7), status.Subscriptions)
	assert.Equal(t, int64(42), status.QuotaUsed)
	assert.Equal(t, int64(10000), status.QuotaBudget)
	assert.True(t, status.QuotaReset.Equal(time.Date(2025, 6, 2, 7, 0, 0, 0, time.UTC)))
	assert.True(t, status.LastCycle.Equal(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)))
}

func TestServer_StatusHandler_StatsError(t *testing.T) {
	stats := &mocks.StatsProviderMock{
		StatsFunc: func(ctx context.Context) (int64, int64, error) { return 0, 0, errors.New("database gone") },
	}
	srv := testServer(t, stats)

	ts := httptest.NewServer(srv.router)
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/api/v1/status")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}

func TestServer_Ping(t *testing.T) {
	stats := &mocks.StatsProviderMock{
		StatsFunc: func(ctx context.Context) (int64, int64, error) { return 0, 0, nil },
	}
	srv := testServer(t, stats)

	ts := httptest.NewServer(srv.router)
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/ping")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestServer_RunShutdown(t *testing.T) {
	stats := &mocks.StatsProviderMock{
		StatsFunc: func(ctx context.Context) (int64, int64, error) { return 0, 0, nil },
	}
	srv := testServer(t, stats)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("server did not shut down in time")
	}
}
