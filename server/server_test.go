package server

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"feedwatch/server/mocks"
)

func TestNew(t *testing.T) {
	srv := New(testConfig(), &mocks.DatabaseMock{}, &mocks.SchedulerMock{}, "test", false)
	require.NotNil(t, srv)
	assert.NotNil(t, srv.router)
}

func TestServer_PingMiddleware(t *testing.T) {
	srv := New(testConfig(), &mocks.DatabaseMock{}, &mocks.SchedulerMock{}, "test", false)

	req := httptest.NewRequest("GET", "/ping", http.NoBody)
	w := httptest.NewRecorder()
	srv.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "pong", w.Body.String())
}

func TestServer_AppInfoHeader(t *testing.T) {
	srv := New(testConfig(), &mocks.DatabaseMock{}, &mocks.SchedulerMock{}, "1.2.3", false)

	req := httptest.NewRequest("GET", "/api/v1/status", http.NoBody)
	w := httptest.NewRecorder()
	srv.router.ServeHTTP(w, req)

	assert.Equal(t, "feedwatch", w.Header().Get("App-Name"))
	assert.Equal(t, "1.2.3", w.Header().Get("App-Version"))
}

func TestServer_RunAndShutdown(t *testing.T) {
	// grab a free port
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	require.NoError(t, ln.Close())

	cfg := &mocks.ConfigProviderMock{
		GetServerConfigFunc: func() (string, time.Duration) {
			return addr, 5 * time.Second
		},
	}
	srv := New(cfg, &mocks.DatabaseMock{}, &mocks.SchedulerMock{}, "test", false)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	// wait for the server to come up
	require.Eventually(t, func() bool {
		resp, err := http.Get(fmt.Sprintf("http://%s/ping", addr))
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		body, _ := io.ReadAll(resp.Body)
		return resp.StatusCode == http.StatusOK && string(body) == "pong"
	}, 2*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not shut down in time")
	}
}
