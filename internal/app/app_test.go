package app

import (
	"context"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	t.Setenv("MINES_WIDTH", "5")
	t.Setenv("MINES_HEIGHT", "4")
	t.Setenv("MINES_COUNT", "3")
	t.Setenv("APP_BASE_PATH", "")
	t.Setenv("ALLOWED_ORIGINS", "")
	a, err := New(slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	return a
}

func TestRoutes(t *testing.T) {
	a := newTestApp(t)
	h := a.Handler()

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest("POST", "/game", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"width":5`)
	assert.Contains(t, rec.Body.String(), `"height":4`)
	assert.Equal(t, 1, a.repo.Count())

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest("GET", "/game/1", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest("GET", "/game", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestBasePath(t *testing.T) {
	a := newTestApp(t)
	t.Setenv("APP_BASE_PATH", "/api/")
	h := a.Handler()

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest("POST", "/api/game", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest("POST", "/game", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestNewRejectsBadConfig(t *testing.T) {
	t.Setenv("MINES_WIDTH", "-4")
	_, err := New(slog.Default())
	assert.Error(t, err)

	t.Setenv("MINES_WIDTH", "9")
	t.Setenv("ALLOWED_ORIGINS", "http://localhost:3000,")
	_, err = New(slog.Default())
	assert.Error(t, err)
}

func TestStartStopsWithContext(t *testing.T) {
	a := newTestApp(t)

	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	l.Close()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- a.Start(ctx, addr) }()

	require.Eventually(t, func() bool {
		res, err := http.Post("http://"+addr+"/game", "", nil)
		if err != nil {
			return false
		}
		res.Body.Close()
		return res.StatusCode == http.StatusOK
	}, 5*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}
