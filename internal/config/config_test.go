package config

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancomm/minesweeper/internal/game"
)

func TestPort(t *testing.T) {
	t.Setenv("APP_PORT", "")
	assert.Equal(t, ":8080", Port())
	t.Setenv("APP_PORT", ":9000")
	assert.Equal(t, ":9000", Port())
}

func TestDevelopment(t *testing.T) {
	t.Setenv("DEVELOPMENT", "0")
	assert.False(t, Development())
	t.Setenv("DEVELOPMENT", "1")
	assert.True(t, Development())
}

func TestGameParams(t *testing.T) {
	t.Setenv("MINES_WIDTH", "")
	t.Setenv("MINES_HEIGHT", "")
	t.Setenv("MINES_COUNT", "")
	p, err := GameParams()
	require.NoError(t, err)
	assert.Equal(t, game.DefaultParams(), p)

	t.Setenv("MINES_WIDTH", "16")
	t.Setenv("MINES_HEIGHT", "30")
	t.Setenv("MINES_COUNT", "99")
	p, err = GameParams()
	require.NoError(t, err)
	assert.Equal(t, game.Params{Width: 16, Height: 30, MineCount: 99}, p)

	t.Setenv("MINES_COUNT", "lots")
	_, err = GameParams()
	assert.Error(t, err)

	t.Setenv("MINES_COUNT", "10")
	t.Setenv("MINES_WIDTH", "0")
	_, err = GameParams()
	assert.ErrorIs(t, err, game.ErrBadParams)
}

func TestNewSessions(t *testing.T) {
	t.Setenv("SESSION_TTL", "")
	s, err := NewSessions()
	require.NoError(t, err)
	assert.Equal(t, time.Hour, s.TTL)

	t.Setenv("SESSION_TTL", "30s")
	s, err = NewSessions()
	require.NoError(t, err)
	assert.Equal(t, 30*time.Second, s.TTL)
	assert.Equal(t, 30*time.Second, s.SweepInterval)

	t.Setenv("SESSION_TTL", "soon")
	_, err = NewSessions()
	assert.Error(t, err)

	t.Setenv("SESSION_TTL", "-1m")
	_, err = NewSessions()
	assert.Error(t, err)
}

func TestWebSocketCheckOrigin(t *testing.T) {
	t.Setenv("ALLOWED_ORIGINS", "")
	ws, err := NewWebSocket()
	require.NoError(t, err)
	r := httptest.NewRequest("GET", "/", nil)
	r.Header.Set("Origin", "http://evil.example")
	assert.True(t, ws.Upgrader.CheckOrigin(r))

	t.Setenv("ALLOWED_ORIGINS", "http://localhost:3000, https://mines.example")
	ws, err = NewWebSocket()
	require.NoError(t, err)
	allowed, err := AllowedOrigins()
	require.NoError(t, err)
	assert.Equal(t, []string{"http://localhost:3000", "https://mines.example"}, allowed)
	assert.False(t, ws.Upgrader.CheckOrigin(r))
	r.Header.Set("Origin", "https://mines.example")
	assert.True(t, ws.Upgrader.CheckOrigin(r))
}

func TestAllowedOriginsRejectsEmptyEntries(t *testing.T) {
	for _, origins := range []string{"http://localhost:3000,", ",https://mines.example", "a,,b"} {
		t.Setenv("ALLOWED_ORIGINS", origins)
		_, err := AllowedOrigins()
		assert.Error(t, err, origins)
		_, err = NewWebSocket()
		assert.Error(t, err, origins)
	}
}
