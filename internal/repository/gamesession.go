package repository

import (
	"context"
	"sync"
	"time"

	"github.com/vancomm/minesweeper/internal/game"
)

type GameSession struct {
	GameSessionId int64
	Game          *game.Game
	CreatedAt     time.Time
	UpdatedAt     time.Time

	mu sync.Mutex
}

func (q *Queries) CreateGameSession(ctx context.Context, g *game.Game) (*GameSession, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	q.mu.Lock()
	defer q.mu.Unlock()

	q.lastId++
	now := q.now()
	s := &GameSession{
		GameSessionId: q.lastId,
		Game:          g,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	q.sessions[s.GameSessionId] = s
	return s, nil
}

// FetchGameSession runs fn on the session while holding its lock. fn must not
// keep references to the session after it returns.
func (q *Queries) FetchGameSession(
	ctx context.Context, gameSessionId int64, fn func(*GameSession) error,
) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s, err := q.get(gameSessionId)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s)
}

// UpdateGameSession is [Queries.FetchGameSession] that also bumps UpdatedAt
// when fn succeeds.
func (q *Queries) UpdateGameSession(
	ctx context.Context, gameSessionId int64, fn func(*GameSession) error,
) error {
	return q.FetchGameSession(ctx, gameSessionId, func(s *GameSession) error {
		if err := fn(s); err != nil {
			return err
		}
		s.UpdatedAt = q.now()
		return nil
	})
}
