package repository

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"
)

var ErrNoSession = errors.New("game session not found")

// Queries keeps game sessions in memory. Nothing outlives the process.
type Queries struct {
	mu       sync.RWMutex
	sessions map[int64]*GameSession
	lastId   int64
	now      func() time.Time
}

func New() *Queries {
	return &Queries{
		sessions: make(map[int64]*GameSession),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (q *Queries) Count() int {
	q.mu.RLock()
	defer q.mu.RUnlock()
	return len(q.sessions)
}

// DeleteIdle drops every session untouched since cutoff and returns how many
// were removed.
func (q *Queries) DeleteIdle(cutoff time.Time) int {
	q.mu.Lock()
	defer q.mu.Unlock()

	n := 0
	for id, s := range q.sessions {
		s.mu.Lock()
		idle := s.UpdatedAt.Before(cutoff)
		s.mu.Unlock()
		if idle {
			delete(q.sessions, id)
			n++
		}
	}
	return n
}

// Sweep calls [Queries.DeleteIdle] every interval until ctx is done.
func (q *Queries) Sweep(ctx context.Context, logger *slog.Logger, interval, ttl time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if n := q.DeleteIdle(q.now().Add(-ttl)); n > 0 {
				logger.Debug("swept idle sessions",
					slog.Int("deleted", n), slog.Int("left", q.Count()))
			}
		}
	}
}

func (q *Queries) get(id int64) (*GameSession, error) {
	q.mu.RLock()
	defer q.mu.RUnlock()
	s, ok := q.sessions[id]
	if !ok {
		return nil, ErrNoSession
	}
	return s, nil
}
