package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/vancomm/minesweeper/internal/game"
)

func lookupInt(key string, fallback int) (int, error) {
	s, ok := os.LookupEnv(key)
	if !ok || s == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("unable to convert %s to int: %w", key, err)
	}
	return v, nil
}

// GameParams returns the field used when a request does not specify one.
func GameParams() (game.Params, error) {
	var (
		p   = game.DefaultParams()
		err error
	)
	if p.Width, err = lookupInt("MINES_WIDTH", p.Width); err != nil {
		return p, err
	}
	if p.Height, err = lookupInt("MINES_HEIGHT", p.Height); err != nil {
		return p, err
	}
	if p.MineCount, err = lookupInt("MINES_COUNT", p.MineCount); err != nil {
		return p, err
	}
	return p, p.Validate()
}

type Sessions struct {
	TTL           time.Duration
	SweepInterval time.Duration
}

// NewSessions reads SESSION_TTL, how long an untouched session is kept.
func NewSessions() (*Sessions, error) {
	s := &Sessions{
		TTL:           time.Hour,
		SweepInterval: time.Minute,
	}
	ttl, ok := os.LookupEnv("SESSION_TTL")
	if !ok || ttl == "" {
		return s, nil
	}
	d, err := time.ParseDuration(ttl)
	if err != nil {
		return nil, fmt.Errorf("unable to parse SESSION_TTL: %w", err)
	}
	if d <= 0 {
		return nil, fmt.Errorf("SESSION_TTL must be positive")
	}
	s.TTL = d
	if d < s.SweepInterval {
		s.SweepInterval = d
	}
	return s, nil
}
