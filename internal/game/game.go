package game

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/vancomm/minesweeper/internal/mines"
)

const (
	DefaultWidth     = 9
	DefaultHeight    = 9
	DefaultMineCount = 10

	// MaxSide bounds either dimension of a field requested from outside.
	MaxSide = 100
)

var (
	ErrGameOver  = errors.New("game is over")
	ErrBadParams = errors.New("invalid game params")
)

type Params struct {
	Width, Height, MineCount int
}

func DefaultParams() Params {
	return Params{DefaultWidth, DefaultHeight, DefaultMineCount}
}

func (p Params) Validate() error {
	if p.Width < 1 || p.Width > MaxSide || p.Height < 1 || p.Height > MaxSide {
		return fmt.Errorf(
			"%w: width and height must be within 1..%d", ErrBadParams, MaxSide,
		)
	}
	return nil
}

type Status uint8

const (
	Playing Status = iota
	Won
	Lost
)

func (s Status) String() string {
	switch s {
	case Playing:
		return "playing"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return fmt.Sprintf("Status(%d)", uint8(s))
	}
}

// Game drives a single field from the first move to a win or a loss.
type Game struct {
	Field     *mines.Field
	Status    Status
	Moves     int
	StartedAt time.Time
	EndedAt   time.Time

	firstMove bool
}

func New(params Params, r *rand.Rand) (*Game, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	field, err := mines.NewField(params.Width, params.Height, params.MineCount, r)
	if err != nil {
		return nil, err
	}
	g := &Game{
		Field:     field,
		Status:    Playing,
		StartedAt: time.Now().UTC(),
		firstMove: true,
	}
	// a field without mines is already cleared
	if field.CheckWin() {
		g.end(Won)
	}
	return g, nil
}

func (g *Game) Over() bool {
	return g.Status != Playing
}

// Play applies cmd. The mines are reshuffled before the first reveal so that
// it never hits a mine. Invalid commands leave the game untouched.
func (g *Game) Play(cmd mines.Command) (Status, error) {
	if err := g.Check(cmd); err != nil {
		return g.Status, err
	}
	if cmd.Action == mines.Reveal && g.firstMove && g.Field.InBounds(cmd.X, cmd.Y) {
		g.firstMove = false
		g.Field.Regenerate(cmd.X, cmd.Y)
	}

	safe, err := g.Field.Execute(cmd)
	if err != nil {
		return g.Status, err
	}
	g.Moves++

	switch {
	case !safe:
		g.end(Lost)
		g.Field.RevealMines()
	case g.Field.CheckWin():
		g.end(Won)
	}

	mines.Log.Debug("move played",
		"command", cmd.String(), "status", g.Status.String(), "moves", g.Moves)
	return g.Status, nil
}

// Check returns the error [Game.Play] would fail with, leaving the game as is.
func (g *Game) Check(cmd mines.Command) error {
	if g.Over() {
		return ErrGameOver
	}
	return g.Field.Validate(cmd)
}

// Forfeit gives up a running game and uncovers the mines.
func (g *Game) Forfeit() {
	if g.Over() {
		return
	}
	g.end(Lost)
	g.Field.RevealMines()
}

func (g *Game) end(s Status) {
	g.Status = s
	g.EndedAt = time.Now().UTC()
}
