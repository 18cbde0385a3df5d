package handlers

import (
	"strconv"

	"github.com/gorilla/schema"

	"github.com/vancomm/minesweeper/internal/game"
	"github.com/vancomm/minesweeper/internal/mines"
	"github.com/vancomm/minesweeper/internal/repository"
)

var decoder = schema.NewDecoder()

func init() {
	decoder.IgnoreUnknownKeys(true)
}

// Missing fields keep the server defaults.
type NewGameDTO struct {
	Width     int `schema:"width"`
	Height    int `schema:"height"`
	MineCount int `schema:"mine_count"`
}

func ParseNewGameDTO(src map[string][]string, defaults game.Params) (game.Params, error) {
	dto := NewGameDTO(defaults)
	if err := decoder.Decode(&dto, src); err != nil {
		return defaults, err
	}
	return game.Params(dto), nil
}

type MoveDTO struct {
	X      int    `schema:"x,required"`
	Y      int    `schema:"y,required"`
	Action string `schema:"action,required"`
}

func ParseMoveDTO(src map[string][]string) (mines.Command, error) {
	var dto MoveDTO
	if err := decoder.Decode(&dto, src); err != nil {
		return mines.Command{}, err
	}
	action, err := mines.ParseAction(dto.Action)
	if err != nil {
		return mines.Command{}, err
	}
	return mines.Command{X: dto.X, Y: dto.Y, Action: action}, nil
}

type GameSessionDTO struct {
	GameSessionId string   `json:"game_session_id"`
	Grid          []string `json:"grid"`
	Width         int      `json:"width"`
	Height        int      `json:"height"`
	MineCount     int      `json:"mine_count"`
	Marked        int      `json:"marked"`
	Status        string   `json:"status"`
	Moves         int      `json:"moves"`
	StartedAt     int64    `json:"started_at"`
	EndedAt       *int64   `json:"ended_at,omitempty"`
}

// NewGameSessionDTO must be called while the session is locked. Hidden cells
// are uncovered once the game is over.
func NewGameSessionDTO(s *repository.GameSession) *GameSessionDTO {
	g := s.Game
	var endedAt *int64
	if !g.EndedAt.IsZero() {
		e := g.EndedAt.UnixMilli()
		endedAt = &e
	}
	dto := &GameSessionDTO{
		GameSessionId: strconv.FormatInt(s.GameSessionId, 10),
		Grid:          g.Field.Rows(g.Over()),
		Width:         g.Field.Width(),
		Height:        g.Field.Height(),
		MineCount:     g.Field.MineCount(),
		Marked:        g.Field.MarkedCount(),
		Status:        g.Status.String(),
		Moves:         g.Moves,
		StartedAt:     g.StartedAt.UnixMilli(),
		EndedAt:       endedAt,
	}
	return dto
}
