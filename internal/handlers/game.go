package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/vancomm/minesweeper/internal/config"
	"github.com/vancomm/minesweeper/internal/game"
	"github.com/vancomm/minesweeper/internal/mines"
	"github.com/vancomm/minesweeper/internal/repository"
)

var ErrBadSessionId = fmt.Errorf("game session id must be an integer")

type GameHandler struct {
	logger   *slog.Logger
	repo     *repository.Queries
	ws       *config.WebSocket
	defaults game.Params

	mu  sync.Mutex // guards rnd
	rnd *rand.Rand
}

func NewGameHandler(
	logger *slog.Logger,
	repo *repository.Queries,
	ws *config.WebSocket,
	defaults game.Params,
	rnd *rand.Rand,
) *GameHandler {
	handler := &GameHandler{
		logger:   logger,
		repo:     repo,
		ws:       ws,
		defaults: defaults,
		rnd:      rnd,
	}
	return handler
}

func (g *GameHandler) newGame(params game.Params) (*game.Game, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return game.New(params, g.rnd)
}

func parseSessionId(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		return 0, ErrBadSessionId
	}
	return id, nil
}

// replyWithError maps domain errors onto status codes.
func (g *GameHandler) replyWithError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, repository.ErrNoSession):
		SendErrorOrLog(w, g.logger, http.StatusNotFound, err)
	case errors.Is(err, game.ErrGameOver):
		SendErrorOrLog(w, g.logger, http.StatusConflict, err)
	case errors.Is(err, mines.ErrInvalidCommand),
		errors.Is(err, game.ErrBadParams),
		errors.Is(err, ErrBadSessionId):
		SendErrorOrLog(w, g.logger, http.StatusBadRequest, err)
	default:
		g.logger.Error("unable to handle game request", slog.Any("error", err))
		SendErrorOrLog(w, g.logger, http.StatusInternalServerError,
			errors.New("internal error"))
	}
}

func (g *GameHandler) NewGame(w http.ResponseWriter, r *http.Request) {
	params, err := ParseNewGameDTO(r.URL.Query(), g.defaults)
	if err != nil {
		SendErrorOrLog(w, g.logger, http.StatusBadRequest, err)
		return
	}

	state, err := g.newGame(params)
	if err != nil {
		g.replyWithError(w, err)
		return
	}

	session, err := g.repo.CreateGameSession(r.Context(), state)
	if err != nil {
		g.replyWithError(w, err)
		return
	}

	g.logger.Debug("created game session",
		slog.Int64("id", session.GameSessionId),
		slog.Any("params", params))

	var dto *GameSessionDTO
	err = g.repo.FetchGameSession(r.Context(), session.GameSessionId,
		func(s *repository.GameSession) error {
			dto = NewGameSessionDTO(s)
			return nil
		},
	)
	if err != nil {
		g.replyWithError(w, err)
		return
	}
	SendJSONOrLog(w, g.logger, dto)
}

func (g *GameHandler) Fetch(w http.ResponseWriter, r *http.Request) {
	id, err := parseSessionId(r)
	if err != nil {
		g.replyWithError(w, err)
		return
	}

	var dto *GameSessionDTO
	err = g.repo.FetchGameSession(r.Context(), id,
		func(s *repository.GameSession) error {
			dto = NewGameSessionDTO(s)
			return nil
		},
	)
	if err != nil {
		g.replyWithError(w, err)
		return
	}

	SendJSONOrLog(w, g.logger, dto)
}

func (g *GameHandler) MakeAMove(w http.ResponseWriter, r *http.Request) {
	cmd, err := ParseMoveDTO(r.URL.Query())
	if err != nil {
		SendErrorOrLog(w, g.logger, http.StatusBadRequest, err)
		return
	}

	id, err := parseSessionId(r)
	if err != nil {
		g.replyWithError(w, err)
		return
	}

	var dto *GameSessionDTO
	err = g.repo.UpdateGameSession(r.Context(), id,
		func(s *repository.GameSession) error {
			if _, err := s.Game.Play(cmd); err != nil {
				return err
			}
			dto = NewGameSessionDTO(s)
			return nil
		},
	)
	if err != nil {
		g.replyWithError(w, err)
		return
	}

	SendJSONOrLog(w, g.logger, dto)
}

func (g *GameHandler) Forfeit(w http.ResponseWriter, r *http.Request) {
	id, err := parseSessionId(r)
	if err != nil {
		g.replyWithError(w, err)
		return
	}

	var dto *GameSessionDTO
	err = g.repo.UpdateGameSession(r.Context(), id,
		func(s *repository.GameSession) error {
			s.Game.Forfeit()
			dto = NewGameSessionDTO(s)
			return nil
		},
	)
	if err != nil {
		g.replyWithError(w, err)
		return
	}

	SendJSONOrLog(w, g.logger, dto)
}

// ConnectWS plays a session over a websocket. Every text message holds one
// or more newline separated "x y action" commands; the session is sent back
// after each message.
func (g *GameHandler) ConnectWS(w http.ResponseWriter, r *http.Request) {
	id, err := parseSessionId(r)
	if err != nil {
		g.replyWithError(w, err)
		return
	}
	err = g.repo.FetchGameSession(r.Context(), id,
		func(*repository.GameSession) error { return nil },
	)
	if err != nil {
		g.replyWithError(w, err)
		return
	}

	c, err := g.ws.Upgrader.Upgrade(w, r, nil)
	if err != nil {
		g.logger.Error("unable to upgrade connection", slog.Any("error", err))
		return
	}
	defer c.Close()
	// the server's read timeout would otherwise end idle games
	c.SetReadDeadline(time.Time{})

	for {
		mt, message, err := c.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err,
				websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				g.logger.Warn("unable to read ws message", slog.Any("error", err))
			}
			return
		}
		if mt != websocket.TextMessage {
			return
		}

		text := strings.TrimSpace(string(message))
		g.logger.Debug("ws message", slog.Int64("id", id), slog.String("text", text))

		var reply any
		cmds, err := parseCommands(text)
		if err == nil {
			err = g.repo.UpdateGameSession(r.Context(), id,
				func(s *repository.GameSession) error {
					if err := playAll(s.Game, cmds); err != nil {
						return err
					}
					reply = NewGameSessionDTO(s)
					return nil
				},
			)
		}
		if err != nil {
			if errors.Is(err, repository.ErrNoSession) {
				return
			}
			reply = wrapError(err)
		}

		c.SetWriteDeadline(time.Now().Add(g.ws.WriteTimeout))
		if err := c.WriteJSON(reply); err != nil {
			g.logger.Error("unable to write ws message", slog.Any("error", err))
			return
		}
	}
}

// parseCommands reads one command per non-blank line.
func parseCommands(text string) ([]mines.Command, error) {
	var cmds []mines.Command
	for _, line := range byPiece(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		cmd, err := mines.ParseCommand(line)
		if err != nil {
			return nil, err
		}
		cmds = append(cmds, cmd)
	}
	return cmds, nil
}

// playAll applies cmds only if every one of them is valid. Commands left
// over once the game ends are dropped.
func playAll(state *game.Game, cmds []mines.Command) error {
	for _, cmd := range cmds {
		if err := state.Check(cmd); err != nil {
			return err
		}
	}
	for _, cmd := range cmds {
		if state.Over() {
			break
		}
		if _, err := state.Play(cmd); err != nil {
			return err
		}
	}
	return nil
}
