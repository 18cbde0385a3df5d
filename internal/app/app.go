package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/vancomm/minesweeper/internal/config"
	"github.com/vancomm/minesweeper/internal/game"
	"github.com/vancomm/minesweeper/internal/middleware"
	"github.com/vancomm/minesweeper/internal/repository"
)

type App struct {
	logger   *slog.Logger
	router   *http.ServeMux
	repo     *repository.Queries
	ws       *config.WebSocket
	sessions *config.Sessions
	defaults game.Params
	origins  []string
}

func New(logger *slog.Logger) (*App, error) {
	origins, err := config.AllowedOrigins()
	if err != nil {
		return nil, fmt.Errorf("unable to read cors config: %w", err)
	}

	ws, err := config.NewWebSocket()
	if err != nil {
		return nil, fmt.Errorf("unable to read ws config: %w", err)
	}

	sessions, err := config.NewSessions()
	if err != nil {
		return nil, fmt.Errorf("unable to read sessions config: %w", err)
	}

	defaults, err := config.GameParams()
	if err != nil {
		return nil, fmt.Errorf("unable to read game config: %w", err)
	}

	app := &App{
		logger:   logger,
		router:   http.NewServeMux(),
		repo:     repository.New(),
		ws:       ws,
		sessions: sessions,
		defaults: defaults,
		origins:  origins,
	}
	app.loadRoutes()

	return app, nil
}

// Handler serves the routes under APP_BASE_PATH.
func (a *App) Handler() http.Handler {
	var h http.Handler = a.router
	if base := strings.TrimSuffix(config.BasePath(), "/"); base != "" {
		h = http.StripPrefix(base, h)
	}
	return middleware.Wrap(
		h,
		middleware.Logging(a.logger),
		middleware.Cors(a.origins...),
	)
}

// Start serves until ctx is done, then shuts the server down.
func (a *App) Start(ctx context.Context, addr string) error {
	server := &http.Server{
		Addr:         addr,
		Handler:      a.Handler(),
		ReadTimeout:  time.Second * 15,
		WriteTimeout: time.Second * 15,
		IdleTimeout:  time.Second * 60,
		BaseContext: func(l net.Listener) context.Context {
			return ctx
		},
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		a.logger.Info("server listening", slog.String("addr", addr))
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("failed to listen and serve: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		return a.repo.Sweep(gCtx, a.logger, a.sessions.SweepInterval, a.sessions.TTL)
	})
	g.Go(func() error {
		<-gCtx.Done()
		sCtx, cancel := context.WithTimeout(context.Background(), time.Second*15)
		defer cancel()
		return server.Shutdown(sCtx)
	})

	return g.Wait()
}
