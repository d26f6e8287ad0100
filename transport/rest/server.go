package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

type Server struct {
	logger *slog.Logger
	port   string
	echo   *echo.Echo
}

func New(logger *slog.Logger, port string, handlers Handlers) *Server {
	e := NewRouter(logger, handlers)
	e.Server.ReadTimeout = 10 * time.Second
	e.Server.WriteTimeout = 10 * time.Second
	e.Server.IdleTimeout = 30 * time.Second

	return &Server{
		logger: logger,
		port:   port,
		echo:   e,
	}
}

func NewRouter(logger *slog.Logger, handlers Handlers) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(requestLogger(logger))

	e.GET("/ping", handlers.PingHandler)

	e.POST("/games", handlers.StartGame)
	e.GET("/games/:id", handlers.GetGame)
	e.GET("/games/:id/board", handlers.RenderBoard)
	e.POST("/games/:id/turns", handlers.MakeTurn)

	e.POST("/challenges", handlers.CreateChallenge)
	e.POST("/challenges/:id/accept", handlers.AcceptChallenge)
	e.DELETE("/challenges/:id", handlers.DeclineChallenge)

	e.GET("/players/:id/stats", handlers.PlayerStats)
	e.GET("/players/:id/history", handlers.PlayerHistory)
	e.GET("/leaderboard", handlers.Leaderboard)

	return e
}

func requestLogger(logger *slog.Logger) echo.MiddlewareFunc {
	log := logger.With("component", "http")

	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:  true,
		LogURI:     true,
		LogStatus:  true,
		LogLatency: true,
		LogValuesFunc: func(_ echo.Context, v middleware.RequestLoggerValues) error {
			log.Debug("request", "method", v.Method, "uri", v.URI, "status", v.Status, "latency", v.Latency)
			return nil
		},
	})
}

// Start blocks until the server fails or Shutdown is called.
func (that *Server) Start() error {
	that.logger.Info("Starting HTTP server", "port", that.port)

	err := that.echo.Start(":" + that.port)
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

func (that *Server) Shutdown(ctx context.Context) error {
	if err := that.echo.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}

	return nil
}
