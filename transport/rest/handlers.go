package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/rocketscienceinc/tictactoe-arena/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-arena/internal/entity"
	"github.com/rocketscienceinc/tictactoe-arena/internal/render"
)

const (
	defaultHistoryLimit = 20
	maxHistoryLimit     = 100
)

type Handlers interface {
	PingHandler(ctx echo.Context) error

	StartGame(ctx echo.Context) error
	GetGame(ctx echo.Context) error
	RenderBoard(ctx echo.Context) error
	MakeTurn(ctx echo.Context) error

	CreateChallenge(ctx echo.Context) error
	AcceptChallenge(ctx echo.Context) error
	DeclineChallenge(ctx echo.Context) error

	PlayerStats(ctx echo.Context) error
	PlayerHistory(ctx echo.Context) error
	Leaderboard(ctx echo.Context) error
}

type gameManager interface {
	StartBotGame(ctx context.Context, playerID, difficulty string) (*entity.Session, error)
	GetGame(ctx context.Context, gameID string) (*entity.Session, error)
	MakeTurn(ctx context.Context, gameID, playerID string, cell int) (*entity.Session, error)

	CreateChallenge(ctx context.Context, challengerID string) (*entity.Challenge, error)
	AcceptChallenge(ctx context.Context, challengeID, opponentID string) (*entity.Session, error)
	DeclineChallenge(ctx context.Context, challengeID string) error

	Stats(ctx context.Context, playerID string) (*entity.Player, error)
	Leaderboard(ctx context.Context, limit int) ([]*entity.Player, error)
	History(ctx context.Context, playerID string, limit int) ([]*entity.GameRecord, error)
}

type handlers struct {
	logger          *slog.Logger
	gameManager     gameManager
	leaderboardSize int
}

func NewHandlers(logger *slog.Logger, gameManager gameManager, leaderboardSize int) Handlers {
	return &handlers{
		logger:          logger.With("component", "rest"),
		gameManager:     gameManager,
		leaderboardSize: leaderboardSize,
	}
}

type startGameRequest struct {
	PlayerID   string `json:"player_id"`
	Difficulty string `json:"difficulty"`
}

type turnRequest struct {
	PlayerID string `json:"player_id"`
	Cell     *int   `json:"cell"`
}

type playerRequest struct {
	PlayerID string `json:"player_id"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type statsResponse struct {
	*entity.Player
	Games   int     `json:"games"`
	WinRate float64 `json:"win_rate"`
}

func (that *handlers) StartGame(ctx echo.Context) error {
	var req startGameRequest
	if err := ctx.Bind(&req); err != nil {
		return that.badRequest(ctx, err)
	}

	session, err := that.gameManager.StartBotGame(ctx.Request().Context(), req.PlayerID, req.Difficulty)
	if err != nil {
		return that.sendError(ctx, "StartGame", err)
	}

	return ctx.JSON(http.StatusCreated, session)
}

func (that *handlers) GetGame(ctx echo.Context) error {
	session, err := that.gameManager.GetGame(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return that.sendError(ctx, "GetGame", err)
	}

	return ctx.JSON(http.StatusOK, session)
}

func (that *handlers) RenderBoard(ctx echo.Context) error {
	session, err := that.gameManager.GetGame(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return that.sendError(ctx, "RenderBoard", err)
	}

	return ctx.String(http.StatusOK, render.Board(session))
}

func (that *handlers) MakeTurn(ctx echo.Context) error {
	var req turnRequest
	if err := ctx.Bind(&req); err != nil {
		return that.badRequest(ctx, err)
	}

	if req.Cell == nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Error: "cell is required"})
	}

	session, err := that.gameManager.MakeTurn(ctx.Request().Context(), ctx.Param("id"), req.PlayerID, *req.Cell)
	if err != nil {
		return that.sendError(ctx, "MakeTurn", err)
	}

	return ctx.JSON(http.StatusOK, session)
}

func (that *handlers) CreateChallenge(ctx echo.Context) error {
	var req playerRequest
	if err := ctx.Bind(&req); err != nil {
		return that.badRequest(ctx, err)
	}

	challenge, err := that.gameManager.CreateChallenge(ctx.Request().Context(), req.PlayerID)
	if err != nil {
		return that.sendError(ctx, "CreateChallenge", err)
	}

	return ctx.JSON(http.StatusCreated, challenge)
}

func (that *handlers) AcceptChallenge(ctx echo.Context) error {
	var req playerRequest
	if err := ctx.Bind(&req); err != nil {
		return that.badRequest(ctx, err)
	}

	session, err := that.gameManager.AcceptChallenge(ctx.Request().Context(), ctx.Param("id"), req.PlayerID)
	if err != nil {
		return that.sendError(ctx, "AcceptChallenge", err)
	}

	return ctx.JSON(http.StatusCreated, session)
}

func (that *handlers) DeclineChallenge(ctx echo.Context) error {
	if err := that.gameManager.DeclineChallenge(ctx.Request().Context(), ctx.Param("id")); err != nil {
		return that.sendError(ctx, "DeclineChallenge", err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func (that *handlers) PlayerStats(ctx echo.Context) error {
	player, err := that.gameManager.Stats(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return that.sendError(ctx, "PlayerStats", err)
	}

	return ctx.JSON(http.StatusOK, statsResponse{
		Player:  player,
		Games:   player.Games(),
		WinRate: player.WinRate(),
	})
}

func (that *handlers) PlayerHistory(ctx echo.Context) error {
	limit, err := parseLimit(ctx.QueryParam("limit"), defaultHistoryLimit, maxHistoryLimit)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	records, err := that.gameManager.History(ctx.Request().Context(), ctx.Param("id"), limit)
	if err != nil {
		return that.sendError(ctx, "PlayerHistory", err)
	}

	return ctx.JSON(http.StatusOK, records)
}

func (that *handlers) Leaderboard(ctx echo.Context) error {
	players, err := that.gameManager.Leaderboard(ctx.Request().Context(), that.leaderboardSize)
	if err != nil {
		return that.sendError(ctx, "Leaderboard", err)
	}

	return ctx.JSON(http.StatusOK, players)
}

var errInvalidLimit = errors.New("limit must be a positive number")

func parseLimit(value string, fallback, ceiling int) (int, error) {
	if value == "" {
		return fallback, nil
	}

	limit, err := strconv.Atoi(value)
	if err != nil || limit <= 0 {
		return 0, errInvalidLimit
	}

	return min(limit, ceiling), nil
}

func (that *handlers) badRequest(ctx echo.Context, err error) error {
	that.logger.Debug("failed to bind request", "path", ctx.Path(), "error", err)

	return ctx.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
}

func (that *handlers) sendError(ctx echo.Context, method string, err error) error {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		that.logger.Error("request failed", "method", method, "error", err)
	} else {
		that.logger.Debug("request rejected", "method", method, "error", err)
	}

	return ctx.JSON(status, errorResponse{Error: messageFor(err, status)})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, apperror.ErrPositionOutOfRange),
		errors.Is(err, apperror.ErrInvalidDifficulty),
		errors.Is(err, apperror.ErrInvalidPlayer):
		return http.StatusBadRequest
	case errors.Is(err, apperror.ErrCellOccupied),
		errors.Is(err, apperror.ErrNotYourTurn),
		errors.Is(err, apperror.ErrGameFinished),
		errors.Is(err, apperror.ErrSelfChallenge):
		return http.StatusConflict
	case errors.Is(err, apperror.ErrSessionNotFound),
		errors.Is(err, apperror.ErrChallengeNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperror.ErrStaleSession):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// messageFor hides wrapped internals of unexpected failures from clients.
func messageFor(err error, status int) string {
	if status == http.StatusInternalServerError {
		return http.StatusText(status)
	}

	for _, known := range []error{
		apperror.ErrPositionOutOfRange, apperror.ErrInvalidDifficulty, apperror.ErrInvalidPlayer,
		apperror.ErrCellOccupied, apperror.ErrNotYourTurn, apperror.ErrGameFinished,
		apperror.ErrSelfChallenge, apperror.ErrSessionNotFound, apperror.ErrChallengeNotFound,
		apperror.ErrStaleSession,
	} {
		if errors.Is(err, known) {
			return known.Error()
		}
	}

	return err.Error()
}
