package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/rocketscienceinc/tictactoe-arena/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-arena/internal/entity"
	"github.com/rocketscienceinc/tictactoe-arena/internal/pkg"
	"github.com/rocketscienceinc/tictactoe-arena/internal/tictactoe"
)

const (
	// staleRetries is how many times a move is replayed on a fresh copy after losing a save race.
	staleRetries = 1
	// createRetries is how many times a new game is saved again under a fresh id on a collision.
	createRetries = 1
)

type sessionRepo interface {
	Load(ctx context.Context, id string) (*entity.Session, error)
	Save(ctx context.Context, session *entity.Session, expectedVersion int64) error
	Delete(ctx context.Context, id string) error
}

type challengeRepo interface {
	Create(ctx context.Context, challenge *entity.Challenge) error
	Get(ctx context.Context, id string) (*entity.Challenge, error)
	Take(ctx context.Context, id string) (*entity.Challenge, error)
	Delete(ctx context.Context, id string) error
}

type historyRepo interface {
	Record(ctx context.Context, session *entity.Session) error
	ListByPlayer(ctx context.Context, playerID string, limit int) ([]*entity.GameRecord, error)
}

type playerService interface {
	RecordResult(ctx context.Context, playerID string, result entity.Result) error
	GetByID(ctx context.Context, id string) (*entity.Player, error)
	Leaderboard(ctx context.Context, limit int) ([]*entity.Player, error)
}

type botService interface {
	ChooseMove(board entity.Board, difficulty entity.Difficulty, botMark, opponentMark entity.Cell) (int, error)
}

type notifier interface {
	Announce(ctx context.Context, session *entity.Session)
}

type GameManager struct {
	logger *slog.Logger

	sessionRepo   sessionRepo
	challengeRepo challengeRepo
	historyRepo   historyRepo
	playerService playerService
	botService    botService
	notifier      notifier

	newGameID      func() string
	newChallengeID func() string

	archiveTimeout time.Duration
	archiving      sync.WaitGroup
}

func NewGameManager(
	logger *slog.Logger,
	sessionRepo sessionRepo,
	challengeRepo challengeRepo,
	historyRepo historyRepo,
	playerService playerService,
	botService botService,
	notifier notifier,
	archiveTimeout time.Duration,
) *GameManager {
	return &GameManager{
		logger: logger,

		sessionRepo:   sessionRepo,
		challengeRepo: challengeRepo,
		historyRepo:   historyRepo,
		playerService: playerService,
		botService:    botService,
		notifier:      notifier,

		newGameID:      pkg.GenerateGameID,
		newChallengeID: pkg.GenerateChallengeID,

		archiveTimeout: archiveTimeout,
	}
}

// StartBotGame opens a game against the bot. The human moves first.
func (that *GameManager) StartBotGame(ctx context.Context, playerID, difficulty string) (*entity.Session, error) {
	if err := validatePlayerID(playerID); err != nil {
		return nil, err
	}

	level, err := entity.ParseDifficulty(difficulty)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", apperror.ErrInvalidDifficulty, err)
	}

	session, err := that.createSession(ctx, func(id string) *entity.Session {
		return entity.NewBotSession(id, playerID, level)
	})
	if err != nil {
		return nil, err
	}

	that.logger.Info("bot game started", "game_id", session.ID, "player_id", playerID, "difficulty", level)

	return session, nil
}

// CreateChallenge opens a challenge that any other player can accept until it expires.
func (that *GameManager) CreateChallenge(ctx context.Context, challengerID string) (*entity.Challenge, error) {
	if err := validatePlayerID(challengerID); err != nil {
		return nil, err
	}

	challenge := &entity.Challenge{
		ID:           that.newChallengeID(),
		ChallengerID: challengerID,
		CreatedAt:    time.Now().UTC(),
	}

	if err := that.challengeRepo.Create(ctx, challenge); err != nil {
		return nil, fmt.Errorf("failed to create challenge: %w", err)
	}

	return challenge, nil
}

// AcceptChallenge turns an open challenge into a game. The challenger moves first.
func (that *GameManager) AcceptChallenge(ctx context.Context, challengeID, opponentID string) (*entity.Session, error) {
	if err := validatePlayerID(opponentID); err != nil {
		return nil, err
	}

	challenge, err := that.challengeRepo.Get(ctx, challengeID)
	if err != nil {
		return nil, fmt.Errorf("failed to get challenge: %w", err)
	}

	if challenge.ChallengerID == opponentID {
		return nil, apperror.ErrSelfChallenge
	}

	challenge, err = that.challengeRepo.Take(ctx, challengeID)
	if err != nil {
		return nil, fmt.Errorf("failed to take challenge: %w", err)
	}

	session, err := that.createSession(ctx, func(id string) *entity.Session {
		return entity.NewPvPSession(id, challenge.ChallengerID, opponentID)
	})
	if err != nil {
		return nil, err
	}

	that.logger.Info("challenge accepted",
		"challenge_id", challengeID, "game_id", session.ID,
		"player_a", session.PlayerA, "player_b", session.PlayerB)

	return session, nil
}

// createSession stores a new game. A stale save here means the id is taken, so the game is
// created again under a fresh id.
func (that *GameManager) createSession(ctx context.Context, newSession func(id string) *entity.Session) (*entity.Session, error) {
	for attempt := 0; ; attempt++ {
		session := newSession(that.newGameID())

		err := that.sessionRepo.Save(ctx, session, 0)
		if errors.Is(err, apperror.ErrStaleSession) && attempt < createRetries {
			that.logger.Warn("game id is taken, retrying", "game_id", session.ID)
			continue
		}

		if err != nil {
			return nil, fmt.Errorf("failed to create game: %w", err)
		}

		return session, nil
	}
}

func (that *GameManager) DeclineChallenge(ctx context.Context, challengeID string) error {
	if err := that.challengeRepo.Delete(ctx, challengeID); err != nil {
		return fmt.Errorf("failed to decline challenge: %w", err)
	}

	return nil
}

func (that *GameManager) GetGame(ctx context.Context, gameID string) (*entity.Session, error) {
	session, err := that.sessionRepo.Load(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	return session, nil
}

// MakeTurn plays the participant's move and, in a bot game, the bot's reply. The result is
// saved only if nobody else changed the game meanwhile. A lost race is replayed once on a
// fresh copy.
func (that *GameManager) MakeTurn(ctx context.Context, gameID, playerID string, cell int) (*entity.Session, error) {
	log := that.logger.With("method", "MakeTurn", "game_id", gameID, "player_id", playerID)

	if playerID == entity.BotID {
		return nil, apperror.ErrNotYourTurn
	}

	for attempt := 0; ; attempt++ {
		session, err := that.playTurn(ctx, gameID, playerID, cell)
		if errors.Is(err, apperror.ErrStaleSession) && attempt < staleRetries {
			log.Warn("game changed concurrently, retrying", "attempt", attempt+1)
			continue
		}

		if err != nil {
			return nil, err
		}

		if session.IsFinished() {
			that.finishGame(ctx, session)
		}

		return session, nil
	}
}

func (that *GameManager) playTurn(ctx context.Context, gameID, playerID string, cell int) (*entity.Session, error) {
	session, err := that.sessionRepo.Load(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	loadedVersion := session.Version

	if err = tictactoe.MakeTurn(session, playerID, cell); err != nil {
		return nil, fmt.Errorf("failed make turn: %w", err)
	}

	if session.IsWithBot() && session.IsOngoing() && session.Turn == entity.BotID {
		if err = that.playBotTurn(session); err != nil {
			return nil, err
		}
	}

	if err = that.sessionRepo.Save(ctx, session, loadedVersion); err != nil {
		return nil, fmt.Errorf("failed to save game: %w", err)
	}

	return session, nil
}

func (that *GameManager) playBotTurn(session *entity.Session) error {
	botMark := session.MarkOf(entity.BotID)

	cell, err := that.botService.ChooseMove(session.Board, session.Difficulty, botMark, botMark.Opponent())
	if err != nil {
		return fmt.Errorf("bot failed to choose a move: %w", err)
	}

	if err = tictactoe.MakeTurn(session, entity.BotID, cell); err != nil {
		return fmt.Errorf("failed make bot turn: %w", err)
	}

	return nil
}

// finishGame removes the finished game from the active store and archives it in the
// background. Archival failures are logged, the move itself already succeeded.
func (that *GameManager) finishGame(ctx context.Context, session *entity.Session) {
	ctx = context.WithoutCancel(ctx)
	log := that.logger.With("method", "finishGame", "game_id", session.ID)

	if err := that.sessionRepo.Delete(ctx, session.ID); err != nil {
		log.Error("failed to delete finished game", "error", err)
	}

	finished := *session

	that.archiving.Add(1)
	go func() {
		defer that.archiving.Done()

		archiveCtx, cancel := context.WithTimeout(ctx, that.archiveTimeout)
		defer cancel()

		that.archiveGame(archiveCtx, log, &finished)
	}()
}

func (that *GameManager) archiveGame(ctx context.Context, log *slog.Logger, session *entity.Session) {
	if err := that.historyRepo.Record(ctx, session); err != nil {
		log.Error("failed to record game history", "error", err)
	}

	for _, playerID := range session.Humans() {
		if err := that.playerService.RecordResult(ctx, playerID, session.ResultFor(playerID)); err != nil {
			log.Error("failed to record player result", "player_id", playerID, "error", err)
		}
	}

	that.notifier.Announce(ctx, session)

	log.Info("game finished", "status", session.Status, "winner", session.Winner, "moves", session.MoveCount)
}

// Wait blocks until the finished games handed to the background are archived.
func (that *GameManager) Wait() {
	that.archiving.Wait()
}

func (that *GameManager) Stats(ctx context.Context, playerID string) (*entity.Player, error) {
	player, err := that.playerService.GetByID(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get player stats: %w", err)
	}

	return player, nil
}

func (that *GameManager) Leaderboard(ctx context.Context, limit int) ([]*entity.Player, error) {
	players, err := that.playerService.Leaderboard(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get leaderboard: %w", err)
	}

	return players, nil
}

func (that *GameManager) History(ctx context.Context, playerID string, limit int) ([]*entity.GameRecord, error) {
	records, err := that.historyRepo.ListByPlayer(ctx, playerID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get game history: %w", err)
	}

	return records, nil
}

func validatePlayerID(playerID string) error {
	if playerID == "" || playerID == entity.BotID {
		return fmt.Errorf("%w: %q", apperror.ErrInvalidPlayer, playerID)
	}

	return nil
}
