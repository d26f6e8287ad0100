package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-arena/internal/entity"
)

type PlayerRepository interface {
	AddResult(ctx context.Context, playerID string, result entity.Result, points int) error
	GetByID(ctx context.Context, id string) (*entity.Player, error)
	Top(ctx context.Context, limit int) ([]*entity.Player, error)
}

type playerRepository struct {
	conn *sql.DB
}

func NewPlayerRepository(conn *sql.DB) PlayerRepository {
	return &playerRepository{
		conn: conn,
	}
}

// AddResult adds one game to the player's totals. A win extends the streak, a loss resets
// it and a draw leaves it as it is.
func (that *playerRepository) AddResult(ctx context.Context, playerID string, result entity.Result, points int) error {
	var wins, losses, draws int

	switch result {
	case entity.ResultWin:
		wins = 1
	case entity.ResultLoss:
		losses = 1
	case entity.ResultDraw:
		draws = 1
	default:
		return fmt.Errorf("unknown result %q", result)
	}

	query := `INSERT INTO player_stats (player_id, wins, losses, draws, points, current_streak, best_streak)
	VALUES (?, ?, ?, ?, ?, ?, ?)
	ON CONFLICT(player_id) DO UPDATE SET
		wins = wins + excluded.wins,
		losses = losses + excluded.losses,
		draws = draws + excluded.draws,
		points = points + excluded.points,
		current_streak = CASE
			WHEN excluded.wins > 0 THEN current_streak + 1
			WHEN excluded.losses > 0 THEN 0
			ELSE current_streak
		END,
		best_streak = MAX(best_streak, CASE WHEN excluded.wins > 0 THEN current_streak + 1 ELSE 0 END)`

	_, err := that.conn.ExecContext(ctx, query, playerID, wins, losses, draws, points, wins, wins)
	if err != nil {
		return fmt.Errorf("can't save player result: %w", err)
	}

	return nil
}

// GetByID returns the player's totals, or an empty record for a player without games.
func (that *playerRepository) GetByID(ctx context.Context, id string) (*entity.Player, error) {
	query := `SELECT player_id, wins, losses, draws, points, current_streak, best_streak
		FROM player_stats WHERE player_id = ?`

	player, err := scanPlayer(that.conn.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return &entity.Player{ID: id}, nil
	}

	if err != nil {
		return nil, fmt.Errorf("can't find player: %w", err)
	}

	return player, nil
}

func (that *playerRepository) Top(ctx context.Context, limit int) ([]*entity.Player, error) {
	query := `SELECT player_id, wins, losses, draws, points, current_streak, best_streak
		FROM player_stats
		ORDER BY points DESC, wins DESC, player_id
		LIMIT ?`

	rows, err := that.conn.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("can't list players: %w", err)
	}
	defer rows.Close()

	players := make([]*entity.Player, 0, max(limit, 0))
	for rows.Next() {
		player, err := scanPlayer(rows)
		if err != nil {
			return nil, fmt.Errorf("can't scan player: %w", err)
		}

		players = append(players, player)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("can't iterate players: %w", err)
	}

	return players, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPlayer(row rowScanner) (*entity.Player, error) {
	var player entity.Player

	err := row.Scan(
		&player.ID,
		&player.Wins,
		&player.Losses,
		&player.Draws,
		&player.Points,
		&player.CurrentStreak,
		&player.BestStreak,
	)
	if err != nil {
		return nil, err
	}

	return &player, nil
}
