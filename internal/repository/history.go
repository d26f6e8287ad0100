package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rocketscienceinc/tictactoe-arena/internal/entity"
)

type HistoryRepository interface {
	Record(ctx context.Context, session *entity.Session) error
	ListByPlayer(ctx context.Context, playerID string, limit int) ([]*entity.GameRecord, error)
}

type historyRepository struct {
	conn *sql.DB
	now  func() time.Time
}

func NewHistoryRepository(conn *sql.DB) HistoryRepository {
	return &historyRepository{
		conn: conn,
		now:  time.Now,
	}
}

// Record archives a finished session. Recording the same game twice keeps the first copy.
func (that *historyRepository) Record(ctx context.Context, session *entity.Session) error {
	record := entity.NewGameRecord(session, that.now())

	board, err := json.Marshal(record.Board)
	if err != nil {
		return fmt.Errorf("can't marshal board: %w", err)
	}

	query := `INSERT INTO game_history (
		game_id, mode, player_a, player_b, difficulty, board, winner, move_count, finished_at
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	ON CONFLICT(game_id) DO NOTHING`

	_, err = that.conn.ExecContext(ctx, query,
		record.GameID,
		record.Mode,
		record.PlayerA,
		record.PlayerB,
		string(record.Difficulty),
		string(board),
		record.Winner,
		record.MoveCount,
		record.FinishedAt.UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("can't save game record: %w", err)
	}

	return nil
}

// ListByPlayer returns the newest games the player took part in.
func (that *historyRepository) ListByPlayer(ctx context.Context, playerID string, limit int) ([]*entity.GameRecord, error) {
	query := `SELECT game_id, mode, player_a, player_b, difficulty, board, winner, move_count, finished_at
		FROM game_history
		WHERE player_a = ? OR player_b = ?
		ORDER BY finished_at DESC, game_id
		LIMIT ?`

	rows, err := that.conn.QueryContext(ctx, query, playerID, playerID, limit)
	if err != nil {
		return nil, fmt.Errorf("can't list game records: %w", err)
	}
	defer rows.Close()

	records := make([]*entity.GameRecord, 0, max(limit, 0))
	for rows.Next() {
		var (
			record     entity.GameRecord
			difficulty string
			board      string
			finishedAt int64
		)

		err = rows.Scan(
			&record.GameID,
			&record.Mode,
			&record.PlayerA,
			&record.PlayerB,
			&difficulty,
			&board,
			&record.Winner,
			&record.MoveCount,
			&finishedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("can't scan game record: %w", err)
		}

		if err = json.Unmarshal([]byte(board), &record.Board); err != nil {
			return nil, fmt.Errorf("can't unmarshal board: %w", err)
		}

		record.Difficulty = entity.Difficulty(difficulty)
		record.FinishedAt = time.UnixMilli(finishedAt).UTC()
		records = append(records, &record)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("can't iterate game records: %w", err)
	}

	return records, nil
}
