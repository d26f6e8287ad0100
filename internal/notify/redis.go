// Package notify announces finished games to whoever listens on Redis.
package notify

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/tictactoe-arena/internal/entity"
)

// ResultsChannel carries one Announcement per finished game.
const ResultsChannel = "game:results"

type Announcement struct {
	GameID    string `json:"game_id"`
	Mode      string `json:"mode"`
	Winner    string `json:"winner"`
	MoveCount int    `json:"move_count"`
}

type Publisher struct {
	logger *slog.Logger
	client *redis.Client
}

func NewPublisher(logger *slog.Logger, client *redis.Client) *Publisher {
	return &Publisher{
		logger: logger,
		client: client,
	}
}

// Announce publishes the result. Failures are logged and dropped.
func (that *Publisher) Announce(ctx context.Context, session *entity.Session) {
	log := that.logger.With("method", "Announce", "game_id", session.ID)

	payload, err := json.Marshal(Announcement{
		GameID:    session.ID,
		Mode:      session.Mode,
		Winner:    session.Winner,
		MoveCount: session.MoveCount,
	})
	if err != nil {
		log.Error("failed to marshal announcement", "error", err)
		return
	}

	if err = that.client.Publish(ctx, ResultsChannel, payload).Err(); err != nil {
		log.Error("failed to publish announcement", "error", err)
	}
}
