package service

import (
	"context"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-arena/internal/config"
	"github.com/rocketscienceinc/tictactoe-arena/internal/entity"
)

type PlayerService interface {
	RecordResult(ctx context.Context, playerID string, result entity.Result) error
	GetByID(ctx context.Context, id string) (*entity.Player, error)
	Leaderboard(ctx context.Context, limit int) ([]*entity.Player, error)
}

type playerService struct {
	points     config.Points
	playerRepo playerRepo
}

type playerRepo interface {
	AddResult(ctx context.Context, playerID string, result entity.Result, points int) error
	GetByID(ctx context.Context, id string) (*entity.Player, error)
	Top(ctx context.Context, limit int) ([]*entity.Player, error)
}

func NewPlayerService(points config.Points, playerRepo playerRepo) PlayerService {
	return &playerService{
		points:     points,
		playerRepo: playerRepo,
	}
}

func (that *playerService) RecordResult(ctx context.Context, playerID string, result entity.Result) error {
	if err := that.playerRepo.AddResult(ctx, playerID, result, that.points.For(result)); err != nil {
		return fmt.Errorf("record %s for player %s: %w", result, playerID, err)
	}

	return nil
}

func (that *playerService) GetByID(ctx context.Context, id string) (*entity.Player, error) {
	existingPlayer, err := that.playerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get player by id %w", err)
	}

	return existingPlayer, nil
}

func (that *playerService) Leaderboard(ctx context.Context, limit int) ([]*entity.Player, error) {
	players, err := that.playerRepo.Top(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("get leaderboard: %w", err)
	}

	return players, nil
}
