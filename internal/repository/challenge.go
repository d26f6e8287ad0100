package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/tictactoe-arena/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-arena/internal/entity"
)

const challengeKeyPrefix = "challenge:"

type ChallengeRepository interface {
	Create(ctx context.Context, challenge *entity.Challenge) error
	Get(ctx context.Context, id string) (*entity.Challenge, error)
	Take(ctx context.Context, id string) (*entity.Challenge, error)
	Delete(ctx context.Context, id string) error
}

type dbChallenge struct {
	client  *redis.Client
	timeout time.Duration
}

// NewChallengeRepository keeps open challenges for timeout, then Redis drops them.
func NewChallengeRepository(client *redis.Client, timeout time.Duration) ChallengeRepository {
	return &dbChallenge{
		client:  client,
		timeout: timeout,
	}
}

func (that *dbChallenge) Create(ctx context.Context, challenge *entity.Challenge) error {
	challengeJSON, err := json.Marshal(challenge)
	if err != nil {
		return fmt.Errorf("failed to marshal challenge: %w", err)
	}

	err = that.client.Set(ctx, challengeKeyPrefix+challenge.ID, challengeJSON, that.timeout).Err()
	if err != nil {
		return fmt.Errorf("failed to set challenge: %w", err)
	}

	return nil
}

func (that *dbChallenge) Get(ctx context.Context, id string) (*entity.Challenge, error) {
	response, err := that.client.Get(ctx, challengeKeyPrefix+id).Bytes()
	if err != nil {
		return nil, challengeLookupError(err, "get")
	}

	return decodeChallenge(response)
}

// Take removes and returns the challenge, so only one caller can accept it.
func (that *dbChallenge) Take(ctx context.Context, id string) (*entity.Challenge, error) {
	response, err := that.client.GetDel(ctx, challengeKeyPrefix+id).Bytes()
	if err != nil {
		return nil, challengeLookupError(err, "take")
	}

	return decodeChallenge(response)
}

func (that *dbChallenge) Delete(ctx context.Context, id string) error {
	deleted, err := that.client.Del(ctx, challengeKeyPrefix+id).Result()
	if err != nil {
		return fmt.Errorf("failed to delete challenge by id: %w", err)
	}

	if deleted == 0 {
		return apperror.ErrChallengeNotFound
	}

	return nil
}

func challengeLookupError(err error, op string) error {
	if errors.Is(err, redis.Nil) {
		return apperror.ErrChallengeNotFound
	}

	return fmt.Errorf("failed to %s challenge by id: %w", op, err)
}

func decodeChallenge(data []byte) (*entity.Challenge, error) {
	var challenge entity.Challenge
	if err := json.Unmarshal(data, &challenge); err != nil {
		return nil, fmt.Errorf("failed to unmarshal challenge: %w", err)
	}

	return &challenge, nil
}
