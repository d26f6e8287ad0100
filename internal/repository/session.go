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

const sessionKeyPrefix = "session:"

type SessionRepository interface {
	Load(ctx context.Context, id string) (*entity.Session, error)
	Save(ctx context.Context, session *entity.Session, expectedVersion int64) error
	Delete(ctx context.Context, id string) error
}

type dbSession struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSessionRepository stores active sessions as JSON. A positive ttl expires sessions
// that were not saved for that long.
func NewSessionRepository(client *redis.Client, ttl time.Duration) SessionRepository {
	return &dbSession{
		client: client,
		ttl:    ttl,
	}
}

func sessionKey(id string) string {
	return sessionKeyPrefix + id
}

func (that *dbSession) Load(ctx context.Context, id string) (*entity.Session, error) {
	response, err := that.client.Get(ctx, sessionKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, apperror.ErrSessionNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get session by id: %w", err)
	}

	var session entity.Session
	if err = json.Unmarshal(response, &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}

	return &session, nil
}

// Save writes the session only if the stored copy still carries expectedVersion. Version
// 0 means the session must not exist yet. On success session.Version is advanced.
func (that *dbSession) Save(ctx context.Context, session *entity.Session, expectedVersion int64) error {
	key := sessionKey(session.ID)

	stored := *session
	stored.Version = expectedVersion + 1

	payload, err := json.Marshal(&stored)
	if err != nil {
		return fmt.Errorf("could not marshal session: %w", err)
	}

	txf := func(tx *redis.Tx) error {
		version, err := storedVersion(ctx, tx, key)
		if err != nil {
			return err
		}

		if version != expectedVersion {
			return fmt.Errorf("%w: expected version %d, stored %d", apperror.ErrStaleSession, expectedVersion, version)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, payload, that.ttl)
			return nil
		})

		return err
	}

	err = that.client.Watch(ctx, txf, key)
	if errors.Is(err, redis.TxFailedErr) {
		return fmt.Errorf("%w: session %s", apperror.ErrStaleSession, session.ID)
	}

	if err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	session.Version = stored.Version

	return nil
}

func storedVersion(ctx context.Context, tx *redis.Tx, key string) (int64, error) {
	response, err := tx.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}

	if err != nil {
		return 0, fmt.Errorf("failed to read stored session: %w", err)
	}

	var current struct {
		Version int64 `json:"version"`
	}
	if err = json.Unmarshal(response, &current); err != nil {
		return 0, fmt.Errorf("failed to unmarshal stored session: %w", err)
	}

	return current.Version, nil
}

func (that *dbSession) Delete(ctx context.Context, id string) error {
	deleted, err := that.client.Del(ctx, sessionKey(id)).Result()
	if err != nil {
		return fmt.Errorf("failed to delete session by id: %w", err)
	}

	if deleted == 0 {
		return apperror.ErrSessionNotFound
	}

	return nil
}
