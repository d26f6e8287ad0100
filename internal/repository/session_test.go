package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-arena/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-arena/internal/entity"
	"github.com/rocketscienceinc/tictactoe-arena/testing/suite"
)

func TestSessionRepository_Save(t *testing.T) {
	suite.ForEachRedis(t, func(t *testing.T, newSuite suite.Factory) {
		t.Run("Save_New", func(t *testing.T) {
			ctx, st := newSuite(t)
			sessionRepo := NewSessionRepository(st.Storage, time.Minute)

			// Given: a new session
			session := entity.NewBotSession("123", "p1", entity.HardDifficulty)

			// When: Save is called with version 0
			err := sessionRepo.Save(ctx, session, 0)

			// Then: it is stored as version 1 with the idle ttl
			require.NoError(t, err)
			assert.Equal(t, int64(1), session.Version)

			ttl, err := st.Storage.TTL(ctx, "session:123").Result()
			require.NoError(t, err)
			assert.Positive(t, ttl)
		})

		t.Run("Save_Existing_WithVersionZero", func(t *testing.T) {
			ctx, st := newSuite(t)
			sessionRepo := NewSessionRepository(st.Storage, 0)

			// Given: a stored session
			session := entity.NewBotSession("123", "p1", entity.EasyDifficulty)
			require.NoError(t, sessionRepo.Save(ctx, session, 0))

			// When: another creator saves a session with the same id
			duplicate := entity.NewBotSession("123", "p2", entity.EasyDifficulty)
			err := sessionRepo.Save(ctx, duplicate, 0)

			// Then: the save is rejected as stale and the duplicate keeps version 0
			require.ErrorIs(t, err, apperror.ErrStaleSession)
			assert.Zero(t, duplicate.Version)
		})

		t.Run("Save_Stale", func(t *testing.T) {
			ctx, st := newSuite(t)
			sessionRepo := NewSessionRepository(st.Storage, 0)

			// Given: two copies loaded at the same version
			require.NoError(t, sessionRepo.Save(ctx, entity.NewPvPSession("g1", "a", "b"), 0))

			first, err := sessionRepo.Load(ctx, "g1")
			require.NoError(t, err)
			second, err := sessionRepo.Load(ctx, "g1")
			require.NoError(t, err)

			// When: both are saved against the version they loaded
			first.Board[0] = entity.MarkA
			require.NoError(t, sessionRepo.Save(ctx, first, first.Version))

			second.Board[4] = entity.MarkA
			err = sessionRepo.Save(ctx, second, second.Version)

			// Then: only the first write wins
			require.ErrorIs(t, err, apperror.ErrStaleSession)

			stored, err := sessionRepo.Load(ctx, "g1")
			require.NoError(t, err)
			assert.Equal(t, entity.MarkA, stored.Board[0])
			assert.Equal(t, entity.EmptyCell, stored.Board[4])
			assert.Equal(t, int64(2), stored.Version)
		})
	})
}

func TestSessionRepository_Load(t *testing.T) {
	suite.ForEachRedis(t, func(t *testing.T, newSuite suite.Factory) {
		t.Run("Load_Success", func(t *testing.T) {
			ctx, st := newSuite(t)
			sessionRepo := NewSessionRepository(st.Storage, 0)

			// Given: a session with a move on the board
			session := entity.NewPvPSession("123", "a", "b")
			session.Board[4] = entity.MarkA
			session.MoveCount = 1
			session.Turn = "b"
			require.NoError(t, sessionRepo.Save(ctx, session, 0))

			// When: Load is called with the existing id
			loaded, err := sessionRepo.Load(ctx, "123")

			// Then: the loaded session matches the saved one
			require.NoError(t, err)
			assert.Equal(t, session.Board, loaded.Board)
			assert.Equal(t, "b", loaded.Turn)
			assert.Equal(t, 1, loaded.MoveCount)
			assert.Equal(t, session.Version, loaded.Version)
		})

		t.Run("Load_NotFound", func(t *testing.T) {
			ctx, st := newSuite(t)
			sessionRepo := NewSessionRepository(st.Storage, 0)

			// When: Load is called with a non-existent id
			loaded, err := sessionRepo.Load(ctx, "9999999")

			// Then: an ErrSessionNotFound error should be returned
			require.ErrorIs(t, err, apperror.ErrSessionNotFound)
			assert.Nil(t, loaded)
		})
	})
}

func TestSessionRepository_Delete(t *testing.T) {
	suite.ForEachRedis(t, func(t *testing.T, newSuite suite.Factory) {
		t.Run("Delete_Success", func(t *testing.T) {
			ctx, st := newSuite(t)
			sessionRepo := NewSessionRepository(st.Storage, 0)

			require.NoError(t, sessionRepo.Save(ctx, entity.NewPvPSession("123", "a", "b"), 0))

			// When: Delete is called with the existing id
			require.NoError(t, sessionRepo.Delete(ctx, "123"))

			// Then: the session is gone
			_, err := sessionRepo.Load(ctx, "123")
			assert.ErrorIs(t, err, apperror.ErrSessionNotFound)
		})

		t.Run("Delete_NotFound", func(t *testing.T) {
			ctx, st := newSuite(t)
			sessionRepo := NewSessionRepository(st.Storage, 0)

			err := sessionRepo.Delete(ctx, "9999999")

			assert.ErrorIs(t, err, apperror.ErrSessionNotFound)
		})
	})
}
