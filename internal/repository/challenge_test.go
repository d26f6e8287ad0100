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

func TestChallengeRepository(t *testing.T) {
	suite.ForEachRedis(t, func(t *testing.T, newSuite suite.Factory) {
		t.Run("Take_OnlyOnce", func(t *testing.T) {
			ctx, st := newSuite(t)
			challengeRepo := NewChallengeRepository(st.Storage, time.Minute)

			// Given: an open challenge
			challenge := &entity.Challenge{ID: "c1", ChallengerID: "alice", CreatedAt: time.Now().UTC()}
			require.NoError(t, challengeRepo.Create(ctx, challenge))

			// When: it is taken twice
			taken, err := challengeRepo.Take(ctx, "c1")
			require.NoError(t, err)
			_, err = challengeRepo.Take(ctx, "c1")

			// Then: the first take returns it and the second finds nothing
			assert.Equal(t, "alice", taken.ChallengerID)
			assert.ErrorIs(t, err, apperror.ErrChallengeNotFound)
		})

		t.Run("Get_KeepsChallengeOpen", func(t *testing.T) {
			ctx, st := newSuite(t)
			challengeRepo := NewChallengeRepository(st.Storage, time.Minute)

			require.NoError(t, challengeRepo.Create(ctx, &entity.Challenge{ID: "c4", ChallengerID: "carol"}))

			got, err := challengeRepo.Get(ctx, "c4")
			require.NoError(t, err)
			assert.Equal(t, "carol", got.ChallengerID)

			_, err = challengeRepo.Take(ctx, "c4")
			require.NoError(t, err)

			_, err = challengeRepo.Get(ctx, "c4")
			assert.ErrorIs(t, err, apperror.ErrChallengeNotFound)
		})

		t.Run("Create_SetsTimeout", func(t *testing.T) {
			ctx, st := newSuite(t)
			challengeRepo := NewChallengeRepository(st.Storage, time.Minute)

			require.NoError(t, challengeRepo.Create(ctx, &entity.Challenge{ID: "c2", ChallengerID: "bob"}))

			ttl, err := st.Storage.TTL(ctx, "challenge:c2").Result()
			require.NoError(t, err)
			assert.Positive(t, ttl)
			assert.LessOrEqual(t, ttl, time.Minute)
		})

		t.Run("Delete", func(t *testing.T) {
			ctx, st := newSuite(t)
			challengeRepo := NewChallengeRepository(st.Storage, time.Minute)

			require.NoError(t, challengeRepo.Create(ctx, &entity.Challenge{ID: "c3", ChallengerID: "bob"}))

			require.NoError(t, challengeRepo.Delete(ctx, "c3"))
			assert.ErrorIs(t, challengeRepo.Delete(ctx, "c3"), apperror.ErrChallengeNotFound)
		})
	})
}
