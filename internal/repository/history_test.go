package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-arena/internal/entity"
	"github.com/rocketscienceinc/tictactoe-arena/testing/suite"
)

func finishedSession(id, playerA, playerB, winner string) *entity.Session {
	session := entity.NewPvPSession(id, playerA, playerB)
	session.Board = entity.Board{entity.MarkA, entity.MarkA, entity.MarkA, entity.MarkB, entity.MarkB}
	session.MoveCount = 5
	session.Status = entity.StatusWon
	session.Winner = winner

	return session
}

func TestHistoryRepository(t *testing.T) {
	t.Run("Record_And_List", func(t *testing.T) {
		ctx, st := suite.NewSQLite(t)
		historyRepo := NewHistoryRepository(st.Connection)

		clock := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
		historyRepo.(*historyRepository).now = func() time.Time {
			clock = clock.Add(time.Minute)
			return clock
		}

		// Given: two games for alice and one without her
		require.NoError(t, historyRepo.Record(ctx, finishedSession("g1", "alice", "bob", "alice")))
		require.NoError(t, historyRepo.Record(ctx, finishedSession("g2", "carol", "alice", "carol")))
		require.NoError(t, historyRepo.Record(ctx, finishedSession("g3", "carol", "dave", "carol")))

		// When: listing alice's games
		records, err := historyRepo.ListByPlayer(ctx, "alice", 10)
		require.NoError(t, err)

		// Then: her games come back newest first with the board intact
		require.Len(t, records, 2)
		assert.Equal(t, "g2", records[0].GameID)
		assert.Equal(t, "g1", records[1].GameID)
		assert.Equal(t, entity.ModePvP, records[1].Mode)
		assert.Equal(t, "alice", records[1].Winner)
		assert.Equal(t, 5, records[1].MoveCount)
		assert.Equal(t, entity.MarkA, records[1].Board[2])
		assert.Equal(t, time.Date(2026, 1, 2, 3, 5, 5, 0, time.UTC), records[1].FinishedAt)
	})

	t.Run("Record_Twice_KeepsFirst", func(t *testing.T) {
		ctx, st := suite.NewSQLite(t)
		historyRepo := NewHistoryRepository(st.Connection)

		require.NoError(t, historyRepo.Record(ctx, finishedSession("g1", "alice", "bob", "alice")))
		require.NoError(t, historyRepo.Record(ctx, finishedSession("g1", "alice", "bob", "bob")))

		records, err := historyRepo.ListByPlayer(ctx, "bob", 10)
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, "alice", records[0].Winner)
	})

	t.Run("List_RespectsLimit", func(t *testing.T) {
		ctx, st := suite.NewSQLite(t)
		historyRepo := NewHistoryRepository(st.Connection)

		for _, id := range []string{"g1", "g2", "g3"} {
			require.NoError(t, historyRepo.Record(ctx, finishedSession(id, "alice", entity.BotID, "alice")))
		}

		records, err := historyRepo.ListByPlayer(ctx, "alice", 2)
		require.NoError(t, err)
		assert.Len(t, records, 2)
	})
}
