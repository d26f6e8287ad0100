package notify

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-arena/internal/entity"
	"github.com/rocketscienceinc/tictactoe-arena/testing/suite"
)

func TestPublisher_Announce(t *testing.T) {
	suite.ForEachRedis(t, func(t *testing.T, newSuite suite.Factory) {
		ctx, st := newSuite(t)

		// Given: a subscriber on the results channel
		subscription := st.Storage.Subscribe(ctx, ResultsChannel)
		t.Cleanup(func() { _ = subscription.Close() })

		_, err := subscription.Receive(ctx)
		require.NoError(t, err)

		session := entity.NewBotSession("g1", "alice", entity.EasyDifficulty)
		session.Status = entity.StatusWon
		session.Winner = "alice"
		session.MoveCount = 5

		// When: the game is announced
		NewPublisher(st.Logger, st.Storage).Announce(ctx, session)

		// Then: the subscriber receives the result
		select {
		case message := <-subscription.Channel():
			var announcement Announcement
			require.NoError(t, json.Unmarshal([]byte(message.Payload), &announcement))
			assert.Equal(t, Announcement{GameID: "g1", Mode: entity.ModeBot, Winner: "alice", MoveCount: 5}, announcement)
		case <-time.After(5 * time.Second):
			t.Fatal("announcement was not received")
		}
	})
}

func TestPublisher_Announce_ClosedClient(t *testing.T) {
	suite.ForEachRedis(t, func(t *testing.T, newSuite suite.Factory) {
		ctx, st := newSuite(t)

		// Given: a publisher whose client is already closed
		publisher := NewPublisher(st.Logger, st.Storage)
		require.NoError(t, st.Storage.Close())

		// Then: announcing does not panic or surface the failure
		assert.NotPanics(t, func() {
			publisher.Announce(ctx, &entity.Session{ID: "g1"})
		})
	})
}
