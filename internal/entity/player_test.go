package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlayer_WinRate(t *testing.T) {
	t.Run("No games played", func(t *testing.T) {
		player := &Player{ID: "alice"}

		assert.Zero(t, player.Games())
		assert.Zero(t, player.WinRate())
	})

	t.Run("Draws count as games", func(t *testing.T) {
		// Given: one win, one loss and two draws
		player := &Player{ID: "alice", Wins: 1, Losses: 1, Draws: 2}

		// Then: four games were played and a quarter were won
		assert.Equal(t, 4, player.Games())
		assert.InDelta(t, 25.0, player.WinRate(), 0.0001)
	})
}
