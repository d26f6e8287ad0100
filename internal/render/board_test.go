package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rocketscienceinc/tictactoe-arena/internal/entity"
)

func TestBoard(t *testing.T) {
	// Given: a bot game with two moves
	session := entity.NewBotSession("g1", "alice", entity.EasyDifficulty)
	session.Board[0] = entity.MarkA
	session.Board[4] = entity.MarkB

	// When: rendering it
	text := Board(session)

	// Then: the grid rows and the turn are shown
	assert.Contains(t, text, "alice ❌  •  ⭕ bot")
	assert.Contains(t, text, "    ❌  ⬜  ⬜\n    ⬜  ⭕  ⬜\n    ⬜  ⬜  ⬜\n")
	assert.Contains(t, text, "Turn: alice")
	assert.True(t, strings.HasSuffix(text, separator))
}

func TestStatus(t *testing.T) {
	assert.Equal(t, "Winner: bob", Status(&entity.Session{Status: entity.StatusWon, Winner: "bob"}))
	assert.Equal(t, "Draw", Status(&entity.Session{Status: entity.StatusDrawn, Winner: entity.DrawWinner}))
	assert.Equal(t, "Turn: bob", Status(&entity.Session{Status: entity.StatusOngoing, Turn: "bob"}))
}
