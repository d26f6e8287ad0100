package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-arena/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-arena/internal/entity"
	"github.com/rocketscienceinc/tictactoe-arena/internal/tictactoe"
)

func TestBestMove(t *testing.T) {
	t.Run("Empty board keeps the first of equal cells", func(t *testing.T) {
		// When: the search runs on an empty board
		cell, err := BestMove(entity.Board{}, x, o)

		// Then: every opening draws, so cell 0 is kept
		require.NoError(t, err)
		assert.Equal(t, 0, cell)
	})

	t.Run("Blocks an immediate threat", func(t *testing.T) {
		board := entity.Board{x, x, e, e, o, e, e, e, e}

		cell, err := BestMove(board, o, x)

		require.NoError(t, err)
		assert.Equal(t, 2, cell)
	})

	t.Run("Completes its own line", func(t *testing.T) {
		// Given: O wins at 5, and X would win at 2 if O waits
		board := entity.Board{x, x, e, o, o, e, x, e, e}

		// When: O searches
		cell, err := BestMove(board, o, x)

		// Then: only cell 2 and 5 keep O alive, and only 5 wins
		require.NoError(t, err)
		assert.Equal(t, 5, cell)
	})

	t.Run("Leaves the caller's board untouched", func(t *testing.T) {
		board := entity.Board{x, e, e, e, o, e, e, e, x}
		before := board

		_, err := BestMove(board, o, x)

		require.NoError(t, err)
		assert.Equal(t, before, board)
	})

	t.Run("Terminal board is rejected", func(t *testing.T) {
		_, err := BestMove(entity.Board{o, o, o, x, x, e, x, e, e}, o, x)

		assert.ErrorIs(t, err, apperror.ErrNoAvailableMoves)
	})
}

// exploreAgainstAll plays the search for botMark against every possible opponent reply
// and fails on any reachable opponent win.
func exploreAgainstAll(t *testing.T, board entity.Board, toMove, botMark entity.Cell) int {
	t.Helper()

	outcome := tictactoe.Evaluate(board)
	if outcome.IsTerminal() {
		if outcome.Status == entity.StatusWon {
			require.Equal(t, botMark, outcome.Mark, "opponent won on board %v", board)
		}

		return 1
	}

	if toMove == botMark {
		cell, err := BestMove(board, botMark, botMark.Opponent())
		require.NoError(t, err)
		require.Equal(t, e, board[cell])

		board[cell] = botMark

		return exploreAgainstAll(t, board, toMove.Opponent(), botMark)
	}

	games := 0
	for _, cell := range board.EmptyCells() {
		next := board
		next[cell] = toMove
		games += exploreAgainstAll(t, next, toMove.Opponent(), botMark)
	}

	return games
}

func TestBestMove_NeverLoses(t *testing.T) {
	t.Run("Moving first", func(t *testing.T) {
		games := exploreAgainstAll(t, entity.Board{}, x, x)
		assert.Positive(t, games)
	})

	t.Run("Moving second", func(t *testing.T) {
		games := exploreAgainstAll(t, entity.Board{}, x, o)
		assert.Positive(t, games)
	})
}

func TestBestMove_SelfPlayDraws(t *testing.T) {
	// Given: two searches playing each other from an empty board
	board := entity.Board{}
	mark := x

	// When: they alternate until the game ends
	for !tictactoe.Evaluate(board).IsTerminal() {
		cell, err := BestMove(board, mark, mark.Opponent())
		require.NoError(t, err)

		board[cell] = mark
		mark = mark.Opponent()
	}

	// Then: the game is a draw
	assert.Equal(t, entity.StatusDrawn, tictactoe.Evaluate(board).Status)
}
