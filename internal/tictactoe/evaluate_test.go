package tictactoe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-arena/internal/entity"
)

const (
	x = entity.MarkA
	o = entity.MarkB
	e = entity.EmptyCell
)

func TestEvaluate(t *testing.T) {
	t.Run("Winner X on a column", func(t *testing.T) {
		// Given: a board where X holds the first column
		board := entity.Board{x, o, e, x, o, e, x, e, e}

		// When: evaluating the board
		outcome := Evaluate(board)

		// Then: X wins on line 0-3-6
		require.Equal(t, entity.StatusWon, outcome.Status)
		assert.Equal(t, x, outcome.Mark)
		assert.Equal(t, entity.Line{0, 3, 6}, outcome.Line)
		assert.True(t, outcome.IsTerminal())
	})

	t.Run("Ongoing Game", func(t *testing.T) {
		// Given: a board where there is no winner yet
		board := entity.Board{x, o, x, e, o, e, x, e, e}

		// When: evaluating the board
		outcome := Evaluate(board)

		// Then: the game continues
		assert.Equal(t, entity.StatusOngoing, outcome.Status)
		assert.False(t, outcome.IsTerminal())
	})

	t.Run("Full board without a line is a draw", func(t *testing.T) {
		// Given: all nine cells filled and no three in a row
		board := entity.Board{x, o, x, o, x, o, o, x, o}

		// When: evaluating the board
		outcome := Evaluate(board)

		// Then: the game is drawn
		assert.Equal(t, entity.StatusDrawn, outcome.Status)
		assert.Equal(t, e, outcome.Mark)
	})

	t.Run("Full board with a line is a win, not a draw", func(t *testing.T) {
		board := entity.Board{x, x, x, o, o, x, x, o, o}

		outcome := Evaluate(board)

		assert.Equal(t, entity.StatusWon, outcome.Status)
		assert.Equal(t, entity.Line{0, 1, 2}, outcome.Line)
	})

	t.Run("First line in table order is reported", func(t *testing.T) {
		// Given: an unreachable board where X holds both the middle row and the first column
		board := entity.Board{x, o, o, x, x, x, x, o, o}

		// When: evaluating the board
		outcome := Evaluate(board)

		// Then: the row wins the tie-break over the column
		assert.Equal(t, entity.Line{3, 4, 5}, outcome.Line)
	})
}

func TestEvaluate_AllBoards(t *testing.T) {
	// Every one of the 3^9 boards yields exactly one known status.
	counts := map[string]int{}

	var board entity.Board
	for n := 0; n < 19683; n++ {
		value := n
		for i := range board {
			board[i] = entity.Cell(value % 3)
			value /= 3
		}

		outcome := Evaluate(board)
		counts[outcome.Status]++

		switch outcome.Status {
		case entity.StatusWon:
			require.NotEqual(t, e, outcome.Mark)
			for _, position := range outcome.Line {
				require.Equal(t, outcome.Mark, board[position])
			}
		case entity.StatusDrawn:
			require.True(t, board.IsFull())
		case entity.StatusOngoing:
			require.False(t, board.IsFull())
		default:
			t.Fatalf("unexpected status %q for board %v", outcome.Status, board)
		}
	}

	assert.Equal(t, 19683, counts[entity.StatusWon]+counts[entity.StatusDrawn]+counts[entity.StatusOngoing])
}
