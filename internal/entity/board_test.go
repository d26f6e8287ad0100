package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoard_EmptyCells(t *testing.T) {
	// Given: a board with three marks
	board := Board{
		MarkA, EmptyCell, MarkB,
		EmptyCell, MarkA, EmptyCell,
		EmptyCell, EmptyCell, EmptyCell,
	}

	// Then: free positions are listed in index order
	assert.Equal(t, []int{1, 3, 5, 6, 7, 8}, board.EmptyCells())
	assert.Equal(t, 2, board.Count(MarkA))
	assert.Equal(t, 1, board.Count(MarkB))
	assert.False(t, board.IsFull())
}

func TestBoard_IsFull(t *testing.T) {
	board := Board{
		MarkA, MarkB, MarkA,
		MarkB, MarkA, MarkB,
		MarkB, MarkA, MarkB,
	}

	assert.True(t, board.IsFull())
	assert.Empty(t, board.EmptyCells())
}

func TestCell_Opponent(t *testing.T) {
	assert.Equal(t, MarkB, MarkA.Opponent())
	assert.Equal(t, MarkA, MarkB.Opponent())
	assert.Equal(t, EmptyCell, EmptyCell.Opponent())
}

func TestCell_UnmarshalText(t *testing.T) {
	t.Run("Symbols decode to cells", func(t *testing.T) {
		var cell Cell
		require.NoError(t, cell.UnmarshalText([]byte("O")))
		assert.Equal(t, MarkB, cell)

		require.NoError(t, cell.UnmarshalText([]byte("")))
		assert.Equal(t, EmptyCell, cell)
	})

	t.Run("Unknown symbol returns ErrUnknownCell", func(t *testing.T) {
		var cell Cell
		assert.ErrorIs(t, cell.UnmarshalText([]byte("Z")), ErrUnknownCell)
	})

	t.Run("Out of range cell cannot be marshaled", func(t *testing.T) {
		_, err := Cell(7).MarshalText()
		assert.ErrorIs(t, err, ErrUnknownCell)
	})
}

func TestIsValidPosition(t *testing.T) {
	assert.True(t, IsValidPosition(0))
	assert.True(t, IsValidPosition(8))
	assert.False(t, IsValidPosition(-1))
	assert.False(t, IsValidPosition(9))
}
