package entity

import (
	"errors"
	"fmt"
)

// BoardSize is the number of cells on the board.
const BoardSize = 9

// Cell is the content of a single board position.
type Cell uint8

const (
	EmptyCell Cell = iota
	MarkA
	MarkB
)

var cellSymbols = map[Cell]string{
	EmptyCell: "",
	MarkA:     "X",
	MarkB:     "O",
}

var ErrUnknownCell = errors.New("unknown cell value")

func (that Cell) String() string {
	return cellSymbols[that]
}

// Opponent returns the other mark. EmptyCell has no opponent.
func (that Cell) Opponent() Cell {
	switch that {
	case MarkA:
		return MarkB
	case MarkB:
		return MarkA
	default:
		return EmptyCell
	}
}

func (that Cell) MarshalText() ([]byte, error) {
	symbol, ok := cellSymbols[that]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownCell, that)
	}

	return []byte(symbol), nil
}

func (that *Cell) UnmarshalText(text []byte) error {
	for cell, symbol := range cellSymbols {
		if symbol == string(text) {
			*that = cell
			return nil
		}
	}

	return fmt.Errorf("%w: %q", ErrUnknownCell, text)
}

// Line is one of the fixed triples of positions that ends the game when uniformly marked.
type Line [3]int

// WinLines lists rows, then columns, then diagonals. The order is the tie-break for
// every scan over lines.
var WinLines = [8]Line{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Board is the 3x3 grid in row-major order.
type Board [BoardSize]Cell

// EmptyCells returns the free positions in index order.
func (that *Board) EmptyCells() []int {
	cells := make([]int, 0, BoardSize)
	for i, cell := range that {
		if cell == EmptyCell {
			cells = append(cells, i)
		}
	}

	return cells
}

// Count returns how many cells hold the given value.
func (that *Board) Count(cell Cell) int {
	count := 0
	for _, c := range that {
		if c == cell {
			count++
		}
	}

	return count
}

// IsFull reports whether no empty cell is left.
func (that *Board) IsFull() bool {
	return that.Count(EmptyCell) == 0
}

// IsValidPosition reports whether position addresses a cell of the board.
func IsValidPosition(position int) bool {
	return position >= 0 && position < BoardSize
}
