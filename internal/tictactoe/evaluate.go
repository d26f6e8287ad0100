package tictactoe

import "github.com/rocketscienceinc/tictactoe-arena/internal/entity"

// Outcome is the verdict of Evaluate. Mark and Line are set only for a won board.
type Outcome struct {
	Status string
	Mark   entity.Cell
	Line   entity.Line
}

func (that Outcome) IsTerminal() bool {
	return that.Status != entity.StatusOngoing
}

// Evaluate reports the first completed line in entity.WinLines order, a draw on a full
// board, or an ongoing game. It accepts any board, reachable or not.
func Evaluate(board entity.Board) Outcome {
	if mark, line, ok := winningLine(&board); ok {
		return Outcome{Status: entity.StatusWon, Mark: mark, Line: line}
	}

	// the game will continue until all the squares are full
	if !board.IsFull() {
		return Outcome{Status: entity.StatusOngoing}
	}

	return Outcome{Status: entity.StatusDrawn}
}

func winningLine(board *entity.Board) (entity.Cell, entity.Line, bool) {
	for _, line := range entity.WinLines {
		a, b, c := board[line[0]], board[line[1]], board[line[2]]
		if a != entity.EmptyCell && a == b && b == c {
			return a, line, true
		}
	}

	return entity.EmptyCell, entity.Line{}, false
}
