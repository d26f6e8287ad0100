package service

import (
	"math"

	"github.com/rocketscienceinc/tictactoe-arena/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-arena/internal/entity"
	"github.com/rocketscienceinc/tictactoe-arena/internal/tictactoe"
)

const (
	scoreWin  = 1
	scoreDraw = 0
	scoreLoss = -1
)

// BestMove searches the whole remaining game tree and returns the lowest-indexed cell
// with the best score for botMark. Wins are not discounted by depth.
func BestMove(board entity.Board, botMark, opponentMark entity.Cell) (int, error) {
	if tictactoe.Evaluate(board).IsTerminal() {
		return 0, apperror.ErrNoAvailableMoves
	}

	search := &minimax{
		board:    board,
		botMark:  botMark,
		opponent: opponentMark,
	}

	bestScore, bestCell := math.MinInt, -1
	for cell := range search.board {
		if search.board[cell] != entity.EmptyCell {
			continue
		}

		if score := search.play(cell, botMark, false); score > bestScore {
			bestScore, bestCell = score, cell
		}
	}

	return bestCell, nil
}

// minimax owns a scratch copy of the board; every placed mark is removed before play
// returns.
type minimax struct {
	board    entity.Board
	botMark  entity.Cell
	opponent entity.Cell
}

func (that *minimax) play(cell int, mark entity.Cell, maximizing bool) int {
	that.board[cell] = mark
	defer func() {
		that.board[cell] = entity.EmptyCell
	}()

	return that.score(maximizing)
}

func (that *minimax) score(maximizing bool) int {
	switch outcome := tictactoe.Evaluate(that.board); outcome.Status {
	case entity.StatusWon:
		if outcome.Mark == that.botMark {
			return scoreWin
		}

		return scoreLoss
	case entity.StatusDrawn:
		return scoreDraw
	}

	if maximizing {
		best := math.MinInt
		for cell := range that.board {
			if that.board[cell] == entity.EmptyCell {
				best = max(best, that.play(cell, that.botMark, false))
			}
		}

		return best
	}

	best := math.MaxInt
	for cell := range that.board {
		if that.board[cell] == entity.EmptyCell {
			best = min(best, that.play(cell, that.opponent, true))
		}
	}

	return best
}
