package service

import (
	"fmt"
	"math/rand/v2"

	"github.com/rocketscienceinc/tictactoe-arena/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-arena/internal/entity"
	"github.com/rocketscienceinc/tictactoe-arena/internal/tictactoe"
)

// Random picks an index in [0, n). Implementations must be safe for concurrent use.
type Random interface {
	IntN(n int) int
}

type globalRandom struct{}

func (globalRandom) IntN(n int) int {
	return rand.IntN(n) //nolint: gosec // it's ok
}

// DefaultRandom uses the runtime-seeded math/rand/v2 source.
func DefaultRandom() Random {
	return globalRandom{}
}

type BotService interface {
	ChooseMove(board entity.Board, difficulty entity.Difficulty, botMark, opponentMark entity.Cell) (int, error)
}

type botService struct {
	random Random
}

func NewBotService(random Random) BotService {
	if random == nil {
		random = DefaultRandom()
	}

	return &botService{
		random: random,
	}
}

// ChooseMove picks the bot's next cell. The board must be ongoing.
func (that *botService) ChooseMove(board entity.Board, difficulty entity.Difficulty, botMark, opponentMark entity.Cell) (int, error) {
	if tictactoe.Evaluate(board).IsTerminal() {
		return 0, apperror.ErrNoAvailableMoves
	}

	switch difficulty {
	case entity.EasyDifficulty:
		return that.randomMove(board), nil
	case entity.MediumDifficulty:
		return that.blockOrRandom(board, opponentMark), nil
	case entity.HardDifficulty:
		if cell, ok := findCompletingMove(board, botMark); ok {
			return cell, nil
		}

		return that.blockOrRandom(board, opponentMark), nil
	case entity.ImpossibleDifficulty:
		return BestMove(board, botMark, opponentMark)
	default:
		return 0, fmt.Errorf("%w: %q", apperror.ErrInvalidDifficulty, difficulty)
	}
}

func (that *botService) blockOrRandom(board entity.Board, opponentMark entity.Cell) int {
	if cell, ok := findCompletingMove(board, opponentMark); ok {
		return cell
	}

	return that.randomMove(board)
}

func (that *botService) randomMove(board entity.Board) int {
	availableCells := board.EmptyCells()

	return availableCells[that.random.IntN(len(availableCells))]
}

// findCompletingMove returns the free cell of the first line holding two marks and one
// empty cell.
func findCompletingMove(board entity.Board, mark entity.Cell) (int, bool) {
	for _, line := range entity.WinLines {
		marks, free := 0, -1

		for _, position := range line {
			switch board[position] {
			case mark:
				marks++
			case entity.EmptyCell:
				free = position
			}
		}

		if marks == 2 && free >= 0 {
			return free, true
		}
	}

	return 0, false
}
