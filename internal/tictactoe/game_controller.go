package tictactoe

import (
	"fmt"
	"time"

	"github.com/rocketscienceinc/tictactoe-arena/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-arena/internal/entity"
)

// MakeTurn places the participant's mark on cell and advances the session. A failed
// check leaves the session untouched.
func MakeTurn(session *entity.Session, participantID string, cell int) error {
	if err := validateMove(session, participantID, cell); err != nil {
		return err
	}

	session.Board[cell] = session.MarkOf(participantID)
	session.MoveCount++
	session.UpdatedAt = time.Now().UTC()

	updateGameStatus(session)

	return nil
}

// validateMove - checks if the move is valid.
func validateMove(session *entity.Session, participantID string, cell int) error {
	if !session.IsOngoing() {
		return apperror.ErrGameFinished
	}

	if !entity.IsValidPosition(cell) {
		return fmt.Errorf("%w: cell %d", apperror.ErrPositionOutOfRange, cell)
	}

	if session.Turn != participantID {
		return apperror.ErrNotYourTurn
	}

	if session.Board[cell] != entity.EmptyCell {
		return fmt.Errorf("%w: cell %d", apperror.ErrCellOccupied, cell)
	}

	return nil
}

// updateGameStatus - checks the game status after a move.
func updateGameStatus(session *entity.Session) {
	outcome := Evaluate(session.Board)

	switch outcome.Status {
	case entity.StatusWon:
		line := outcome.Line
		session.Status = entity.StatusWon
		session.Winner = session.ParticipantOf(outcome.Mark)
		session.WinningLine = &line
	case entity.StatusDrawn:
		session.Status = entity.StatusDrawn
		session.Winner = entity.DrawWinner
	default:
		session.Turn = session.Opponent(session.Turn)
	}
}
