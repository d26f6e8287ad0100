package apperror

import "errors"

var (
	ErrGameFinished       = errors.New("game is already finished")
	ErrPositionOutOfRange = errors.New("position is out of range")
	ErrNotYourTurn        = errors.New("it's not your turn")
	ErrCellOccupied       = errors.New("cell is already occupied")
	ErrNoAvailableMoves   = errors.New("no available moves")

	ErrSessionNotFound   = errors.New("game not found")
	ErrStaleSession      = errors.New("game was changed concurrently")
	ErrChallengeNotFound = errors.New("challenge not found or expired")
	ErrSelfChallenge     = errors.New("can't accept your own challenge")
	ErrInvalidDifficulty = errors.New("invalid difficulty")
	ErrInvalidPlayer     = errors.New("invalid player id")
)
