package entity

import (
	"errors"
	"fmt"
	"time"
)

const (
	StatusOngoing = "ongoing"
	StatusWon     = "won"
	StatusDrawn   = "drawn"
)

const (
	ModeBot = "bot"
	ModePvP = "pvp"
)

const (
	// BotID is the participant id of the automated opponent.
	BotID = "bot"
	// DrawWinner is stored as the winner of a drawn game.
	DrawWinner = "draw"
)

type Difficulty string

const (
	EasyDifficulty       Difficulty = "easy"
	MediumDifficulty     Difficulty = "medium"
	HardDifficulty       Difficulty = "hard"
	ImpossibleDifficulty Difficulty = "impossible"
)

var ErrUnknownDifficulty = errors.New("unknown difficulty")

func ParseDifficulty(value string) (Difficulty, error) {
	switch difficulty := Difficulty(value); difficulty {
	case EasyDifficulty, MediumDifficulty, HardDifficulty, ImpossibleDifficulty:
		return difficulty, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownDifficulty, value)
	}
}

// Session is one game from creation until it reaches a terminal status.
type Session struct {
	ID          string     `json:"id"`
	Mode        string     `json:"mode"`
	PlayerA     string     `json:"player_a"`
	PlayerB     string     `json:"player_b"`
	Board       Board      `json:"board"`
	Turn        string     `json:"turn"`
	Difficulty  Difficulty `json:"difficulty,omitempty"`
	MoveCount   int        `json:"move_count"`
	Status      string     `json:"status"`
	Winner      string     `json:"winner,omitempty"`
	WinningLine *Line      `json:"winning_line,omitempty"`

	// Version is the optimistic concurrency token of the stored copy.
	Version int64 `json:"version"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewBotSession creates a human versus bot game. The human always moves first.
func NewBotSession(id, playerID string, difficulty Difficulty) *Session {
	session := newSession(id, ModeBot, playerID, BotID)
	session.Difficulty = difficulty

	return session
}

// NewPvPSession creates a game between two humans, playerA moves first.
func NewPvPSession(id, playerA, playerB string) *Session {
	return newSession(id, ModePvP, playerA, playerB)
}

func newSession(id, mode, playerA, playerB string) *Session {
	now := time.Now().UTC()

	return &Session{
		ID:        id,
		Mode:      mode,
		PlayerA:   playerA,
		PlayerB:   playerB,
		Turn:      playerA,
		Status:    StatusOngoing,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (that *Session) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that *Session) IsFinished() bool {
	return that.Status == StatusWon || that.Status == StatusDrawn
}

// IsStarted distinguishes a created game from one that has seen a move.
func (that *Session) IsStarted() bool {
	return that.MoveCount > 0
}

func (that *Session) IsWithBot() bool {
	return that.Mode == ModeBot
}

// MarkOf returns the mark placed by the participant, or EmptyCell for strangers.
func (that *Session) MarkOf(participantID string) Cell {
	switch participantID {
	case that.PlayerA:
		return MarkA
	case that.PlayerB:
		return MarkB
	default:
		return EmptyCell
	}
}

// ParticipantOf returns the participant owning the mark.
func (that *Session) ParticipantOf(mark Cell) string {
	switch mark {
	case MarkA:
		return that.PlayerA
	case MarkB:
		return that.PlayerB
	default:
		return ""
	}
}

// Opponent returns the other participant of the session.
func (that *Session) Opponent(participantID string) string {
	if participantID == that.PlayerA {
		return that.PlayerB
	}

	return that.PlayerA
}

// Humans returns the participants that are not the bot.
func (that *Session) Humans() []string {
	humans := make([]string, 0, 2)
	for _, id := range []string{that.PlayerA, that.PlayerB} {
		if id != BotID {
			humans = append(humans, id)
		}
	}

	return humans
}

// ResultFor returns the finished game's outcome for one participant.
func (that *Session) ResultFor(participantID string) Result {
	switch that.Winner {
	case DrawWinner:
		return ResultDraw
	case participantID:
		return ResultWin
	default:
		return ResultLoss
	}
}
