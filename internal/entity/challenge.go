package entity

import "time"

// Challenge is an open invitation to a game between two humans.
type Challenge struct {
	ID           string    `json:"id"`
	ChallengerID string    `json:"challenger_id"`
	CreatedAt    time.Time `json:"created_at"`
}

// GameRecord is an archived finished session.
type GameRecord struct {
	GameID     string     `json:"game_id"`
	Mode       string     `json:"mode"`
	PlayerA    string     `json:"player_a"`
	PlayerB    string     `json:"player_b"`
	Difficulty Difficulty `json:"difficulty,omitempty"`
	Board      Board      `json:"board"`
	Winner     string     `json:"winner"`
	MoveCount  int        `json:"move_count"`
	FinishedAt time.Time  `json:"finished_at"`
}

func NewGameRecord(session *Session, finishedAt time.Time) *GameRecord {
	return &GameRecord{
		GameID:     session.ID,
		Mode:       session.Mode,
		PlayerA:    session.PlayerA,
		PlayerB:    session.PlayerB,
		Difficulty: session.Difficulty,
		Board:      session.Board,
		Winner:     session.Winner,
		MoveCount:  session.MoveCount,
		FinishedAt: finishedAt.UTC(),
	}
}
