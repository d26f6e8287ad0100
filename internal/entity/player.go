package entity

type Result string

const (
	ResultWin  Result = "win"
	ResultLoss Result = "loss"
	ResultDraw Result = "draw"
)

// Player is the accumulated score of one participant.
type Player struct {
	ID            string `json:"id"`
	Wins          int    `json:"wins"`
	Losses        int    `json:"losses"`
	Draws         int    `json:"draws"`
	Points        int    `json:"points"`
	CurrentStreak int    `json:"current_streak"`
	BestStreak    int    `json:"best_streak"`
}

func (that *Player) Games() int {
	return that.Wins + that.Losses + that.Draws
}

// WinRate is the share of won games in percent.
func (that *Player) WinRate() float64 {
	games := that.Games()
	if games == 0 {
		return 0
	}

	return float64(that.Wins) / float64(games) * 100
}
