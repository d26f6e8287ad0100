// Package render turns sessions into text for chat-style clients.
package render

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-arena/internal/entity"
)

const separator = "━━━━━━━━━━━━━━━━━━━━━━"

var symbols = map[entity.Cell]string{
	entity.EmptyCell: "⬜",
	entity.MarkA:     "❌",
	entity.MarkB:     "⭕",
}

// Board draws the grid with a header naming both sides and a status footer.
func Board(session *entity.Session) string {
	var sb strings.Builder

	sb.WriteString(separator + "\n")
	sb.WriteString(" TIC TAC TOE • ARENA\n")
	sb.WriteString(separator + "\n")
	fmt.Fprintf(&sb, "%s %s  •  %s %s\n\n", session.PlayerA, symbols[entity.MarkA], symbols[entity.MarkB], session.PlayerB)

	for row := 0; row < 3; row++ {
		cells := make([]string, 0, 3)
		for col := 0; col < 3; col++ {
			cells = append(cells, symbols[session.Board[row*3+col]])
		}

		sb.WriteString("    " + strings.Join(cells, "  ") + "\n")
	}

	sb.WriteString("\n" + Status(session) + "\n")
	sb.WriteString(separator)

	return sb.String()
}

// Status is the one-line summary shown under the grid.
func Status(session *entity.Session) string {
	switch session.Status {
	case entity.StatusWon:
		return fmt.Sprintf("Winner: %s", session.Winner)
	case entity.StatusDrawn:
		return "Draw"
	default:
		return fmt.Sprintf("Turn: %s", session.Turn)
	}
}
