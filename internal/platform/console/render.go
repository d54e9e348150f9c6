package console

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-battleship/internal/games/battleship/engine"
)

// Render prints the human's board, and the opponent's board beside it when
// opponent is non-nil. The opponent's ships are never shown.
func (c *Console) Render(own, opponent *engine.Board) {
	fmt.Fprint(c.out, c.boardText(own, opponent))
}

func (c *Console) boardText(own, opponent *engine.Board) string {
	var sb strings.Builder
	header := axisHeader()

	sb.WriteString("\n")
	if opponent != nil {
		sb.WriteString(c.label.Render("  Your Board:       Opponent's Board:") + "\n")
		sb.WriteString(c.label.Render("  "+header+"        "+header) + "\n")
	} else {
		sb.WriteString(c.label.Render("  Your Board:") + "\n")
		sb.WriteString(c.label.Render("  "+header) + "\n")
	}

	for row := range engine.BoardSize {
		sb.WriteString(c.label.Render(fmt.Sprintf("%d", row)) + " ")
		c.writeRow(&sb, own, row, false)
		if opponent != nil {
			sb.WriteString("    " + c.label.Render(fmt.Sprintf("%d", row)) + "  ")
			c.writeRow(&sb, opponent, row, true)
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func (c *Console) writeRow(sb *strings.Builder, b *engine.Board, row int, hidden bool) {
	for col := range engine.BoardSize {
		m := b.Marker(engine.C(col, row))
		if hidden && m.IsShip() {
			m = engine.MarkerEmpty
		}
		sb.WriteString(c.styles[m].Render(string(c.symbols[m])))
		sb.WriteString(" ")
	}
}

func axisHeader() string {
	labels := make([]string, engine.BoardSize)
	for i := range labels {
		labels[i] = fmt.Sprintf("%d", i)
	}
	return strings.Join(labels, " ")
}
