package battleship

import (
	"fmt"

	"github.com/vovakirdan/tui-battleship/internal/core"
	"github.com/vovakirdan/tui-battleship/internal/games/battleship/engine"
)

const (
	cellWidth  = 3                                // "[X]" with brackets around the cursor
	boardWidth = 2 + engine.BoardSize*cellWidth   // row label plus cells
	boardGap   = 6                                // space between the two boards
	layoutW    = boardWidth*2 + boardGap          // both boards side by side
	minWidth   = layoutW + 2                      // minimum screen width
	minHeight  = 14 + maxMessages + 2             // boards, log and controls
	boardTop   = 3                                // y of the board titles
	logTop     = boardTop + engine.BoardSize + 5  // y of the first log line
)

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	leftX := (g.screenW - layoutW) / 2
	rightX := leftX + boardWidth + boardGap

	g.renderHUD(dst)
	g.renderOwnBoard(dst, leftX, boardTop)
	g.renderEnemyBoard(dst, rightX, boardTop)
	g.renderLog(dst, leftX)
	dst.DrawTextCenteredColored(g.screenH-1, g.Controls(), core.ColorGray)

	g.renderOverlays(dst)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need at least %dx%d", minWidth, minHeight))
}

func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawTextCenteredColored(0, "B A T T L E S H I P", core.ColorBrightCyan)

	var status string
	switch g.match.Phase() {
	case engine.PhaseSetup:
		kind, _ := g.match.NextShip()
		status = fmt.Sprintf("Place your %s (%d) facing %s at %s", kind, kind.Length(), g.dir, g.cursor)
	case engine.PhaseInProgress:
		st := g.match.Stats()
		status = fmt.Sprintf("Your turn  Target %s  Shots %d  Hits %d", g.cursor, st.HumanShots, st.HumanHits)
	default:
		if winner, _ := g.match.Winner(); winner == engine.SideHuman {
			status = "Victory!"
		} else {
			status = "Defeat"
		}
	}
	dst.DrawTextCentered(1, status)
}

func (g *Game) drawAxes(dst *core.Screen, x, y int, title string) {
	dst.DrawTextColored(x+(boardWidth-len(title))/2, y, title, core.ColorBrightWhite)
	for i := range engine.BoardSize {
		label := rune('0' + i)
		dst.SetColored(x+2+i*cellWidth+1, y+1, label, g.palette.Grid)
		dst.SetColored(x, y+2+i, label, g.palette.Grid)
	}
}

func (g *Game) drawCell(dst *core.Screen, x, y int, c engine.Coord, sym rune, color core.Color, cursor bool) {
	px := x + 2 + c.Col*cellWidth
	py := y + 2 + c.Row
	if cursor {
		dst.SetColored(px, py, '[', g.palette.Cursor)
		dst.SetColored(px+2, py, ']', g.palette.Cursor)
	}
	dst.SetColored(px+1, py, sym, color)
}

func (g *Game) markerColor(m engine.Marker) core.Color {
	switch m {
	case engine.MarkerHorizontal, engine.MarkerVertical:
		return g.palette.Ship
	case engine.MarkerHit:
		return g.palette.Hit
	case engine.MarkerMiss:
		return g.palette.Miss
	default:
		return g.palette.Grid
	}
}

func (g *Game) renderOwnBoard(dst *core.Screen, x, y int) {
	g.drawAxes(dst, x, y, "Your Fleet")
	board := g.match.PlayerBoard()
	setup := g.match.Phase() == engine.PhaseSetup

	for row := range engine.BoardSize {
		for col := range engine.BoardSize {
			c := engine.C(col, row)
			m := board.Marker(c)
			g.drawCell(dst, x, y, c, g.symbols[m], g.markerColor(m), setup && c == g.cursor)
		}
	}

	if setup {
		g.renderPreview(dst, x, y)
	}
	dst.DrawTextColored(x, y+engine.BoardSize+3, fmt.Sprintf("Ships afloat: %d", afloat(board)), g.palette.Ship)
}

func (g *Game) renderPreview(dst *core.Screen, x, y int) {
	coords, err := g.match.PreviewShip(g.dir, g.cursor)
	color := g.palette.Preview
	if err != nil {
		color = g.palette.Invalid
	}
	sym := g.symbols[engine.MarkerVertical]
	if g.dir.Horizontal() {
		sym = g.symbols[engine.MarkerHorizontal]
	}
	for _, c := range coords {
		if c.InBounds() {
			g.drawCell(dst, x, y, c, sym, color, c == g.cursor)
		}
	}
}

func (g *Game) renderEnemyBoard(dst *core.Screen, x, y int) {
	g.drawAxes(dst, x, y, "Enemy Waters")
	board := g.match.ComputerBoard()
	battle := g.match.Phase() == engine.PhaseInProgress
	reveal := g.match.Phase() == engine.PhaseTerminal

	for row := range engine.BoardSize {
		for col := range engine.BoardSize {
			c := engine.C(col, row)
			m := engine.MarkerEmpty
			if board != nil {
				m = board.Marker(c)
			}
			color := g.markerColor(m)
			if m.IsShip() {
				if reveal {
					color = core.ColorGray
				} else {
					m = engine.MarkerEmpty
					color = g.palette.Grid
				}
			}
			g.drawCell(dst, x, y, c, g.symbols[m], color, battle && c == g.cursor)
		}
	}

	if board != nil {
		dst.DrawTextColored(x, y+engine.BoardSize+3, fmt.Sprintf("Enemy ships afloat: %d", afloat(board)), g.palette.Hit)
	}
}

func afloat(b *engine.Board) int {
	n := 0
	for _, kind := range engine.Kinds() {
		if b.RemainingCount(kind) > 0 {
			n++
		}
	}
	return n
}

func (g *Game) renderLog(dst *core.Screen, x int) {
	for i, msg := range g.messages {
		color := core.ColorDefault
		if i == len(g.messages)-1 {
			color = core.ColorBrightYellow
		}
		dst.DrawTextColored(x, logTop+i, msg, color)
	}
}

// renderOverlays draws game state overlays.
func (g *Game) renderOverlays(dst *core.Screen) {
	centerX := g.screenW / 2
	centerY := boardTop + engine.BoardSize/2 + 2

	if g.paused {
		g.drawOverlay(dst, centerX, centerY, core.ColorBrightWhite, "PAUSED", "Press P to resume")
		return
	}

	winner, over := g.match.Winner()
	if !over {
		return
	}
	st := g.match.Stats()
	summary := fmt.Sprintf("Shots: %d  Hits: %d", st.HumanShots, st.HumanHits)
	if winner == engine.SideHuman {
		g.drawOverlay(dst, centerX, centerY, core.ColorBrightGreen, "VICTORY", "Congratulations, you win!", summary, "Press R to restart")
		return
	}
	g.drawOverlay(dst, centerX, centerY, core.ColorBrightRed, "DEFEAT", "You have lost.", summary, "Press R to restart")
}

// drawOverlay draws a centered text overlay.
func (g *Game) drawOverlay(dst *core.Screen, centerX, centerY int, color core.Color, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len(line))
	}

	boxW := maxLen + 4
	boxH := len(lines) + 2
	box := core.NewRect(centerX-boxW/2, centerY-boxH/2, boxW, boxH)

	// Clear area behind overlay
	dst.DrawRect(box, ' ')
	dst.DrawBoxColored(box, color)

	for i, line := range lines {
		c := core.ColorDefault
		if i == 0 {
			c = color
		}
		dst.DrawTextColored(centerX-len(line)/2, box.Y+1+i, line, c)
	}
}
