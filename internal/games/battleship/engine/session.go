package engine

import (
	"errors"
	"fmt"
)

// Input supplies validated values from the human. Implementations re-prompt
// on invalid text and return an error only when input is no longer
// available.
type Input interface {
	RequestDirection(kind ShipKind) (Direction, error)
	RequestAxisValue(prompt string) (int, error)
}

// Renderer draws the human's board and, once known, the opponent's board.
// opponent is nil during setup.
type Renderer interface {
	Render(own, opponent *Board)
}

// UI is everything the synchronous driver needs from a front end.
type UI interface {
	Input
	Renderer
	Notifier
}

// Prompts used by Play.
const (
	PromptAnchorColumn = "On what column is the back of your %s?"
	PromptAnchorRow    = "On what row is the back of your %s?"
	PromptStrikeColumn = "What column do you want to strike? "
	PromptStrikeRow    = "What row do you want to strike? "
)

// Play runs g from setup to the terminal state, reading moves from ui and
// pushing every event to it. It returns when the game ends or input fails.
func Play(g *Game, ui UI) error {
	g.notifier = ui

	if err := playSetup(g, ui); err != nil {
		return err
	}
	return playBattle(g, ui)
}

func playSetup(g *Game, ui UI) error {
	for g.phase == PhaseSetup {
		kind, ok := g.NextShip()
		if !ok {
			return ErrSetupComplete
		}
		ui.Render(g.player, nil)

		dir, err := ui.RequestDirection(kind)
		if err != nil {
			return fmt.Errorf("read direction: %w", err)
		}
		col, err := ui.RequestAxisValue(fmt.Sprintf(PromptAnchorColumn, kind))
		if err != nil {
			return fmt.Errorf("read column: %w", err)
		}
		row, err := ui.RequestAxisValue(fmt.Sprintf(PromptAnchorRow, kind))
		if err != nil {
			return fmt.Errorf("read row: %w", err)
		}

		err = g.PlaceShip(dir, C(col, row))
		switch {
		case err == nil:
		case errors.Is(err, ErrOutOfBounds), errors.Is(err, ErrOverlap):
			ui.Notify(PlacementRejectedEvent{Kind: kind, Err: err})
		default:
			return err
		}
	}
	return nil
}

func playBattle(g *Game, ui UI) error {
	ui.Render(g.player, g.computer)

	for g.phase == PhaseInProgress {
		if g.turn == SideComputer {
			if _, err := g.ComputerTurn(); err != nil {
				return err
			}
			ui.Render(g.player, g.computer)
			continue
		}

		col, err := ui.RequestAxisValue(PromptStrikeColumn)
		if err != nil {
			return fmt.Errorf("read column: %w", err)
		}
		row, err := ui.RequestAxisValue(PromptStrikeRow)
		if err != nil {
			return fmt.Errorf("read row: %w", err)
		}

		target := C(col, row)
		out, err := g.Fire(target)
		if errors.Is(err, ErrDuplicateShot) {
			ui.Notify(ShotRejectedEvent{Target: target, Err: err})
			continue
		}
		if err != nil {
			return err
		}
		if out.Struck() && g.phase == PhaseInProgress {
			ui.Render(g.player, g.computer)
		}
	}

	ui.Render(g.player, g.computer)
	return nil
}
