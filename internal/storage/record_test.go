package storage

import (
	"testing"

	"github.com/vovakirdan/tui-battleship/internal/games/battleship/engine"
	"github.com/vovakirdan/tui-battleship/internal/testutil"
)

func TestRecordForRunningGame(t *testing.T) {
	g := engine.New(engine.WithRand(testutil.NewSeqRand()))
	if _, ok := RecordFor(g, ModeClassic, "alice", 10); ok {
		t.Fatal("expected no record for a game in setup")
	}
}

func TestRecordForComputerWin(t *testing.T) {
	rng := testutil.NewSeqRand(1, 0, 0, 1, 0, 1, 1, 0, 2, 1, 0, 3)
	g := engine.New(engine.WithRand(rng))
	anchors := []engine.Coord{{Col: 6, Row: 0}, {Col: 6, Row: 4}, {Col: 5, Row: 0}, {Col: 5, Row: 3}}
	for _, a := range anchors {
		if err := g.PlaceShip(engine.DirDown, a); err != nil {
			t.Fatalf("PlaceShip(%s): %v", a, err)
		}
	}

	// human misses once, then the computer hits every ship cell
	if _, err := g.Fire(engine.C(6, 6)); err != nil {
		t.Fatalf("Fire: %v", err)
	}
	for _, kind := range engine.Kinds() {
		for _, c := range g.PlayerBoard().Placement(kind) {
			rng.Queue(c.Col, c.Row)
		}
	}
	if _, err := g.ComputerTurn(); err != nil {
		t.Fatalf("ComputerTurn: %v", err)
	}

	rec, ok := RecordFor(g, ModeClassic, "alice", 42)
	if !ok {
		t.Fatal("expected a record for a finished game")
	}
	if rec.Winner != WinnerComputer || rec.Won() {
		t.Errorf("Winner = %q, expected %q", rec.Winner, WinnerComputer)
	}
	if rec.HumanShots != 1 || rec.HumanHits != 0 {
		t.Errorf("human shots/hits = %d/%d, expected 1/0", rec.HumanShots, rec.HumanHits)
	}
	if rec.ComputerShots != 12 || rec.ComputerHits != 12 {
		t.Errorf("computer shots/hits = %d/%d, expected 12/12", rec.ComputerShots, rec.ComputerHits)
	}
	if rec.Mode != ModeClassic || rec.Player != "alice" || rec.Duration != 42 {
		t.Errorf("unexpected record %+v", rec)
	}
}
