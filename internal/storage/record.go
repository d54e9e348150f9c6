package storage

import "github.com/vovakirdan/tui-battleship/internal/games/battleship/engine"

// RecordFor builds the record of a finished match. ok is false while the
// game is still running.
func RecordFor(g *engine.Game, mode, player string, durationSecs int) (rec MatchRecord, ok bool) {
	winner, over := g.Winner()
	if !over {
		return MatchRecord{}, false
	}

	st := g.Stats()
	rec = MatchRecord{
		Mode:          mode,
		Player:        player,
		Winner:        WinnerComputer,
		HumanShots:    st.HumanShots,
		HumanHits:     st.HumanHits,
		ComputerShots: st.ComputerShots,
		ComputerHits:  st.ComputerHits,
		Duration:      durationSecs,
	}
	if winner == engine.SideHuman {
		rec.Winner = WinnerHuman
	}
	return rec, true
}
