package battleship

import "github.com/vovakirdan/tui-battleship/internal/games/battleship/engine"

// GameStateType represents the current game state.
type GameStateType string

const (
	StateSetup       GameStateType = "setup"
	StateBattle      GameStateType = "battle"
	StateWin         GameStateType = "win"
	StateLoss        GameStateType = "loss"
	StatePaused      GameStateType = "paused"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the observable game state for tests and debugging.
type Snapshot struct {
	Tick      uint64
	State     GameStateType
	Cursor    engine.Coord
	Direction engine.Direction
	NextShip  string // empty once the fleet is deployed
	Stats     engine.Stats
	Messages  []string
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	state := StateBattle
	winner, over := g.match.Winner()
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.paused:
		state = StatePaused
	case over && winner == engine.SideHuman:
		state = StateWin
	case over:
		state = StateLoss
	case g.match.Phase() == engine.PhaseSetup:
		state = StateSetup
	}

	next := ""
	if kind, ok := g.match.NextShip(); ok {
		next = kind.String()
	}

	return Snapshot{
		Tick:      g.tick,
		State:     state,
		Cursor:    g.cursor,
		Direction: g.dir,
		NextShip:  next,
		Stats:     g.match.Stats(),
		Messages:  append([]string(nil), g.messages...),
	}
}
