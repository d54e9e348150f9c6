package engine

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
)

// Phase is the lifecycle stage of a game.
type Phase uint8

const (
	PhaseSetup Phase = iota
	PhaseInProgress
	PhaseTerminal
)

func (p Phase) String() string {
	switch p {
	case PhaseInProgress:
		return "in progress"
	case PhaseTerminal:
		return "terminal"
	default:
		return "setup"
	}
}

// Option configures a Game.
type Option func(*Game)

// WithLogger sets the logger used for debug output.
func WithLogger(logger *log.Logger) Option {
	return func(g *Game) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// WithNotifier sets the receiver of shot and game-over events.
func WithNotifier(n Notifier) Option {
	return func(g *Game) {
		g.notifier = n
	}
}

// WithRand sets the computer player's random source.
func WithRand(r Rand) Option {
	return func(g *Game) {
		if r != nil {
			g.rng = r
		}
	}
}

// Stats summarises both sides' shooting.
type Stats struct {
	HumanShots    int
	HumanHits     int
	ComputerShots int
	ComputerHits  int
}

// Game is a single human-versus-computer match.
type Game struct {
	player   *Board
	computer *Board
	moves    History
	opponent *Opponent

	phase  Phase
	turn   Side
	winner Side

	humanHits    int
	computerHits int

	rng      Rand
	notifier Notifier
	logger   *log.Logger
}

// New creates a game in the setup phase.
func New(opts ...Option) *Game {
	g := &Game{
		player: NewBoard(),
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		g.rng = NewRand(0)
	}
	g.opponent = NewOpponent(g.rng, g.logger)
	return g
}

// Phase returns the current lifecycle stage.
func (g *Game) Phase() Phase { return g.phase }

// Turn returns the side due to fire. Only meaningful in progress.
func (g *Game) Turn() Side { return g.turn }

// PlayerBoard returns the human's board.
func (g *Game) PlayerBoard() *Board { return g.player }

// ComputerBoard returns the computer's board, or nil during setup.
func (g *Game) ComputerBoard() *Board { return g.computer }

// Moves returns the human's shot history.
func (g *Game) Moves() *History { return &g.moves }

// ComputerMoves returns the computer's shot history.
func (g *Game) ComputerMoves() *History { return g.opponent.History() }

// Winner returns the winning side once the game is terminal.
func (g *Game) Winner() (Side, bool) {
	return g.winner, g.phase == PhaseTerminal
}

// Stats returns shot and hit counts for both sides.
func (g *Game) Stats() Stats {
	return Stats{
		HumanShots:    g.moves.Len(),
		HumanHits:     g.humanHits,
		ComputerShots: g.opponent.History().Len(),
		ComputerHits:  g.computerHits,
	}
}

// NextShip returns the next kind the human has to place.
func (g *Game) NextShip() (ShipKind, bool) {
	for _, kind := range Kinds() {
		if !g.player.Placed(kind) {
			return kind, true
		}
	}
	return 0, false
}

// PreviewShip validates the next ship at anchor without placing it.
func (g *Game) PreviewShip(dir Direction, anchor Coord) ([]Coord, error) {
	kind, ok := g.NextShip()
	if !ok || g.phase != PhaseSetup {
		return nil, ErrSetupComplete
	}
	return g.player.Validate(kind, dir, anchor)
}

// PlaceShip places the next human ship. After the fourth ship the computer
// fleet is generated and the human gets the first shot.
func (g *Game) PlaceShip(dir Direction, anchor Coord) error {
	kind, ok := g.NextShip()
	if !ok || g.phase != PhaseSetup {
		return ErrSetupComplete
	}
	if err := g.player.Place(kind, dir, anchor); err != nil {
		g.logger.Debug("placement rejected", "kind", kind, "dir", dir, "anchor", anchor, "err", err)
		return err
	}
	g.logger.Debug("ship placed", "kind", kind, "dir", dir, "anchor", anchor)

	if g.player.Complete() {
		g.computer = g.opponent.GenerateFleet()
		g.phase = PhaseInProgress
		g.turn = SideHuman
		g.logger.Debug("battle started")
	}
	return nil
}

func (g *Game) checkTurn(side Side) error {
	switch g.phase {
	case PhaseSetup:
		return ErrNotInProgress
	case PhaseTerminal:
		return ErrGameOver
	}
	if g.turn != side {
		return fmt.Errorf("%s: %w", side, ErrNotYourTurn)
	}
	return nil
}

// Fire resolves a human shot at target on the computer's board.
func (g *Game) Fire(target Coord) (Outcome, error) {
	if err := g.checkTurn(SideHuman); err != nil {
		return Outcome{}, err
	}
	if !target.InBounds() {
		return Outcome{}, fmt.Errorf("%s: %w", target, ErrOutOfBounds)
	}
	if err := g.moves.Add(target); err != nil {
		return Outcome{}, err
	}
	return g.resolve(SideHuman, target), nil
}

// ComputerTurn lets the computer fire until it misses or the game ends.
func (g *Game) ComputerTurn() ([]ShotEvent, error) {
	if err := g.checkTurn(SideComputer); err != nil {
		return nil, err
	}
	var shots []ShotEvent
	for g.phase == PhaseInProgress && g.turn == SideComputer {
		target := g.opponent.ChooseShot()
		out := g.resolve(SideComputer, target)
		shots = append(shots, ShotEvent{Side: SideComputer, Target: target, Outcome: out})
	}
	return shots, nil
}

func (g *Game) resolve(side Side, target Coord) Outcome {
	board := g.computer
	if side == SideComputer {
		board = g.player
	}

	out := board.ResolveShot(target)
	if out.Struck() {
		if side == SideHuman {
			g.humanHits++
		} else {
			g.computerHits++
		}
	}
	g.logger.Debug("shot", "side", side, "target", target, "result", out.Result, "kind", out.Kind)
	g.notify(ShotEvent{Side: side, Target: target, Outcome: out})

	if g.IsEnd() {
		g.phase = PhaseTerminal
		g.logger.Debug("game over", "winner", g.winner)
		g.notify(GameOverEvent{Winner: g.winner})
		return out
	}
	if !out.Struck() {
		g.turn = side.Opponent()
	}
	return out
}

// IsEnd reports whether either fleet is destroyed. Both fleets are always
// checked, the computer's first.
func (g *Game) IsEnd() bool {
	if g.computer == nil {
		return false
	}
	computerDown := g.computer.FleetDestroyed()
	humanDown := g.player.FleetDestroyed()
	switch {
	case computerDown:
		g.winner = SideHuman
	case humanDown:
		g.winner = SideComputer
	}
	return computerDown || humanDown
}

func (g *Game) notify(ev Event) {
	if g.notifier != nil {
		g.notifier.Notify(ev)
	}
}
