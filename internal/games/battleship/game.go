// Package battleship is the full-screen battleship game. It adapts the
// turn engine to the tick-driven platform: the cursor, ship preview and
// message log live here, the rules live in the engine package.
package battleship

import (
	"errors"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-battleship/internal/config"
	"github.com/vovakirdan/tui-battleship/internal/core"
	"github.com/vovakirdan/tui-battleship/internal/games/battleship/engine"
)

const maxMessages = 6

// Game implements the interactive battleship game for the TUI platform.
type Game struct {
	match *engine.Game
	tick  uint64

	cursor engine.Coord
	dir    engine.Direction

	messages []string

	symbols [5]rune
	palette config.Palette
	logger  *log.Logger
	rng     engine.Rand // overrides the seed when set

	// Screen dimensions
	screenW  int
	screenH  int
	tickRate int

	paused   bool
	tooSmall bool
}

// Option configures a Game.
type Option func(*Game)

// WithLogger passes a logger through to the engine.
func WithLogger(logger *log.Logger) Option {
	return func(g *Game) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// WithRand fixes the computer's random source instead of seeding one on
// every Reset.
func WithRand(r engine.Rand) Option {
	return func(g *Game) {
		g.rng = r
	}
}

// New creates a game using cfg for symbols and colors. Call Reset before
// the first Step.
func New(cfg config.BattleshipConfig, opts ...Option) *Game {
	palette, err := cfg.Colors.Palette()
	if err != nil {
		cfg = config.DefaultBattleshipConfig()
		palette, _ = cfg.Colors.Palette()
	}
	if cfg.Symbols.Validate() != nil {
		cfg.Symbols = config.DefaultBattleshipConfig().Symbols
	}

	g := &Game{
		symbols: cfg.Symbols.Runes(),
		palette: palette,
		logger:  log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "battleship"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Battleship"
}

// Reset starts a new match.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	rng := g.rng
	if rng == nil {
		rng = engine.NewRand(cfg.Seed)
	}

	g.match = engine.New(
		engine.WithRand(rng),
		engine.WithLogger(g.logger),
		engine.WithNotifier(engine.NotifierFunc(g.notify)),
	)
	g.tick = 0
	g.cursor = engine.C(engine.BoardSize/2, engine.BoardSize/2)
	g.dir = engine.DirRight
	g.messages = nil
	g.paused = false
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.tickRate = cfg.TickRate

	g.push("Place your fleet. Arrows move, Space rotates, Enter places.")
	g.checkScreenSize()
}

// Resize updates the screen dimensions without restarting the match.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.checkScreenSize()
}

func (g *Game) checkScreenSize() {
	g.tooSmall = g.screenW < minWidth || g.screenH < minHeight
}

func (g *Game) notify(ev engine.Event) {
	g.push(ev.Message())
}

func (g *Game) push(msg string) {
	g.messages = append(g.messages, msg)
	if len(g.messages) > maxMessages {
		g.messages = g.messages[len(g.messages)-maxMessages:]
	}
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused || g.match.Phase() == engine.PhaseTerminal {
		return core.StepResult{State: g.State()}
	}

	g.moveCursor(in)

	switch g.match.Phase() {
	case engine.PhaseSetup:
		g.stepSetup(in)
	case engine.PhaseInProgress:
		g.stepBattle(in)
	}

	return core.StepResult{State: g.State()}
}

func (g *Game) moveCursor(in core.InputFrame) {
	switch {
	case in.Has(core.ActionUp):
		g.cursor.Row--
	case in.Has(core.ActionDown):
		g.cursor.Row++
	case in.Has(core.ActionLeft):
		g.cursor.Col--
	case in.Has(core.ActionRight):
		g.cursor.Col++
	}
	g.cursor.Col = core.Clamp(g.cursor.Col, 0, engine.BoardSize-1)
	g.cursor.Row = core.Clamp(g.cursor.Row, 0, engine.BoardSize-1)
}

func (g *Game) stepSetup(in core.InputFrame) {
	if in.Has(core.ActionRotate) {
		g.dir = g.dir.Rotate()
	}
	if !in.Has(core.ActionConfirm) {
		return
	}

	kind, _ := g.match.NextShip()
	if err := g.match.PlaceShip(g.dir, g.cursor); err != nil {
		g.push(engine.PlacementRejectedEvent{Kind: kind, Err: err}.Message())
		return
	}

	if g.match.Phase() == engine.PhaseInProgress {
		g.push("Your fleet is ready. Fire at will!")
		g.cursor = engine.C(engine.BoardSize/2, engine.BoardSize/2)
		return
	}
	next, _ := g.match.NextShip()
	g.push("Your " + kind.String() + " is in position. Now your " + next.String() + ".")
}

func (g *Game) stepBattle(in core.InputFrame) {
	if !in.Has(core.ActionConfirm) {
		return
	}

	_, err := g.match.Fire(g.cursor)
	switch {
	case errors.Is(err, engine.ErrDuplicateShot):
		g.push(engine.ShotRejectedEvent{Target: g.cursor, Err: err}.Message())
		return
	case err != nil:
		g.logger.Warn("shot rejected", "target", g.cursor, "err", err)
		return
	}

	if g.match.Phase() == engine.PhaseInProgress && g.match.Turn() == engine.SideComputer {
		if _, err := g.match.ComputerTurn(); err != nil {
			g.logger.Error("computer turn failed", "err", err)
		}
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	winner, over := g.match.Winner()
	return core.GameState{
		GameOver: over,
		Won:      over && winner == engine.SideHuman,
		Paused:   g.paused || g.tooSmall,
	}
}

// Match exposes the underlying engine game.
func (g *Game) Match() *engine.Game {
	return g.match
}

// Elapsed returns the number of seconds played, derived from ticks.
func (g *Game) Elapsed() int {
	if g.tickRate <= 0 {
		return 0
	}
	return int(g.tick / uint64(g.tickRate))
}

// Controls returns the control hints for the current phase.
func (g *Game) Controls() string {
	if g.match == nil {
		return ""
	}
	switch g.match.Phase() {
	case engine.PhaseSetup:
		return "Arrows/WASD: Move | Space: Rotate | Enter: Place | P: Pause | Q: Quit"
	case engine.PhaseInProgress:
		return "Arrows/WASD: Aim | Enter: Fire | P: Pause | Q: Quit"
	default:
		return "R: Restart | B/Esc: Back | Q: Quit"
	}
}
