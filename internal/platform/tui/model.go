package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-battleship/internal/config"
	"github.com/vovakirdan/tui-battleship/internal/core"
	"github.com/vovakirdan/tui-battleship/internal/games/battleship"
	"github.com/vovakirdan/tui-battleship/internal/storage"
)

// Options configures the models in this package.
type Options struct {
	Store      *storage.Store // nil disables match history
	Config     core.RuntimeConfig
	Battleship config.BattleshipConfig
	Player     string
	Mode       string // storage.ModeTUI or storage.ModeSSH
	Logger     *log.Logger
	Renderer   *lipgloss.Renderer // nil uses the default renderer

	// ScreenshotDir receives Ctrl+S dumps; empty means ~/.battleship/screenshots.
	ScreenshotDir string
}

func (o Options) withDefaults() Options {
	if o.Logger == nil {
		o.Logger = log.New(io.Discard)
	}
	if o.Mode == "" {
		o.Mode = storage.ModeTUI
	}
	if o.Player == "" {
		o.Player = "player"
	}
	if o.Config.TickRate <= 0 {
		o.Config.TickRate = core.DefaultConfig().TickRate
	}
	return o
}

// NewGame creates the battleship game described by opts.
func NewGame(opts Options) *battleship.Game {
	opts = opts.withDefaults()
	return battleship.New(opts.Battleship, battleship.WithLogger(opts.Logger))
}

// GameModel is the Bubble Tea model for one battleship game. When
// embedded in a session, Back returns to the menu instead of quitting.
type GameModel struct {
	game       *battleship.Game
	screen     *core.Screen
	renderer   *ScreenRenderer
	opts       Options
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper
	embedded   bool
	quitting   bool
	backToMenu bool
	matchSaved bool
	savedID    string
}

// NewGameModel wraps game in a model.
func NewGameModel(game *battleship.Game, opts Options) GameModel {
	opts = opts.withDefaults()
	cfg := opts.Config
	return GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		renderer:   NewScreenRenderer(opts.Renderer),
		opts:       opts,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
	}
}

// Init starts a new match and the tick loop.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		m.game.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		if path, err := m.saveScreenshot(); err != nil {
			m.opts.Logger.Warn("screenshot failed", "err", err)
		} else {
			m.opts.Logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	if action == core.ActionBack && (m.gameState.GameOver || m.gameState.Paused) {
		if !m.embedded {
			m.quitting = true
			return m, tea.Quit
		}
		m.backToMenu = true
		return m, nil
	}

	if action != core.ActionNone {
		m.inputFrame.Set(action)
	}
	return m, nil
}

// handleTick processes simulation ticks.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.matchSaved = false
		m.savedID = ""
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if m.gameState.GameOver && !m.matchSaved {
		m.saveMatch()
		m.matchSaved = true
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// saveMatch records the finished match. Storage failures are logged and
// never interrupt play.
func (m *GameModel) saveMatch() {
	rec, ok := storage.RecordFor(m.game.Match(), m.opts.Mode, m.opts.Player, m.game.Elapsed())
	if !ok {
		return
	}
	m.opts.Logger.Info("match finished", "winner", rec.Winner, "shots", rec.HumanShots, "hits", rec.HumanHits)
	if m.opts.Store == nil {
		return
	}
	id, err := m.opts.Store.SaveMatch(rec)
	if err != nil {
		m.opts.Logger.Error("cannot save match", "err", err)
		return
	}
	m.savedID = id
}

// saveScreenshot writes the current screen as plain text.
func (m *GameModel) saveScreenshot() (string, error) {
	m.game.Render(m.screen)

	dir := m.opts.ScreenshotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot get home directory: %w", err)
		}
		dir = filepath.Join(home, ".battleship", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("cannot create screenshot directory: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("cannot write screenshot: %w", err)
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return m.renderer.Render(m.screen)
}

// Game returns the wrapped game.
func (m GameModel) Game() *battleship.Game {
	return m.game
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// SavedMatchID returns the storage ID of the finished match, if saved.
func (m GameModel) SavedMatchID() string {
	return m.savedID
}

// RunGame plays a single game in the local terminal.
func RunGame(opts Options) error {
	opts = opts.withDefaults()
	model := NewGameModel(NewGame(opts), opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
