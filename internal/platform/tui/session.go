package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
)

type screen int

const (
	screenMenu screen = iota
	screenGame
	screenHistory
)

// SessionModel manages the full session flow: menu, game and history.
// It is the top-level model both locally and for SSH sessions.
type SessionModel struct {
	opts      Options
	sessionID string
	current   screen
	menu      MenuModel
	game      *GameModel
	history   *HistoryModel
	quitting  bool
}

// NewSessionModel creates a session that starts at the menu.
func NewSessionModel(opts Options) SessionModel {
	opts = opts.withDefaults()
	id := uuid.NewString()
	opts.Logger = opts.Logger.With("session", id)

	return SessionModel{
		opts:      opts,
		sessionID: id,
		menu:      newMenu(opts),
	}
}

func newMenu(opts Options) MenuModel {
	return NewMenuModel(opts.Config.ScreenW, opts.Config.ScreenH, opts.Player, opts.Store != nil)
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update routes messages to the active screen.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.opts.Config.ScreenW = wsm.Width
		m.opts.Config.ScreenH = wsm.Height
	}

	switch m.current {
	case screenGame:
		return m.updateGame(msg)
	case screenHistory:
		return m.updateHistory(msg)
	default:
		return m.updateMenu(msg)
	}
}

func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	switch m.menu.Chosen() {
	case ChoiceQuit:
		m.quitting = true
		return m, tea.Quit

	case ChoiceNewGame:
		gm := NewGameModel(NewGame(m.opts), m.opts)
		gm.embedded = true
		m.game = &gm
		m.current = screenGame
		m.opts.Logger.Debug("game started")
		return m, m.game.Init()

	case ChoiceHistory:
		hm := NewHistoryModel(m.opts.Store, m.opts.Player, m.opts.Config.ScreenW, m.opts.Config.ScreenH, m.opts.Logger)
		m.history = &hm
		m.current = screenHistory
		return m, nil
	}

	return m, cmd
}

func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.game.Update(msg)
	if gameModel, ok := newModel.(GameModel); ok {
		m.game = &gameModel
	}

	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.game.BackToMenu() {
		// the pending tick is dropped once no game is active
		m.toMenu()
		return m, nil
	}

	return m, cmd
}

func (m SessionModel) updateHistory(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(TickMsg); ok {
		return m, nil
	}

	newModel, cmd := m.history.Update(msg)
	if hm, ok := newModel.(HistoryModel); ok {
		m.history = &hm
	}

	if m.history.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.history.IsGoingBack() {
		m.toMenu()
		return m, nil
	}
	return m, cmd
}

func (m *SessionModel) toMenu() {
	m.current = screenMenu
	m.game = nil
	m.history = nil
	m.menu = newMenu(m.opts)
}

// View renders the active screen.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.current {
	case screenGame:
		return m.game.View()
	case screenHistory:
		return m.history.View()
	default:
		return m.menu.View()
	}
}

// SessionID identifies the session in logs.
func (m SessionModel) SessionID() string {
	return m.sessionID
}

// InGame reports whether a game is on screen.
func (m SessionModel) InGame() bool {
	return m.current == screenGame
}

// InHistory reports whether the history screen is shown.
func (m SessionModel) InHistory() bool {
	return m.current == screenHistory
}

// IsQuitting reports whether the session has ended.
func (m SessionModel) IsQuitting() bool {
	return m.quitting
}

// Run starts a session in the local terminal.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewSessionModel(opts),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
