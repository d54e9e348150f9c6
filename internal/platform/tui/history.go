package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-battleship/internal/storage"
)

const maxHistory = 100

// HistoryKeyMap defines the key bindings for the history screen.
type HistoryKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Filter key.Binding
	Back   key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k HistoryKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Filter, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k HistoryKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Filter},
		{k.Back, k.Quit},
	}
}

// DefaultHistoryKeyMap returns default key bindings.
func DefaultHistoryKeyMap() HistoryKeyMap {
	return HistoryKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Filter: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "mine/all"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// HistoryModel lists recorded matches with a summary of the results.
type HistoryModel struct {
	store     *storage.Store
	player    string
	showAll   bool
	matches   []storage.MatchRecord
	stats     *storage.MatchStats
	loadErr   error
	table     table.Model
	help      help.Model
	keys      HistoryKeyMap
	logger    *log.Logger
	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewHistoryModel creates the history screen for player. An empty
// player shows every match.
func NewHistoryModel(store *storage.Store, player string, width, height int, logger *log.Logger) HistoryModel {
	h := help.New()
	h.Width = width

	m := HistoryModel{
		store:   store,
		player:  player,
		showAll: player == "",
		help:    h,
		keys:    DefaultHistoryKeyMap(),
		logger:  logger,
		width:   width,
		height:  height,
	}
	m.table = m.createTable()
	m.load()
	return m
}

func (m *HistoryModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Date", Width: 12},
		{Title: "Player", Width: 12},
		{Title: "Mode", Width: 7},
		{Title: "Result", Width: 7},
		{Title: "Shots", Width: 5},
		{Title: "Hits", Width: 4},
		{Title: "Acc", Width: 5},
		{Title: "Time", Width: 6},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-10, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// filter returns the player the listing is restricted to, "" for all.
func (m HistoryModel) filter() string {
	if m.showAll {
		return ""
	}
	return m.player
}

// load refreshes matches and stats from the store.
func (m *HistoryModel) load() {
	m.matches, m.stats, m.loadErr = nil, nil, nil
	if m.store != nil {
		m.matches, m.loadErr = m.store.RecentMatches(m.filter(), maxHistory)
		if m.loadErr == nil {
			m.stats, m.loadErr = m.store.Stats(m.filter())
		}
	}
	if m.loadErr != nil && m.logger != nil {
		m.logger.Error("cannot load match history", "err", m.loadErr)
	}
	m.table.SetRows(historyRows(m.matches))
	m.table.GotoTop()
}

func historyRows(matches []storage.MatchRecord) []table.Row {
	rows := make([]table.Row, len(matches))
	for i, rec := range matches {
		result := "loss"
		if rec.Won() {
			result = "win"
		}
		rows[i] = table.Row{
			rec.CreatedAt.Format("Jan 02 15:04"),
			rec.Player,
			rec.Mode,
			result,
			fmt.Sprintf("%d", rec.HumanShots),
			fmt.Sprintf("%d", rec.HumanHits),
			fmt.Sprintf("%.0f%%", rec.Accuracy()*100),
			formatDuration(rec.Duration),
		}
	}
	return rows
}

// formatDuration renders seconds as m:ss.
func formatDuration(secs int) string {
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}

// Init initializes the history model.
func (m HistoryModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the history screen.
func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, nil

		case key.Matches(msg, m.keys.Filter):
			if m.player != "" {
				m.showAll = !m.showAll
				m.load()
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.table.SetRows(historyRows(m.matches))
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the history screen.
func (m HistoryModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	title := "MATCH HISTORY - all players"
	if !m.showAll {
		title = "MATCH HISTORY - " + m.player
	}
	b.WriteString(centerText(titleStyle.Render(title), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.summary(), m.width))
	b.WriteString("\n\n")

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(boxStyle.Render(m.tableContent()))
	b.WriteString("\n")

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// summary is the one-line aggregate shown above the table.
func (m HistoryModel) summary() string {
	if m.stats == nil || m.stats.Played == 0 {
		return "No matches yet"
	}
	s := m.stats
	line := fmt.Sprintf("Played %d  Won %d  Lost %d  Win rate %.0f%%  Avg shots %.1f",
		s.Played, s.Wins, s.Losses, s.WinRate()*100, s.AvgShots)
	if s.BestWinShots > 0 {
		line += fmt.Sprintf("  Best win %d shots", s.BestWinShots)
	}
	return line
}

func (m HistoryModel) tableContent() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(1, 4)

	switch {
	case m.store == nil:
		return emptyStyle.Render("Match history is disabled.")
	case m.loadErr != nil:
		return emptyStyle.Render("Could not load match history.")
	case len(m.matches) == 0:
		return emptyStyle.Render("No matches recorded yet.\nSink a fleet to start your history!")
	}
	return m.table.View()
}

// Matches returns the listed matches, newest first.
func (m HistoryModel) Matches() []storage.MatchRecord {
	return m.matches
}

// ShowingAll reports whether matches of every player are listed.
func (m HistoryModel) ShowingAll() bool {
	return m.showAll
}

// IsGoingBack returns true if user wants to go back to menu.
func (m HistoryModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m HistoryModel) IsQuitting() bool {
	return m.quitting
}
