package tui

import (
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-battleship/internal/config"
	"github.com/vovakirdan/tui-battleship/internal/core"
	"github.com/vovakirdan/tui-battleship/internal/games/battleship"
	"github.com/vovakirdan/tui-battleship/internal/games/battleship/engine"
	"github.com/vovakirdan/tui-battleship/internal/storage"
	"github.com/vovakirdan/tui-battleship/internal/testutil"
)

// computerFleet lays the computer's ships along rows 0-3 from column 0.
var computerFleet = []int{1, 0, 0, 1, 0, 1, 1, 0, 2, 1, 0, 3}

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "matches.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func testOptions(t *testing.T, store *storage.Store) Options {
	return Options{
		Store:         store,
		Config:        core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 30},
		Battleship:    config.DefaultBattleshipConfig(),
		Player:        "alice",
		Logger:        testutil.NopLogger(),
		ScreenshotDir: filepath.Join(t.TempDir(), "shots"),
	}
}

func newTestModel(t *testing.T, store *storage.Store, rng engine.Rand) GameModel {
	t.Helper()
	opts := testOptions(t, store)
	game := battleship.New(opts.Battleship, battleship.WithRand(rng), battleship.WithLogger(opts.Logger))
	m := NewGameModel(game, opts)
	m.Init()
	return m
}

func send(m GameModel, msgs ...tea.Msg) (GameModel, tea.Cmd) {
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		m = next.(GameModel)
	}
	return m, cmd
}

func tick() tea.Msg {
	return TickMsg{}
}

// winMatch deploys the human fleet and sinks the computer's through the
// engine, leaving the model to notice the result on its next tick.
func winMatch(t *testing.T, m GameModel) {
	t.Helper()
	match := m.Game().Match()
	for _, a := range []engine.Coord{{Col: 6, Row: 0}, {Col: 6, Row: 4}, {Col: 5, Row: 0}, {Col: 5, Row: 3}} {
		require.NoError(t, match.PlaceShip(engine.DirDown, a))
	}
	for _, kind := range engine.Kinds() {
		for _, c := range match.ComputerBoard().Placement(kind) {
			_, err := match.Fire(c)
			require.NoError(t, err)
		}
	}
	require.Equal(t, engine.PhaseTerminal, match.Phase())
}

func TestKeysDriveTheGame(t *testing.T) {
	m := newTestModel(t, nil, testutil.NewSeqRand())

	m, _ = send(m, tea.KeyMsg{Type: tea.KeyEnter}, tick())

	snap := m.Game().Snapshot()
	assert.Equal(t, "submarine", snap.NextShip)

	m, _ = send(m, tea.KeyMsg{Type: tea.KeySpace}, tick())
	assert.Equal(t, engine.DirDown, m.Game().Snapshot().Direction)
}

func TestQuitKey(t *testing.T) {
	m := newTestModel(t, nil, testutil.NewSeqRand())

	m, cmd := send(m, runeKey('q'))

	assert.True(t, m.IsQuitting())
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, m.View())
}

func TestMatchSavedOnce(t *testing.T) {
	store := openStore(t)
	m := newTestModel(t, store, testutil.NewSeqRand(computerFleet...))
	winMatch(t, m)

	m, _ = send(m, tick(), tick(), tick())

	matches, err := store.RecentMatches("", 10)
	require.NoError(t, err)
	require.Len(t, matches, 1)

	rec := matches[0]
	assert.Equal(t, m.SavedMatchID(), rec.MatchID)
	assert.Equal(t, storage.WinnerHuman, rec.Winner)
	assert.Equal(t, storage.ModeTUI, rec.Mode)
	assert.Equal(t, "alice", rec.Player)
	assert.Equal(t, 12, rec.HumanShots)
	assert.Equal(t, 12, rec.HumanHits)
	assert.Equal(t, 0, rec.ComputerShots)
}

func TestMatchWithoutStore(t *testing.T) {
	m := newTestModel(t, nil, testutil.NewSeqRand(computerFleet...))
	winMatch(t, m)

	m, _ = send(m, tick())

	assert.True(t, m.gameState.GameOver)
	assert.True(t, m.gameState.Won)
	assert.Empty(t, m.SavedMatchID())
}

func TestRestartStartsNewMatch(t *testing.T) {
	store := openStore(t)
	m := newTestModel(t, store, testutil.NewSeqRand(computerFleet...))
	winMatch(t, m)
	m, _ = send(m, tick())

	m, _ = send(m, runeKey('r'), tick())

	assert.Equal(t, battleship.StateSetup, m.Game().Snapshot().State)
	assert.False(t, m.matchSaved)
	assert.Empty(t, m.SavedMatchID())
}

func TestBackOnlyWhenOverOrPaused(t *testing.T) {
	m := newTestModel(t, nil, testutil.NewSeqRand())
	m.embedded = true

	m, _ = send(m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.BackToMenu())

	m, _ = send(m, runeKey('p'), tick(), tea.KeyMsg{Type: tea.KeyEsc})
	assert.True(t, m.BackToMenu())
}

func TestBackQuitsStandaloneGame(t *testing.T) {
	m := newTestModel(t, nil, testutil.NewSeqRand(computerFleet...))
	winMatch(t, m)

	m, cmd := send(m, tick(), runeKey('b'))

	assert.True(t, m.IsQuitting())
	assert.False(t, m.BackToMenu())
	require.NotNil(t, cmd)
}

func TestResizeKeepsMatch(t *testing.T) {
	m := newTestModel(t, nil, testutil.NewSeqRand())
	m, _ = send(m, tea.KeyMsg{Type: tea.KeyEnter}, tick())

	m, _ = send(m, tea.WindowSizeMsg{Width: 100, Height: 30})

	assert.Equal(t, "submarine", m.Game().Snapshot().NextShip)
	assert.Equal(t, 100, m.screen.Width())

	m, _ = send(m, tea.WindowSizeMsg{Width: 20, Height: 10}, tick())
	assert.Equal(t, battleship.StatePausedSmall, m.Game().Snapshot().State)
}

func TestScreenshot(t *testing.T) {
	m := newTestModel(t, nil, testutil.NewSeqRand())

	m, _ = send(m, tea.KeyMsg{Type: tea.KeyCtrlS})

	entries, err := os.ReadDir(m.opts.ScreenshotDir)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	data, err := os.ReadFile(filepath.Join(m.opts.ScreenshotDir, entries[0].Name()))
	require.NoError(t, err)
	assert.Contains(t, string(data), "B A T T L E S H I P")
}

func TestView(t *testing.T) {
	m := newTestModel(t, nil, testutil.NewSeqRand())
	assert.Contains(t, m.View(), "Your Fleet")
}
