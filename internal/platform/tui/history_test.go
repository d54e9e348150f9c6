package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-battleship/internal/storage"
	"github.com/vovakirdan/tui-battleship/internal/testutil"
)

func seedMatches(t *testing.T, store *storage.Store) {
	t.Helper()
	for _, rec := range []storage.MatchRecord{
		{Mode: storage.ModeTUI, Player: "alice", Winner: storage.WinnerHuman, HumanShots: 20, HumanHits: 12, Duration: 95},
		{Mode: storage.ModeSSH, Player: "bob", Winner: storage.WinnerComputer, HumanShots: 30, HumanHits: 9, Duration: 140},
		{Mode: storage.ModeTUI, Player: "alice", Winner: storage.WinnerComputer, HumanShots: 35, HumanHits: 11, Duration: 200},
	} {
		_, err := store.SaveMatch(rec)
		require.NoError(t, err)
	}
}

func TestHistoryFiltersByPlayer(t *testing.T) {
	store := openStore(t)
	seedMatches(t, store)

	m := NewHistoryModel(store, "alice", 100, 30, testutil.NopLogger())
	require.Len(t, m.Matches(), 2)
	assert.False(t, m.ShowingAll())
	assert.Contains(t, m.View(), "MATCH HISTORY - alice")
	assert.Contains(t, m.View(), "Played 2  Won 1  Lost 1  Win rate 50%")

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(HistoryModel)
	assert.True(t, m.ShowingAll())
	assert.Len(t, m.Matches(), 3)
	assert.Equal(t, "bob", m.Matches()[1].Player)
}

func TestHistoryWithoutPlayerShowsAll(t *testing.T) {
	store := openStore(t)
	seedMatches(t, store)

	m := NewHistoryModel(store, "", 100, 30, nil)
	assert.True(t, m.ShowingAll())

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.True(t, next.(HistoryModel).ShowingAll())
}

func TestHistoryRows(t *testing.T) {
	rows := historyRows([]storage.MatchRecord{
		{Player: "alice", Mode: storage.ModeTUI, Winner: storage.WinnerHuman, HumanShots: 20, HumanHits: 12, Duration: 95},
	})
	require.Len(t, rows, 1)
	assert.Equal(t, "win", rows[0][3])
	assert.Equal(t, "60%", rows[0][6])
	assert.Equal(t, "1:35", rows[0][7])
}

func TestHistoryWithoutStore(t *testing.T) {
	m := NewHistoryModel(nil, "alice", 80, 24, nil)
	assert.Empty(t, m.Matches())
	assert.Contains(t, m.View(), "Match history is disabled.")
}

func TestHistoryKeys(t *testing.T) {
	m := NewHistoryModel(nil, "alice", 80, 24, nil)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.True(t, next.(HistoryModel).IsGoingBack())

	next, cmd := m.Update(runeKey('q'))
	assert.True(t, next.(HistoryModel).IsQuitting())
	require.NotNil(t, cmd)
}
