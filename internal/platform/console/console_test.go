package console

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-battleship/internal/config"
	"github.com/vovakirdan/tui-battleship/internal/games/battleship/engine"
	"github.com/vovakirdan/tui-battleship/internal/testutil"
)

func newConsole(t *testing.T, input string) (*Console, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	c, err := New(strings.NewReader(input), &out, config.DefaultBattleshipConfig())
	require.NoError(t, err)
	return c, &out
}

func TestParseAxisValue(t *testing.T) {
	tests := []struct {
		in       string
		expected int
		err      error
	}{
		{"0", 0, nil},
		{"6", 6, nil},
		{" 3\n", 3, nil},
		{"7", 0, errOffMap},
		{"42", 0, errOffMap},
		{"99999999999999999999999", 0, errOffMap},
		{"-1", 0, errNotNumber},
		{"two", 0, errNotNumber},
		{"", 0, errNotNumber},
		{"3.5", 0, errNotNumber},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			v, err := ParseAxisValue(tt.in)
			if tt.err != nil {
				require.ErrorIs(t, err, tt.err)
				assert.ErrorIs(t, err, ErrInvalidInput)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, v)
		})
	}
}

func TestRequestAxisValueReprompts(t *testing.T) {
	c, out := newConsole(t, "x\n9\n4\n")

	v, err := c.RequestAxisValue("What row do you want to strike? ")
	require.NoError(t, err)
	assert.Equal(t, 4, v)
	assert.Equal(t,
		"What row do you want to strike? "+
			"That is not a number, please enter a number 0-6 "+
			"That number is off the map, please enter a number 0-6 ",
		out.String())
}

func TestRequestAxisValueLastLineWithoutNewline(t *testing.T) {
	c, _ := newConsole(t, "5")

	v, err := c.RequestAxisValue("? ")
	require.NoError(t, err)
	assert.Equal(t, 5, v)
}

func TestRequestAxisValueEOF(t *testing.T) {
	c, _ := newConsole(t, "nope\n")

	_, err := c.RequestAxisValue("? ")
	assert.ErrorIs(t, err, io.EOF)
}

func TestRequestDirection(t *testing.T) {
	c, out := newConsole(t, "sideways\nUP\n")

	d, err := c.RequestDirection(engine.PatrolBoat)
	require.NoError(t, err)
	assert.Equal(t, engine.DirUp, d)
	assert.Equal(t,
		"Does your patrol boat face left, right, up, or down? "+
			"That's not a valid direction, please enter left, right, up, or down. ",
		out.String())
}

func TestRenderOwnBoard(t *testing.T) {
	c, out := newConsole(t, "")
	b := engine.NewBoard()
	require.NoError(t, b.Place(engine.Destroyer, engine.DirRight, engine.C(0, 0)))
	require.NoError(t, b.Place(engine.PatrolBoat, engine.DirDown, engine.C(6, 5)))
	b.ResolveShot(engine.C(1, 0))
	b.ResolveShot(engine.C(3, 3))

	c.Render(b, nil)

	lines := strings.Split(out.String(), "\n")
	require.GreaterOrEqual(t, len(lines), 10)
	assert.Equal(t, "", lines[0])
	assert.Equal(t, "  Your Board:", lines[1])
	assert.Equal(t, "  0 1 2 3 4 5 6", lines[2])
	assert.Equal(t, "0 - X - + + + + ", lines[3])
	assert.Equal(t, "3 + + + O + + + ", lines[6])
	assert.Equal(t, "5 + + + + + + | ", lines[8])
}

func TestRenderHidesOpponentShips(t *testing.T) {
	c, out := newConsole(t, "")
	own := engine.NewBoard()
	opp := engine.NewBoard()
	require.NoError(t, opp.Place(engine.Battleship, engine.DirRight, engine.C(0, 0)))
	opp.ResolveShot(engine.C(0, 0))
	opp.ResolveShot(engine.C(0, 1))

	c.Render(own, opp)

	lines := strings.Split(out.String(), "\n")
	assert.Equal(t, "  Your Board:       Opponent's Board:", lines[1])
	assert.Equal(t, "  0 1 2 3 4 5 6        0 1 2 3 4 5 6", lines[2])
	assert.Equal(t, "0 + + + + + + +     0  X + + + + + + ", lines[3])
	assert.Equal(t, "1 + + + + + + +     1  O + + + + + + ", lines[4])
}

func TestNewRejectsBadConfig(t *testing.T) {
	cfg := config.DefaultBattleshipConfig()
	cfg.Symbols.Hit = "+"
	_, err := New(strings.NewReader(""), io.Discard, cfg)
	assert.Error(t, err)
}

func TestPlayClassicGame(t *testing.T) {
	// Human fleet on columns 5 and 6, then twelve shots at the computer's
	// fleet stacked on rows 0 to 3.
	var in strings.Builder
	in.WriteString("down\n6\n0\ndown\n6\n4\ndown\n5\n0\ndown\n5\n3\n")
	for _, kind := range engine.Kinds() {
		for _, cell := range engine.ShipCoordinates(kind, engine.DirRight, 0, int(kind)) {
			fmt.Fprintf(&in, "%d\n%d\n", cell.Col, cell.Row)
		}
	}

	c, out := newConsole(t, in.String())
	rng := testutil.NewSeqRand(1, 0, 0, 1, 0, 1, 1, 0, 2, 1, 0, 3)
	g := engine.New(engine.WithRand(rng), engine.WithLogger(testutil.NopLogger()))

	require.NoError(t, engine.Play(g, c))

	text := out.String()
	assert.Contains(t, text, "Does your battleship face left, right, up, or down? ")
	assert.Contains(t, text, "On what column is the back of your submarine?")
	assert.Contains(t, text, "You sunk your opponent's patrol boat!")
	assert.Contains(t, text, "Congratulations, you win!")
}
