// Package console is the line-based front end: it prompts on a reader,
// prints boards to a writer, and re-prompts until input is valid.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-battleship/internal/config"
	"github.com/vovakirdan/tui-battleship/internal/core"
	"github.com/vovakirdan/tui-battleship/internal/games/battleship/engine"
)

// ErrInvalidInput marks text that cannot be used as a move. It never
// leaves the re-prompt loops.
var ErrInvalidInput = errors.New("invalid input")

var (
	errNotNumber = fmt.Errorf("%w: not a number", ErrInvalidInput)
	errOffMap    = fmt.Errorf("%w: off the map", ErrInvalidInput)
)

const (
	promptDirection  = "Does your %s face left, right, up, or down? "
	repromptDir      = "That's not a valid direction, please enter left, right, up, or down. "
	repromptNotInt   = "That is not a number, please enter a number 0-%d "
	repromptOffBoard = "That number is off the map, please enter a number 0-%d "
)

// Console implements engine.UI over a text stream.
type Console struct {
	in  *bufio.Reader
	out io.Writer

	symbols [5]rune
	styles  map[engine.Marker]lipgloss.Style
	label   lipgloss.Style
}

var _ engine.UI = (*Console)(nil)

// New creates a console reading from r and writing to w. Colors are only
// emitted when w is a terminal that supports them.
func New(r io.Reader, w io.Writer, cfg config.BattleshipConfig) (*Console, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("console: %w", err)
	}
	palette, err := cfg.Colors.Palette()
	if err != nil {
		return nil, fmt.Errorf("console: %w", err)
	}

	renderer := lipgloss.NewRenderer(w)
	style := func(c core.Color) lipgloss.Style {
		s := renderer.NewStyle()
		if code := c.ANSI(); code != "" {
			s = s.Foreground(lipgloss.Color(code))
		}
		return s
	}

	return &Console{
		in:      bufio.NewReader(r),
		out:     w,
		symbols: cfg.Symbols.Runes(),
		styles: map[engine.Marker]lipgloss.Style{
			engine.MarkerEmpty:      style(palette.Grid),
			engine.MarkerHorizontal: style(palette.Ship),
			engine.MarkerVertical:   style(palette.Ship),
			engine.MarkerHit:        style(palette.Hit),
			engine.MarkerMiss:       style(palette.Miss),
		},
		label: style(palette.Grid).Bold(true),
	}, nil
}

func (c *Console) readLine() (string, error) {
	line, err := c.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return line, nil
		}
		return "", err
	}
	return line, nil
}

// RequestDirection asks which way kind faces until the answer is valid.
func (c *Console) RequestDirection(kind engine.ShipKind) (engine.Direction, error) {
	fmt.Fprintf(c.out, promptDirection, kind)
	for {
		line, err := c.readLine()
		if err != nil {
			return 0, err
		}
		dir, err := engine.ParseDirection(line)
		if err == nil {
			return dir, nil
		}
		fmt.Fprint(c.out, repromptDir)
	}
}

// RequestAxisValue prints prompt and reads a column or row until it is a
// number on the board.
func (c *Console) RequestAxisValue(prompt string) (int, error) {
	fmt.Fprint(c.out, prompt)
	for {
		line, err := c.readLine()
		if err != nil {
			return 0, err
		}
		v, err := ParseAxisValue(line)
		switch {
		case err == nil:
			return v, nil
		case errors.Is(err, errOffMap):
			fmt.Fprintf(c.out, repromptOffBoard, engine.BoardSize-1)
		default:
			fmt.Fprintf(c.out, repromptNotInt, engine.BoardSize-1)
		}
	}
}

// ParseAxisValue parses a column or row. Only unsigned decimal digits are
// numbers, so "-1" is rejected as not a number.
func ParseAxisValue(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.TrimLeft(s, "0123456789") != "" {
		return 0, errNotNumber
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		// Too many digits for an int.
		return 0, errOffMap
	}
	if v >= engine.BoardSize {
		return 0, errOffMap
	}
	return v, nil
}

// Notify prints the event's message on its own line.
func (c *Console) Notify(ev engine.Event) {
	fmt.Fprintln(c.out, ev.Message())
}
