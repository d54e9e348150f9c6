// Package engine provides the ship placement and turn resolution rules for
// 7x7 Battleship. It is UI-agnostic: drivers feed it coordinates and render
// the boards it exposes.
package engine

import (
	"fmt"
	"strings"
)

// BoardSize is the width and height of every board.
const BoardSize = 7

// ShipKind identifies one of the four ships in a fleet.
type ShipKind uint8

const (
	Battleship ShipKind = iota
	Submarine
	Destroyer
	PatrolBoat
)

// NumShipKinds is the number of ships in a fleet.
const NumShipKinds = 4

var shipLengths = [NumShipKinds]int{4, 3, 3, 2}

// Kinds returns every ship kind in placement order.
func Kinds() []ShipKind {
	return []ShipKind{Battleship, Submarine, Destroyer, PatrolBoat}
}

// Valid reports whether k is one of the four known kinds.
func (k ShipKind) Valid() bool {
	return k < NumShipKinds
}

// Length returns the number of cells the ship occupies.
func (k ShipKind) Length() int {
	if !k.Valid() {
		return 0
	}
	return shipLengths[k]
}

// String returns the name used in prompts and messages.
func (k ShipKind) String() string {
	switch k {
	case Battleship:
		return "battleship"
	case Submarine:
		return "submarine"
	case Destroyer:
		return "destroyer"
	case PatrolBoat:
		return "patrol boat"
	default:
		return "unknown"
	}
}

// Direction is the way a ship's body extends from its anchor.
type Direction uint8

const (
	DirLeft Direction = iota
	DirRight
	DirUp
	DirDown
)

// Directions returns the four directions in draw order.
func Directions() []Direction {
	return []Direction{DirLeft, DirRight, DirUp, DirDown}
}

// String returns the lowercase direction name.
func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	default:
		return "unknown"
	}
}

// Horizontal reports whether the direction runs along a row.
func (d Direction) Horizontal() bool {
	return d == DirLeft || d == DirRight
}

// Delta returns the (dcol, drow) offset of one step in this direction.
// Up decreases the row, down increases it.
func (d Direction) Delta() (dcol, drow int) {
	switch d {
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	default:
		return 0, 0
	}
}

// Rotate returns the next direction clockwise.
func (d Direction) Rotate() Direction {
	switch d {
	case DirRight:
		return DirDown
	case DirDown:
		return DirLeft
	case DirLeft:
		return DirUp
	default:
		return DirRight
	}
}

// ParseDirection parses one of "left", "right", "up" or "down",
// ignoring case and surrounding whitespace.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left":
		return DirLeft, nil
	case "right":
		return DirRight, nil
	case "up":
		return DirUp, nil
	case "down":
		return DirDown, nil
	}
	return 0, fmt.Errorf("unknown direction %q", s)
}

// Coord is a board position. Col grows to the right, Row grows downward.
type Coord struct {
	Col int
	Row int
}

// C is a convenience constructor for Coord.
func C(col, row int) Coord {
	return Coord{Col: col, Row: row}
}

// InBounds reports whether both axes lie within [0, BoardSize).
func (c Coord) InBounds() bool {
	return c.Col >= 0 && c.Col < BoardSize && c.Row >= 0 && c.Row < BoardSize
}

// Add returns c offset by (dcol, drow).
func (c Coord) Add(dcol, drow int) Coord {
	return Coord{Col: c.Col + dcol, Row: c.Row + drow}
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Col, c.Row)
}

// Side is one of the two players.
type Side uint8

const (
	SideHuman Side = iota
	SideComputer
)

func (s Side) String() string {
	if s == SideComputer {
		return "computer"
	}
	return "human"
}

// Opponent returns the other side.
func (s Side) Opponent() Side {
	if s == SideHuman {
		return SideComputer
	}
	return SideHuman
}
