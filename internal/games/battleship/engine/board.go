package engine

import "slices"

// Marker is the display state of one board cell.
type Marker uint8

const (
	MarkerEmpty Marker = iota
	MarkerHorizontal
	MarkerVertical
	MarkerHit
	MarkerMiss
)

func (m Marker) String() string {
	switch m {
	case MarkerHorizontal:
		return "horizontal"
	case MarkerVertical:
		return "vertical"
	case MarkerHit:
		return "hit"
	case MarkerMiss:
		return "miss"
	default:
		return "empty"
	}
}

// IsShip reports whether the marker shows an undamaged ship segment.
func (m Marker) IsShip() bool {
	return m == MarkerHorizontal || m == MarkerVertical
}

type ship struct {
	placed    bool
	dir       Direction
	coords    []Coord // full placement, index 0 is the anchor
	remaining []Coord // not yet hit
}

// Board is one side's 7x7 grid plus the placement of each ship kind.
// The zero value is an empty board ready for placement.
type Board struct {
	cells [BoardSize][BoardSize]Marker
	ships [NumShipKinds]ship
}

// NewBoard returns an empty board.
func NewBoard() *Board {
	return &Board{}
}

// Marker returns the marker at c, or MarkerEmpty when c is off the board.
func (b *Board) Marker(c Coord) Marker {
	if !c.InBounds() {
		return MarkerEmpty
	}
	return b.cells[c.Row][c.Col]
}

func (b *Board) set(c Coord, m Marker) {
	b.cells[c.Row][c.Col] = m
}

// Placed reports whether kind has been placed.
func (b *Board) Placed(kind ShipKind) bool {
	return kind.Valid() && b.ships[kind].placed
}

// Direction returns the direction kind was placed with.
func (b *Board) Direction(kind ShipKind) Direction {
	if !kind.Valid() {
		return 0
	}
	return b.ships[kind].dir
}

// Placement returns a copy of the coordinates kind was placed on.
func (b *Board) Placement(kind ShipKind) []Coord {
	if !kind.Valid() {
		return nil
	}
	return slices.Clone(b.ships[kind].coords)
}

// Remaining returns a copy of the not-yet-hit coordinates of kind.
func (b *Board) Remaining(kind ShipKind) []Coord {
	if !kind.Valid() {
		return nil
	}
	return slices.Clone(b.ships[kind].remaining)
}

// RemainingCount returns how many cells of kind are still afloat.
func (b *Board) RemainingCount(kind ShipKind) int {
	if !kind.Valid() {
		return 0
	}
	return len(b.ships[kind].remaining)
}

// Sunk reports whether kind was placed and has no cells left.
func (b *Board) Sunk(kind ShipKind) bool {
	return b.Placed(kind) && b.RemainingCount(kind) == 0
}

// CellsRemaining returns the total number of unhit ship cells.
func (b *Board) CellsRemaining() int {
	n := 0
	for i := range b.ships {
		n += len(b.ships[i].remaining)
	}
	return n
}

// Complete reports whether all four ships are placed.
func (b *Board) Complete() bool {
	for i := range b.ships {
		if !b.ships[i].placed {
			return false
		}
	}
	return true
}

// FleetDestroyed reports whether every ship has an empty remaining set.
func (b *Board) FleetDestroyed() bool {
	return b.CellsRemaining() == 0
}

// Occupied reports whether c belongs to any placed ship, hit or not.
func (b *Board) Occupied(c Coord) bool {
	_, ok := b.ShipAt(c)
	return ok
}

// ShipAt returns the kind whose placement covers c.
func (b *Board) ShipAt(c Coord) (ShipKind, bool) {
	for _, kind := range Kinds() {
		if slices.Contains(b.ships[kind].coords, c) {
			return kind, true
		}
	}
	return 0, false
}

// Count returns the number of cells showing m.
func (b *Board) Count(m Marker) int {
	n := 0
	for row := range BoardSize {
		for col := range BoardSize {
			if b.cells[row][col] == m {
				n++
			}
		}
	}
	return n
}
