package engine

import "fmt"

// Validate computes the coordinates kind would occupy at anchor facing dir
// and checks them against the board without modifying it.
func (b *Board) Validate(kind ShipKind, dir Direction, anchor Coord) ([]Coord, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("unknown ship kind %d", kind)
	}
	if b.ships[kind].placed {
		return nil, fmt.Errorf("%s: %w", kind, ErrAlreadyPlaced)
	}

	coords := ShipCoordinates(kind, dir, anchor.Col, anchor.Row)
	for _, c := range coords {
		if !c.InBounds() {
			return coords, fmt.Errorf("%s at %s: %w", kind, c, ErrOutOfBounds)
		}
	}
	for _, c := range coords {
		if b.Occupied(c) {
			return coords, fmt.Errorf("%s at %s: %w", kind, c, ErrOverlap)
		}
	}
	return coords, nil
}

// Place records kind at anchor facing dir. On error the board is unchanged.
func (b *Board) Place(kind ShipKind, dir Direction, anchor Coord) error {
	coords, err := b.Validate(kind, dir, anchor)
	if err != nil {
		return err
	}

	marker := MarkerVertical
	if dir.Horizontal() {
		marker = MarkerHorizontal
	}
	for _, c := range coords {
		b.set(c, marker)
	}

	remaining := make([]Coord, len(coords))
	copy(remaining, coords)
	b.ships[kind] = ship{
		placed:    true,
		dir:       dir,
		coords:    coords,
		remaining: remaining,
	}
	return nil
}
