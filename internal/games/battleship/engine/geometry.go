package engine

// ShipCoordinates returns the cells a ship of the given kind occupies when
// anchored at (col, row) and extending in dir. Index 0 is the anchor.
// No bounds checking is done; callers validate the result.
func ShipCoordinates(kind ShipKind, dir Direction, col, row int) []Coord {
	n := kind.Length()
	dcol, drow := dir.Delta()

	coords := make([]Coord, n)
	for i := range n {
		coords[i] = Coord{Col: col + i*dcol, Row: row + i*drow}
	}
	return coords
}
