package engine

import (
	"fmt"
	"slices"
)

// History is an append-only record of the coordinates one side fired at.
type History struct {
	shots []Coord
}

// Contains reports whether c was already fired at.
func (h *History) Contains(c Coord) bool {
	return slices.Contains(h.shots, c)
}

// Add appends c, rejecting repeats.
func (h *History) Add(c Coord) error {
	if h.Contains(c) {
		return fmt.Errorf("%s: %w", c, ErrDuplicateShot)
	}
	h.shots = append(h.shots, c)
	return nil
}

// Len returns the number of recorded shots.
func (h *History) Len() int {
	return len(h.shots)
}

// Shots returns a copy of the shots in firing order.
func (h *History) Shots() []Coord {
	return slices.Clone(h.shots)
}
