package engine

import "slices"

// Result is the effect of a single shot.
type Result uint8

const (
	Miss Result = iota
	Hit
	Sunk
)

func (r Result) String() string {
	switch r {
	case Hit:
		return "hit"
	case Sunk:
		return "sunk"
	default:
		return "miss"
	}
}

// Outcome describes a resolved shot. Kind is meaningful only for Hit and Sunk.
type Outcome struct {
	Result Result
	Kind   ShipKind
}

// Struck reports whether the shot hit a ship.
func (o Outcome) Struck() bool {
	return o.Result != Miss
}

// ResolveShot applies a shot at target. The caller guarantees target is in
// bounds and has not been fired at before by the same side.
func (b *Board) ResolveShot(target Coord) Outcome {
	for _, kind := range Kinds() {
		s := &b.ships[kind]
		if len(s.remaining) == 0 {
			continue
		}
		i := slices.Index(s.remaining, target)
		if i < 0 {
			continue
		}
		s.remaining = slices.Delete(s.remaining, i, i+1)
		b.set(target, MarkerHit)
		if len(s.remaining) == 0 {
			return Outcome{Result: Sunk, Kind: kind}
		}
		return Outcome{Result: Hit, Kind: kind}
	}

	if b.Marker(target) != MarkerHit {
		b.set(target, MarkerMiss)
	}
	return Outcome{Result: Miss}
}
