package engine

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
)

// Rand is the source of randomness for the computer player.
type Rand interface {
	// Intn returns a value in [0, n).
	Intn(n int) int
}

// NewRand returns a math/rand source. A zero seed uses the current time.
func NewRand(seed int64) Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// Opponent is the random computer player. It owns its own move history.
type Opponent struct {
	rng     Rand
	history History
	logger  *log.Logger
}

// NewOpponent creates an opponent drawing from rng. logger may be nil.
func NewOpponent(rng Rand, logger *log.Logger) *Opponent {
	return &Opponent{rng: rng, logger: logger}
}

// History returns the coordinates the opponent has fired at.
func (o *Opponent) History() *History {
	return &o.history
}

// GenerateFleet places all four ships at random. For each kind it draws a
// direction, then an anchor column and row; any failure discards the whole
// board and starts over.
func (o *Opponent) GenerateFleet() *Board {
	dirs := Directions()
	for attempt := 1; ; attempt++ {
		b := NewBoard()
		ok := true
		for _, kind := range Kinds() {
			dir := dirs[o.rng.Intn(len(dirs))]
			col := o.rng.Intn(BoardSize)
			row := o.rng.Intn(BoardSize)
			if err := b.Place(kind, dir, C(col, row)); err != nil {
				ok = false
				break
			}
		}
		if ok {
			if o.logger != nil {
				o.logger.Debug("computer fleet generated", "attempts", attempt)
			}
			return b
		}
	}
}

// ChooseShot returns a uniformly random coordinate the opponent has not
// fired at yet and records it. It panics once all cells are used, which a
// finished game never reaches.
func (o *Opponent) ChooseShot() Coord {
	if o.history.Len() >= BoardSize*BoardSize {
		panic(fmt.Sprintf("engine: no untried coordinates left after %d shots", o.history.Len()))
	}
	for {
		c := C(o.rng.Intn(BoardSize), o.rng.Intn(BoardSize))
		if o.history.Contains(c) {
			continue
		}
		_ = o.history.Add(c)
		return c
	}
}
