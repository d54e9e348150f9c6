package engine

import (
	"errors"
	"fmt"
)

// Event is something the players should be told about.
type Event interface {
	Message() string
}

// ShotEvent reports one resolved shot.
type ShotEvent struct {
	Side    Side // who fired
	Target  Coord
	Outcome Outcome
}

// Message returns the text shown to the human player.
func (e ShotEvent) Message() string {
	if e.Side == SideHuman {
		switch e.Outcome.Result {
		case Hit:
			return fmt.Sprintf("You hit your opponent's %s!", e.Outcome.Kind)
		case Sunk:
			return fmt.Sprintf("You sunk your opponent's %s!", e.Outcome.Kind)
		default:
			return "You missed your opponent."
		}
	}
	switch e.Outcome.Result {
	case Hit:
		return fmt.Sprintf("Your %s was hit!", e.Outcome.Kind)
	case Sunk:
		return fmt.Sprintf("Your %s has been sunk!", e.Outcome.Kind)
	default:
		return "Your opponent missed."
	}
}

// GameOverEvent is emitted once when the game reaches its terminal state.
type GameOverEvent struct {
	Winner Side
}

func (e GameOverEvent) Message() string {
	if e.Winner == SideHuman {
		return "Congratulations, you win!"
	}
	return "You have lost."
}

// PlacementRejectedEvent tells the human why a ship could not be placed.
type PlacementRejectedEvent struct {
	Kind ShipKind
	Err  error
}

func (e PlacementRejectedEvent) Message() string {
	switch {
	case errors.Is(e.Err, ErrOutOfBounds):
		return "Please try again, boats can't go off the map."
	case errors.Is(e.Err, ErrOverlap):
		return "Please try again, boats can't overlap."
	default:
		return fmt.Sprintf("Could not place your %s: %v", e.Kind, e.Err)
	}
}

// ShotRejectedEvent tells the human a target cannot be fired at.
type ShotRejectedEvent struct {
	Target Coord
	Err    error
}

func (e ShotRejectedEvent) Message() string {
	if errors.Is(e.Err, ErrDuplicateShot) {
		return "Use a location that you haven't used before."
	}
	return fmt.Sprintf("Cannot fire at %s: %v", e.Target, e.Err)
}

// Notifier receives game events.
type Notifier interface {
	Notify(ev Event)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(Event)

func (f NotifierFunc) Notify(ev Event) { f(ev) }
