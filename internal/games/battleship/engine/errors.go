package engine

import "errors"

var (
	// Placement errors
	ErrOutOfBounds   = errors.New("coordinate is off the board")
	ErrOverlap       = errors.New("ships overlap")
	ErrAlreadyPlaced = errors.New("ship is already placed")
	ErrSetupComplete = errors.New("fleet is already deployed")

	// Turn errors
	ErrDuplicateShot = errors.New("coordinate was already fired at")
	ErrNotYourTurn   = errors.New("not this side's turn")
	ErrNotInProgress = errors.New("battle has not started")
	ErrGameOver      = errors.New("game is over")
)
