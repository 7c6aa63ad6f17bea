package solitaire

import "errors"

var (
	// ErrIllegalMove is returned when a placement breaks the rules
	ErrIllegalMove = errors.New("illegal move")

	// ErrNoSelection is returned when a target is named before a source
	ErrNoSelection = errors.New("nothing selected")

	// ErrInvalidPile is returned for a tableau index outside 0..6
	ErrInvalidPile = errors.New("invalid tableau pile")

	// ErrInvalidFoundation is returned for a foundation slot outside 0..3
	ErrInvalidFoundation = errors.New("invalid foundation slot")

	// ErrEmptyPile is returned when the selected source has no card to move
	ErrEmptyPile = errors.New("pile is empty")

	// ErrGameOver is returned for commands issued after a win or quit
	ErrGameOver = errors.New("game is over")

	// ErrInvalidLayout is returned when a deck or layout breaks a board invariant
	ErrInvalidLayout = errors.New("invalid layout")
)
