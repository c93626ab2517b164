package engine

import "errors"

var (
	ErrInvalidSelection = errors.New("invalid selection")
	ErrIllegalMove      = errors.New("illegal move")
	ErrGameOver         = errors.New("game over")
)
