// Package engine implements the checkers rules: move generation, mandatory
// capture, capture chains, promotion, turn alternation and win detection.
//
// All functions operate on a caller-owned (board.Board, TurnState) pair and
// keep no state of their own.
package engine

import (
	"checkers/internal/server/board"
	"checkers/internal/server/core"
)

// NewGame returns the standard opening with white to move
func NewGame() (board.Board, TurnState) {
	return board.NewStandard(), TurnState{Color: core.ColorWhite, Result: core.StateOngoing}
}

// NewTurn returns the turn state for a fresh position with color to move
func NewTurn(color core.Color) TurnState {
	return TurnState{Color: color, Result: core.StateOngoing}
}

// Snapshot returns a read-only view of b for rendering
func Snapshot(b *board.Board) board.View {
	return b.Snapshot()
}
