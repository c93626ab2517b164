package engine

import (
	"checkers/internal/server/board"
	"checkers/internal/server/core"
)

// Evaluate counts pieces per color. A side with pieces but no legal move is
// not treated as lost.
func Evaluate(b *board.Board) core.State {
	switch {
	case b.Count(core.ColorWhite) == 0:
		return core.StateBlackWins
	case b.Count(core.ColorBlack) == 0:
		return core.StateWhiteWins
	default:
		return core.StateOngoing
	}
}
