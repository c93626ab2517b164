package engine

import (
	"checkers/internal/server/board"
	"checkers/internal/server/core"
)

type direction struct {
	dr, dc int
}

var (
	whiteForward = []direction{{-1, -1}, {-1, 1}}
	blackForward = []direction{{1, -1}, {1, 1}}
	allDiagonals = []direction{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
)

// directions returns the diagonals a piece may travel along. Kings move one
// step or one jump at a time in any of them.
func directions(p board.Piece) []direction {
	if p.IsKing() {
		return allDiagonals
	}
	if p.Color == core.ColorWhite {
		return whiteForward
	}
	return blackForward
}

// MoveSet is the per-piece result of move generation
type MoveSet struct {
	Simple     []Move
	Captures   []Move
	HasCapture bool
}

// Legal returns the moves the piece may actually play on its own. Captures
// take precedence over simple moves.
func (ms MoveSet) Legal() []Move {
	if ms.HasCapture {
		return ms.Captures
	}
	return ms.Simple
}

// GenerateMoves computes simple and capture moves for p under the current
// occupancy of b.
func GenerateMoves(b *board.Board, p board.Piece) MoveSet {
	var ms MoveSet
	for _, d := range directions(p) {
		next := p.Pos.Offset(d.dr, d.dc)
		if !next.InBounds() {
			continue
		}

		target, occupied := b.At(next)
		if !occupied {
			ms.Simple = append(ms.Simple, Move{From: p.Pos, To: next})
			continue
		}
		if target.Color == p.Color {
			continue
		}

		landing := next.Offset(d.dr, d.dc)
		if landing.InBounds() && b.IsEmpty(landing) {
			ms.Captures = append(ms.Captures, Move{
				From:     p.Pos,
				To:       landing,
				Capture:  true,
				Captured: next,
			})
		}
	}
	ms.HasCapture = len(ms.Captures) > 0
	return ms
}
