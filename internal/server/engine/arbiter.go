package engine

import (
	"fmt"

	"checkers/internal/server/board"
	"checkers/internal/server/core"
)

// TurnState is the side to move, the piece locked into an open capture
// chain (board.NoPiece when none) and the game result.
type TurnState struct {
	Color  core.Color
	Forced board.PieceID
	Result core.State
}

// HasForced reports whether a capture chain is open
func (ts TurnState) HasForced() bool {
	return ts.Forced != board.NoPiece
}

// MoveResult describes everything ApplyMove committed
type MoveResult struct {
	Move      Move
	Piece     board.Piece // moved piece after promotion, at its new position
	Captured  bool
	Vacated   board.Position // cell of the removed piece when Captured
	Promoted  bool
	Continues bool       // same piece, same color must capture again
	Turn      core.Color // side to move after the call
	State     core.State
}

// MustCapture reports whether any piece of color has a capture available
func MustCapture(b *board.Board, color core.Color) bool {
	for _, p := range b.Pieces(color) {
		if GenerateMoves(b, p).HasCapture {
			return true
		}
	}
	return false
}

// LegalMovesFor returns the moves piece may play now. The error wraps
// ErrInvalidSelection or ErrGameOver when the piece may not act at all.
func LegalMovesFor(b *board.Board, ts TurnState, piece board.Piece) ([]Move, error) {
	if ts.Result.IsOver() {
		return nil, fmt.Errorf("%w: %s", ErrGameOver, ts.Result)
	}
	if piece.Color != ts.Color {
		return nil, fmt.Errorf("%w: %s piece on %s, %s to move", ErrInvalidSelection, piece.Color.Name(), piece.Pos, ts.Color.Name())
	}
	if ts.HasForced() && piece.ID != ts.Forced {
		forced, _ := b.Find(ts.Forced)
		return nil, fmt.Errorf("%w: piece on %s must continue capturing", ErrInvalidSelection, forced.Pos)
	}

	ms := GenerateMoves(b, piece)
	if !ms.HasCapture && MustCapture(b, ts.Color) {
		return nil, fmt.Errorf("%w: a capture is available elsewhere", ErrInvalidSelection)
	}

	moves := ms.Legal()
	if len(moves) == 0 {
		return nil, fmt.Errorf("%w: piece on %s has no moves", ErrInvalidSelection, piece.Pos)
	}
	return moves, nil
}

// LegalMoves returns the legal moves of the piece on pos. Any invalid
// selection yields an empty set.
func LegalMoves(b *board.Board, ts TurnState, pos board.Position) []Move {
	piece, ok := b.At(pos)
	if !ok {
		return nil
	}
	moves, err := LegalMovesFor(b, ts, piece)
	if err != nil {
		return nil
	}
	return moves
}

// Movable lists the positions of pieces that currently have legal moves
func Movable(b *board.Board, ts TurnState) []board.Position {
	var out []board.Position
	for _, p := range b.Pieces(ts.Color) {
		if _, err := LegalMovesFor(b, ts, p); err == nil {
			out = append(out, p.Pos)
		}
	}
	return out
}

// ApplyMove validates m against the current legal set and commits it:
// relocation, capture removal, promotion, chain continuation or turn change,
// then win detection. On error b and ts are left untouched.
func ApplyMove(b *board.Board, ts *TurnState, m Move) (MoveResult, error) {
	piece, ok := b.At(m.From)
	if !ok {
		return MoveResult{}, fmt.Errorf("%w: no piece on %s", ErrIllegalMove, m.From)
	}
	legal, err := LegalMovesFor(b, *ts, piece)
	if err != nil {
		return MoveResult{}, fmt.Errorf("%w: %s: %w", ErrIllegalMove, m, err)
	}
	if !contains(legal, m) {
		return MoveResult{}, fmt.Errorf("%w: %s not in legal set", ErrIllegalMove, m)
	}

	// Validation is complete; nothing below can fail.
	moved, _ := b.Relocate(m.From, m.To)
	result := MoveResult{Move: m}

	if m.Capture {
		b.Remove(m.Captured)
		result.Captured = true
		result.Vacated = m.Captured
	}

	if !moved.IsKing() && m.To.Row == board.BackRank(moved.Color) {
		moved, result.Promoted = b.Promote(m.To)
	}
	result.Piece = moved

	if result.Captured && GenerateMoves(b, moved).HasCapture {
		ts.Forced = moved.ID
		result.Continues = true
	} else {
		ts.Forced = board.NoPiece
		ts.Color = core.OppositeColor(ts.Color)
	}

	if result.Captured {
		ts.Result = Evaluate(b)
	}

	result.Turn = ts.Color
	result.State = ts.Result
	return result, nil
}
