package engine

import (
	"testing"

	"checkers/internal/server/board"
)

func setup(t *testing.T, layout string) (board.Board, TurnState) {
	t.Helper()
	b, turn, err := board.ParseLayout(layout)
	if err != nil {
		t.Fatalf("ParseLayout(%q): %v", layout, err)
	}
	return b, NewTurn(turn)
}

func sq(t *testing.T, square string) board.Position {
	t.Helper()
	pos, err := board.ParseSquare(square)
	if err != nil {
		t.Fatalf("ParseSquare(%q): %v", square, err)
	}
	return pos
}

func pieceAt(t *testing.T, b *board.Board, square string) board.Piece {
	t.Helper()
	p, ok := b.At(sq(t, square))
	if !ok {
		t.Fatalf("no piece on %s", square)
	}
	return p
}

// play finds the legal move from->to and applies it
func play(t *testing.T, b *board.Board, ts *TurnState, from, to string) MoveResult {
	t.Helper()
	moves := LegalMoves(b, *ts, sq(t, from))
	m, ok := Find(moves, sq(t, from), sq(t, to))
	if !ok {
		t.Fatalf("%s-%s not legal; legal set %v", from, to, moves)
	}
	res, err := ApplyMove(b, ts, m)
	if err != nil {
		t.Fatalf("ApplyMove(%s): %v", m, err)
	}
	return res
}

func moveNames(moves []Move) []string {
	out := make([]string, 0, len(moves))
	for _, m := range moves {
		out = append(out, m.String())
	}
	return out
}
