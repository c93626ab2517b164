package engine

import (
	"fmt"
	"strings"

	"checkers/internal/server/board"
)

// Move is a single step or a single jump. Captured is meaningful only when
// Capture is true.
type Move struct {
	From     board.Position
	To       board.Position
	Capture  bool
	Captured board.Position
}

// String renders the move as "c3d4" or "c3xe5"
func (m Move) String() string {
	if m.Capture {
		return m.From.String() + "x" + m.To.String()
	}
	return m.From.String() + m.To.String()
}

// ParseMove reads "c3d4" or "c3xe5". The capture marker is optional on input;
// whether the move is a capture is decided against the legal move set.
func ParseMove(s string) (from, to board.Position, err error) {
	s = strings.ToLower(strings.TrimSpace(s))
	// a capture or step marker may only sit between the two squares
	if len(s) == 5 && (s[2] == 'x' || s[2] == '-') {
		s = s[:2] + s[3:]
	}
	if len(s) != 4 {
		return board.Position{}, board.Position{}, fmt.Errorf("invalid move %q: expected <from><to>", s)
	}
	if from, err = board.ParseSquare(s[:2]); err != nil {
		return board.Position{}, board.Position{}, err
	}
	if to, err = board.ParseSquare(s[2:]); err != nil {
		return board.Position{}, board.Position{}, err
	}
	return from, to, nil
}

// Find returns the move in moves that goes from 'from' to 'to'
func Find(moves []Move, from, to board.Position) (Move, bool) {
	for _, m := range moves {
		if m.From == from && m.To == to {
			return m, true
		}
	}
	return Move{}, false
}

func contains(moves []Move, m Move) bool {
	for _, candidate := range moves {
		if candidate == m {
			return true
		}
	}
	return false
}
