package board

import (
	"fmt"
	"strings"

	"checkers/internal/server/core"
)

// Square is the rendering view of one occupied cell
type Square struct {
	Color core.Color
	Rank  core.Rank
}

// View is a read-only copy of the occupied cells
type View map[Position]Square

// Snapshot copies the board occupancy for rendering
func (b *Board) Snapshot() View {
	v := make(View)
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			p := b.cells[r][c]
			if p.ID != NoPiece {
				v[p.Pos] = Square{Color: p.Color, Rank: p.Rank}
			}
		}
	}
	return v
}

// Symbol returns the layout character for a piece
func Symbol(color core.Color, rank core.Rank) byte {
	var ch byte = 'w'
	if color == core.ColorBlack {
		ch = 'b'
	}
	if rank == core.RankKing {
		ch -= 'a' - 'A'
	}
	return ch
}

// ToASCII creates an ASCII representation of the board
func (b *Board) ToASCII() string {
	var sb strings.Builder
	sb.WriteString("  a b c d e f g h\n")

	for r := 0; r < Size; r++ {
		sb.WriteString(fmt.Sprintf("%d ", Size-r))
		for f := 0; f < Size; f++ {
			p, ok := b.At(Position{Row: r, Col: f})
			if !ok {
				sb.WriteString(". ")
			} else {
				sb.WriteString(fmt.Sprintf("%c ", Symbol(p.Color, p.Rank)))
			}
		}
		sb.WriteString(fmt.Sprintf(" %d\n", Size-r))
	}
	sb.WriteString("  a b c d e f g h")

	return sb.String()
}
