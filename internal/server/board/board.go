// Package board holds the 8x8 checkers grid and its query operations.
package board

import (
	"fmt"

	"checkers/internal/server/core"
)

const (
	Size = 8

	// MaxPiecesPerColor is the opening piece count for each side
	MaxPiecesPerColor = 12
)

// Position is a (row, col) cell. Row 0 is black's home row.
type Position struct {
	Row int
	Col int
}

// InBounds reports whether p lies on the 8x8 grid
func (p Position) InBounds() bool {
	return p.Row >= 0 && p.Row < Size && p.Col >= 0 && p.Col < Size
}

// IsDark reports whether p is a playable square
func (p Position) IsDark() bool {
	return (p.Row+p.Col)%2 == 1
}

// Offset returns the cell dr rows and dc columns away
func (p Position) Offset(dr, dc int) Position {
	return Position{Row: p.Row + dr, Col: p.Col + dc}
}

// String renders p as a square name: file a-h for col 0-7, rank 8-1 for row 0-7
func (p Position) String() string {
	if !p.InBounds() {
		return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
	}
	return fmt.Sprintf("%c%c", 'a'+p.Col, '8'-p.Row)
}

// ParseSquare converts a square name such as "c3" into a Position
func ParseSquare(square string) (Position, error) {
	if len(square) != 2 {
		return Position{}, fmt.Errorf("invalid square %q: expected file and rank", square)
	}
	file, rank := square[0], square[1]
	if file >= 'A' && file <= 'H' {
		file += 'a' - 'A'
	}
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return Position{}, fmt.Errorf("invalid square %q: out of range a1-h8", square)
	}
	return Position{Row: int('8' - rank), Col: int(file - 'a')}, nil
}

type PieceID int

// NoPiece marks an empty cell or an unset piece reference
const NoPiece PieceID = 0

type Piece struct {
	ID    PieceID
	Color core.Color
	Rank  core.Rank
	Pos   Position
}

// IsKing reports whether the piece has been promoted
func (p Piece) IsKing() bool {
	return p.Rank == core.RankKing
}

// Board maps every cell to an optional piece. The zero value is an empty
// board; Board is a value type so copying it copies the whole position.
type Board struct {
	cells  [Size][Size]Piece
	nextID PieceID
}

// New returns an empty board
func New() Board {
	return Board{nextID: 1}
}

// NewStandard returns the opening layout: black men on the dark cells of
// rows 0-2, white men on rows 5-7.
func NewStandard() Board {
	b := New()
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			pos := Position{Row: r, Col: c}
			if !pos.IsDark() {
				continue
			}
			switch {
			case r < 3:
				b.mustPlace(core.ColorBlack, core.RankMan, pos)
			case r > 4:
				b.mustPlace(core.ColorWhite, core.RankMan, pos)
			}
		}
	}
	return b
}

func (b *Board) mustPlace(color core.Color, rank core.Rank, pos Position) {
	if _, err := b.Place(color, rank, pos); err != nil {
		panic(err)
	}
}

// Place puts a new piece on an empty dark cell and returns it
func (b *Board) Place(color core.Color, rank core.Rank, pos Position) (Piece, error) {
	if !pos.InBounds() {
		return Piece{}, fmt.Errorf("position %s out of bounds", pos)
	}
	if !pos.IsDark() {
		return Piece{}, fmt.Errorf("position %s is a light square", pos)
	}
	if _, ok := b.At(pos); ok {
		return Piece{}, fmt.Errorf("position %s already occupied", pos)
	}
	if b.Count(color) >= MaxPiecesPerColor {
		return Piece{}, fmt.Errorf("%s already has %d pieces", color.Name(), MaxPiecesPerColor)
	}
	if b.nextID == NoPiece {
		b.nextID = 1
	}
	p := Piece{ID: b.nextID, Color: color, Rank: rank, Pos: pos}
	b.nextID++
	b.cells[pos.Row][pos.Col] = p
	return p, nil
}

// At returns the piece on pos, if any
func (b *Board) At(pos Position) (Piece, bool) {
	if !pos.InBounds() {
		return Piece{}, false
	}
	p := b.cells[pos.Row][pos.Col]
	return p, p.ID != NoPiece
}

// IsEmpty reports whether pos is on the board and unoccupied
func (b *Board) IsEmpty(pos Position) bool {
	if !pos.InBounds() {
		return false
	}
	return b.cells[pos.Row][pos.Col].ID == NoPiece
}

// Find returns the piece with the given ID
func (b *Board) Find(id PieceID) (Piece, bool) {
	if id == NoPiece {
		return Piece{}, false
	}
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if b.cells[r][c].ID == id {
				return b.cells[r][c], true
			}
		}
	}
	return Piece{}, false
}

// Relocate moves the piece on from to the empty cell to
func (b *Board) Relocate(from, to Position) (Piece, error) {
	p, ok := b.At(from)
	if !ok {
		return Piece{}, fmt.Errorf("no piece at %s", from)
	}
	if !b.IsEmpty(to) {
		return Piece{}, fmt.Errorf("destination %s not available", to)
	}
	b.cells[from.Row][from.Col] = Piece{}
	p.Pos = to
	b.cells[to.Row][to.Col] = p
	return p, nil
}

// Remove takes the piece off pos and returns it
func (b *Board) Remove(pos Position) (Piece, bool) {
	p, ok := b.At(pos)
	if !ok {
		return Piece{}, false
	}
	b.cells[pos.Row][pos.Col] = Piece{}
	return p, true
}

// Promote turns the man on pos into a king. Promoting a king is a no-op.
func (b *Board) Promote(pos Position) (Piece, bool) {
	p, ok := b.At(pos)
	if !ok || p.IsKing() {
		return p, false
	}
	p.Rank = core.RankKing
	b.cells[pos.Row][pos.Col] = p
	return p, true
}

// Count returns the number of pieces of the given color
func (b *Board) Count(color core.Color) int {
	n := 0
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			p := b.cells[r][c]
			if p.ID != NoPiece && p.Color == color {
				n++
			}
		}
	}
	return n
}

// Pieces lists the pieces of a color in row-major order
func (b *Board) Pieces(color core.Color) []Piece {
	var out []Piece
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			p := b.cells[r][c]
			if p.ID != NoPiece && p.Color == color {
				out = append(out, p)
			}
		}
	}
	return out
}

// BackRank returns the row on which a man of the given color is promoted
func BackRank(color core.Color) int {
	if color == core.ColorWhite {
		return 0
	}
	return Size - 1
}
