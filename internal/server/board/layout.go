package board

import (
	"fmt"
	"strings"

	"checkers/internal/server/core"
)

// StartingLayout is the standard opening with white to move
const StartingLayout = "1b1b1b1b/b1b1b1b1/1b1b1b1b/8/8/w1w1w1w1/1w1w1w1w/w1w1w1w1 w"

// ParseLayout decodes a layout string into a board and the side to move.
// Rows run from row 0 (rank 8) to row 7 (rank 1), separated by '/', with
// w/W for white men/kings, b/B for black men/kings and digits for empty runs.
func ParseLayout(layout string) (Board, core.Color, error) {
	parts := strings.Fields(layout)
	if len(parts) != 2 {
		return Board{}, core.NoColor, fmt.Errorf("invalid layout: expected 2 parts, got %d", len(parts))
	}

	turn, ok := core.ParseColor(parts[1])
	if !ok {
		return Board{}, core.NoColor, fmt.Errorf("invalid layout: turn must be 'w' or 'b'")
	}

	rows := strings.Split(parts[0], "/")
	if len(rows) != Size {
		return Board{}, core.NoColor, fmt.Errorf("invalid layout: expected %d rows, got %d", Size, len(rows))
	}

	b := New()
	for r := 0; r < Size; r++ {
		col := 0
		for _, ch := range rows[r] {
			if ch >= '1' && ch <= '8' {
				col += int(ch - '0')
				continue
			}
			if col >= Size {
				return Board{}, core.NoColor, fmt.Errorf("invalid layout: too many cells in row %d", r)
			}

			var color core.Color
			var rank core.Rank
			switch ch {
			case 'w':
				color, rank = core.ColorWhite, core.RankMan
			case 'W':
				color, rank = core.ColorWhite, core.RankKing
			case 'b':
				color, rank = core.ColorBlack, core.RankMan
			case 'B':
				color, rank = core.ColorBlack, core.RankKing
			default:
				return Board{}, core.NoColor, fmt.Errorf("invalid layout: unknown piece %q in row %d", ch, r)
			}

			pos := Position{Row: r, Col: col}
			if rank == core.RankMan && r == BackRank(color) {
				return Board{}, core.NoColor, fmt.Errorf("invalid layout: %s man on promotion row at %s", color.Name(), pos)
			}
			if _, err := b.Place(color, rank, pos); err != nil {
				return Board{}, core.NoColor, fmt.Errorf("invalid layout: %w", err)
			}
			col++
		}
		if col != Size {
			return Board{}, core.NoColor, fmt.Errorf("invalid layout: row %d has %d cells", r, col)
		}
	}

	if b.Count(core.ColorWhite) == 0 || b.Count(core.ColorBlack) == 0 {
		return Board{}, core.NoColor, fmt.Errorf("invalid layout: both colors need at least one piece")
	}

	return b, turn, nil
}

// Layout encodes the board and side to move in layout notation
func (b *Board) Layout(turn core.Color) string {
	var sb strings.Builder
	for r := 0; r < Size; r++ {
		if r > 0 {
			sb.WriteByte('/')
		}
		empty := 0
		for c := 0; c < Size; c++ {
			p, ok := b.At(Position{Row: r, Col: c})
			if !ok {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteByte(Symbol(p.Color, p.Rank))
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
	}
	sb.WriteByte(' ')
	sb.WriteString(turn.String())
	return sb.String()
}
