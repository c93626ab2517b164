package core

type State int

const (
	StateOngoing State = iota
	StateWhiteWins
	StateBlackWins
)

func (s State) String() string {
	switch s {
	case StateOngoing:
		return "ongoing"
	case StateWhiteWins:
		return "white wins"
	case StateBlackWins:
		return "black wins"
	default:
		return "unknown"
	}
}

// IsOver reports whether the state is terminal
func (s State) IsOver() bool {
	return s == StateWhiteWins || s == StateBlackWins
}

// Winner returns the winning color, or NoColor while the game is ongoing
func (s State) Winner() Color {
	switch s {
	case StateWhiteWins:
		return ColorWhite
	case StateBlackWins:
		return ColorBlack
	default:
		return NoColor
	}
}

type Color byte

const (
	NoColor Color = iota
	ColorWhite
	ColorBlack
)

func (c Color) String() string {
	switch c {
	case ColorWhite:
		return "w"
	case ColorBlack:
		return "b"
	default:
		return "-"
	}
}

// Name returns the long form used in human readable output
func (c Color) Name() string {
	switch c {
	case ColorWhite:
		return "white"
	case ColorBlack:
		return "black"
	default:
		return "none"
	}
}

func OppositeColor(c Color) Color {
	if c == ColorWhite {
		return ColorBlack
	}
	return ColorWhite
}

// ParseColor accepts the short "w"/"b" form
func ParseColor(s string) (Color, bool) {
	switch s {
	case "w":
		return ColorWhite, true
	case "b":
		return ColorBlack, true
	default:
		return NoColor, false
	}
}

type Rank byte

const (
	RankMan Rank = iota + 1
	RankKing
)

func (r Rank) String() string {
	switch r {
	case RankMan:
		return "man"
	case RankKing:
		return "king"
	default:
		return "-"
	}
}
