package engine

import (
	"sort"
	"testing"

	"checkers/internal/server/board"
	"checkers/internal/server/core"
	"checkers/internal/testutil"
)

func TestGenerateMoves(t *testing.T) {
	tests := []struct {
		name       string
		layout     string
		square     string
		simple     []string
		captures   []string
		hasCapture bool
	}{
		{
			name:   "white man moves toward row 0",
			layout: "8/8/8/8/3w4/8/8/B7 w",
			square: "d4",
			simple: []string{"d4c5", "d4e5"},
		},
		{
			name:   "black man moves toward row 7",
			layout: "8/8/8/4b3/8/8/8/W7 b",
			square: "e5",
			simple: []string{"e5d4", "e5f4"},
		},
		{
			name:   "king steps one cell in all four directions",
			layout: "8/8/8/8/3W4/8/8/B7 w",
			square: "d4",
			simple: []string{"d4c5", "d4e5", "d4c3", "d4e3"},
		},
		{
			name:   "edge man has a single move",
			layout: "1b6/8/8/8/8/w7/8/8 w",
			square: "a3",
			simple: []string{"a3b4"},
		},
		{
			name:       "capture over adjacent opponent",
			layout:     "8/8/8/8/1b6/w7/8/8 w",
			square:     "a3",
			captures:   []string{"a3xc5"},
			hasCapture: true,
		},
		{
			name:   "landing cell occupied blocks capture",
			layout: "8/8/8/2b5/1b6/w7/8/8 w",
			square: "a3",
		},
		{
			name:   "own piece blocks movement and capture",
			layout: "1b6/8/8/8/1w6/w7/8/8 w",
			square: "a3",
		},
		{
			name:   "landing off the board blocks capture",
			layout: "1b1b4/2w5/8/8/8/8/8/8 w",
			square: "c7",
		},
		{
			name:   "man cannot capture backwards",
			layout: "8/8/8/8/3w4/4b3/8/8 w",
			square: "d4",
			simple: []string{"d4c5", "d4e5"},
		},
		{
			name:       "king captures backwards",
			layout:     "8/8/8/8/3W4/4b3/8/8 w",
			square:     "d4",
			simple:     []string{"d4c5", "d4e5", "d4c3"},
			captures:   []string{"d4xf2"},
			hasCapture: true,
		},
		{
			name:   "king does not slide or jump from a distance",
			layout: "8/8/8/8/3W4/8/8/6B1 w",
			square: "d4",
			simple: []string{"d4c5", "d4e5", "d4c3", "d4e3"},
		},
		{
			name:       "both diagonals capture",
			layout:     "8/8/8/8/3b1b2/4w3/8/8 w",
			square:     "e3",
			captures:   []string{"e3xc5", "e3xg5"},
			hasCapture: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, _ := setup(t, tt.layout)
			ms := GenerateMoves(&b, pieceAt(t, &b, tt.square))

			testutil.AssertEqual(t, sorted(moveNames(ms.Simple)), sorted(tt.simple), "simple moves")
			testutil.AssertEqual(t, sorted(moveNames(ms.Captures)), sorted(tt.captures), "captures")
			testutil.AssertEqual(t, ms.HasCapture, tt.hasCapture, "hasCapture")
		})
	}
}

func sorted(s []string) []string {
	out := append([]string{}, s...)
	sort.Strings(out)
	if len(out) == 0 {
		return []string{}
	}
	return out
}

func TestCaptureMoveRecordsCapturedCell(t *testing.T) {
	b, _ := setup(t, "8/8/8/8/1b6/w7/8/8 w")
	ms := GenerateMoves(&b, pieceAt(t, &b, "a3"))

	testutil.AssertEqual(t, ms.Captures, []Move{{
		From:     board.Position{Row: 5, Col: 0},
		To:       board.Position{Row: 3, Col: 2},
		Capture:  true,
		Captured: board.Position{Row: 4, Col: 1},
	}})
}

func TestLegalPrefersCaptures(t *testing.T) {
	b, _ := setup(t, "8/8/8/8/3W4/4b3/8/8 w")
	ms := GenerateMoves(&b, pieceAt(t, &b, "d4"))

	testutil.AssertTrue(t, len(ms.Simple) > 0, "king still has simple moves listed")
	testutil.AssertEqual(t, moveNames(ms.Legal()), []string{"d4xf2"})
}

func TestOpeningMoves(t *testing.T) {
	b, ts := NewGame()
	testutil.AssertEqual(t, ts.Color, core.ColorWhite)

	var total int
	for _, p := range b.Pieces(core.ColorWhite) {
		ms := GenerateMoves(&b, p)
		testutil.AssertFalse(t, ms.HasCapture, "no captures at the opening")
		total += len(ms.Simple)
	}
	testutil.AssertEqual(t, total, 7, "white opening move count")
}

func TestParseMove(t *testing.T) {
	from, to, err := ParseMove("c3xe5")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, from, board.Position{Row: 5, Col: 2})
	testutil.AssertEqual(t, to, board.Position{Row: 3, Col: 4})

	from2, to2, err := ParseMove(" C3-D4 ")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, from2.String()+to2.String(), "c3d4")

	for _, bad := range []string{"", "c3", "c3d", "c3d9", "z3d4", "c3xxd4", "xc3d4", "c3d4x", "c3x-d4", "-c3d4", "c-3d4"} {
		if _, _, err := ParseMove(bad); err == nil {
			t.Errorf("ParseMove(%q) succeeded, want error", bad)
		}
	}
}
