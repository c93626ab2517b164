package display

import (
	"bytes"
	"strings"
	"testing"

	"checkers/internal/server/board"
	"checkers/internal/testutil"
)

func TestRenderBoardPlain(t *testing.T) {
	DisableColors()
	b := board.NewStandard()
	ascii := b.ToASCII()

	var out bytes.Buffer
	RenderBoard(&out, ascii, nil)
	testutil.AssertEqual(t, out.String(), ascii+"\n")
}

func TestRenderBoardHighlight(t *testing.T) {
	DisableColors()
	b := board.NewStandard()

	var out bytes.Buffer
	RenderBoard(&out, b.ToASCII(), []string{"b4", "d4"})

	lines := strings.Split(out.String(), "\n")
	// rank 4 is the fifth line after the file header
	testutil.AssertEqual(t, lines[5], "4 . * . * . . . .  4")
	testutil.AssertEqual(t, ColorForTurn("w"), "White")
	testutil.AssertEqual(t, Prompt("checkers"), "checkers > ")
}
