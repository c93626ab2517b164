package game

import (
	"testing"

	"checkers/internal/server/board"
	"checkers/internal/server/core"
	"checkers/internal/server/engine"
	"checkers/internal/testutil"
)

func newPlayers() (*core.Player, *core.Player) {
	return core.NewPlayer(core.PlayerConfig{Name: "alice"}, core.ColorWhite),
		core.NewPlayer(core.PlayerConfig{}, core.ColorBlack)
}

func newGame(t *testing.T, layout string) *Game {
	t.Helper()
	white, black := newPlayers()
	g, err := New(layout, white, black)
	testutil.AssertNoError(t, err, "New(%q)", layout)
	return g
}

func sq(t *testing.T, s string) board.Position {
	t.Helper()
	pos, err := board.ParseSquare(s)
	testutil.AssertNoError(t, err)
	return pos
}

func TestNewGame(t *testing.T) {
	g := newGame(t, "")

	testutil.AssertEqual(t, g.Phase(), PhaseAwaitingSelection)
	testutil.AssertEqual(t, g.NextTurnColor(), core.ColorWhite)
	testutil.AssertEqual(t, g.State(), core.StateOngoing)
	testutil.AssertEqual(t, g.CurrentLayout(), board.StartingLayout)
	testutil.AssertEqual(t, g.InitialLayout(), board.StartingLayout)
	testutil.AssertEqual(t, g.Moves(), []string{})
	testutil.AssertEqual(t, g.NextPlayer().Name, "alice")
	testutil.AssertEqual(t, g.GetPlayer(core.ColorBlack).Name, "black")
	testutil.AssertEqual(t, g.CurrentSnapshot().PlayerID, g.NextPlayer().ID)
	testutil.AssertEqual(t, len(g.Movable()), 4)

	_, ok := g.Selection()
	testutil.AssertFalse(t, ok)
}

func TestNewGameRejectsBadLayout(t *testing.T) {
	white, black := newPlayers()
	_, err := New("8/8/8/8/8/8/8/8 w", white, black)
	if err == nil {
		t.Fatal("expected error for a layout without pieces")
	}
}

func TestSelectAndMove(t *testing.T) {
	g := newGame(t, "")

	sel, err := g.Select(sq(t, "c3"))
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, sel.Destinations(), []board.Position{sq(t, "b4"), sq(t, "d4")})
	testutil.AssertFalse(t, sel.HasCapture())
	testutil.AssertEqual(t, g.Phase(), PhaseSelectionActive)

	res, err := g.Move(sq(t, "d4"))
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, *res, MoveResult{Move: "c3d4", PlayerColor: core.ColorWhite, GameState: core.StateOngoing})
	testutil.AssertEqual(t, g.Phase(), PhaseAwaitingSelection)
	testutil.AssertEqual(t, g.NextTurnColor(), core.ColorBlack)
	testutil.AssertEqual(t, g.Moves(), []string{"c3d4"})
	testutil.AssertEqual(t, g.LastResult(), res)
	testutil.AssertEqual(t, g.CurrentLayout(), "1b1b1b1b/b1b1b1b1/1b1b1b1b/8/3w4/w3w1w1/1w1w1w1w/w1w1w1w1 b")
}

func TestInvalidSelectionKeepsState(t *testing.T) {
	g := newGame(t, "")
	_, err := g.Select(sq(t, "e3"))
	testutil.AssertNoError(t, err)

	for _, s := range []string{"d4", "b6", "a1"} {
		_, err := g.Select(sq(t, s))
		testutil.AssertErrorIs(t, err, engine.ErrInvalidSelection, s)
	}

	sel, ok := g.Selection()
	testutil.AssertTrue(t, ok, "previous selection kept")
	testutil.AssertEqual(t, sel.Piece.Pos, sq(t, "e3"))
	testutil.AssertEqual(t, g.Phase(), PhaseSelectionActive)
}

func TestMoveRequiresSelection(t *testing.T) {
	g := newGame(t, "")

	_, err := g.Move(sq(t, "d4"))
	testutil.AssertErrorIs(t, err, ErrNoSelection)

	_, err = g.Select(sq(t, "c3"))
	testutil.AssertNoError(t, err)
	_, err = g.Move(sq(t, "e5"))
	testutil.AssertErrorIs(t, err, engine.ErrIllegalMove)
	testutil.AssertEqual(t, g.Phase(), PhaseSelectionActive, "selection survives an illegal destination")
	testutil.AssertEqual(t, g.CurrentLayout(), board.StartingLayout)
}

func TestDeselect(t *testing.T) {
	g := newGame(t, "")
	testutil.AssertErrorIs(t, g.Deselect(), ErrNoSelection)

	_, err := g.Select(sq(t, "c3"))
	testutil.AssertNoError(t, err)
	testutil.AssertNoError(t, g.Deselect())
	testutil.AssertEqual(t, g.Phase(), PhaseAwaitingSelection)
}

func TestChainKeepsPieceSelected(t *testing.T) {
	g := newGame(t, "8/4b3/8/2b5/1w3b2/6w1/8/B7 w")

	res, err := g.Play("b4xd6")
	testutil.AssertNoError(t, err)
	testutil.AssertTrue(t, res.Continues)
	testutil.AssertTrue(t, res.Captured)

	sel, ok := g.Selection()
	testutil.AssertTrue(t, ok, "chain piece stays selected")
	testutil.AssertEqual(t, sel.Piece.Pos, sq(t, "d6"))
	testutil.AssertTrue(t, sel.HasCapture())
	testutil.AssertEqual(t, g.Phase(), PhaseSelectionActive)

	testutil.AssertErrorIs(t, g.Deselect(), ErrChainOpen)
	_, err = g.Select(sq(t, "g3"))
	testutil.AssertErrorIs(t, err, engine.ErrInvalidSelection)

	res, err = g.Move(sq(t, "f8"))
	testutil.AssertNoError(t, err)
	testutil.AssertTrue(t, res.Promoted)
	testutil.AssertFalse(t, res.Continues)
	testutil.AssertEqual(t, g.NextTurnColor(), core.ColorBlack)
	testutil.AssertEqual(t, g.Moves(), []string{"b4xd6", "d6xf8"})
	testutil.AssertEqual(t, g.Captures(), 2)
	testutil.AssertEqual(t, g.CurrentLayout(), "5W2/8/8/8/5b2/6w1/8/B7 b")
}

func TestPlayFailureRestoresSelection(t *testing.T) {
	g := newGame(t, "")
	_, err := g.Select(sq(t, "e3"))
	testutil.AssertNoError(t, err)

	_, err = g.Play("c3e5")
	testutil.AssertErrorIs(t, err, engine.ErrIllegalMove)
	sel, ok := g.Selection()
	testutil.AssertTrue(t, ok)
	testutil.AssertEqual(t, sel.Piece.Pos, sq(t, "e3"))

	_, err = g.Play("d4e5")
	testutil.AssertErrorIs(t, err, engine.ErrIllegalMove)
	testutil.AssertErrorIs(t, err, engine.ErrInvalidSelection)

	_, err = g.Play("nonsense")
	testutil.AssertErrorIs(t, err, engine.ErrIllegalMove)
	testutil.AssertEqual(t, g.CurrentLayout(), board.StartingLayout)
}

func TestGameOver(t *testing.T) {
	g := newGame(t, "8/8/8/2b5/1w6/8/8/8 w")

	res, err := g.Play("b4d6")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, res.GameState, core.StateWhiteWins)
	testutil.AssertEqual(t, g.Phase(), PhaseGameOver)
	testutil.AssertEqual(t, g.State().Winner(), core.ColorWhite)
	testutil.AssertEqual(t, g.CurrentSnapshot().PlayerID, "")

	_, err = g.Select(sq(t, "d6"))
	testutil.AssertErrorIs(t, err, engine.ErrGameOver)
	_, err = g.Select(sq(t, "a1"))
	testutil.AssertErrorIs(t, err, engine.ErrGameOver)
	_, err = g.Move(sq(t, "c7"))
	testutil.AssertErrorIs(t, err, engine.ErrGameOver)
	_, err = g.Play("d6c7")
	testutil.AssertErrorIs(t, err, engine.ErrGameOver)
	testutil.AssertEqual(t, len(g.Movable()), 0)
}
