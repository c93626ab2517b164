package processor

import (
	"testing"

	"checkers/internal/server/board"
	"checkers/internal/server/core"
	"checkers/internal/server/service"
	"checkers/internal/testutil"
)

func newProcessor() *Processor {
	return New(service.New(nil))
}

func createGame(t *testing.T, p *Processor, layout string) core.GameResponse {
	t.Helper()
	resp := p.Execute(NewCreateGameCommand(core.CreateGameRequest{
		White:  core.PlayerConfig{Name: "alice"},
		Layout: layout,
	}))
	if !resp.Success {
		t.Fatalf("create failed: %+v", resp.Error)
	}
	return resp.Data.(core.GameResponse)
}

func TestCreateGame(t *testing.T) {
	p := newProcessor()
	g := createGame(t, p, "")

	testutil.AssertEqual(t, g.Layout, board.StartingLayout)
	testutil.AssertEqual(t, g.Turn, "w")
	testutil.AssertEqual(t, g.State, "ongoing")
	testutil.AssertEqual(t, g.Movable, []string{"a3", "c3", "e3", "g3"})
	testutil.AssertEqual(t, g.Moves, []string{})
	testutil.AssertEqual(t, g.Players.White.Name, "alice")
	testutil.AssertEqual(t, g.Players.Black.Name, "black")
	testutil.AssertTrue(t, g.Selection == nil)
	testutil.AssertTrue(t, g.LastMove == nil)
}

func TestCreateGameRejectsLayouts(t *testing.T) {
	p := newProcessor()

	for _, layout := range []string{
		"8/8/8/8/8/8/8/8 x",
		"8/8/8/8/8/8/8/8 w\n",
		"8/8/8/8/8/8/8/8 w",
		"1w6/8/8/8/8/8/8/1b6 w",
	} {
		resp := p.Execute(NewCreateGameCommand(core.CreateGameRequest{Layout: layout}))
		testutil.AssertFalse(t, resp.Success, layout)
		testutil.AssertEqual(t, resp.Error.Code, core.ErrInvalidLayout, layout)
	}
}

func TestSelectPiece(t *testing.T) {
	p := newProcessor()
	g := createGame(t, p, "")

	resp := p.Execute(NewSelectPieceCommand(g.GameID, core.SelectRequest{Square: "C3"}))
	testutil.AssertTrue(t, resp.Success)
	testutil.AssertEqual(t, resp.Data, core.SelectionResponse{
		Square:       "c3",
		Destinations: []string{"b4", "d4"},
		Moves:        []string{"c3b4", "c3d4"},
	})

	resp = p.Execute(NewSelectPieceCommand(g.GameID, core.SelectRequest{Square: "b6"}))
	testutil.AssertTrue(t, resp.Success, "invalid selection is not an error")
	sel := resp.Data.(core.SelectionResponse)
	testutil.AssertEqual(t, sel.Destinations, []string{})
	testutil.AssertTrue(t, len(sel.Reason) > 0, "reason set")

	game := p.Execute(NewGetGameCommand(g.GameID)).Data.(core.GameResponse)
	testutil.AssertEqual(t, game.Selection.Square, "c3", "earlier selection kept")

	resp = p.Execute(NewSelectPieceCommand(g.GameID, core.SelectRequest{Square: "k9"}))
	testutil.AssertEqual(t, resp.Error.Code, core.ErrInvalidRequest)

	resp = p.Execute(NewSelectPieceCommand("missing", core.SelectRequest{Square: "c3"}))
	testutil.AssertEqual(t, resp.Error.Code, core.ErrGameNotFound)
}

func TestMakeMove(t *testing.T) {
	p := newProcessor()
	g := createGame(t, p, "")

	resp := p.Execute(NewMakeMoveCommand(g.GameID, core.MoveRequest{Move: "c3d4"}))
	testutil.AssertTrue(t, resp.Success)
	after := resp.Data.(core.GameResponse)
	testutil.AssertEqual(t, after.Turn, "b")
	testutil.AssertEqual(t, after.Moves, []string{"c3d4"})
	testutil.AssertEqual(t, *after.LastMove, core.MoveInfo{Move: "c3d4", PlayerColor: "w"})

	tests := []struct {
		name string
		move string
		code string
	}{
		{"bad format", "c3d", core.ErrInvalidMove},
		{"illegal", "b6d4", core.ErrInvalidMove},
		{"destination without selection", "c5", core.ErrInvalidSelection},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := p.Execute(NewMakeMoveCommand(g.GameID, core.MoveRequest{Move: tt.move}))
			testutil.AssertFalse(t, resp.Success)
			testutil.AssertEqual(t, resp.Error.Code, tt.code)
		})
	}

	// select then move by destination
	p.Execute(NewSelectPieceCommand(g.GameID, core.SelectRequest{Square: "b6"}))
	resp = p.Execute(NewMakeMoveCommand(g.GameID, core.MoveRequest{Move: "a5"}))
	testutil.AssertTrue(t, resp.Success)
	testutil.AssertEqual(t, resp.Data.(core.GameResponse).LastMove.Move, "b6a5")
}

func TestCaptureChainResponse(t *testing.T) {
	p := newProcessor()
	g := createGame(t, p, "8/4b3/8/2b5/1w3b2/6w1/8/B7 w")

	resp := p.Execute(NewMakeMoveCommand(g.GameID, core.MoveRequest{Move: "b4xd6"}))
	testutil.AssertTrue(t, resp.Success)
	mid := resp.Data.(core.GameResponse)
	testutil.AssertEqual(t, mid.Forced, "d6")
	testutil.AssertEqual(t, mid.Turn, "w")
	testutil.AssertEqual(t, mid.Movable, []string{"d6"})
	testutil.AssertEqual(t, mid.Selection.Moves, []string{"d6xf8"})
	testutil.AssertTrue(t, mid.Selection.Capture)
	testutil.AssertEqual(t, *mid.LastMove, core.MoveInfo{Move: "b4xd6", PlayerColor: "w", Captured: "c5", Continues: true})

	resp = p.Execute(NewClearSelectionCommand(g.GameID))
	testutil.AssertFalse(t, resp.Success, "chain cannot be abandoned")
	testutil.AssertEqual(t, resp.Error.Code, core.ErrInvalidSelection)

	resp = p.Execute(NewMakeMoveCommand(g.GameID, core.MoveRequest{Move: "f8"}))
	testutil.AssertTrue(t, resp.Success)
	end := resp.Data.(core.GameResponse)
	testutil.AssertEqual(t, end.Forced, "")
	testutil.AssertEqual(t, end.Turn, "b")
	testutil.AssertTrue(t, end.LastMove.Promoted)
}

func TestGameOverResponse(t *testing.T) {
	p := newProcessor()
	g := createGame(t, p, "8/8/8/2b5/1w6/8/8/8 w")

	resp := p.Execute(NewMakeMoveCommand(g.GameID, core.MoveRequest{Move: "b4d6"}))
	testutil.AssertTrue(t, resp.Success)
	over := resp.Data.(core.GameResponse)
	testutil.AssertEqual(t, over.State, "white wins")
	testutil.AssertEqual(t, over.Winner, "white")
	testutil.AssertEqual(t, over.Movable, []string{})

	resp = p.Execute(NewMakeMoveCommand(g.GameID, core.MoveRequest{Move: "d6c7"}))
	testutil.AssertEqual(t, resp.Error.Code, core.ErrGameOver)
}

func TestBoardAndDelete(t *testing.T) {
	p := newProcessor()
	g := createGame(t, p, "")

	resp := p.Execute(NewGetBoardCommand(g.GameID))
	testutil.AssertTrue(t, resp.Success)
	testutil.AssertEqual(t, resp.Data.(core.BoardResponse).Layout, board.StartingLayout)
	opening := resp.Data.(core.BoardResponse).Pieces
	testutil.AssertEqual(t, len(opening), 24)
	testutil.AssertEqual(t, opening["c3"], "w")
	testutil.AssertEqual(t, opening["b6"], "b")
	_, ok := opening["c4"]
	testutil.AssertFalse(t, ok)

	testutil.AssertTrue(t, p.Execute(NewClearSelectionCommand(g.GameID)).Success, "clearing nothing is a no-op")
	testutil.AssertTrue(t, p.Execute(NewDeleteGameCommand(g.GameID)).Success)

	resp = p.Execute(NewGetGameCommand(g.GameID))
	testutil.AssertEqual(t, resp.Error.Code, core.ErrGameNotFound)
	resp = p.Execute(NewDeleteGameCommand(g.GameID))
	testutil.AssertEqual(t, resp.Error.Code, core.ErrGameNotFound)
	resp = p.Execute(Command{Type: CommandType(99)})
	testutil.AssertEqual(t, resp.Error.Code, core.ErrInvalidRequest)
}

func TestIsMoveSafe(t *testing.T) {
	p := newProcessor()
	for move, want := range map[string]bool{
		"d4":     true,
		"c3d4":   true,
		"c3xe5":  true,
		"c3-d4":  true,
		"c3":     true,
		"i3":     false,
		"c3d9":   false,
		"c3+d4":  false,
		"c3d4\n": false,
		"":       false,
	} {
		testutil.AssertEqual(t, p.isMoveSafe(move), want, move)
	}
}

func TestBoardPiecesAfterChain(t *testing.T) {
	p := newProcessor()
	g := createGame(t, p, "8/4b3/8/2b5/1w6/8/8/B7 w")

	testutil.AssertTrue(t, p.Execute(NewMakeMoveCommand(g.GameID, core.MoveRequest{Move: "b4xd6"})).Success)
	testutil.AssertTrue(t, p.Execute(NewMakeMoveCommand(g.GameID, core.MoveRequest{Move: "f8"})).Success)

	resp := p.Execute(NewGetBoardCommand(g.GameID))
	testutil.AssertTrue(t, resp.Success)
	testutil.AssertEqual(t, resp.Data.(core.BoardResponse).Pieces, map[string]string{"f8": "W", "a1": "B"})
}
