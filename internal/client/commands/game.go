package commands

import (
	"errors"
	"fmt"
	"strings"

	"checkers/internal/client/api"
	"checkers/internal/client/display"
)

var errNoGame = errors.New("no current game, use 'new' or 'join <gameId>'")

func (r *Registry) registerGameCommands() {
	r.Register(&Command{
		Name:        "new",
		ShortName:   "n",
		Description: "Create a new game",
		Usage:       "new [whiteName] [blackName] [layout side]",
		Handler:     newGameHandler,
	})

	r.Register(&Command{
		Name:        "join",
		ShortName:   "j",
		Description: "Join/set current game ID",
		Usage:       "join <gameId>",
		Handler:     joinGameHandler,
	})

	r.Register(&Command{
		Name:        "select",
		ShortName:   "e",
		Description: "Select a piece and list its destinations",
		Usage:       "select <square>",
		Handler:     selectHandler,
	})

	r.Register(&Command{
		Name:        "deselect",
		ShortName:   "u",
		Description: "Clear the current selection",
		Usage:       "deselect",
		Handler:     deselectHandler,
	})

	r.Register(&Command{
		Name:        "move",
		ShortName:   "m",
		Description: "Make a move",
		Usage:       "move <from><to> | <from>x<to> | <to>",
		Handler:     moveHandler,
	})

	r.Register(&Command{
		Name:        "show",
		ShortName:   "h",
		Description: "Show board and game state",
		Usage:       "show",
		Handler:     showBoardHandler,
	})

	r.Register(&Command{
		Name:        "state",
		ShortName:   "s",
		Description: "Show raw game JSON",
		Usage:       "state",
		Handler:     gameStateHandler,
	})

	r.Register(&Command{
		Name:        "restart",
		ShortName:   "r",
		Description: "Start over with the same players",
		Usage:       "restart",
		Handler:     restartHandler,
	})

	r.Register(&Command{
		Name:        "delete",
		ShortName:   "d",
		Description: "Delete a game",
		Usage:       "delete [gameId]",
		Handler:     deleteGameHandler,
	})
}

// parseNewGameArgs reads optional player names followed by an optional
// layout, which arrives split in two fields ("<rows> <side>").
func parseNewGameArgs(args []string) (*api.CreateGameRequest, error) {
	req := &api.CreateGameRequest{}
	switch len(args) {
	case 0:
	case 1:
		req.White.Name = args[0]
	case 2:
		req.White.Name, req.Black.Name = args[0], args[1]
	case 4:
		req.White.Name, req.Black.Name = args[0], args[1]
		req.Layout = args[2] + " " + args[3]
	default:
		return nil, fmt.Errorf("usage: new [whiteName] [blackName] [layout side]")
	}
	return req, nil
}

func newGameHandler(s Session, args []string) error {
	req, err := parseNewGameArgs(args)
	if err != nil {
		return err
	}

	out := s.Output()
	fmt.Fprintln(out, "\n"+display.Cyan+"Creating new game..."+display.Reset)

	resp, err := s.GetClient().CreateGame(req)
	if err != nil {
		return err
	}

	s.SetCurrentGame(resp.GameID)
	s.SetGameState(resp)

	fmt.Fprintf(out, "%sGame created: %s%s\n", display.Green, resp.GameID, display.Reset)
	fmt.Fprintf(out, "%sCurrent game set to: %s%s\n", display.Cyan, resp.GameID, display.Reset)
	return nil
}

func joinGameHandler(s Session, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: join <gameId>")
	}

	gameID := args[0]
	resp, err := s.GetClient().GetGame(gameID)
	if err != nil {
		return err
	}

	s.SetCurrentGame(gameID)
	s.SetGameState(resp)

	fmt.Fprintf(s.Output(), "%sJoined game: %s%s\n", display.Green, gameID, display.Reset)
	printSummary(s, resp)
	return nil
}

func selectHandler(s Session, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: select <square>")
	}
	gameID := s.GetCurrentGame()
	if gameID == "" {
		return errNoGame
	}

	sel, err := s.GetClient().Select(gameID, strings.ToLower(args[0]))
	if err != nil {
		return err
	}

	out := s.Output()
	if sel.Reason != "" {
		// rejected selections leave the previous one in place on the server
		fmt.Fprintf(out, "%sCannot select %s: %s%s\n", display.Yellow, args[0], sel.Reason, display.Reset)
		return nil
	}

	s.SetSelection(sel)
	kind := "move"
	if sel.Capture {
		kind = "capture"
	}
	fmt.Fprintf(out, "%sSelected %s (%s): %s%s\n", display.Green, sel.Square, kind,
		strings.Join(sel.Destinations, " "), display.Reset)
	return nil
}

func deselectHandler(s Session, args []string) error {
	gameID := s.GetCurrentGame()
	if gameID == "" {
		return errNoGame
	}

	resp, err := s.GetClient().ClearSelection(gameID)
	if err != nil {
		return err
	}
	s.SetGameState(resp)
	fmt.Fprintf(s.Output(), "%sSelection cleared%s\n", display.Green, display.Reset)
	return nil
}

func moveHandler(s Session, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: move <from><to> | <from>x<to> | <to>")
	}
	gameID := s.GetCurrentGame()
	if gameID == "" {
		return errNoGame
	}

	resp, err := s.GetClient().MakeMove(gameID, strings.ToLower(args[0]))
	if err != nil {
		return err
	}
	s.SetGameState(resp)

	out := s.Output()
	fmt.Fprintf(out, "%sMove accepted%s\n", display.Green, display.Reset)
	if lm := resp.LastMove; lm != nil {
		fmt.Fprintf(out, "  %s played %s", display.ColorForTurn(lm.PlayerColor), lm.Move)
		if lm.Captured != "" {
			fmt.Fprintf(out, ", captured %s", lm.Captured)
		}
		if lm.Promoted {
			fmt.Fprint(out, ", crowned")
		}
		fmt.Fprintln(out)
	}
	if resp.Forced != "" {
		var next []string
		if resp.Selection != nil {
			next = resp.Selection.Moves
		}
		fmt.Fprintf(out, "%sCapture chain continues from %s: %s%s\n", display.Magenta, resp.Forced,
			strings.Join(next, " "), display.Reset)
	}
	if resp.Winner != "" {
		fmt.Fprintf(out, "%sGame over: %s%s\n", display.Yellow, resp.State, display.Reset)
	}
	return nil
}

func showBoardHandler(s Session, args []string) error {
	gameID := s.GetCurrentGame()
	if gameID == "" {
		return errNoGame
	}

	c := s.GetClient()
	game, err := c.GetGame(gameID)
	if err != nil {
		return err
	}
	board, err := c.GetBoard(gameID)
	if err != nil {
		return err
	}
	s.SetGameState(game)

	// destinations of the active selection, or every movable piece
	highlight := game.Movable
	if game.Selection != nil {
		highlight = append([]string{game.Selection.Square}, game.Selection.Destinations...)
	}

	out := s.Output()
	fmt.Fprintln(out)
	display.RenderBoard(out, board.Board, highlight)

	fmt.Fprintf(out, "\nLayout: %s\n", game.Layout)
	printSummary(s, game)
	return nil
}

func printSummary(s Session, game *api.GameResponse) {
	out := s.Output()
	fmt.Fprintf(out, "Turn: %s | State: %s | Moves: %d | Movable: %s\n",
		display.ColorForTurn(game.Turn), game.State, len(game.Moves), strings.Join(game.Movable, " "))
	if game.Forced != "" {
		fmt.Fprintf(out, "Forced: %s\n", game.Forced)
	}
	if game.Selection != nil {
		fmt.Fprintf(out, "Selected: %s -> %s\n", game.Selection.Square, strings.Join(game.Selection.Destinations, " "))
	}
}

func gameStateHandler(s Session, args []string) error {
	gameID := s.GetCurrentGame()
	if gameID == "" {
		return errNoGame
	}

	game, err := s.GetClient().GetGame(gameID)
	if err != nil {
		return err
	}
	s.SetGameState(game)

	display.PrettyPrintJSON(s.Output(), game)
	return nil
}

func restartHandler(s Session, args []string) error {
	gameID := s.GetCurrentGame()
	if gameID == "" {
		return errNoGame
	}

	c := s.GetClient()
	old, err := c.GetGame(gameID)
	if err != nil {
		return err
	}

	req := &api.CreateGameRequest{}
	if p := old.Players.White; p != nil {
		req.White.Name = p.Name
	}
	if p := old.Players.Black; p != nil {
		req.Black.Name = p.Name
	}

	resp, err := c.CreateGame(req)
	if err != nil {
		return err
	}
	s.SetCurrentGame(resp.GameID)
	s.SetGameState(resp)

	out := s.Output()
	if err := c.DeleteGame(gameID); err != nil {
		fmt.Fprintf(out, "%sOld game %s not deleted: %s%s\n", display.Yellow, gameID, err.Error(), display.Reset)
	}
	fmt.Fprintf(out, "%sGame restarted: %s%s\n", display.Green, resp.GameID, display.Reset)
	return nil
}

func deleteGameHandler(s Session, args []string) error {
	gameID := s.GetCurrentGame()
	if len(args) > 0 {
		gameID = args[0]
	}
	if gameID == "" {
		return fmt.Errorf("usage: delete [gameId]")
	}

	if err := s.GetClient().DeleteGame(gameID); err != nil {
		return err
	}

	if gameID == s.GetCurrentGame() {
		s.SetCurrentGame("")
	}
	fmt.Fprintf(s.Output(), "%sGame deleted: %s%s\n", display.Green, gameID, display.Reset)
	return nil
}
