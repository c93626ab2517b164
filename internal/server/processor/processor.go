package processor

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"checkers/internal/server/board"
	"checkers/internal/server/core"
	"checkers/internal/server/engine"
	"checkers/internal/server/game"
	"checkers/internal/server/service"
)

// layout validation regex; ParseLayout does the semantic checks
var layoutPattern = regexp.MustCompile(`^[wWbB1-8/]+ [wb]$`)

// Processor turns transport-neutral commands into service calls and API
// responses.
type Processor struct {
	svc *service.Service
}

func New(svc *service.Service) *Processor {
	return &Processor{svc: svc}
}

func (p *Processor) Execute(cmd Command) ProcessorResponse {
	switch cmd.Type {
	case CmdCreateGame:
		return p.handleCreateGame(cmd)
	case CmdGetGame:
		return p.handleGetGame(cmd)
	case CmdDeleteGame:
		return p.handleDeleteGame(cmd)
	case CmdSelectPiece:
		return p.handleSelectPiece(cmd)
	case CmdClearSelection:
		return p.handleClearSelection(cmd)
	case CmdMakeMove:
		return p.handleMakeMove(cmd)
	case CmdGetBoard:
		return p.handleGetBoard(cmd)
	default:
		return p.errorResponse("unknown command", core.ErrInvalidRequest)
	}
}

// isLayoutSafe rejects control characters and anything outside layout notation
func (p *Processor) isLayoutSafe(layout string) bool {
	for _, r := range layout {
		if unicode.IsControl(r) {
			return false
		}
	}
	return layoutPattern.MatchString(layout)
}

// isMoveSafe accepts "d4", "c3d4", "c3xe5" and "c3-d4"
func (p *Processor) isMoveSafe(move string) bool {
	for _, r := range move {
		if unicode.IsControl(r) {
			return false
		}
	}

	isSquare := func(s string) bool {
		return s[0] >= 'a' && s[0] <= 'h' && s[1] >= '1' && s[1] <= '8'
	}

	switch len(move) {
	case 2:
		return isSquare(move)
	case 4:
		return isSquare(move[:2]) && isSquare(move[2:])
	case 5:
		return (move[2] == 'x' || move[2] == '-') && isSquare(move[:2]) && isSquare(move[3:])
	default:
		return false
	}
}

func (p *Processor) handleCreateGame(cmd Command) ProcessorResponse {
	args, ok := cmd.Args.(core.CreateGameRequest)
	if !ok {
		return p.errorResponse("invalid arguments", core.ErrInvalidRequest)
	}

	layout := board.StartingLayout
	if args.Layout != "" {
		if !p.isLayoutSafe(args.Layout) {
			return p.errorResponse("invalid layout format or characters", core.ErrInvalidLayout)
		}
		if _, _, err := board.ParseLayout(args.Layout); err != nil {
			return p.errorResponse(err.Error(), core.ErrInvalidLayout)
		}
		layout = args.Layout
	}

	gameID := p.svc.GenerateGameID()
	whitePlayer := core.NewPlayer(args.White, core.ColorWhite)
	blackPlayer := core.NewPlayer(args.Black, core.ColorBlack)

	if err := p.svc.CreateGame(gameID, whitePlayer, blackPlayer, layout); err != nil {
		return p.serviceError("failed to create game", err)
	}

	return p.gameResponse(gameID)
}

func (p *Processor) handleGetGame(cmd Command) ProcessorResponse {
	return p.gameResponse(cmd.GameID)
}

func (p *Processor) handleDeleteGame(cmd Command) ProcessorResponse {
	if err := p.svc.DeleteGame(cmd.GameID); err != nil {
		return p.serviceError("delete failed", err)
	}
	return ProcessorResponse{Success: true}
}

// handleSelectPiece never fails on a bad selection: the game is left as it
// was and the response carries an empty move list with the reason.
func (p *Processor) handleSelectPiece(cmd Command) ProcessorResponse {
	args, ok := cmd.Args.(core.SelectRequest)
	if !ok {
		return p.errorResponse("invalid arguments", core.ErrInvalidRequest)
	}

	square := strings.ToLower(strings.TrimSpace(args.Square))
	pos, err := board.ParseSquare(square)
	if err != nil {
		return p.errorResponse(err.Error(), core.ErrInvalidRequest)
	}

	sel, err := p.svc.SelectPiece(cmd.GameID, pos)
	switch {
	case errors.Is(err, service.ErrGameNotFound):
		return p.errorResponse("game not found", core.ErrGameNotFound)
	case err != nil:
		return ProcessorResponse{
			Success: true,
			Data: core.SelectionResponse{
				Square:       square,
				Destinations: []string{},
				Moves:        []string{},
				Reason:       fmt.Sprintf("%s: %v", codeFor(err), err),
			},
		}
	}

	return ProcessorResponse{
		Success: true,
		Data:    buildSelectionResponse(sel),
	}
}

// handleClearSelection is idempotent; only an open capture chain refuses it
func (p *Processor) handleClearSelection(cmd Command) ProcessorResponse {
	err := p.svc.ClearSelection(cmd.GameID)
	if err != nil && !errors.Is(err, game.ErrNoSelection) {
		return p.serviceError("cannot clear selection", err)
	}
	return p.gameResponse(cmd.GameID)
}

func (p *Processor) handleMakeMove(cmd Command) ProcessorResponse {
	args, ok := cmd.Args.(core.MoveRequest)
	if !ok {
		return p.errorResponse("invalid arguments", core.ErrInvalidRequest)
	}

	move := strings.ToLower(strings.TrimSpace(args.Move))
	if !p.isMoveSafe(move) {
		return p.errorResponse("invalid move format", core.ErrInvalidMove)
	}

	if _, err := p.svc.MakeMove(cmd.GameID, move); err != nil {
		return p.serviceError("move rejected", err)
	}
	return p.gameResponse(cmd.GameID)
}

func (p *Processor) handleGetBoard(cmd Command) ProcessorResponse {
	var resp core.BoardResponse
	err := p.svc.View(cmd.GameID, func(g *game.Game) {
		b := g.Board()
		resp = core.BoardResponse{
			Layout: g.CurrentLayout(),
			Board:  b.ToASCII(),
			Pieces: pieces(g.View()),
		}
	})
	if err != nil {
		return p.serviceError("board unavailable", err)
	}

	return ProcessorResponse{
		Success: true,
		Data:    resp,
	}
}

// pieces keys the occupied cells of v by square name
func pieces(v board.View) map[string]string {
	out := make(map[string]string, len(v))
	for pos, sq := range v {
		out[pos.String()] = string(board.Symbol(sq.Color, sq.Rank))
	}
	return out
}

// gameResponse reads the game and wraps it as a successful response
func (p *Processor) gameResponse(gameID string) ProcessorResponse {
	var resp core.GameResponse
	if err := p.svc.View(gameID, func(g *game.Game) {
		resp = buildGameResponse(gameID, g)
	}); err != nil {
		return p.serviceError("game unavailable", err)
	}

	return ProcessorResponse{
		Success: true,
		Data:    resp,
	}
}

// buildGameResponse constructs standard game response
func buildGameResponse(gameID string, g *game.Game) core.GameResponse {
	resp := core.GameResponse{
		GameID:  gameID,
		Layout:  g.CurrentLayout(),
		Turn:    g.NextTurnColor().String(),
		State:   g.State().String(),
		Movable: squares(g.Movable()),
		Moves:   g.Moves(),
		Players: core.PlayersResponse{
			White: g.GetPlayer(core.ColorWhite),
			Black: g.GetPlayer(core.ColorBlack),
		},
	}

	if g.State().IsOver() {
		resp.Winner = g.State().Winner().Name()
	}

	if ts := g.Turn(); ts.HasForced() {
		b := g.Board()
		if forced, ok := b.Find(ts.Forced); ok {
			resp.Forced = forced.Pos.String()
		}
	}

	if sel, ok := g.Selection(); ok {
		s := buildSelectionResponse(sel)
		resp.Selection = &s
	}

	if result := g.LastResult(); result != nil {
		resp.LastMove = &core.MoveInfo{
			Move:        result.Move,
			PlayerColor: result.PlayerColor.String(),
			Captured:    result.Vacated,
			Promoted:    result.Promoted,
			Continues:   result.Continues,
		}
	}

	return resp
}

func buildSelectionResponse(sel game.Selection) core.SelectionResponse {
	moves := make([]string, 0, len(sel.Moves))
	for _, m := range sel.Moves {
		moves = append(moves, m.String())
	}
	return core.SelectionResponse{
		Square:       sel.Piece.Pos.String(),
		Destinations: squares(sel.Destinations()),
		Moves:        moves,
		Capture:      sel.HasCapture(),
	}
}

func squares(positions []board.Position) []string {
	out := make([]string, 0, len(positions))
	for _, pos := range positions {
		out = append(out, pos.String())
	}
	return out
}

// codeFor maps a rules or registry error to its API code. Game over is
// checked first since rejected moves wrap it.
func codeFor(err error) string {
	switch {
	case errors.Is(err, service.ErrGameNotFound):
		return core.ErrGameNotFound
	case errors.Is(err, service.ErrTooManyGames):
		return core.ErrResourceLimit
	case errors.Is(err, engine.ErrGameOver):
		return core.ErrGameOver
	case errors.Is(err, engine.ErrIllegalMove):
		return core.ErrInvalidMove
	case errors.Is(err, engine.ErrInvalidSelection),
		errors.Is(err, game.ErrNoSelection),
		errors.Is(err, game.ErrChainOpen):
		return core.ErrInvalidSelection
	default:
		return core.ErrInternalError
	}
}

// serviceError creates an error response coded from err
func (p *Processor) serviceError(message string, err error) ProcessorResponse {
	resp := p.errorResponse(message, codeFor(err))
	resp.Error.Details = err.Error()
	return resp
}

// errorResponse creates error response
func (p *Processor) errorResponse(message, code string) ProcessorResponse {
	return ProcessorResponse{
		Success: false,
		Error: &core.ErrorResponse{
			Error: message,
			Code:  code,
		},
	}
}
