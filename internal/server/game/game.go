// Package game wraps the rules engine in the selection-driven state machine
// that presentation layers talk to.
package game

import (
	"errors"
	"fmt"

	"checkers/internal/server/board"
	"checkers/internal/server/core"
	"checkers/internal/server/engine"
)

var (
	ErrChainOpen   = errors.New("capture chain in progress")
	ErrNoSelection = errors.New("no piece selected")
)

type Phase int

const (
	PhaseAwaitingSelection Phase = iota
	PhaseSelectionActive
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseAwaitingSelection:
		return "awaiting selection"
	case PhaseSelectionActive:
		return "selection active"
	case PhaseGameOver:
		return "game over"
	default:
		return "unknown"
	}
}

type Snapshot struct {
	Layout        string     `json:"layout"`
	PreviousMove  string     `json:"previousMove"`
	NextTurnColor core.Color `json:"nextTurnColor"`
	PlayerID      string     `json:"playerId"` // ID of the player whose turn it is
}

// MoveResult tracks the outcome of a move
type MoveResult struct {
	Move        string     `json:"move"`
	PlayerColor core.Color `json:"playerColor"`
	GameState   core.State `json:"gameState"`
	Captured    bool       `json:"captured"`
	Vacated     string     `json:"vacated,omitempty"` // square of the removed piece
	Promoted    bool       `json:"promoted"`
	Continues   bool       `json:"continues"`
}

// Selection is the active piece and the moves it may play
type Selection struct {
	Piece board.Piece
	Moves []engine.Move
}

// Destinations lists the target cells of the selection in generation order
func (s Selection) Destinations() []board.Position {
	out := make([]board.Position, 0, len(s.Moves))
	for _, m := range s.Moves {
		out = append(out, m.To)
	}
	return out
}

// HasCapture reports whether the selected piece is capturing
func (s Selection) HasCapture() bool {
	return len(s.Moves) > 0 && s.Moves[0].Capture
}

type Game struct {
	board      board.Board
	turn       engine.TurnState
	phase      Phase
	selection  *Selection
	snapshots  []Snapshot
	players    map[core.Color]*core.Player
	lastResult *MoveResult
	captures   int
}

// New starts a game from layout, or from the standard opening when layout is
// empty.
func New(layout string, whitePlayer, blackPlayer *core.Player) (*Game, error) {
	if layout == "" {
		layout = board.StartingLayout
	}
	b, turn, err := board.ParseLayout(layout)
	if err != nil {
		return nil, err
	}

	g := &Game{
		board: b,
		turn:  engine.NewTurn(turn),
		phase: PhaseAwaitingSelection,
		players: map[core.Color]*core.Player{
			core.ColorWhite: whitePlayer,
			core.ColorBlack: blackPlayer,
		},
	}
	g.addSnapshot("")
	return g, nil
}

func (g *Game) addSnapshot(move string) {
	var playerID string
	if p := g.players[g.turn.Color]; p != nil && !g.turn.Result.IsOver() {
		playerID = p.ID
	}
	g.snapshots = append(g.snapshots, Snapshot{
		Layout:        g.board.Layout(g.turn.Color),
		PreviousMove:  move,
		NextTurnColor: g.turn.Color,
		PlayerID:      playerID,
	})
}

// Select makes the piece on pos the active selection. A rejected selection
// leaves any previous selection in place.
func (g *Game) Select(pos board.Position) (Selection, error) {
	piece, ok := g.board.At(pos)
	if !ok {
		if g.phase == PhaseGameOver {
			return Selection{}, fmt.Errorf("%w: %s", engine.ErrGameOver, g.turn.Result)
		}
		return Selection{}, fmt.Errorf("%w: no piece on %s", engine.ErrInvalidSelection, pos)
	}

	moves, err := engine.LegalMovesFor(&g.board, g.turn, piece)
	if err != nil {
		return Selection{}, err
	}

	g.selection = &Selection{Piece: piece, Moves: moves}
	g.phase = PhaseSelectionActive
	return *g.selection, nil
}

// Deselect clears the active selection. It is refused mid-chain.
func (g *Game) Deselect() error {
	if g.turn.HasForced() {
		return ErrChainOpen
	}
	if g.phase != PhaseSelectionActive {
		return ErrNoSelection
	}
	g.selection = nil
	g.phase = PhaseAwaitingSelection
	return nil
}

// Move plays the active selection to the cell to
func (g *Game) Move(to board.Position) (*MoveResult, error) {
	switch g.phase {
	case PhaseGameOver:
		return nil, fmt.Errorf("%w: %s", engine.ErrGameOver, g.turn.Result)
	case PhaseAwaitingSelection:
		return nil, ErrNoSelection
	}

	m, ok := engine.Find(g.selection.Moves, g.selection.Piece.Pos, to)
	if !ok {
		return nil, fmt.Errorf("%w: %s cannot move to %s", engine.ErrIllegalMove, g.selection.Piece.Pos, to)
	}

	mover := g.turn.Color
	res, err := engine.ApplyMove(&g.board, &g.turn, m)
	if err != nil {
		return nil, err
	}

	var vacated string
	if res.Captured {
		g.captures++
		vacated = res.Vacated.String()
	}
	g.addSnapshot(m.String())
	g.lastResult = &MoveResult{
		Move:        m.String(),
		PlayerColor: mover,
		GameState:   res.State,
		Captured:    res.Captured,
		Vacated:     vacated,
		Promoted:    res.Promoted,
		Continues:   res.Continues,
	}

	switch {
	case res.State.IsOver():
		g.selection = nil
		g.phase = PhaseGameOver
	case res.Continues:
		// the chain piece stays selected with its next captures
		moves, err := engine.LegalMovesFor(&g.board, g.turn, res.Piece)
		if err != nil || len(moves) == 0 {
			g.selection = nil
			g.phase = PhaseAwaitingSelection
			break
		}
		g.selection = &Selection{Piece: res.Piece, Moves: moves}
		g.phase = PhaseSelectionActive
	default:
		g.selection = nil
		g.phase = PhaseAwaitingSelection
	}
	return g.lastResult, nil
}

// Play selects the origin of move and moves it in one step. On failure the
// game is left exactly as it was, selection included.
func (g *Game) Play(move string) (*MoveResult, error) {
	from, to, err := engine.ParseMove(move)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", engine.ErrIllegalMove, err)
	}

	prevSelection, prevPhase := g.selection, g.phase
	if _, err := g.Select(from); err != nil {
		return nil, fmt.Errorf("%w: %w", engine.ErrIllegalMove, err)
	}
	result, err := g.Move(to)
	if err != nil {
		g.selection, g.phase = prevSelection, prevPhase
		return nil, err
	}
	return result, nil
}

// Selection returns the active selection, if any
func (g *Game) Selection() (Selection, bool) {
	if g.selection == nil {
		return Selection{}, false
	}
	return *g.selection, true
}

// Board returns a copy of the current position
func (g *Game) Board() board.Board {
	return g.board
}

// View returns a read-only position map for rendering
func (g *Game) View() board.View {
	return engine.Snapshot(&g.board)
}

func (g *Game) Turn() engine.TurnState {
	return g.turn
}

func (g *Game) Phase() Phase {
	return g.phase
}

// Movable lists the pieces the side to move may select
func (g *Game) Movable() []board.Position {
	return engine.Movable(&g.board, g.turn)
}

func (g *Game) LastResult() *MoveResult {
	return g.lastResult
}

// CurrentSnapshot returns the latest game snapshot
func (g *Game) CurrentSnapshot() Snapshot {
	return g.snapshots[len(g.snapshots)-1]
}

// CurrentLayout returns the current position in layout notation
func (g *Game) CurrentLayout() string {
	return g.CurrentSnapshot().Layout
}

func (g *Game) NextTurnColor() core.Color {
	return g.turn.Color
}

func (g *Game) NextPlayer() *core.Player {
	return g.players[g.NextTurnColor()]
}

func (g *Game) GetPlayer(color core.Color) *core.Player {
	return g.players[color]
}

// Moves lists every committed step, one entry per jump of a chain
func (g *Game) Moves() []string {
	moves := []string{}
	for i := 1; i < len(g.snapshots); i++ {
		if g.snapshots[i].PreviousMove != "" {
			moves = append(moves, g.snapshots[i].PreviousMove)
		}
	}
	return moves
}

func (g *Game) State() core.State {
	return g.turn.Result
}

// Captures returns the number of pieces removed so far
func (g *Game) Captures() int {
	return g.captures
}

func (g *Game) InitialLayout() string {
	if len(g.snapshots) > 0 {
		return g.snapshots[0].Layout
	}
	return board.StartingLayout
}
