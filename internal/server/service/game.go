package service

import (
	"fmt"
	"time"

	"checkers/internal/server/board"
	"checkers/internal/server/core"
	"checkers/internal/server/engine"
	"checkers/internal/server/game"
	"checkers/internal/server/storage"

	"github.com/google/uuid"
)

// CreateGame registers a new game from layout (empty for the standard opening)
func (s *Service) CreateGame(id string, whitePlayer, blackPlayer *core.Player, layout string) error {
	g, err := game.New(layout, whitePlayer, blackPlayer)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.games[id]; exists {
		return fmt.Errorf("%w: %s", ErrGameExists, id)
	}
	if len(s.games) >= MaxGames {
		return ErrTooManyGames
	}
	s.games[id] = g

	if s.store != nil {
		s.store.RecordNewGame(storage.GameRecord{
			GameID:          id,
			InitialLayout:   g.InitialLayout(),
			WhitePlayerID:   whitePlayer.ID,
			WhitePlayerName: whitePlayer.Name,
			BlackPlayerID:   blackPlayer.ID,
			BlackPlayerName: blackPlayer.Name,
			StartTimeUTC:    time.Now().UTC(),
			Result:          g.State().String(),
		})
	}

	return nil
}

// View runs fn against the game under the read lock. fn must not retain g.
func (s *Service) View(gameID string, fn func(g *game.Game)) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	g, ok := s.games[gameID]
	if !ok {
		return fmt.Errorf("%w: %s", ErrGameNotFound, gameID)
	}
	fn(g)
	return nil
}

// update runs fn against the game under the write lock
func (s *Service) update(gameID string, fn func(g *game.Game) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	g, ok := s.games[gameID]
	if !ok {
		return fmt.Errorf("%w: %s", ErrGameNotFound, gameID)
	}
	return fn(g)
}

// GenerateGameID creates a new unique game ID
func (s *Service) GenerateGameID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for {
		id := uuid.New().String()
		if _, exists := s.games[id]; !exists {
			return id
		}
	}
}

// SelectPiece makes the piece on square the active selection
func (s *Service) SelectPiece(gameID string, square board.Position) (game.Selection, error) {
	var sel game.Selection
	err := s.update(gameID, func(g *game.Game) error {
		var err error
		sel, err = g.Select(square)
		return err
	})
	return sel, err
}

// ClearSelection drops the active selection
func (s *Service) ClearSelection(gameID string) error {
	return s.update(gameID, func(g *game.Game) error {
		return g.Deselect()
	})
}

// MakeMove plays move, given either in full notation or as a bare
// destination for the active selection. A finishing move is written to the
// ledger.
func (s *Service) MakeMove(gameID, move string) (*game.MoveResult, error) {
	var result *game.MoveResult
	err := s.update(gameID, func(g *game.Game) error {
		var err error
		if len(move) == 2 {
			var to board.Position
			if to, err = board.ParseSquare(move); err != nil {
				return fmt.Errorf("%w: %w", engine.ErrIllegalMove, err)
			}
			result, err = g.Move(to)
		} else {
			result, err = g.Play(move)
		}
		if err != nil {
			return err
		}

		if result.GameState.IsOver() && s.store != nil {
			s.store.RecordResult(storage.ResultRecord{
				GameID:          gameID,
				Result:          result.GameState.String(),
				FinalLayout:     g.CurrentLayout(),
				Captures:        g.Captures(),
				FinishedTimeUTC: time.Now().UTC(),
			})
		}
		return nil
	})
	return result, err
}

// DeleteGame removes a game from memory. Its ledger row is kept.
func (s *Service) DeleteGame(gameID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.games[gameID]; !ok {
		return fmt.Errorf("%w: %s", ErrGameNotFound, gameID)
	}
	delete(s.games, gameID)
	return nil
}
