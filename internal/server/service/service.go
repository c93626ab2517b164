package service

import (
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"checkers/internal/server/game"
	"checkers/internal/server/storage"
)

// MaxGames bounds the number of games held in memory
const MaxGames = 1000

var (
	ErrGameNotFound = errors.New("game not found")
	ErrGameExists   = errors.New("game already exists")
	ErrTooManyGames = errors.New("game limit reached")
)

// Service owns the in-memory game registry and the optional ledger. A game
// is only touched while the registry lock is held.
type Service struct {
	games map[string]*game.Game
	mu    sync.RWMutex
	store *storage.Store
}

// New creates a new service instance with optional storage
func New(store *storage.Store) *Service {
	return &Service{
		games: make(map[string]*game.Game),
		store: store,
	}
}

// GetStorageHealth returns the storage component status
func (s *Service) GetStorageHealth() string {
	if s.store == nil {
		return "disabled"
	}
	if s.store.IsHealthy() {
		return "ok"
	}
	return "degraded"
}

// GameCount returns the number of games in memory
func (s *Service) GameCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.games)
}

// Shutdown drops all games and closes storage
func (s *Service) Shutdown(timeout time.Duration) error {
	var errs []error

	s.mu.Lock()
	count := len(s.games)
	s.games = make(map[string]*game.Game)
	s.mu.Unlock()
	log.Printf("Service shutdown: released %d games", count)

	if s.store != nil {
		done := make(chan error, 1)
		go func() { done <- s.store.Close() }()
		select {
		case err := <-done:
			if err != nil {
				errs = append(errs, fmt.Errorf("storage: %w", err))
			}
		case <-time.After(timeout):
			errs = append(errs, fmt.Errorf("storage: close timed out after %s", timeout))
		}
	}

	return errors.Join(errs...)
}
