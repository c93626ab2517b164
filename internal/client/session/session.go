// Package session holds the terminal client's per-process state.
package session

import (
	"io"
	"os"

	"checkers/internal/client/api"
)

type Session struct {
	APIBaseURL       string
	CurrentGame      string
	CurrentGameState *api.GameResponse
	Selection        *api.SelectionResponse
	Client           *api.Client
	Verbose          bool
	Out              io.Writer
}

// New returns a session talking to baseURL and printing to stdout
func New(baseURL string) *Session {
	c := api.New(baseURL)
	return &Session{
		APIBaseURL: c.BaseURL,
		Client:     c,
		Out:        os.Stdout,
	}
}

func (s *Session) GetAPIBaseURL() string { return s.APIBaseURL }
func (s *Session) SetAPIBaseURL(url string) { s.APIBaseURL = url }
func (s *Session) GetCurrentGame() string { return s.CurrentGame }
func (s *Session) GetClient() *api.Client { return s.Client }
func (s *Session) IsVerbose() bool { return s.Verbose }
func (s *Session) Output() io.Writer { return s.Out }
func (s *Session) GetGameState() *api.GameResponse { return s.CurrentGameState }

// SetCurrentGame switches games and forgets any state cached for the old one
func (s *Session) SetCurrentGame(gameID string) {
	if gameID != s.CurrentGame {
		s.CurrentGameState = nil
		s.Selection = nil
	}
	s.CurrentGame = gameID
}

// SetGameState caches the latest game response. The cached selection
// follows the server's view of it.
func (s *Session) SetGameState(state *api.GameResponse) {
	s.CurrentGameState = state
	if state != nil {
		s.Selection = state.Selection
	}
}

func (s *Session) GetSelection() *api.SelectionResponse { return s.Selection }
func (s *Session) SetSelection(sel *api.SelectionResponse) { s.Selection = sel }
