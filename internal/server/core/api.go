package core

// Request types

type CreateGameRequest struct {
	White  PlayerConfig `json:"white"`
	Black  PlayerConfig `json:"black"`
	Layout string       `json:"layout,omitempty" validate:"omitempty,max=100"`
}

type SelectRequest struct {
	Square string `json:"square" validate:"required,len=2"`
}

type MoveRequest struct {
	Move string `json:"move" validate:"required,min=2,max=5"` // "c3d4", "c3xe5", or a bare destination "d4"
}

// Response types

type GameResponse struct {
	GameID    string             `json:"gameId"`
	Layout    string             `json:"layout"`
	Turn      string             `json:"turn"`  // "w" or "b"
	State     string             `json:"state"` // "ongoing", "white wins", "black wins"
	Winner    string             `json:"winner,omitempty"`
	Forced    string             `json:"forced,omitempty"` // square of the piece that must continue a capture chain
	Movable   []string           `json:"movable"`
	Moves     []string           `json:"moves"`
	Players   PlayersResponse    `json:"players"`
	Selection *SelectionResponse `json:"selection,omitempty"`
	LastMove  *MoveInfo          `json:"lastMove,omitempty"`
}

type SelectionResponse struct {
	Square       string   `json:"square"`
	Destinations []string `json:"destinations"`
	Moves        []string `json:"moves"`
	Capture      bool     `json:"capture"`
	Reason       string   `json:"reason,omitempty"`
}

type MoveInfo struct {
	Move        string `json:"move"`
	PlayerColor string `json:"playerColor"` // "w" or "b"
	Captured    string `json:"captured,omitempty"`
	Promoted    bool   `json:"promoted,omitempty"`
	Continues   bool   `json:"continues,omitempty"`
}

type BoardResponse struct {
	Layout string            `json:"layout"`
	Board  string            `json:"board"`  // ASCII representation
	Pieces map[string]string `json:"pieces"` // square -> "w", "W", "b" or "B"
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code"`
	Details string `json:"details,omitempty"`
}
