package api

import "checkers/internal/server/core"

// Wire types are shared with the server so both sides stay in step.
type (
	CreateGameRequest = core.CreateGameRequest
	SelectRequest     = core.SelectRequest
	MoveRequest       = core.MoveRequest
	PlayerConfig      = core.PlayerConfig
	GameResponse      = core.GameResponse
	SelectionResponse = core.SelectionResponse
	MoveInfo          = core.MoveInfo
	BoardResponse     = core.BoardResponse
	ErrorResponse     = core.ErrorResponse
)

type HealthResponse struct {
	Status  string `json:"status"`
	Time    int64  `json:"time"`
	Storage string `json:"storage"`
	Games   int    `json:"games"`
}
