package websocket

import (
	"encoding/json"

	"github.com/rocketscienceinc/tictactoe-api/internal/entity"
	"github.com/rocketscienceinc/tictactoe-api/internal/scoreboard"
)

const (
	actionGameGet    = "game:get"
	actionGameMove   = "game:move"
	actionScoreboard = "scoreboard"
	actionError      = "error"
)

// Message is the envelope of every frame in both directions.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// RequestPayload carries user_id and position raw so numeric strings are accepted and anything
// else maps to the same error kinds as over HTTP.
type RequestPayload struct {
	GameID   string          `json:"game_id"`
	UserID   json.RawMessage `json:"user_id"`
	Position json.RawMessage `json:"position"`
}

type ResponsePayload struct {
	Game       *entity.Game       `json:"game,omitempty"`
	Scoreboard []scoreboard.Entry `json:"scoreboard,omitempty"`
	Error      string             `json:"error,omitempty"`
}
