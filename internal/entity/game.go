package entity

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

type Status string

const (
	StatusInProgress Status = "IN_PROGRESS"
	StatusFinished   Status = "FINISHED"
)

var ErrInvalidState = errors.New("invalid game state")

// State is the status/turn/winner triple of a game. It can only be built through
// InProgress, Won, Drawn or RestoreState, so a finished game always carries its result
// and an ongoing game never carries a winner.
type State struct {
	status    Status
	turn      Mark
	winnerID  int64
	hasWinner bool
}

// InProgress is an ongoing game waiting for turn to move.
func InProgress(turn Mark) State {
	return State{status: StatusInProgress, turn: turn}
}

// Won is a game ended by mark completing a line; winnerID is the player who placed it.
func Won(mark Mark, winnerID int64) State {
	return State{status: StatusFinished, turn: mark, winnerID: winnerID, hasWinner: true}
}

// Drawn is a game ended on a full board; lastMark is the mark of the final move.
func Drawn(lastMark Mark) State {
	return State{status: StatusFinished, turn: lastMark}
}

// RestoreState rebuilds a State from its stored fields.
func RestoreState(status Status, turn Mark, winnerID *int64) (State, error) {
	if !turn.IsPlayer() {
		return State{}, fmt.Errorf("%w: turn %q", ErrInvalidState, turn)
	}

	switch status {
	case StatusInProgress:
		if winnerID != nil {
			return State{}, fmt.Errorf("%w: game in progress has a winner", ErrInvalidState)
		}
		return InProgress(turn), nil
	case StatusFinished:
		if winnerID == nil {
			return Drawn(turn), nil
		}
		return Won(turn, *winnerID), nil
	default:
		return State{}, fmt.Errorf("%w: status %q", ErrInvalidState, status)
	}
}

func (that State) Status() Status {
	return that.status
}

// Turn is the mark to move next; for a finished game it is the mark of the final move.
func (that State) Turn() Mark {
	return that.turn
}

func (that State) Winner() (int64, bool) {
	return that.winnerID, that.hasWinner
}

func (that State) IsFinished() bool {
	return that.status == StatusFinished
}

func (that State) IsDraw() bool {
	return that.IsFinished() && !that.hasWinner
}

// Game is one tic-tac-toe session between two users.
type Game struct {
	ID        string
	PlayerXID int64
	PlayerOID int64
	Board     Board
	State     State
	CreatedAt time.Time
	Moves     []Move
}

func NewGame(id string, playerXID, playerOID int64, createdAt time.Time) *Game {
	return &Game{
		ID:        id,
		PlayerXID: playerXID,
		PlayerOID: playerOID,
		State:     InProgress(PlayerX),
		CreatedAt: createdAt,
	}
}

// PlayerFor returns the user assigned to mark.
func (that *Game) PlayerFor(mark Mark) int64 {
	if mark == PlayerX {
		return that.PlayerXID
	}
	return that.PlayerOID
}

// HasParticipant reports whether userID plays X or O in this game.
func (that *Game) HasParticipant(userID int64) bool {
	return that.PlayerXID == userID || that.PlayerOID == userID
}

func (that *Game) IsFinished() bool {
	return that.State.IsFinished()
}

type gameJSON struct {
	ID          string    `json:"id"`
	PlayerX     int64     `json:"player_x"`
	PlayerO     int64     `json:"player_o"`
	CurrentTurn Mark      `json:"current_turn"`
	Status      Status    `json:"status"`
	Winner      *int64    `json:"winner"`
	Board       Board     `json:"board"`
	CreatedAt   time.Time `json:"created_at"`
	Moves       []Move    `json:"moves"`
}

func (that Game) MarshalJSON() ([]byte, error) {
	out := gameJSON{
		ID:          that.ID,
		PlayerX:     that.PlayerXID,
		PlayerO:     that.PlayerOID,
		CurrentTurn: that.State.Turn(),
		Status:      that.State.Status(),
		Board:       that.Board,
		CreatedAt:   that.CreatedAt,
		Moves:       that.Moves,
	}

	if winnerID, ok := that.State.Winner(); ok {
		out.Winner = &winnerID
	}

	if out.Moves == nil {
		out.Moves = []Move{}
	}

	return json.Marshal(out)
}
