package tictactoe

import (
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-api/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-api/internal/entity"
)

// SubmitMove plays position for playerID and returns the updated game together with the
// recorded move. The passed game is never modified, so on error the caller still holds
// the exact pre-move state.
//
// Checks run in order: game still in progress, player owns the current turn, position is
// free. The turn only toggles when the move does not end the game.
func SubmitMove(game entity.Game, playerID int64, position int, playedAt time.Time) (entity.Game, entity.Move, error) {
	if game.State.IsFinished() {
		return game, entity.Move{}, apperror.ErrGameAlreadyFinished
	}

	turn := game.State.Turn()
	if game.PlayerFor(turn) != playerID {
		return game, entity.Move{}, fmt.Errorf("%w: %s to move", apperror.ErrNotYourTurn, turn)
	}

	if err := ValidateMove(game.Board, position); err != nil {
		return game, entity.Move{}, err
	}

	move := entity.Move{
		ID:       uuid.NewString(),
		GameID:   game.ID,
		PlayerID: playerID,
		Position: position,
		Turn:     turn,
		PlayedAt: playedAt,
	}

	next := game
	next.Board = ApplyMove(game.Board, position, turn)
	next.Moves = append(slices.Clip(game.Moves), move)

	switch {
	case CheckWinner(next.Board):
		next.State = entity.Won(turn, playerID)
	case IsBoardFull(next.Board):
		next.State = entity.Drawn(turn)
	default:
		next.State = entity.InProgress(turn.Opponent())
	}

	return next, move, nil
}
