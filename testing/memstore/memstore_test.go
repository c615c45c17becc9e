package memstore

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-api/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-api/internal/entity"
	"github.com/rocketscienceinc/tictactoe-api/internal/tictactoe"
)

var createdAt = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func TestGames_SaveMove(t *testing.T) {
	ctx := context.Background()

	t.Run("Appends the given move", func(t *testing.T) {
		games := NewGames()
		game := entity.NewGame("g1", 1, 2, createdAt)
		require.NoError(t, games.Create(ctx, game))

		next, move, err := tictactoe.SubmitMove(*game, 1, 4, createdAt)
		require.NoError(t, err)

		require.NoError(t, games.SaveMove(ctx, game, &next, move))

		stored, err := games.GetByID(ctx, "g1")
		require.NoError(t, err)
		assert.Equal(t, []entity.Move{move}, stored.Moves)
		assert.Equal(t, next.Board, stored.Board)
	})

	t.Run("Rejects a snapshot with a stale move count", func(t *testing.T) {
		// Given: a stored game with one move
		games := NewGames()
		game := entity.NewGame("g1", 1, 2, createdAt)
		require.NoError(t, games.Create(ctx, game))

		next, move, err := tictactoe.SubmitMove(*game, 1, 4, createdAt)
		require.NoError(t, err)
		require.NoError(t, games.SaveMove(ctx, game, &next, move))

		// When: a writer holds the same board and state but has not seen that move
		stale := next
		stale.Moves = nil
		after, staleMove, err := tictactoe.SubmitMove(stale, 2, 0, createdAt)
		require.NoError(t, err)

		err = games.SaveMove(ctx, &stale, &after, staleMove)

		// Then: the write is refused and the stored game is untouched
		require.ErrorIs(t, err, apperror.ErrConcurrentMove)

		stored, err := games.GetByID(ctx, "g1")
		require.NoError(t, err)
		assert.Len(t, stored.Moves, 1)
		assert.Equal(t, next.Board, stored.Board)
	})

	t.Run("Unknown game", func(t *testing.T) {
		games := NewGames()
		game := entity.NewGame("g1", 1, 2, createdAt)

		err := games.SaveMove(ctx, game, game, entity.Move{})

		require.ErrorIs(t, err, apperror.ErrNotFound)
	})
}
