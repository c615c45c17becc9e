package usecase

import (
	"context"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-api/internal/entity"
	"github.com/rocketscienceinc/tictactoe-api/internal/scoreboard"
)

// ListGames returns every game, newest first.
func (that *GameManager) ListGames(ctx context.Context) ([]*entity.Game, error) {
	games, err := that.gameRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list games: %w", err)
	}

	return scoreboard.History(games, nil), nil
}

func (that *GameManager) Scoreboard(ctx context.Context) ([]scoreboard.Entry, error) {
	users, err := that.userRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	games, err := that.gameRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list games: %w", err)
	}

	return scoreboard.Compute(users, games), nil
}

// GameHistory returns games newest first, only those userID plays in when it is set.
func (that *GameManager) GameHistory(ctx context.Context, userID *int64) ([]*entity.Game, error) {
	if userID != nil {
		if _, err := that.userRepo.GetByID(ctx, *userID); err != nil {
			return nil, fmt.Errorf("failed to get user: %w", err)
		}
	}

	games, err := that.gameRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list games: %w", err)
	}

	return scoreboard.History(games, userID), nil
}
