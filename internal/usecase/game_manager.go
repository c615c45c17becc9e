package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-api/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-api/internal/entity"
	"github.com/rocketscienceinc/tictactoe-api/internal/tictactoe"
)

type userRepo interface {
	Create(ctx context.Context, username string, createdAt time.Time) (*entity.User, error)
	GetByID(ctx context.Context, id int64) (*entity.User, error)
	List(ctx context.Context) ([]*entity.User, error)
}

type gameRepo interface {
	Create(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	List(ctx context.Context) ([]*entity.Game, error)
	SaveMove(ctx context.Context, before, after *entity.Game, move entity.Move) error
}

type GameManager struct {
	logger   *slog.Logger
	userRepo userRepo
	gameRepo gameRepo

	locks *keyedLocker
	now   func() time.Time
}

func NewGameManager(logger *slog.Logger, userRepo userRepo, gameRepo gameRepo) *GameManager {
	return &GameManager{
		logger: logger,

		userRepo: userRepo,
		gameRepo: gameRepo,

		locks: newKeyedLocker(),
		now:   time.Now,
	}
}

// CreateGame starts a game with playerXID on X; X moves first.
func (that *GameManager) CreateGame(ctx context.Context, playerXID, playerOID int64) (*entity.Game, error) {
	log := that.logger.With("method", "CreateGame")

	if playerXID == playerOID {
		return nil, fmt.Errorf("%w: user %d", apperror.ErrSamePlayer, playerXID)
	}

	for _, id := range []int64{playerXID, playerOID} {
		if _, err := that.userRepo.GetByID(ctx, id); err != nil {
			if errors.Is(err, apperror.ErrNotFound) {
				return nil, fmt.Errorf("%w: user %d", apperror.ErrPlayerNotFound, id)
			}
			return nil, fmt.Errorf("failed to get player: %w", err)
		}
	}

	game := entity.NewGame(uuid.NewString(), playerXID, playerOID, that.now().UTC())

	if err := that.gameRepo.Create(ctx, game); err != nil {
		log.Error("failed to create game", "error", err)
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	log.Info("game created", "gameID", game.ID, "playerX", playerXID, "playerO", playerOID)

	return game, nil
}

func (that *GameManager) GetGame(ctx context.Context, gameID string) (*entity.Game, error) {
	game, err := that.gameRepo.GetByID(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	return game, nil
}

// SubmitMove plays position for userID in gameID. Moves on the same game are handled one at a
// time; the game and its new move are stored together or not at all.
func (that *GameManager) SubmitMove(ctx context.Context, gameID string, userID int64, position int) (*entity.Game, error) {
	log := that.logger.With("method", "SubmitMove", "gameID", gameID)

	unlock := that.locks.Lock(gameID)
	defer unlock()

	game, err := that.gameRepo.GetByID(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	if _, err = that.userRepo.GetByID(ctx, userID); err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return nil, fmt.Errorf("%w: user %d", apperror.ErrInvalidUser, userID)
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	next, move, err := tictactoe.SubmitMove(*game, userID, position, that.now().UTC())
	if err != nil {
		log.Info("move rejected", "userID", userID, "position", position, "reason", err)
		return nil, fmt.Errorf("failed to make move: %w", err)
	}

	if err = that.gameRepo.SaveMove(ctx, game, &next, move); err != nil {
		if errors.Is(err, apperror.ErrConcurrentMove) {
			log.Info("move lost a race", "userID", userID, "position", position)
		} else {
			log.Error("failed to save move", "error", err)
		}
		return nil, fmt.Errorf("failed to save move: %w", err)
	}

	if next.IsFinished() {
		log.Info("game finished", "status", next.State.Status(), "draw", next.State.IsDraw())
	}

	return &next, nil
}

// RejectMove returns the error for a move request whose user id or position could not be read
// as an integer. A nil userID means the user id itself was unreadable. An unknown game wins over
// a bad user, and a bad user wins over a bad position.
func (that *GameManager) RejectMove(ctx context.Context, gameID string, userID *int64) error {
	if _, err := that.gameRepo.GetByID(ctx, gameID); err != nil {
		return fmt.Errorf("failed to get game: %w", err)
	}

	if userID == nil {
		return apperror.ErrInvalidUser
	}

	if _, err := that.userRepo.GetByID(ctx, *userID); err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return fmt.Errorf("%w: user %d", apperror.ErrInvalidUser, *userID)
		}
		return fmt.Errorf("failed to get user: %w", err)
	}

	return apperror.ErrInvalidPosition
}
