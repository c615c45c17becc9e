package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/rocketscienceinc/tictactoe-api/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-api/internal/entity"
)

const maxUsernameLength = 50

type UserManager struct {
	logger *slog.Logger
	repo   userRepo
	now    func() time.Time
}

func NewUserManager(logger *slog.Logger, repo userRepo) *UserManager {
	return &UserManager{
		logger: logger,
		repo:   repo,
		now:    time.Now,
	}
}

// Register stores a new user under the trimmed username.
func (that *UserManager) Register(ctx context.Context, username string) (*entity.User, error) {
	log := that.logger.With("method", "Register")

	username = strings.TrimSpace(username)
	if username == "" || utf8.RuneCountInString(username) > maxUsernameLength {
		return nil, fmt.Errorf("%w: must be 1 to %d characters", apperror.ErrInvalidUsername, maxUsernameLength)
	}

	user, err := that.repo.Create(ctx, username, that.now())
	if err != nil {
		return nil, fmt.Errorf("failed to save user into storage: %w", err)
	}

	log.Info("user registered", "userID", user.ID)

	return user, nil
}

func (that *UserManager) Get(ctx context.Context, id int64) (*entity.User, error) {
	user, err := that.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to find user into storage: %w", err)
	}

	return user, nil
}

func (that *UserManager) List(ctx context.Context) ([]*entity.User, error) {
	users, err := that.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	return users, nil
}
