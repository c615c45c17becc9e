// Package memstore holds in-memory repositories for tests that do not need Redis or SQLite.
package memstore

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/rocketscienceinc/tictactoe-api/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-api/internal/entity"
)

type Users struct {
	mu    sync.Mutex
	users []*entity.User
}

func NewUsers(users ...*entity.User) *Users {
	return &Users{users: users}
}

func (that *Users) Create(_ context.Context, username string, createdAt time.Time) (*entity.User, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	var lastID int64
	for _, user := range that.users {
		if user.Username == username {
			return nil, fmt.Errorf("%w: %s", apperror.ErrUsernameTaken, username)
		}
		lastID = max(lastID, user.ID)
	}

	user := &entity.User{ID: lastID + 1, Username: username, CreatedAt: createdAt}
	that.users = append(that.users, user)

	return user, nil
}

func (that *Users) GetByID(_ context.Context, id int64) (*entity.User, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	for _, user := range that.users {
		if user.ID == id {
			return user, nil
		}
	}

	return nil, fmt.Errorf("%w: user %d", apperror.ErrNotFound, id)
}

func (that *Users) List(_ context.Context) ([]*entity.User, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	return append([]*entity.User{}, that.users...), nil
}

// Games keeps games by value so callers never share a stored game.
type Games struct {
	mu    sync.Mutex
	games map[string]entity.Game
}

func NewGames() *Games {
	return &Games{games: make(map[string]entity.Game)}
}

func (that *Games) Create(_ context.Context, game *entity.Game) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.games[game.ID] = *game

	return nil
}

func (that *Games) GetByID(_ context.Context, id string) (*entity.Game, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	game, ok := that.games[id]
	if !ok {
		return nil, fmt.Errorf("%w: game %s", apperror.ErrNotFound, id)
	}

	return &game, nil
}

func (that *Games) List(_ context.Context) ([]*entity.Game, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	games := make([]*entity.Game, 0, len(that.games))
	for _, game := range that.games {
		games = append(games, &game)
	}

	return games, nil
}

// SaveMove stores the fields of after and appends move, like the Redis store does. It only
// writes if the stored game still has the board, state and move count of before.
func (that *Games) SaveMove(_ context.Context, before, after *entity.Game, move entity.Move) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	stored, ok := that.games[before.ID]
	if !ok {
		return fmt.Errorf("%w: game %s", apperror.ErrNotFound, before.ID)
	}

	if stored.Board != before.Board || stored.State != before.State || len(stored.Moves) != len(before.Moves) {
		return fmt.Errorf("%w: game %s", apperror.ErrConcurrentMove, before.ID)
	}

	next := *after
	next.Moves = append(slices.Clone(stored.Moves), move)
	that.games[after.ID] = next

	return nil
}
